// Package vocab holds the candidate words collected from lookups and the
// word list the user curates from them. State lives in memory only.
package vocab

import (
	"strings"
	"sync"
	"time"

	"github.com/video-stream/reader/internal/translate"
)

// Entry is a candidate word or a word-list entry; both share one shape.
type Entry struct {
	Word        string                    `json:"word"`
	Translation translate.WordTranslation `json:"translation"`
	Timestamp   int64                     `json:"timestamp"` // unix milliseconds
}

// list is an insertion-ordered set of entries keyed by word.
type list struct {
	order []string
	items map[string]Entry
}

func newList() list {
	return list{items: make(map[string]Entry)}
}

func (l *list) has(word string) bool {
	_, ok := l.items[word]
	return ok
}

func (l *list) add(e Entry) {
	l.order = append(l.order, e.Word)
	l.items[e.Word] = e
}

func (l *list) remove(word string) bool {
	if !l.has(word) {
		return false
	}
	delete(l.items, word)
	for i, w := range l.order {
		if w == word {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	return true
}

func (l *list) snapshot() []Entry {
	out := make([]Entry, 0, len(l.order))
	for _, w := range l.order {
		out = append(out, l.items[w])
	}
	return out
}

// Store keeps candidates and the word list. The word list is always a subset
// of words that were candidates at promotion time.
type Store struct {
	mu         sync.RWMutex
	candidates list
	wordList   list
	now        func() time.Time
}

// NewStore creates an empty store. A nil clock means time.Now.
func NewStore(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		candidates: newList(),
		wordList:   newList(),
		now:        now,
	}
}

func key(word string) string {
	return strings.TrimSpace(word)
}

// AddCandidate records word unless it is already a candidate. It reports
// whether a new entry was inserted.
func (s *Store) AddCandidate(word string, tr translate.WordTranslation) bool {
	k := key(word)
	if k == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.candidates.has(k) {
		return false
	}
	s.candidates.add(Entry{Word: k, Translation: tr, Timestamp: s.now().UnixMilli()})
	return true
}

// Promote copies a candidate into the word list. It is a no-op when word is
// not a candidate or is already listed.
func (s *Store) Promote(word string) bool {
	k := key(word)

	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.candidates.items[k]
	if !ok || s.wordList.has(k) {
		return false
	}
	s.wordList.add(c)
	return true
}

// Remove drops word from the word list; absent words are ignored.
func (s *Store) Remove(word string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wordList.remove(key(word))
}

// ClearWordList empties the word list and leaves candidates alone.
func (s *Store) ClearWordList() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wordList = newList()
}

// ClearCandidates empties the candidate set. Listed words stay listed.
func (s *Store) ClearCandidates() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.candidates = newList()
}

func (s *Store) Candidate(word string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.candidates.items[key(word)]
	return e, ok
}

func (s *Store) HasCandidate(word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.candidates.has(key(word))
}

func (s *Store) InWordList(word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wordList.has(key(word))
}

// Candidates returns candidates in insertion order.
func (s *Store) Candidates() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.candidates.snapshot()
}

// WordList returns listed words in insertion order.
func (s *Store) WordList() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wordList.snapshot()
}

func (s *Store) CandidateCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.candidates.items)
}

func (s *Store) WordListCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.wordList.items)
}
