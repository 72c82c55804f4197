// Package selection turns text-selection events into translation lookups.
//
// The state is a small machine (Empty, Pending, Resolved, Errored). The
// transitions are pure functions on State so they can be tested without a
// Controller; every event bumps State.Seq, and a lookup result is applied
// only when it carries the latest Seq.
package selection

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/video-stream/reader/internal/translate"
	"github.com/video-stream/reader/internal/wire"
)

const (
	// MaxSelectionLength is the hard cap on text sent to lookup. Lengths are
	// UTF-16 code units, see wire.TextLength.
	MaxSelectionLength = 100
	// MaxWordLength is the longest selection still treated as a single word.
	MaxWordLength = 50
)

// ErrSelectionTooLong is set on the state when a selection exceeds
// MaxSelectionLength. No lookup is made for it.
var ErrSelectionTooLong = errors.New("selection too long")

// Status is the phase of the current selection.
type Status int

const (
	StatusEmpty Status = iota
	StatusPending
	StatusResolved
	StatusErrored
)

func (s Status) String() string {
	switch s {
	case StatusEmpty:
		return "empty"
	case StatusPending:
		return "pending"
	case StatusResolved:
		return "resolved"
	case StatusErrored:
		return "errored"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Kind is how a selection was classified.
type Kind int

const (
	KindNone Kind = iota
	KindSingleWord
	KindPhrase
)

func (k Kind) String() string {
	switch k {
	case KindSingleWord:
		return "word"
	case KindPhrase:
		return "phrase"
	default:
		return "none"
	}
}

// State is a snapshot of the current selection.
type State struct {
	Status Status
	Text   string
	Kind   Kind
	Result translate.Result // valid when Status == StatusResolved
	Err    error            // set when Status == StatusErrored
	Seq    uint64
}

// Classify applies the length and shape gates to trimmed selection text.
func Classify(text string) (Kind, error) {
	n := wire.TextLength(text)
	if n > MaxSelectionLength {
		return KindNone, ErrSelectionTooLong
	}
	if n <= MaxWordLength && !strings.ContainsFunc(text, unicode.IsSpace) {
		return KindSingleWord, nil
	}
	return KindPhrase, nil
}

// Select is the transition for a new selection event. The returned state is
// Pending when a lookup for its Text and Seq should be issued.
func Select(s State, raw string) State {
	seq := s.Seq + 1
	text := strings.TrimSpace(raw)
	if text == "" {
		return State{Status: StatusEmpty, Seq: seq}
	}

	kind, err := Classify(text)
	if err != nil {
		return State{Status: StatusErrored, Err: err, Seq: seq}
	}
	return State{Status: StatusPending, Text: text, Kind: kind, Seq: seq}
}

// Resolve applies a lookup result. It reports false and leaves s unchanged
// when seq is stale or nothing is pending.
func Resolve(s State, seq uint64, res translate.Result) (State, bool) {
	if s.Status != StatusPending || s.Seq != seq {
		return s, false
	}
	s.Status = StatusResolved
	s.Result = res
	s.Err = nil
	return s, true
}

// Fail applies a lookup failure, with the same staleness rule as Resolve.
func Fail(s State, seq uint64, err error) (State, bool) {
	if s.Status != StatusPending || s.Seq != seq {
		return s, false
	}
	s.Status = StatusErrored
	s.Err = err
	return s, true
}

// Clear drops the selection and any error. Pending lookups become stale.
func Clear(s State) State {
	return State{Status: StatusEmpty, Seq: s.Seq + 1}
}

// Candidate reports the word translation to collect from a resolved single
// word. Lookup misses are not collected.
func (s State) Candidate() (translate.WordTranslation, bool) {
	if s.Status != StatusResolved || s.Kind != KindSingleWord {
		return translate.WordTranslation{}, false
	}
	if s.Result.Kind != translate.KindWord || !s.Result.Found {
		return translate.WordTranslation{}, false
	}
	return s.Result.Word, true
}

// Message is the inline text shown for an errored state.
func (s State) Message() string {
	if s.Status != StatusErrored {
		return ""
	}
	if errors.Is(s.Err, ErrSelectionTooLong) {
		return fmt.Sprintf("Selected text is too long; select fewer than %d characters to translate.", MaxSelectionLength)
	}
	return "Translation failed, please try again later."
}
