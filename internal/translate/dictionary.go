package translate

import (
	"context"
	"sync"
)

// Dictionary is the provider behind Service. Lookup reports a miss with
// ok == false; err is reserved for provider failures.
type Dictionary interface {
	Lookup(ctx context.Context, kind Kind, key string) (res Result, ok bool, err error)
}

// MapDictionary is an in-memory Dictionary keyed by normalized text.
type MapDictionary struct {
	mu        sync.RWMutex
	words     map[string]WordTranslation
	sentences map[string]SentenceTranslation
}

// NewMapDictionary returns an empty dictionary.
func NewMapDictionary() *MapDictionary {
	return &MapDictionary{
		words:     make(map[string]WordTranslation),
		sentences: make(map[string]SentenceTranslation),
	}
}

// NewDefaultDictionary returns a dictionary seeded with DefaultWords and
// DefaultSentences.
func NewDefaultDictionary() *MapDictionary {
	d := NewMapDictionary()
	for _, w := range DefaultWords {
		d.AddWord(w)
	}
	for _, s := range DefaultSentences {
		d.AddSentence(s)
	}
	return d
}

// NewSubtitleDictionary returns a dictionary seeded with SubtitleWords.
func NewSubtitleDictionary() *MapDictionary {
	d := NewMapDictionary()
	for _, w := range SubtitleWords {
		d.AddWord(w)
	}
	return d
}

// Builtin is the in-memory chain used when no SQLite dictionary is
// configured: the general tables first, then the subtitle vocabulary.
func Builtin() []Dictionary {
	return []Dictionary{NewDefaultDictionary(), NewSubtitleDictionary()}
}

func (d *MapDictionary) AddWord(w WordTranslation) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.words[NormalizeKey(w.Word)] = w
}

func (d *MapDictionary) AddSentence(s SentenceTranslation) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sentences[NormalizeKey(s.Original)] = s
}

func (d *MapDictionary) Lookup(_ context.Context, kind Kind, key string) (Result, bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if kind == KindSentence {
		s, ok := d.sentences[key]
		if !ok {
			return Result{}, false, nil
		}
		return SentenceResult(s), true, nil
	}
	w, ok := d.words[key]
	if !ok {
		return Result{}, false, nil
	}
	return WordResult(w), true, nil
}

// DefaultWords is the built-in word table.
var DefaultWords = []WordTranslation{
	{Word: "hello", Translation: "你好", Definition: "Used as a greeting or to begin a telephone conversation."},
	{Word: "world", Translation: "世界", Definition: "The earth, together with all of its countries and peoples."},
	{Word: "document", Translation: "文档", Definition: "A written or printed paper that provides information."},
	{Word: "translation", Translation: "翻译", Definition: "The process of translating words or text from one language into another."},
	{Word: "language", Translation: "语言", Definition: "The method of human communication, either spoken or written."},
	{Word: "english", Translation: "英语", Definition: "The language of England, widely spoken and used as a lingua franca."},
	{Word: "chinese", Translation: "中文", Definition: "The language of China, with various dialects including Mandarin."},
	{Word: "reading", Translation: "阅读", Definition: "The action or skill of reading written or printed matter."},
	{Word: "learning", Translation: "学习", Definition: "The acquisition of knowledge or skills through study, experience, or being taught."},
	{Word: "practice", Translation: "练习", Definition: "The actual application or use of an idea, belief, or method."},
	{Word: "application", Translation: "应用", Definition: "A program or piece of software designed to fulfill a particular purpose."},
	{Word: "development", Translation: "开发", Definition: "The process of developing or being developed."},
	{Word: "programming", Translation: "编程", Definition: "The process of writing computer programs."},
	{Word: "function", Translation: "函数", Definition: "A relation or expression involving one or more variables."},
	{Word: "component", Translation: "组件", Definition: "A part or element of a larger whole."},
	{Word: "interface", Translation: "接口", Definition: "A point where two systems, subjects, organizations, etc. meet and interact."},
	{Word: "design", Translation: "设计", Definition: "A plan or drawing produced to show the look or function of something before it is built or made."},
	{Word: "system", Translation: "系统", Definition: "A set of connected things or parts forming a complex whole."},
	{Word: "computer", Translation: "计算机", Definition: "An electronic device for storing and processing data."},
	{Word: "software", Translation: "软件", Definition: "The programs and other operating information used by a computer."},
}

// DefaultSentences is the built-in sentence table.
var DefaultSentences = []SentenceTranslation{
	{Original: "hello world", Translation: "你好，世界"},
	{Original: "document translation", Translation: "文档翻译"},
	{Original: "language learning", Translation: "语言学习"},
	{Original: "reading practice", Translation: "阅读练习"},
}
