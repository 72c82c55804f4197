package translate

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

// Kind tells which variant of Result is populated.
type Kind int

const (
	KindWord Kind = iota
	KindSentence
)

func (k Kind) String() string {
	switch k {
	case KindWord:
		return "word"
	case KindSentence:
		return "sentence"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// NotFoundMarker is embedded in the translation field of a lookup miss.
const NotFoundMarker = "(not found)"

const missDefinition = "Translation not available."

// WordTranslation is the result of looking up a single word.
type WordTranslation struct {
	Word        string `json:"word"`
	Translation string `json:"translation"`
	Definition  string `json:"definition"`
	Example     string `json:"example,omitempty"`
}

// SentenceTranslation is the result of looking up a phrase or sentence.
type SentenceTranslation struct {
	Original    string `json:"original"`
	Translation string `json:"translation"`
}

// Result is a tagged union of WordTranslation and SentenceTranslation.
// Found is false for the sentinel returned on a dictionary miss.
type Result struct {
	Kind     Kind
	Word     WordTranslation
	Sentence SentenceTranslation
	Found    bool
}

// WordResult wraps a dictionary hit for a word.
func WordResult(w WordTranslation) Result {
	return Result{Kind: KindWord, Word: w, Found: true}
}

// SentenceResult wraps a dictionary hit for a sentence.
func SentenceResult(s SentenceTranslation) Result {
	return Result{Kind: KindSentence, Sentence: s, Found: true}
}

// Miss builds the sentinel result for a fragment that has no entry.
func Miss(kind Kind, fragment string) Result {
	translation := fragment + " " + NotFoundMarker
	if kind == KindSentence {
		return Result{Kind: KindSentence, Sentence: SentenceTranslation{
			Original:    fragment,
			Translation: translation,
		}}
	}
	return Result{Kind: KindWord, Word: WordTranslation{
		Word:        fragment,
		Translation: translation,
		Definition:  missDefinition,
	}}
}

// Translation returns the translated text of whichever variant is set.
func (r Result) Translation() string {
	if r.Kind == KindSentence {
		return r.Sentence.Translation
	}
	return r.Word.Translation
}

// Text returns the source fragment of whichever variant is set.
func (r Result) Text() string {
	if r.Kind == KindSentence {
		return r.Sentence.Original
	}
	return r.Word.Word
}

type resultJSON struct {
	Word        *string `json:"word,omitempty"`
	Original    *string `json:"original,omitempty"`
	Translation string  `json:"translation"`
	Definition  *string `json:"definition,omitempty"`
	Example     string  `json:"example,omitempty"`
	Found       bool    `json:"found"`
}

// MarshalJSON writes the flat object of the active variant, the shape the
// browser client consumes.
func (r Result) MarshalJSON() ([]byte, error) {
	out := resultJSON{Translation: r.Translation(), Found: r.Found}
	if r.Kind == KindSentence {
		out.Original = &r.Sentence.Original
	} else {
		out.Word = &r.Word.Word
		out.Definition = &r.Word.Definition
		out.Example = r.Word.Example
	}
	return json.Marshal(out)
}

// UnmarshalJSON decides the variant from the presence of the "word" field.
func (r *Result) UnmarshalJSON(data []byte) error {
	var in resultJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	switch {
	case in.Word != nil:
		def := ""
		if in.Definition != nil {
			def = *in.Definition
		}
		*r = Result{Kind: KindWord, Found: in.Found, Word: WordTranslation{
			Word:        *in.Word,
			Translation: in.Translation,
			Definition:  def,
			Example:     in.Example,
		}}
	case in.Original != nil:
		*r = Result{Kind: KindSentence, Found: in.Found, Sentence: SentenceTranslation{
			Original:    *in.Original,
			Translation: in.Translation,
		}}
	default:
		return fmt.Errorf("translation result has neither word nor original")
	}
	return nil
}

// Classify treats any fragment containing whitespace as a sentence.
func Classify(fragment string) Kind {
	if strings.IndexFunc(fragment, unicode.IsSpace) >= 0 {
		return KindSentence
	}
	return KindWord
}

// NormalizeKey is the dictionary lookup key for a fragment: lower case,
// without surrounding whitespace or punctuation, so a word selected as
// "video." or "Today," matches its entry.
func NormalizeKey(fragment string) string {
	key := strings.TrimFunc(fragment, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	})
	return strings.ToLower(key)
}
