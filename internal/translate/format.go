package translate

import "fmt"

// Format renders a result as the plain text copied out of the translation
// panel.
func Format(r Result) string {
	if r.Kind == KindSentence {
		return fmt.Sprintf("Original: %s\nTranslation: %s", r.Sentence.Original, r.Sentence.Translation)
	}
	text := fmt.Sprintf("Word: %s\nTranslation: %s\nDefinition: %s", r.Word.Word, r.Word.Translation, r.Word.Definition)
	if r.Word.Example != "" {
		text += "\nExample: " + r.Word.Example
	}
	return text
}
