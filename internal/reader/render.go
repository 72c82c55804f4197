package reader

import (
	"fmt"
	"io"
	"strings"

	"github.com/video-stream/reader/internal/selection"
	"github.com/video-stream/reader/internal/subtitle"
	"github.com/video-stream/reader/internal/translate"
	"github.com/video-stream/reader/internal/vocab"
)

const helpText = `Commands:
  open <path>        load a plain text document
  video <url>        load subtitles for a YouTube video
  export [path]      save the video's subtitles as WebVTT
  select <text>      translate a word or sentence
  clear              clear the current selection
  copy               print the current translation as plain text
  add <word>         move a candidate into the word list
  remove <word>      remove a word from the word list
  words              show the word list
  candidates         show candidate words
  clearwords         empty the word list
  clearcandidates    empty the candidates
  help               show this help
  quit               exit`

func clock(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func renderVideo(w io.Writer, v *subtitle.Video) {
	fmt.Fprintf(w, "== %s (%s) ==\n", v.Title, v.VideoID)
	if len(v.Subtitles) == 0 {
		fmt.Fprintln(w, "No subtitles available for this video.")
		return
	}
	for _, e := range v.Subtitles {
		fmt.Fprintf(w, "[%s] %s\n", clock(e.StartTime), e.Text)
	}
}

func renderDocument(w io.Writer, name, text string) {
	fmt.Fprintf(w, "== %s ==\n", name)
	fmt.Fprintln(w, strings.TrimRight(text, "\n"))
}

func renderState(w io.Writer, s selection.State) {
	switch s.Status {
	case selection.StatusPending:
		fmt.Fprintf(w, "Translating %q...\n", s.Text)
	case selection.StatusResolved:
		fmt.Fprintln(w, translate.Format(s.Result))
		if s.Kind == selection.KindSingleWord && s.Result.Kind == translate.KindWord && s.Result.Found {
			fmt.Fprintf(w, "(candidate: add %s)\n", s.Text)
		}
	case selection.StatusErrored:
		fmt.Fprintln(w, s.Message())
	}
}

func renderEntries(w io.Writer, title string, entries []vocab.Entry) {
	if len(entries) == 0 {
		fmt.Fprintf(w, "%s: none\n", title)
		return
	}
	fmt.Fprintf(w, "%s (%d):\n", title, len(entries))
	for _, e := range entries {
		fmt.Fprintf(w, "  %-16s %s\n", e.Word, e.Translation.Translation)
	}
}
