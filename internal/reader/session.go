// Package reader is the terminal front end: it loads documents and video
// subtitles, turns selections into lookups and manages the word lists.
package reader

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/video-stream/reader/internal/selection"
	"github.com/video-stream/reader/internal/subtitle"
	"github.com/video-stream/reader/internal/timing"
	"github.com/video-stream/reader/internal/translate"
	"github.com/video-stream/reader/internal/vocab"
	"github.com/video-stream/reader/internal/wire"
)

const (
	DefaultOpenDelay       = 300 * time.Millisecond
	DefaultRedrawInterval  = 100 * time.Millisecond
	notTextMessage         = "Please select a plain text (.txt) file."
	invalidVideoMessage    = "Invalid YouTube URL"
	videoUnavailableFormat = "Failed to fetch subtitles: %v\n"
)

// VideoSource loads subtitles; subtitle.Fetcher and client.Client satisfy it.
type VideoSource interface {
	Fetch(ctx context.Context, rawURL string) (*subtitle.Video, error)
}

// Uploader sends loaded documents to a server.
type Uploader interface {
	Upload(ctx context.Context, fileName, content string) (*wire.UploadResponse, error)
}

// Options tunes the session timers.
type Options struct {
	OpenDelay      time.Duration
	RedrawInterval time.Duration
}

// Session is one interactive reading session.
type Session struct {
	controller *selection.Controller
	store      *vocab.Store
	videos     VideoSource
	uploader   Uploader
	logger     *zap.Logger

	opener   *timing.Debouncer
	redraw   *timing.Throttler
	inflight sync.WaitGroup

	outMu sync.Mutex
	out   io.Writer

	mu      sync.Mutex
	docName string
	doc     string
	video   *subtitle.Video
}

// NewSession wires a session. uploader may be nil.
func NewSession(out io.Writer, translator selection.Translator, videos VideoSource, uploader Uploader, opts Options, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	store := vocab.NewStore(time.Now)
	s := &Session{
		controller: selection.NewController(translator, store, logger),
		store:      store,
		videos:     videos,
		uploader:   uploader,
		logger:     logger.Named("reader"),
		opener:     timing.NewDebouncer(opts.OpenDelay),
		redraw:     timing.NewThrottler(opts.RedrawInterval, time.Now),
		out:        out,
	}
	s.controller.OnChange(s.onState)
	return s
}

// Store exposes the vocabulary lists.
func (s *Session) Store() *vocab.Store {
	return s.store
}

// Selection returns the current selection state.
func (s *Session) Selection() selection.State {
	return s.controller.State()
}

// Document returns the loaded document's name and text.
func (s *Session) Document() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docName, s.doc
}

// Video returns the loaded video, if any.
func (s *Session) Video() *subtitle.Video {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.video
}

func (s *Session) printf(format string, args ...interface{}) {
	s.outMu.Lock()
	defer s.outMu.Unlock()
	fmt.Fprintf(s.out, format, args...)
}

func (s *Session) render(fn func(w io.Writer)) {
	s.outMu.Lock()
	defer s.outMu.Unlock()
	fn(s.out)
}

// onState runs under the controller lock.
func (s *Session) onState(st selection.State) {
	if st.Status == selection.StatusPending && !s.redraw.Allow() {
		return
	}
	if st.Status != selection.StatusPending {
		s.redraw.Reset()
	}
	s.render(func(w io.Writer) { renderState(w, st) })
}

// Run reads commands from in until quit, EOF or ctx is done.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	defer s.Close()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
	}()

	s.printf("Type help for commands.\n")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			if s.Execute(ctx, line) {
				return nil
			}
		}
	}
}

// Close loads a document whose open is still waiting out the debounce
// delay, then waits for in-flight lookups.
func (s *Session) Close() {
	s.opener.Flush()
	s.inflight.Wait()
}

// Wait blocks until every lookup started so far has finished.
func (s *Session) Wait() {
	s.inflight.Wait()
}

// Execute runs one command line and reports whether the session should end.
func (s *Session) Execute(ctx context.Context, line string) bool {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "":
	case "open":
		s.open(ctx, arg)
	case "video":
		s.loadVideo(ctx, arg)
	case "export":
		s.export(arg)
	case "select":
		s.inflight.Add(1)
		go func() {
			defer s.inflight.Done()
			s.controller.Select(ctx, arg)
		}()
	case "clear":
		s.controller.Clear()
		s.printf("Selection cleared.\n")
	case "copy":
		st := s.controller.State()
		if st.Status != selection.StatusResolved {
			s.printf("Nothing to copy.\n")
			return false
		}
		s.printf("%s\n", translate.Format(st.Result))
	case "add":
		s.add(arg)
	case "remove":
		if s.store.Remove(arg) {
			s.printf("Removed %s from the word list.\n", arg)
		} else {
			s.printf("%s is not in the word list.\n", arg)
		}
	case "words":
		s.render(func(w io.Writer) { renderEntries(w, "Word list", s.store.WordList()) })
	case "candidates":
		s.render(func(w io.Writer) { renderEntries(w, "Candidates", s.store.Candidates()) })
	case "clearwords":
		s.store.ClearWordList()
		s.printf("Word list cleared.\n")
	case "clearcandidates":
		s.store.ClearCandidates()
		s.printf("Candidates cleared.\n")
	case "help":
		s.printf("%s\n", helpText)
	case "quit", "exit":
		return true
	default:
		s.printf("Unknown command %q. Type help for commands.\n", cmd)
	}
	return false
}

func (s *Session) add(word string) {
	switch {
	case s.store.InWordList(word):
		s.printf("%s is already in the word list.\n", word)
	case s.store.Promote(word):
		s.printf("Added %s to the word list.\n", word)
	default:
		s.printf("%s is not a candidate; select it first.\n", word)
	}
}

// open validates the file now and loads it after the debounce delay, so a
// burst of opens only loads the last one.
func (s *Session) open(ctx context.Context, path string) {
	if path == "" {
		s.printf("Usage: open <path>\n")
		return
	}
	text, err := ReadTextFile(path)
	if errors.Is(err, ErrNotText) {
		s.printf("%s\n", notTextMessage)
		return
	}
	if err != nil {
		s.printf("Could not open %s: %v\n", path, err)
		return
	}

	name := filepath.Base(path)
	s.opener.Trigger(func() {
		s.mu.Lock()
		s.docName, s.doc, s.video = name, text, nil
		s.mu.Unlock()

		s.render(func(w io.Writer) { renderDocument(w, name, text) })
		s.logger.Debug("document loaded", zap.String("file", name), zap.Int("bytes", len(text)))

		if s.uploader == nil {
			return
		}
		resp, err := s.uploader.Upload(ctx, name, text)
		if err != nil {
			s.logger.Warn("upload failed", zap.String("file", name), zap.Error(err))
			return
		}
		s.logger.Info("document uploaded", zap.String("document_id", resp.DocumentID), zap.Int("length", resp.ContentLength))
	})
}

// export writes the loaded video's subtitles to path as WebVTT, defaulting
// to <video id>.vtt in the working directory.
func (s *Session) export(path string) {
	v := s.Video()
	if v == nil {
		s.printf("Load a video first.\n")
		return
	}
	if len(v.Subtitles) == 0 {
		s.printf("No subtitles to export.\n")
		return
	}
	if path == "" {
		path = v.VideoID + ".vtt"
	}
	if err := os.WriteFile(path, []byte(subtitle.FormatVTT(v.Subtitles)), 0o644); err != nil {
		s.printf("Could not write %s: %v\n", path, err)
		return
	}
	s.logger.Debug("subtitles exported", zap.String("video_id", v.VideoID), zap.String("path", path))
	s.printf("Exported %d subtitles to %s.\n", len(v.Subtitles), path)
}

func (s *Session) loadVideo(ctx context.Context, rawURL string) {
	if rawURL == "" {
		s.printf("Please enter a YouTube URL.\n")
		return
	}

	v, err := s.videos.Fetch(ctx, rawURL)
	if errors.Is(err, subtitle.ErrInvalidURL) {
		s.printf("%s\n", invalidVideoMessage)
		return
	}
	if err != nil {
		s.printf(videoUnavailableFormat, err)
		return
	}

	s.mu.Lock()
	s.video, s.docName, s.doc = v, "", ""
	s.mu.Unlock()

	s.render(func(w io.Writer) { renderVideo(w, v) })
}
