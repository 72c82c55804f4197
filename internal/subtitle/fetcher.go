package subtitle

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/video-stream/reader/internal/youtube"
)

// DefaultTimeout bounds each upstream attempt.
const DefaultTimeout = 5 * time.Second

// Fetcher resolves a video URL to its title and captions.
type Fetcher struct {
	sources []Source
	titles  TitleSource
	canned  map[string][]Entry
	timeout time.Duration
	logger  *zap.Logger
}

// NewFetcher creates a fetcher that tries sources in order, each bounded by
// timeout, before falling back to CannedSubtitles.
func NewFetcher(logger *zap.Logger, timeout time.Duration, titles TitleSource, sources ...Source) *Fetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		sources: sources,
		titles:  titles,
		canned:  CannedSubtitles,
		timeout: timeout,
		logger:  logger.Named("subtitle"),
	}
}

// Fetch returns ErrInvalidURL for unrecognised input. Upstream failures
// degrade to canned or empty captions; only cancellation of ctx is
// reported as an error afterwards.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Video, error) {
	id, ok := youtube.ExtractVideoID(rawURL)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}

	var (
		title    string
		captions []Entry
		g        errgroup.Group
	)
	g.Go(func() error {
		title = f.title(ctx, id)
		return nil
	})
	g.Go(func() error {
		captions = f.captions(ctx, id)
		return nil
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", id, err)
	}

	f.logger.Info("subtitles resolved",
		zap.String("video_id", id),
		zap.String("title", title),
		zap.Int("entries", len(captions)),
	)

	return &Video{
		VideoID:       id,
		Title:         title,
		AvailableLang: []string{"en"},
		Subtitles:     captions,
	}, nil
}

func (f *Fetcher) title(ctx context.Context, id string) string {
	if f.titles == nil {
		return UnknownTitle
	}

	attemptCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	title, err := f.titles.Title(attemptCtx, id)
	if err != nil {
		f.logger.Warn("title lookup failed", zap.String("video_id", id), zap.Error(err))
		return UnknownTitle
	}
	if title == "" {
		return UnknownTitle
	}
	return title
}

func (f *Fetcher) captions(ctx context.Context, id string) []Entry {
	for _, src := range f.sources {
		entries, err := f.attempt(ctx, src, id)
		if err != nil {
			f.logger.Warn("caption source failed, trying next",
				zap.String("source", src.Name()),
				zap.String("video_id", id),
				zap.Error(err),
			)
			continue
		}
		if len(entries) > 0 {
			return entries
		}
		f.logger.Debug("caption source returned nothing", zap.String("source", src.Name()))
	}
	if ctx.Err() != nil {
		return nil
	}

	if canned, ok := f.canned[id]; ok {
		f.logger.Info("using canned captions", zap.String("video_id", id), zap.Error(ErrUpstreamUnavailable))
		return append([]Entry(nil), canned...)
	}
	f.logger.Info("no captions available", zap.String("video_id", id), zap.Error(ErrUpstreamUnavailable))
	return []Entry{}
}

func (f *Fetcher) attempt(ctx context.Context, src Source, id string) ([]Entry, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()
	return src.Captions(attemptCtx, id)
}

// NewMirrorFetcher builds a fetcher over Invidious mirrors with oEmbed titles.
// An empty oembedURL disables the title lookup.
func NewMirrorFetcher(logger *zap.Logger, timeout time.Duration, oembedURL string, mirrors []string) *Fetcher {
	client := &http.Client{}
	sources := make([]Source, 0, len(mirrors))
	for _, m := range mirrors {
		if m = strings.TrimSpace(m); m != "" {
			sources = append(sources, NewInvidiousSource(m, client))
		}
	}

	var titles TitleSource
	if oembedURL != "" {
		titles = NewOEmbedTitles(oembedURL, client)
	}
	return NewFetcher(logger, timeout, titles, sources...)
}
