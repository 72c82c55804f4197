package translate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Options configures lookup behaviour.
type Options struct {
	// WordLatency and SentenceLatency simulate provider round trips.
	WordLatency     time.Duration
	SentenceLatency time.Duration
}

// DefaultOptions mirrors the delays of the hosted mock backend.
func DefaultOptions() Options {
	return Options{
		WordLatency:     300 * time.Millisecond,
		SentenceLatency: 500 * time.Millisecond,
	}
}

// Service resolves fragments against a chain of dictionaries.
type Service struct {
	dictionaries []Dictionary
	opts         Options
	logger       *zap.Logger
}

// NewService creates a lookup service. Dictionaries are consulted in order
// and the first hit wins.
func NewService(logger *zap.Logger, opts Options, dictionaries ...Dictionary) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		dictionaries: dictionaries,
		opts:         opts,
		logger:       logger.Named("translate"),
	}
	s.logger.Debug("lookup service ready", zap.Int("dictionaries", len(dictionaries)))
	return s
}

// Lookup translates a word or a sentence. A miss is returned as a sentinel
// result with Found == false; an error means a dictionary failed or ctx
// was cancelled.
func (s *Service) Lookup(ctx context.Context, fragment string) (Result, error) {
	text := strings.TrimSpace(fragment)
	kind := Classify(text)

	if err := s.wait(ctx, kind); err != nil {
		return Result{}, err
	}

	key := NormalizeKey(text)
	for _, d := range s.dictionaries {
		res, ok, err := d.Lookup(ctx, kind, key)
		if err != nil {
			s.logger.Warn("dictionary lookup failed",
				zap.String("kind", kind.String()),
				zap.String("key", key),
				zap.Error(err),
			)
			return Result{}, fmt.Errorf("lookup %q: %w", key, err)
		}
		if ok {
			return res, nil
		}
	}

	s.logger.Debug("lookup miss", zap.String("kind", kind.String()), zap.String("key", key))
	return Miss(kind, text), nil
}

func (s *Service) wait(ctx context.Context, kind Kind) error {
	delay := s.opts.WordLatency
	if kind == KindSentence {
		delay = s.opts.SentenceLatency
	}
	if delay <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
