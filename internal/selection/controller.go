package selection

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/video-stream/reader/internal/translate"
	"github.com/video-stream/reader/internal/vocab"
)

// Translator resolves a fragment. translate.Service and client.Client both
// satisfy it.
type Translator interface {
	Lookup(ctx context.Context, fragment string) (translate.Result, error)
}

// Controller owns the selection state and feeds resolved single words into
// the vocabulary store. It is safe to call from several goroutines.
type Controller struct {
	mu         sync.Mutex
	state      State
	translator Translator
	store      *vocab.Store
	listeners  []func(State)
	logger     *zap.Logger
}

func NewController(translator Translator, store *vocab.Store, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		translator: translator,
		store:      store,
		logger:     logger.Named("selection"),
	}
}

// OnChange registers fn to receive every applied state. fn runs with the
// controller locked and must not call back into it.
func (c *Controller) OnChange(fn func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// State returns the current snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Select handles a selection event and blocks until its lookup finishes.
// It returns the controller state at that point, which is a newer
// selection's state if this one was superseded meanwhile.
func (c *Controller) Select(ctx context.Context, text string) State {
	c.mu.Lock()
	pending := Select(c.state, text)
	c.apply(pending)
	c.mu.Unlock()

	if pending.Status != StatusPending {
		if pending.Err != nil {
			c.logger.Debug("selection rejected", zap.Uint64("seq", pending.Seq), zap.Error(pending.Err))
		}
		return pending
	}

	res, err := c.translator.Lookup(ctx, pending.Text)

	c.mu.Lock()
	defer c.mu.Unlock()

	var next State
	var applied bool
	if err != nil {
		next, applied = Fail(c.state, pending.Seq, err)
	} else {
		next, applied = Resolve(c.state, pending.Seq, res)
	}
	if !applied {
		c.logger.Debug("discarding stale lookup",
			zap.Uint64("seq", pending.Seq),
			zap.Uint64("latest", c.state.Seq),
		)
		return c.state
	}

	if err != nil {
		c.logger.Warn("lookup failed", zap.String("text", pending.Text), zap.Error(err))
	}
	if w, ok := next.Candidate(); ok && c.store != nil {
		if c.store.AddCandidate(next.Text, w) {
			c.logger.Debug("candidate added", zap.String("word", next.Text))
		}
	}
	c.apply(next)
	return next
}

// Clear resets to Empty; an in-flight lookup will be discarded.
func (c *Controller) Clear() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := Clear(c.state)
	c.apply(next)
	return next
}

// apply must be called with mu held.
func (c *Controller) apply(s State) {
	c.state = s
	for _, fn := range c.listeners {
		fn(s)
	}
}
