// Package clipboard copies text to the system clipboard by trying a ladder of
// strategies until one succeeds.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/fwojciec/cmdref"
)

// ErrUnavailable is returned by a strategy that declined to run in the
// current environment. The ladder moves on without counting it as an attempt.
var ErrUnavailable = errors.New("strategy unavailable")

// Strategy is a single way of putting text on the clipboard.
type Strategy interface {
	Name() string
	Copy(ctx context.Context, text string) error
}

// Unconfirmed is implemented by strategies whose success only means the
// request was delivered; nothing reports whether the clipboard was set.
type Unconfirmed interface {
	Unconfirmed() bool
}

// StrategyFunc adapts a function to the Strategy interface.
type StrategyFunc struct {
	Label string
	Fn    func(ctx context.Context, text string) error
}

// Name returns the strategy label.
func (s StrategyFunc) Name() string { return s.Label }

// Copy calls Fn.
func (s StrategyFunc) Copy(ctx context.Context, text string) error { return s.Fn(ctx, text) }

// Ensure Ladder implements the Copier interface.
var _ cmdref.Copier = (*Ladder)(nil)

// Ladder implements cmdref.Copier by trying strategies strictly in order.
// The first strategy to succeed wins; failures are absorbed.
type Ladder struct {
	strategies []Strategy
	logger     *log.Logger
}

// LadderOption configures a Ladder.
type LadderOption func(*Ladder)

// WithLogger sets the logger that records strategy failures.
func WithLogger(l *log.Logger) LadderOption {
	return func(lad *Ladder) {
		lad.logger = l
	}
}

// NewLadder returns a Ladder over the given strategies.
func NewLadder(strategies []Strategy, opts ...LadderOption) *Ladder {
	l := &Ladder{
		strategies: strategies,
		logger:     log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Strategies returns the names of the configured strategies in order.
func (l *Ladder) Strategies() []string {
	names := make([]string, 0, len(l.strategies))
	for _, s := range l.strategies {
		names = append(names, s.Name())
	}
	return names
}

// Copy reports whether text is now on the clipboard. Empty text fails
// without trying any strategy.
func (l *Ladder) Copy(ctx context.Context, text string) bool {
	if text == "" {
		return false
	}
	for _, s := range l.strategies {
		err := attempt(ctx, s, text)
		switch {
		case err == nil:
			if u, ok := s.(Unconfirmed); ok && u.Unconfirmed() {
				l.logger.Printf("clipboard: sent %d bytes via %s (unconfirmed)", len(text), s.Name())
			} else {
				l.logger.Printf("clipboard: copied %d bytes via %s", len(text), s.Name())
			}
			return true
		case errors.Is(err, ErrUnavailable):
			l.logger.Printf("clipboard: skipped %s", s.Name())
		default:
			l.logger.Printf("clipboard: %s failed: %v", s.Name(), err)
		}
	}
	return false
}

// attempt runs a single strategy, converting a panic into an error so one
// broken strategy cannot take down the ladder.
func attempt(ctx context.Context, s Strategy, text string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return s.Copy(ctx, text)
}
