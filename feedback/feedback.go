// Package feedback tracks the transient notification shown after a copy.
package feedback

import (
	"context"
	"sync"

	"github.com/fwojciec/cmdref"
)

// Default toast messages.
const (
	DefaultSuccessMessage = "Copied to clipboard!"
	DefaultFailureMessage = "Failed to copy to clipboard"
)

// State is the notification a consumer renders. Visible is false once
// dismissed; Success and Message keep the last copy's values.
type State struct {
	Visible bool
	Success bool
	Message string
}

// Controller wraps a Copier and records the outcome of the latest copy.
// It owns no timers: auto-dismiss is left to the consumer.
type Controller struct {
	copier         cmdref.Copier
	successMessage string
	failureMessage string

	mu         sync.Mutex
	state      State
	generation uint64
}

// Option configures a Controller.
type Option func(*Controller)

// WithDefaultMessages overrides the messages used when Copy is given none.
// Empty arguments keep the built-in defaults.
func WithDefaultMessages(success, failure string) Option {
	return func(c *Controller) {
		if success != "" {
			c.successMessage = success
		}
		if failure != "" {
			c.failureMessage = failure
		}
	}
}

// NewController returns a Controller copying through copier.
func NewController(copier cmdref.Copier, opts ...Option) *Controller {
	c := &Controller{
		copier:         copier,
		successMessage: DefaultSuccessMessage,
		failureMessage: DefaultFailureMessage,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Copy copies text and makes the notification visible with the outcome,
// replacing whatever was shown before. Empty messages use the defaults.
func (c *Controller) Copy(ctx context.Context, text, successMessage, failureMessage string) bool {
	ok, _ := c.CopyGeneration(ctx, text, successMessage, failureMessage)
	return ok
}

// CopyGeneration is Copy that also returns the generation of the
// notification it set, for use with DismissGeneration.
func (c *Controller) CopyGeneration(ctx context.Context, text, successMessage, failureMessage string) (bool, uint64) {
	ok := c.copier.Copy(ctx, text)

	msg := failureMessage
	if msg == "" {
		msg = c.failureMessage
	}
	if ok {
		msg = successMessage
		if msg == "" {
			msg = c.successMessage
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.state = State{Visible: true, Success: ok, Message: msg}
	return ok, c.generation
}

// Dismiss hides the notification.
func (c *Controller) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Visible = false
}

// DismissGeneration hides the notification only if gen, as returned by
// CopyGeneration, is still the latest copy. It reports whether it dismissed.
func (c *Controller) DismissGeneration(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return false
	}
	c.state.Visible = false
	return true
}

// State returns the current notification.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Generation counts completed copies. A consumer scheduling an auto-dismiss
// compares it to tell whether a newer notification replaced the one it timed.
func (c *Controller) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}
