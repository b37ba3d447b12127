package clipboard

import (
	"context"

	"github.com/atotto/clipboard"
)

// SystemStrategy writes through the platform clipboard API. It runs only when
// the environment is trusted (a local session with a reachable display);
// otherwise it is skipped without touching the API.
type SystemStrategy struct {
	env   Environment
	write func(string) error
}

// SystemOption configures a SystemStrategy.
type SystemOption func(*SystemStrategy)

// WithSystemWriter replaces the clipboard API call.
func WithSystemWriter(write func(string) error) SystemOption {
	return func(s *SystemStrategy) {
		s.write = write
	}
}

// NewSystemStrategy returns a SystemStrategy gated on env.
func NewSystemStrategy(env Environment, opts ...SystemOption) *SystemStrategy {
	s := &SystemStrategy{
		env:   env,
		write: writeAll,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func writeAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	return clipboard.WriteAll(text)
}

// Name implements Strategy.
func (s *SystemStrategy) Name() string { return "system" }

// Copy implements Strategy.
func (s *SystemStrategy) Copy(ctx context.Context, text string) error {
	if !s.env.Trusted() {
		return ErrUnavailable
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.write(text)
}
