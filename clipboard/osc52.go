package clipboard

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/fwojciec/cmdref"
	"golang.org/x/term"
)

// OSC52Strategy asks the terminal emulator to set the clipboard with an
// OSC 52 escape sequence. It works over SSH; whether the clipboard is actually
// set depends on the terminal, which reports nothing back.
type OSC52Strategy struct {
	env         Environment
	out         io.Writer
	passthrough string
	force       bool
}

// OSC52Option configures an OSC52Strategy.
type OSC52Option func(*OSC52Strategy)

// WithOutput sets the terminal writer. Defaults to os.Stderr.
func WithOutput(w io.Writer) OSC52Option {
	return func(s *OSC52Strategy) {
		s.out = w
	}
}

// WithPassthrough sets the multiplexer passthrough mode. cmdref.PassthroughAuto
// detects tmux and screen from the environment.
func WithPassthrough(mode string) OSC52Option {
	return func(s *OSC52Strategy) {
		s.passthrough = mode
	}
}

// WithForce writes the sequence even when the output is not a terminal.
func WithForce(force bool) OSC52Option {
	return func(s *OSC52Strategy) {
		s.force = force
	}
}

// NewOSC52Strategy returns an OSC52Strategy writing to stderr.
func NewOSC52Strategy(env Environment, opts ...OSC52Option) *OSC52Strategy {
	s := &OSC52Strategy{
		env:         env,
		out:         os.Stderr,
		passthrough: cmdref.PassthroughAuto,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name implements Strategy.
func (s *OSC52Strategy) Name() string { return "osc52" }

// Unconfirmed implements Unconfirmed. Terminals do not acknowledge OSC 52.
func (s *OSC52Strategy) Unconfirmed() bool { return true }

// Copy implements Strategy.
func (s *OSC52Strategy) Copy(ctx context.Context, text string) error {
	if !s.force && !isTerminal(s.out) {
		return fmt.Errorf("%w: output is not a terminal", ErrUnavailable)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.Sequence(text).WriteTo(s.out)
	return err
}

// Sequence returns the escape sequence Copy writes for text.
func (s *OSC52Strategy) Sequence(text string) osc52.Sequence {
	seq := osc52.New(text)
	mode := s.passthrough
	if mode == cmdref.PassthroughAuto || mode == "" {
		mode = s.env.Multiplexer()
	}
	switch mode {
	case cmdref.PassthroughTmux:
		seq = seq.Tmux()
	case cmdref.PassthroughScreen:
		seq = seq.Screen()
	}
	return seq
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
