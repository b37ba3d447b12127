package clipboard

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Helper is an external program that reads text on stdin and puts it on the
// clipboard.
type Helper struct {
	Bin  string
	Args []string
}

// DefaultHelpers lists the clipboard helpers tried, in order.
var DefaultHelpers = []Helper{
	{Bin: "pbcopy"},
	{Bin: "wl-copy", Args: []string{"--type", "text/plain"}},
	{Bin: "xclip", Args: []string{"-selection", "clipboard"}},
	{Bin: "xsel", Args: []string{"--clipboard", "--input"}},
	{Bin: "clip.exe"},
	{Bin: "termux-clipboard-set"},
}

// helperWaitDelay bounds how long a killed helper may keep its pipes open.
const helperWaitDelay = time.Second

// RunFunc runs the helper at path with stdin as its input.
type RunFunc func(ctx context.Context, path string, args []string, stdin string) error

// CommandStrategy pipes text into the first clipboard helper found on PATH
// that exits successfully. Each helper process is reaped before Copy returns.
type CommandStrategy struct {
	helpers  []Helper
	lookPath func(string) (string, error)
	run      RunFunc
}

// CommandOption configures a CommandStrategy.
type CommandOption func(*CommandStrategy)

// WithHelpers replaces the helper list.
func WithHelpers(helpers []Helper) CommandOption {
	return func(s *CommandStrategy) {
		s.helpers = helpers
	}
}

// WithLookPath replaces PATH resolution.
func WithLookPath(fn func(string) (string, error)) CommandOption {
	return func(s *CommandStrategy) {
		s.lookPath = fn
	}
}

// WithRunner replaces process execution.
func WithRunner(fn RunFunc) CommandOption {
	return func(s *CommandStrategy) {
		s.run = fn
	}
}

// NewCommandStrategy returns a CommandStrategy over DefaultHelpers.
func NewCommandStrategy(opts ...CommandOption) *CommandStrategy {
	s := &CommandStrategy{
		helpers:  DefaultHelpers,
		lookPath: exec.LookPath,
		run:      runHelper,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name implements Strategy.
func (s *CommandStrategy) Name() string { return "command" }

// Copy implements Strategy.
func (s *CommandStrategy) Copy(ctx context.Context, text string) error {
	var errs []error
	for _, h := range s.helpers {
		path, err := s.lookPath(h.Bin)
		if err != nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.run(ctx, path, h.Args, text); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", h.Bin, err))
			continue
		}
		return nil
	}
	if len(errs) == 0 {
		return fmt.Errorf("%w: no clipboard helper on PATH", ErrUnavailable)
	}
	return errors.Join(errs...)
}

// runHelper starts the helper and waits for it. Stdout and stderr are left
// unattached: helpers such as xclip fork a process that keeps serving the
// selection, and an attached pipe would keep Wait blocked until it exits.
func runHelper(ctx context.Context, path string, args []string, stdin string) error {
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = strings.NewReader(stdin)
	cmd.WaitDelay = helperWaitDelay
	return cmd.Run()
}
