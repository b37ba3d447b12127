// Package cmdref provides domain types for browsing a reference corpus of
// command-line tools.
package cmdref

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyCorpus is returned when a corpus contains no commands.
var ErrEmptyCorpus = errors.New("corpus contains no commands")

// ErrCommandNotFound is returned when a command name is not in the corpus.
var ErrCommandNotFound = errors.New("command not found")

// Command is a single reference card. Commands are immutable once loaded.
type Command struct {
	Name            string        `json:"name"`
	Subtitle        string        `json:"subtitle"`
	Description     string        `json:"description"`
	Safety          Safety        `json:"safety"`
	Platforms       []PlatformTag `json:"platforms"`
	Categories      []string      `json:"categories,omitempty"`
	CommonFlags     []Flag        `json:"common_flags,omitempty"`
	Prerequisites   []string      `json:"prerequisites,omitempty"`
	Notes           []string      `json:"notes,omitempty"`
	Warnings        []string      `json:"warnings,omitempty"`
	Examples        []Example     `json:"examples,omitempty"`
	RelatedCommands []string      `json:"related_commands,omitempty"`
	SyntaxPattern   string        `json:"syntax_pattern"`
	ManPageURL      string        `json:"man_page_url,omitempty"`
}

// HasPlatform reports whether the command is tagged with the platform id.
func (c Command) HasPlatform(id string) bool {
	for _, p := range c.Platforms {
		if p.ID == id {
			return true
		}
	}
	return false
}

// PlatformTag is a platform reference carried by a command.
type PlatformTag struct {
	ID         string `json:"id"`          // Filter key, matches Platform.ID
	Name       string `json:"name"`        // Display name
	ColorToken string `json:"color_token"` // Theme color key for the badge
	Icon       string `json:"icon,omitempty"`
}

// Flag documents a commonly used option.
type Flag struct {
	Flag        string `json:"flag"`
	Description string `json:"description"`
}

// Example is a worked invocation of a command.
type Example struct {
	Title       string `json:"title"`
	Command     string `json:"command"`
	Description string `json:"description,omitempty"`
}

// Safety classifies how destructive a command can be.
type Safety int

// Safety levels.
const (
	SafetySafe Safety = iota
	SafetyCaution
	SafetyDangerous
)

// String returns the lowercase name of the safety level.
func (s Safety) String() string {
	switch s {
	case SafetySafe:
		return "safe"
	case SafetyCaution:
		return "caution"
	case SafetyDangerous:
		return "dangerous"
	default:
		return fmt.Sprintf("safety(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Safety) MarshalText() ([]byte, error) {
	switch s {
	case SafetySafe, SafetyCaution, SafetyDangerous:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("invalid safety level %d", int(s))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
// An empty value decodes to SafetySafe.
func (s *Safety) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "safe":
		*s = SafetySafe
	case "caution":
		*s = SafetyCaution
	case "dangerous":
		*s = SafetyDangerous
	default:
		return fmt.Errorf("invalid safety level %q", string(text))
	}
	return nil
}

// Platform categories.
const (
	CategoryOS    = "os"
	CategoryShell = "shell"
)

// Platform describes a filterable platform.
type Platform struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"` // e.g. "os" or "shell"
}

// Copier puts text on the system clipboard.
type Copier interface {
	// Copy reports whether text is now on the clipboard. It never fails
	// loudly: every failure is reported as false.
	Copy(ctx context.Context, text string) bool
}

// CorpusLoader loads a corpus from a data source.
type CorpusLoader interface {
	Load(ctx context.Context) (*Corpus, error)
}

// Browser presents a corpus interactively and blocks until the user exits.
type Browser interface {
	Browse(ctx context.Context, corpus *Corpus) error
}
