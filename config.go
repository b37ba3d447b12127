package cmdref

import (
	"errors"
	"fmt"
	"time"
)

// Themes.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Terminal multiplexer passthrough modes for OSC 52 copies.
const (
	PassthroughAuto   = "auto"
	PassthroughTmux   = "tmux"
	PassthroughScreen = "screen"
	PassthroughNone   = "none"
)

// DefaultSearchDelay is the simulated search latency.
const DefaultSearchDelay = 300 * time.Millisecond

// Config holds user configuration.
type Config struct {
	CorpusDir       string          `toml:"corpus_dir"`       // Empty uses the embedded corpus
	DefaultPlatform string          `toml:"default_platform"` // Platform selected at startup
	SearchDelayMS   int             `toml:"search_delay_ms"`  // Simulated search latency
	Theme           string          `toml:"theme"`            // "dark" or "light"
	LogFile         string          `toml:"log_file"`         // Debug log destination
	Clipboard       ClipboardConfig `toml:"clipboard"`
}

// ClipboardConfig controls the copy strategies.
type ClipboardConfig struct {
	DisableSystem  bool   `toml:"disable_system"`
	DisableCommand bool   `toml:"disable_command"`
	DisableOSC52   bool   `toml:"disable_osc52"`
	Passthrough    string `toml:"passthrough"` // auto, tmux, screen or none
	SuccessMessage string `toml:"success_message"`
	FailureMessage string `toml:"failure_message"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		SearchDelayMS: int(DefaultSearchDelay / time.Millisecond),
		Theme:         ThemeDark,
		Clipboard: ClipboardConfig{
			Passthrough: PassthroughAuto,
		},
	}
}

// SearchDelay returns the configured search latency as a duration.
func (c Config) SearchDelay() time.Duration {
	return time.Duration(c.SearchDelayMS) * time.Millisecond
}

// Validate reports configuration values that cannot be honored.
func (c Config) Validate() error {
	var errs []error
	switch c.Theme {
	case ThemeDark, ThemeLight:
	default:
		errs = append(errs, fmt.Errorf("theme %q: must be %q or %q", c.Theme, ThemeDark, ThemeLight))
	}
	switch c.Clipboard.Passthrough {
	case PassthroughAuto, PassthroughTmux, PassthroughScreen, PassthroughNone:
	default:
		errs = append(errs, fmt.Errorf("clipboard.passthrough %q: must be one of auto, tmux, screen, none", c.Clipboard.Passthrough))
	}
	if c.SearchDelayMS < 0 {
		errs = append(errs, fmt.Errorf("search_delay_ms %d: must not be negative", c.SearchDelayMS))
	}
	return errors.Join(errs...)
}

// ConfigLoader reads user configuration from a file.
type ConfigLoader interface {
	Load(path string) (Config, error)
}

// Environment variables read by ApplyEnv.
const (
	EnvConfig   = "CMDREF_CONFIG"
	EnvCorpus   = "CMDREF_CORPUS"
	EnvPlatform = "CMDREF_PLATFORM"
	EnvTheme    = "CMDREF_THEME"
)

// ApplyEnv overrides fields from environment variables. Unset or empty
// variables leave the field alone.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if dir := getenv(EnvCorpus); dir != "" {
		c.CorpusDir = dir
	}
	if id := getenv(EnvPlatform); id != "" {
		c.DefaultPlatform = id
	}
	if theme := getenv(EnvTheme); theme != "" {
		c.Theme = theme
	}
}
