// Package toml reads and writes cmdref configuration files.
package toml

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	tomllib "github.com/BurntSushi/toml"
	"github.com/fwojciec/cmdref"
)

// Compile-time interface verification.
var _ cmdref.ConfigLoader = (*Loader)(nil)

// Loader decodes configuration files over cmdref.DefaultConfig.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the config file at path. A missing file yields the defaults.
// Keys that do not map to a config field are an error.
func (l *Loader) Load(path string) (cmdref.Config, error) {
	cfg := cmdref.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	md, err := tomllib.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cmdref.DefaultConfig(), nil
		}
		return cmdref.Config{}, fmt.Errorf("decode %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cmdref.Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return cmdref.Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
func Encode(w io.Writer, cfg cmdref.Config) error {
	return tomllib.NewEncoder(w).Encode(cfg)
}
