// Package fs resolves cmdref's files on the local file system.
package fs

import (
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/cmdref/corpus"
)

// appName is the directory name used under the XDG base directories.
const appName = "cmdref"

// DefaultConfigPath returns the default config file location.
// Uses XDG_CONFIG_HOME if set, otherwise falls back to ~/.config/cmdref,
// or the working directory if home is unavailable.
func DefaultConfigPath(getenv func(string) string) string {
	if xdg := getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName, "config.toml")
	}
	home := homeDir(getenv)
	if home == "" {
		return "config.toml"
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}

// DefaultLogPath returns where debug logs are written when no log file is
// configured. Uses XDG_STATE_HOME if set, otherwise ~/.local/state/cmdref,
// or the system temp directory if home is unavailable.
func DefaultLogPath(getenv func(string) string) string {
	if xdg := getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, appName, "debug.log")
	}
	home := homeDir(getenv)
	if home == "" {
		return filepath.Join(os.TempDir(), appName+"-debug.log")
	}
	return filepath.Join(home, ".local", "state", appName, "debug.log")
}

// homeDir prefers HOME from getenv and falls back to the platform lookup.
func homeDir(getenv func(string) string) string {
	if home := getenv("HOME"); home != "" {
		return home
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}

// EnsureDir creates the parent directory of path if it does not exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

// CorpusFS returns the corpus directory as a file system, or the embedded
// corpus when dir is empty.
func CorpusFS(dir string) (iofs.FS, error) {
	if dir == "" {
		return corpus.FS, nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &iofs.PathError{Op: "open", Path: dir, Err: iofs.ErrInvalid}
	}
	return os.DirFS(dir), nil
}
