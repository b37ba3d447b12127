package clipboard

import (
	"os"
	"runtime"

	"github.com/fwojciec/cmdref"
)

// Environment describes the process context the strategies probe. Tests
// build one directly instead of touching the real environment.
type Environment struct {
	GOOS   string
	Getenv func(string) string
}

// DetectEnvironment returns the Environment of the running process.
func DetectEnvironment() Environment {
	return Environment{
		GOOS:   runtime.GOOS,
		Getenv: os.Getenv,
	}
}

func (e Environment) getenv(key string) string {
	if e.Getenv == nil {
		return ""
	}
	return e.Getenv(key)
}

// Local reports whether the session runs on the machine whose clipboard
// would be written, i.e. not over SSH.
func (e Environment) Local() bool {
	for _, key := range []string{"SSH_CONNECTION", "SSH_CLIENT", "SSH_TTY"} {
		if e.getenv(key) != "" {
			return false
		}
	}
	return true
}

// DisplayAvailable reports whether a clipboard owner is reachable: always on
// macOS and Windows, and on other systems only with an X11 or Wayland display.
func (e Environment) DisplayAvailable() bool {
	switch e.GOOS {
	case "darwin", "windows":
		return true
	}
	return e.getenv("DISPLAY") != "" || e.getenv("WAYLAND_DISPLAY") != ""
}

// Trusted reports whether the system clipboard API may be used. Both a local
// session and a reachable display are required.
func (e Environment) Trusted() bool {
	return e.Local() && e.DisplayAvailable()
}

// Multiplexer returns the passthrough mode for the terminal multiplexer the
// process runs under, or cmdref.PassthroughNone.
func (e Environment) Multiplexer() string {
	if e.getenv("TMUX") != "" {
		return cmdref.PassthroughTmux
	}
	if e.getenv("STY") != "" {
		return cmdref.PassthroughScreen
	}
	return cmdref.PassthroughNone
}
