package chroma

import (
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/cmdref"
)

// Shell languages understood by Detector.
const (
	LanguageBash       = "bash"
	LanguagePowerShell = "powershell"
	LanguageBatch      = "batch"
)

// Detector picks the shell language a command's syntax is written in.
type Detector struct{}

// NewDetector creates a new platform-based language detector.
func NewDetector() *Detector {
	return &Detector{}
}

// DetectFromCommand returns the lexer name for the command's shell. Commands
// tagged only for PowerShell or the Windows command prompt use those lexers;
// everything else is highlighted as bash.
func (d *Detector) DetectFromCommand(cmd cmdref.Command) string {
	switch {
	case cmd.HasPlatform("powershell") && !cmd.HasPlatform("bash") && !cmd.HasPlatform("cmd"):
		return LanguagePowerShell
	case cmd.HasPlatform("cmd") && !cmd.HasPlatform("bash") && !cmd.HasPlatform("powershell"):
		return LanguageBatch
	default:
		return LanguageBash
	}
}

// Supported reports whether chroma has a lexer for language.
func (d *Detector) Supported(language string) bool {
	return lexers.Get(language) != nil
}
