package clipboard

import (
	"io"

	"github.com/fwojciec/cmdref"
)

// NewDefaultLadder returns the standard ladder: the system clipboard API,
// then clipboard helper processes, then OSC 52. Tiers disabled in cfg are
// left out. Terminal output for OSC 52 goes to out; nil means stderr.
func NewDefaultLadder(env Environment, cfg cmdref.ClipboardConfig, out io.Writer, opts ...LadderOption) *Ladder {
	var strategies []Strategy
	if !cfg.DisableSystem {
		strategies = append(strategies, NewSystemStrategy(env))
	}
	if !cfg.DisableCommand {
		strategies = append(strategies, NewCommandStrategy())
	}
	if !cfg.DisableOSC52 {
		osc := []OSC52Option{WithPassthrough(cfg.Passthrough)}
		if out != nil {
			osc = append(osc, WithOutput(out))
		}
		strategies = append(strategies, NewOSC52Strategy(env, osc...))
	}
	return NewLadder(strategies, opts...)
}
