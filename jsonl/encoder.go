package jsonl

import (
	"encoding/json"
	"io"

	"github.com/fwojciec/cmdref"
)

// WriteCommands writes one JSON record per command to w, in order. The
// output can be read back as a command chunk.
func WriteCommands(w io.Writer, commands []cmdref.Command) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, c := range commands {
		if err := enc.Encode(c); err != nil {
			return err
		}
	}
	return nil
}
