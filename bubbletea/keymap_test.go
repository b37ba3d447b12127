package bubbletea_test

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/cmdref/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestDefaultKeyMap_HasExpectedBindings(t *testing.T) {
	t.Parallel()

	km := bubbletea.DefaultKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{"slash focuses search", keyRunes("/"), km.Search},
		{"esc leaves search", tea.KeyMsg{Type: tea.KeyEsc}, km.Blur},
		{"tab leaves search", tea.KeyMsg{Type: tea.KeyTab}, km.Blur},
		{"j moves down", keyRunes("j"), km.Down},
		{"arrow down moves down", tea.KeyMsg{Type: tea.KeyDown}, km.Down},
		{"k moves up", keyRunes("k"), km.Up},
		{"h moves platform cursor left", keyRunes("h"), km.PlatformLeft},
		{"l moves platform cursor right", keyRunes("l"), km.PlatformRight},
		{"space toggles platform", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, km.TogglePlatform},
		{"digit toggles platform", keyRunes("3"), km.TogglePlatform},
		{"zero clears platform", keyRunes("0"), km.ClearPlatform},
		{"y copies syntax", keyRunes("y"), km.CopySyntax},
		{"e copies example", keyRunes("e"), km.CopyExample},
		{"enter opens detail", tea.KeyMsg{Type: tea.KeyEnter}, km.Open},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, km.Back},
		{"q quits", keyRunes("q"), km.Quit},
		{"ctrl+c always quits", tea.KeyMsg{Type: tea.KeyCtrlC}, km.ForceQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.True(t, key.Matches(tt.msg, tt.binding))
		})
	}
}

func TestKeyMap_Help(t *testing.T) {
	t.Parallel()

	km := bubbletea.DefaultKeyMap()

	for _, b := range km.ShortHelp() {
		assert.NotEmpty(t, b.Help().Key)
	}
	for _, column := range km.FullHelp() {
		for _, b := range column {
			assert.NotEmpty(t, b.Help().Desc)
		}
	}
}
