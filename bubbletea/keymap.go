package bubbletea

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// Compile-time interface verification.
var _ help.KeyMap = KeyMap{}

// KeyMap defines the key bindings for the command browser.
type KeyMap struct {
	Search         key.Binding
	Blur           key.Binding
	Up             key.Binding
	Down           key.Binding
	PlatformLeft   key.Binding
	PlatformRight  key.Binding
	TogglePlatform key.Binding
	ClearPlatform  key.Binding
	CopySyntax     key.Binding
	CopyExample    key.Binding
	Open           key.Binding
	Back           key.Binding
	Help           key.Binding
	Quit           key.Binding
	ForceQuit      key.Binding
}

// DefaultKeyMap returns the default vim-style key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc", "tab", "enter"),
			key.WithHelp("esc", "results"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		PlatformLeft: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/l", "platform"),
		),
		PlatformRight: key.NewBinding(
			key.WithKeys("l", "right"),
		),
		TogglePlatform: key.NewBinding(
			key.WithKeys(" ", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("space/1-9", "filter"),
		),
		ClearPlatform: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "all platforms"),
		),
		CopySyntax: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy syntax"),
		),
		CopyExample: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "copy example"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace", "q"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Down, k.TogglePlatform, k.CopySyntax, k.Open, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.Blur, k.Up, k.Down},
		{k.PlatformLeft, k.TogglePlatform, k.ClearPlatform},
		{k.CopySyntax, k.CopyExample, k.Open, k.Back},
		{k.Help, k.Quit},
	}
}
