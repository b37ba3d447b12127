// Package lipgloss provides theme implementations using the Lipgloss styling library.
package lipgloss

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/cmdref"
)

// Compile-time interface verification.
var _ cmdref.Theme = (*Theme)(nil)

// Theme implements cmdref.Theme with Lipgloss-compatible colors.
type Theme struct {
	name    string
	styles  cmdref.Styles
	palette cmdref.Palette
}

// Name returns cmdref.ThemeDark or cmdref.ThemeLight.
func (t *Theme) Name() string {
	return t.name
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() cmdref.Styles {
	return t.styles
}

// Palette returns the semantic color palette for this theme.
func (t *Theme) Palette() cmdref.Palette {
	return t.palette
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// ThemeByName returns the theme with the given name, or the default theme
// for an unknown name.
func ThemeByName(name string) *Theme {
	if name == cmdref.ThemeLight {
		return LightTheme()
	}
	return DarkTheme()
}

// DarkTheme returns a theme optimized for dark terminal backgrounds.
func DarkTheme() *Theme {
	return &Theme{
		name: cmdref.ThemeDark,
		styles: cmdref.Styles{
			Title:       cmdref.ColorPair{Foreground: "#cdd6f4"},
			Subtitle:    cmdref.ColorPair{Foreground: "#a6adc8"},
			Border:      cmdref.ColorPair{Foreground: "#45475a"},
			Selected:    cmdref.ColorPair{Foreground: "#89b4fa"}, // Blue
			Syntax:      cmdref.ColorPair{Foreground: "#cdd6f4", Background: "#181825"},
			Safe:        cmdref.ColorPair{Foreground: "#1e1e2e", Background: "#a6e3a1"},
			Caution:     cmdref.ColorPair{Foreground: "#1e1e2e", Background: "#f9e2af"},
			Dangerous:   cmdref.ColorPair{Foreground: "#1e1e2e", Background: "#f38ba8"},
			Platform:    cmdref.ColorPair{Foreground: "#cdd6f4", Background: "#313244"},
			PlatformOn:  cmdref.ColorPair{Foreground: "#1e1e2e", Background: "#89b4fa"},
			ToastOK:     cmdref.ColorPair{Foreground: "#1e1e2e", Background: "#a6e3a1"},
			ToastFailed: cmdref.ColorPair{Foreground: "#1e1e2e", Background: "#f38ba8"},
			Muted:       cmdref.ColorPair{Foreground: "#6c7086"},
			PlatformColors: map[string]cmdref.ColorPair{
				"linux":      {Foreground: "#1e1e2e", Background: "#f9e2af"},
				"macos":      {Foreground: "#1e1e2e", Background: "#bac2de"},
				"windows":    {Foreground: "#1e1e2e", Background: "#74c7ec"},
				"bash":       {Foreground: "#1e1e2e", Background: "#a6e3a1"},
				"zsh":        {Foreground: "#1e1e2e", Background: "#94e2d5"},
				"powershell": {Foreground: "#1e1e2e", Background: "#89b4fa"},
				"cmd":        {Foreground: "#cdd6f4", Background: "#585b70"},
			},
		},
		palette: cmdref.Palette{
			// Catppuccin Mocha
			Background: "#1e1e2e",
			Foreground: "#cdd6f4",

			Keyword:     "#cba6f7",
			String:      "#a6e3a1",
			Number:      "#fab387",
			Comment:     "#6c7086",
			Operator:    "#89dceb",
			Function:    "#89b4fa",
			Variable:    "#f5c2e7",
			Punctuation: "#9399b2",
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds.
func LightTheme() *Theme {
	return &Theme{
		name: cmdref.ThemeLight,
		styles: cmdref.Styles{
			Title:       cmdref.ColorPair{Foreground: "#4c4f69"},
			Subtitle:    cmdref.ColorPair{Foreground: "#6c6f85"},
			Border:      cmdref.ColorPair{Foreground: "#bcc0cc"},
			Selected:    cmdref.ColorPair{Foreground: "#1e66f5"}, // Blue
			Syntax:      cmdref.ColorPair{Foreground: "#4c4f69", Background: "#e6e9ef"},
			Safe:        cmdref.ColorPair{Foreground: "#ffffff", Background: "#40a02b"},
			Caution:     cmdref.ColorPair{Foreground: "#ffffff", Background: "#df8e1d"},
			Dangerous:   cmdref.ColorPair{Foreground: "#ffffff", Background: "#d20f39"},
			Platform:    cmdref.ColorPair{Foreground: "#4c4f69", Background: "#ccd0da"},
			PlatformOn:  cmdref.ColorPair{Foreground: "#ffffff", Background: "#1e66f5"},
			ToastOK:     cmdref.ColorPair{Foreground: "#ffffff", Background: "#40a02b"},
			ToastFailed: cmdref.ColorPair{Foreground: "#ffffff", Background: "#d20f39"},
			Muted:       cmdref.ColorPair{Foreground: "#9ca0b0"},
			PlatformColors: map[string]cmdref.ColorPair{
				"linux":      {Foreground: "#ffffff", Background: "#df8e1d"},
				"macos":      {Foreground: "#ffffff", Background: "#5c5f77"},
				"windows":    {Foreground: "#ffffff", Background: "#209fb5"},
				"bash":       {Foreground: "#ffffff", Background: "#40a02b"},
				"zsh":        {Foreground: "#ffffff", Background: "#179299"},
				"powershell": {Foreground: "#ffffff", Background: "#1e66f5"},
				"cmd":        {Foreground: "#ffffff", Background: "#7c7f93"},
			},
		},
		palette: cmdref.Palette{
			// Catppuccin Latte
			Background: "#eff1f5",
			Foreground: "#4c4f69",

			Keyword:     "#8839ef",
			String:      "#40a02b",
			Number:      "#fe640b",
			Comment:     "#9ca0b0",
			Operator:    "#04a5e5",
			Function:    "#1e66f5",
			Variable:    "#ea76cb",
			Punctuation: "#7c7f93",
		},
	}
}

// Style returns a Lipgloss style with the pair's colors. Empty colors are
// left unset. If renderer is nil, the default lipgloss renderer is used.
func Style(cp cmdref.ColorPair, renderer *lipgloss.Renderer) lipgloss.Style {
	var s lipgloss.Style
	if renderer != nil {
		s = renderer.NewStyle()
	} else {
		s = lipgloss.NewStyle()
	}
	if cp.Foreground != "" {
		s = s.Foreground(lipgloss.Color(cp.Foreground))
	}
	if cp.Background != "" {
		s = s.Background(lipgloss.Color(cp.Background))
	}
	return s
}
