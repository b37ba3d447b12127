package cmdref

// ColorPair represents a foreground and background color combination.
// Colors should be hex strings in "#RRGGBB" format (e.g., "#ff0000" for red).
// Empty strings are valid and indicate no color override (use terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for all visual elements of the browser.
type Styles struct {
	Title       ColorPair // Application title and command names
	Subtitle    ColorPair // Command subtitles and secondary text
	Border      ColorPair // Card borders
	Selected    ColorPair // Border of the highlighted card
	Syntax      ColorPair // Fallback for syntax patterns when highlighting is unavailable
	Safe        ColorPair // Safety badge for safe commands
	Caution     ColorPair // Safety badge for caution commands
	Dangerous   ColorPair // Safety badge for dangerous commands
	Platform    ColorPair // Platform badge when the color token is unknown
	PlatformOn  ColorPair // Platform bar entry that is selected
	ToastOK     ColorPair // Toast after a successful copy
	ToastFailed ColorPair // Toast after a failed copy
	Muted       ColorPair // Help text, counters, empty states

	// PlatformColors maps a platform color token to its badge colors.
	PlatformColors map[string]ColorPair
}

// SafetyStyle returns the badge colors for a safety level.
func (s Styles) SafetyStyle(level Safety) ColorPair {
	switch level {
	case SafetyCaution:
		return s.Caution
	case SafetyDangerous:
		return s.Dangerous
	default:
		return s.Safe
	}
}

// PlatformStyle returns the badge colors for a platform color token,
// falling back to the generic platform style.
func (s Styles) PlatformStyle(token string) ColorPair {
	if cp, ok := s.PlatformColors[token]; ok {
		return cp
	}
	return s.Platform
}

// Color is a hex color string.
type Color string

// Palette holds the semantic colors used for syntax highlighting.
type Palette struct {
	Background Color
	Foreground Color

	Keyword     Color
	String      Color
	Number      Color
	Comment     Color
	Operator    Color
	Function    Color
	Variable    Color
	Punctuation Color
}

// Theme provides styles for rendering the browser.
// Different implementations can provide light/dark variants.
type Theme interface {
	Styles() Styles
	Palette() Palette
}
