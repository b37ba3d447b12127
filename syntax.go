package cmdref

// Token represents a syntax-highlighted segment of a command line.
type Token struct {
	Text  string // The text content of this token
	Style Style  // Visual style to apply (colors, bold, etc.)
}

// Style represents the visual styling for a token.
type Style struct {
	Foreground string // Hex color code (e.g., "#ff0000") or empty for default
	Bold       bool   // Whether the text should be bold
}

// Tokenizer extracts syntax tokens from a command line.
type Tokenizer interface {
	// Tokenize splits source into syntax-highlighted tokens for the given language.
	// Returns nil if the language is not supported.
	Tokenize(language, source string) []Token
}

// LanguageDetector picks the shell language a command is written in.
type LanguageDetector interface {
	// DetectFromCommand returns a language name understood by a Tokenizer.
	DetectFromCommand(cmd Command) string
}
