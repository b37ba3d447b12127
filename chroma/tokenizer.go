// Package chroma provides syntax highlighting using the chroma library.
package chroma

import (
	"errors"
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/cmdref"
)

// Compile-time interface verification.
var _ cmdref.Tokenizer = (*Tokenizer)(nil)

// StyleFunc maps chroma token types to cmdref styles.
type StyleFunc func(chromalib.TokenType) cmdref.Style

// Tokenizer extracts syntax tokens using chroma.
type Tokenizer struct {
	styleFunc StyleFunc
}

// NewTokenizer creates a new chroma-based tokenizer with the given style function.
// Use StyleFromPalette to create a style function from a cmdref.Palette.
func NewTokenizer(styleFunc StyleFunc) (*Tokenizer, error) {
	if styleFunc == nil {
		return nil, errors.New("chroma: styleFunc cannot be nil")
	}
	return &Tokenizer{styleFunc: styleFunc}, nil
}

// Tokenize splits a command line into syntax-highlighted tokens for the given language.
// The tokens concatenate back to source exactly; the newline lexers append
// to unterminated input is dropped.
// Returns nil if the language is not supported or an error occurs.
// Returns an empty slice for empty source (valid input, no tokens).
func (t *Tokenizer) Tokenize(language, source string) []cmdref.Token {
	if source == "" {
		return []cmdref.Token{}
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		return nil
	}
	lexer = chromalib.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil
	}

	var tokens []cmdref.Token
	for token := iterator(); token != chromalib.EOF; token = iterator() {
		tokens = append(tokens, cmdref.Token{
			Text:  token.Value,
			Style: t.styleFunc(token.Type),
		})
	}

	if !strings.HasSuffix(source, "\n") && len(tokens) > 0 {
		last := &tokens[len(tokens)-1]
		last.Text = strings.TrimSuffix(last.Text, "\n")
		if last.Text == "" {
			tokens = tokens[:len(tokens)-1]
		}
	}
	return tokens
}
