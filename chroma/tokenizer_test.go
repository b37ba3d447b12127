package chroma_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/cmdref"
	"github.com/fwojciec/cmdref/chroma"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func join(tokens []cmdref.Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(tok.Text)
	}
	return sb.String()
}

func TestNewTokenizer(t *testing.T) {
	t.Parallel()

	_, err := chroma.NewTokenizer(nil)
	assert.Error(t, err)
}

func TestTokenizer_Tokenize(t *testing.T) {
	t.Parallel()

	tokenizer, err := chroma.NewTokenizer(chroma.StyleFromPalette(testPalette))
	require.NoError(t, err)

	t.Run("tokenizes a shell command line", func(t *testing.T) {
		t.Parallel()

		source := `cd /tmp && echo "finished"`
		tokens := tokenizer.Tokenize(chroma.LanguageBash, source)

		require.NotEmpty(t, tokens)
		assert.Equal(t, source, join(tokens))

		var cdStyled, stringStyled bool
		for _, tok := range tokens {
			if tok.Text == "cd" {
				cdStyled = tok.Style.Foreground == string(testPalette.Function)
			}
			if strings.Contains(tok.Text, "finished") {
				stringStyled = tok.Style.Foreground == string(testPalette.String)
			}
		}
		assert.True(t, cdStyled, "builtin cd should use the function color")
		assert.True(t, stringStyled, "quoted text should use the string color")
	})

	t.Run("keeps bracketed syntax patterns intact", func(t *testing.T) {
		t.Parallel()

		source := "alias [name[=value] ...]"
		tokens := tokenizer.Tokenize(chroma.LanguageBash, source)

		require.NotEmpty(t, tokens)
		assert.Equal(t, source, join(tokens))
	})

	t.Run("tokenizes PowerShell", func(t *testing.T) {
		t.Parallel()

		source := "Get-ChildItem -Path C:\\Logs -Recurse"
		tokens := tokenizer.Tokenize(chroma.LanguagePowerShell, source)

		require.NotEmpty(t, tokens)
		assert.Equal(t, source, join(tokens))
	})

	t.Run("keeps a trailing newline present in the source", func(t *testing.T) {
		t.Parallel()

		tokens := tokenizer.Tokenize(chroma.LanguageBash, "ls -la\n")
		assert.Equal(t, "ls -la\n", join(tokens))
	})

	t.Run("returns nil for unsupported language", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, tokenizer.Tokenize("nonexistent-language-xyz", "ls"))
	})

	t.Run("handles empty source", func(t *testing.T) {
		t.Parallel()

		tokens := tokenizer.Tokenize(chroma.LanguageBash, "")
		assert.NotNil(t, tokens)
		assert.Empty(t, tokens)
	})
}
