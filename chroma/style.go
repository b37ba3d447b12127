package chroma

import (
	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/cmdref"
)

// StyleFromPalette returns a function that maps chroma token types to cmdref styles
// based on the provided palette colors.
func StyleFromPalette(p cmdref.Palette) StyleFunc {
	return func(tt chromalib.TokenType) cmdref.Style {
		switch tt {
		// Keywords
		case chromalib.Keyword, chromalib.KeywordConstant, chromalib.KeywordDeclaration,
			chromalib.KeywordNamespace, chromalib.KeywordPseudo, chromalib.KeywordReserved,
			chromalib.KeywordType:
			return cmdref.Style{Foreground: string(p.Keyword), Bold: true}

		// Comments
		case chromalib.Comment, chromalib.CommentHashbang, chromalib.CommentMultiline,
			chromalib.CommentPreproc, chromalib.CommentPreprocFile, chromalib.CommentSingle,
			chromalib.CommentSpecial:
			return cmdref.Style{Foreground: string(p.Comment)}

		// Strings
		case chromalib.String, chromalib.StringAffix, chromalib.StringBacktick, chromalib.StringChar,
			chromalib.StringDelimiter, chromalib.StringDoc, chromalib.StringDouble,
			chromalib.StringEscape, chromalib.StringHeredoc, chromalib.StringInterpol,
			chromalib.StringOther, chromalib.StringRegex, chromalib.StringSingle,
			chromalib.StringSymbol:
			return cmdref.Style{Foreground: string(p.String)}

		// Numbers
		case chromalib.Number, chromalib.NumberBin, chromalib.NumberFloat, chromalib.NumberHex,
			chromalib.NumberInteger, chromalib.NumberIntegerLong, chromalib.NumberOct:
			return cmdref.Style{Foreground: string(p.Number)}

		// Operators
		case chromalib.Operator, chromalib.OperatorWord:
			return cmdref.Style{Foreground: string(p.Operator)}

		// Builtins and cmdlets
		case chromalib.NameBuiltin, chromalib.NameBuiltinPseudo,
			chromalib.NameFunction, chromalib.NameFunctionMagic:
			return cmdref.Style{Foreground: string(p.Function)}

		// $VARS and parameters
		case chromalib.NameVariable, chromalib.NameVariableGlobal, chromalib.NameVariableInstance,
			chromalib.NameAttribute:
			return cmdref.Style{Foreground: string(p.Variable)}

		// Punctuation
		case chromalib.Punctuation:
			return cmdref.Style{Foreground: string(p.Punctuation)}

		default:
			return cmdref.Style{}
		}
	}
}
