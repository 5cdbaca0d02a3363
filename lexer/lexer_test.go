package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aster-lang/aster/diag"
	"github.com/aster-lang/aster/token"
)

func mainKinds(tokens []token.Token) []token.Kind {
	var out []token.Kind
	for _, t := range tokens {
		if t.Channel == token.Main {
			out = append(out, t.Kind)
		}
	}
	return out
}

func TestLex_SimpleDeclarationProducesExpectedTokenKinds(t *testing.T) {
	t.Parallel()

	tokens, bag := Lex("Module Foo.\n", nil)

	assert.False(t, bag.HasErrors())
	kinds := mainKinds(tokens)
	require.Contains(t, kinds, token.KEYWORD)
	require.Contains(t, kinds, token.TYPE_IDENT)
	require.Contains(t, kinds, token.DOT)
	require.Contains(t, kinds, token.EOF)
}

func TestLex_IndentAndDedentBracketABlock(t *testing.T) {
	t.Parallel()

	src := "Rule f:\n  Return 1.\n"
	tokens, bag := Lex(src, nil)

	require.False(t, bag.HasErrors())
	kinds := mainKinds(tokens)

	var sawIndent, sawDedent bool
	for _, k := range kinds {
		if k == token.INDENT {
			sawIndent = true
		}
		if k == token.DEDENT {
			sawDedent = true
		}
	}
	assert.True(t, sawIndent)
	assert.True(t, sawDedent)
}

func TestLex_InconsistentDedentReportsDiagnostic(t *testing.T) {
	t.Parallel()

	src := "Rule f:\n    Return 1.\n  Return 2.\n"
	_, bag := Lex(src, nil)

	require.True(t, bag.HasErrors())
	var codes []string
	for _, d := range bag.All() {
		codes = append(codes, d.Code)
	}
	assert.Contains(t, codes, diag.CodeInconsistentIndent)
}

func TestLex_StringLiteralScansValueWithoutQuotes(t *testing.T) {
	t.Parallel()

	tokens, bag := Lex(`Let x be "hello".`+"\n", nil)

	require.False(t, bag.HasErrors())
	var found bool
	for _, tok := range tokens {
		if tok.Kind == token.STRING {
			found = true
			assert.Equal(t, "hello", tok.Value)
		}
	}
	assert.True(t, found)
}

func TestLex_IntegerAndFloatLiteralsClassifiedDistinctly(t *testing.T) {
	t.Parallel()

	tokens, bag := Lex("Let x be 42.\nLet y be 3.14.\n", nil)

	require.False(t, bag.HasErrors())
	var sawInt, sawFloat bool
	for _, tok := range tokens {
		if tok.Kind == token.INT && tok.Value == "42" {
			sawInt = true
		}
		if tok.Kind == token.FLOAT && tok.Value == "3.14" {
			sawFloat = true
		}
	}
	assert.True(t, sawInt)
	assert.True(t, sawFloat)
}

func TestLex_BooleanWordsClassifyAsBoolNotIdent(t *testing.T) {
	t.Parallel()

	tokens, bag := Lex("Let x be true.\n", nil)

	require.False(t, bag.HasErrors())
	var found bool
	for _, tok := range tokens {
		if tok.Value == "true" {
			found = true
			assert.Equal(t, token.BOOL, tok.Kind)
		}
	}
	assert.True(t, found)
}

func TestLex_StrayCharacterReportsDiagnosticAndResynchronizes(t *testing.T) {
	t.Parallel()

	tokens, bag := Lex("Let x be 1 @ 2.\n", nil)

	require.True(t, bag.HasErrors())
	var codes []string
	for _, d := range bag.All() {
		codes = append(codes, d.Code)
	}
	assert.Contains(t, codes, diag.CodeStrayCharacter)
	// lexing continues past the stray byte rather than aborting.
	assert.NotEmpty(t, mainKinds(tokens))
}

func TestLex_CommentAndBlankLineRideTheTriviaChannel(t *testing.T) {
	t.Parallel()

	src := "// a comment\n\nModule Foo.\n"
	tokens, bag := Lex(src, nil)

	require.False(t, bag.HasErrors())
	for _, tok := range tokens {
		if tok.Kind == token.COMMENT || tok.Kind == token.BLANKLINE {
			assert.Equal(t, token.Trivia, tok.Channel)
		}
	}
}
