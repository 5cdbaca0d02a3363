package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aster-lang/aster/diag"
	"github.com/aster-lang/aster/token"
)

func TestEnglish_RecognizesStructuralKeywordsNotIdentifiers(t *testing.T) {
	t.Parallel()

	lex := English()

	assert.True(t, lex.IsKeyword("Rule"))
	assert.False(t, lex.IsKeyword("Greeting"))
	assert.Equal(t, token.KEYWORD, lex.Classify("Rule"))
	assert.Equal(t, token.TYPE_IDENT, lex.Classify("Greeting"))
	assert.Equal(t, token.IDENT, lex.Classify("name"))
}

func TestTranslate_EnglishIsANoOp(t *testing.T) {
	t.Parallel()

	lex := English()
	tokens := []token.Token{{Kind: token.KEYWORD, Value: "Rule"}}

	out := lex.Translate(tokens)

	assert.Equal(t, tokens, out)
}

func TestTranslate_NonEnglishRewritesKeywordTokensToCanonicalSpelling(t *testing.T) {
	t.Parallel()

	lex := New("fr")
	require.NoError(t, lex.RegisterKeyword("règle", "Rule"))
	tokens := []token.Token{
		{Kind: token.KEYWORD, Value: "règle"},
		{Kind: token.IDENT, Value: "règle"},
	}

	out := lex.Translate(tokens)

	assert.Equal(t, "Rule", out[0].Value)
	assert.Equal(t, "règle", out[1].Value, "non-keyword tokens are left alone even if their value happens to match a keyword spelling")
}

func TestRegisterKeyword_SameSpellingSameCanonicalIsIdempotent(t *testing.T) {
	t.Parallel()

	lex := New("fr")
	require.NoError(t, lex.RegisterKeyword("règle", "Rule"))
	require.NoError(t, lex.RegisterKeyword("règle", "Rule"))

	assert.True(t, lex.IsKeyword("règle"))
}

func TestRegisterKeyword_SameSpellingDifferentCanonicalReportsCollision(t *testing.T) {
	t.Parallel()

	lex := New("fr")
	require.NoError(t, lex.RegisterKeyword("règle", "Rule"))

	err := lex.RegisterKeyword("règle", "Define")

	require.Error(t, err)
	var d diag.Diagnostic
	require.ErrorAs(t, err, &d)
	assert.Equal(t, diag.CodeLexiconCollision, d.Code)
}

func TestRegistry_GetFallsBackToEnglishForUnregisteredName(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	assert.Equal(t, "en", r.Get("fr").Name)
}

func TestRegistry_RegisterSecondLexiconUnderSameNameReportsCollision(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	err := r.Register(New("en"))

	require.Error(t, err)
	var d diag.Diagnostic
	require.ErrorAs(t, err, &d)
	assert.Equal(t, diag.CodeLexiconCollision, d.Code)
	assert.Equal(t, "en", r.Get("en").Name)
}

func TestRegistry_RegisterNewNameSucceeds(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	fr := New("fr")

	require.NoError(t, r.Register(fr))
	assert.Same(t, fr, r.Get("fr"))
}

func TestCanonicalizeLocalize_AreInverses(t *testing.T) {
	t.Parallel()

	lex := New("fr")
	lex.RegisterIdentifier("nom", "name")

	assert.Equal(t, "name", lex.Canonicalize("nom"))
	assert.Equal(t, "nom", lex.Localize("name"))
	assert.Equal(t, "unmapped", lex.Canonicalize("unmapped"))
}
