package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aster-lang/aster/ast"
	"github.com/aster-lang/aster/diag"
	"github.com/aster-lang/aster/token"
)

func newExprParser(tokens []token.Token) *Parser {
	return &Parser{
		main:           append(tokens, token.Token{Kind: token.EOF}),
		bag:            diag.NewBag(),
		declaredTypes:  map[string]bool{},
		typeVarStack:   []map[string]bool{{}},
		effectVarStack: []map[string]bool{{}},
	}
}

func ident(v string) token.Token  { return token.Token{Kind: token.IDENT, Value: v} }
func typeIdent(v string) token.Token { return token.Token{Kind: token.TYPE_IDENT, Value: v} }

// A dotted callee (`Io.readFile(path)`) must lex as a single NameExpr
// joined by '.' before the call, so later passes can glob-match it as one
// qualified name.
func TestParsePostfix_QualifiedCallName(t *testing.T) {
	t.Parallel()

	p := newExprParser([]token.Token{
		typeIdent("Io"), {Kind: token.DOT}, ident("readFile"),
		{Kind: token.LPAREN}, ident("path"), {Kind: token.RPAREN},
	})

	e := p.parseExpr()
	call, ok := e.(*ast.CallExpr)
	require.True(t, ok, "expected *ast.CallExpr, got %T", e)

	callee, ok := call.Callee.(*ast.NameExpr)
	require.True(t, ok, "expected callee *ast.NameExpr, got %T", call.Callee)
	assert.Equal(t, "Io.readFile", callee.Name)

	require.Len(t, call.Args, 1)
	arg, ok := call.Args[0].(*ast.NameExpr)
	require.True(t, ok)
	assert.Equal(t, "path", arg.Name)
}

// A plain (non-dotted) call is unaffected by the dotted-name extension.
func TestParsePostfix_PlainCall(t *testing.T) {
	t.Parallel()

	p := newExprParser([]token.Token{
		ident("helper"), {Kind: token.LPAREN}, {Kind: token.RPAREN},
	})

	e := p.parseExpr()
	call, ok := e.(*ast.CallExpr)
	require.True(t, ok)
	callee, ok := call.Callee.(*ast.NameExpr)
	require.True(t, ok)
	assert.Equal(t, "helper", callee.Name)
	assert.Empty(t, call.Args)
}

// A dotted name with no trailing call-parens still joins into one
// NameExpr (e.g. referencing Http.statusOk as a value, not a call).
func TestParsePostfix_DottedNameWithoutCall(t *testing.T) {
	t.Parallel()

	p := newExprParser([]token.Token{typeIdent("Http"), {Kind: token.DOT}, ident("statusOk")})

	e := p.parseExpr()
	name, ok := e.(*ast.NameExpr)
	require.True(t, ok)
	assert.Equal(t, "Http.statusOk", name.Name)
}
