package parser

import (
	"github.com/aster-lang/aster/ast"
	"github.com/aster-lang/aster/diag"
	"github.com/aster-lang/aster/source"
	"github.com/aster-lang/aster/token"
)

// errorUnexpected reports an unexpected-token diagnostic at the current
// position, naming what was expected, without consuming the token.
func (p *Parser) errorUnexpected(expected string) {
	t := p.cur()
	p.bag.Report(diag.New(diag.CodeUnexpectedToken, t.Span, map[string]any{
		"expected": expected,
		"actual":   t.String(),
	}))
}

// errorDecl reports an unexpected-token error at the top of a
// declaration and synchronizes to the next declaration boundary (the
// next Module/Rule/Define/import keyword at the outermost nesting
// depth, or EOF), returning a structured parse-error sentinel so the
// caller still gets a (partial) Decl to append.
func (p *Parser) errorDecl() ast.Decl {
	start := p.cur().Span.Start
	p.errorUnexpected("'Module', 'Rule', 'Define', or 'import'")
	if p.atKeyword("Module") {
		// A repeated Module header is not a declaration; step past it so
		// synchronize does not stop on the same token again.
		p.advance()
	}
	end := p.synchronize()
	return &ast.ErrorNode{SpanV: source.Span{Start: start, End: end}}
}

// synchronize advances the cursor until it reaches a token that begins a
// new top-level declaration at nesting depth zero, or EOF, tracking
// INDENT/DEDENT to know when it has returned to the outermost depth.
func (p *Parser) synchronize() source.Position {
	depth := 0
	for !p.atEOF() {
		switch {
		case p.atKind(token.DEDENT):
			depth--
		case p.atKind(token.INDENT):
			depth++
		case depth <= 0 && (p.atKeyword("Module") || p.atKeyword("Rule") || p.atKeyword("Define") || p.atKeyword("import")):
			return p.cur().Span.Start
		}
		p.advance()
	}
	return p.cur().Span.End
}
