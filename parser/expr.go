package parser

import (
	"strconv"

	"github.com/aster-lang/aster/ast"
	"github.com/aster-lang/aster/source"
	"github.com/aster-lang/aster/token"
)

// parseExpr parses a full expression via a Pratt-style precedence climb
// over the closed set of word operators the grammar defines: `equals to`
// (lowest), `less than`, `plus` (highest binary), and prefix `not`.
func (p *Parser) parseExpr() ast.Expr {
	return p.parseEquality()
}

func (p *Parser) parseEquality() ast.Expr {
	left := p.parseComparison()
	for p.atKeyword("equals") && p.peekAt(1).IsKeyword("to") {
		start := left.Span().Start
		p.advance()
		p.advance()
		right := p.parseComparison()
		left = &ast.BinaryExpr{Op: "equals to", Left: left, Right: right, SpanV: source.Span{Start: start, End: right.Span().End}}
	}
	return left
}

func (p *Parser) parseComparison() ast.Expr {
	left := p.parseAdditive()
	for p.atKeyword("less") && p.peekAt(1).IsKeyword("than") {
		start := left.Span().Start
		p.advance()
		p.advance()
		right := p.parseAdditive()
		left = &ast.BinaryExpr{Op: "less than", Left: left, Right: right, SpanV: source.Span{Start: start, End: right.Span().End}}
	}
	return left
}

func (p *Parser) parseAdditive() ast.Expr {
	left := p.parseUnary()
	for p.atKeyword("plus") {
		start := left.Span().Start
		p.advance()
		right := p.parseUnary()
		left = &ast.BinaryExpr{Op: "plus", Left: left, Right: right, SpanV: source.Span{Start: start, End: right.Span().End}}
	}
	return left
}

func (p *Parser) parseUnary() ast.Expr {
	if p.atKeyword("not") {
		start := p.cur().Span.Start
		p.advance()
		operand := p.parseUnary()
		return &ast.UnaryExpr{Op: "not", Operand: operand, SpanV: source.Span{Start: start, End: operand.Span().End}}
	}
	return p.parsePostfix()
}

// parsePostfix applies dotted-name continuations and call-argument lists
// to whatever primary expression precedes them, so a qualified callee
// like `Io.readFile(path)` lexes as a single dotted NameExpr before the
// call.
func (p *Parser) parsePostfix() ast.Expr {
	e := p.parsePrimary()
	for {
		if name, ok := e.(*ast.NameExpr); ok && p.atKind(token.DOT) &&
			(p.peekAt(1).Kind == token.IDENT || p.peekAt(1).Kind == token.TYPE_IDENT) {
			p.advance() // '.'
			next := p.advance()
			e = &ast.NameExpr{Name: name.Name + "." + next.Value, SpanV: source.Span{Start: name.SpanV.Start, End: next.Span.End}}
			continue
		}
		if p.atKind(token.LPAREN) {
			start := e.Span().Start
			args, end := p.parseArgList()
			e = &ast.CallExpr{Callee: e, Args: args, SpanV: source.Span{Start: start, End: end}}
			continue
		}
		break
	}
	return e
}

func (p *Parser) parseArgList() ([]ast.Expr, source.Position) {
	p.advance() // '('
	var args []ast.Expr
	if !p.atKind(token.RPAREN) {
		args = append(args, p.parseExpr())
		for p.atKind(token.COMMA) {
			p.advance()
			args = append(args, p.parseExpr())
		}
	}
	end := p.cur().Span.End
	if p.atKind(token.RPAREN) {
		p.advance()
	} else {
		p.errorUnexpected("')'")
	}
	return args, end
}

func (p *Parser) parsePrimary() ast.Expr {
	t := p.cur()

	switch t.Kind {
	case token.STRING:
		p.advance()
		return &ast.StringExpr{Value: t.Value, SpanV: t.Span}
	case token.INT:
		p.advance()
		v, _ := strconv.ParseInt(t.Value, 10, 64)
		return &ast.IntExpr{Value: v, SpanV: t.Span}
	case token.FLOAT:
		p.advance()
		v, _ := strconv.ParseFloat(t.Value, 64)
		return &ast.DoubleExpr{Value: v, SpanV: t.Span}
	case token.BOOL:
		p.advance()
		return &ast.BoolExpr{Value: t.Value == "true", SpanV: t.Span}
	case token.LPAREN:
		p.advance()
		inner := p.parseExpr()
		if p.atKind(token.RPAREN) {
			p.advance()
		} else {
			p.errorUnexpected("')'")
		}
		return inner
	}

	switch {
	case t.IsKeyword("null"):
		p.advance()
		return &ast.NullExpr{SpanV: t.Span}
	case t.IsKeyword("None"):
		p.advance()
		return &ast.NoneExpr{SpanV: t.Span}
	case t.IsKeyword("Some"):
		p.advance()
		p.expectKeyword("of")
		v := p.parseUnary()
		return &ast.SomeExpr{Value: v, SpanV: source.Span{Start: t.Span.Start, End: v.Span().End}}
	case t.IsKeyword("Ok"):
		p.advance()
		p.expectKeyword("of")
		v := p.parseUnary()
		return &ast.OkExpr{Value: v, SpanV: source.Span{Start: t.Span.Start, End: v.Span().End}}
	case t.IsKeyword("Err"):
		p.advance()
		p.expectKeyword("of")
		v := p.parseUnary()
		return &ast.ErrExpr{Value: v, SpanV: source.Span{Start: t.Span.Start, End: v.Span().End}}
	case t.IsKeyword("Match"):
		return p.parseMatchExpr()
	case t.IsKeyword("If"):
		return p.parseIfExpr()
	case t.IsKeyword("Function"):
		return p.parseLambdaExpr()
	}

	if t.Kind == token.TYPE_IDENT {
		p.advance()
		if p.atKeyword("with") {
			return p.parseConstructExpr(t)
		}
		return &ast.NameExpr{Name: t.Value, SpanV: t.Span}
	}

	if t.Kind == token.IDENT {
		p.advance()
		return &ast.NameExpr{Name: t.Value, SpanV: t.Span}
	}

	p.errorUnexpected("an expression")
	p.advance()
	return &ast.ErrorNode{SpanV: t.Span}
}

func (p *Parser) parseConstructExpr(typeTok token.Token) ast.Expr {
	p.advance() // 'with'
	typ := &ast.TypeName{Name: typeTok.Value, SpanV: typeTok.Span}
	var fields []ast.FieldInit
	for {
		nameTok := p.advance()
		if !p.atKind(token.COLON) {
			p.errorUnexpected("':'")
			break
		}
		p.advance()
		val := p.parseExpr()
		fields = append(fields, ast.FieldInit{Name: nameTok.Value, Value: val, SpanV: source.Span{Start: nameTok.Span.Start, End: val.Span().End}})

		if p.atKind(token.COMMA) {
			p.advance()
			continue
		}
		if p.atKeyword("and") {
			p.advance()
			continue
		}
		break
	}
	end := typeTok.Span.End
	if len(fields) > 0 {
		end = fields[len(fields)-1].SpanV.End
	}
	return &ast.ConstructExpr{Type: typ, Fields: fields, SpanV: source.Span{Start: typeTok.Span.Start, End: end}}
}

// parseMatchExpr parses `Match expr: When pattern: body ...` used in
// expression position. Each arm's body is a bare expression, not a
// statement block; the terminating DOT belongs to whatever enclosing
// statement (Let, Return, ...) holds the whole Match as its value.
func (p *Parser) parseMatchExpr() ast.Expr {
	start := p.cur().Span.Start
	p.advance() // 'Match'
	subject := p.parseExpr()
	if p.atKind(token.COLON) {
		p.advance()
	}
	p.skipNewlines()
	if p.atKind(token.INDENT) {
		p.advance()
	}
	var cases []ast.MatchCase
	for p.atKeyword("When") {
		caseStart := p.cur().Span.Start
		p.advance()
		pattern := p.parseExpr()
		if p.atKind(token.COLON) {
			p.advance()
		}
		body := p.parseExpr()
		cases = append(cases, ast.MatchCase{
			Pattern: pattern, Body: body,
			SpanV: source.Span{Start: caseStart, End: body.Span().End},
		})
		p.skipNewlines()
	}
	end := subject.Span().End
	if len(cases) > 0 {
		end = cases[len(cases)-1].SpanV.End
	}
	if p.atKind(token.DEDENT) {
		p.advance()
	}
	return &ast.MatchExpr{Subject: subject, Cases: cases, SpanV: source.Span{Start: start, End: end}}
}

// parseIfExpr parses `If cond: thenExpr Otherwise: elseExpr` in
// expression position.
func (p *Parser) parseIfExpr() ast.Expr {
	start := p.cur().Span.Start
	p.advance() // 'If'
	cond := p.parseExpr()
	if p.atKind(token.COLON) {
		p.advance()
	}
	then := p.parseExpr()
	end := then.Span().End

	var els ast.Expr
	p.skipNewlines()
	if p.atKeyword("Otherwise") {
		p.advance()
		if p.atKind(token.COLON) {
			p.advance()
		}
		els = p.parseExpr()
		end = els.Span().End
	} else {
		p.errorUnexpected("'Otherwise'")
		els = &ast.ErrorNode{SpanV: source.Span{Start: end, End: end}}
	}
	return &ast.IfExpr{Cond: cond, Then: then, Else: els, SpanV: source.Span{Start: start, End: end}}
}

// parseLambdaExpr parses `Function given <fields>: body` as an inline
// function value, distinguished from the Function-type syntax in
// parser/type.go by the `given` keyword following `Function` rather than
// `from`.
func (p *Parser) parseLambdaExpr() ast.Expr {
	start := p.cur().Span.Start
	p.advance() // 'Function'
	p.expectKeyword("given")
	var params []ast.Field
	if !p.atKind(token.COLON) {
		params = p.parseFieldList()
	}
	if p.atKind(token.COLON) {
		p.advance()
	}
	body := p.parseExpr()
	return &ast.LambdaExpr{Params: params, Body: body, SpanV: source.Span{Start: start, End: body.Span().End}}
}
