package parser

import (
	"github.com/aster-lang/aster/ast"
	"github.com/aster-lang/aster/source"
	"github.com/aster-lang/aster/token"
)

// parseType parses a single type reference, including the generic/
// container sugar spelled with "of"/"to"/"or" keywords instead of
// bracket punctuation.
func (p *Parser) parseType() ast.Type {
	start := p.cur().Span.Start

	if p.atKeyword("Function") {
		return p.parseFuncType(start)
	}

	tok := p.advance()
	if tok.Kind != token.TYPE_IDENT {
		p.errorUnexpected("a type name")
		return &ast.TypeName{Name: tok.Value, SpanV: tok.Span}
	}

	name := tok.Value
	var base ast.Type
	switch {
	case p.isTypeVarInScope(name):
		base = &ast.TypeVar{Name: name, SpanV: tok.Span}
	case p.isEffectVarInScope(name):
		base = &ast.EffectVar{Name: name, SpanV: tok.Span}
	case p.declaredTypes[name]:
		base = &ast.TypeName{Name: name, SpanV: tok.Span}
	default:
		// Unrecognized uppercase identifier: optimistically a type
		// variable. Typecheck's generics discipline is the authority
		// on whether it was actually declared.
		base = &ast.TypeVar{Name: name, SpanV: tok.Span}
	}

	if !p.atKeyword("of") {
		return base
	}
	p.advance() // 'of'

	switch name {
	case "Map":
		key := p.parseType()
		p.expectKeyword("to")
		val := p.parseType()
		return &ast.MapType{Key: key, Value: val, SpanV: source.Span{Start: start, End: val.Span().End}}
	case "Result":
		okT := p.parseType()
		p.expectKeyword("or")
		errT := p.parseType()
		return &ast.ResultType{Ok: okT, Err: errT, SpanV: source.Span{Start: start, End: errT.Span().End}}
	case "List":
		elem := p.parseType()
		return &ast.ListType{Elem: elem, SpanV: source.Span{Start: start, End: elem.Span().End}}
	case "Option":
		elem := p.parseType()
		return &ast.OptionType{Elem: elem, SpanV: source.Span{Start: start, End: elem.Span().End}}
	case "Maybe":
		elem := p.parseType()
		return &ast.MaybeType{Elem: elem, SpanV: source.Span{Start: start, End: elem.Span().End}}
	case "Pii":
		elem := p.parseType()
		return &ast.PiiType{Elem: elem, SpanV: source.Span{Start: start, End: elem.Span().End}}
	default:
		args := []ast.Type{p.parseType()}
		for p.atKind(token.COMMA) {
			p.advance()
			args = append(args, p.parseType())
		}
		end := args[len(args)-1].Span().End
		return &ast.TypeApp{Base: base, Args: args, SpanV: source.Span{Start: start, End: end}}
	}
}

func (p *Parser) parseFuncType(start source.Position) ast.Type {
	p.advance() // 'Function'
	p.expectKeyword("from")
	params := []ast.Type{p.parseType()}
	for p.atKind(token.COMMA) {
		p.advance()
		params = append(params, p.parseType())
	}
	p.expectKeyword("to")
	ret := p.parseType()

	effects := p.currentEffectCollection()
	end := ret.Span().End
	if p.atKeyword("performing") {
		p.advance()
		effects = p.parseEffectNameList()
		if len(effects) > 0 {
			end = p.main[p.pos-1].Span.End
		}
	}
	return &ast.FuncType{
		Params:          params,
		Ret:             ret,
		DeclaredEffects: effects,
		SpanV:           source.Span{Start: start, End: end},
	}
}

// parseEffectNameList parses a comma-separated list of effect names or
// effect variables.
func (p *Parser) parseEffectNameList() []string {
	var out []string
	for {
		t := p.cur()
		if t.Kind != token.TYPE_IDENT {
			break
		}
		p.advance()
		out = append(out, t.Value)
		if p.atKind(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	return out
}

func (p *Parser) expectKeyword(word string) {
	if p.atKeyword(word) {
		p.advance()
		return
	}
	p.errorUnexpected("'" + word + "'")
}
