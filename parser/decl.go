package parser

import (
	"github.com/aster-lang/aster/ast"
	"github.com/aster-lang/aster/source"
	"github.com/aster-lang/aster/token"
)

// parseFuncDecl parses a `Rule <name> [for any T[, ...][and effect
// E[, ...]]] given <fields>, produce <Type> [It performs E[, ...]]: body.`
// declaration.
func (p *Parser) parseFuncDecl() ast.Decl {
	start := p.cur().Span.Start
	p.advance() // 'Rule'
	name := p.advance().Value

	typeParams, effectParams := p.parseGenericsClause()
	p.pushTypeVars(typeParams)
	p.pushEffectVars(effectParams)

	p.expectKeyword("given")
	var params []ast.Field
	if !p.atKeyword("produce") {
		params = p.parseFieldList()
	}
	if p.atKind(token.COMMA) {
		p.advance()
	}
	p.expectKeyword("produce")
	ret := p.parseType()

	var declaredEffects []string
	if p.atKeyword("It") {
		p.advance()
		p.expectKeyword("performs")
		declaredEffects = p.parseEffectNameList()
	}

	p.pushEffectCollection(declaredEffects)
	if p.atKind(token.COLON) {
		p.advance()
	} else {
		p.errorUnexpected("':'")
	}
	body := p.parseBlock()
	p.popEffectCollection()

	p.popEffectVars()
	p.popTypeVars()

	return &ast.FuncDecl{
		Name:            name,
		TypeParams:      typeParams,
		EffectParams:    effectParams,
		Params:          params,
		Ret:             ret,
		DeclaredEffects: declaredEffects,
		Body:            body,
		SpanV:           source.Span{Start: start, End: body.SpanV.End},
	}
}

// parseGenericsClause parses the optional `for any T1[, T2...][and effect
// E1[, E2...]]` clause shared by Rule and Define headers.
func (p *Parser) parseGenericsClause() (typeParams, effectParams []string) {
	if !p.atKeyword("for") {
		return nil, nil
	}
	p.advance()
	p.expectKeyword("any")
	typeParams = append(typeParams, p.advance().Value)
	for p.atKind(token.COMMA) {
		p.advance()
		typeParams = append(typeParams, p.advance().Value)
	}
	if p.atKeyword("and") {
		p.advance()
		p.expectKeyword("effect")
		effectParams = append(effectParams, p.advance().Value)
		for p.atKind(token.COMMA) {
			p.advance()
			effectParams = append(effectParams, p.advance().Value)
		}
	}
	return typeParams, effectParams
}

// parseDefineDecl parses a `Define <Name> [for any T[, ...]] ...`
// declaration, dispatching on the keyword that follows the generics
// clause: "has" for a DataDecl, "as one of" for an EnumDecl, "is" for a
// TypeAliasDecl.
func (p *Parser) parseDefineDecl() ast.Decl {
	start := p.cur().Span.Start
	p.advance() // 'Define'
	name := p.advance().Value

	typeParams, _ := p.parseGenericsClause()
	p.pushTypeVars(typeParams)
	defer p.popTypeVars()

	switch {
	case p.atKeyword("has"):
		p.advance()
		fields := p.parseFieldList()
		end := start
		if len(fields) > 0 {
			end = fields[len(fields)-1].Span().End
		}
		p.expectDot()
		return &ast.DataDecl{
			Name: name, TypeParams: typeParams, Fields: fields,
			SpanV: source.Span{Start: start, End: end},
		}

	case p.atKeyword("as"):
		p.advance()
		p.expectKeyword("one")
		p.expectKeyword("of")
		variants := p.parseEnumVariantList()
		end := start
		if len(variants) > 0 {
			end = variants[len(variants)-1].Span().End
		}
		p.expectDot()
		return &ast.EnumDecl{
			Name: name, TypeParams: typeParams, Variants: variants,
			SpanV: source.Span{Start: start, End: end},
		}

	case p.atKeyword("is"):
		p.advance()
		aliased := p.parseType()
		end := aliased.Span().End
		p.expectDot()
		return &ast.TypeAliasDecl{
			Name: name, TypeParams: typeParams, Aliased: aliased,
			SpanV: source.Span{Start: start, End: end},
		}

	default:
		return p.errorDecl()
	}
}

func (p *Parser) parseEnumVariantList() []ast.EnumVariant {
	var out []ast.EnumVariant
	for {
		t := p.advance()
		out = append(out, ast.EnumVariant{Name: t.Value, SpanV: t.Span})
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
	return out
}
