package parser

import (
	"strings"

	"github.com/aster-lang/aster/ast"
	"github.com/aster-lang/aster/source"
	"github.com/aster-lang/aster/token"
)

// parseFieldList parses a comma/"and"-separated list of Fields, stopping
// at the first token that is neither a comma nor a field-separating
// "and". The caller supplies the lookahead rule for distinguishing a
// field-separator "and" from a constraint-separator "and" indirectly,
// via parseConstraints already having consumed every constraint-connecting
// "and" before returning.
func (p *Parser) parseFieldList() []ast.Field {
	var fields []ast.Field
	for {
		fields = append(fields, p.parseField())
		if p.atKind(token.COMMA) {
			if p.peekAt(1).IsKeyword("produce") {
				break
			}
			p.advance()
			continue
		}
		if p.atKeyword("and") && !p.nextAfterAndIsConstraint() {
			p.advance()
			continue
		}
		break
	}
	return fields
}

// nextAfterAndIsConstraint reports whether the token following the
// current "and" begins a constraint keyword phrase — one token of
// lookahead is enough to disambiguate a constraint "and" from a
// field-separator "and".
func (p *Parser) nextAfterAndIsConstraint() bool {
	nxt := p.peekAt(1)
	return nxt.IsKeyword("required") || nxt.IsKeyword("between") ||
		nxt.IsKeyword("at") || nxt.IsKeyword("matching")
}

func (p *Parser) parseField() ast.Field {
	start := p.cur().Span.Start
	nameTok := p.advance()
	name := nameTok.Value

	var typ ast.Type
	inferred := false
	if p.atKind(token.COLON) {
		p.advance()
		typ = p.parseType()
	} else {
		inferred = true
		typ = inferFieldType(name)
	}

	constraints := p.parseConstraints()
	if inferred {
		typ = refineInferredType(typ, constraints)
	}

	end := start
	if len(constraints) > 0 {
		end = constraints[len(constraints)-1].Span().End
	} else {
		end = typ.Span().End
	}
	return ast.Field{
		Name: name, Type: typ, Constraints: constraints,
		TypeInferred: inferred, SpanV: source.Span{Start: start, End: end},
	}
}

func (p *Parser) parseConstraints() []ast.Constraint {
	var out []ast.Constraint
	for {
		switch {
		case p.atKeyword("required"):
			start := p.cur().Span.Start
			end := p.advance().Span.End
			out = append(out, ast.RequiredConstraint{SpanV: source.Span{Start: start, End: end}})
		case p.atKeyword("between"):
			start := p.cur().Span.Start
			p.advance()
			min := p.parseExpr()
			p.expectKeyword("and")
			max := p.parseExpr()
			out = append(out, ast.RangeConstraint{Min: min, Max: max, SpanV: source.Span{Start: start, End: max.Span().End}})
		case p.atKeyword("at"):
			start := p.cur().Span.Start
			p.advance()
			switch {
			case p.atKeyword("least"):
				p.advance()
				v := p.parseExpr()
				out = append(out, ast.RangeConstraint{Min: v, SpanV: source.Span{Start: start, End: v.Span().End}})
			case p.atKeyword("most"):
				p.advance()
				v := p.parseExpr()
				out = append(out, ast.RangeConstraint{Max: v, SpanV: source.Span{Start: start, End: v.Span().End}})
			default:
				p.errorUnexpected("'least' or 'most'")
			}
		case p.atKeyword("matching"):
			start := p.cur().Span.Start
			p.advance()
			strTok := p.cur()
			pattern := strTok.Value
			if strTok.Kind == token.STRING {
				p.advance()
			} else {
				p.errorUnexpected("a string pattern")
			}
			out = append(out, ast.PatternConstraint{Regexp: pattern, SpanV: source.Span{Start: start, End: strTok.Span.End}})
		default:
			return out
		}

		if p.atKind(token.COMMA) && p.nextAfterCommaIsConstraint() {
			p.advance()
			continue
		}
		if p.atKeyword("and") && p.nextAfterAndIsConstraint() {
			p.advance()
			continue
		}
		return out
	}
}

func (p *Parser) nextAfterCommaIsConstraint() bool {
	nxt := p.peekAt(1)
	return nxt.IsKeyword("required") || nxt.IsKeyword("between") ||
		nxt.IsKeyword("at") || nxt.IsKeyword("matching")
}

// inferFieldType picks an initial type for an inferred-form field from
// its name, per the suffix/prefix rules: *Id→Text, *Amount→Float,
// *Count→Int, is*/has*→Bool, *Date→DateTime; default Text.
func inferFieldType(name string) ast.Type {
	mk := func(n string) ast.Type { return &ast.TypeName{Name: n} }
	switch {
	case strings.HasSuffix(name, "Id"):
		return mk("Text")
	case strings.HasSuffix(name, "Amount"):
		return mk("Float")
	case strings.HasSuffix(name, "Count"):
		return mk("Int")
	case strings.HasPrefix(name, "is"), strings.HasPrefix(name, "has"):
		return mk("Bool")
	case strings.HasSuffix(name, "Date"):
		return mk("DateTime")
	default:
		return mk("Text")
	}
}

// refineInferredType applies constraint-driven refinement: a Pattern
// constraint always wins over a suffix-inferred numeric type, because a
// regular expression can only meaningfully match text. Range refines
// toward a numeric type only when the suffix rule had not already
// produced one.
func refineInferredType(initial ast.Type, constraints []ast.Constraint) ast.Type {
	hasPattern := false
	hasRange := false
	for _, c := range constraints {
		switch c.(type) {
		case ast.PatternConstraint:
			hasPattern = true
		case ast.RangeConstraint:
			hasRange = true
		}
	}
	if hasPattern {
		return &ast.TypeName{Name: "Text", SpanV: initial.Span()}
	}
	if hasRange {
		if name, ok := initial.(*ast.TypeName); ok {
			switch name.Name {
			case "Int", "Long", "Double", "Float":
				return initial
			}
		}
		return &ast.TypeName{Name: "Int", SpanV: initial.Span()}
	}
	return initial
}
