// Package parser implements the recursive-descent parser: it consumes
// the lexer's token stream and produces a Module AST with source spans.
package parser

import (
	"github.com/aster-lang/aster/ast"
	"github.com/aster-lang/aster/diag"
	"github.com/aster-lang/aster/lexicon"
	"github.com/aster-lang/aster/source"
	"github.com/aster-lang/aster/token"
)

// builtinTypes seeds the parser's declaredTypes set: scalar and container
// type names that are always in scope, independent of any Define
// declaration.
var builtinTypes = []string{
	"Text", "Int", "Long", "Double", "Float", "Bool", "DateTime",
	"List", "Map", "Option", "Result", "Maybe", "Pii",
}

// Parser holds the recursive-descent parser's mutable state: the token
// cursor and its scope stacks — declaredTypes, typeVarStack,
// effectVarStack, and the effect-collection snapshot stack (effectStack) used so
// nested function-type parameters inherit the enclosing function's
// declared effects.
type Parser struct {
	main []token.Token
	pos  int
	bag  *diag.Bag

	declaredTypes  map[string]bool
	typeVarStack   []map[string]bool
	effectVarStack []map[string]bool
	effectStack    [][]string
}

// Parse scans tokens into a Module AST. Parse is total: for any token
// stream, it returns a (possibly partial) Module and a diagnostic list,
// and never panics. If lex is not the English lexicon, the
// keyword-translation pass runs first so the grammar below only ever
// sees canonical English keyword spellings.
func Parse(tokens []token.Token, lex *lexicon.Lexicon) (*ast.Module, []diag.Diagnostic) {
	if lex == nil {
		lex = lexicon.English()
	}

	main := make([]token.Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Channel == token.Main {
			main = append(main, t)
		}
	}
	main = lex.Translate(main)

	p := &Parser{
		main:           main,
		bag:            diag.NewBag(),
		declaredTypes:  map[string]bool{},
		typeVarStack:   []map[string]bool{{}},
		effectVarStack: []map[string]bool{{}},
	}
	for _, name := range builtinTypes {
		p.declaredTypes[name] = true
	}
	p.preScanTypeNames()

	mod := p.parseModule()
	return mod, p.bag.All()
}

// preScanTypeNames does a single forward pass over the token stream to
// collect every Define'd name before parsing bodies, so declarations may
// reference types defined later in the same module.
func (p *Parser) preScanTypeNames() {
	for i := 0; i < len(p.main)-1; i++ {
		if p.main[i].IsKeyword("Define") && p.main[i+1].Kind == token.TYPE_IDENT {
			p.declaredTypes[p.main[i+1].Value] = true
		}
	}
}

func (p *Parser) cur() token.Token {
	if p.pos >= len(p.main) {
		return token.Token{Kind: token.EOF}
	}
	return p.main[p.pos]
}

func (p *Parser) peekAt(offset int) token.Token {
	idx := p.pos + offset
	if idx >= len(p.main) {
		return token.Token{Kind: token.EOF}
	}
	return p.main[idx]
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.main) {
		p.pos++
	}
	return t
}

func (p *Parser) atEOF() bool { return p.cur().Kind == token.EOF }

func (p *Parser) atKeyword(word string) bool { return p.cur().IsKeyword(word) }

func (p *Parser) atKind(k token.Kind) bool { return p.cur().Kind == k }

// skipNewlines consumes NEWLINE tokens that carry no grammatical meaning
// between top-level declarations.
func (p *Parser) skipNewlines() {
	for p.atKind(token.NEWLINE) {
		p.advance()
	}
}

func (p *Parser) pushTypeVars(names []string) {
	set := map[string]bool{}
	for _, n := range names {
		set[n] = true
	}
	p.typeVarStack = append(p.typeVarStack, set)
}

func (p *Parser) popTypeVars() { p.typeVarStack = p.typeVarStack[:len(p.typeVarStack)-1] }

func (p *Parser) isTypeVarInScope(name string) bool {
	for _, set := range p.typeVarStack {
		if set[name] {
			return true
		}
	}
	return false
}

func (p *Parser) pushEffectVars(names []string) {
	set := map[string]bool{}
	for _, n := range names {
		set[n] = true
	}
	p.effectVarStack = append(p.effectVarStack, set)
}

func (p *Parser) popEffectVars() { p.effectVarStack = p.effectVarStack[:len(p.effectVarStack)-1] }

func (p *Parser) isEffectVarInScope(name string) bool {
	for _, set := range p.effectVarStack {
		if set[name] {
			return true
		}
	}
	return false
}

// pushEffectCollection records the currently-collecting declared-effect
// list so nested function-type parameters inherit it correctly.
func (p *Parser) pushEffectCollection(effects []string) {
	p.effectStack = append(p.effectStack, effects)
}

func (p *Parser) popEffectCollection() { p.effectStack = p.effectStack[:len(p.effectStack)-1] }

func (p *Parser) currentEffectCollection() []string {
	if len(p.effectStack) == 0 {
		return nil
	}
	return p.effectStack[len(p.effectStack)-1]
}

func (p *Parser) parseModule() *ast.Module {
	mod := &ast.Module{}
	start := p.cur().Span.Start

	p.skipNewlines()
	if p.atKeyword("Module") {
		p.advance()
		mod.Name = p.parseQualifiedName()
		p.expectDot()
	}
	p.skipNewlines()

	for !p.atEOF() {
		p.skipNewlines()
		if p.atEOF() {
			break
		}
		decl := p.parseDecl()
		if decl != nil {
			mod.Decls = append(mod.Decls, decl)
		}
		p.skipNewlines()
	}

	end := p.cur().Span.End
	mod.SpanV = source.Span{Start: start, End: end}
	return mod
}

func (p *Parser) parseQualifiedName() ast.QualifiedName {
	start := p.cur().Span.Start
	var parts []string
	for {
		t := p.advance()
		parts = append(parts, t.Value)
		if p.atKind(token.DOT) && p.peekAt(1).Kind != token.NEWLINE && !p.isDeclTerminator() {
			// A lone trailing DOT terminates the declaration, not the
			// name; only consume it here if another identifier follows.
			if p.peekAt(1).Kind == token.IDENT || p.peekAt(1).Kind == token.TYPE_IDENT {
				p.advance()
				continue
			}
		}
		break
	}
	end := p.main[p.pos-1].Span.End
	return ast.QualifiedName{Parts: parts, SpanV: source.Span{Start: start, End: end}}
}

// isDeclTerminator reports whether the current DOT token is the one that
// ends a declaration (i.e. nothing after it continues a qualified name).
func (p *Parser) isDeclTerminator() bool {
	if !p.atKind(token.DOT) {
		return false
	}
	next := p.peekAt(1).Kind
	return next != token.IDENT && next != token.TYPE_IDENT
}

func (p *Parser) expectDot() {
	if p.atKind(token.DOT) {
		p.advance()
		return
	}
	p.errorUnexpected("'.'")
}

func (p *Parser) parseDecl() ast.Decl {
	switch {
	case p.atKeyword("Import"), p.atKeyword("import"):
		return p.parseImportDecl()
	case p.atKeyword("Rule"):
		return p.parseFuncDecl()
	case p.atKeyword("Define"):
		return p.parseDefineDecl()
	default:
		return p.errorDecl()
	}
}

func (p *Parser) parseImportDecl() ast.Decl {
	start := p.cur().Span.Start
	p.advance() // 'import'
	path := p.parseQualifiedName()
	p.expectDot()
	return &ast.ImportDecl{Path: path, SpanV: source.Span{Start: start, End: path.SpanV.End}}
}
