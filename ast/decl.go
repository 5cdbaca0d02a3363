package ast

import "github.com/aster-lang/aster/source"

// Decl is a tagged sum type over every top-level declaration form.
type Decl interface {
	Node
	declNode()
}

// FuncDecl is a `Rule <name> given ..., produce ...: body.` declaration.
type FuncDecl struct {
	Name            string
	TypeParams      []string
	EffectParams    []string
	Params          []Field
	Ret             Type
	DeclaredEffects []string
	Body            *Block
	SpanV           source.Span
}

func (d *FuncDecl) Span() source.Span { return d.SpanV }
func (*FuncDecl) declNode()           {}

// DataDecl is a `Define <Name> has <fields>.` declaration.
type DataDecl struct {
	Name       string
	TypeParams []string
	Fields     []Field
	SpanV      source.Span
}

func (d *DataDecl) Span() source.Span { return d.SpanV }
func (*DataDecl) declNode()           {}

// EnumVariant is one named case of an Enum declaration.
type EnumVariant struct {
	Name  string
	SpanV source.Span
}

func (v EnumVariant) Span() source.Span { return v.SpanV }

// EnumDecl is a `Define <Name> as one of <variants>.` declaration.
type EnumDecl struct {
	Name       string
	TypeParams []string
	Variants   []EnumVariant
	SpanV      source.Span
}

func (d *EnumDecl) Span() source.Span { return d.SpanV }
func (*EnumDecl) declNode()           {}

// TypeAliasDecl is a `Define <Name> is <Type>.` declaration, naming an
// existing type (possibly generic) under a new name.
type TypeAliasDecl struct {
	Name       string
	TypeParams []string
	Aliased    Type
	SpanV      source.Span
}

func (d *TypeAliasDecl) Span() source.Span { return d.SpanV }
func (*TypeAliasDecl) declNode()           {}

// ImportDecl is a module import.
type ImportDecl struct {
	Path  QualifiedName
	SpanV source.Span
}

func (d *ImportDecl) Span() source.Span { return d.SpanV }
func (*ImportDecl) declNode()           {}
