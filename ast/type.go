package ast

import "github.com/aster-lang/aster/source"

// Type is a tagged sum type over every surface type form.
type Type interface {
	Node
	typeNode()
}

// TypeName is a reference to a concrete or declared type by name, e.g.
// "Text", "Int", or a user Data/Enum name.
type TypeName struct {
	Name  string
	SpanV source.Span
}

func (t *TypeName) Span() source.Span { return t.SpanV }
func (*TypeName) typeNode()           {}

// TypeVar is a reference to a function's declared type parameter.
type TypeVar struct {
	Name  string
	SpanV source.Span
}

func (t *TypeVar) Span() source.Span { return t.SpanV }
func (*TypeVar) typeNode()           {}

// EffectVar is a reference to a function's declared effect parameter,
// written as a single capital letter.
type EffectVar struct {
	Name  string
	SpanV source.Span
}

func (t *EffectVar) Span() source.Span { return t.SpanV }
func (*EffectVar) typeNode()           {}

// TypeApp is a generic type application, e.g. "List<T>".
type TypeApp struct {
	Base  Type
	Args  []Type
	SpanV source.Span
}

func (t *TypeApp) Span() source.Span { return t.SpanV }
func (*TypeApp) typeNode()           {}

// FuncType is a first-class function type, e.g. the type of a Lambda
// parameter. DeclaredEffects records the "It performs" list attached to
// this function-type position, inherited from the enclosing
// effect-collection scope when omitted.
type FuncType struct {
	Params          []Type
	Ret             Type
	DeclaredEffects []string
	SpanV           source.Span
}

func (t *FuncType) Span() source.Span { return t.SpanV }
func (*FuncType) typeNode()           {}

// ListType is "List<Elem>".
type ListType struct {
	Elem  Type
	SpanV source.Span
}

func (t *ListType) Span() source.Span { return t.SpanV }
func (*ListType) typeNode()           {}

// MapType is "Map<Key, Value>".
type MapType struct {
	Key, Value Type
	SpanV      source.Span
}

func (t *MapType) Span() source.Span { return t.SpanV }
func (*MapType) typeNode()           {}

// OptionType is "Option<Elem>".
type OptionType struct {
	Elem  Type
	SpanV source.Span
}

func (t *OptionType) Span() source.Span { return t.SpanV }
func (*OptionType) typeNode()           {}

// ResultType is "Result<Ok, Err>".
type ResultType struct {
	Ok, Err Type
	SpanV   source.Span
}

func (t *ResultType) Span() source.Span { return t.SpanV }
func (*ResultType) typeNode()           {}

// MaybeType is the nullable-reference sugar "Maybe<Elem>", distinct from
// Option in that it elides explicit Some/None wrapping at construction
// sites.
type MaybeType struct {
	Elem  Type
	SpanV source.Span
}

func (t *MaybeType) Span() source.Span { return t.SpanV }
func (*MaybeType) typeNode()           {}

// PiiType wraps a type as personally identifying data; the typechecker
// preserves the wrapper through unification and only drops it at an
// explicit unwrap site.
type PiiType struct {
	Elem  Type
	SpanV source.Span
}

func (t *PiiType) Span() source.Span { return t.SpanV }
func (*PiiType) typeNode()           {}
