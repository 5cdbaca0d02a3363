package ast

import "github.com/aster-lang/aster/source"

// Expr is a tagged sum type over every expression form.
type Expr interface {
	Node
	exprNode()
}

// StringExpr is a string literal.
type StringExpr struct {
	Value string
	SpanV source.Span
}

func (e *StringExpr) Span() source.Span { return e.SpanV }
func (*StringExpr) exprNode()           {}

// IntExpr is an integer literal.
type IntExpr struct {
	Value int64
	SpanV source.Span
}

func (e *IntExpr) Span() source.Span { return e.SpanV }
func (*IntExpr) exprNode()           {}

// LongExpr is a wide-integer literal; surface syntax distinguishes Long
// from Int explicitly rather than inferring width from value.
type LongExpr struct {
	Value int64
	SpanV source.Span
}

func (e *LongExpr) Span() source.Span { return e.SpanV }
func (*LongExpr) exprNode()           {}

// DoubleExpr is a floating-point literal.
type DoubleExpr struct {
	Value float64
	SpanV source.Span
}

func (e *DoubleExpr) Span() source.Span { return e.SpanV }
func (*DoubleExpr) exprNode()           {}

// BoolExpr is `true` or `false`.
type BoolExpr struct {
	Value bool
	SpanV source.Span
}

func (e *BoolExpr) Span() source.Span { return e.SpanV }
func (*BoolExpr) exprNode()           {}

// NullExpr is the `null` literal.
type NullExpr struct {
	SpanV source.Span
}

func (e *NullExpr) Span() source.Span { return e.SpanV }
func (*NullExpr) exprNode()           {}

// NameExpr is a bare identifier reference.
type NameExpr struct {
	Name  string
	SpanV source.Span
}

func (e *NameExpr) Span() source.Span { return e.SpanV }
func (*NameExpr) exprNode()           {}

// FieldInit is one `field: expr` pair inside a Construct expression.
type FieldInit struct {
	Name  string
	Value Expr
	SpanV source.Span
}

func (f FieldInit) Span() source.Span { return f.SpanV }

// ConstructExpr is `<TypeName> with field: expr, ...`.
type ConstructExpr struct {
	Type   *TypeName
	Fields []FieldInit
	SpanV  source.Span
}

func (e *ConstructExpr) Span() source.Span { return e.SpanV }
func (*ConstructExpr) exprNode()           {}

// CallExpr is a function call.
type CallExpr struct {
	Callee Expr
	Args   []Expr
	SpanV  source.Span
}

func (e *CallExpr) Span() source.Span { return e.SpanV }
func (*CallExpr) exprNode()           {}

// OkExpr is `ok of e`.
type OkExpr struct {
	Value Expr
	SpanV source.Span
}

func (e *OkExpr) Span() source.Span { return e.SpanV }
func (*OkExpr) exprNode()           {}

// ErrExpr is `err of e`.
type ErrExpr struct {
	Value Expr
	SpanV source.Span
}

func (e *ErrExpr) Span() source.Span { return e.SpanV }
func (*ErrExpr) exprNode()           {}

// SomeExpr is `some of e`.
type SomeExpr struct {
	Value Expr
	SpanV source.Span
}

func (e *SomeExpr) Span() source.Span { return e.SpanV }
func (*SomeExpr) exprNode()           {}

// NoneExpr is `none`.
type NoneExpr struct {
	SpanV source.Span
}

func (e *NoneExpr) Span() source.Span { return e.SpanV }
func (*NoneExpr) exprNode()           {}

// MatchCase is one `When Pattern: expr` arm of a Match expression.
type MatchCase struct {
	Pattern Expr
	Body    Expr
	SpanV   source.Span
}

func (c MatchCase) Span() source.Span { return c.SpanV }

// MatchExpr is `Match expr: When Pattern: ...` used in expression
// position.
type MatchExpr struct {
	Subject Expr
	Cases   []MatchCase
	SpanV   source.Span
}

func (e *MatchExpr) Span() source.Span { return e.SpanV }
func (*MatchExpr) exprNode()           {}

// LambdaExpr is an inline function value.
type LambdaExpr struct {
	Params []Field
	Body   Expr
	SpanV  source.Span
}

func (e *LambdaExpr) Span() source.Span { return e.SpanV }
func (*LambdaExpr) exprNode()           {}

// IfExpr is an `If ... Otherwise ...` used in expression position.
type IfExpr struct {
	Cond, Then, Else Expr
	SpanV            source.Span
}

func (e *IfExpr) Span() source.Span { return e.SpanV }
func (*IfExpr) exprNode()           {}

// BinaryExpr is a word- or symbol-operator binary expression (`plus`,
// `less than`, `equals to`, `+`, `<`, ...), produced by the Pratt-style
// precedence climb in the parser.
type BinaryExpr struct {
	Op          string
	Left, Right Expr
	SpanV       source.Span
}

func (e *BinaryExpr) Span() source.Span { return e.SpanV }
func (*BinaryExpr) exprNode()           {}

// UnaryExpr is a prefix operator, currently only `not`.
type UnaryExpr struct {
	Op      string
	Operand Expr
	SpanV   source.Span
}

func (e *UnaryExpr) Span() source.Span { return e.SpanV }
func (*UnaryExpr) exprNode()           {}
