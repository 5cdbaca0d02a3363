package ast

import "github.com/aster-lang/aster/source"

// Stmt is a tagged sum type over every statement form.
type Stmt interface {
	Node
	stmtNode()
}

// Block is an indented sequence of statements.
type Block struct {
	Stmts []Stmt
	SpanV source.Span
}

func (b *Block) Span() source.Span { return b.SpanV }

// LetStmt is `Let name: Type = expr.` or `Let name = expr.`; Type is nil
// when omitted, in which case the typechecker infers it.
type LetStmt struct {
	Name    string
	Type    Type
	Value   Expr
	Mutable bool
	SpanV   source.Span
}

func (s *LetStmt) Span() source.Span { return s.SpanV }
func (*LetStmt) stmtNode()           {}

// ReturnStmt is `Return expr.`.
type ReturnStmt struct {
	Value Expr
	SpanV source.Span
}

func (s *ReturnStmt) Span() source.Span { return s.SpanV }
func (*ReturnStmt) stmtNode()           {}

// ExprStmt is an expression evaluated for effect.
type ExprStmt struct {
	Value Expr
	SpanV source.Span
}

func (s *ExprStmt) Span() source.Span { return s.SpanV }
func (*ExprStmt) stmtNode()           {}

// IfStmt is `If cond: then-block Otherwise: else-block`, with Else nil
// when there is no Otherwise clause.
type IfStmt struct {
	Cond  Expr
	Then  *Block
	Else  *Block
	SpanV source.Span
}

func (s *IfStmt) Span() source.Span { return s.SpanV }
func (*IfStmt) stmtNode()           {}

// MatchCaseStmt is one `When Pattern: block` arm of a Match statement.
type MatchCaseStmt struct {
	Pattern Expr
	Body    *Block
	SpanV   source.Span
}

func (c MatchCaseStmt) Span() source.Span { return c.SpanV }

// MatchStmt is `Match expr: When Pattern: ...` used in statement
// position.
type MatchStmt struct {
	Subject Expr
	Cases   []MatchCaseStmt
	SpanV   source.Span
}

func (s *MatchStmt) Span() source.Span { return s.SpanV }
func (*MatchStmt) stmtNode()           {}

// StartStmt is `Start <task> as async <call>.`; it introduces Task into
// the enclosing block scope as an async task name.
type StartStmt struct {
	Task  string
	Call  Expr
	SpanV source.Span
}

func (s *StartStmt) Span() source.Span { return s.SpanV }
func (*StartStmt) stmtNode()           {}

// WaitStmt is `Wait for <task>.`.
type WaitStmt struct {
	Task  string
	SpanV source.Span
}

func (s *WaitStmt) Span() source.Span { return s.SpanV }
func (*WaitStmt) stmtNode()           {}

// TryStmt is `Try: body Catch <name>: handler`.
type TryStmt struct {
	Body      *Block
	CatchName string
	Handler   *Block
	SpanV     source.Span
}

func (s *TryStmt) Span() source.Span { return s.SpanV }
func (*TryStmt) stmtNode()           {}

// WorkflowStep is one step of a Workflow statement, either a plain
// statement or a Start/Wait step composed into the workflow's scheduling.
type WorkflowStep struct {
	Stmt  Stmt
	SpanV source.Span
}

func (s WorkflowStep) Span() source.Span { return s.SpanV }

// WorkflowStmt groups a sequence of steps (which may include Start/Wait)
// under a named, auditable unit. Lowering flattens it into a Block;
// typecheck runs the same async dataflow analysis over its steps as it
// would over a plain Block.
type WorkflowStmt struct {
	Name  string
	Steps []WorkflowStep
	SpanV source.Span
}

func (s *WorkflowStmt) Span() source.Span { return s.SpanV }
func (*WorkflowStmt) stmtNode()           {}
