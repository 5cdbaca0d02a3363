package ir

import (
	"fmt"

	"github.com/aster-lang/aster/ast"
	"github.com/aster-lang/aster/diag"
)

// lowerer carries the mutable state threaded through a single Lower call:
// a diagnostic bag and a monotonic ID counter so every Core IR node that
// needs identity (the module and its declarations) gets a stable,
// deterministic ID rather than one derived from wall-clock time or
// randomness — Lower must be reproducible for golden-file comparisons.
type lowerer struct {
	bag     *diag.Bag
	counter int
}

func (l *lowerer) nextID(prefix string) string {
	id := fmt.Sprintf("%s#%d", prefix, l.counter)
	l.counter++
	return id
}

// Lower converts a parsed Module into its Core IR form. Lower is total:
// it never panics, and any subtree the parser could not make sense of
// (ast.ErrorNode) lowers to a placeholder that carries no further
// diagnostics of its own, since the parser already reported the
// underlying syntax error.
func Lower(mod *ast.Module) (*Module, *diag.Bag) {
	l := &lowerer{bag: diag.NewBag()}
	out := &Module{
		ID:    l.nextID("module"),
		Name:  mod.Name.String(),
		Span:  FromSpan(mod.SpanV),
	}
	for _, d := range mod.Decls {
		out.Decls = append(out.Decls, l.lowerDecl(d))
	}
	return out, l.bag
}

func (l *lowerer) lowerDecl(d ast.Decl) Decl {
	switch v := d.(type) {
	case *ast.FuncDecl:
		return Decl{
			Kind: DeclFunc, ID: l.nextID("func"), Name: v.Name,
			TypeParams: v.TypeParams, EffectParams: v.EffectParams,
			Params: l.lowerFields(v.Params),
			Ret:    ptr(l.lowerType(v.Ret)),
			DeclaredEffects: v.DeclaredEffects,
			Body:   l.lowerBlock(v.Body),
			Span:   FromSpan(v.SpanV),
		}
	case *ast.DataDecl:
		return Decl{
			Kind: DeclData, ID: l.nextID("data"), Name: v.Name,
			TypeParams: v.TypeParams, Fields: l.lowerFields(v.Fields),
			Span: FromSpan(v.SpanV),
		}
	case *ast.EnumDecl:
		variants := make([]string, len(v.Variants))
		for i, ev := range v.Variants {
			variants[i] = ev.Name
		}
		return Decl{
			Kind: DeclEnum, ID: l.nextID("enum"), Name: v.Name,
			TypeParams: v.TypeParams, Variants: variants,
			Span: FromSpan(v.SpanV),
		}
	case *ast.TypeAliasDecl:
		return Decl{
			Kind: DeclAlias, ID: l.nextID("alias"), Name: v.Name,
			TypeParams: v.TypeParams, Aliased: ptr(l.lowerType(v.Aliased)),
			Span: FromSpan(v.SpanV),
		}
	case *ast.ImportDecl:
		return Decl{
			Kind: DeclImport, ID: l.nextID("import"), ImportPath: v.Path.String(),
			Span: FromSpan(v.SpanV),
		}
	default:
		return Decl{Kind: DeclImport, ID: l.nextID("error"), Span: FromSpan(d.Span())}
	}
}

func (l *lowerer) lowerFields(fields []ast.Field) []Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]Field, len(fields))
	for i, f := range fields {
		out[i] = Field{
			Name: f.Name, Type: l.lowerType(f.Type),
			Constraints: l.lowerConstraints(f.Constraints),
			Span:        FromSpan(f.SpanV),
		}
	}
	return out
}

func (l *lowerer) lowerConstraints(cs []ast.Constraint) []Constraint {
	if len(cs) == 0 {
		return nil
	}
	out := make([]Constraint, len(cs))
	for i, c := range cs {
		switch v := c.(type) {
		case ast.RequiredConstraint:
			out[i] = Constraint{Kind: ConstraintRequired, Span: FromSpan(v.SpanV)}
		case ast.RangeConstraint:
			con := Constraint{Kind: ConstraintRange, Span: FromSpan(v.SpanV)}
			if v.Min != nil {
				con.Min = ptr(l.lowerExpr(v.Min))
			}
			if v.Max != nil {
				con.Max = ptr(l.lowerExpr(v.Max))
			}
			out[i] = con
		case ast.PatternConstraint:
			out[i] = Constraint{Kind: ConstraintPattern, Regexp: v.Regexp, Span: FromSpan(v.SpanV)}
		}
	}
	return out
}

func (l *lowerer) lowerType(t ast.Type) Type {
	if t == nil {
		return Type{Kind: TypeName, Name: "Text"}
	}
	switch v := t.(type) {
	case *ast.TypeName:
		return Type{Kind: TypeName, Name: v.Name, Span: FromSpan(v.SpanV)}
	case *ast.TypeVar:
		return Type{Kind: TypeVar, Name: v.Name, Span: FromSpan(v.SpanV)}
	case *ast.EffectVar:
		return Type{Kind: TypeEffect, Name: v.Name, Span: FromSpan(v.SpanV)}
	case *ast.TypeApp:
		args := make([]Type, len(v.Args))
		for i, a := range v.Args {
			args[i] = l.lowerType(a)
		}
		base := l.lowerType(v.Base)
		return Type{Kind: TypeApp, Name: base.Name, Args: args, Span: FromSpan(v.SpanV)}
	case *ast.FuncType:
		params := make([]Type, len(v.Params))
		for i, p := range v.Params {
			params[i] = l.lowerType(p)
		}
		return Type{Kind: TypeFunc, Params: params, Ret: ptr(l.lowerType(v.Ret)), Effects: v.DeclaredEffects, Span: FromSpan(v.SpanV)}
	case *ast.ListType:
		return Type{Kind: TypeList, Elem: ptr(l.lowerType(v.Elem)), Span: FromSpan(v.SpanV)}
	case *ast.MapType:
		return Type{Kind: TypeMap, Key: ptr(l.lowerType(v.Key)), Elem: ptr(l.lowerType(v.Value)), Span: FromSpan(v.SpanV)}
	case *ast.OptionType:
		return Type{Kind: TypeOption, Elem: ptr(l.lowerType(v.Elem)), Span: FromSpan(v.SpanV)}
	case *ast.ResultType:
		return Type{Kind: TypeResult, Ok: ptr(l.lowerType(v.Ok)), Err: ptr(l.lowerType(v.Err)), Span: FromSpan(v.SpanV)}
	case *ast.MaybeType:
		return Type{Kind: TypeMaybe, Elem: ptr(l.lowerType(v.Elem)), Span: FromSpan(v.SpanV)}
	case *ast.PiiType:
		return Type{Kind: TypePii, Elem: ptr(l.lowerType(v.Elem)), Span: FromSpan(v.SpanV)}
	default:
		return Type{Kind: TypeName, Name: "Text", Span: FromSpan(t.Span())}
	}
}

func (l *lowerer) lowerBlock(b *ast.Block) *Block {
	if b == nil {
		return nil
	}
	out := &Block{Span: FromSpan(b.SpanV)}
	for _, s := range b.Stmts {
		out.Stmts = l.appendStmt(out.Stmts, s)
	}
	return out
}

// appendStmt lowers s and appends it to stmts, except a Workflow, which
// carries no Core IR representation of its own: its steps are spliced
// in directly so every later check pass sees them as plain block
// statements rather than as an opaque wrapper it never looks inside of.
// A Workflow nested inside another Workflow's steps flattens the same
// way, recursively.
func (l *lowerer) appendStmt(stmts []Stmt, s ast.Stmt) []Stmt {
	if wf, ok := s.(*ast.WorkflowStmt); ok {
		for _, step := range wf.Steps {
			stmts = l.appendStmt(stmts, step.Stmt)
		}
		return stmts
	}
	return append(stmts, l.lowerStmt(s))
}

// lowerStmt normalizes If/Otherwise into the canonical two-armed
// StmtMatch form (`true`/`false` patterns over the condition), so
// downstream passes handle one control-flow construct, not two.
func (l *lowerer) lowerStmt(s ast.Stmt) Stmt {
	switch v := s.(type) {
	case *ast.LetStmt:
		return Stmt{Kind: StmtLet, Name: v.Name, Type: optType(l, v.Type), Value: ptr(l.lowerExpr(v.Value)), Span: FromSpan(v.SpanV)}
	case *ast.ReturnStmt:
		return Stmt{Kind: StmtReturn, Value: ptr(l.lowerExpr(v.Value)), Span: FromSpan(v.SpanV)}
	case *ast.ExprStmt:
		return Stmt{Kind: StmtExpr, Value: ptr(l.lowerExpr(v.Value)), Span: FromSpan(v.SpanV)}
	case *ast.IfStmt:
		falseSpan := FromSpan(v.SpanV)
		if v.Else != nil {
			falseSpan = FromSpan(v.Else.SpanV)
		}
		cases := []Case{{
			Pattern: Expr{Kind: ExprBool, Bool: true, Span: FromSpan(v.Cond.Span())},
			Body:    l.lowerBlock(v.Then),
			Span:    FromSpan(v.Then.SpanV),
		}, {
			Pattern: Expr{Kind: ExprBool, Bool: false, Span: falseSpan},
			Body:    l.lowerBlock(v.Else),
			Span:    falseSpan,
		}}
		return Stmt{Kind: StmtMatch, Subject: ptr(l.lowerExpr(v.Cond)), Cases: cases, Span: FromSpan(v.SpanV)}
	case *ast.MatchStmt:
		cases := make([]Case, len(v.Cases))
		for i, c := range v.Cases {
			cases[i] = Case{Pattern: l.lowerExpr(c.Pattern), Body: l.lowerBlock(c.Body), Span: FromSpan(c.SpanV)}
		}
		return Stmt{Kind: StmtMatch, Subject: ptr(l.lowerExpr(v.Subject)), Cases: cases, Span: FromSpan(v.SpanV)}
	case *ast.StartStmt:
		return Stmt{Kind: StmtStart, Task: v.Task, Call: ptr(l.lowerExpr(v.Call)), Span: FromSpan(v.SpanV)}
	case *ast.WaitStmt:
		return Stmt{Kind: StmtWait, Task: v.Task, Span: FromSpan(v.SpanV)}
	case *ast.TryStmt:
		return Stmt{Kind: StmtTry, Body: l.lowerBlock(v.Body), CatchName: v.CatchName, Handler: l.lowerBlock(v.Handler), Span: FromSpan(v.SpanV)}
	default:
		return Stmt{Kind: StmtExpr, Value: &Expr{Kind: ExprNull, Span: FromSpan(s.Span())}, Span: FromSpan(s.Span())}
	}
}

func optType(l *lowerer, t ast.Type) *Type {
	if t == nil {
		return nil
	}
	return ptr(l.lowerType(t))
}

// lowerExpr normalizes word operators to canonical Op spellings and
// collapses the four wrapper-construction forms (ok of/err of/some
// of/none) into ExprConstruct.
func (l *lowerer) lowerExpr(e ast.Expr) Expr {
	switch v := e.(type) {
	case *ast.StringExpr:
		return Expr{Kind: ExprString, String: v.Value, Span: FromSpan(v.SpanV)}
	case *ast.IntExpr:
		return Expr{Kind: ExprInt, Int: v.Value, Span: FromSpan(v.SpanV)}
	case *ast.LongExpr:
		return Expr{Kind: ExprInt, Int: v.Value, Span: FromSpan(v.SpanV)}
	case *ast.DoubleExpr:
		return Expr{Kind: ExprDouble, Double: v.Value, Span: FromSpan(v.SpanV)}
	case *ast.BoolExpr:
		return Expr{Kind: ExprBool, Bool: v.Value, Span: FromSpan(v.SpanV)}
	case *ast.NullExpr:
		return Expr{Kind: ExprNull, Span: FromSpan(v.SpanV)}
	case *ast.NameExpr:
		return Expr{Kind: ExprName, Name: v.Name, Span: FromSpan(v.SpanV)}
	case *ast.ConstructExpr:
		fields := make([]FieldInit, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = FieldInit{Name: f.Name, Value: l.lowerExpr(f.Value), Span: FromSpan(f.SpanV)}
		}
		return Expr{Kind: ExprConstruct, Name: v.Type.Name, Fields: fields, Span: FromSpan(v.SpanV)}
	case *ast.CallExpr:
		args := make([]Expr, len(v.Args))
		for i, a := range v.Args {
			args[i] = l.lowerExpr(a)
		}
		return Expr{Kind: ExprCall, Callee: ptr(l.lowerExpr(v.Callee)), Args: args, Span: FromSpan(v.SpanV)}
	case *ast.OkExpr:
		return Expr{Kind: ExprConstruct, Name: "Ok", Fields: []FieldInit{{Name: "value", Value: l.lowerExpr(v.Value)}}, Span: FromSpan(v.SpanV)}
	case *ast.ErrExpr:
		return Expr{Kind: ExprConstruct, Name: "Err", Fields: []FieldInit{{Name: "value", Value: l.lowerExpr(v.Value)}}, Span: FromSpan(v.SpanV)}
	case *ast.SomeExpr:
		return Expr{Kind: ExprConstruct, Name: "Some", Fields: []FieldInit{{Name: "value", Value: l.lowerExpr(v.Value)}}, Span: FromSpan(v.SpanV)}
	case *ast.NoneExpr:
		return Expr{Kind: ExprConstruct, Name: "None", Span: FromSpan(v.SpanV)}
	case *ast.MatchExpr:
		cases := make([]Case, len(v.Cases))
		for i, c := range v.Cases {
			cases[i] = Case{Pattern: l.lowerExpr(c.Pattern), Value: ptr(l.lowerExpr(c.Body)), Span: FromSpan(c.SpanV)}
		}
		return Expr{Kind: ExprMatch, Subject: ptr(l.lowerExpr(v.Subject)), Cases: cases, Span: FromSpan(v.SpanV)}
	case *ast.LambdaExpr:
		return Expr{Kind: ExprLambda, Params: l.lowerFields(v.Params), Body: ptr(l.lowerExpr(v.Body)), Span: FromSpan(v.SpanV)}
	case *ast.IfExpr:
		// Expression-position If/Otherwise lowers to the same
		// two-armed match shape as the statement form, just carrying
		// Value instead of Body per arm.
		cases := []Case{
			{Pattern: Expr{Kind: ExprBool, Bool: true}, Value: ptr(l.lowerExpr(v.Then))},
			{Pattern: Expr{Kind: ExprBool, Bool: false}, Value: ptr(l.lowerExpr(v.Else))},
		}
		return Expr{Kind: ExprMatch, Subject: ptr(l.lowerExpr(v.Cond)), Cases: cases, Span: FromSpan(v.SpanV)}
	case *ast.BinaryExpr:
		return Expr{Kind: ExprBinary, Op: canonicalOp(v.Op), Left: ptr(l.lowerExpr(v.Left)), Right: ptr(l.lowerExpr(v.Right)), Span: FromSpan(v.SpanV)}
	case *ast.UnaryExpr:
		return Expr{Kind: ExprUnary, Op: canonicalOp(v.Op), Operand: ptr(l.lowerExpr(v.Operand)), Span: FromSpan(v.SpanV)}
	default:
		return Expr{Kind: ExprNull, Span: FromSpan(e.Span())}
	}
}

// canonicalOp renames a multi-word surface operator spelling to the
// symbolic name the typechecker's builtin-operator table keys on.
func canonicalOp(op string) string {
	switch op {
	case "plus":
		return "+"
	case "less than":
		return "<"
	case "equals to":
		return "=="
	case "not":
		return "!"
	default:
		return op
	}
}

func ptr[T any](v T) *T { return &v }
