package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWalkType_VisitsEveryNestedTypeNode(t *testing.T) {
	t.Parallel()

	typ := &MapType{
		Key:   &TypeName{Name: "Text"},
		Value: &ListType{Elem: &TypeVar{Name: "T"}},
	}

	var visited []Type
	WalkType(typ, func(n Type) { visited = append(visited, n) })

	assert.Len(t, visited, 4)
}

func TestWalkType_NilIsANoOp(t *testing.T) {
	t.Parallel()

	var calls int
	WalkType(nil, func(Type) { calls++ })

	assert.Equal(t, 0, calls)
}

func TestCollectTypeVarNames_FindsVarsNestedInsideContainers(t *testing.T) {
	t.Parallel()

	typ := &ResultType{
		Ok:  &TypeVar{Name: "T"},
		Err: &TypeApp{Base: &TypeName{Name: "Error"}, Args: []Type{&TypeVar{Name: "E"}}},
	}

	names := CollectTypeVarNames(typ)

	assert.True(t, names["T"])
	assert.True(t, names["E"])
	assert.Len(t, names, 2)
}

func TestWalkExpr_VisitsCallCalleeAndArgs(t *testing.T) {
	t.Parallel()

	expr := &CallExpr{
		Callee: &NameExpr{Name: "f"},
		Args:   []Expr{&IntExpr{Value: 1}, &NameExpr{Name: "x"}},
	}

	var visited []Expr
	WalkExpr(expr, func(e Expr) { visited = append(visited, e) })

	assert.Len(t, visited, 4)
}

func TestWalkStmt_DescendsIntoIfBranchesAndRunsExprVisitor(t *testing.T) {
	t.Parallel()

	stmt := &IfStmt{
		Cond: &NameExpr{Name: "cond"},
		Then: &Block{Stmts: []Stmt{&ReturnStmt{Value: &IntExpr{Value: 1}}}},
		Else: &Block{Stmts: []Stmt{&ReturnStmt{Value: &IntExpr{Value: 2}}}},
	}

	var stmts []Stmt
	var exprs []Expr
	WalkStmt(stmt, func(s Stmt) { stmts = append(stmts, s) }, func(e Expr) { exprs = append(exprs, e) })

	assert.Len(t, stmts, 3)
	assert.Len(t, exprs, 3)
}

func TestWalkStmt_NilVisitExprIsTolerated(t *testing.T) {
	t.Parallel()

	stmt := &ReturnStmt{Value: &IntExpr{Value: 1}}

	assert.NotPanics(t, func() {
		WalkStmt(stmt, func(Stmt) {}, nil)
	})
}

func TestWalkBlock_NilBlockIsANoOp(t *testing.T) {
	t.Parallel()

	var calls int
	WalkBlock(nil, func(Stmt) { calls++ }, nil)

	assert.Equal(t, 0, calls)
}
