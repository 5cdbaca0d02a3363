package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aster-lang/aster/ast"
	"github.com/aster-lang/aster/diag"
	"github.com/aster-lang/aster/ir"
)

func waitStmt(task string) ir.Stmt { return ir.Stmt{Kind: ir.StmtWait, Task: task} }
func startStmt(task string) ir.Stmt {
	return ir.Stmt{Kind: ir.StmtStart, Task: task, Call: &ir.Expr{Kind: ir.ExprName, Name: task}}
}

func funcDecl(name string, stmts ...ir.Stmt) ir.Decl {
	return ir.Decl{Kind: ir.DeclFunc, Name: name, Body: &ir.Block{Stmts: stmts}}
}

// S3: a Wait on a task that was never Start'd on any path reaching it.
func TestCheckAsync_WaitBeforeStart(t *testing.T) {
	t.Parallel()

	mod := &ir.Module{Decls: []ir.Decl{
		funcDecl("f", waitStmt("job")),
	}}
	bag := diag.NewBag()
	checkAsync(mod, bag)

	require.True(t, bag.HasErrors())
	codes := diagCodes(bag)
	assert.Contains(t, codes, diag.CodeAsyncWaitBeforeStart)
}

// A Workflow is not a separate Core IR statement kind: lowering splices
// its steps into the enclosing block, so a double Start reachable
// through a Workflow is caught the same as one written directly in a
// function body, rather than being hidden behind a wrapper this pass
// never looks inside of.
func TestCheckAsync_DuplicateStartInsideWorkflowIsCaught(t *testing.T) {
	t.Parallel()

	call := func() ast.Expr { return &ast.NameExpr{Name: "job"} }
	mod := &ast.Module{Decls: []ast.Decl{
		&ast.FuncDecl{
			Name: "f",
			Body: &ast.Block{Stmts: []ast.Stmt{
				&ast.WorkflowStmt{
					Name: "onboarding",
					Steps: []ast.WorkflowStep{
						{Stmt: &ast.StartStmt{Task: "job", Call: call()}},
						{Stmt: &ast.StartStmt{Task: "job", Call: call()}},
					},
				},
			}},
		},
	}}
	coreMod, lowerBag := ir.Lower(mod)
	require.False(t, lowerBag.HasErrors())

	bag := diag.NewBag()
	checkAsync(coreMod, bag)

	require.True(t, bag.HasErrors())
	assert.Contains(t, diagCodes(bag), diag.CodeAsyncDuplicateStart)
}

// S4: mutually exclusive Start branches (a Match with two arms, each
// starting the same task) must NOT be flagged — only one arm can ever
// execute, so there is no real duplicate start on any single path.
func TestCheckAsync_MutuallyExclusiveStart_NoDiagnostic(t *testing.T) {
	t.Parallel()

	matchStmt := ir.Stmt{
		Kind:    ir.StmtMatch,
		Subject: &ir.Expr{Kind: ir.ExprBool, Bool: true},
		Cases: []ir.Case{
			{Pattern: ir.Expr{Kind: ir.ExprBool, Bool: true}, Body: &ir.Block{Stmts: []ir.Stmt{startStmt("job")}}},
			{Pattern: ir.Expr{Kind: ir.ExprBool, Bool: false}, Body: &ir.Block{Stmts: []ir.Stmt{startStmt("job")}}},
		},
	}
	mod := &ir.Module{Decls: []ir.Decl{funcDecl("f", matchStmt, waitStmt("job"))}}
	bag := diag.NewBag()
	checkAsync(mod, bag)

	assert.False(t, bag.HasErrors())
	assert.NotContains(t, diagCodes(bag), diag.CodeAsyncDuplicateStart)
	// both arms started "job" unconditionally, so the join's intersected
	// started set still contains it: the Wait after the match is fine too.
	assert.NotContains(t, diagCodes(bag), diag.CodeAsyncWaitBeforeStart)
}

// S5: two sequential Starts of the same task on one straight-line path
// must be flagged as a duplicate.
func TestCheckAsync_SequentialDuplicateStart(t *testing.T) {
	t.Parallel()

	mod := &ir.Module{Decls: []ir.Decl{
		funcDecl("f", startStmt("job"), startStmt("job")),
	}}
	bag := diag.NewBag()
	checkAsync(mod, bag)

	require.True(t, bag.HasErrors())
	assert.Contains(t, diagCodes(bag), diag.CodeAsyncDuplicateStart)
}

func diagCodes(bag *diag.Bag) []string {
	var codes []string
	for _, d := range bag.All() {
		codes = append(codes, d.Code)
	}
	return codes
}
