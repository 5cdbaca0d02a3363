package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aster-lang/aster/config"
	"github.com/aster-lang/aster/diag"
	"github.com/aster-lang/aster/ir"
)

func callStmt(callee string) ir.Stmt {
	return ir.Stmt{Kind: ir.StmtExpr, Value: &ir.Expr{
		Kind:   ir.ExprCall,
		Callee: &ir.Expr{Kind: ir.ExprName, Name: callee},
	}}
}

func TestCheckEffects_InferredButUndeclared(t *testing.T) {
	t.Parallel()

	mod := &ir.Module{Decls: []ir.Decl{
		{Kind: ir.DeclFunc, Name: "readConfig", Body: &ir.Block{Stmts: []ir.Stmt{callStmt("Files.read")}}},
	}}
	bag := diag.NewBag()
	checkEffects(mod, config.DefaultEffectConfig(), nil, bag)

	require.True(t, bag.HasErrors())
	assert.Contains(t, diagCodes(bag), diag.CodeEffectNotDeclared)
}

func TestCheckEffects_DeclaredAndUsed_NoDiagnostic(t *testing.T) {
	t.Parallel()

	mod := &ir.Module{Decls: []ir.Decl{
		{
			Kind:            ir.DeclFunc,
			Name:            "readConfig",
			DeclaredEffects: []string{"Files"},
			Body:            &ir.Block{Stmts: []ir.Stmt{callStmt("Files.read")}},
		},
	}}
	bag := diag.NewBag()
	checkEffects(mod, config.DefaultEffectConfig(), nil, bag)

	assert.False(t, bag.HasErrors())
	assert.Empty(t, bag.All())
}

func TestCheckEffects_OverDeclared_Warning(t *testing.T) {
	t.Parallel()

	mod := &ir.Module{Decls: []ir.Decl{
		{Kind: ir.DeclFunc, Name: "noop", DeclaredEffects: []string{"Sql"}, Body: &ir.Block{}},
	}}
	bag := diag.NewBag()
	checkEffects(mod, config.DefaultEffectConfig(), nil, bag)

	assert.False(t, bag.HasErrors())
	assert.Contains(t, diagCodes(bag), diag.CodeEffectOverDeclared)
}

// A transitive call into a user-defined function that itself performs Sql
// must propagate the effect up to the caller's inferred set.
func TestCheckEffects_TransitiveInference(t *testing.T) {
	t.Parallel()

	mod := &ir.Module{Decls: []ir.Decl{
		{Kind: ir.DeclFunc, Name: "helper", DeclaredEffects: []string{"Sql"}, Body: &ir.Block{Stmts: []ir.Stmt{callStmt("Sql.query")}}},
		{Kind: ir.DeclFunc, Name: "caller", Body: &ir.Block{Stmts: []ir.Stmt{callStmt("helper")}}},
	}}
	bag := diag.NewBag()
	checkEffects(mod, config.DefaultEffectConfig(), nil, bag)

	var callerDiags []diag.Diagnostic
	for _, d := range bag.All() {
		if d.Code == diag.CodeEffectNotDeclared {
			callerDiags = append(callerDiags, d)
		}
	}
	require.Len(t, callerDiags, 1)
}

func TestCheckEffects_CapabilityDenied(t *testing.T) {
	t.Parallel()

	mod := &ir.Module{Decls: []ir.Decl{
		{
			Kind:            ir.DeclFunc,
			Name:            "wipe",
			DeclaredEffects: []string{"Files"},
			Body:            &ir.Block{Stmts: []ir.Stmt{callStmt("Files.delete")}},
		},
	}}
	caps := &config.CapabilityManifest{
		Allow: map[string][]string{"Files": {"Files.read"}},
	}
	bag := diag.NewBag()
	checkEffects(mod, config.DefaultEffectConfig(), caps, bag)

	require.True(t, bag.HasErrors())
	assert.Contains(t, diagCodes(bag), diag.CodeCapabilityDenied)
}
