package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aster-lang/aster/config"
	"github.com/aster-lang/aster/ir"
)

func TestBuildFuncScope_LambdaCapturesOuterParam(t *testing.T) {
	t.Parallel()

	lambdaExpr := ir.Expr{
		Kind: ir.ExprLambda,
		Body: &ir.Expr{Kind: ir.ExprName, Name: "total"},
	}
	fn := ir.Decl{
		Params: []ir.Field{{Name: "total"}},
		Body: &ir.Block{Stmts: []ir.Stmt{
			{Kind: ir.StmtLet, Name: "addOne", Value: &lambdaExpr},
		}},
	}

	root := NewScope(ScopeFunction, nil)
	for _, p := range fn.Params {
		root.Declare(&SymbolInfo{Name: p.Name, Kind: SymbolParam})
	}
	walkScopeBlock(root, fn.Body, false)

	info, ok := root.Lookup("total")
	require.True(t, ok)
	assert.True(t, info.Captured)
}

func TestBuildFuncScope_LambdaOwnParamIsNotCaptured(t *testing.T) {
	t.Parallel()

	lambdaExpr := ir.Expr{
		Kind:   ir.ExprLambda,
		Params: []ir.Field{{Name: "x"}},
		Body:   &ir.Expr{Kind: ir.ExprName, Name: "x"},
	}
	fn := ir.Decl{
		Body: &ir.Block{Stmts: []ir.Stmt{
			{Kind: ir.StmtLet, Name: "id", Value: &lambdaExpr},
		}},
	}

	root := NewScope(ScopeFunction, nil)
	walkScopeBlock(root, fn.Body, false)
	// "x" only ever exists inside the lambda's own scope, so nothing in
	// the function scope should have been marked captured.
	_, found := root.Lookup("x")
	assert.False(t, found)
}

// A full Check() pass over a module with no capability manifest, a clean
// effect declaration, and no async statements should come back clean.
func TestCheck_CleanModule_NoDiagnostics(t *testing.T) {
	t.Parallel()

	mod := &ir.Module{Decls: []ir.Decl{
		{
			Kind:            ir.DeclFunc,
			Name:            "greet",
			DeclaredEffects: []string{"Io"},
			Params:          []ir.Field{{Name: "name", Type: ir.Type{Kind: ir.TypeName, Name: "Text"}}},
			Body: &ir.Block{Stmts: []ir.Stmt{
				{Kind: ir.StmtExpr, Value: &ir.Expr{
					Kind:   ir.ExprCall,
					Callee: &ir.Expr{Kind: ir.ExprName, Name: "Io.print"},
					Args:   []ir.Expr{{Kind: ir.ExprName, Name: "name"}},
				}},
			}},
		},
	}}

	bag := Check(mod, config.Env{}, nil, nil)
	assert.False(t, bag.HasErrors())
}
