package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aster-lang/aster/config"
	"github.com/aster-lang/aster/diag"
	"github.com/aster-lang/aster/ir"
)

func TestCheckPII_LeakIntoNonIoCall(t *testing.T) {
	t.Parallel()

	piiType := ir.Type{Kind: ir.TypePii, Elem: &ir.Type{Kind: ir.TypeName, Name: "Text"}}
	mod := &ir.Module{Decls: []ir.Decl{
		{
			Kind:   ir.DeclFunc,
			Name:   "summarize",
			Params: []ir.Field{{Name: "note", Type: piiType}},
			Body: &ir.Block{Stmts: []ir.Stmt{
				{Kind: ir.StmtExpr, Value: &ir.Expr{
					Kind:   ir.ExprCall,
					Callee: &ir.Expr{Kind: ir.ExprName, Name: "AiModel.complete"},
					Args:   []ir.Expr{{Kind: ir.ExprName, Name: "note"}},
				}},
			}},
		},
	}}
	bag := diag.NewBag()
	checkPII(mod, config.DefaultEffectConfig(), bag)

	require.True(t, bag.HasErrors())
	assert.Contains(t, diagCodes(bag), diag.CodePIILeak)
}

func TestCheckPII_IoClassCallIsNotALeak(t *testing.T) {
	t.Parallel()

	piiType := ir.Type{Kind: ir.TypePii, Elem: &ir.Type{Kind: ir.TypeName, Name: "Text"}}
	mod := &ir.Module{Decls: []ir.Decl{
		{
			Kind:   ir.DeclFunc,
			Name:   "store",
			Params: []ir.Field{{Name: "note", Type: piiType}},
			Body: &ir.Block{Stmts: []ir.Stmt{
				{Kind: ir.StmtExpr, Value: &ir.Expr{
					Kind:   ir.ExprCall,
					Callee: &ir.Expr{Kind: ir.ExprName, Name: "Files.write"},
					Args:   []ir.Expr{{Kind: ir.ExprName, Name: "note"}},
				}},
			}},
		},
	}}
	bag := diag.NewBag()
	checkPII(mod, config.DefaultEffectConfig(), bag)

	assert.False(t, bag.HasErrors())
}

func TestCheckPII_NonPiiArgument_NoDiagnostic(t *testing.T) {
	t.Parallel()

	mod := &ir.Module{Decls: []ir.Decl{
		{
			Kind:   ir.DeclFunc,
			Name:   "summarize",
			Params: []ir.Field{{Name: "note", Type: ir.Type{Kind: ir.TypeName, Name: "Text"}}},
			Body: &ir.Block{Stmts: []ir.Stmt{
				{Kind: ir.StmtExpr, Value: &ir.Expr{
					Kind:   ir.ExprCall,
					Callee: &ir.Expr{Kind: ir.ExprName, Name: "AiModel.complete"},
					Args:   []ir.Expr{{Kind: ir.ExprName, Name: "note"}},
				}},
			}},
		},
	}}
	bag := diag.NewBag()
	checkPII(mod, config.DefaultEffectConfig(), bag)

	assert.Empty(t, bag.All())
}
