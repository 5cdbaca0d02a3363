package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aster-lang/aster/diag"
	"github.com/aster-lang/aster/ir"
)

// S6: a generic function whose type parameter is declared and consistently
// used in both its parameter and return type produces no diagnostics.
func TestCheckGenerics_ConsistentUse_NoDiagnostic(t *testing.T) {
	t.Parallel()

	tv := ir.Type{Kind: ir.TypeVar, Name: "T"}
	fn := ir.Decl{
		Kind:       ir.DeclFunc,
		Name:       "identity",
		TypeParams: []string{"T"},
		Params:     []ir.Field{{Name: "x", Type: tv}},
		Ret:        &tv,
	}
	bag := diag.NewBag()
	checkGenerics(fn, bag)

	assert.Empty(t, bag.All())
}

func TestCheckGenerics_UndeclaredTypeVar(t *testing.T) {
	t.Parallel()

	fn := ir.Decl{
		Kind:   ir.DeclFunc,
		Name:   "identity",
		Params: []ir.Field{{Name: "x", Type: ir.Type{Kind: ir.TypeVar, Name: "T"}}},
	}
	bag := diag.NewBag()
	checkGenerics(fn, bag)

	require.True(t, bag.HasErrors())
	assert.Contains(t, diagCodes(bag), diag.CodeTypeVarUndeclared)
}

func TestCheckGenerics_UnusedTypeParam(t *testing.T) {
	t.Parallel()

	fn := ir.Decl{
		Kind:       ir.DeclFunc,
		Name:       "noop",
		TypeParams: []string{"T"},
	}
	bag := diag.NewBag()
	checkGenerics(fn, bag)

	assert.Contains(t, diagCodes(bag), diag.CodeTypeParamUnused)
}

func TestCheckGenerics_EffectVarDeclaredAndUsed(t *testing.T) {
	t.Parallel()

	fn := ir.Decl{
		Kind:         ir.DeclFunc,
		Name:         "run",
		EffectParams: []string{"E"},
		Ret: &ir.Type{
			Kind: ir.TypeFunc, Effects: []string{"E"},
		},
	}
	bag := diag.NewBag()
	checkGenerics(fn, bag)

	assert.Empty(t, bag.All())
}
