package ir_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/aster-lang/aster/diag"
	"github.com/aster-lang/aster/ir"
)

// A Core IR module must survive a Marshal/Unmarshal round trip unchanged,
// modulo nothing: the envelope is meant to be a stable, diffable artifact
// (`asterc emit-core`), so every field it carries must come back intact.
func TestMarshalUnmarshal_RoundTrip(t *testing.T) {
	t.Parallel()

	mod := &ir.Module{
		ID:   "mod-1",
		Name: "Greeting",
		Decls: []ir.Decl{
			{
				Kind:            ir.DeclFunc,
				Name:            "greet",
				DeclaredEffects: []string{"Io"},
				Params: []ir.Field{
					{Name: "name", Type: ir.Type{Kind: ir.TypeName, Name: "Text"}},
				},
				Ret: &ir.Type{Kind: ir.TypeName, Name: "Text"},
				Body: &ir.Block{Stmts: []ir.Stmt{
					{
						Kind: ir.StmtReturn,
						Value: &ir.Expr{
							Kind:   ir.ExprBinary,
							Op:     "concat",
							Left:   &ir.Expr{Kind: ir.ExprString, String: "Hello, "},
							Right:  &ir.Expr{Kind: ir.ExprName, Name: "name"},
						},
					},
				}},
			},
		},
	}

	data, err := ir.Marshal(mod)
	require.NoError(t, err)

	got, err := ir.Unmarshal(data)
	require.NoError(t, err)

	if diff := cmp.Diff(mod, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmarshal_RejectsSchemaVersionMismatch(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(ir.Envelope{SchemaVersion: ir.SchemaVersion + 1, Module: &ir.Module{}})
	require.NoError(t, err)

	_, err = ir.Unmarshal(data)

	require.Error(t, err)
	var d diag.Diagnostic
	require.ErrorAs(t, err, &d)
	require.Equal(t, diag.CodeCoreIRVersionMismatch, d.Code)
}

func TestIRSpan_ToSpanInvertsFromSpan(t *testing.T) {
	t.Parallel()

	s := ir.IRSpan{StartLine: 1, StartCol: 2, EndLine: 3, EndCol: 4}
	back := ir.FromSpan(s.ToSpan())
	require.Equal(t, s, back)
}
