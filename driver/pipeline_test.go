package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aster-lang/aster/diag"
)

func TestFilterByCode_EmptyCodesIsNoOp(t *testing.T) {
	t.Parallel()

	diags := []diag.Diagnostic{{Code: diag.CodeInvalidUTF8}}

	out := filterByCode(diags, nil)

	assert.Equal(t, diags, out)
}

func TestFilterByCode_KeepsOnlyMatchingCodes(t *testing.T) {
	t.Parallel()

	diags := []diag.Diagnostic{
		{Code: diag.CodeInvalidUTF8},
		{Code: diag.CodeAsyncWaitBeforeStart},
	}

	out := filterByCode(diags, []string{diag.CodeAsyncWaitBeforeStart})

	assert.Len(t, out, 1)
	assert.Equal(t, diag.CodeAsyncWaitBeforeStart, out[0].Code)
}

func TestHasErrors_TrueWhenAnErrorSeverityDiagnosticExists(t *testing.T) {
	t.Parallel()

	diags := []diag.Diagnostic{{Severity: diag.Warning}, {Severity: diag.Error}}

	assert.True(t, hasErrors(diags))
}

func TestHasErrors_FalseWhenOnlyWarningsOrInfos(t *testing.T) {
	t.Parallel()

	diags := []diag.Diagnostic{{Severity: diag.Warning}, {Severity: diag.Info}}

	assert.False(t, hasErrors(diags))
}
