package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aster-lang/aster/diag"
	"github.com/aster-lang/aster/source"
)

func TestSummarize_CountsEachSeverityBucket(t *testing.T) {
	t.Parallel()

	diags := []diag.Diagnostic{
		{Severity: diag.Error},
		{Severity: diag.Error},
		{Severity: diag.Warning},
		{Severity: diag.Info},
	}

	s := summarize(diags)

	assert.Equal(t, 2, s.Errors)
	assert.Equal(t, 1, s.Warnings)
	assert.Equal(t, 1, s.Infos)
}

func TestSummarize_EmptyInputYieldsZeroedSummary(t *testing.T) {
	t.Parallel()

	s := summarize(nil)

	assert.Equal(t, summary{}, s)
}

func TestToJSONDiagnostics_CarriesSpanAndNumericCode(t *testing.T) {
	t.Parallel()

	d := diag.New(diag.CodeInvalidUTF8, source.Span{
		Start: source.Position{Line: 3, Column: 7},
	}, map[string]any{"pos": "3:7"})

	out := toJSONDiagnostics([]diag.Diagnostic{d})

	assert.Len(t, out, 1)
	assert.Equal(t, diag.CodeInvalidUTF8, out[0].Code)
	assert.Equal(t, 3, out[0].Line)
	assert.Equal(t, 7, out[0].Column)
	assert.NotEmpty(t, out[0].Numeric)
}

func TestMarshalIndent_ProducesIndentedJSON(t *testing.T) {
	t.Parallel()

	b, err := marshalIndent(summary{Errors: 1})

	assert.NoError(t, err)
	assert.Contains(t, string(b), "\n  ")
}
