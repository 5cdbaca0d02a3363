package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aster-lang/aster/diag"
	"github.com/aster-lang/aster/source"
)

func pos(line, col int) source.Position { return source.Position{Line: line, Column: col} }

func TestBag_AllSortsBySpanAndDedupes(t *testing.T) {
	t.Parallel()

	bag := diag.NewBag()
	late := diag.New(diag.CodeUnexpectedToken, source.Span{Start: pos(5, 1), End: pos(5, 2)}, map[string]any{"expected": "x", "actual": "y"})
	early := diag.New(diag.CodeUnexpectedToken, source.Span{Start: pos(1, 1), End: pos(1, 2)}, map[string]any{"expected": "x", "actual": "y"})
	dup := early

	bag.Report(late)
	bag.Report(early)
	bag.Report(dup)

	all := bag.All()
	require.Len(t, all, 2)
	assert.Equal(t, early.Span, all[0].Span)
	assert.Equal(t, late.Span, all[1].Span)
}

func TestBag_HasErrors(t *testing.T) {
	t.Parallel()

	bag := diag.NewBag()
	assert.False(t, bag.HasErrors())

	bag.Report(diag.New(diag.CodeEffectOverDeclared, source.Span{}, map[string]any{"function": "f", "effect": "Io"}))
	assert.False(t, bag.HasErrors(), "EFFECT_OVER_DECLARED is a warning, not an error")

	bag.Report(diag.New(diag.CodeUnexpectedToken, source.Span{}, map[string]any{"expected": "x", "actual": "y"}))
	assert.True(t, bag.HasErrors())
}

func TestBag_Merge(t *testing.T) {
	t.Parallel()

	a := diag.NewBag()
	a.Report(diag.New(diag.CodeUnresolvedName, source.Span{}, map[string]any{"name": "foo"}))

	b := diag.NewBag()
	b.Report(diag.New(diag.CodeDuplicateDefinition, source.Span{}, map[string]any{"name": "bar"}))

	a.Merge(b)
	assert.Equal(t, 2, a.Len())
}

func TestCatalog_EveryCodeHasNumericForm(t *testing.T) {
	t.Parallel()

	for code, entry := range diag.Catalog {
		assert.NotEmpty(t, entry.Numeric, "code %s missing numeric form", code)
		assert.NotEmpty(t, entry.Template, "code %s missing message template", code)
	}
}
