package canon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalize_StripsBOM(t *testing.T) {
	t.Parallel()

	src := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Module Foo.")...)
	out, bag := Canonicalize(src)

	assert.False(t, bag.HasErrors())
	assert.Equal(t, "Module Foo.", out)
}

func TestCanonicalize_NormalizesCRLFAndBareCR(t *testing.T) {
	t.Parallel()

	out, bag := Canonicalize([]byte("a\r\nb\rc\n"))

	assert.False(t, bag.HasErrors())
	assert.Equal(t, "a\nb\nc\n", out)
}

func TestCanonicalize_ExpandsTabsToTabStopColumns(t *testing.T) {
	t.Parallel()

	out, bag := Canonicalize([]byte("a\tb"))

	assert.False(t, bag.HasErrors())
	assert.Equal(t, "a b", out)
}

func TestCanonicalize_TabAtColumnOneExpandsToFullTabStop(t *testing.T) {
	t.Parallel()

	out, bag := Canonicalize([]byte("\tx"))

	assert.False(t, bag.HasErrors())
	assert.Equal(t, "  x", out)
}

func TestCanonicalize_MalformedUTF8ReplacedAndReported(t *testing.T) {
	t.Parallel()

	out, bag := Canonicalize([]byte{'a', 0xFF, 'b'})

	require.True(t, bag.HasErrors())
	assert.Contains(t, out, "�")
	assert.Contains(t, out, "a")
	assert.Contains(t, out, "b")
}

func TestCanonicalize_IsIdempotent(t *testing.T) {
	t.Parallel()

	src := []byte("Module Foo.\r\n\tLet x be 1.\r\n")
	once, _ := Canonicalize(src)
	twice, bag := Canonicalize([]byte(once))

	assert.False(t, bag.HasErrors())
	assert.Equal(t, once, twice)
}

func TestCanonicalize_ValidInputUnchangedAsideFromLineEndings(t *testing.T) {
	t.Parallel()

	out, bag := Canonicalize([]byte("Module Foo.\n"))

	assert.False(t, bag.HasErrors())
	assert.Equal(t, "Module Foo.\n", out)
}
