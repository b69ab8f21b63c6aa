package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nwsw/internal/engine"
)

func TestRenderPlainTableContainsSequenceCharacters(t *testing.T) {
	summary, err := engine.Run([]byte("AC"), []byte("AG"), engine.Params{
		Match: 1, Mismatch: 1, Indel: 1, Workers: 1, Algorithm: engine.Global, RenderTable: true,
	}, nil)
	require.NoError(t, err)

	var buf strings.Builder
	r := New(NewPlainColorizer(), false)
	r.Render(&buf, summary.Table)

	out := buf.String()
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "C")
	assert.Contains(t, out, "\\")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 1+2*3) // top string + (directional,score) per row
}

func TestRenderUnicodeUsesUnicodeArrows(t *testing.T) {
	summary, err := engine.Run([]byte("A"), []byte("A"), engine.Params{
		Match: 1, Mismatch: 1, Indel: 1, Workers: 1, Algorithm: engine.Global, RenderTable: true,
	}, nil)
	require.NoError(t, err)

	var buf strings.Builder
	r := New(NewPlainColorizer(), true)
	r.Render(&buf, summary.Table)

	assert.Contains(t, buf.String(), "↖")
}

func TestANSIColorizerWrapsOptimalPathCells(t *testing.T) {
	c := NewANSIColorizer()
	painted := c.Paint(TagOptPath, "+3")
	assert.NotEqual(t, "+3", painted)
	assert.Contains(t, painted, "+3")
}

func TestPlainColorizerIsIdentity(t *testing.T) {
	c := NewPlainColorizer()
	assert.Equal(t, "+3", c.Paint(TagMatchArrow, "+3"))
}

func TestWidthNeededToPrintInteger(t *testing.T) {
	assert.Equal(t, 2, widthNeededToPrintInteger(0))
	assert.Equal(t, 2, widthNeededToPrintInteger(9))
	assert.Equal(t, 3, widthNeededToPrintInteger(10))
	assert.Equal(t, 3, widthNeededToPrintInteger(99))
}
