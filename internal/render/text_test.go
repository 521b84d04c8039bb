package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatText(t *testing.T) {
	got := FormatText(NewCard(songs()[1]))

	assert.Equal(t, "Bergruf\nKärnten · ernst\nRuf vom Berg\n[alt] [bergisch]\n", got)
}

func TestTextContainer_RenderReplacesContent(t *testing.T) {
	// Given: a text container with both songs
	c := NewTextContainer()
	Render(c, songs())
	require.Equal(t, 2, c.Len())

	// When: rendering an empty result set
	Render(c, nil)

	// Then: nothing remains
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, "", c.String())
}

func TestTextContainer_WriteTo(t *testing.T) {
	c := NewTextContainer()
	Render(c, songs())

	var buf bytes.Buffer
	n, err := c.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Contains(t, buf.String(), "Alpenlied\nTirol · heiter\nOho Trallala\n[trad]\n\nBergruf")
}
