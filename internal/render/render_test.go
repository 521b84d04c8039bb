package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstanzl/gstanzl/internal/catalog"
)

// recordingContainer captures the calls Render makes.
type recordingContainer struct {
	calls []string
	cards []Card
}

func (r *recordingContainer) Clear() {
	r.calls = append(r.calls, "clear")
	r.cards = nil
}

func (r *recordingContainer) Append(card Card) {
	r.calls = append(r.calls, "append:"+card.Title)
	r.cards = append(r.cards, card)
}

func songs() []catalog.Record {
	return []catalog.Record{
		{Title: "Alpenlied", Region: "Tirol", Mood: "heiter", Tags: []string{"trad"}, Lyrics: []string{"Oho", "Trallala"}},
		{Title: "Bergruf", Region: "Kärnten", Mood: "ernst", Tags: []string{"alt", "bergisch"}, Lyrics: []string{"Ruf", "vom", "Berg"}},
	}
}

func TestNewCard(t *testing.T) {
	card := NewCard(songs()[1])

	assert.Equal(t, "Bergruf", card.Title)
	assert.Equal(t, "Kärnten · ernst", card.Meta)
	assert.Equal(t, "Ruf vom Berg", card.Lyrics)
	assert.Equal(t, []string{"alt", "bergisch"}, card.Tags)
}

func TestNewCard_DoesNotAliasTags(t *testing.T) {
	r := songs()[1]
	card := NewCard(r)
	card.Tags[0] = "changed"

	assert.Equal(t, "alt", r.Tags[0])
}

func TestRender_ClearsThenAppendsInOrder(t *testing.T) {
	// Given: a container that already shows something
	c := &recordingContainer{}
	Render(c, songs()[:1])

	// When: rendering a new result set
	Render(c, songs())

	// Then: each render starts with a clear and appends in order
	assert.Equal(t, []string{
		"clear", "append:Alpenlied",
		"clear", "append:Alpenlied", "append:Bergruf",
	}, c.calls)
	require.Len(t, c.cards, 2)
}

func TestRender_EmptyResultSetLeavesContainerEmpty(t *testing.T) {
	c := &recordingContainer{}
	Render(c, songs())
	Render(c, nil)

	assert.Empty(t, c.cards)
	assert.Equal(t, "clear", c.calls[len(c.calls)-1])
}
