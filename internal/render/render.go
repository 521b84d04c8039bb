// Package render turns catalog records into display cards and writes them
// into a container.
//
// Every render is destructive: the container is cleared and then repopulated
// card by card. Nothing is diffed or patched in place.
package render

import (
	"github.com/gstanzl/gstanzl/internal/catalog"
)

// Card is the display form of one record.
type Card struct {
	// Title is the card heading.
	Title string
	// Meta is the "region · mood" line.
	Meta string
	// Lyrics is the lyric lines joined by single spaces.
	Lyrics string
	// Tags are shown as chips in original order.
	Tags []string
}

// NewCard builds the card for r. Missing fields become empty text.
func NewCard(r catalog.Record) Card {
	return Card{
		Title:  r.Title,
		Meta:   r.Meta(),
		Lyrics: r.JoinedLyrics(),
		Tags:   append([]string(nil), r.Tags...),
	}
}

// Container is a display surface that holds a list of cards.
type Container interface {
	// Clear discards everything currently shown.
	Clear()
	// Append adds one card after those already shown.
	Append(card Card)
}

// Render replaces the contents of c with one card per record, in order.
func Render(c Container, records []catalog.Record) {
	c.Clear()
	for _, r := range records {
		c.Append(NewCard(r))
	}
}
