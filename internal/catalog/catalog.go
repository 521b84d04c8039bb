// Package catalog loads the song catalog that the browser searches and renders.
//
// A catalog is a JSON array of records read once at startup, either from a
// file path (the default is songs.json relative to the working directory) or
// from an http(s) URL. Decoding is permissive: absent fields decode to zero
// values and are rendered as empty text rather than rejected.
package catalog

import (
	"strings"
)

// DefaultLocation is the catalog resource read when nothing else is configured.
const DefaultLocation = "songs.json"

// MetaSeparator joins region and mood on a card's meta line.
const MetaSeparator = " · "

// Record is one song entry in the catalog.
type Record struct {
	Title   string   `json:"title"`
	Lyrics  []string `json:"lyrics"`
	Tags    []string `json:"tags"`
	Region  string   `json:"region"`
	Mood    string   `json:"mood"`
	Dialect string   `json:"dialect"`
}

// JoinedLyrics returns the lyric lines joined by single spaces.
func (r Record) JoinedLyrics() string {
	return strings.Join(r.Lyrics, " ")
}

// Meta returns the "region · mood" line shown under a card's title.
func (r Record) Meta() string {
	return r.Region + MetaSeparator + r.Mood
}

// Catalog is the ordered, immutable collection of records for a session.
type Catalog struct {
	location string
	records  []Record
}

// New creates a catalog from records. The slice is copied so later changes by
// the caller do not leak into the session.
func New(location string, records []Record) Catalog {
	cp := make([]Record, len(records))
	copy(cp, records)
	return Catalog{location: location, records: cp}
}

// Location returns where the catalog was loaded from.
func (c Catalog) Location() string {
	return c.location
}

// Len returns the number of records.
func (c Catalog) Len() int {
	return len(c.records)
}

// At returns the record at position i in catalog order.
func (c Catalog) At(i int) Record {
	return c.records[i]
}

// Records returns a copy of all records in catalog order.
func (c Catalog) Records() []Record {
	cp := make([]Record, len(c.records))
	copy(cp, c.records)
	return cp
}
