package search

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"

	fuzzysearch "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sahilm/fuzzy"

	"github.com/gstanzl/gstanzl/internal/catalog"
)

// entry is one searchable value of one record.
type entry struct {
	record int
	field  Field
	text   string
}

// entries adapts the index values to fuzzy.Source.
type entries []entry

func (e entries) String(i int) string { return e[i].text }
func (e entries) Len() int            { return len(e) }

// FuzzyIndex matches queries as case-insensitive subsequences of field
// values, and falls back to edit distance so misspelled queries still match.
type FuzzyIndex struct {
	cat       catalog.Catalog
	entries   entries
	threshold float64
}

// Ensure FuzzyIndex implements Index.
var _ Index = (*FuzzyIndex)(nil)

// NewFuzzyIndex flattens every non-empty field value of the catalog into the index.
func NewFuzzyIndex(cat catalog.Catalog) *FuzzyIndex {
	ix := &FuzzyIndex{cat: cat, threshold: DefaultThreshold}
	for i := 0; i < cat.Len(); i++ {
		r := cat.At(i)
		for _, f := range DefaultFields {
			for _, v := range fieldValues(r, f) {
				if v == "" {
					continue
				}
				ix.entries = append(ix.entries, entry{record: i, field: f, text: v})
			}
		}
	}
	return ix
}

// Search implements Index.
func (ix *FuzzyIndex) Search(query string) []catalog.Record {
	query = strings.TrimSpace(query)
	if query == "" || len(ix.entries) == 0 {
		return []catalog.Record{}
	}

	best := make(map[int]rank)
	keep := func(rec int, r rank) {
		if b, ok := best[rec]; !ok || r.better(b) {
			best[rec] = r
		}
	}

	for _, m := range fuzzy.FindFrom(query, ix.entries) {
		if looseness(query, m) > ix.threshold {
			continue
		}
		keep(ix.entries[m.Index].record, rank{score: m.Score})
	}

	q := []rune(strings.ToLower(query))
	if limit := int(float64(len(q)) * ix.threshold); limit > 0 {
		for _, e := range ix.entries {
			if b, ok := best[e.record]; ok && b.edits == 0 {
				continue
			}
			if d := typos(q, e.text, limit); d >= 0 {
				keep(e.record, rank{edits: d})
			}
		}
	}

	ranked := make([]int, 0, len(best))
	for rec := range best {
		ranked = append(ranked, rec)
	}
	slices.SortFunc(ranked, func(a, b int) int {
		if best[a].better(best[b]) {
			return -1
		}
		if best[b].better(best[a]) {
			return 1
		}
		return cmp.Compare(a, b)
	})

	out := make([]catalog.Record, len(ranked))
	for i, rec := range ranked {
		out[i] = ix.cat.At(rec)
	}
	return out
}

// looseness is the share of unmatched runes inside the matched span of m.
// A value that contains the query as a substring has looseness 0.
func looseness(query string, m fuzzy.Match) float64 {
	if strings.Contains(strings.ToLower(m.Str), strings.ToLower(query)) {
		return 0
	}
	if len(m.MatchedIndexes) == 0 {
		return 1
	}

	first := m.MatchedIndexes[0]
	last := m.MatchedIndexes[len(m.MatchedIndexes)-1]
	_, size := utf8.DecodeRuneInString(m.Str[last:])
	span := utf8.RuneCountInString(m.Str[first : last+size])
	if span <= 0 {
		return 1
	}

	gaps := span - len(m.MatchedIndexes)
	return float64(gaps) / float64(span)
}

// rank orders the matches of one record. Fewer edits win, then the higher
// subsequence score.
type rank struct {
	edits int
	score int
}

func (r rank) better(o rank) bool {
	if r.edits != o.edits {
		return r.edits < o.edits
	}
	return r.score > o.score
}

// typos returns the fewest edits that turn query into some run of value,
// or -1 when that takes more than limit edits. query must be lower case.
func typos(query []rune, value string, limit int) int {
	v := []rune(strings.ToLower(value))
	n := len(query)
	if len(v) < n-limit {
		return -1
	}

	best := -1
	for w := max(1, n-limit); w <= min(len(v), n+limit); w++ {
		for i := 0; i+w <= len(v); i++ {
			d := fuzzysearch.LevenshteinDistance(string(query), string(v[i:i+w]))
			if d <= limit && (best < 0 || d < best) {
				best = d
				if best == 0 {
					return 0
				}
			}
		}
	}
	return best
}
