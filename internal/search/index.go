// Package search builds the fuzzy-match index over a loaded catalog.
//
// The index is built once from the full catalog and is read-only afterwards.
// Matching is delegated to an external library: sahilm/fuzzy by default, or an
// in-memory bleve index. Both backends search the same fixed set of fields
// with the same fixed looseness threshold, rank best match first and break
// ties by catalog order.
package search

import (
	"fmt"
	"strings"

	"github.com/gstanzl/gstanzl/internal/catalog"
)

// Field names a searchable record field.
type Field string

const (
	FieldTitle   Field = "title"
	FieldLyrics  Field = "lyrics"
	FieldTags    Field = "tags"
	FieldRegion  Field = "region"
	FieldMood    Field = "mood"
	FieldDialect Field = "dialect"
)

// DefaultFields is the fixed set of fields every query is matched against.
var DefaultFields = []Field{FieldTitle, FieldLyrics, FieldTags, FieldRegion, FieldMood, FieldDialect}

// DefaultThreshold is the match looseness: 0 accepts only exact runs of the
// query, 1 accepts anything. It is not user-adjustable.
const DefaultThreshold = 0.4

// Backend selects the matching library behind an Index.
type Backend string

const (
	// BackendFuzzy matches with github.com/sahilm/fuzzy.
	BackendFuzzy Backend = "fuzzy"
	// BackendBleve matches with an in-memory bleve index.
	BackendBleve Backend = "bleve"
)

// ParseBackend converts a config value to a Backend. Empty means BackendFuzzy.
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(BackendFuzzy):
		return BackendFuzzy, nil
	case string(BackendBleve):
		return BackendBleve, nil
	default:
		return "", fmt.Errorf("unknown search backend %q (use fuzzy or bleve)", s)
	}
}

// Index answers text queries against a catalog.
type Index interface {
	// Search returns the records matching query against any configured
	// field, best match first. Scores are not exposed. A query that matches
	// nothing, or an empty query, yields an empty slice.
	Search(query string) []catalog.Record
}

type options struct {
	backend Backend
}

// Option configures New.
type Option func(*options)

// WithBackend selects the matching backend.
func WithBackend(b Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// New builds an index over the full catalog.
func New(cat catalog.Catalog, opts ...Option) (Index, error) {
	o := options{backend: BackendFuzzy}
	for _, opt := range opts {
		opt(&o)
	}

	switch o.backend {
	case BackendFuzzy, "":
		return NewFuzzyIndex(cat), nil
	case BackendBleve:
		return NewBleveIndex(cat)
	default:
		return nil, fmt.Errorf("unknown search backend %q", o.backend)
	}
}

// fieldValues returns the searchable text values of r for f. Lyrics yield
// each line plus the joined text so a query may span lines.
func fieldValues(r catalog.Record, f Field) []string {
	switch f {
	case FieldTitle:
		return []string{r.Title}
	case FieldLyrics:
		if len(r.Lyrics) > 1 {
			return append(append([]string{}, r.Lyrics...), r.JoinedLyrics())
		}
		return r.Lyrics
	case FieldTags:
		return r.Tags
	case FieldRegion:
		return []string{r.Region}
	case FieldMood:
		return []string{r.Mood}
	case FieldDialect:
		return []string{r.Dialect}
	default:
		return nil
	}
}
