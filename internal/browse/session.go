// Package browse runs the search-and-render refresh cycle.
//
// A Session owns the loaded catalog, its search index and the container the
// results are drawn into. Each call to Refresh is synchronous and runs its
// render to completion, so there is no overlap between refreshes and nothing
// to cancel.
package browse

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/gstanzl/gstanzl/internal/catalog"
	gerrors "github.com/gstanzl/gstanzl/internal/errors"
	"github.com/gstanzl/gstanzl/internal/render"
	"github.com/gstanzl/gstanzl/internal/search"
)

// State is the refresh-cycle state derived from the current query.
type State int

const (
	// StateUnfiltered shows the full catalog in catalog order.
	StateUnfiltered State = iota
	// StateFiltered shows exactly what the index returned for the query.
	StateFiltered
)

// String returns the human-readable state name.
func (s State) String() string {
	switch s {
	case StateUnfiltered:
		return "unfiltered"
	case StateFiltered:
		return "filtered"
	default:
		return "unknown"
	}
}

// Session holds the catalog, index and display container for one browse.
type Session struct {
	cat       catalog.Catalog
	index     search.Index
	out       render.Container
	query     string
	state     State
	displayed []catalog.Record
}

// New creates a session and performs the initial render with an empty query.
func New(cat catalog.Catalog, index search.Index, out render.Container) *Session {
	s := &Session{cat: cat, index: index, out: out}
	s.Refresh("")
	return s
}

// Start loads the catalog from location, builds the index and renders the
// full catalog into out. A load failure is logged to the diagnostic channel
// and returned; out is left untouched.
func Start(ctx context.Context, location string, out render.Container, opts ...search.Option) (*Session, error) {
	cat, err := catalog.Load(ctx, location)
	if err != nil {
		LogLoadFailure(location, err)
		return nil, err
	}

	return Open(cat, out, opts...)
}

// Open builds the index over an already loaded catalog and performs the
// initial render.
func Open(cat catalog.Catalog, out render.Container, opts ...search.Option) (*Session, error) {
	index, err := search.New(cat, opts...)
	if err != nil {
		return nil, gerrors.New(gerrors.ErrCodeIndexBuild, "failed to build search index", err)
	}

	slog.Info("catalog_loaded",
		slog.String("location", cat.Location()),
		slog.Int("records", cat.Len()))

	return New(cat, index, out), nil
}

// LogLoadFailure records a catalog-unavailable error on the diagnostic channel.
func LogLoadFailure(location string, err error) {
	args := append([]any{slog.String("location", location)}, gerrors.LogAttrs(err)...)
	slog.Error("catalog_unavailable", args...)
}

// Refresh re-evaluates query and redraws the container. Surrounding
// whitespace is ignored: a blank query shows the full catalog.
func (s *Session) Refresh(query string) {
	s.query = query
	trimmed := strings.TrimSpace(query)

	if trimmed == "" {
		s.state = StateUnfiltered
		s.displayed = s.cat.Records()
	} else {
		s.state = StateFiltered
		s.displayed = s.index.Search(trimmed)
	}

	render.Render(s.out, s.displayed)

	slog.Debug("refresh",
		slog.String("state", s.state.String()),
		slog.String("query", trimmed),
		slog.Int("results", len(s.displayed)))
}

// Query returns the last query passed to Refresh, untrimmed.
func (s *Session) Query() string {
	return s.query
}

// State returns the state of the last refresh.
func (s *Session) State() State {
	return s.state
}

// Displayed returns the records currently rendered, in display order.
func (s *Session) Displayed() []catalog.Record {
	out := make([]catalog.Record, len(s.displayed))
	copy(out, s.displayed)
	return out
}

// Catalog returns the session's catalog.
func (s *Session) Catalog() catalog.Catalog {
	return s.cat
}

// Close releases the search index if it holds resources.
func (s *Session) Close() error {
	if c, ok := s.index.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
