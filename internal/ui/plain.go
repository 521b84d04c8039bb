package ui

import (
	"context"

	"github.com/gstanzl/gstanzl/internal/browse"
	"github.com/gstanzl/gstanzl/internal/render"
	"github.com/gstanzl/gstanzl/internal/search"
)

// PlainBrowser writes one result set as plain text (for CI/pipes).
type PlainBrowser struct {
	cfg Config
}

// NewPlainBrowser creates a plain text browser.
func NewPlainBrowser(cfg Config) *PlainBrowser {
	return &PlainBrowser{cfg: cfg}
}

// Run implements Browser. An unavailable catalog is logged and nothing is
// written; it is not returned to the caller.
func (b *PlainBrowser) Run(ctx context.Context) error {
	out := render.NewTextContainer()

	session, err := browse.Start(ctx, b.cfg.Location, out, search.WithBackend(b.cfg.Backend))
	if err != nil {
		// Logged by Start.
		return nil
	}
	defer func() { _ = session.Close() }()

	session.Refresh(b.cfg.InitialQuery)

	_, err = out.WriteTo(b.cfg.Output)
	return err
}

var _ Browser = (*PlainBrowser)(nil)
