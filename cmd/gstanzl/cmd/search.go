package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gstanzl/gstanzl/internal/browse"
	"github.com/gstanzl/gstanzl/internal/catalog"
	"github.com/gstanzl/gstanzl/internal/render"
	"github.com/gstanzl/gstanzl/internal/search"
)

// Output formats for the search command.
const (
	formatText = "text"
	formatJSON = "json"
	formatHTML = "html"
)

func newSearchCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "Search the catalog once and print the matches",
		Long: `Search the catalog once and print the matching songs.

Arguments are joined with spaces into a single query. With no query the
whole catalog is printed in its original order.

Unlike the interactive browser, a catalog that cannot be loaded is
reported here and the command exits non-zero.`,
		Example: `  gstanzl search Berg
  gstanzl search --format json Alm
  gstanzl search --format html heiter > songs.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, strings.Join(args, " "), format)
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, "Output format: text, json, html")

	return cmd
}

func runSearch(cmd *cobra.Command, query, format string) error {
	switch format {
	case formatText, formatJSON, formatHTML:
	default:
		return fmt.Errorf("invalid format: %s (use: text, json, html)", format)
	}

	cfg, cleanup, err := loadSettings()
	if err != nil {
		return err
	}
	defer cleanup()

	cat, err := catalog.Load(cmd.Context(), cfg.Catalog.Location)
	if err != nil {
		browse.LogLoadFailure(cfg.Catalog.Location, err)
		return err
	}

	backend := search.WithBackend(cfg.SearchBackend())
	w := cmd.OutOrStdout()

	switch format {
	case formatHTML:
		page := render.NewPage("gstanzl")
		session, err := browse.Open(cat, page.Results(), backend)
		if err != nil {
			return err
		}
		defer func() { _ = session.Close() }()

		session.Refresh(query)
		page.SetQuery(strings.TrimSpace(session.Query()))
		return page.Render(w)

	case formatJSON:
		text := render.NewTextContainer()
		session, err := browse.Open(cat, text, backend)
		if err != nil {
			return err
		}
		defer func() { _ = session.Close() }()

		session.Refresh(query)

		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(session.Displayed())

	default:
		text := render.NewTextContainer()
		session, err := browse.Open(cat, text, backend)
		if err != nil {
			return err
		}
		defer func() { _ = session.Close() }()

		session.Refresh(query)
		_, err = text.WriteTo(w)
		return err
	}
}
