package ui

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gstanzl/gstanzl/internal/catalog"
)

const folkJSON = `[
  {"title":"Alpenlied","region":"Tirol","mood":"heiter","tags":["trad"],"lyrics":["Oho","Trallala"]},
  {"title":"Bergruf","region":"Kärnten","mood":"ernst","tags":["alt","bergisch"],"lyrics":["Ruf","vom","Berg"]}
]`

func writeCatalog(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "songs.json")
	require.NoError(t, os.WriteFile(path, []byte(folkJSON), 0o644))
	return path
}

func folkCatalog() catalog.Catalog {
	return catalog.New("songs.json", []catalog.Record{
		{Title: "Alpenlied", Region: "Tirol", Mood: "heiter", Tags: []string{"trad"}, Lyrics: []string{"Oho", "Trallala"}},
		{Title: "Bergruf", Region: "Kärnten", Mood: "ernst", Tags: []string{"alt", "bergisch"}, Lyrics: []string{"Ruf", "vom", "Berg"}},
	})
}

// captureLogs routes the default slog logger into a buffer for the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}
