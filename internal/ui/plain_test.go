package ui

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstanzl/gstanzl/internal/search"
)

func TestPlainBrowser_WritesFullCatalog(t *testing.T) {
	// Given: a plain browser over the folk catalog
	buf := &bytes.Buffer{}
	b := NewPlainBrowser(NewConfig(buf, WithLocation(writeCatalog(t))))

	// When: running it without a query
	err := b.Run(context.Background())

	// Then: both cards are written in catalog order
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Alpenlied\nTirol · heiter\nOho Trallala\n[trad]\n")
	assert.Contains(t, out, "Bergruf\nKärnten · ernst\nRuf vom Berg\n[alt] [bergisch]\n")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Alpenlied")), bytes.Index(buf.Bytes(), []byte("Bergruf")))
}

func TestPlainBrowser_AppliesInitialQuery(t *testing.T) {
	for _, backend := range []search.Backend{search.BackendFuzzy, search.BackendBleve} {
		t.Run(string(backend), func(t *testing.T) {
			buf := &bytes.Buffer{}
			b := NewPlainBrowser(NewConfig(buf,
				WithLocation(writeCatalog(t)),
				WithBackend(backend),
				WithInitialQuery("Berg")))

			require.NoError(t, b.Run(context.Background()))

			assert.Contains(t, buf.String(), "Bergruf")
			assert.NotContains(t, buf.String(), "Alpenlied")
		})
	}
}

func TestPlainBrowser_UnavailableCatalog_WritesNothing(t *testing.T) {
	// Given: a missing catalog and a captured diagnostic channel
	logs := captureLogs(t)
	buf := &bytes.Buffer{}
	b := NewPlainBrowser(NewConfig(buf, WithLocation(filepath.Join(t.TempDir(), "songs.json"))))

	// When: running
	err := b.Run(context.Background())

	// Then: the failure is swallowed, logged, and nothing is written
	require.NoError(t, err)
	assert.Empty(t, buf.String())
	assert.Contains(t, logs.String(), "catalog_unavailable")
}
