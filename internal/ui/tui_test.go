package ui

import (
	"context"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/gstanzl/gstanzl/internal/errors"
)

func newTestModel(opts ...ConfigOption) *browserModel {
	opts = append([]ConfigOption{WithNoColor(true)}, opts...)
	return newBrowserModel(context.Background(), NewConfig(nil, opts...))
}

func typeText(m *browserModel, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func backspace(m *browserModel, n int) {
	for i := 0; i < n; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	}
}

func TestBrowserModel_InitLoadsCatalog(t *testing.T) {
	// Given: a model pointing at a catalog file
	m := newTestModel(WithLocation(writeCatalog(t)))

	// When: running the load command
	msg := m.loadCmd()()

	// Then: the catalog arrives as a message
	loaded, ok := msg.(catalogLoadedMsg)
	require.True(t, ok, "expected catalogLoadedMsg, got %T", msg)
	assert.Equal(t, 2, loaded.cat.Len())
	assert.NotNil(t, m.Init())
}

func TestBrowserModel_LoadFailureMessage(t *testing.T) {
	m := newTestModel(WithLocation(filepath.Join(t.TempDir(), "songs.json")))

	msg := m.loadCmd()()

	failed, ok := msg.(catalogFailedMsg)
	require.True(t, ok, "expected catalogFailedMsg, got %T", msg)
	assert.True(t, gerrors.IsCatalogUnavailable(failed.err))
}

func TestBrowserModel_ConcreteScenario(t *testing.T) {
	// Given: a model that received the catalog
	m := newTestModel()
	m.Update(catalogLoadedMsg{cat: folkCatalog()})

	// Then: startup shows both cards, Alpenlied first
	assert.Equal(t, []string{"Alpenlied", "Bergruf"}, m.cards.Titles())
	assert.Contains(t, m.View(), "Alpenlied")

	// When: typing "Berg"
	typeText(m, "Berg")

	// Then: only Bergruf remains
	assert.Equal(t, "Berg", m.input.Value())
	assert.Equal(t, []string{"Bergruf"}, m.cards.Titles())
	assert.NotContains(t, m.View(), "Alpenlied")

	// When: clearing the query
	backspace(m, 4)

	// Then: the full catalog is back
	assert.Equal(t, []string{"Alpenlied", "Bergruf"}, m.cards.Titles())

	// When: typing a query that matches nothing
	typeText(m, "xyzxyz")

	// Then: the results container is empty
	assert.Empty(t, m.cards.Titles())
}

func TestBrowserModel_WhitespaceQueryShowsFullCatalog(t *testing.T) {
	m := newTestModel()
	m.Update(catalogLoadedMsg{cat: folkCatalog()})

	typeText(m, "   ")

	assert.Equal(t, []string{"Alpenlied", "Bergruf"}, m.cards.Titles())
}

func TestBrowserModel_KeysBeforeLoadApplyAfterLoad(t *testing.T) {
	// Given: a query typed while the catalog is still loading
	m := newTestModel()
	typeText(m, "Berg")
	assert.Equal(t, 0, m.cards.Len())

	// When: the catalog arrives
	m.Update(catalogLoadedMsg{cat: folkCatalog()})

	// Then: the pending query is applied
	assert.Equal(t, []string{"Bergruf"}, m.cards.Titles())
}

func TestBrowserModel_InitialQuery(t *testing.T) {
	m := newTestModel(WithInitialQuery("Berg"))

	m.Update(catalogLoadedMsg{cat: folkCatalog()})

	assert.Equal(t, []string{"Bergruf"}, m.cards.Titles())
}

func TestBrowserModel_LoadFailure_RendersNothing(t *testing.T) {
	// Given: a captured diagnostic channel
	logs := captureLogs(t)
	m := newTestModel()

	// When: the load fails
	err := gerrors.CatalogError(gerrors.ErrCodeCatalogNotFound, "songs.json", "catalog not found", nil)
	m.Update(catalogFailedMsg{err: err})
	typeText(m, "Berg")

	// Then: nothing is rendered, no error is shown, and the failure is logged
	assert.Equal(t, 0, m.cards.Len())
	assert.False(t, m.loading)
	assert.NotContains(t, m.View(), "ERR_")
	assert.Contains(t, logs.String(), "catalog_unavailable")
	assert.Contains(t, logs.String(), gerrors.ErrCodeCatalogNotFound)
}

func TestBrowserModel_EscQuits(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := newTestModel()

		_, cmd := m.Update(tea.KeyMsg{Type: key})

		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
		assert.True(t, m.quitting)
		assert.Empty(t, m.View())
	}
}

func TestBrowserModel_QIsTyped(t *testing.T) {
	m := newTestModel()

	typeText(m, "q")

	assert.False(t, m.quitting)
	assert.Equal(t, "q", m.input.Value())
}

func TestBrowserModel_WindowResize(t *testing.T) {
	m := newTestModel()

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, 100, m.results.Width)
	assert.Equal(t, 40-chromeHeight, m.results.Height)
	assert.Equal(t, 100, m.cards.width)
}

func TestBrowserModel_StatusBar(t *testing.T) {
	m := newTestModel()
	assert.Contains(t, m.View(), "loading catalog")

	m.Update(catalogLoadedMsg{cat: folkCatalog()})
	assert.Contains(t, m.View(), "2 of 2")
	assert.NotContains(t, m.View(), "loading catalog")
}
