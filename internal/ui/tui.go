package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gstanzl/gstanzl/internal/browse"
	"github.com/gstanzl/gstanzl/internal/catalog"
	gerrors "github.com/gstanzl/gstanzl/internal/errors"
	"github.com/gstanzl/gstanzl/internal/search"
)

// Rows taken by the header, the query line and the hint line.
const chromeHeight = 3

// TUIBrowser is the interactive catalog browser.
type TUIBrowser struct {
	cfg Config
}

// NewTUIBrowser creates an interactive browser.
func NewTUIBrowser(cfg Config) *TUIBrowser {
	return &TUIBrowser{cfg: cfg}
}

// Run implements Browser. It blocks until the user quits or ctx is done.
func (b *TUIBrowser) Run(ctx context.Context) error {
	model := newBrowserModel(ctx, b.cfg)

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if b.cfg.Output != nil {
		opts = append(opts, tea.WithOutput(b.cfg.Output))
	}
	if b.cfg.Input != nil {
		opts = append(opts, tea.WithInput(b.cfg.Input))
	}

	_, err := tea.NewProgram(model, opts...).Run()
	if model.session != nil {
		_ = model.session.Close()
	}
	if err != nil && ctx.Err() == nil {
		return gerrors.InternalError("terminal UI failed", err)
	}
	return nil
}

// Message types for bubbletea
type catalogLoadedMsg struct{ cat catalog.Catalog }
type catalogFailedMsg struct{ err error }

// browserModel is the bubbletea model for the browser. The query control is
// a text input and the results container is a viewport over a CardList.
type browserModel struct {
	ctx      context.Context
	cfg      Config
	input    textinput.Model
	results  viewport.Model
	cards    *CardList
	session  *browse.Session
	styles   Styles
	loading  bool
	quitting bool
	width    int
	height   int
}

func newBrowserModel(ctx context.Context, cfg Config) *browserModel {
	styles := GetStyles(cfg.NoColor || DetectNoColor())

	ti := textinput.New()
	ti.Placeholder = "Search title, lyrics, tags, region, mood, dialect"
	ti.Prompt = "/ "
	ti.PromptStyle = styles.Prompt
	ti.SetValue(cfg.InitialQuery)
	ti.Focus()

	m := &browserModel{
		ctx:     ctx,
		cfg:     cfg,
		input:   ti,
		results: viewport.New(80, 24-chromeHeight),
		cards:   NewCardList(styles),
		styles:  styles,
		loading: true,
		width:   80,
		height:  24,
	}
	m.cards.SetWidth(m.width)
	return m
}

// Init implements tea.Model. The catalog load is the only command that
// runs off the update loop.
func (m *browserModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadCmd())
}

func (m *browserModel) loadCmd() tea.Cmd {
	ctx, location := m.ctx, m.cfg.Location
	return func() tea.Msg {
		cat, err := catalog.Load(ctx, location)
		if err != nil {
			return catalogFailedMsg{err: err}
		}
		return catalogLoadedMsg{cat: cat}
	}
}

// Update implements tea.Model.
func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.results, cmd = m.results.Update(msg)
			return m, cmd
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			m.refresh()
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 10)
		m.results.Width = msg.Width
		m.results.Height = max(msg.Height-chromeHeight, 1)
		m.cards.SetWidth(msg.Width)
		m.syncResults()
		return m, nil

	case catalogLoadedMsg:
		m.loading = false
		session, err := browse.Open(msg.cat, m.cards, search.WithBackend(m.cfg.Backend))
		if err != nil {
			slog.Error("index_build_failed", gerrors.LogAttrs(err)...)
			return m, nil
		}
		m.session = session
		if strings.TrimSpace(m.input.Value()) != "" {
			m.session.Refresh(m.input.Value())
		}
		m.syncResults()
		return m, nil

	case catalogFailedMsg:
		m.loading = false
		browse.LogLoadFailure(m.cfg.Location, msg.err)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// refresh runs the refresh cycle for the current input value. Keys typed
// before the catalog arrives are applied once it loads.
func (m *browserModel) refresh() {
	if m.session == nil {
		return
	}
	m.session.Refresh(m.input.Value())
	m.syncResults()
}

func (m *browserModel) syncResults() {
	m.results.SetContent(m.cards.View())
	m.results.GotoTop()
}

// View implements tea.Model.
func (m *browserModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render("gstanzl"))
	if m.session != nil {
		b.WriteString(m.styles.Dim.Render(fmt.Sprintf("  %d of %d", m.cards.Len(), m.session.Catalog().Len())))
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.results.View())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	return b.String()
}

func (m *browserModel) renderStatusBar() string {
	if m.loading {
		return m.styles.Dim.Render("loading catalog…  │  esc to quit")
	}
	return m.styles.Dim.Render("↑/↓ scroll  │  esc to quit")
}

var _ Browser = (*TUIBrowser)(nil)
