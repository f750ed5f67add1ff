package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/cinemas-cli/internal/catalog"
	"github.com/glabrego/cinemas-cli/internal/rapidmock"
	"github.com/glabrego/cinemas-cli/internal/tui/actions"
	"github.com/glabrego/cinemas-cli/internal/tui/state"
	"github.com/glabrego/cinemas-cli/internal/tui/view"
)

const searchPlaceholder = "Search Movies / Shows . . ."

// homeScreen holds the catalog baseline of one mount and the view derived
// from it. Everything is reset when the tab is mounted again.
type homeScreen struct {
	mount    state.Mount
	loading  bool
	baseline []rapidmock.Movie
	view     catalog.View
	shown    []rapidmock.Movie
	cursor   int
	search   textinput.Model
}

func newSearchInput(width int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = searchPlaceholder
	ti.Prompt = "/ "
	ti.CharLimit = 120
	if width > 0 {
		ti.Width = max(20, width-4)
	}
	return ti
}

func (m *Model) mountHome() tea.Cmd {
	m.home.mount.Cancel()
	m.home = homeScreen{
		mount:  m.nextMount(),
		search: newSearchInput(m.width),
		shown:  []rapidmock.Movie{},
	}
	if m.service == nil {
		return nil
	}
	m.home.loading = true
	return tea.Batch(
		actions.LoadCatalogCmd(m.home.mount.Context(), m.service, m.home.mount.Gen, m.timeout),
		m.spinner.Tick,
	)
}

func (m Model) handleCatalogLoaded(msg actions.CatalogLoadedMsg) (tea.Model, tea.Cmd) {
	m.home.loading = false
	m.home.baseline = msg.Movies
	m.home.cursor = 0
	m.deriveHome()
	cmd := m.setStatus(fmt.Sprintf("Loaded %d titles in %dms", len(msg.Movies), msg.Duration.Milliseconds()))
	return m, cmd
}

// handleCatalogError leaves the screen empty. The service has already logged
// the failure; nothing is shown beyond "No movies available.".
func (m Model) handleCatalogError(msg actions.CatalogErrorMsg) (tea.Model, tea.Cmd) {
	m.home.loading = false
	m.home.baseline = nil
	m.home.cursor = 0
	m.deriveHome()
	m.logger.Debug().Err(msg.Err).Uint64("gen", msg.Gen).Msg("home shows empty catalog after load failure")
	return m, nil
}

// deriveHome recomputes the visible list from the full baseline.
func (m *Model) deriveHome() {
	m.home.shown = m.engine.Derive(m.home.baseline, m.home.view)
	m.home.cursor = state.ClampCursor(m.home.cursor, len(m.home.shown))
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.home.search.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.home.search, cmd = m.home.search.Update(msg)
	if query := m.home.search.Value(); query != m.home.view.Query {
		m.home.view = m.home.view.WithQuery(query)
		m.home.cursor = 0
		m.deriveHome()
	}
	return m, cmd
}

func (m Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Search):
		cmd := m.home.search.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Back):
		if m.home.view.Query != "" {
			m.home.search.SetValue("")
			m.home.view = m.home.view.WithQuery("")
			m.home.cursor = 0
			m.deriveHome()
		}
	case key.Matches(msg, m.keys.Sort):
		m.home.view = m.home.view.ToggleDirection()
		m.deriveHome()
	case key.Matches(msg, m.keys.Category):
		m.home.view = m.home.view.WithCategory(m.home.view.Category.NextIn(m.categories))
		m.home.cursor = 0
		m.deriveHome()
	case key.Matches(msg, m.keys.Refresh):
		m.clearStatus()
		cmd := m.mountHome()
		return m, cmd
	case key.Matches(msg, m.keys.Up):
		m.home.cursor = state.ClampCursor(m.home.cursor-1, len(m.home.shown))
	case key.Matches(msg, m.keys.Down):
		m.home.cursor = state.ClampCursor(m.home.cursor+1, len(m.home.shown))
	case key.Matches(msg, m.keys.PageUp):
		m.home.cursor = state.ClampCursor(m.home.cursor-m.homePageStep(), len(m.home.shown))
	case key.Matches(msg, m.keys.PageDown):
		m.home.cursor = state.ClampCursor(m.home.cursor+m.homePageStep(), len(m.home.shown))
	case key.Matches(msg, m.keys.Top):
		m.home.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.home.cursor = state.ClampCursor(len(m.home.shown)-1, len(m.home.shown))
	case key.Matches(msg, m.keys.Enter):
		if len(m.home.shown) == 0 {
			return m, nil
		}
		movie := m.home.shown[m.home.cursor]
		cmd := m.push(Route{Screen: ScreenDetail, MovieID: movie.ID, Title: movie.Title})
		return m, cmd
	}
	return m, nil
}

func (m Model) homeListHeight() int {
	return max(1, m.bodyHeight()-3)
}

func (m Model) homePageStep() int {
	return state.PageStep(m.homeListHeight()+6, false)
}

func (m Model) homeView() string {
	var b strings.Builder
	b.WriteString(m.home.search.View())
	b.WriteString("\n")
	b.WriteString(view.ControlsLine(m.home.view, len(m.home.shown), len(m.home.baseline), m.theme))
	b.WriteString("\n\n")

	if m.home.loading {
		b.WriteString(m.spinner.View() + " Loading...\n")
		return b.String()
	}
	if len(m.home.shown) == 0 {
		b.WriteString(m.theme.Muted.Render("No movies available."))
		b.WriteString("\n")
		return b.String()
	}
	start, end := state.CenteredWindow(len(m.home.shown), m.home.cursor, m.homeListHeight())
	for i := start; i < end; i++ {
		b.WriteString(view.RenderCatalogLine(view.CatalogLineParams{
			Movie:  m.home.shown[i],
			Active: i == m.home.cursor,
			Width:  m.contentWidth(),
		}, m.theme))
		b.WriteString("\n")
	}
	return b.String()
}
