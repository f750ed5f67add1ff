package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glabrego/cinemas-cli/internal/rapidmock"
	"github.com/glabrego/cinemas-cli/internal/render/text"
	"github.com/glabrego/cinemas-cli/internal/tui/actions"
	"github.com/glabrego/cinemas-cli/internal/tui/platform"
	"github.com/glabrego/cinemas-cli/internal/tui/state"
	"github.com/glabrego/cinemas-cli/internal/tui/view"
)

const detailMargin = 2

type detailModal struct {
	title   string
	body    string
	isError bool
}

// detailScreen shows one movie. The record is never modified after it loads;
// add-to-list results only open a modal.
type detailScreen struct {
	mount    state.Mount
	route    Route
	loading  bool
	movie    *rapidmock.MovieDetails
	notFound bool
	err      error
	top      int
	pending  bool
	modal    *detailModal
}

func (m *Model) mountDetail(route Route) tea.Cmd {
	m.detail.mount.Cancel()
	m.detail = detailScreen{
		mount: m.nextMount(),
		route: route,
	}
	if m.service == nil {
		m.detail.notFound = true
		return nil
	}
	m.detail.loading = true
	return tea.Batch(
		actions.LoadMovieCmd(m.detail.mount.Context(), m.service, m.detail.mount.Gen, route.MovieID, m.timeout),
		m.spinner.Tick,
	)
}

func (m Model) handleMovieLoaded(msg actions.MovieLoadedMsg) (tea.Model, tea.Cmd) {
	movie := msg.Movie
	m.detail.loading = false
	m.detail.movie = &movie
	m.detail.top = 0
	return m, nil
}

func (m Model) handleMovieNotFound(msg actions.MovieNotFoundMsg) (tea.Model, tea.Cmd) {
	m.detail.loading = false
	m.detail.notFound = true
	m.logger.Debug().Int64("id", msg.ID).Msg("detail screen shows not found")
	return m, nil
}

func (m Model) handleMovieError(msg actions.MovieErrorMsg) (tea.Model, tea.Cmd) {
	m.detail.loading = false
	m.detail.err = msg.Err
	return m, nil
}

func (m Model) handleAddToListSuccess(msg actions.AddToListSuccessMsg) (tea.Model, tea.Cmd) {
	m.detail.pending = false
	m.clearStatus()
	m.detail.modal = &detailModal{
		title: "Success",
		body:  "Movie marked as " + string(msg.Status),
	}
	return m, nil
}

func (m Model) handleAddToListError(msg actions.AddToListErrorMsg) (tea.Model, tea.Cmd) {
	m.detail.pending = false
	m.clearStatus()
	m.detail.modal = &detailModal{
		title:   "Error",
		body:    msg.Err.Error(),
		isError: true,
	}
	return m, nil
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Refresh):
		m.clearStatus()
		cmd := m.mountDetail(m.detail.route)
		return m, cmd
	case key.Matches(msg, m.keys.Up):
		if m.detail.top > 0 {
			m.detail.top--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.detail.top < view.DetailMaxTop(len(m.detailLines()), m.bodyHeight()) {
			m.detail.top++
		}
		return m, nil
	}

	if m.detail.movie == nil {
		return m, nil
	}
	movie := *m.detail.movie
	switch {
	case key.Matches(msg, m.keys.MarkWatched):
		return m.addToList(movie.ID, rapidmock.StatusWatched)
	case key.Matches(msg, m.keys.MarkToWatch):
		return m.addToList(movie.ID, rapidmock.StatusToWatch)
	case key.Matches(msg, m.keys.OpenPoster):
		url, err := platform.ValidatePosterURL(movie.PosterURL)
		if err != nil {
			cmd := m.setWarning(err)
			return m, cmd
		}
		return m, actions.OpenURLCmd(m.detail.mount.Gen, url, m.openURLFn, m.copyURLFn)
	case key.Matches(msg, m.keys.CopyPoster):
		url, err := platform.ValidatePosterURL(movie.PosterURL)
		if err != nil {
			cmd := m.setWarning(err)
			return m, cmd
		}
		return m, actions.CopyURLCmd(m.detail.mount.Gen, url, m.copyURLFn)
	}
	return m, nil
}

// addToList submits one mutation; further keys are ignored until it settles.
func (m Model) addToList(id int64, status rapidmock.Status) (tea.Model, tea.Cmd) {
	m.detail.pending = true
	m.clearStatus()
	m.status = "Saving..."
	return m, tea.Batch(
		actions.AddToListCmd(m.detail.mount.Context(), m.service, m.detail.mount.Gen, id, status, m.timeout),
		m.spinner.Tick,
	)
}

func (m Model) detailLines() []string {
	if m.detail.movie == nil {
		return nil
	}
	return view.DetailLines(*m.detail.movie, max(20, m.contentWidth()-2*detailMargin), detailMargin, text.Wrap)
}

func (m Model) detailView() string {
	switch {
	case m.detail.loading:
		return m.spinner.View() + " Loading movie details...\n"
	case m.detail.err != nil:
		return m.theme.StateWarn.Render("Error: "+m.detail.err.Error()) + "\n"
	case m.detail.notFound || m.detail.movie == nil:
		return m.theme.Muted.Render("No movie details found.") + "\n"
	}
	if modal := m.detail.modal; modal != nil {
		box := view.RenderModal(modal.title, modal.body, modal.isError, m.width, m.theme)
		return lipgloss.PlaceHorizontal(m.contentWidth(), lipgloss.Center, box) + "\n"
	}
	return view.RenderDetailLines(m.detailLines(), m.detail.top, m.bodyHeight())
}
