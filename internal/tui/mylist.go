package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/cinemas-cli/internal/rapidmock"
	"github.com/glabrego/cinemas-cli/internal/tui/actions"
	"github.com/glabrego/cinemas-cli/internal/tui/state"
	tuitree "github.com/glabrego/cinemas-cli/internal/tui/tree"
	"github.com/glabrego/cinemas-cli/internal/tui/view"
)

type myListScreen struct {
	mount     state.Mount
	loading   bool
	list      rapidmock.MyList
	err       error
	rows      []tuitree.Row
	cursor    int
	collapsed map[rapidmock.Status]bool
}

func (m *Model) mountMyList() tea.Cmd {
	m.myList.mount.Cancel()
	m.myList = myListScreen{
		mount:     m.nextMount(),
		collapsed: make(map[rapidmock.Status]bool),
	}
	if m.service == nil {
		m.rebuildMyListRows()
		return nil
	}
	m.myList.loading = true
	return tea.Batch(
		actions.LoadMyListCmd(m.myList.mount.Context(), m.service, m.myList.mount.Gen, m.timeout),
		m.spinner.Tick,
	)
}

func (m Model) handleMyListLoaded(msg actions.MyListLoadedMsg) (tea.Model, tea.Cmd) {
	m.myList.loading = false
	m.myList.err = nil
	m.myList.list = msg.List
	m.rebuildMyListRows()
	m.myList.cursor = tuitree.FirstEntryRow(m.myList.rows)
	return m, nil
}

func (m Model) handleMyListError(msg actions.MyListErrorMsg) (tea.Model, tea.Cmd) {
	m.myList.loading = false
	m.myList.err = msg.Err
	m.myList.rows = nil
	m.myList.cursor = 0
	return m, nil
}

func (m *Model) rebuildMyListRows() {
	m.myList.rows = tuitree.BuildRows(m.myList.list, tuitree.BuildOptions{CollapsedSections: m.myList.collapsed})
	m.myList.cursor = state.ClampCursor(m.myList.cursor, len(m.myList.rows))
}

func (m Model) updateMyList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.myList.rows
	switch {
	case key.Matches(msg, m.keys.Refresh):
		m.clearStatus()
		cmd := m.mountMyList()
		return m, cmd
	case key.Matches(msg, m.keys.Up):
		m.myList.cursor = tuitree.Move(rows, m.myList.cursor, -1)
	case key.Matches(msg, m.keys.Down):
		m.myList.cursor = tuitree.Move(rows, m.myList.cursor, 1)
	case key.Matches(msg, m.keys.PageUp):
		m.myList.cursor = tuitree.Move(rows, m.myList.cursor, -m.myListPageStep())
	case key.Matches(msg, m.keys.PageDown):
		m.myList.cursor = tuitree.Move(rows, m.myList.cursor, m.myListPageStep())
	case key.Matches(msg, m.keys.Top):
		m.myList.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.myList.cursor = tuitree.Move(rows, m.myList.cursor, len(rows))
	case key.Matches(msg, m.keys.Enter):
		if len(rows) == 0 {
			return m, nil
		}
		row := rows[state.ClampCursor(m.myList.cursor, len(rows))]
		switch row.Kind {
		case tuitree.RowSection:
			m.myList.collapsed[row.Status] = !m.myList.collapsed[row.Status]
			m.rebuildMyListRows()
			m.myList.cursor = tuitree.SectionRow(m.myList.rows, row.Status)
		case tuitree.RowEntry:
			entry, ok := tuitree.Entry(m.myList.list, row)
			if !ok {
				return m, nil
			}
			cmd := m.push(Route{Screen: ScreenDetail, MovieID: entry.ID, Title: entry.Title})
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) myListPageStep() int {
	return state.PageStep(m.bodyHeight()+6, false)
}

func (m Model) myListView() string {
	if m.myList.loading {
		return m.spinner.View() + " Loading your list...\n"
	}
	if m.myList.err != nil {
		return m.theme.StateWarn.Render("Error: "+m.myList.err.Error()) + "\n"
	}

	counts := map[rapidmock.Status]int{
		rapidmock.StatusWatched: len(m.myList.list.Watched),
		rapidmock.StatusToWatch: len(m.myList.list.ToWatch),
	}
	width := m.contentWidth()
	start, end := state.CenteredWindow(len(m.myList.rows), m.myList.cursor, m.bodyHeight())
	return view.RenderMyListBody(view.MyListRenderInput{
		Rows:              m.myList.rows,
		Start:             start,
		End:               end,
		Cursor:            m.myList.cursor,
		SectionCounts:     counts,
		CollapsedSections: m.myList.collapsed,
		RenderSectionLine: func(label string, count int, active, collapsed bool) string {
			return view.RenderSectionLine(label, count, width, active, collapsed, m.theme)
		},
		RenderEntryLine: func(row tuitree.Row, active bool) string {
			entry, _ := tuitree.Entry(m.myList.list, row)
			return view.RenderListEntryLine(entry, width, active, m.theme)
		},
		RenderEmptyLine: func(label string) string {
			return m.theme.Muted.Render("    " + strings.TrimSpace(label))
		},
	})
}
