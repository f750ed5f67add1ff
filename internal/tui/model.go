package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/glabrego/cinemas-cli/internal/catalog"
	"github.com/glabrego/cinemas-cli/internal/tui/actions"
	"github.com/glabrego/cinemas-cli/internal/tui/platform"
	"github.com/glabrego/cinemas-cli/internal/tui/state"
	tuitheme "github.com/glabrego/cinemas-cli/internal/tui/theme"
	"github.com/glabrego/cinemas-cli/internal/tui/view"
)

const statusTTL = 4 * time.Second

type clearStatusMsg struct {
	id int
}

// ProfileInfo is shown on the profile screen.
type ProfileInfo struct {
	APIBaseURL string
	LogFile    string
}

type Options struct {
	Routes  Routes
	Engine  *catalog.Engine
	Timeout time.Duration
	Profile ProfileInfo
	Logger  zerolog.Logger

	// Categories is the home selector order after All; empty means
	// catalog.DefaultCategories.
	Categories []catalog.Category

	// OpenURL and CopyURL default to the platform browser and clipboard.
	OpenURL func(string) error
	CopyURL func(string) error
}

type Model struct {
	service actions.Service
	routes  Routes
	engine  *catalog.Engine
	timeout time.Duration
	profile ProfileInfo
	logger  zerolog.Logger
	keys    KeyMap
	theme   tuitheme.Theme
	help    help.Model
	spinner spinner.Model

	categories []catalog.Category
	openURLFn  func(string) error
	copyURLFn  func(string) error

	gen          uint64
	tab          int
	stack        []Route
	drawerOpen   bool
	drawerCursor int
	width        int
	height       int
	status       string
	statusID     int
	err          error

	home   homeScreen
	myList myListScreen
	detail detailScreen

	initCmd tea.Cmd
}

// NewModel mounts the initial tab; its load command is returned by Init.
func NewModel(service actions.Service, opts Options) Model {
	logger := opts.Logger.With().Str("component", "tui").Logger()
	routes := opts.Routes
	if err := routes.Validate(); err != nil {
		if len(routes.Tabs) > 0 {
			logger.Warn().Err(err).Msg("falling back to default routes")
		}
		routes = DefaultRoutes()
	}
	engine := opts.Engine
	if engine == nil {
		engine = catalog.DefaultEngine()
	}
	categories := opts.Categories
	if len(categories) == 0 {
		categories = catalog.DefaultCategories()
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = actions.DefaultTimeout
	}
	openFn := opts.OpenURL
	if openFn == nil {
		openFn = platform.OpenURLInBrowser
	}
	copyFn := opts.CopyURL
	if copyFn == nil {
		copyFn = platform.CopyURLToClipboard
	}

	th := tuitheme.Default()
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = th.StateLoad

	m := Model{
		service:    service,
		routes:     routes,
		engine:     engine,
		categories: categories,
		timeout:    timeout,
		profile:    opts.Profile,
		logger:     logger,
		keys:       DefaultKeyMap(),
		theme:      th,
		help:       help.New(),
		spinner:    sp,
		openURLFn:  openFn,
		copyURLFn:  copyFn,
		width:      80,
		height:     24,
	}
	m.initCmd = m.mountTab(routes.Initial)
	return m
}

func (m Model) Init() tea.Cmd {
	return m.initCmd
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.home.search.Width = max(20, msg.Width-4)
		return m, nil
	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
			m.err = nil
		}
		return m, nil

	case actions.CatalogLoadedMsg:
		if !m.home.mount.Owns(msg.Gen) {
			return m.dropStale("catalog loaded", msg.Gen)
		}
		return m.handleCatalogLoaded(msg)
	case actions.CatalogErrorMsg:
		if !m.home.mount.Owns(msg.Gen) {
			return m.dropStale("catalog error", msg.Gen)
		}
		return m.handleCatalogError(msg)
	case actions.MyListLoadedMsg:
		if !m.myList.mount.Owns(msg.Gen) {
			return m.dropStale("my list loaded", msg.Gen)
		}
		return m.handleMyListLoaded(msg)
	case actions.MyListErrorMsg:
		if !m.myList.mount.Owns(msg.Gen) {
			return m.dropStale("my list error", msg.Gen)
		}
		return m.handleMyListError(msg)
	case actions.MovieLoadedMsg:
		if !m.detail.mount.Owns(msg.Gen) {
			return m.dropStale("movie loaded", msg.Gen)
		}
		return m.handleMovieLoaded(msg)
	case actions.MovieNotFoundMsg:
		if !m.detail.mount.Owns(msg.Gen) {
			return m.dropStale("movie not found", msg.Gen)
		}
		return m.handleMovieNotFound(msg)
	case actions.MovieErrorMsg:
		if !m.detail.mount.Owns(msg.Gen) {
			return m.dropStale("movie error", msg.Gen)
		}
		return m.handleMovieError(msg)
	case actions.AddToListSuccessMsg:
		if !m.detail.mount.Owns(msg.Gen) {
			return m.dropStale("add to list success", msg.Gen)
		}
		return m.handleAddToListSuccess(msg)
	case actions.AddToListErrorMsg:
		if !m.detail.mount.Owns(msg.Gen) {
			return m.dropStale("add to list error", msg.Gen)
		}
		return m.handleAddToListError(msg)
	case actions.OpenURLSuccessMsg:
		if !m.detail.mount.Owns(msg.Gen) {
			return m.dropStale("open url success", msg.Gen)
		}
		cmd := m.setStatus(msg.Status)
		return m, cmd
	case actions.OpenURLErrorMsg:
		if !m.detail.mount.Owns(msg.Gen) {
			return m.dropStale("open url error", msg.Gen)
		}
		cmd := m.setWarning(msg.Err)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.home.search.Focused() {
		var cmd tea.Cmd
		m.home.search, cmd = m.home.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) dropStale(kind string, gen uint64) (tea.Model, tea.Cmd) {
	m.logger.Debug().Str("msg", kind).Uint64("gen", gen).Msg("dropping stale result")
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}
	screen := m.currentScreen()
	if screen == ScreenHome && m.home.search.Focused() && !m.drawerOpen {
		return m.updateSearch(msg)
	}
	if screen == ScreenDetail {
		if m.detail.modal != nil {
			if key.Matches(msg, m.keys.Dismiss) {
				m.detail.modal = nil
			}
			return m, nil
		}
		if m.detail.pending {
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Drawer):
		m.drawerOpen = !m.drawerOpen
		return m, nil
	}

	if m.drawerOpen {
		return m.updateDrawer(msg)
	}

	if len(m.stack) > 0 {
		if key.Matches(msg, m.keys.Back) {
			cmd := m.pop()
			return m, cmd
		}
		if screen == ScreenDetail {
			return m.updateDetail(msg)
		}
		return m, nil
	}

	tabs := len(m.routes.Tabs)
	switch {
	case key.Matches(msg, m.keys.NextTab):
		cmd := m.switchTab((m.tab + 1) % tabs)
		return m, cmd
	case key.Matches(msg, m.keys.PrevTab):
		cmd := m.switchTab((m.tab - 1 + tabs) % tabs)
		return m, cmd
	case key.Matches(msg, m.keys.JumpTab):
		cmd := m.switchTab(int(msg.String()[0] - '1'))
		return m, cmd
	}

	switch screen {
	case ScreenHome:
		return m.updateHome(msg)
	case ScreenMyList:
		return m.updateMyList(msg)
	}
	return m, nil
}

func (m Model) updateDrawer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.drawerOpen = false
	case key.Matches(msg, m.keys.Up):
		m.drawerCursor = state.ClampCursor(m.drawerCursor-1, len(m.routes.Drawer))
	case key.Matches(msg, m.keys.Down):
		m.drawerCursor = state.ClampCursor(m.drawerCursor+1, len(m.routes.Drawer))
	case key.Matches(msg, m.keys.Enter):
		if len(m.routes.Drawer) == 0 {
			m.drawerOpen = false
			return m, nil
		}
		cmd := m.selectDrawerItem(m.drawerCursor)
		return m, cmd
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.home.mount.Cancel()
	m.myList.mount.Cancel()
	m.detail.mount.Cancel()
	return m, tea.Quit
}

func (m *Model) nextMount() state.Mount {
	m.gen++
	return state.NewMount(m.gen)
}

func (m Model) activeTabScreen() Screen {
	return m.routes.Tabs[m.tab].Screen
}

func (m Model) top() (Route, bool) {
	if len(m.stack) == 0 {
		return Route{}, false
	}
	return m.stack[len(m.stack)-1], true
}

func (m Model) currentScreen() Screen {
	if route, ok := m.top(); ok {
		return route.Screen
	}
	return m.activeTabScreen()
}

func (m *Model) mountTab(i int) tea.Cmd {
	m.tab = i
	switch m.activeTabScreen() {
	case ScreenHome:
		return m.mountHome()
	case ScreenMyList:
		return m.mountMyList()
	}
	return nil
}

func (m *Model) unmountTab() {
	switch m.activeTabScreen() {
	case ScreenHome:
		m.home.mount.Cancel()
	case ScreenMyList:
		m.myList.mount.Cancel()
	}
}

// switchTab leaves the current tab and mounts tab i, which refetches its data.
func (m *Model) switchTab(i int) tea.Cmd {
	if i < 0 || i >= len(m.routes.Tabs) || i == m.tab {
		return nil
	}
	m.unmountTab()
	m.clearStatus()
	return m.mountTab(i)
}

func (m *Model) push(route Route) tea.Cmd {
	m.stack = append(m.stack, route)
	m.clearStatus()
	if route.Screen == ScreenDetail {
		return m.mountDetail(route)
	}
	return nil
}

// pop returns to the screen below, which stays mounted while covered.
func (m *Model) pop() tea.Cmd {
	route, ok := m.top()
	if !ok {
		return nil
	}
	m.stack = m.stack[:len(m.stack)-1]
	if route.Screen == ScreenDetail {
		m.detail.mount.Cancel()
		m.detail = detailScreen{}
	}
	m.clearStatus()
	if m.loading() {
		return m.spinner.Tick
	}
	return nil
}

func (m *Model) selectDrawerItem(i int) tea.Cmd {
	m.drawerOpen = false
	item := m.routes.Drawer[state.ClampCursor(i, len(m.routes.Drawer))]
	if item.Route.Screen == ScreenProfile {
		if route, ok := m.top(); ok && route.Screen == ScreenProfile {
			return nil
		}
		return m.push(item.Route)
	}
	var cmds []tea.Cmd
	for len(m.stack) > 0 {
		cmds = append(cmds, m.pop())
	}
	cmds = append(cmds, m.switchTab(m.routes.tabIndex(item.Route.Screen)))
	return tea.Batch(cmds...)
}

func (m *Model) setStatus(status string) tea.Cmd {
	m.statusID++
	m.status = status
	m.err = nil
	return clearStatusCmd(m.statusID, statusTTL)
}

func (m *Model) setWarning(err error) tea.Cmd {
	m.statusID++
	m.status = ""
	m.err = err
	return clearStatusCmd(m.statusID, statusTTL)
}

func (m *Model) clearStatus() {
	m.statusID++
	m.status = ""
	m.err = nil
}

func clearStatusCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

func (m Model) loading() bool {
	switch m.currentScreen() {
	case ScreenHome:
		return m.home.loading
	case ScreenMyList:
		return m.myList.loading
	case ScreenDetail:
		return m.detail.loading || m.detail.pending
	}
	return false
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(view.Header(m.routes.Title, m.routes.tabTitles(), m.tab, m.theme))
	b.WriteString("\n")
	if crumb := m.breadcrumb(); crumb != "" {
		b.WriteString(crumb)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.bodyView())
	b.WriteString("\n")
	warning := ""
	if m.err != nil {
		warning = m.err.Error()
	}
	b.WriteString(view.StatusLine(m.loading(), m.err != nil, m.status, warning, m.theme))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.helpKeys()))
	b.WriteString("\n")
	return b.String()
}

func (m Model) bodyView() string {
	if m.drawerOpen {
		return strings.Join(view.DrawerLines(m.routes.drawerTitles(), m.drawerCursor, m.theme), "\n") + "\n"
	}
	switch m.currentScreen() {
	case ScreenHome:
		return m.homeView()
	case ScreenMyList:
		return m.myListView()
	case ScreenDetail:
		return m.detailView()
	case ScreenProfile:
		return m.profileView()
	}
	return ""
}

func (m Model) breadcrumb() string {
	if len(m.stack) == 0 {
		return ""
	}
	parts := []string{m.routes.Tabs[m.tab].Title}
	for _, route := range m.stack {
		switch route.Screen {
		case ScreenDetail:
			title := strings.TrimSpace(route.Title)
			if title == "" {
				title = "Details"
			}
			parts = append(parts, title)
		case ScreenProfile:
			parts = append(parts, "Profile")
		}
	}
	return view.Breadcrumb(parts, m.theme)
}

func (m Model) helpKeys() help.KeyMap {
	if m.drawerOpen {
		return m.keys.drawerHelp()
	}
	switch m.currentScreen() {
	case ScreenHome:
		if m.home.search.Focused() {
			return m.keys.searchHelp()
		}
		return m.keys.homeHelp()
	case ScreenMyList:
		return m.keys.myListHelp()
	case ScreenDetail:
		if m.detail.modal != nil {
			return m.keys.modalHelp()
		}
		return m.keys.detailHelp()
	}
	return m.keys.profileHelp()
}

func (m Model) contentWidth() int {
	if m.width > 0 {
		return m.width - 1
	}
	return 100
}

// bodyHeight is the number of lines left for a screen body after the header,
// breadcrumb, status line and help.
func (m Model) bodyHeight() int {
	used := 6
	if len(m.stack) > 0 {
		used++
	}
	if m.help.ShowAll {
		used += 5
	}
	if h := m.height - used; h > 3 {
		return h
	}
	return 3
}
