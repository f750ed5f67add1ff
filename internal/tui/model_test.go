package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/glabrego/cinemas-cli/internal/rapidmock"
	"github.com/glabrego/cinemas-cli/internal/tui/view"
)

type fakeService struct {
	mu sync.Mutex

	movies     []rapidmock.Movie
	catalogErr error
	list       rapidmock.MyList
	listErr    error
	details    map[int64]rapidmock.MovieDetails
	movieErr   error
	addErr     error

	catalogCalls int
	listCalls    int
	added        []rapidmock.Status
}

func (f *fakeService) LoadCatalog(context.Context) ([]rapidmock.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.catalogCalls++
	if f.catalogErr != nil {
		return nil, f.catalogErr
	}
	return f.movies, nil
}

func (f *fakeService) LoadMyList(context.Context) (rapidmock.MyList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return rapidmock.MyList{}, f.listErr
	}
	return f.list, nil
}

func (f *fakeService) LoadMovie(_ context.Context, id int64) (rapidmock.MovieDetails, error) {
	if f.movieErr != nil {
		return rapidmock.MovieDetails{}, f.movieErr
	}
	details, ok := f.details[id]
	if !ok {
		return rapidmock.MovieDetails{}, fmt.Errorf("fetch movie %d: %w", id, rapidmock.ErrNotFound)
	}
	return details, nil
}

func (f *fakeService) AddToList(_ context.Context, _ int64, status rapidmock.Status) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.added = append(f.added, status)
	return f.addErr
}

func sampleService() *fakeService {
	return &fakeService{
		movies: []rapidmock.Movie{
			{ID: 3, Title: "Zodiac", Type: "Movie"},
			{ID: 1, Title: "Heat", Type: "Movie", PosterURL: "https://img.example/heat.jpg"},
			{ID: 2, Title: "Dark", Type: "Show"},
		},
		details: map[int64]rapidmock.MovieDetails{
			1: {
				Movie:       rapidmock.Movie{ID: 1, Title: "Heat", Type: "Movie", PosterURL: "https://img.example/heat.jpg", Description: "<p>Crime saga.</p>"},
				Rating:      8.3,
				ReleaseDate: "1995-12-15",
				Genre:       []string{"Crime", "Drama"},
			},
			2: {
				Movie:  rapidmock.Movie{ID: 2, Title: "Dark", Type: "Show"},
				Rating: 8.7,
			},
		},
		list: rapidmock.MyList{
			Watched: []rapidmock.ListEntry{{ID: 1, Title: "Heat", UpdatedAt: "2024-10-01T00:00:00Z"}},
			ToWatch: []rapidmock.ListEntry{{ID: 2, Title: "Dark"}},
		},
	}
}

func newTestModel(svc *fakeService) Model {
	return NewModel(svc, Options{
		Logger:  zerolog.Nop(),
		Profile: ProfileInfo{APIBaseURL: "http://api.test/v1", LogFile: "/tmp/cinemas.log"},
		OpenURL: func(string) error { return nil },
		CopyURL: func(string) error { return nil },
	})
}

// collect runs cmd and flattens batches into the messages they produce.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// drain feeds the results of cmd back into the model, skipping spinner ticks.
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for _, msg := range collect(cmd) {
		if _, ok := msg.(spinner.TickMsg); ok {
			continue
		}
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+o":
		return tea.KeyMsg{Type: tea.KeyCtrlO}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(m Model, keys ...string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var updated tea.Model
		updated, cmd = m.Update(keyMsg(k))
		m = updated.(Model)
	}
	return m, cmd
}

func plain(m Model) string {
	return view.StripANSI(m.View())
}

func loadedModel(t *testing.T, svc *fakeService) Model {
	t.Helper()
	m := newTestModel(svc)
	return drain(t, m, m.Init())
}

func TestModelView_ShowsLoadingBeforeCatalogArrives(t *testing.T) {
	m := newTestModel(sampleService())
	if m.Init() == nil {
		t.Fatal("expected initial catalog command")
	}
	out := plain(m)
	if !strings.Contains(out, "Loading...") {
		t.Fatalf("expected loading text, got: %s", out)
	}
	if !strings.Contains(out, "state: loading") {
		t.Fatalf("expected loading state, got: %s", out)
	}
	if !strings.Contains(out, "Cinemas") || !strings.Contains(out, "1 Home") || !strings.Contains(out, "2 My List") {
		t.Fatalf("expected header and tabs, got: %s", out)
	}
}

func TestModelInit_SeedsSortedCatalog(t *testing.T) {
	m := loadedModel(t, sampleService())
	out := plain(m)

	dark := strings.Index(out, "Dark")
	heat := strings.Index(out, "Heat")
	zodiac := strings.Index(out, "Zodiac")
	if dark < 0 || heat < 0 || zodiac < 0 {
		t.Fatalf("expected all titles, got: %s", out)
	}
	if !(dark < heat && heat < zodiac) {
		t.Fatalf("expected A-Z order on first load, got: %s", out)
	}
	if !strings.Contains(out, "3/3 shown") {
		t.Fatalf("expected shown counter, got: %s", out)
	}
	if !strings.Contains(out, "[Show]") {
		t.Fatalf("expected type label, got: %s", out)
	}
	if !strings.Contains(out, "Loaded 3 titles") {
		t.Fatalf("expected load status, got: %s", out)
	}
}

func TestModelUpdate_CatalogErrorShowsEmptyListOnly(t *testing.T) {
	svc := sampleService()
	svc.catalogErr = errors.New("connection refused")
	m := loadedModel(t, svc)

	out := plain(m)
	if !strings.Contains(out, "No movies available.") {
		t.Fatalf("expected empty state, got: %s", out)
	}
	if strings.Contains(out, "connection refused") {
		t.Fatalf("expected catalog failure to stay out of the view, got: %s", out)
	}
	if m.home.loading {
		t.Fatal("expected loading to stop after failure")
	}
}

func TestModelUpdate_TabSwitchRemountsAndRefetches(t *testing.T) {
	svc := sampleService()
	m := loadedModel(t, svc)
	m, _ = press(m, "s")
	if m.home.view.Direction == 0 {
		t.Fatal("expected sort toggle before switching tabs")
	}

	m, cmd := press(m, "2")
	if m.currentScreen() != ScreenMyList {
		t.Fatalf("expected my list screen, got %s", m.currentScreen())
	}
	m = drain(t, m, cmd)
	if svc.listCalls != 1 {
		t.Fatalf("expected one list fetch, got %d", svc.listCalls)
	}

	m, cmd = press(m, "1")
	m = drain(t, m, cmd)
	if svc.catalogCalls != 2 {
		t.Fatalf("expected catalog refetch on remount, got %d calls", svc.catalogCalls)
	}
	if m.home.view.Direction != 0 {
		t.Fatal("expected home view reset on remount")
	}

	m, cmd = press(m, "tab")
	m = drain(t, m, cmd)
	if m.currentScreen() != ScreenMyList || svc.listCalls != 2 {
		t.Fatalf("expected tab key to remount my list, screen=%s calls=%d", m.currentScreen(), svc.listCalls)
	}
	m, _ = press(m, "shift+tab")
	if m.currentScreen() != ScreenHome {
		t.Fatalf("expected shift+tab back to home, got %s", m.currentScreen())
	}
}

func TestModelUpdate_DropsResultsFromPreviousMount(t *testing.T) {
	svc := sampleService()
	m := newTestModel(svc)
	staleCmd := m.Init()
	staleGen := m.home.mount.Gen

	m, cmd := press(m, "2")
	m = drain(t, m, cmd)
	m, homeCmd := press(m, "1")
	if m.home.mount.Gen == staleGen {
		t.Fatal("expected a new mount generation")
	}

	m = drain(t, m, staleCmd)
	if !m.home.loading || len(m.home.baseline) != 0 {
		t.Fatalf("expected stale catalog result to be dropped, loading=%v baseline=%d", m.home.loading, len(m.home.baseline))
	}

	m = drain(t, m, homeCmd)
	if m.home.loading || len(m.home.baseline) != 3 {
		t.Fatalf("expected current mount to load, loading=%v baseline=%d", m.home.loading, len(m.home.baseline))
	}
}

func TestModelUpdate_DrawerOpensProfileAndBackReturns(t *testing.T) {
	svc := sampleService()
	m := loadedModel(t, svc)

	m, _ = press(m, "ctrl+o")
	out := plain(m)
	if !strings.Contains(out, "Menu") || !strings.Contains(out, "> Home") || !strings.Contains(out, "  Profile") {
		t.Fatalf("expected drawer, got: %s", out)
	}

	m, _ = press(m, "j", "enter")
	if m.currentScreen() != ScreenProfile {
		t.Fatalf("expected profile screen, got %s", m.currentScreen())
	}
	out = plain(m)
	for _, want := range []string{"Welcome To Your Profile", "http://api.test/v1", "/tmp/cinemas.log", "Home › Profile"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in profile view, got: %s", want, out)
		}
	}

	m, _ = press(m, "m", "enter")
	if len(m.stack) != 1 {
		t.Fatalf("expected profile not pushed twice, stack=%v", m.stack)
	}

	m, _ = press(m, "esc")
	if m.currentScreen() != ScreenHome || len(m.stack) != 0 {
		t.Fatalf("expected back to home, screen=%s stack=%v", m.currentScreen(), m.stack)
	}
	if svc.catalogCalls != 1 {
		t.Fatalf("expected home to stay mounted under profile, got %d fetches", svc.catalogCalls)
	}
}

func TestModelUpdate_DrawerHomeClearsStack(t *testing.T) {
	svc := sampleService()
	m := loadedModel(t, svc)
	m, cmd := press(m, "enter")
	m = drain(t, m, cmd)
	m, _ = press(m, "m", "j", "enter")
	if len(m.stack) != 2 {
		t.Fatalf("expected detail and profile on the stack, got %v", m.stack)
	}

	m, _ = press(m, "m", "k", "enter")
	if len(m.stack) != 0 || m.currentScreen() != ScreenHome {
		t.Fatalf("expected drawer Home to return to the tabs, stack=%v", m.stack)
	}
	if m.detail.mount.Owns(m.detail.mount.Gen) {
		t.Fatal("expected detail mount cancelled")
	}
}

func TestModelUpdate_QuitAndHelp(t *testing.T) {
	m := loadedModel(t, sampleService())

	m, _ = press(m, "?")
	if !m.help.ShowAll {
		t.Fatal("expected full help after ?")
	}

	_, cmd := press(m, "q")
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg, got %T", cmd())
	}
}

func TestModelUpdate_WindowSize(t *testing.T) {
	m := loadedModel(t, sampleService())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)
	if m.width != 120 || m.height != 40 || m.contentWidth() != 119 {
		t.Fatalf("unexpected size: %dx%d", m.width, m.height)
	}
	if m.bodyHeight() != 34 {
		t.Fatalf("expected body height 34, got %d", m.bodyHeight())
	}
}

func TestNewModel_InvalidRoutesFallBackToDefaults(t *testing.T) {
	m := NewModel(sampleService(), Options{Routes: Routes{Title: "Broken", Tabs: []Tab{{Title: "Detail", Screen: ScreenDetail}}}})
	if m.routes.Title != "Cinemas" || len(m.routes.Tabs) != 2 {
		t.Fatalf("expected default routes, got %+v", m.routes)
	}
}

func TestNewModel_NilServiceRendersEmptyHome(t *testing.T) {
	m := NewModel(nil, Options{})
	if m.Init() != nil {
		t.Fatal("expected no command without a service")
	}
	if !strings.Contains(plain(m), "No movies available.") {
		t.Fatalf("expected empty home, got: %s", plain(m))
	}
}
