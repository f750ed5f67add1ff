package tui

import (
	"errors"
	"fmt"
)

type Screen string

const (
	ScreenHome    Screen = "home"
	ScreenMyList  Screen = "mylist"
	ScreenDetail  Screen = "detail"
	ScreenProfile Screen = "profile"
)

// Route names a screen and the context it is opened with. MovieID and Title
// are only meaningful for ScreenDetail.
type Route struct {
	Screen  Screen
	MovieID int64
	Title   string
}

type Tab struct {
	Title  string
	Screen Screen
}

// DrawerItem either selects the tab hosting a tab screen or pushes a screen
// above the tabs.
type DrawerItem struct {
	Title string
	Route Route
}

// Routes is the navigation layout handed to NewModel: the tab bar, the drawer
// menu and the tab shown on start.
type Routes struct {
	Title   string
	Tabs    []Tab
	Drawer  []DrawerItem
	Initial int
}

func DefaultRoutes() Routes {
	return Routes{
		Title: "Cinemas",
		Tabs: []Tab{
			{Title: "Home", Screen: ScreenHome},
			{Title: "My List", Screen: ScreenMyList},
		},
		Drawer: []DrawerItem{
			{Title: "Home", Route: Route{Screen: ScreenHome}},
			{Title: "Profile", Route: Route{Screen: ScreenProfile}},
		},
	}
}

func (r Routes) Validate() error {
	if len(r.Tabs) == 0 {
		return errors.New("routes: at least one tab is required")
	}
	if len(r.Tabs) > 9 {
		return fmt.Errorf("routes: at most 9 tabs are supported, got %d", len(r.Tabs))
	}
	seen := make(map[Screen]bool, len(r.Tabs))
	for _, tab := range r.Tabs {
		if tab.Screen != ScreenHome && tab.Screen != ScreenMyList {
			return fmt.Errorf("routes: screen %q cannot be a tab", tab.Screen)
		}
		if seen[tab.Screen] {
			return fmt.Errorf("routes: screen %q appears in more than one tab", tab.Screen)
		}
		seen[tab.Screen] = true
	}
	if r.Initial < 0 || r.Initial >= len(r.Tabs) {
		return fmt.Errorf("routes: initial tab %d out of range", r.Initial)
	}
	for _, item := range r.Drawer {
		switch item.Route.Screen {
		case ScreenProfile:
		case ScreenHome, ScreenMyList:
			if !seen[item.Route.Screen] {
				return fmt.Errorf("routes: drawer item %q points at a screen with no tab", item.Title)
			}
		default:
			return fmt.Errorf("routes: drawer item %q cannot open screen %q", item.Title, item.Route.Screen)
		}
	}
	return nil
}

// tabIndex returns the tab hosting screen, or -1.
func (r Routes) tabIndex(screen Screen) int {
	for i, tab := range r.Tabs {
		if tab.Screen == screen {
			return i
		}
	}
	return -1
}

func (r Routes) tabTitles() []string {
	out := make([]string, len(r.Tabs))
	for i, tab := range r.Tabs {
		out[i] = tab.Title
	}
	return out
}

func (r Routes) drawerTitles() []string {
	out := make([]string, len(r.Drawer))
	for i, item := range r.Drawer {
		out[i] = item.Title
	}
	return out
}
