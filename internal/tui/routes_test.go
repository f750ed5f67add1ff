package tui

import "testing"

func TestRoutesValidate(t *testing.T) {
	if err := DefaultRoutes().Validate(); err != nil {
		t.Fatalf("expected default routes valid, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Routes)
	}{
		{"no tabs", func(r *Routes) { r.Tabs = nil }},
		{"detail as tab", func(r *Routes) { r.Tabs = append(r.Tabs, Tab{Title: "Detail", Screen: ScreenDetail}) }},
		{"duplicate tab", func(r *Routes) { r.Tabs = append(r.Tabs, Tab{Title: "Again", Screen: ScreenHome}) }},
		{"initial out of range", func(r *Routes) { r.Initial = 2 }},
		{"drawer opens detail", func(r *Routes) { r.Drawer = append(r.Drawer, DrawerItem{Title: "X", Route: Route{Screen: ScreenDetail}}) }},
		{"drawer targets missing tab", func(r *Routes) {
			r.Tabs = r.Tabs[:1]
			r.Drawer = append(r.Drawer, DrawerItem{Title: "My List", Route: Route{Screen: ScreenMyList}})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := DefaultRoutes()
			tt.mutate(&r)
			if err := r.Validate(); err == nil {
				t.Fatalf("expected validation error for %s", tt.name)
			}
		})
	}
}

func TestRoutes_CustomLayout(t *testing.T) {
	r := Routes{
		Title:   "Lists",
		Tabs:    []Tab{{Title: "My List", Screen: ScreenMyList}, {Title: "Browse", Screen: ScreenHome}},
		Drawer:  []DrawerItem{{Title: "Profile", Route: Route{Screen: ScreenProfile}}},
		Initial: 0,
	}
	if err := r.Validate(); err != nil {
		t.Fatalf("expected custom routes valid, got %v", err)
	}
	svc := sampleService()
	m := NewModel(svc, Options{Routes: r})
	m = drain(t, m, m.Init())
	if m.currentScreen() != ScreenMyList || svc.listCalls != 1 || svc.catalogCalls != 0 {
		t.Fatalf("expected my list mounted first, screen=%s list=%d catalog=%d", m.currentScreen(), svc.listCalls, svc.catalogCalls)
	}
	if got := r.tabIndex(ScreenHome); got != 1 {
		t.Fatalf("expected home at tab 1, got %d", got)
	}
}
