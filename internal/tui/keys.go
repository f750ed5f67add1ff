package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Enter    key.Binding
	Back     key.Binding

	NextTab key.Binding
	PrevTab key.Binding
	JumpTab key.Binding
	Drawer  key.Binding

	Search   key.Binding
	Sort     key.Binding
	Category key.Binding
	Refresh  key.Binding

	MarkWatched key.Binding
	MarkToWatch key.Binding
	OpenPoster  key.Binding
	CopyPoster  key.Binding
	Dismiss     key.Binding

	Help key.Binding
	Quit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+b"),
			key.WithHelp("PgUp", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+f"),
			key.WithHelp("PgDn", "page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "previous tab"),
		),
		JumpTab: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "switch tab"),
		),
		Drawer: key.NewBinding(
			key.WithKeys("ctrl+o", "m"),
			key.WithHelp("m", "menu"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort A-Z/Z-A"),
		),
		Category: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "category"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		MarkWatched: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "mark watched"),
		),
		MarkToWatch: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "mark to watch"),
		),
		OpenPoster: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open poster"),
		),
		CopyPoster: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy poster URL"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("enter/esc", "ok"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// contextKeys adapts a set of bindings to help.KeyMap for one screen state.
type contextKeys struct {
	short []key.Binding
	full  [][]key.Binding
}

func (c contextKeys) ShortHelp() []key.Binding  { return c.short }
func (c contextKeys) FullHelp() [][]key.Binding { return c.full }

func (k KeyMap) homeHelp() contextKeys {
	return contextKeys{
		short: []key.Binding{k.Search, k.Sort, k.Category, k.Enter, k.JumpTab, k.Drawer, k.Help, k.Quit},
		full: [][]key.Binding{
			{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
			{k.Search, k.Back, k.Sort, k.Category, k.Refresh},
			{k.Enter, k.NextTab, k.PrevTab, k.JumpTab, k.Drawer},
			{k.Help, k.Quit},
		},
	}
}

func (k KeyMap) searchHelp() contextKeys {
	done := key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter/esc", "done"))
	return contextKeys{short: []key.Binding{done}, full: [][]key.Binding{{done}}}
}

func (k KeyMap) myListHelp() contextKeys {
	return contextKeys{
		short: []key.Binding{k.Up, k.Down, k.Enter, k.Refresh, k.JumpTab, k.Drawer, k.Help, k.Quit},
		full: [][]key.Binding{
			{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
			{k.Enter, k.Refresh},
			{k.NextTab, k.PrevTab, k.JumpTab, k.Drawer},
			{k.Help, k.Quit},
		},
	}
}

func (k KeyMap) detailHelp() contextKeys {
	return contextKeys{
		short: []key.Binding{k.MarkWatched, k.MarkToWatch, k.OpenPoster, k.CopyPoster, k.Back, k.Help, k.Quit},
		full: [][]key.Binding{
			{k.Up, k.Down},
			{k.MarkWatched, k.MarkToWatch, k.Refresh},
			{k.OpenPoster, k.CopyPoster},
			{k.Back, k.Drawer, k.Help, k.Quit},
		},
	}
}

func (k KeyMap) profileHelp() contextKeys {
	return contextKeys{
		short: []key.Binding{k.Back, k.Drawer, k.Help, k.Quit},
		full:  [][]key.Binding{{k.Back, k.Drawer, k.Help, k.Quit}},
	}
}

func (k KeyMap) drawerHelp() contextKeys {
	closeMenu := key.NewBinding(key.WithKeys("esc", "ctrl+o", "m"), key.WithHelp("esc", "close menu"))
	return contextKeys{
		short: []key.Binding{k.Up, k.Down, k.Enter, closeMenu},
		full:  [][]key.Binding{{k.Up, k.Down, k.Enter, closeMenu}},
	}
}

func (k KeyMap) modalHelp() contextKeys {
	return contextKeys{short: []key.Binding{k.Dismiss}, full: [][]key.Binding{{k.Dismiss}}}
}
