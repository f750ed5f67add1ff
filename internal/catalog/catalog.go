// Package catalog derives the browsable view of the movie catalog from the
// last fetched baseline. Every derivation starts again from the full
// baseline; nothing here keeps state between calls.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/glabrego/cinemas-cli/internal/rapidmock"
)

// Category selects catalog items by their type label. The zero value selects
// everything. Labels other than the known ones are accepted as-is since the
// service does not fix the set.
type Category string

const (
	All    Category = ""
	Movie  Category = "Movie"
	Show   Category = "Show"
	Series Category = "Series"
)

// DefaultCategories is the selector order after All.
func DefaultCategories() []Category {
	return []Category{Movie, Show}
}

func (c Category) String() string {
	if c == All {
		return "All"
	}
	return string(c)
}

// Next cycles through DefaultCategories.
func (c Category) Next() Category {
	return c.NextIn(DefaultCategories())
}

// NextIn cycles All -> labels[0] -> ... -> All. A label missing from labels
// goes back to All.
func (c Category) NextIn(labels []Category) Category {
	if c == All {
		if len(labels) == 0 {
			return All
		}
		return labels[0]
	}
	for i, label := range labels {
		if strings.EqualFold(string(label), string(c)) && i+1 < len(labels) {
			return labels[i+1]
		}
	}
	return All
}

func (c Category) matches(itemType string) bool {
	return c == All || strings.EqualFold(string(c), itemType)
}

// ParseCategory maps "all" and "" to All; other values are kept as labels
// with the known ones normalized to their canonical spelling.
func ParseCategory(raw string) Category {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.EqualFold(trimmed, "all") {
		return All
	}
	for _, known := range []Category{Movie, Show, Series} {
		if strings.EqualFold(trimmed, string(known)) {
			return known
		}
	}
	return Category(trimmed)
}

type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) Toggle() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Arrow mirrors the sort button glyph: down for A-Z, up for Z-A.
func (d Direction) Arrow() string {
	if d == Descending {
		return "↑"
	}
	return "↓"
}

func ParseDirection(raw string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "asc", "ascending", "a-z":
		return Ascending, nil
	case "desc", "descending", "z-a":
		return Descending, nil
	}
	return Ascending, fmt.Errorf("unknown sort direction: %s", raw)
}

// MatchMode selects how the query is matched against titles.
type MatchMode string

const (
	MatchSubstring MatchMode = "substring"
	MatchFuzzy     MatchMode = "fuzzy"
)

func ParseMatchMode(raw string) (MatchMode, error) {
	switch MatchMode(strings.ToLower(strings.TrimSpace(raw))) {
	case "", MatchSubstring:
		return MatchSubstring, nil
	case MatchFuzzy:
		return MatchFuzzy, nil
	}
	return "", fmt.Errorf("unknown search mode: %s", raw)
}

// View is the filter/sort state of the home screen.
type View struct {
	Query     string
	Category  Category
	Direction Direction
}

func (v View) WithQuery(q string) View {
	v.Query = q
	return v
}

func (v View) WithCategory(c Category) View {
	v.Category = c
	return v
}

func (v View) ToggleDirection() View {
	v.Direction = v.Direction.Toggle()
	return v
}

// Engine holds the matching mode and collation locale. It is safe for
// concurrent use; a collator is built per derivation.
type Engine struct {
	mode MatchMode
	tag  language.Tag
}

func NewEngine(mode MatchMode, tag language.Tag) *Engine {
	if mode == "" {
		mode = MatchSubstring
	}
	return &Engine{mode: mode, tag: tag}
}

var defaultEngine = NewEngine(MatchSubstring, language.English)

// DefaultEngine matches substrings and collates with English rules.
func DefaultEngine() *Engine {
	return defaultEngine
}

// Derive filters and sorts with substring matching and English collation.
func Derive(baseline []rapidmock.Movie, v View) []rapidmock.Movie {
	return defaultEngine.Derive(baseline, v)
}

func (e *Engine) Mode() MatchMode {
	return e.mode
}

// Derive returns a new slice; baseline is never modified. Items whose titles
// collate equal keep their baseline order in both directions.
func (e *Engine) Derive(baseline []rapidmock.Movie, v View) []rapidmock.Movie {
	out := make([]rapidmock.Movie, 0, len(baseline))
	for _, movie := range baseline {
		if v.Query != "" && !e.matchTitle(v.Query, movie.Title) {
			continue
		}
		if !v.Category.matches(movie.Type) {
			continue
		}
		out = append(out, movie)
	}

	col := collate.New(e.tag)
	sort.SliceStable(out, func(i, j int) bool {
		c := col.CompareString(out[i].Title, out[j].Title)
		if v.Direction == Descending {
			return c > 0
		}
		return c < 0
	})
	return out
}

func (e *Engine) matchTitle(query, title string) bool {
	if e.mode == MatchFuzzy {
		return fuzzy.MatchFold(query, title)
	}
	return strings.Contains(strings.ToLower(title), strings.ToLower(query))
}
