package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/glabrego/cinemas-cli/internal/catalog"
	"github.com/glabrego/cinemas-cli/internal/rapidmock"
	tuitheme "github.com/glabrego/cinemas-cli/internal/tui/theme"
)

const missingDateLabel = "Date not found"

type CatalogLineParams struct {
	Movie  rapidmock.Movie
	Active bool
	Width  int
}

func RenderCatalogLine(p CatalogLineParams, th tuitheme.Theme) string {
	prefix := "    "
	if p.Active {
		prefix = "  > "
	}
	itemType := strings.TrimSpace(p.Movie.Type)
	if itemType == "" {
		itemType = "unknown"
	}
	typeLabel := "[" + itemType + "]"
	return renderRow(prefix, strings.TrimSpace(p.Movie.Title), typeLabel, p.Width, p.Active, func(label string) string {
		return th.StyleTitle(p.Movie.Type, label)
	}, th)
}

func RenderListEntryLine(entry rapidmock.ListEntry, width int, active bool, th tuitheme.Theme) string {
	prefix := "    "
	if active {
		prefix = "  > "
	}
	dateLabel := "[" + UpdatedLabel(entry.UpdatedAt) + "]"
	return renderRow(prefix, strings.TrimSpace(entry.Title), dateLabel, width, active, func(label string) string {
		return th.StyleTitle(entry.Type, label)
	}, th)
}

// renderRow lays out prefix, title and right label in width terminal cells.
// The right label takes at most half the row; the title gets the rest.
func renderRow(prefix, title, right string, width int, active bool, style func(string) string, th tuitheme.Theme) string {
	right = truncateWidth(right, max(1, (width-visibleLen(prefix))/2))
	available := width - visibleLen(prefix) - 1 - visibleLen(right)
	if available < 1 {
		available = 1
	}
	label := truncateWidth(title, available)
	gap := width - visibleLen(prefix) - visibleLen(label) - visibleLen(right)
	if gap < 1 {
		gap = 1
	}
	return th.RenderActiveLine(active, prefix+style(label)+strings.Repeat(" ", gap)+right)
}

// UpdatedLabel formats a list entry timestamp. RFC 3339 values are shortened
// to their date; other non-empty values are shown as sent.
func UpdatedLabel(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return missingDateLabel
	}
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts.UTC().Format(time.DateOnly)
	}
	return raw
}

func RenderTreeNodeLine(left string, count, width int, active bool, th tuitheme.Theme) string {
	if count <= 0 {
		return th.RenderActiveLine(active, left)
	}
	right := th.Count.Render(fmt.Sprintf("%d", count))
	available := width - visibleLen(right) - 1
	if available < 1 {
		available = 1
	}
	left = truncateWidth(left, available)
	gap := width - visibleLen(left) - visibleLen(right)
	if gap < 1 {
		gap = 1
	}
	return th.RenderActiveLine(active, left+strings.Repeat(" ", gap)+right)
}

func RenderSectionLine(label string, count, width int, active, collapsed bool, th tuitheme.Theme) string {
	icon := "▾"
	if collapsed {
		icon = "▸"
	}
	left := fmt.Sprintf("%s %s", icon, label)
	return RenderTreeNodeLine(th.Section.Render(left), count, width, active, th)
}

// ControlsLine summarises the home screen's sort and category selectors.
func ControlsLine(v catalog.View, shown, total int, th tuitheme.Theme) string {
	sortLabel := "A-Z"
	if v.Direction == catalog.Descending {
		sortLabel = "Z-A"
	}
	parts := []string{
		th.MetaLabel.Render("sort") + " " + th.MetaValue.Render(sortLabel+" "+v.Direction.Arrow()),
		th.MetaLabel.Render("category") + " " + th.MetaValue.Render(v.Category.String()),
		th.MetaValue.Render(fmt.Sprintf("%d/%d shown", shown, total)),
	}
	return strings.Join(parts, " • ")
}

// truncateWidth cuts s to at most maxWidth cells, ending in "..." when cut.
func truncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if visibleLen(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return strings.Repeat(".", maxWidth)
	}
	return ansi.Truncate(s, maxWidth, "...")
}

func visibleLen(s string) int {
	return lipgloss.Width(s)
}

func StripANSI(s string) string {
	return ansi.Strip(s)
}
