package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Title      lipgloss.Style
	Tab        lipgloss.Style
	TabActive  lipgloss.Style
	Section    lipgloss.Style
	Count      lipgloss.Style
	ActiveLine lipgloss.Style
	MetaLabel  lipgloss.Style
	MetaValue  lipgloss.Style
	Muted      lipgloss.Style
	StateIdle  lipgloss.Style
	StateWarn  lipgloss.Style
	StateLoad  lipgloss.Style

	TitleMovie  lipgloss.Style
	TitleSeries lipgloss.Style
	TitleOther  lipgloss.Style

	ModalSuccess lipgloss.Style
	ModalError   lipgloss.Style
}

func Default() Theme {
	cpRosewater := lipgloss.Color("#f5e0dc")
	cpMauve := lipgloss.Color("#cba6f7")
	cpRed := lipgloss.Color("#f38ba8")
	cpPeach := lipgloss.Color("#fab387")
	cpYellow := lipgloss.Color("#f9e2af")
	cpGreen := lipgloss.Color("#a6e3a1")
	cpTeal := lipgloss.Color("#94e2d5")
	cpLavender := lipgloss.Color("#b4befe")
	cpText := lipgloss.Color("#cdd6f4")
	cpSubtext0 := lipgloss.Color("#a6adc8")
	cpSubtext1 := lipgloss.Color("#bac2de")
	cpOverlay1 := lipgloss.Color("#7f849c")
	cpSurface0 := lipgloss.Color("#313244")

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2)

	return Theme{
		Title:        lipgloss.NewStyle().Bold(true).Foreground(cpMauve),
		Tab:          lipgloss.NewStyle().Foreground(cpSubtext0).Padding(0, 1),
		TabActive:    lipgloss.NewStyle().Foreground(cpLavender).Background(cpSurface0).Bold(true).Padding(0, 1),
		Section:      lipgloss.NewStyle().Bold(true).Foreground(cpTeal),
		Count:        lipgloss.NewStyle().Foreground(cpYellow).Bold(true),
		ActiveLine:   lipgloss.NewStyle().Background(cpSurface0).Foreground(cpText),
		MetaLabel:    lipgloss.NewStyle().Foreground(cpOverlay1),
		MetaValue:    lipgloss.NewStyle().Foreground(cpSubtext1),
		Muted:        lipgloss.NewStyle().Foreground(cpOverlay1).Italic(true),
		StateIdle:    lipgloss.NewStyle().Foreground(cpGreen),
		StateWarn:    lipgloss.NewStyle().Foreground(cpRed),
		StateLoad:    lipgloss.NewStyle().Foreground(cpPeach),
		TitleMovie:   lipgloss.NewStyle().Bold(true).Foreground(cpText),
		TitleSeries:  lipgloss.NewStyle().Italic(true).Foreground(cpLavender),
		TitleOther:   lipgloss.NewStyle().Foreground(cpRosewater),
		ModalSuccess: modal.BorderForeground(cpGreen),
		ModalError:   modal.BorderForeground(cpRed),
	}
}

// StyleTitle picks the title style from the item's type label.
func (t Theme) StyleTitle(itemType, title string) string {
	if title == "" {
		return title
	}
	switch strings.ToLower(strings.TrimSpace(itemType)) {
	case "movie":
		return t.TitleMovie.Render(title)
	case "series", "show":
		return t.TitleSeries.Render(title)
	default:
		return t.TitleOther.Render(title)
	}
}

func (t Theme) RenderActiveLine(active bool, line string) string {
	if !active {
		return line
	}
	return t.ActiveLine.Render(line)
}
