package view

import (
	"fmt"
	"strings"

	tuitheme "github.com/glabrego/cinemas-cli/internal/tui/theme"
)

// Header renders the app title and the tab bar. active < 0 highlights no tab.
func Header(title string, tabs []string, active int, th tuitheme.Theme) string {
	var b strings.Builder
	b.WriteString(th.Title.Render(title))
	b.WriteString("\n")
	parts := make([]string, len(tabs))
	for i, tab := range tabs {
		label := fmt.Sprintf("%d %s", i+1, tab)
		if i == active {
			parts[i] = th.TabActive.Render(label)
		} else {
			parts[i] = th.Tab.Render(label)
		}
	}
	b.WriteString(strings.Join(parts, " "))
	return b.String()
}

// Breadcrumb shows where a pushed screen sits, e.g. "Home › Heat".
func Breadcrumb(parts []string, th tuitheme.Theme) string {
	if len(parts) == 0 {
		return ""
	}
	return th.MetaLabel.Render(strings.Join(parts, " › "))
}

func StatusLine(loading bool, hasWarning bool, status, warning string, th tuitheme.Theme) string {
	state := "idle"
	if loading {
		state = "loading"
	}
	if hasWarning {
		state = "warning"
	}
	main := "Ready"
	if status != "" {
		main = status
	} else if hasWarning {
		main = warning
	}
	stateLabel := th.StateIdle.Render("state")
	switch state {
	case "warning":
		stateLabel = th.StateWarn.Render("state")
	case "loading":
		stateLabel = th.StateLoad.Render("state")
	}
	return fmt.Sprintf("%s: %s | %s", stateLabel, state, th.MetaValue.Render(main))
}

func DrawerLines(items []string, cursor int, th tuitheme.Theme) []string {
	lines := make([]string, 0, len(items)+2)
	lines = append(lines, th.Section.Render("Menu"), "")
	for i, item := range items {
		marker := "  "
		if i == cursor {
			marker = "> "
		}
		lines = append(lines, th.RenderActiveLine(i == cursor, marker+item))
	}
	return lines
}
