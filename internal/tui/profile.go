package tui

import (
	"strings"
)

func (m Model) profileView() string {
	lines := []string{
		m.theme.Title.Render("Welcome To Your Profile"),
		"",
		m.theme.MetaLabel.Render("API") + " " + m.theme.MetaValue.Render(orDash(m.profile.APIBaseURL)),
		m.theme.MetaLabel.Render("Log file") + " " + m.theme.MetaValue.Render(orDash(m.profile.LogFile)),
	}
	return strings.Join(lines, "\n") + "\n"
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
