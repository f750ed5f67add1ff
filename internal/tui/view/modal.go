package view

import (
	tuitheme "github.com/glabrego/cinemas-cli/internal/tui/theme"
)

const maxModalWidth = 50

// RenderModal draws an acknowledgment box with a dismiss hint.
func RenderModal(title, body string, isError bool, width int, th tuitheme.Theme) string {
	style := th.ModalSuccess
	if isError {
		style = th.ModalError
	}
	inner := maxModalWidth
	if width > 0 && width-6 < inner {
		inner = max(10, width-6)
	}
	content := th.Title.Render(title) + "\n\n" + body + "\n\n" + th.MetaLabel.Render("enter/esc: ok")
	return style.Width(inner).Render(content)
}
