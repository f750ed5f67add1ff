package view

import (
	"strings"

	"github.com/glabrego/cinemas-cli/internal/rapidmock"
	tuitree "github.com/glabrego/cinemas-cli/internal/tui/tree"
)

type MyListRenderInput struct {
	Rows              []tuitree.Row
	Start             int
	End               int
	Cursor            int
	SectionCounts     map[rapidmock.Status]int
	CollapsedSections map[rapidmock.Status]bool

	RenderSectionLine func(label string, count int, active, collapsed bool) string
	RenderEntryLine   func(row tuitree.Row, active bool) string
	RenderEmptyLine   func(label string) string
}

func RenderMyListBody(in MyListRenderInput) string {
	if len(in.Rows) == 0 || in.Start >= in.End || in.Start < 0 {
		return ""
	}
	var b strings.Builder
	for i := in.Start; i < in.End && i < len(in.Rows); i++ {
		row := in.Rows[i]
		switch row.Kind {
		case tuitree.RowSection:
			b.WriteString(in.RenderSectionLine(row.Label, in.SectionCounts[row.Status], i == in.Cursor, in.CollapsedSections[row.Status]))
		case tuitree.RowEntry:
			b.WriteString(in.RenderEntryLine(row, i == in.Cursor))
		case tuitree.RowEmpty:
			b.WriteString(in.RenderEmptyLine(row.Label))
		}
		b.WriteString("\n")
	}
	return b.String()
}
