package theme

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestStyleTitle_ByType(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI)
	th := Default()

	for _, itemType := range []string{"Movie", "series", "Show", "Documentary", ""} {
		got := th.StyleTitle(itemType, "Heat")
		if !strings.Contains(got, "\x1b[") {
			t.Fatalf("expected styled title for type %q, got %q", itemType, got)
		}
		if !strings.Contains(got, "Heat") {
			t.Fatalf("expected title text kept for type %q, got %q", itemType, got)
		}
	}

	if got := th.StyleTitle("Movie", ""); got != "" {
		t.Fatalf("expected empty title to stay empty, got %q", got)
	}
}

func TestRenderActiveLine(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI)
	th := Default()

	if got := th.RenderActiveLine(false, "plain"); got != "plain" {
		t.Fatalf("expected inactive line untouched, got %q", got)
	}
	if got := th.RenderActiveLine(true, "active"); !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected active line styled, got %q", got)
	}
}
