// Package text flattens catalog descriptions, which may carry HTML markup,
// into wrapped plain-text lines for the terminal.
package text

import (
	"html"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	nethtml "golang.org/x/net/html"
)

// Plain returns raw with markup removed. Block elements and <br> become line
// breaks, runs of whitespace inside a line collapse to one space and blank
// lines are squeezed to at most one.
func Plain(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.ContainsAny(raw, "<&") {
		return normalizeLines(raw)
	}
	doc, err := nethtml.Parse(strings.NewReader("<html><body>" + raw + "</body></html>"))
	if err != nil {
		return normalizeLines(html.UnescapeString(raw))
	}
	body := findBody(doc)
	if body == nil {
		return normalizeLines(html.UnescapeString(raw))
	}
	var b strings.Builder
	writeNode(&b, body)
	return normalizeLines(b.String())
}

// Lines is Plain followed by Wrap.
func Lines(raw string, width int) []string {
	plain := Plain(raw)
	if plain == "" {
		return nil
	}
	return Wrap(plain, width)
}

func writeNode(b *strings.Builder, node *nethtml.Node) {
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case nethtml.TextNode:
			b.WriteString(child.Data)
		case nethtml.ElementNode:
			tag := strings.ToLower(child.Data)
			switch {
			case tag == "script" || tag == "style" || tag == "noscript":
				continue
			case tag == "br":
				b.WriteString("\n")
			case tag == "li":
				b.WriteString("\n\n• ")
				writeNode(b, child)
				b.WriteString("\n")
			case isBlockElement(tag):
				b.WriteString("\n\n")
				writeNode(b, child)
				b.WriteString("\n\n")
			default:
				writeNode(b, child)
			}
		}
	}
}

func normalizeLines(s string) string {
	parts := strings.Split(s, "\n")
	out := make([]string, 0, len(parts))
	prevBlank := true
	for _, part := range parts {
		line := strings.Join(strings.Fields(part), " ")
		blank := line == ""
		if blank && prevBlank {
			continue
		}
		out = append(out, line)
		prevBlank = blank
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}

// Wrap breaks text on word boundaries so no line is wider than width
// terminal cells. Words wider than width are split. Existing line breaks are
// kept.
func Wrap(text string, width int) []string {
	if width < 1 {
		return []string{text}
	}
	paragraphs := strings.Split(text, "\n")
	out := make([]string, 0, len(paragraphs))

	for _, p := range paragraphs {
		words := strings.Fields(p)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := ""
		lineWidth := 0
		for _, word := range words {
			for Width(word) > width {
				if line != "" {
					out = append(out, line)
					line, lineWidth = "", 0
				}
				head := splitWidth(word, width)
				out = append(out, head)
				word = word[len(head):]
			}
			wordWidth := Width(word)

			if line == "" {
				line, lineWidth = word, wordWidth
				continue
			}
			if lineWidth+1+wordWidth <= width {
				line += " " + word
				lineWidth += 1 + wordWidth
				continue
			}
			out = append(out, line)
			line, lineWidth = word, wordWidth
		}
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// splitWidth returns the longest prefix of word that fits in width cells.
// A lone character wider than width is returned on its own.
func splitWidth(word string, width int) string {
	if head := ansi.Truncate(word, width, ""); head != "" && strings.HasPrefix(word, head) {
		return head
	}
	_, size := utf8.DecodeRuneInString(word)
	return word[:size]
}

// Width reports the display width of s in terminal cells.
func Width(s string) int {
	return lipgloss.Width(s)
}

func isBlockElement(tag string) bool {
	switch tag {
	case "h1", "h2", "h3", "h4", "h5", "h6",
		"p", "div", "section", "article", "header", "footer",
		"blockquote", "ul", "ol", "table", "tr", "pre", "figure", "hr":
		return true
	default:
		return false
	}
}

func findBody(node *nethtml.Node) *nethtml.Node {
	if node == nil {
		return nil
	}
	if node.Type == nethtml.ElementNode && strings.EqualFold(node.Data, "body") {
		return node
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if found := findBody(child); found != nil {
			return found
		}
	}
	return nil
}
