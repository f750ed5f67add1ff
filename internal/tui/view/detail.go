package view

import (
	"strconv"
	"strings"

	"github.com/glabrego/cinemas-cli/internal/rapidmock"
	"github.com/glabrego/cinemas-cli/internal/render/text"
)

type WrapFunc func(string, int) []string

func DetailMetaLines(movie rapidmock.MovieDetails, width int, wrap WrapFunc) []string {
	title := strings.TrimSpace(movie.Title)
	if title == "" {
		title = "(untitled)"
	}
	lines := make([]string, 0, 16)
	lines = append(lines, wrap(title, width)...)
	lines = append(lines, strings.Repeat("=", max(1, min(width, text.Width(title)))))
	lines = append(lines, "")

	lines = append(lines, wrap("Type: "+orDash(movie.Type), width)...)
	lines = append(lines, "Rating: "+strconv.FormatFloat(movie.Rating, 'f', -1, 64))
	lines = append(lines, wrap("Release Date: "+orDash(movie.ReleaseDate), width)...)
	lines = append(lines, wrap("Genre: "+orDash(strings.Join(movie.Genre, ", ")), width)...)
	if movie.PosterURL != "" {
		lines = append(lines, wrap("Poster: "+movie.PosterURL, width)...)
	}
	return lines
}

// DetailLines is the metadata block followed by the flattened description,
// indented by horizontalMargin.
func DetailLines(movie rapidmock.MovieDetails, contentWidth, horizontalMargin int, wrap WrapFunc) []string {
	lines := DetailMetaLines(movie, contentWidth, wrap)
	if description := text.Lines(movie.Description, contentWidth); len(description) > 0 {
		lines = append(lines, "")
		lines = append(lines, description...)
	}
	return leftPadLines(lines, horizontalMargin)
}

func DetailMaxTop(linesLen, bodyHeight int) int {
	maxTop := linesLen - bodyHeight
	if maxTop < 0 {
		return 0
	}
	return maxTop
}

func RenderDetailLines(lines []string, top, maxLines int) string {
	if len(lines) == 0 {
		return ""
	}
	if top < 0 {
		top = 0
	}
	if top > len(lines)-1 {
		top = len(lines) - 1
	}
	end := len(lines)
	if maxLines > 0 && top+maxLines < end {
		end = top + maxLines
	}
	return strings.Join(lines[top:end], "\n") + "\n"
}

func leftPadLines(lines []string, padding int) []string {
	if padding <= 0 || len(lines) == 0 {
		return lines
	}
	prefix := strings.Repeat(" ", padding)
	out := make([]string, len(lines))
	for i, line := range lines {
		if line == "" {
			continue
		}
		out[i] = prefix + line
	}
	return out
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
