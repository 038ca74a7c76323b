package view

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/feedterm/feedterm/internal/feed"
	tuitheme "github.com/feedterm/feedterm/internal/tui/theme"
)

// DetailInput is the expanded entry plus its already wrapped body
// slice for the current offset.
type DetailInput struct {
	Entry      feed.Entry
	BodyLines  []string
	Offset     int
	TotalLines int
	Width      int
	BodyHeight int
	Now        time.Time
}

// DetailWrapWidth is the body wrap width for a given terminal width:
// the frame border, padding, and scrollbar gutter come off first.
func DetailWrapWidth(termWidth int) int {
	w := termWidth - 2 - 4 - 2
	if w < 1 {
		w = 1
	}
	return w
}

// RenderDetail draws the expanded entry: a rounded border around the
// header (title, authors, date, URL) and the scrolled body slice.
func RenderDetail(in DetailInput, th tuitheme.Theme) string {
	innerWidth := in.Width - 2 - 4
	if innerWidth < 1 {
		innerWidth = 1
	}

	var lines []string
	title := in.Entry.Title
	if !in.Entry.HasTitle() {
		lines = append(lines, th.Untitled.Render("untitled"))
	} else {
		for _, line := range wrapRunes(title, innerWidth) {
			lines = append(lines, th.DetailTitle.Render(line))
		}
	}
	if len(in.Entry.Authors) > 0 {
		lines = append(lines, th.DetailAuthor.Render("by "+strings.Join(in.Entry.Authors, ", ")))
	}
	lines = append(lines, th.DetailDate.Render(
		humanize.RelTime(in.Entry.PublishedAt, in.Now, "ago", "from now")+
			"  ("+in.Entry.PublishedAt.Format("15:04:05 / 2-Jan-2006 [Mon]")+")"))
	if in.Entry.URL != "" {
		lines = append(lines, th.DetailURL.Render(truncateRunes(in.Entry.URL, innerWidth)))
	}
	lines = append(lines, "")

	thumb := bodyThumbLine(in.Offset, in.TotalLines, in.BodyHeight)
	if len(in.BodyLines) == 0 {
		lines = append(lines, th.Untitled.Render("no content"))
	}
	for i, line := range in.BodyLines {
		lines = append(lines, line+" "+scrollbarCell(i, thumb, th))
	}

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.DetailBorder.GetForeground()).
		Padding(0, 2).
		Width(in.Width - 2)
	return frame.Render(strings.Join(lines, "\n"))
}

// bodyThumbLine maps the scroll offset onto the visible body rows.
// The offset tops out at total-height, so the thumb is scaled against
// that span to reach the last row exactly when scrolled to the end.
func bodyThumbLine(offset, total, height int) int {
	span := total - height
	if span <= 0 || height < 1 {
		return -1
	}
	if offset >= span {
		return height - 1
	}
	if offset < 0 {
		offset = 0
	}
	if height == 1 {
		return 0
	}
	return offset * (height - 1) / span
}

// wrapRunes wraps at word boundaries with widths measured in runes,
// hard-splitting overlong words on rune boundaries.
func wrapRunes(text string, width int) []string {
	if width < 1 {
		return []string{text}
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	out := make([]string, 0, 2)
	line := ""
	lineLen := 0
	for _, word := range words {
		runes := []rune(word)
		for len(runes) > width {
			if line != "" {
				out = append(out, line)
				line = ""
				lineLen = 0
			}
			out = append(out, string(runes[:width]))
			runes = runes[width:]
		}
		word = string(runes)
		switch {
		case line == "":
			line = word
			lineLen = len(runes)
		case lineLen+1+len(runes) <= width:
			line += " " + word
			lineLen += 1 + len(runes)
		default:
			out = append(out, line)
			line = word
			lineLen = len(runes)
		}
	}
	if line != "" {
		out = append(out, line)
	}
	return out
}

func truncateRunes(s string, width int) string {
	if width < 1 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
