package view

import (
	"strings"
	"unicode/utf8"

	tuitheme "github.com/feedterm/feedterm/internal/tui/theme"
)

// Row is one list entry laid out for the current width: wrapped title
// lines, the source URL as its own dim line, and the wrapped relative
// date for the right column. Height includes the bottom Margin.
type Row struct {
	TitleLines []string
	Untitled   bool
	URLLine    string
	DateLines  []string
	Height     int
	Margin     int
}

func (r Row) ContentHeight() int {
	return r.Height - r.Margin
}

const selectionMarker = ">> "

// ListInput is everything RenderListBody needs for one frame.
type ListInput struct {
	Rows        []Row
	Selected    int
	Top         int
	Height      int
	TitleWidth  int
	DateWidth   int
	ScrollPos   int
	TotalHeight int
}

// RenderListBody renders the visible slice of the entry table, from
// the Top row down, truncated to Height terminal lines, with the
// scrollbar gutter on the right.
func RenderListBody(in ListInput, th tuitheme.Theme) string {
	if len(in.Rows) == 0 || in.Height < 1 || in.Top < 0 || in.Top >= len(in.Rows) {
		return ""
	}

	thumb := scrollThumbLine(in.ScrollPos, in.TotalHeight, in.Height)
	var b strings.Builder
	lineNo := 0

	for i := in.Top; i < len(in.Rows) && lineNo < in.Height; i++ {
		row := in.Rows[i]
		for j := 0; j < row.Height && lineNo < in.Height; j++ {
			if lineNo > 0 {
				b.WriteString("\n")
			}
			b.WriteString(renderRowLine(row, j, i == in.Selected, in.TitleWidth, in.DateWidth, th))
			b.WriteString(scrollbarCell(lineNo, thumb, th))
			lineNo++
		}
	}
	return b.String()
}

func renderRowLine(row Row, line int, selected bool, titleWidth, dateWidth int, th tuitheme.Theme) string {
	if line >= row.ContentHeight() {
		return strings.Repeat(" ", len(selectionMarker)+titleWidth+2+dateWidth+1)
	}

	marker := strings.Repeat(" ", len(selectionMarker))
	if selected && line == 0 {
		marker = th.Selection.Render(selectionMarker)
	}

	var title string
	switch {
	case line < len(row.TitleLines):
		if row.Untitled {
			title = th.Untitled.Render(padRight("untitled", titleWidth))
		} else {
			title = th.EntryTitle.Render(padRight(row.TitleLines[line], titleWidth))
		}
	case line == len(row.TitleLines) && row.URLLine != "":
		title = th.EntryURL.Render(padRight(row.URLLine, titleWidth))
	default:
		title = strings.Repeat(" ", titleWidth)
	}

	date := strings.Repeat(" ", dateWidth)
	if line < len(row.DateLines) {
		date = th.EntryDate.Render(padLeft(row.DateLines[line], dateWidth))
	}

	return marker + title + "  " + date + " "
}

// scrollThumbLine maps the scroll position to the viewport line the
// thumb occupies, -1 when the whole list fits.
func scrollThumbLine(pos, total, height int) int {
	if total <= height || height < 1 {
		return -1
	}
	limit := total - 1
	if limit < 1 {
		return 0
	}
	line := pos * (height - 1) / limit
	if line >= height {
		line = height - 1
	}
	return line
}

func scrollbarCell(line, thumb int, th tuitheme.Theme) string {
	if thumb < 0 {
		return " "
	}
	if line == thumb {
		return th.Scrollbar.Render("▐")
	}
	return " "
}

func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func padLeft(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}
