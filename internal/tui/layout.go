package tui

import (
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/feedterm/feedterm/internal/feed"
	"github.com/feedterm/feedterm/internal/tui/view"
)

// listLayout is the full table for one frame. before[i] is the sum of
// the heights of rows above i, so before[selected] is both the
// scrollbar position and the offset math for keeping the selection
// visible.
type listLayout struct {
	rows   []view.Row
	before []int
	total  int
}

// layoutList wraps every entry to the given column widths. Heights are
// recomputed from scratch each frame; entry lists are small enough
// that correctness beats caching here.
func layoutList(entries []feed.Entry, titleWidth, dateWidth int, now time.Time) listLayout {
	layout := listLayout{
		rows:   make([]view.Row, 0, len(entries)),
		before: make([]int, len(entries)),
	}
	for i, entry := range entries {
		row := view.Row{
			TitleLines: wrapPlain(entry.Title, titleWidth),
			Untitled:   !entry.HasTitle(),
			URLLine:    truncate(entry.URL, titleWidth),
			DateLines:  wrapPlain(humanize.RelTime(entry.PublishedAt, now, "ago", "from now"), dateWidth),
		}
		if i < len(entries)-1 {
			row.Margin = 1
		}
		left := len(row.TitleLines)
		if row.URLLine != "" {
			left++
		}
		row.Height = max(left, len(row.DateLines)) + row.Margin

		layout.before[i] = layout.total
		layout.rows = append(layout.rows, row)
		layout.total += row.Height
	}
	return layout
}

// scrollbarPosition is the number of terminal rows above the selected
// row, 0 when the first row is selected.
func (l listLayout) scrollbarPosition(selected int) int {
	if selected < 0 || selected >= len(l.before) {
		return 0
	}
	return l.before[selected]
}

// moveSelection applies a scroll delta with clamping. math.MinInt and
// math.MaxInt are the jump-to-first and jump-to-last sentinels; plain
// deltas saturate at the ends instead of wrapping.
func moveSelection(current, delta, n int) int {
	if n == 0 {
		return 0
	}
	switch delta {
	case math.MinInt:
		return 0
	case math.MaxInt:
		return n - 1
	}
	next := current + delta
	if next < 0 {
		return 0
	}
	if next >= n {
		return n - 1
	}
	return next
}

// adjustTop slides the first visible row so the selection stays fully
// inside a viewport of viewHeight terminal rows. Scrolling up snaps the
// top to the selection; scrolling down advances the top only as far as
// needed, one row at a time because row heights vary.
func (l listLayout) adjustTop(top, selected, viewHeight int) int {
	if len(l.rows) == 0 {
		return 0
	}
	if top > selected || top < 0 {
		return max(0, selected)
	}
	for top < selected {
		used := l.before[selected] - l.before[top] + l.rows[selected].ContentHeight()
		if used <= viewHeight {
			break
		}
		top++
	}
	return top
}

// wrapPlain wraps unstyled text at word boundaries, measuring in
// runes so multibyte titles never split mid-character.
func wrapPlain(text string, width int) []string {
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

func truncate(s string, width int) string {
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

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
