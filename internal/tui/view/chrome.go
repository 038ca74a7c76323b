package view

import (
	"fmt"
	"strings"
	"time"

	tuitheme "github.com/feedterm/feedterm/internal/tui/theme"
)

const clockFormat = "15:04:05 / 2-Jan-2006 [Mon]"

// Header renders the top line: app name and version on the left, the
// loading spinner while sources are settling, wall clock on the right.
func Header(name, version, spinnerView string, loading bool, now time.Time, width int, th tuitheme.Theme) string {
	left := th.AppName.Render(name) + " " + th.AppVersion.Render(version)
	leftWidth := len(name) + 1 + len(version)
	if loading && spinnerView != "" {
		left += " " + spinnerView
		leftWidth += 2
	}

	clock := now.Format(clockFormat)
	gap := width - leftWidth - len(clock)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + th.Clock.Render(clock)
}

// Footer renders the bottom help line, plus the frame-rate readout and
// source failure count when enabled.
func Footer(inDetail, showFPS bool, fps float64, failedSources, width int, th tuitheme.Theme) string {
	help := "↑/↓/j/k move | enter expand | o open | g/G top/bottom | esc/q quit"
	if inDetail {
		help = "↑/↓/j/k scroll | g/G top/bottom | o open | esc close | q quit"
	}
	line := th.FooterHelp.Render(help)

	var right []string
	if failedSources > 0 {
		right = append(right, th.StatusError.Render(fmt.Sprintf("%d source(s) failed", failedSources)))
	}
	if showFPS {
		right = append(right, th.FPS.Render(fmt.Sprintf("%.0f fps", fps)))
	}
	if len(right) == 0 {
		return line
	}
	return line + "  " + strings.Join(right, "  ")
}

// NoFeedsScreen is shown instead of the list when the source list is
// empty: where the feeds file lives and what goes in it.
func NoFeedsScreen(feedsPath string, width, height int, th tuitheme.Theme) string {
	lines := []string{
		th.HelpHeading.Render("NO FEEDS FOUND"),
		"",
		th.HelpText.Render("Add feed URLs, one per line, to:"),
		th.HelpKey.Render(feedsPath),
		"",
		th.HelpText.Render("Lines that are not absolute URLs are ignored."),
		"",
		th.HelpKey.Render("q") + th.HelpText.Render(" quit"),
	}

	var b strings.Builder
	topPad := max(0, (height-len(lines))/2)
	for i := 0; i < topPad; i++ {
		b.WriteString("\n")
	}
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(centerLine(line, width))
	}
	return b.String()
}

func centerLine(line string, width int) string {
	visible := len(stripANSICodes(line))
	if pad := (width - visible) / 2; pad > 0 {
		return strings.Repeat(" ", pad) + line
	}
	return line
}

func stripANSICodes(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
