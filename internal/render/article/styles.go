package article

import (
	"github.com/charmbracelet/lipgloss"

	tuitheme "github.com/feedterm/feedterm/internal/tui/theme"
)

// Body styles draw from the shared palette so the rendered content
// stays in the same family as the chrome around it.
var (
	headingText = lipgloss.NewStyle().Bold(true).Foreground(tuitheme.Lavender)
	headingBars = []lipgloss.Style{
		lipgloss.NewStyle().Bold(true).Foreground(tuitheme.Blue),
		lipgloss.NewStyle().Bold(true).Foreground(tuitheme.Mauve),
		lipgloss.NewStyle().Bold(true).Foreground(tuitheme.Teal),
		lipgloss.NewStyle().Bold(true).Foreground(tuitheme.Green),
		lipgloss.NewStyle().Bold(true).Foreground(tuitheme.Yellow),
		lipgloss.NewStyle().Bold(true).Foreground(tuitheme.Peach),
	}
	linkTarget   = lipgloss.NewStyle().Foreground(tuitheme.Blue).Faint(true)
	quoteBar     = lipgloss.NewStyle().Foreground(tuitheme.Overlay1)
	quoteText    = lipgloss.NewStyle().Italic(true).Foreground(tuitheme.Subtext0)
	captionText  = lipgloss.NewStyle().Italic(true).Foreground(tuitheme.Overlay0).Faint(true)
	inlineCode   = lipgloss.NewStyle().Foreground(tuitheme.Peach)
	tableFrame   = lipgloss.NewStyle().Foreground(tuitheme.Surface2)
	tableHeading = lipgloss.NewStyle().Bold(true).Foreground(tuitheme.Yellow)
	imageTag     = lipgloss.NewStyle().Foreground(tuitheme.Mauve).Faint(true).Italic(true)
	imageAlt     = lipgloss.NewStyle().Foreground(tuitheme.Subtext1).Italic(true)
)
