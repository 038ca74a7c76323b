package theme

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha subset shared by the chrome and the body renderer,
// plus the warm white used for entry titles and the slate of the
// footer help line.
var (
	WarmWhite = lipgloss.Color("#e8e9f0")
	Slate     = lipgloss.Color("#64748b")
	Mauve     = lipgloss.Color("#cba6f7")
	Red       = lipgloss.Color("#f38ba8")
	Peach     = lipgloss.Color("#fab387")
	Yellow    = lipgloss.Color("#f9e2af")
	Green     = lipgloss.Color("#a6e3a1")
	Teal      = lipgloss.Color("#94e2d5")
	Blue      = lipgloss.Color("#89b4fa")
	Lavender  = lipgloss.Color("#b4befe")
	Subtext0  = lipgloss.Color("#a6adc8")
	Subtext1  = lipgloss.Color("#bac2de")
	Overlay0  = lipgloss.Color("#6c7086")
	Overlay1  = lipgloss.Color("#7f849c")
	Surface2  = lipgloss.Color("#585b70")
)

// Theme collects every style the list, detail view, and chrome use.
type Theme struct {
	AppName    lipgloss.Style
	AppVersion lipgloss.Style
	Clock      lipgloss.Style
	FooterHelp lipgloss.Style
	FPS        lipgloss.Style

	Selection    lipgloss.Style
	EntryTitle   lipgloss.Style
	Untitled     lipgloss.Style
	EntryURL     lipgloss.Style
	EntryDate    lipgloss.Style
	Scrollbar    lipgloss.Style
	Status       lipgloss.Style
	StatusError  lipgloss.Style
	HelpHeading  lipgloss.Style
	HelpKey      lipgloss.Style
	HelpText     lipgloss.Style
	DetailBorder lipgloss.Style
	DetailTitle  lipgloss.Style
	DetailAuthor lipgloss.Style
	DetailDate   lipgloss.Style
	DetailURL    lipgloss.Style
}

func Default() Theme {
	return Theme{
		AppName:    lipgloss.NewStyle().Bold(true).Foreground(Mauve),
		AppVersion: lipgloss.NewStyle().Foreground(Blue),
		Clock:      lipgloss.NewStyle().Foreground(Teal),
		FooterHelp: lipgloss.NewStyle().Foreground(Slate),
		FPS:        lipgloss.NewStyle().Foreground(Overlay0).Faint(true),

		Selection:    lipgloss.NewStyle().Bold(true).Foreground(Mauve),
		EntryTitle:   lipgloss.NewStyle().Bold(true).Foreground(WarmWhite),
		Untitled:     lipgloss.NewStyle().Faint(true).Italic(true).Foreground(Subtext0),
		EntryURL:     lipgloss.NewStyle().Faint(true).Foreground(Overlay0),
		EntryDate:    lipgloss.NewStyle().Foreground(Subtext0),
		Scrollbar:    lipgloss.NewStyle().Foreground(Surface2),
		Status:       lipgloss.NewStyle().Foreground(Subtext0),
		StatusError:  lipgloss.NewStyle().Foreground(Red),
		HelpHeading:  lipgloss.NewStyle().Bold(true).Foreground(Lavender),
		HelpKey:      lipgloss.NewStyle().Bold(true).Foreground(Teal),
		HelpText:     lipgloss.NewStyle().Foreground(Subtext0),
		DetailBorder: lipgloss.NewStyle().Foreground(Surface2),
		DetailTitle:  lipgloss.NewStyle().Bold(true).Foreground(WarmWhite),
		DetailAuthor: lipgloss.NewStyle().Italic(true).Foreground(Green),
		DetailDate:   lipgloss.NewStyle().Faint(true).Foreground(Subtext0),
		DetailURL:    lipgloss.NewStyle().Faint(true).Foreground(Blue),
	}
}
