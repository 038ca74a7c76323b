package theme

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestDefaultStylesEmitCodes(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI)
	th := Default()

	for name, style := range map[string]lipgloss.Style{
		"AppName":    th.AppName,
		"EntryTitle": th.EntryTitle,
		"Untitled":   th.Untitled,
		"FooterHelp": th.FooterHelp,
	} {
		if got := style.Render("x"); !strings.Contains(got, "\x1b[") {
			t.Errorf("%s rendered unstyled: %q", name, got)
		}
	}
}
