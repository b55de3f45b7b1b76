package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/arraykit/internal/ui"
)

// Style variables for the dashboard, rebuilt from the ui theme by
// initTUIStyles.
var (
	panelStyle      lipgloss.Style
	headerStyle     lipgloss.Style
	titleStyle      lipgloss.Style
	dimStyle        lipgloss.Style
	elapsedStyle    lipgloss.Style
	labelStyle      lipgloss.Style
	valueStyle      lipgloss.Style
	barStyle        lipgloss.Style
	barEmptyStyle   lipgloss.Style
	successStyle    lipgloss.Style
	warningStyle    lipgloss.Style
	errorStyle      lipgloss.Style
	sparklineStyle  lipgloss.Style
	promptStyle     lipgloss.Style
	statusDoneStyle lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all styles from the current ui palette.
// Run calls it again once the app has picked a theme.
func initTUIStyles() {
	p := ui.CurrentTUIPalette()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Foreground(p.Text).
		Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent)

	dimStyle = lipgloss.NewStyle().Foreground(p.Dim)
	elapsedStyle = lipgloss.NewStyle().Foreground(p.Accent)
	labelStyle = lipgloss.NewStyle().Foreground(p.Dim)
	valueStyle = lipgloss.NewStyle().Foreground(p.Text).Bold(true)
	barStyle = lipgloss.NewStyle().Foreground(p.Accent)
	barEmptyStyle = lipgloss.NewStyle().Foreground(p.Dim)
	successStyle = lipgloss.NewStyle().Foreground(p.Success)
	warningStyle = lipgloss.NewStyle().Foreground(p.Warning)
	errorStyle = lipgloss.NewStyle().Foreground(p.Error)
	sparklineStyle = lipgloss.NewStyle().Foreground(p.Accent)
	promptStyle = lipgloss.NewStyle().Foreground(p.Accent).Bold(true)

	statusDoneStyle = lipgloss.NewStyle().
		Foreground(p.Success).
		Bold(true)
}
