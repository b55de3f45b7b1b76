package ui

import (
	"os"
	"slices"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

// Theme is an ANSI color scheme for line-oriented output.
type Theme struct {
	Name      string
	Primary   string // headings, sorter names
	Secondary string // labels, dimmed text
	Success   string
	Warning   string
	Error     string
	Info      string
	Bold      string
	Underline string
	Reset     string
}

func ansiTheme(name, primary, secondary, success, warning, errColor, info string) Theme {
	return Theme{
		Name:      name,
		Primary:   "\033[38;5;" + primary + "m",
		Secondary: "\033[38;5;" + secondary + "m",
		Success:   "\033[38;5;" + success + "m",
		Warning:   "\033[38;5;" + warning + "m",
		Error:     "\033[38;5;" + errColor + "m",
		Info:      "\033[38;5;" + info + "m",
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}
}

var (
	// DarkTheme suits dark terminal backgrounds.
	DarkTheme = ansiTheme("dark", "39", "245", "82", "220", "196", "141")
	// LightTheme uses darker tones for light backgrounds.
	LightTheme = ansiTheme("light", "27", "240", "28", "130", "124", "54")
	// OrangeTheme matches the TUI palette.
	OrangeTheme = ansiTheme("orange", "208", "245", "82", "214", "196", "69")
	// NoColorTheme emits no escape codes at all.
	NoColorTheme = Theme{Name: "none"}

	themes = map[string]Theme{
		DarkTheme.Name:    DarkTheme,
		LightTheme.Name:   LightTheme,
		OrangeTheme.Name:  OrangeTheme,
		NoColorTheme.Name: NoColorTheme,
	}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// ThemeNames returns the registered theme names in sorted order.
func ThemeNames() []string {
	names := lo.Keys(themes)
	slices.Sort(names)
	return names
}

// TUIPalette holds the lipgloss colors used by the dashboard.
type TUIPalette struct {
	Text    lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
}

var (
	// DarkTUIPalette is the default orange-on-black dashboard palette.
	DarkTUIPalette = TUIPalette{
		Text:    lipgloss.Color("#E0E0E0"),
		Border:  lipgloss.Color("#FF6600"),
		Accent:  lipgloss.Color("#FF8C00"),
		Success: lipgloss.Color("#9ece6a"),
		Warning: lipgloss.Color("#FFB347"),
		Error:   lipgloss.Color("#FF4444"),
		Dim:     lipgloss.Color("#666666"),
	}

	// NoColorTUIPalette renders with the terminal's default colors.
	NoColorTUIPalette = TUIPalette{
		Text:    lipgloss.NoColor{},
		Border:  lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Dim:     lipgloss.NoColor{},
	}
)

// CurrentTUIPalette returns the palette matching the active theme.
func CurrentTUIPalette() TUIPalette {
	if GetCurrentTheme().Name == NoColorTheme.Name {
		return NoColorTUIPalette
	}
	return DarkTUIPalette
}

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme. Tests use it to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme activates a theme by name and reports whether the name was
// known. Unknown names select DarkTheme.
func SetTheme(name string) bool {
	t, ok := themes[name]
	if !ok {
		t = DarkTheme
	}
	SetCurrentTheme(t)
	return ok
}

// InitTheme picks the startup theme. Colors are disabled by noColor or by a
// NO_COLOR environment variable (https://no-color.org/); otherwise
// ARRAYKIT_THEME may name a theme, defaulting to dark.
func InitTheme(noColor bool) {
	if noColor {
		SetCurrentTheme(NoColorTheme)
		return
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetTheme(os.Getenv("ARRAYKIT_THEME"))
}
