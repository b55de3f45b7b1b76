package ui

import (
	"os"
	"slices"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// Theme state is global, so these tests do not run in parallel.

func restoreTheme(t *testing.T) {
	t.Helper()
	saved := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(saved) })
}

func TestSetTheme(t *testing.T) {
	restoreTheme(t)

	for _, name := range []string{"dark", "light", "orange", "none"} {
		if !SetTheme(name) {
			t.Errorf("SetTheme(%q) reported unknown", name)
		}
		if got := GetCurrentTheme().Name; got != name {
			t.Errorf("after SetTheme(%q), current = %q", name, got)
		}
	}

	if SetTheme("solarized") {
		t.Error("SetTheme(solarized) reported known")
	}
	if got := GetCurrentTheme().Name; got != "dark" {
		t.Errorf("unknown theme should fall back to dark, got %q", got)
	}
}

func TestThemeNames(t *testing.T) {
	want := []string{"dark", "light", "none", "orange"}
	if got := ThemeNames(); !slices.Equal(got, want) {
		t.Errorf("ThemeNames() = %v, want %v", got, want)
	}
}

func TestInitTheme(t *testing.T) {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		t.Skip("NO_COLOR is set in the test environment")
	}
	restoreTheme(t)

	InitTheme(true)
	if GetCurrentTheme().Name != "none" {
		t.Error("--no-color should select the none theme")
	}

	t.Setenv("ARRAYKIT_THEME", "light")
	InitTheme(false)
	if GetCurrentTheme().Name != "light" {
		t.Errorf("ARRAYKIT_THEME=light selected %q", GetCurrentTheme().Name)
	}

	t.Setenv("NO_COLOR", "")
	InitTheme(false)
	if GetCurrentTheme().Name != "none" {
		t.Error("NO_COLOR should disable colors even when empty")
	}
}

func TestColorFunctions(t *testing.T) {
	restoreTheme(t)

	SetCurrentTheme(NoColorTheme)
	for _, fn := range []func() string{ColorReset, ColorRed, ColorGreen, ColorYellow, ColorBlue, ColorMagenta, ColorCyan, ColorBold, ColorUnderline, ColorDim} {
		if fn() != "" {
			t.Fatal("no-color theme must not emit escape codes")
		}
	}
	if got := Colorize(ColorRed(), "x"); got != "x" {
		t.Errorf("Colorize without color = %q", got)
	}

	SetCurrentTheme(DarkTheme)
	if ColorRed() != "\033[38;5;196m" {
		t.Errorf("ColorRed() = %q", ColorRed())
	}
	if got := Colorize(ColorGreen(), "ok"); got != "\033[38;5;82mok\033[0m" {
		t.Errorf("Colorize = %q", got)
	}
}

func TestCurrentTUIPalette(t *testing.T) {
	restoreTheme(t)

	SetCurrentTheme(NoColorTheme)
	if _, ok := CurrentTUIPalette().Accent.(lipgloss.NoColor); !ok {
		t.Error("no-color theme should yield a NoColor palette")
	}
	SetCurrentTheme(OrangeTheme)
	if CurrentTUIPalette().Accent != DarkTUIPalette.Accent {
		t.Error("colored themes should yield the dark palette")
	}
}
