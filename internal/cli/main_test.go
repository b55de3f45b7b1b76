package cli

import (
	"os"
	"testing"

	"github.com/agbru/arraykit/internal/ui"
)

// Output assertions compare plain text, so colors stay off for the whole
// package.
func TestMain(m *testing.M) {
	ui.SetCurrentTheme(ui.NoColorTheme)
	os.Exit(m.Run())
}
