package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/arraykit/internal/arrays"
	"github.com/agbru/arraykit/internal/config"
	"github.com/agbru/arraykit/internal/format"
	"github.com/agbru/arraykit/internal/ui"
)

// PrintExecutionConfig prints the input source, search targets, timeout
// and runtime environment.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	source := "from --input"
	if cfg.Size > 0 {
		source = fmt.Sprintf("generated with seed %d", cfg.Seed)
	}
	fmt.Fprintf(out, "Sorting %s integers (%s) with a timeout of %s.\n",
		ui.Colorize(ui.ColorMagenta(), format.FormatInt(len(cfg.Input))), source, ui.Colorize(ui.ColorYellow(), cfg.Timeout.String()))
	fmt.Fprintf(out, "Search targets: linear=%s, binary=%s.\n",
		ui.Colorize(ui.ColorCyan(), fmt.Sprint(cfg.LinearTarget)), ui.Colorize(ui.ColorCyan(), fmt.Sprint(cfg.BinaryTarget)))
	fmt.Fprintf(out, "Environment: Go %s on %s/%s.\n",
		ui.Colorize(ui.ColorCyan(), runtime.Version()), runtime.GOOS, runtime.GOARCH)
}

// PrintExecutionMode prints whether one sorter runs or several are compared.
func PrintExecutionMode(sorters []arrays.Sorter, out io.Writer) {
	var modeDesc string
	switch len(sorters) {
	case 0:
		modeDesc = "no sorter selected"
	case 1:
		modeDesc = "single run with " + ui.Colorize(ui.ColorGreen(), sorters[0].Name())
	default:
		modeDesc = fmt.Sprintf("comparison of %d sorters", len(sorters))
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
