// # Naming Conventions
//
// Functions in this package follow consistent naming patterns:
//
//   - Display* functions write formatted output to an [io.Writer].
//     Examples: [DisplayDemo], [DisplayProgress].
//   - Format* functions return a string without performing I/O.
//     Examples: [FormatSequence].
//   - Print* functions write configuration banners.
//     Examples: [PrintExecutionConfig].

package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/agbru/arraykit/internal/arrays"
	"github.com/agbru/arraykit/internal/format"
	"github.com/agbru/arraykit/internal/ui"
)

// DemoReport gathers the five demonstration outputs.
type DemoReport struct {
	Original     arrays.Sequence
	Merged       arrays.Sequence
	QuickSorted  arrays.Sequence
	LinearTarget int
	LinearIndex  int
	BinaryTarget int
	BinaryIndex  int
	// BinarySource names the searched sequence; empty means "Merge".
	BinarySource string
}

// FormatSequence renders a sequence as "[a, b, c]". Sequences longer than
// TruncationLimit keep DisplayEdges elements at each end around an
// ellipsis and note the total length. Absent sequences render as
// "<absent>".
func FormatSequence(seq arrays.Sequence) string {
	values, ok := seq.Get()
	if !ok || len(values) <= TruncationLimit {
		return seq.String()
	}
	itoa := func(v int, _ int) string { return strconv.Itoa(v) }
	head := lo.Map(values[:DisplayEdges], itoa)
	tail := lo.Map(values[len(values)-DisplayEdges:], itoa)
	return fmt.Sprintf("[%s, ..., %s] (%s elements)",
		strings.Join(head, ", "), strings.Join(tail, ", "), format.FormatInt(len(values)))
}

// DisplayDemo prints the demonstration lines in their fixed order.
func DisplayDemo(report DemoReport, out io.Writer) {
	fmt.Fprintf(out, "Original: %s\n", FormatSequence(report.Original))
	fmt.Fprintf(out, "Sorted (Merge): %s\n", FormatSequence(report.Merged))
	fmt.Fprintf(out, "Sorted (Quick in-place): %s\n", FormatSequence(report.QuickSorted))
	fmt.Fprintf(out, "Linear search of %d: index=%s\n", report.LinearTarget, formatIndex(report.LinearIndex))
	source := report.BinarySource
	if source == "" {
		source = "Merge"
	}
	fmt.Fprintf(out, "Binary search of %d in %s: index=%s\n", report.BinaryTarget, source, formatIndex(report.BinaryIndex))
}

func formatIndex(i int) string {
	if i == arrays.NotFound {
		return ui.Colorize(ui.ColorRed(), strconv.Itoa(i))
	}
	return ui.Colorize(ui.ColorGreen(), strconv.Itoa(i))
}
