package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/arraykit/internal/arrays"
	"github.com/agbru/arraykit/internal/config"
	"github.com/agbru/arraykit/internal/metrics"
	"github.com/agbru/arraykit/internal/orchestration"
	"github.com/agbru/arraykit/internal/ui"
)

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// DefaultAlgo is the initial sorter key, or "all".
	DefaultAlgo string
	// Timeout bounds each sort command.
	Timeout time.Duration
	// Seed is used by "random" when no seed is given.
	Seed int64
	// CheckSorted makes "bfind" refuse a sequence that is not ascending.
	CheckSorted bool
	// Recorder, when set, receives sort and search observations.
	Recorder *metrics.Recorder
}

// REPL is an interactive session over a working sequence. "quick" sorts
// the working sequence in place; "sort" leaves it untouched and keeps the
// result for "bfind".
type REPL struct {
	config      REPLConfig
	factory     arrays.SorterFactory
	currentAlgo string
	seq         arrays.Sequence
	sorted      arrays.Sequence
	in          io.Reader
	out         io.Writer
}

// NewREPL creates a session whose working sequence is a copy of initial.
func NewREPL(factory arrays.SorterFactory, initial []int, config REPLConfig) *REPL {
	algo := config.DefaultAlgo
	if algo == "" {
		algo = orchestration.AllSorters
	}
	if config.Timeout <= 0 {
		config.Timeout = time.Minute
	}
	return &REPL{
		config:      config,
		factory:     factory,
		currentAlgo: algo,
		seq:         arrays.Some(initial).Clone(),
		sorted:      arrays.None(),
		in:          os.Stdin,
		out:         os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start reads and executes commands until "exit" or end of input.
func (r *REPL) Start() {
	fmt.Fprintf(r.out, "%s\n", ui.Colorize(ui.ColorBold(), "arraykit interactive mode"))
	r.printHelp()
	fmt.Fprintln(r.out)

	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, ui.Colorize(ui.ColorGreen(), "arraykit> "))
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
				fmt.Fprintf(r.out, "\n%s\n", ui.Colorize(ui.ColorRed(), "Read error: "+err.Error()))
			}
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !r.processCommand(line) {
			return
		}
	}
}

func (r *REPL) printHelp() {
	cmds := []struct{ usage, desc string }{
		{"load <ints>", "Replace the working sequence"},
		{"random <n> [seed]", "Generate n pseudo-random integers"},
		{"sort [sorter]", "Sort a copy with the current or given sorter (" + r.algoList() + ")"},
		{"quick", "Quicksort the working sequence in place"},
		{"find <value>", "Linear search in the working sequence"},
		{"bfind <value>", "Binary search in the last sorted result"},
		{"show", "Display the working sequence and last result"},
		{"algo <sorter>", "Change the current sorter"},
		{"help", "Display this help"},
		{"exit", "Leave interactive mode"},
	}
	fmt.Fprintf(r.out, "%s\n", ui.Colorize(ui.ColorBold(), "Available commands:"))
	for _, c := range cmds {
		fmt.Fprintf(r.out, "  %s%s - %s\n", ui.Colorize(ui.ColorYellow(), c.usage), padRight("", 18-len(c.usage)), c.desc)
	}
}

func (r *REPL) algoList() string {
	return strings.Join(append(r.factory.List(), orchestration.AllSorters), ", ")
}

func (r *REPL) errorf(format string, args ...any) {
	fmt.Fprintln(r.out, ui.Colorize(ui.ColorRed(), fmt.Sprintf(format, args...)))
}

// processCommand executes one line and reports whether to continue.
func (r *REPL) processCommand(line string) bool {
	parts := strings.Fields(line)
	cmd, args := strings.ToLower(parts[0]), parts[1:]

	switch cmd {
	case "load", "l":
		r.cmdLoad(args)
	case "random", "rand":
		r.cmdRandom(args)
	case "sort", "s":
		r.cmdSort(args)
	case "quick":
		r.cmdQuick()
	case "find", "f":
		r.cmdFind(args, false)
	case "bfind", "bf":
		r.cmdFind(args, true)
	case "show":
		r.cmdShow()
	case "algo", "a":
		r.cmdAlgo(args)
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintln(r.out, ui.Colorize(ui.ColorGreen(), "Goodbye!"))
		return false
	default:
		r.errorf("Unknown command: %s", cmd)
		fmt.Fprintf(r.out, "Type %s to see available commands.\n", ui.Colorize(ui.ColorYellow(), "help"))
	}
	return true
}

func (r *REPL) setSequence(values []int) {
	r.seq = arrays.Some(values)
	r.sorted = arrays.None()
	fmt.Fprintf(r.out, "Loaded %d elements: %s\n", len(values), FormatSequence(r.seq))
}

func (r *REPL) cmdLoad(args []string) {
	values, err := config.ParseIntList(strings.Join(args, " "))
	if err != nil {
		r.errorf("Invalid sequence: %v", err)
		return
	}
	r.setSequence(values)
}

func (r *REPL) cmdRandom(args []string) {
	if len(args) == 0 {
		r.errorf("Usage: random <n> [seed]")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		r.errorf("Invalid length: %s", args[0])
		return
	}
	seed := r.config.Seed
	if len(args) > 1 {
		if seed, err = strconv.ParseInt(args[1], 10, 64); err != nil {
			r.errorf("Invalid seed: %s", args[1])
			return
		}
	}
	r.setSequence(config.GenerateSequence(n, seed))
}

func (r *REPL) cmdSort(args []string) {
	algo := r.currentAlgo
	if len(args) > 0 {
		algo = strings.ToLower(args[0])
	}
	sorters := orchestration.GetSortersToRun(algo, r.factory)
	if len(sorters) == 0 {
		r.errorf("Unknown sorter: %s (available: %s)", algo, r.algoList())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()
	opts := orchestration.ExecOptions{Recorder: r.config.Recorder}
	results := orchestration.ExecuteSorts(ctx, sorters, r.seq, opts, orchestration.NullProgressReporter{}, r.out)

	presenter := CLIResultPresenter{}
	code := orchestration.AnalyzeComparisonResults(results, orchestration.PresentationOptions{Input: r.seq}, presenter, presenter, r.out)
	if code != 0 {
		return
	}
	r.sorted = results[0].Result
	fmt.Fprintf(r.out, "Sorted: %s\n\n", FormatSequence(r.sorted))
}

func (r *REPL) cmdQuick() {
	start := time.Now()
	arrays.QuickSortInPlace(r.seq)
	if r.config.Recorder != nil {
		values, _ := r.seq.Get()
		r.config.Recorder.ObserveSort(arrays.QuickSorter{}.Key(), len(values), time.Since(start))
	}
	r.sorted = r.seq.Clone()
	fmt.Fprintf(r.out, "Working sequence sorted in place: %s\n", FormatSequence(r.seq))
}

func (r *REPL) cmdFind(args []string, binary bool) {
	name := "find"
	if binary {
		name = "bfind"
	}
	if len(args) != 1 {
		r.errorf("Usage: %s <value>", name)
		return
	}
	target, err := strconv.Atoi(args[0])
	if err != nil {
		r.errorf("Invalid value: %s", args[0])
		return
	}

	kind, index := "linear", 0
	if binary {
		if r.sorted.IsNone() {
			r.sorted = arrays.MergeSort(r.seq)
		}
		if r.config.CheckSorted && !arrays.IsSortedAscending(r.sorted) {
			r.errorf("Sorted sequence is not in ascending order: %s", FormatSequence(r.sorted))
			return
		}
		kind, index = "binary", arrays.BinarySearch(r.sorted, target)
	} else {
		index = arrays.LinearSearch(r.seq, target)
	}
	if r.config.Recorder != nil {
		r.config.Recorder.ObserveSearch(kind, index)
	}
	fmt.Fprintf(r.out, "%s search of %d: index=%s\n", strings.ToUpper(kind[:1])+kind[1:], target, formatIndex(index))
}

func (r *REPL) cmdShow() {
	fmt.Fprintf(r.out, "Sorter:  %s\n", ui.Colorize(ui.ColorCyan(), r.currentAlgo))
	fmt.Fprintf(r.out, "Working: %s\n", FormatSequence(r.seq))
	if !r.sorted.IsNone() {
		fmt.Fprintf(r.out, "Sorted:  %s\n", FormatSequence(r.sorted))
	}
}

func (r *REPL) cmdAlgo(args []string) {
	if len(args) == 0 {
		r.errorf("Usage: algo <sorter>")
		fmt.Fprintf(r.out, "Available sorters: %s\n", r.algoList())
		return
	}
	key := strings.ToLower(args[0])
	if key != orchestration.AllSorters {
		if _, err := r.factory.Get(key); err != nil {
			r.errorf("Unknown sorter: %s", key)
			fmt.Fprintf(r.out, "Available sorters: %s\n", r.algoList())
			return
		}
	}
	r.currentAlgo = key
	fmt.Fprintf(r.out, "Sorter changed to: %s\n", ui.Colorize(ui.ColorGreen(), key))
}
