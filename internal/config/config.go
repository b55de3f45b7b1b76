// Package config defines the application configuration, its command-line
// flags, environment variable overrides and validation.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/arraykit/internal/errors"
)

// EnvPrefix is prepended to every environment variable read by this package.
const EnvPrefix = "ARRAYKIT_"

// Default values reproduce the reference demonstration.
const (
	DefaultInput        = "7,3,9,1,5,8,2"
	DefaultLinearInput  = "10,50,20"
	DefaultLinearTarget = 20
	DefaultBinaryTarget = 8
	DefaultAlgo         = "all"
	DefaultSeed         = 42
	DefaultTimeout      = time.Minute
)

// SupportedShells lists the accepted --completion values.
var SupportedShells = []string{"bash", "zsh", "fish"}

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// InputList is the raw comma/space separated input sequence.
	InputList string
	// Input is InputList parsed, or a generated sequence when Size > 0.
	Input []int
	// Size, when positive, replaces Input with Size pseudo-random integers.
	Size int
	// Seed drives the pseudo-random generator used when Size > 0.
	Seed int64
	// Algo selects the sorter to run: a registered key or "all".
	Algo string

	// LinearInputList is the raw sequence scanned by the linear search demo.
	LinearInputList string
	// LinearInput is LinearInputList parsed.
	LinearInput []int
	// LinearTarget is the value searched for in LinearInput.
	LinearTarget int
	// BinaryInputList is the raw sequence searched by the binary search.
	// When blank the merge-sorted Input is searched instead.
	BinaryInputList string
	// BinaryInput is BinaryInputList parsed, or nil when it is blank.
	BinaryInput []int
	// BinaryTarget is the value searched for by the binary search.
	BinaryTarget int
	// CheckSorted rejects sorter outputs and a binary search input that are
	// not in ascending order.
	CheckSorted bool

	// Timeout bounds the whole run.
	Timeout time.Duration
	// Quiet limits output to the demonstration lines.
	Quiet bool
	// Verbose enables debug logging and memory statistics.
	Verbose bool
	// NoColor disables ANSI colors.
	NoColor bool
	// Metrics prints the Prometheus text exposition after the run.
	Metrics bool
	// TUI launches the interactive dashboard.
	TUI bool
	// Interactive launches the line-oriented REPL.
	Interactive bool
	// Completion, when set, prints a shell completion script and exits.
	Completion string
}

// ParseConfig parses command-line arguments, applies ARRAYKIT_* environment
// overrides for flags that were not set explicitly, resolves the input
// sequences and validates the result.
//
// Parameters:
//   - programName: The program name used in usage output.
//   - args: The command-line arguments, without the program name.
//   - errWriter: Destination for usage and flag errors.
//   - availableAlgos: Registered sorter keys accepted by --algo.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when help was requested, or a ConfigError.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	cfg := AppConfig{}
	fs.StringVar(&cfg.InputList, "input", DefaultInput, "Sequence to sort (comma or space separated integers).")
	fs.IntVar(&cfg.Size, "size", 0, "Generate a pseudo-random sequence of this length instead of --input.")
	fs.Int64Var(&cfg.Seed, "seed", DefaultSeed, "Seed for --size.")
	fs.StringVar(&cfg.Algo, "algo", DefaultAlgo, fmt.Sprintf("Sorter to run: %s or all.", strings.Join(availableAlgos, ", ")))
	fs.StringVar(&cfg.LinearInputList, "linear-input", DefaultLinearInput, "Sequence scanned by the linear search.")
	fs.IntVar(&cfg.LinearTarget, "linear-target", DefaultLinearTarget, "Value searched by the linear search.")
	fs.StringVar(&cfg.BinaryInputList, "binary-input", "", "Ascending sequence searched by the binary search (default: the merge-sorted --input).")
	fs.IntVar(&cfg.BinaryTarget, "target", DefaultBinaryTarget, "Value searched by the binary search.")
	fs.IntVar(&cfg.BinaryTarget, "t", DefaultBinaryTarget, "Shorthand for --target.")
	fs.BoolVar(&cfg.CheckSorted, "check-sorted", false, "Fail when a sorter output or --binary-input is not ascending.")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "Maximum execution time.")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Print only the demonstration lines.")
	fs.BoolVar(&cfg.Quiet, "q", false, "Shorthand for --quiet.")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Enable debug logs and memory statistics.")
	fs.BoolVar(&cfg.Verbose, "v", false, "Shorthand for --verbose.")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output.")
	fs.BoolVar(&cfg.Metrics, "metrics", false, "Print Prometheus metrics after the run.")
	fs.BoolVar(&cfg.TUI, "tui", false, "Launch the interactive dashboard.")
	fs.BoolVar(&cfg.Interactive, "interactive", false, "Launch the interactive command loop.")
	fs.BoolVar(&cfg.Interactive, "i", false, "Shorthand for --interactive.")
	fs.StringVar(&cfg.Completion, "completion", "", "Print a completion script for the given shell (bash, zsh, fish).")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [options]\n\nSorts and searches integer sequences.\n\nOptions:\n", programName)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.resolve(); err != nil {
		return AppConfig{}, err
	}
	if err := cfg.Validate(availableAlgos); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// resolve parses the raw sequence flags into their integer form.
func (c *AppConfig) resolve() error {
	var err error
	if c.Size > 0 {
		c.Input = GenerateSequence(c.Size, c.Seed)
	} else if c.Input, err = ParseIntList(c.InputList); err != nil {
		return apperrors.NewConfigError("invalid --input: %v", err)
	}
	if c.LinearInput, err = ParseIntList(c.LinearInputList); err != nil {
		return apperrors.NewConfigError("invalid --linear-input: %v", err)
	}
	c.BinaryInput = nil
	if strings.TrimSpace(c.BinaryInputList) != "" {
		if c.BinaryInput, err = ParseIntList(c.BinaryInputList); err != nil {
			return apperrors.NewConfigError("invalid --binary-input: %v", err)
		}
	}
	return nil
}

// Validate checks the semantic consistency of the configuration.
//
// Parameters:
//   - availableAlgos: Registered sorter keys accepted by --algo.
//
// Returns:
//   - error: A ConfigError describing the first problem found, or nil.
func (c AppConfig) Validate(availableAlgos []string) error {
	if c.Algo != "all" && !slices.Contains(availableAlgos, c.Algo) {
		return apperrors.NewConfigError("unknown algorithm %q (accepted values: %s, all)", c.Algo, strings.Join(availableAlgos, ", "))
	}
	if c.Size < 0 {
		return apperrors.NewConfigError("--size must be non-negative, got %d", c.Size)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("--timeout must be positive, got %s", c.Timeout)
	}
	if c.Completion != "" && !slices.Contains(SupportedShells, c.Completion) {
		return apperrors.NewConfigError("unsupported shell %q (accepted values: %s)", c.Completion, strings.Join(SupportedShells, ", "))
	}
	return nil
}
