package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// Every generator reads flagRegistry, so a new flag needs one entry here.
type FlagCompletion struct {
	Long      string   // long name without "--"
	Short     string   // short name without "-"
	Help      string   // description text
	Values    []string // suggested values (nil = boolean or free-form)
	ValueName string   // value label for zsh; empty for boolean flags
	IsAlgo    bool     // values come from the sorter registry
	Section   string   // grouping comment in the fish script
}

var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message", Section: "Help and version"},
	{Long: "version", Short: "V", Help: "Show version information", Section: "Help and version"},
	{Long: "input", Help: "Sequence to sort", ValueName: "integers", Section: "Input"},
	{Long: "size", Help: "Generate a random sequence of this length", Values: []string{"10", "1000", "100000", "1000000"}, ValueName: "length", Section: "Input"},
	{Long: "seed", Help: "Seed for --size", ValueName: "seed", Section: "Input"},
	{Long: "algo", Help: "Sorter to run", IsAlgo: true, ValueName: "sorter", Section: "Sorting"},
	{Long: "timeout", Help: "Maximum execution time", Values: []string{"1s", "10s", "1m", "5m"}, ValueName: "duration", Section: "Sorting"},
	{Long: "linear-input", Help: "Sequence scanned by the linear search", ValueName: "integers", Section: "Searching"},
	{Long: "linear-target", Help: "Value searched by the linear search", ValueName: "value", Section: "Searching"},
	{Long: "binary-input", Help: "Ascending sequence searched by the binary search", ValueName: "integers", Section: "Searching"},
	{Long: "target", Short: "t", Help: "Value searched by the binary search", ValueName: "value", Section: "Searching"},
	{Long: "check-sorted", Help: "Fail on unsorted sorter output or binary input", Section: "Searching"},
	{Long: "quiet", Short: "q", Help: "Print only the demonstration lines", Section: "Output"},
	{Long: "verbose", Short: "v", Help: "Debug logs and memory statistics", Section: "Output"},
	{Long: "no-color", Help: "Disable colored output", Section: "Output"},
	{Long: "metrics", Help: "Print Prometheus metrics after the run", Section: "Output"},
	{Long: "tui", Help: "Launch the interactive dashboard", Section: "Modes"},
	{Long: "interactive", Short: "i", Help: "Launch the interactive command loop", Section: "Modes"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish"}, ValueName: "shell", Section: "Modes"},
}

// GenerateCompletion writes a completion script for shell.
//
// Parameters:
//   - out: The writer receiving the script.
//   - shell: "bash", "zsh" or "fish".
//   - algorithms: Registered sorter keys offered for --algo.
//
// Returns:
//   - error: An error if the shell is unsupported or the write fails.
func GenerateCompletion(out io.Writer, shell string, algorithms []string) error {
	var script string
	switch shell {
	case "bash":
		script = bashCompletion(algorithms)
	case "zsh":
		script = zshCompletion(algorithms)
	case "fish":
		script = fishCompletion(algorithms)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish)", shell)
	}
	if _, err := io.WriteString(out, script); err != nil {
		return fmt.Errorf("completion %s generation failed: %w", shell, err)
	}
	return nil
}

func algoValues(algorithms []string) string {
	return strings.Join(append(append([]string(nil), algorithms...), "all"), " ")
}

func bashCompletion(algorithms []string) string {
	opts := lo.FlatMap(flagRegistry, func(f FlagCompletion, _ int) []string {
		var names []string
		if f.Long != "" {
			names = append(names, "--"+f.Long)
		}
		if f.Short != "" {
			names = append(names, "-"+f.Short)
		}
		return names
	})

	var cases strings.Builder
	for _, f := range flagRegistry {
		var words string
		switch {
		case f.IsAlgo:
			words = "${algorithms}"
		case len(f.Values) > 0:
			words = strings.Join(f.Values, " ")
		default:
			continue
		}
		fmt.Fprintf(&cases, "        --%s)\n            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n            return 0\n            ;;\n", f.Long, words)
	}

	return fmt.Sprintf(`# Bash completion script for arraykit
# Add this to your ~/.bashrc or ~/.bash_completion

_arraykit_completions() {
    local cur prev opts algorithms
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    opts="%s"
    algorithms="%s"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _arraykit_completions arraykit
`, strings.Join(opts, " "), algoValues(algorithms), cases.String())
}

func zshCompletion(algorithms []string) string {
	args := lo.Map(flagRegistry, func(f FlagCompletion, _ int) string { return zshArgEntry(f) })
	return fmt.Sprintf(`#compdef arraykit

# Zsh completion script for arraykit
# Place this file in a directory listed in $fpath

_arraykit() {
    local -a algorithms
    algorithms=(%s)

    _arguments -s \
%s
}

_arraykit "$@"
`, algoValues(algorithms), strings.Join(args, " \\\n"))
}

// zshArgEntry formats a single flag as a zsh _arguments spec.
func zshArgEntry(f FlagCompletion) string {
	valueSuffix := ""
	switch {
	case f.IsAlgo:
		valueSuffix = fmt.Sprintf(":%s:($algorithms)", f.ValueName)
	case len(f.Values) > 0:
		valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	case f.ValueName != "":
		valueSuffix = fmt.Sprintf(":%s:", f.ValueName)
	}

	if f.Short != "" {
		return fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'",
			f.Short, f.Long, f.Short, f.Long, f.Help, valueSuffix)
	}
	return fmt.Sprintf("        '--%s[%s]%s'", f.Long, f.Help, valueSuffix)
}

func fishCompletion(algorithms []string) string {
	lines := []string{
		"# Fish completion script for arraykit",
		"# Save as ~/.config/fish/completions/arraykit.fish",
		"",
		"complete -c arraykit -f",
	}
	section := ""
	for _, f := range flagRegistry {
		if f.Section != section {
			section = f.Section
			lines = append(lines, "", "# "+section)
		}
		lines = append(lines, fishCompleteLine(f, algorithms))
	}
	return strings.Join(lines, "\n") + "\n"
}

// fishCompleteLine formats a single flag as a fish complete command.
func fishCompleteLine(f FlagCompletion, algorithms []string) string {
	parts := []string{"complete -c arraykit"}
	if f.Short != "" {
		parts = append(parts, "-s "+f.Short)
	}
	parts = append(parts, "-l "+f.Long, fmt.Sprintf("-d '%s'", f.Help))

	switch {
	case f.IsAlgo:
		parts = append(parts, fmt.Sprintf("-xa '%s'", algoValues(algorithms)))
	case len(f.Values) > 0:
		parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
	case f.ValueName != "":
		parts = append(parts, "-x")
	}
	return strings.Join(parts, " ")
}
