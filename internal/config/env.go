// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// isFlagSet checks if a flag was explicitly set on the command line.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// Aliased flags may be given in either their short or long form.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride maps an env key (without the ARRAYKIT_ prefix) to the CLI
// flag name(s) it corresponds to and a function that applies the value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

func intOverride(key string, flags []string, field func(*AppConfig) *int) envOverride {
	return envOverride{key, flags, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			*field(c) = parsed
		}
	}}
}

func boolOverride(key string, flags []string, field func(*AppConfig) *bool) envOverride {
	return envOverride{key, flags, func(c *AppConfig, v string) {
		p := field(c)
		*p = parseBoolEnv(v, *p)
	}}
}

// envOverrides is the declarative table of all environment variable overrides.
var envOverrides = []envOverride{
	// Sequences
	{"INPUT", []string{"input"}, func(c *AppConfig, v string) { c.InputList = v }},
	{"LINEAR_INPUT", []string{"linear-input"}, func(c *AppConfig, v string) { c.LinearInputList = v }},
	{"BINARY_INPUT", []string{"binary-input"}, func(c *AppConfig, v string) { c.BinaryInputList = v }},
	intOverride("SIZE", []string{"size"}, func(c *AppConfig) *int { return &c.Size }),
	{"SEED", []string{"seed"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			c.Seed = parsed
		}
	}},

	// Targets
	intOverride("LINEAR_TARGET", []string{"linear-target"}, func(c *AppConfig) *int { return &c.LinearTarget }),
	intOverride("TARGET", []string{"target", "t"}, func(c *AppConfig) *int { return &c.BinaryTarget }),

	// Execution
	{"ALGO", []string{"algo"}, func(c *AppConfig, v string) { c.Algo = v }},
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},
	{"COMPLETION", []string{"completion"}, func(c *AppConfig, v string) { c.Completion = v }},

	// Boolean switches
	boolOverride("CHECK_SORTED", []string{"check-sorted"}, func(c *AppConfig) *bool { return &c.CheckSorted }),
	boolOverride("QUIET", []string{"quiet", "q"}, func(c *AppConfig) *bool { return &c.Quiet }),
	boolOverride("VERBOSE", []string{"verbose", "v"}, func(c *AppConfig) *bool { return &c.Verbose }),
	boolOverride("NO_COLOR", []string{"no-color"}, func(c *AppConfig) *bool { return &c.NoColor }),
	boolOverride("METRICS", []string{"metrics"}, func(c *AppConfig) *bool { return &c.Metrics }),
	boolOverride("TUI", []string{"tui"}, func(c *AppConfig) *bool { return &c.TUI }),
	boolOverride("INTERACTIVE", []string{"interactive", "i"}, func(c *AppConfig) *bool { return &c.Interactive }),
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// Priority: CLI flags > environment variables > defaults.
//
// Supported environment variables (all prefixed with ARRAYKIT_):
//   - INPUT, LINEAR_INPUT, SIZE, SEED, LINEAR_TARGET, TARGET, ALGO, TIMEOUT,
//     COMPLETION, CHECK_SORTED, QUIET, VERBOSE, NO_COLOR, METRICS, TUI,
//     INTERACTIVE
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}
