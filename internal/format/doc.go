// Package format holds the text formatting helpers shared by the CLI and
// the TUI: durations, byte sizes, thousand separators, progress bars and
// completion estimates.
package format
