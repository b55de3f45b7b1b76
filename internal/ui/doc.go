// Package ui holds the color themes shared by the CLI and the dashboard:
// ANSI escape sequences for line output and a lipgloss palette for the TUI.
package ui
