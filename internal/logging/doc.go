// Package logging defines the Logger interface used by arraykit components,
// with a zerolog backend for normal runs and a standard log backend for
// callers that already own a *log.Logger.
package logging
