package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// ColorProvider supplies the ANSI sequences used when reporting errors.
// It keeps this package independent of the ui package.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// HandleSortError reports a failed sorter run on out and maps it to an exit
// code: deadline exceeded is a timeout, cancellation is a canceled run and
// every other error is generic. A nil error returns ExitSuccess.
func HandleSortError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}

	suffix := ""
	if duration > 0 {
		suffix = fmt.Sprintf(" after %s", duration)
	}

	var timeoutErr TimeoutError
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &timeoutErr):
		fmt.Fprintf(out, "%sStatus: Failure (Timeout). The execution limit was reached%s.%s\n",
			colors.Red(), suffix, colors.Reset())
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sStatus: Canceled%s.%s\n", colors.Yellow(), suffix, colors.Reset())
		return ExitErrorCanceled
	default:
		fmt.Fprintf(out, "%sStatus: Failure. Unexpected error: %v%s\n", colors.Red(), err, colors.Reset())
		return ExitErrorGeneric
	}
}
