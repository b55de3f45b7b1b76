package format

import (
	"strconv"
	"time"
)

// FormatExecutionDuration renders d in the largest unit that keeps it
// readable: nanoseconds below 1µs, whole microseconds below 1ms, whole
// milliseconds below 1s, and Duration.String rounded to the millisecond
// above.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return strconv.FormatInt(d.Nanoseconds(), 10) + "ns"
	case d < time.Millisecond:
		return strconv.FormatInt(d.Microseconds(), 10) + "µs"
	case d < time.Second:
		return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
	default:
		return d.Round(time.Millisecond).String()
	}
}
