package apperrors

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type plainColors struct{}

func (plainColors) Red() string    { return "" }
func (plainColors) Yellow() string { return "" }
func (plainColors) Reset() string  { return "" }

func TestHandleSortError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		duration time.Duration
		wantCode int
		contains string
	}{
		{"nil error", nil, 0, ExitSuccess, ""},
		{"deadline", context.DeadlineExceeded, time.Second, ExitErrorTimeout, "Timeout"},
		{"wrapped deadline", SortError{Sorter: "Quicksort", Cause: context.DeadlineExceeded}, 0, ExitErrorTimeout, "Timeout"},
		{"timeout error", TimeoutError{Operation: "sort", Limit: time.Second}, 0, ExitErrorTimeout, "Timeout"},
		{"canceled", context.Canceled, 0, ExitErrorCanceled, "Canceled"},
		{"generic", errors.New("boom"), 0, ExitErrorGeneric, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			code := HandleSortError(tt.err, tt.duration, &buf, plainColors{})
			if code != tt.wantCode {
				t.Errorf("HandleSortError() = %d, want %d", code, tt.wantCode)
			}
			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("output %q should contain %q", buf.String(), tt.contains)
			}
		})
	}
}

func TestHandleSortError_IncludesDuration(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	HandleSortError(context.DeadlineExceeded, 1500*time.Millisecond, &buf, plainColors{})
	if !strings.Contains(buf.String(), "after 1.5s") {
		t.Errorf("output %q should mention the elapsed time", buf.String())
	}
}
