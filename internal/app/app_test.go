package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/arraykit/internal/arrays"
	apperrors "github.com/agbru/arraykit/internal/errors"
	"github.com/agbru/arraykit/internal/logging"
)

// reversedSorter returns its input in descending order, so it disagrees
// with every correct sorter.
type reversedSorter struct{}

func (reversedSorter) Name() string  { return "Reversed" }
func (reversedSorter) Key() string   { return "reversed" }
func (reversedSorter) InPlace() bool { return false }
func (reversedSorter) Sort(seq arrays.Sequence) arrays.Sequence {
	values, ok := arrays.MergeSort(seq).Get()
	if !ok {
		return seq
	}
	out := make([]int, len(values))
	for i, v := range values {
		out[len(values)-1-i] = v
	}
	return arrays.Some(out)
}

func newApp(t *testing.T, args ...string) *Application {
	t.Helper()
	var errBuf bytes.Buffer
	a, err := New(append([]string{"arraykit", "--no-color"}, args...), &errBuf,
		WithLogger(logging.NewNopLogger()))
	require.NoError(t, err, errBuf.String())
	return a
}

func run(t *testing.T, a *Application) (string, int) {
	t.Helper()
	var out bytes.Buffer
	code := a.Run(context.Background(), &out)
	return out.String(), code
}

func TestNew_Defaults(t *testing.T) {
	a := newApp(t)
	assert.Equal(t, "all", a.Config.Algo)
	assert.Equal(t, []int{7, 3, 9, 1, 5, 8, 2}, a.Config.Input)
	assert.NotNil(t, a.Factory)
}

func TestNew_Errors(t *testing.T) {
	var errBuf bytes.Buffer

	_, err := New([]string{"arraykit", "--help"}, &errBuf)
	assert.True(t, IsHelpError(err))
	assert.Contains(t, errBuf.String(), "Usage: arraykit")

	_, err = New([]string{"arraykit", "--algo", "bogo"}, &errBuf)
	var cfgErr apperrors.ConfigError
	assert.True(t, errors.As(err, &cfgErr))
	assert.False(t, IsHelpError(err))
}

func TestRun_QuietDemo(t *testing.T) {
	out, code := run(t, newApp(t, "-q"))

	require.Equal(t, apperrors.ExitSuccess, code)
	want := strings.Join([]string{
		"Original: [7, 3, 9, 1, 5, 8, 2]",
		"Sorted (Merge): [1, 2, 3, 5, 7, 8, 9]",
		"Sorted (Quick in-place): [1, 2, 3, 5, 7, 8, 9]",
		"Linear search of 20: index=2",
		"Binary search of 8 in Merge: index=5",
	}, "\n") + "\n"
	assert.Equal(t, want, out)
}

func TestRun_DemoQuicksortsCallerSequence(t *testing.T) {
	a := newApp(t, "-q", "--input", "3,1,2")
	_, code := run(t, a)

	require.Equal(t, apperrors.ExitSuccess, code)
	assert.Equal(t, []int{1, 2, 3}, a.Config.Input)
}

func TestRun_FullDemo(t *testing.T) {
	out, code := run(t, newApp(t, "--verbose", "--metrics", "-t", "42"))

	require.Equal(t, apperrors.ExitSuccess, code)
	assert.Contains(t, out, "Sorting 7 integers")
	assert.Contains(t, out, "comparison of 2 sorters")
	assert.Contains(t, out, "Global Status: Success. All sorters agree.")
	assert.Contains(t, out, "Binary search of 42 in Merge: index=-1")
	assert.Contains(t, out, "Memory Stats:")
	assert.Contains(t, out, `arraykit_search_total{kind="binary",outcome="not_found"} 1`)
	assert.Contains(t, out, `arraykit_sort_runs_total{algorithm="merge"} 1`)
}

func TestRun_EmptyInput(t *testing.T) {
	out, code := run(t, newApp(t, "-q", "--input", "", "--linear-input", ""))

	require.Equal(t, apperrors.ExitSuccess, code)
	assert.Contains(t, out, "Original: []")
	assert.Contains(t, out, "Linear search of 20: index=-1")
	assert.Contains(t, out, "Binary search of 8 in Merge: index=-1")
}

func TestRun_Mismatch(t *testing.T) {
	factory := arrays.NewDefaultFactory()
	require.NoError(t, factory.Register(reversedSorter{}))

	var errBuf bytes.Buffer
	a, err := New([]string{"arraykit", "--no-color"}, &errBuf,
		WithFactory(factory), WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)

	out, code := run(t, a)
	assert.Equal(t, apperrors.ExitErrorMismatch, code)
	assert.Contains(t, out, "disagree")
	assert.NotContains(t, out, "Original:")
}

func TestRun_CheckSortedRejectsUnsortedSorterOutput(t *testing.T) {
	factory := arrays.NewDefaultFactory()
	require.NoError(t, factory.Register(reversedSorter{}))

	var errBuf bytes.Buffer
	a, err := New([]string{"arraykit", "--no-color", "-q", "--check-sorted", "--algo", "reversed", "--input", "9 1 5 3"},
		&errBuf, WithFactory(factory), WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)

	out, code := run(t, a)
	assert.Equal(t, apperrors.ExitErrorConfig, code)
	assert.Contains(t, errBuf.String(), `Error: validation error for "reversed": sorter output is not in ascending order`)
	assert.NotContains(t, out, "Binary search")
}

func TestRun_BinaryInput(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
		wantErr  string
	}{
		{
			name:     "ascending input is searched as given",
			args:     []string{"--binary-input", "1,4,6,10", "-t", "6", "--check-sorted"},
			wantCode: apperrors.ExitSuccess,
			wantOut:  "Binary search of 6 in input: index=2",
		},
		{
			name:     "unsorted input without check",
			args:     []string{"--binary-input", "10 1 4", "-t", "99"},
			wantCode: apperrors.ExitSuccess,
			wantOut:  "Binary search of 99 in input: index=-1",
		},
		{
			name:     "unsorted input rejected",
			args:     []string{"--binary-input", "10 1 4", "--check-sorted"},
			wantCode: apperrors.ExitErrorConfig,
			wantErr:  `Error: validation error for "binary-input": sequence is not in ascending order`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errBuf bytes.Buffer
			a, err := New(append([]string{"arraykit", "--no-color", "-q"}, tt.args...), &errBuf,
				WithLogger(logging.NewNopLogger()))
			require.NoError(t, err)

			out, code := run(t, a)
			assert.Equal(t, tt.wantCode, code)
			if tt.wantOut != "" {
				assert.Contains(t, out, tt.wantOut)
				assert.Contains(t, out, "Sorted (Merge): [1, 2, 3, 5, 7, 8, 9]")
			}
			if tt.wantErr != "" {
				assert.Contains(t, errBuf.String(), tt.wantErr)
				assert.NotContains(t, out, "Binary search")
			}
		})
	}
}

func TestRun_CanceledContext(t *testing.T) {
	a := newApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	code := a.Run(ctx, &out)
	assert.Equal(t, apperrors.ExitErrorCanceled, code)
	assert.NotContains(t, out.String(), "Original:")
}

func TestRun_Completion(t *testing.T) {
	out, code := run(t, newApp(t, "--completion", "bash"))

	require.Equal(t, apperrors.ExitSuccess, code)
	assert.Contains(t, out, "complete")
	assert.Contains(t, out, "merge")
}

func TestRun_Interactive(t *testing.T) {
	var errBuf bytes.Buffer
	a, err := New([]string{"arraykit", "--no-color", "-i", "--input", "4,8,15"}, &errBuf,
		WithLogger(logging.NewNopLogger()),
		WithInput(strings.NewReader("find 15\nbfind 4\nexit\n")))
	require.NoError(t, err)

	out, code := run(t, a)
	require.Equal(t, apperrors.ExitSuccess, code)
	assert.Contains(t, out, "Linear search of 15: index=2")
	assert.Contains(t, out, "Binary search of 4: index=0")
}

func TestHasVersionFlag(t *testing.T) {
	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"--version"}, true},
		{[]string{"-q", "-V"}, true},
		{[]string{"-version"}, true},
		{[]string{"-v"}, false},
		{nil, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HasVersionFlag(tt.args), "args %v", tt.args)
	}
}

func TestPrintVersion(t *testing.T) {
	var out bytes.Buffer
	PrintVersion(&out)
	assert.True(t, strings.HasPrefix(out.String(), "arraykit dev (commit none"))
}
