package e2e

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E builds the binary and checks its output and exit codes.
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping end-to-end test in short mode")
	}

	tmpDir := t.TempDir()
	binName := "arraykit"
	if runtime.GOOS == "windows" {
		binName = "arraykit.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test runs in the package directory; build from the module root.
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/arraykit")
	cmd.Dir = "../.."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build arraykit: %v", err)
	}

	tests := []struct {
		name     string
		args     []string
		wantOut  []string // substrings, case-insensitive
		wantCode int
	}{
		{
			name: "Default Demonstration",
			args: nil,
			wantOut: []string{
				"Original: [7, 3, 9, 1, 5, 8, 2]",
				"Sorted (Merge): [1, 2, 3, 5, 7, 8, 9]",
				"Sorted (Quick in-place): [1, 2, 3, 5, 7, 8, 9]",
				"Linear search of 20: index=2",
				"Binary search of 8 in Merge: index=5",
			},
		},
		{
			name:    "Help",
			args:    []string{"--help"},
			wantOut: []string{"usage"},
		},
		{
			name:    "Single Sorter",
			args:    []string{"--algo", "quick", "--input", "5 -1 3"},
			wantOut: []string{"single run with", "Sorted (Merge): [-1, 3, 5]"},
		},
		{
			name:    "Quiet Mode",
			args:    []string{"--quiet", "-t", "100"},
			wantOut: []string{"Binary search of 100 in Merge: index=-1"},
		},
		{
			name:    "Generated Input",
			args:    []string{"--size", "1000", "--seed", "7", "-q"},
			wantOut: []string{"(1,000 elements)"},
		},
		{
			name:    "Metrics",
			args:    []string{"-q", "--metrics"},
			wantOut: []string{"arraykit_search_total"},
		},
		{
			name:     "Unknown Algorithm",
			args:     []string{"--algo", "bogo"},
			wantOut:  []string{"unknown algorithm"},
			wantCode: 4,
		},
		{
			name:     "Invalid Input",
			args:     []string{"--input", "1,x"},
			wantOut:  []string{"invalid --input"},
			wantCode: 4,
		},
		{
			name:     "Unsorted Binary Input Checked",
			args:     []string{"-q", "--check-sorted", "--binary-input", "3 2 1"},
			wantOut:  []string{"not in ascending order"},
			wantCode: 4,
		},
		{
			name:    "Completion",
			args:    []string{"--completion", "fish"},
			wantOut: []string{"complete -c arraykit"},
		},
		{
			name:    "Version Flag",
			args:    []string{"--version"},
			wantOut: []string{"arraykit"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			code := 0
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("Command failed to run: %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nOutput: %s", code, tt.wantCode, outStr)
			}

			for _, want := range tt.wantOut {
				if !strings.Contains(strings.ToLower(outStr), strings.ToLower(want)) {
					t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", want, outStr)
				}
			}
		})
	}
}
