package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestGenerateCompletion(t *testing.T) {
	t.Parallel()
	algos := []string{"merge", "quick"}
	tests := []struct {
		shell    string
		contains []string
	}{
		{"bash", []string{"_arraykit_completions", "complete -F _arraykit_completions arraykit", `algorithms="merge quick all"`, "--check-sorted", "--algo)"}},
		{"zsh", []string{"#compdef arraykit", "algorithms=(merge quick all)", "'(-t --target)'{-t,--target}'[Value searched by the binary search]:value:'", "--completion[Generate completion script]:shell:(bash zsh fish)"}},
		{"fish", []string{"complete -c arraykit -f", "complete -c arraykit -l algo -d 'Sorter to run' -xa 'merge quick all'", "# Searching", "complete -c arraykit -s q -l quiet"}},
	}
	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell, algos); err != nil {
				t.Fatalf("GenerateCompletion(%s): %v", tt.shell, err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("%s script missing %q", tt.shell, want)
				}
			}
		})
	}
}

func TestGenerateCompletion_Unsupported(t *testing.T) {
	t.Parallel()
	err := GenerateCompletion(&bytes.Buffer{}, "powershell", nil)
	if err == nil || !strings.Contains(err.Error(), "unsupported shell") {
		t.Errorf("expected unsupported shell error, got %v", err)
	}
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestGenerateCompletion_WriteError(t *testing.T) {
	t.Parallel()
	err := GenerateCompletion(brokenWriter{}, "bash", []string{"merge"})
	if err == nil || !strings.Contains(err.Error(), "broken pipe") {
		t.Errorf("expected wrapped write error, got %v", err)
	}
}

func TestFlagRegistryIsConsistent(t *testing.T) {
	t.Parallel()
	seen := map[string]bool{}
	for _, f := range flagRegistry {
		if f.Long == "" {
			t.Errorf("flag with short name %q has no long name", f.Short)
		}
		if seen[f.Long] {
			t.Errorf("duplicate flag %q", f.Long)
		}
		seen[f.Long] = true
		if f.Section == "" {
			t.Errorf("flag %q has no section", f.Long)
		}
	}
}
