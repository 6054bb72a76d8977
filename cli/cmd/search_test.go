package cmd

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

// TestSearchPath modifies the process environment and cannot run in
// parallel.
func TestSearchPath(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	fromEnv := t.TempDir()

	t.Setenv(PathEnv, fromEnv)

	got := SearchPath(first, filepath.Join(t.TempDir(), "missing"), second, first)
	want := []string{first, second, fromEnv}

	if !slices.Equal(got, want) {
		t.Errorf("SearchPath() = %q, want %q", got, want)
	}
}

func TestSearchPathEmpty(t *testing.T) {
	t.Setenv(PathEnv, "")

	if got := SearchPath(); len(got) != 0 {
		t.Errorf("SearchPath() = %q, want empty", got)
	}
}

func TestExpandHome(t *testing.T) {
	t.Parallel()

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := map[string]string{
		"~":          home,
		"~/lib":      filepath.Join(home, "lib"),
		"~other/lib": "~other/lib",
		"lib/~":      "lib/~",
	}

	for in, want := range tests {
		if got := expandHome(in); got != want {
			t.Errorf("expandHome(%q) = %q, want %q", in, got, want)
		}
	}
}
