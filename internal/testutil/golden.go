// Package testutil holds helpers shared by the package test suites.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// AssertGolden compares output against the named file in the calling
// package's testdata directory. Run the tests with UPDATE_GOLDEN set to
// rewrite the files from current output.
func AssertGolden(t *testing.T, name, output string) {
	t.Helper()
	path := filepath.Join("testdata", name)
	if os.Getenv("UPDATE_GOLDEN") != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create testdata dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(output+"\n"), 0o644); err != nil {
			t.Fatalf("failed to update golden %s: %v", name, err)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden %s: %v", name, err)
	}
	want := strings.TrimSuffix(string(data), "\n")
	if want != output {
		t.Fatalf("output mismatch for %s\nexpected:\n%s\nactual:\n%s", name, want, output)
	}
}
