package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jamesainslie/agentpack/pkg/agentpack/workflow"
)

func writeTestBundle(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"skills/greet.md":  "# greet",
		"memory/facts.txt": "facts",
		"tools/mcp.json":   "{}",
		"logo.png":         "binary",
	}
	for rel, content := range files {
		full := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestResolveSource_Directory(t *testing.T) {
	dir := writeTestBundle(t)

	source, handles, err := resolveSource([]string{dir}, nil)
	if err != nil {
		t.Fatalf("resolveSource failed: %v", err)
	}
	if source != dir {
		t.Errorf("expected source %s, got %s", dir, source)
	}
	if len(handles) != 4 {
		t.Errorf("expected 4 handles, got %d", len(handles))
	}
}

func TestResolveSource_Files(t *testing.T) {
	dir := writeTestBundle(t)

	paths := []string{
		filepath.Join(dir, "skills", "greet.md"),
		filepath.Join(dir, "memory", "facts.txt"),
	}
	_, handles, err := resolveSource(paths, nil)
	if err != nil {
		t.Fatalf("resolveSource failed: %v", err)
	}
	if len(handles) != 2 {
		t.Errorf("expected 2 handles, got %d", len(handles))
	}
}

func TestResolveSource_Missing(t *testing.T) {
	_, _, err := resolveSource([]string{"/nonexistent/path"}, nil)
	if err == nil {
		t.Fatal("expected error for missing path")
	}
}

func TestResolveSource_MixedDirAndFile(t *testing.T) {
	dir := writeTestBundle(t)

	_, _, err := resolveSource([]string{dir, filepath.Join(dir, "logo.png")}, nil)
	if err == nil {
		t.Fatal("expected error for mixed directory and file args")
	}
}

func TestResolveSource_Excludes(t *testing.T) {
	dir := writeTestBundle(t)

	_, handles, err := resolveSource([]string{dir}, []string{"tools"})
	if err != nil {
		t.Fatalf("resolveSource failed: %v", err)
	}
	for _, h := range handles {
		if filepath.Dir(h.Path()) == "tools" {
			t.Errorf("expected tools entries excluded, got %s", h.Path())
		}
	}
}

func scanTestBundle(t *testing.T) *workflow.Workflow {
	t.Helper()
	dir := writeTestBundle(t)

	_, handles, err := resolveSource([]string{dir}, nil)
	if err != nil {
		t.Fatal(err)
	}
	wf := workflow.New(handles)
	wf.Scan()
	return wf
}

func TestRestrictToTypes(t *testing.T) {
	wf := scanTestBundle(t)

	if err := restrictToTypes(wf, []string{"skill"}); err != nil {
		t.Fatalf("restrictToTypes failed: %v", err)
	}
	if wf.SelectedCount() != 1 {
		t.Errorf("expected 1 selected, got %d", wf.SelectedCount())
	}
}

func TestRestrictToTypes_Invalid(t *testing.T) {
	wf := scanTestBundle(t)

	if err := restrictToTypes(wf, []string{"widget"}); err == nil {
		t.Fatal("expected error for unknown type")
	}
}

func TestRestrictToTypes_NoMatches(t *testing.T) {
	wf := scanTestBundle(t)

	if err := restrictToTypes(wf, []string{"agent"}); err == nil {
		t.Fatal("expected error when no components match")
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"this is a long string", 10, "this is..."},
		{"abc", 2, "ab"},
	}

	for _, tt := range tests {
		got := truncateString(tt.input, tt.maxLen)
		if got != tt.expected {
			t.Errorf("truncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.expected)
		}
	}
}
