package bundle

import (
	"context"
	"testing"

	"github.com/jamesainslie/agentpack/pkg/agentpack/component"
)

// memHandle is an in-memory FileHandle for tests.
type memHandle struct {
	path    string
	data    []byte
	readErr error
}

func (m *memHandle) Path() string { return m.path }
func (m *memHandle) Size() int64  { return int64(len(m.data)) }
func (m *memHandle) ReadBytes(_ context.Context) ([]byte, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	return m.data, nil
}

func handlesOf(paths ...string) []FileHandle {
	handles := make([]FileHandle, len(paths))
	for i, p := range paths {
		handles[i] = &memHandle{path: p, data: []byte("content of " + p)}
	}
	return handles
}

func TestScanClassifiesAndDrops(t *testing.T) {
	handles := handlesOf("skills/greet.md", "memory/facts.txt", "readme.txt", "logo.png")

	result := Scan(handles)

	if len(result.Records) != 3 {
		t.Fatalf("got %d records, want 3", len(result.Records))
	}
	if result.Dropped != 1 {
		t.Errorf("Dropped = %d, want 1", result.Dropped)
	}
	if result.Skipped != 0 {
		t.Errorf("Skipped = %d, want 0", result.Skipped)
	}

	wantTypes := []component.Type{component.TypeSkill, component.TypeMemory, component.TypeOther}
	for i, want := range wantTypes {
		if result.Records[i].Type != want {
			t.Errorf("record %d type = %v, want %v", i, result.Records[i].Type, want)
		}
	}
}

func TestScanDefaultsToSelected(t *testing.T) {
	result := Scan(handlesOf("a.md", "b.txt", "c.py"))
	for i, r := range result.Records {
		if !r.Selected {
			t.Errorf("record %d (%s) not selected by default", i, r.SourcePath)
		}
	}
}

func TestScanPreservesOrder(t *testing.T) {
	paths := []string{"z.md", "a.txt", "m.py", "b.json"}
	result := Scan(handlesOf(paths...))

	if len(result.Records) != len(paths) {
		t.Fatalf("got %d records, want %d", len(result.Records), len(paths))
	}
	for i, p := range paths {
		if result.Records[i].SourcePath != p {
			t.Errorf("record %d path = %q, want %q", i, result.Records[i].SourcePath, p)
		}
	}
}

func TestScanIsIdempotent(t *testing.T) {
	handles := handlesOf("skills/a.md", "memory/b.txt", "utils.py")

	first := Scan(handles)
	second := Scan(handles)

	if len(first.Records) != len(second.Records) {
		t.Fatalf("record counts differ: %d vs %d", len(first.Records), len(second.Records))
	}
	for i := range first.Records {
		if first.Records[i] != second.Records[i] {
			t.Errorf("record %d differs between scans: %+v vs %+v",
				i, first.Records[i], second.Records[i])
		}
	}
}

func TestScanSkipsMalformedHandles(t *testing.T) {
	handles := []FileHandle{
		&memHandle{path: "good.md", data: []byte("ok")},
		nil,
		&memHandle{path: ""},
		&memHandle{path: "also-good.txt", data: []byte("ok")},
	}

	result := Scan(handles)

	if len(result.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(result.Records))
	}
	if result.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", result.Skipped)
	}
}

func TestScanEmptyInput(t *testing.T) {
	result := Scan(nil)
	if len(result.Records) != 0 {
		t.Errorf("got %d records from nil input, want 0", len(result.Records))
	}
}

func TestScanRecordFields(t *testing.T) {
	h := &memHandle{path: "skills/my-cool_skill.md", data: []byte("# hi")}
	result := Scan([]FileHandle{h})

	if len(result.Records) != 1 {
		t.Fatalf("got %d records, want 1", len(result.Records))
	}
	r := result.Records[0]
	if r.Name != "My Cool Skill" {
		t.Errorf("Name = %q, want %q", r.Name, "My Cool Skill")
	}
	if r.SourcePath != "skills/my-cool_skill.md" {
		t.Errorf("SourcePath = %q", r.SourcePath)
	}
	if r.SizeBytes != int64(len("# hi")) {
		t.Errorf("SizeBytes = %d, want %d", r.SizeBytes, len("# hi"))
	}
}

func TestResolveHandle(t *testing.T) {
	handles := handlesOf("a.md", "b.txt")

	if h := ResolveHandle(handles, "b.txt"); h == nil || h.Path() != "b.txt" {
		t.Errorf("ResolveHandle(b.txt) = %v", h)
	}
	if h := ResolveHandle(handles, "missing.md"); h != nil {
		t.Errorf("ResolveHandle(missing.md) = %v, want nil", h)
	}
	if h := ResolveHandle(nil, "a.md"); h != nil {
		t.Errorf("ResolveHandle on nil list = %v, want nil", h)
	}
}

func TestScanResultAggregates(t *testing.T) {
	result := Scan(handlesOf("skills/a.md", "skills/b.md", "memory/c.txt"))

	if got := result.CountByType(component.TypeSkill); got != 2 {
		t.Errorf("CountByType(skill) = %d, want 2", got)
	}
	if got := result.CountByType(component.TypeMemory); got != 1 {
		t.Errorf("CountByType(memory) = %d, want 1", got)
	}

	var want int64
	for _, r := range result.Records {
		want += r.SizeBytes
	}
	if got := result.TotalSize(); got != want {
		t.Errorf("TotalSize() = %d, want %d", got, want)
	}
}
