package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jamesainslie/agentpack/pkg/agentpack/bundle"
	"github.com/jamesainslie/agentpack/pkg/agentpack/component"
	"github.com/jamesainslie/agentpack/pkg/agentpack/selection"
	"github.com/jamesainslie/agentpack/pkg/agentpack/workflow"
)

type memHandle struct {
	path string
	data []byte
}

func (h *memHandle) Path() string { return h.path }
func (h *memHandle) Size() int64  { return int64(len(h.data)) }
func (h *memHandle) ReadBytes(context.Context) ([]byte, error) {
	return h.data, nil
}

func testWorkflow() *workflow.Workflow {
	handles := []bundle.FileHandle{
		&memHandle{path: "skills/greet.md", data: []byte("# greet")},
		&memHandle{path: "skills/farewell.md", data: []byte("# farewell")},
		&memHandle{path: "memory/facts.txt", data: []byte("facts")},
	}
	wf := workflow.New(handles)
	wf.Scan()
	return wf
}

func TestNewModel(t *testing.T) {
	wf := testWorkflow()
	m := NewModel(wf, "/test/bundle")

	if m.cursor != 0 {
		t.Errorf("expected cursor at 0, got %d", m.cursor)
	}
	// 2 headers + 3 records
	if len(m.rows) != 5 {
		t.Errorf("expected 5 rows, got %d", len(m.rows))
	}
}

func TestBuildRowsGroupsByType(t *testing.T) {
	wf := testWorkflow()
	rows := buildRows(wf)

	if rows[0].kind != rowHeader || rows[0].typ != component.TypeSkill {
		t.Errorf("expected skill header first, got %+v", rows[0])
	}
	if rows[1].kind != rowRecord || rows[2].kind != rowRecord {
		t.Error("expected skill records after skill header")
	}
	if rows[3].kind != rowHeader || rows[3].typ != component.TypeMemory {
		t.Errorf("expected memory header at row 3, got %+v", rows[3])
	}
}

func TestToggleRecordRow(t *testing.T) {
	wf := testWorkflow()
	m := NewModel(wf, "/test/bundle")

	// Move to the first record row and toggle it off.
	m.cursor = 1
	m.toggleCursor()

	if wf.SelectedCount() != 2 {
		t.Errorf("expected 2 selected, got %d", wf.SelectedCount())
	}

	m.toggleCursor()
	if wf.SelectedCount() != 3 {
		t.Errorf("expected 3 selected after re-toggle, got %d", wf.SelectedCount())
	}
}

func TestToggleHeaderRowTogglesGroup(t *testing.T) {
	wf := testWorkflow()
	m := NewModel(wf, "/test/bundle")

	// Cursor on the skill group header.
	m.cursor = 0
	m.toggleCursor()

	if selection.TypeState(wf.Records(), component.TypeSkill) != selection.GroupNone {
		t.Error("expected skill group deselected after header toggle")
	}
	if selection.TypeState(wf.Records(), component.TypeMemory) != selection.GroupAll {
		t.Error("expected memory group untouched")
	}
}

func TestGroupCheckboxStates(t *testing.T) {
	wf := testWorkflow()
	m := NewModel(wf, "/test/bundle")

	all := m.groupCheckbox(selection.GroupAll)
	some := m.groupCheckbox(selection.GroupSome)
	none := m.groupCheckbox(selection.GroupNone)

	if all == some || some == none || all == none {
		t.Error("expected distinct markers for each group state")
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestHandleKeyNavigation(t *testing.T) {
	wf := testWorkflow()
	m := NewModel(wf, "/test/bundle")

	next, _ := m.handleKey(keyMsg("down"))
	m = next.(Model)
	if m.cursor != 1 {
		t.Errorf("expected cursor at 1, got %d", m.cursor)
	}

	next, _ = m.handleKey(keyMsg("up"))
	m = next.(Model)
	if m.cursor != 0 {
		t.Errorf("expected cursor at 0, got %d", m.cursor)
	}

	// Up at top is a no-op.
	next, _ = m.handleKey(keyMsg("up"))
	m = next.(Model)
	if m.cursor != 0 {
		t.Errorf("expected cursor pinned at 0, got %d", m.cursor)
	}

	next, _ = m.handleKey(keyMsg("G"))
	m = next.(Model)
	if m.cursor != len(m.rows)-1 {
		t.Errorf("expected cursor at last row, got %d", m.cursor)
	}
}

func TestHandleKeyConfirm(t *testing.T) {
	wf := testWorkflow()
	m := NewModel(wf, "/test/bundle")

	next, cmd := m.handleKey(keyMsg("enter"))
	m = next.(Model)

	if !m.Confirmed() {
		t.Error("expected confirmed after enter")
	}
	if cmd == nil {
		t.Error("expected quit command after enter")
	}
}

func TestHandleKeyCancel(t *testing.T) {
	wf := testWorkflow()
	m := NewModel(wf, "/test/bundle")

	next, cmd := m.handleKey(keyMsg("q"))
	m = next.(Model)

	if m.Confirmed() {
		t.Error("expected not confirmed after q")
	}
	if cmd == nil {
		t.Error("expected quit command after q")
	}
}

func TestHandleKeyToggleAll(t *testing.T) {
	wf := testWorkflow()
	m := NewModel(wf, "/test/bundle")

	next, _ := m.handleKey(keyMsg("a"))
	m = next.(Model)

	if wf.SelectedCount() != 0 {
		t.Errorf("expected 0 selected after toggle all, got %d", wf.SelectedCount())
	}
}

func TestHandleKeyToggleSpace(t *testing.T) {
	wf := testWorkflow()
	m := NewModel(wf, "/test/bundle")

	// Cursor starts on the skill group header; space toggles the group.
	next, _ := m.handleKey(keyMsg(" "))
	m = next.(Model)

	if selection.TypeState(wf.Records(), component.TypeSkill) != selection.GroupNone {
		t.Error("expected skill group deselected after space on header")
	}
}

func TestViewContainsRecords(t *testing.T) {
	wf := testWorkflow()
	m := NewModel(wf, "/test/bundle")

	view := m.View()
	if view == "" {
		t.Fatal("expected non-empty view")
	}
}

func TestViewEmptyBundle(t *testing.T) {
	wf := workflow.New(nil)
	wf.Scan()
	m := NewModel(wf, "/test/empty")

	view := m.View()
	if view == "" {
		t.Fatal("expected non-empty view for empty bundle")
	}
}

func TestTruncatePath(t *testing.T) {
	tests := []struct {
		path   string
		maxLen int
		want   string
	}{
		{"short.md", 20, "short.md"},
		{"a/very/long/nested/path/file.md", 12, "...h/file.md"},
		{"abc", 3, "abc"},
	}

	for _, tt := range tests {
		got := truncatePath(tt.path, tt.maxLen)
		if got != tt.want {
			t.Errorf("truncatePath(%q, %d) = %q, want %q", tt.path, tt.maxLen, got, tt.want)
		}
	}
}
