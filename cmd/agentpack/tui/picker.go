package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/jamesainslie/agentpack/pkg/agentpack/component"
	"github.com/jamesainslie/agentpack/pkg/agentpack/selection"
	"github.com/jamesainslie/agentpack/pkg/agentpack/workflow"
)

// keyMap defines the picker keybindings.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	All     key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

// ShortHelp returns the bindings shown in the help bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.All, k.Confirm, k.Quit}
}

// FullHelp returns all bindings.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Toggle, k.All},
		{k.Confirm, k.Quit},
	}
}

var pickerKeys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "toggle"),
	),
	All: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "all"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "pack"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "cancel"),
	),
}

// rowKind distinguishes group headers from component rows.
type rowKind int

const (
	rowHeader rowKind = iota
	rowRecord
)

// row is a single line in the picker list. Header rows carry the type;
// record rows carry the index into the workflow's records.
type row struct {
	kind  rowKind
	typ   component.Type
	index int
}

// Model is the Bubble Tea model for the component picker.
type Model struct {
	wf     *workflow.Workflow
	source string
	rows   []row

	cursor int
	offset int
	width  int
	height int

	keys keyMap
	help help.Model

	confirmed bool
	quitting  bool
}

// NewModel creates a picker model over the workflow's scanned records.
func NewModel(wf *workflow.Workflow, source string) Model {
	return Model{
		wf:     wf,
		source: source,
		rows:   buildRows(wf),
		width:  80,
		height: 24,
		keys:   pickerKeys,
		help:   help.New(),
	}
}

// buildRows flattens the records into header and record rows, grouped
// by component type in canonical order.
func buildRows(wf *workflow.Workflow) []row {
	records := wf.Records()

	var rows []row
	for _, typ := range component.Types() {
		var group []row
		for i, rec := range records {
			if rec.Type == typ {
				group = append(group, row{kind: rowRecord, typ: typ, index: i})
			}
		}
		if len(group) == 0 {
			continue
		}
		rows = append(rows, row{kind: rowHeader, typ: typ})
		rows = append(rows, group...)
	}
	return rows
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey handles key input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Confirm):
		m.confirmed = true
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.ensureVisible()
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
			m.ensureVisible()
		}

	case key.Matches(msg, m.keys.Toggle):
		m.toggleCursor()

	case key.Matches(msg, m.keys.All):
		m.wf.ToggleAll()
	}

	switch msg.String() {
	case "home", "g":
		m.cursor = 0
		m.offset = 0

	case "end", "G":
		if len(m.rows) > 0 {
			m.cursor = len(m.rows) - 1
			m.ensureVisible()
		}
	}

	return m, nil
}

// toggleCursor toggles the row under the cursor. Toggling a header
// toggles its whole group.
func (m *Model) toggleCursor() {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return
	}
	r := m.rows[m.cursor]
	if r.kind == rowHeader {
		m.wf.ToggleType(r.typ)
		return
	}
	m.wf.ToggleOne(r.index)
}

// View renders the picker.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if len(m.rows) == 0 {
		return m.renderEmpty()
	}

	contentWidth := m.width - 4
	if contentWidth < 60 {
		contentWidth = 60
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(renderDivider(contentWidth))
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())
	b.WriteString("\n")
	b.WriteString(renderDivider(contentWidth))
	b.WriteString("\n")
	b.WriteString(m.renderList(contentWidth))
	b.WriteString(renderDivider(contentWidth))
	b.WriteString("\n")
	b.WriteString(m.renderFooter(contentWidth))

	return outerBoxStyle.Width(m.width - 2).Render(b.String())
}

// renderEmpty renders the empty state view.
func (m Model) renderEmpty() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(mutedTextStyle.Render("  No relevant components found in this bundle."))
	b.WriteString("\n\n")
	b.WriteString(keyStyle.Render("  [q]") + " " + keyDescStyle.Render("Quit"))
	b.WriteString("\n")

	return outerBoxStyle.Width(m.width - 2).Render(b.String())
}

// renderHeader renders the title line.
func (m Model) renderHeader() string {
	records := m.wf.Records()
	title := fmt.Sprintf("  agentpack - %d components in %s", len(records), m.source)
	return titleStyle.Render(title)
}

// renderHelpBar renders the help bar with key hints.
func (m Model) renderHelpBar() string {
	return "  " + m.help.View(m.keys)
}

// renderList renders the scrollable component list.
func (m Model) renderList(width int) string {
	records := m.wf.Records()
	visibleRows := m.visibleRows()
	pathWidth := width - 36

	var b strings.Builder
	for i := m.offset; i < m.offset+visibleRows && i < len(m.rows); i++ {
		r := m.rows[i]
		isCursor := i == m.cursor

		var line string
		if r.kind == rowHeader {
			line = m.renderHeaderRow(r, isCursor)
		} else {
			rec := records[r.index]
			checkbox := m.recordCheckbox(rec.Selected)
			size := sizeStyle.Render(padLeft(rec.HumanSize(), 9))
			path := truncatePath(rec.SourcePath, pathWidth)

			cursor := " "
			if isCursor {
				cursor = cursorStyle.Render(">")
			}

			line = fmt.Sprintf("    %s %s %s %s  %s",
				checkbox, size, cursor, rec.Name, mutedTextStyle.Render(path))
			if isCursor {
				line = cursorItemStyle.Render(line)
			} else {
				line = normalItemStyle.Render(line)
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	// Pad remaining rows
	rendered := len(m.rows) - m.offset
	if rendered > visibleRows {
		rendered = visibleRows
	}
	for rendered < visibleRows {
		b.WriteString("\n")
		rendered++
	}

	return b.String()
}

// renderHeaderRow renders a type group header with its tri-state checkbox.
func (m Model) renderHeaderRow(r row, isCursor bool) string {
	records := m.wf.Records()

	count := 0
	for _, rec := range records {
		if rec.Type == r.typ {
			count++
		}
	}

	checkbox := m.groupCheckbox(selection.TypeState(records, r.typ))
	label := groupStyle.Render(strings.ToUpper(r.typ.String()))

	cursor := " "
	if isCursor {
		cursor = cursorStyle.Render(">")
	}

	line := fmt.Sprintf("  %s %s %s %s", checkbox, cursor, label,
		mutedTextStyle.Render(fmt.Sprintf("(%d)", count)))
	if isCursor {
		return cursorItemStyle.Render(line)
	}
	return line
}

// recordCheckbox renders a component checkbox.
func (m Model) recordCheckbox(selected bool) string {
	if selected {
		return checkedStyle.Render("[x]")
	}
	return uncheckedStyle.Render("[ ]")
}

// groupCheckbox renders a tri-state group checkbox.
func (m Model) groupCheckbox(state selection.GroupState) string {
	switch state {
	case selection.GroupAll:
		return checkedStyle.Render("[x]")
	case selection.GroupSome:
		return partialStyle.Render("[~]")
	default:
		return uncheckedStyle.Render("[ ]")
	}
}

// renderFooter renders the footer with selection summary.
func (m Model) renderFooter(width int) string {
	records := m.wf.Records()

	var selectedSize int64
	for _, rec := range records {
		if rec.Selected {
			selectedSize += rec.SizeBytes
		}
	}

	left := fmt.Sprintf("  Selected: %d of %d (%s)",
		m.wf.SelectedCount(), len(records), humanize.IBytes(uint64(selectedSize)))
	right := mutedTextStyle.Render("[↑↓] Navigate")

	spacing := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if spacing < 1 {
		spacing = 1
	}

	return left + strings.Repeat(" ", spacing) + right
}

// visibleRows returns the number of visible rows for the list.
func (m Model) visibleRows() int {
	available := m.height - 10
	if available < 5 {
		available = 5
	}
	return available
}

// ensureVisible adjusts offset to keep cursor visible.
func (m *Model) ensureVisible() {
	visibleRows := m.visibleRows()

	if m.cursor < m.offset {
		m.offset = m.cursor
	} else if m.cursor >= m.offset+visibleRows {
		m.offset = m.cursor - visibleRows + 1
	}

	if m.offset < 0 {
		m.offset = 0
	}
}

// Confirmed reports whether the user confirmed the selection.
func (m Model) Confirmed() bool {
	return m.confirmed
}

// Cursor returns the current cursor position.
func (m Model) Cursor() int {
	return m.cursor
}

// Run opens the picker over the workflow's records and blocks until the
// user confirms or cancels. It reports whether the selection was
// confirmed; the workflow's selection state reflects the user's choices
// either way.
func Run(wf *workflow.Workflow, source string) (bool, error) {
	p := tea.NewProgram(NewModel(wf, source), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("picker terminated: %w", err)
	}

	model, ok := final.(Model)
	if !ok {
		return false, fmt.Errorf("unexpected model type %T", final)
	}
	return model.Confirmed(), nil
}

// renderDivider renders a horizontal divider line.
func renderDivider(width int) string {
	return dividerStyle.Render(strings.Repeat("─", width))
}

// padLeft pads a string with spaces on the left to the desired width.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// truncatePath truncates a path to maxLen, keeping the tail.
func truncatePath(path string, maxLen int) string {
	if maxLen <= 3 || len(path) <= maxLen {
		return path
	}
	return "..." + path[len(path)-maxLen+3:]
}
