package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/jamesainslie/agentpack/pkg/agentpack/component"
)

// TableFormatter formats output with colors and styling using lipgloss.
// Records are grouped by component type with a header and summary footer.
// It produces a visually appealing output suitable for terminal display.
type TableFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *TableFormatter) Format(w *bytes.Buffer, r *Result) error {
	w.WriteString(f.formatHeader(r))
	w.WriteString("\n")
	w.WriteString(f.formatGroups(r))
	w.WriteString(f.formatFooter(r))
	return nil
}

// formatHeader builds the header box with scan metadata.
func (f *TableFormatter) formatHeader(r *Result) string {
	var lines []string

	sourceLabel := LabelStyle.Render("Source:")
	sourceValue := ValueStyle.Render(r.Source)
	lines = append(lines, fmt.Sprintf("%s %s", sourceLabel, sourceValue))

	scannedLabel := LabelStyle.Render("Scanned:")
	scannedValue := ValueStyle.Render(fmt.Sprintf("%d components in %s",
		len(r.Records), formatElapsed(r)))
	line := fmt.Sprintf("%s %s", scannedLabel, scannedValue)

	if r.Dropped > 0 {
		line += "  " + MutedStyle.Render(fmt.Sprintf("%d irrelevant", r.Dropped))
	}
	if r.Skipped > 0 {
		line += "  " + WarningStyle.Render(fmt.Sprintf("%d skipped", r.Skipped))
	}
	lines = append(lines, line)

	return HeaderBox.Render(strings.Join(lines, "\n"))
}

// formatGroups builds the per-type record listing.
func (f *TableFormatter) formatGroups(r *Result) string {
	if len(r.Records) == 0 {
		return MutedStyle.Render("  No relevant components found\n")
	}

	groups := r.ByType()

	maxSizeWidth := 0
	for _, rec := range r.Records {
		if len(rec.HumanSize()) > maxSizeWidth {
			maxSizeWidth = len(rec.HumanSize())
		}
	}
	if maxSizeWidth < 8 {
		maxSizeWidth = 8
	}

	var sb strings.Builder
	for _, typ := range component.Types() {
		records, ok := groups[typ]
		if !ok {
			continue
		}

		heading := TypeStyle.Render(typeHeading(typ, len(records)))
		sb.WriteString(fmt.Sprintf("  %s\n", heading))

		for _, rec := range records {
			marker := f.selectionMarker(rec.Selected)
			sizeStr := SizeStyle.Render(padLeft(rec.HumanSize(), maxSizeWidth))
			nameStr := ValueStyle.Render(rec.Name)
			pathStr := MutedStyle.Render(rec.SourcePath)
			sb.WriteString(fmt.Sprintf("  %s %s  %s  %s\n", marker, sizeStr, nameStr, pathStr))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// selectionMarker renders a checkbox for the record's selection state.
func (f *TableFormatter) selectionMarker(selected bool) string {
	if selected {
		return SuccessStyle.Render("[x]")
	}
	return MutedStyle.Render("[ ]")
}

// formatFooter builds the footer box with summary information.
func (f *TableFormatter) formatFooter(r *Result) string {
	var parts []string

	countLabel := LabelStyle.Render("Components:")
	countValue := ValueStyle.Render(fmt.Sprintf("%d", len(r.Records)))
	parts = append(parts, fmt.Sprintf("%s %s", countLabel, countValue))

	totalLabel := LabelStyle.Render("Total:")
	totalValue := SizeStyle.Render(humanize.IBytes(uint64(r.TotalSize())))
	parts = append(parts, fmt.Sprintf("%s %s", totalLabel, totalValue))

	hint := MutedStyle.Render("Use -o plain for unformatted output")
	parts = append(parts, hint)

	return FooterBox.Render(strings.Join(parts, "  "))
}

// typeHeading returns the group heading for a component type.
func typeHeading(typ component.Type, count int) string {
	return fmt.Sprintf("%s (%d)", strings.ToUpper(typ.String()), count)
}

// formatElapsed formats the scan duration in a human-friendly way.
func formatElapsed(r *Result) string {
	sec := r.Elapsed.Seconds()
	if sec < 1 {
		return fmt.Sprintf("%.0fms", sec*1000)
	}
	if sec < 60 {
		return fmt.Sprintf("%.1fs", sec)
	}
	minutes := int(sec) / 60
	seconds := int(sec) % 60
	return fmt.Sprintf("%dm %ds", minutes, seconds)
}

// padLeft pads a string with spaces on the left to achieve the desired width.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

func init() {
	Register("table", func() Formatter {
		return &TableFormatter{}
	})
}

// Ensure TableFormatter implements Formatter.
var _ Formatter = (*TableFormatter)(nil)
