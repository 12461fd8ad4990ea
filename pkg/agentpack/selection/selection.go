// Package selection provides pure toggle operations over scanned bundle
// records. Every operation returns a new slice; the caller's records are
// never mutated in place, so a prior record list can always be kept for
// re-applying selection after a rescan.
package selection

import (
	"github.com/jamesainslie/agentpack/pkg/agentpack/bundle"
	"github.com/jamesainslie/agentpack/pkg/agentpack/component"
)

// GroupState describes how much of a record group is currently selected.
// It backs the indeterminate checkbox display; the records themselves only
// carry the boolean.
type GroupState int

const (
	// GroupNone means no record in the group is selected.
	GroupNone GroupState = iota
	// GroupSome means the group is partially selected.
	GroupSome
	// GroupAll means every record in the group is selected.
	GroupAll
)

// ToggleOne flips the Selected flag on exactly one record and returns the
// updated list. An out-of-range index returns the input unchanged.
func ToggleOne(records []bundle.Record, index int) []bundle.Record {
	if index < 0 || index >= len(records) {
		return records
	}
	out := clone(records)
	out[index].Selected = !out[index].Selected
	return out
}

// ToggleType applies all-or-nothing selection to every record of the given
// type: if all of them are selected, all are deselected; otherwise all are
// selected. Applied twice it returns the original selection (involution).
// Records of other types are untouched.
func ToggleType(records []bundle.Record, t component.Type) []bundle.Record {
	target := !allSelected(records, func(r bundle.Record) bool { return r.Type == t })

	out := clone(records)
	for i := range out {
		if out[i].Type == t {
			out[i].Selected = target
		}
	}
	return out
}

// ToggleAll applies the same all-or-nothing logic across every record
// regardless of type. An empty list is a no-op.
func ToggleAll(records []bundle.Record) []bundle.Record {
	target := !allSelected(records, func(bundle.Record) bool { return true })

	out := clone(records)
	for i := range out {
		out[i].Selected = target
	}
	return out
}

// TypeState returns the selection state of the records of the given type.
// A group with no records reports GroupNone.
func TypeState(records []bundle.Record, t component.Type) GroupState {
	return groupState(records, func(r bundle.Record) bool { return r.Type == t })
}

// State returns the selection state across all records.
func State(records []bundle.Record) GroupState {
	return groupState(records, func(bundle.Record) bool { return true })
}

// SelectedPaths returns the source paths of all selected records, in record
// order. This is the input the archive builder resolves against the handle
// list.
func SelectedPaths(records []bundle.Record) []string {
	var paths []string
	for _, r := range records {
		if r.Selected {
			paths = append(paths, r.SourcePath)
		}
	}
	return paths
}

// SelectedCount returns the number of selected records.
func SelectedCount(records []bundle.Record) int {
	n := 0
	for _, r := range records {
		if r.Selected {
			n++
		}
	}
	return n
}

// Reapply carries Selected flags from a previous record list onto a fresh
// scan of the same files, matching by source path. Records with no prior
// counterpart keep their scan default.
func Reapply(fresh, prior []bundle.Record) []bundle.Record {
	if len(prior) == 0 {
		return clone(fresh)
	}

	selected := make(map[string]bool, len(prior))
	for _, r := range prior {
		selected[r.SourcePath] = r.Selected
	}

	out := clone(fresh)
	for i := range out {
		if sel, ok := selected[out[i].SourcePath]; ok {
			out[i].Selected = sel
		}
	}
	return out
}

// allSelected reports whether every record matching the predicate is
// selected. Vacuously true when nothing matches, which makes the toggle
// operations no-ops on empty groups.
func allSelected(records []bundle.Record, match func(bundle.Record) bool) bool {
	for _, r := range records {
		if match(r) && !r.Selected {
			return false
		}
	}
	return true
}

// groupState computes the tri-state for records matching the predicate.
func groupState(records []bundle.Record, match func(bundle.Record) bool) GroupState {
	total, selected := 0, 0
	for _, r := range records {
		if match(r) {
			total++
			if r.Selected {
				selected++
			}
		}
	}
	switch {
	case total == 0 || selected == 0:
		return GroupNone
	case selected == total:
		return GroupAll
	default:
		return GroupSome
	}
}

func clone(records []bundle.Record) []bundle.Record {
	out := make([]bundle.Record, len(records))
	copy(out, records)
	return out
}
