// Package workflow orchestrates one ingestion pass: scan a handle set,
// curate the selection, build the upload archive. A Workflow instance
// exclusively owns its record and handle lists; instances are not shared
// and are discarded when the enclosing operation completes or is cancelled.
package workflow

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jamesainslie/agentpack/pkg/agentpack/archive"
	"github.com/jamesainslie/agentpack/pkg/agentpack/bundle"
	"github.com/jamesainslie/agentpack/pkg/agentpack/component"
	"github.com/jamesainslie/agentpack/pkg/agentpack/logging"
	"github.com/jamesainslie/agentpack/pkg/agentpack/selection"
)

// logger is the package-level logger for workflow operations.
var logger = logging.Get("workflow")

// ErrNotScanned indicates an operation that needs scan results before any
// scan ran.
var ErrNotScanned = errors.New("workflow has no scan results")

// Workflow owns the state of one scan-curate-build pass.
type Workflow struct {
	id      string
	handles []bundle.FileHandle
	records []bundle.Record
	skipped int
	dropped int
	scanned bool
}

// New creates a workflow over the given file handles.
func New(handles []bundle.FileHandle) *Workflow {
	return &Workflow{
		id:      uuid.NewString(),
		handles: handles,
	}
}

// ID returns the workflow's unique identifier.
func (w *Workflow) ID() string { return w.id }

// Scan classifies the workflow's handles into records. Calling it again
// rescans the same handles and re-applies the current selection by source
// path, so toggles survive a re-derivation.
func (w *Workflow) Scan() []bundle.Record {
	result := bundle.Scan(w.handles)

	if w.scanned {
		result.Records = selection.Reapply(result.Records, w.records)
	}

	w.records = result.Records
	w.skipped = result.Skipped
	w.dropped = result.Dropped
	w.scanned = true

	logger.Info("workflow scan",
		"id", w.id,
		"records", len(w.records),
		"dropped", w.dropped,
		"skipped", w.skipped,
	)
	return w.Records()
}

// Records returns a copy of the current record list.
func (w *Workflow) Records() []bundle.Record {
	out := make([]bundle.Record, len(w.records))
	copy(out, w.records)
	return out
}

// Skipped returns how many handles the last scan skipped as malformed or
// unreadable. Non-fatal: the caller reports it and proceeds.
func (w *Workflow) Skipped() int { return w.skipped }

// Dropped returns how many files the last scan dropped as irrelevant.
func (w *Workflow) Dropped() int { return w.dropped }

// ToggleOne flips selection on the record at index.
func (w *Workflow) ToggleOne(index int) {
	w.records = selection.ToggleOne(w.records, index)
}

// ToggleType applies group toggling to all records of the given type.
func (w *Workflow) ToggleType(t component.Type) {
	w.records = selection.ToggleType(w.records, t)
}

// ToggleAll applies group toggling across every record.
func (w *Workflow) ToggleAll() {
	w.records = selection.ToggleAll(w.records)
}

// SelectedCount returns the number of currently selected records.
func (w *Workflow) SelectedCount() int {
	return selection.SelectedCount(w.records)
}

// Build assembles the currently selected records into an upload archive.
// A build failure leaves no partial state; the caller restarts from a
// fresh scan rather than retrying a stale selection.
func (w *Workflow) Build(ctx context.Context, baseName string) (*archive.Archive, error) {
	if !w.scanned {
		return nil, ErrNotScanned
	}

	a, err := archive.Build(ctx, w.records, w.handles, baseName)
	if err != nil {
		logger.Error("workflow build failed", "id", w.id, "error", err)
		return nil, err
	}

	logger.Info("workflow build",
		"id", w.id,
		"archive", a.Name,
		"files", a.FileCount,
		"wrapped", a.Wrapped,
	)
	return a, nil
}

// Reset discards all scan state. The workflow keeps its handles and can be
// scanned again from scratch.
func (w *Workflow) Reset() {
	w.records = nil
	w.skipped = 0
	w.dropped = 0
	w.scanned = false
}
