// Package bundle provides the scanning half of the agent-bundle ingestion
// pipeline. It turns an arbitrary set of user-selected file handles into a
// list of classified, selectable records that the selection and archive
// layers operate on.
package bundle

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jamesainslie/agentpack/pkg/agentpack/component"
)

// FileHandle is an opaque reference to a file's bytes plus its path and
// length. The pipeline never mutates file bytes; it reads the length during
// scanning and, lazily, the content when building an archive.
type FileHandle interface {
	// Path returns the relative path as supplied by the file-selection
	// mechanism: folder-relative when a folder was chosen, otherwise the
	// bare filename.
	Path() string

	// Size returns the file length in bytes.
	Size() int64

	// ReadBytes returns the full file content.
	ReadBytes(ctx context.Context) ([]byte, error)
}

// Record is one classified, selectable file in a scanned bundle.
// Records are ephemeral: created fresh on every scan and replaced wholesale
// when the input file set changes.
type Record struct {
	// Name is the human-readable display name derived from the path.
	Name string `json:"name" yaml:"name"`

	// Type is the component type the classifier assigned.
	Type component.Type `json:"type" yaml:"type"`

	// SourcePath is the relative path the file arrived under. It is the
	// classifier's sole input and the key used to resolve the record back
	// to its originating handle.
	SourcePath string `json:"source_path" yaml:"source_path"`

	// SizeBytes is the file length in bytes.
	SizeBytes int64 `json:"size_bytes" yaml:"size_bytes"`

	// Selected marks the record for inclusion in the built archive.
	// Scans default every record to selected (opt-out model).
	Selected bool `json:"selected" yaml:"selected"`
}

// HumanSize returns the record's size formatted as a human-readable string.
func (r Record) HumanSize() string {
	return humanize.IBytes(uint64(r.SizeBytes))
}

// ScanResult holds the records produced by a scan plus bookkeeping about
// inputs that produced no record.
type ScanResult struct {
	// Records contains one entry per relevant, readable input handle,
	// in input order.
	Records []Record `json:"records" yaml:"records"`

	// Dropped counts files rejected by the relevance filter (binaries,
	// images, lockfiles). These are silent: not an error condition.
	Dropped int `json:"dropped" yaml:"dropped"`

	// Skipped counts malformed or unreadable handles. Non-fatal, but
	// surfaced so the caller can report "N files skipped".
	Skipped int `json:"skipped" yaml:"skipped"`

	// Elapsed is the time taken to complete the scan.
	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"`
}

// CountByType returns how many records of the given type are in the result.
func (s *ScanResult) CountByType(t component.Type) int {
	n := 0
	for _, r := range s.Records {
		if r.Type == t {
			n++
		}
	}
	return n
}

// TotalSize returns the sum of all record sizes in bytes.
func (s *ScanResult) TotalSize() int64 {
	var total int64
	for _, r := range s.Records {
		total += r.SizeBytes
	}
	return total
}
