// Package manifest provides operation logging for agentpack runs. Each
// scan, pack, and unpack writes a JSON entry so users can audit what went
// into an uploaded bundle.
package manifest

import (
	"time"

	"github.com/jamesainslie/agentpack/pkg/agentpack/bundle"
)

// OperationType represents the type of operation.
type OperationType string

const (
	// OpScan represents a bundle scan.
	OpScan OperationType = "scan"
	// OpPack represents an archive build.
	OpPack OperationType = "pack"
	// OpUnpack represents an archive extraction.
	OpUnpack OperationType = "unpack"
)

// Entry represents a single manifest entry.
type Entry struct {
	ID        string        `json:"id"`
	Timestamp time.Time     `json:"timestamp"`
	Operation OperationType `json:"operation"`
	Files     []FileRecord  `json:"files"`
	Summary   Summary       `json:"summary"`
}

// FileRecord represents a file in the manifest.
type FileRecord struct {
	Path     string `json:"path"`
	Type     string `json:"type,omitempty"`
	Size     int64  `json:"size"`
	Selected bool   `json:"selected,omitempty"`
}

// Summary contains operation summary.
type Summary struct {
	TotalFiles int64 `json:"total_files"`
	TotalBytes int64 `json:"total_bytes"`

	// Archive is the built archive name for pack operations.
	Archive string `json:"archive,omitempty"`
}

// RecordsOf converts scanned bundle records into manifest file records.
func RecordsOf(records []bundle.Record) []FileRecord {
	out := make([]FileRecord, len(records))
	for i, r := range records {
		out[i] = FileRecord{
			Path:     r.SourcePath,
			Type:     r.Type.String(),
			Size:     r.SizeBytes,
			Selected: r.Selected,
		}
	}
	return out
}
