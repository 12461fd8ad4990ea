package bundle

import (
	"time"

	"github.com/jamesainslie/agentpack/pkg/agentpack/component"
	"github.com/jamesainslie/agentpack/pkg/agentpack/logging"
)

// logger is the package-level logger for scan operations.
var logger = logging.Get("scanner")

// Scan classifies a set of file handles into selectable records.
//
// For each handle the relevance filter runs first; relevant files are
// classified by path and emitted with Selected set (opt-out model). Output
// order follows input order, and scanning the same handle list twice yields
// identical records.
//
// A malformed handle (nil, or with an empty path) is skipped rather than
// aborting the scan: failure isolation is per file, not per batch. The
// skip count is surfaced on the result so callers can report it.
func Scan(handles []FileHandle) *ScanResult {
	start := time.Now()
	result := &ScanResult{
		Records: make([]Record, 0, len(handles)),
	}

	for _, h := range handles {
		if h == nil || h.Path() == "" {
			result.Skipped++
			logger.Warn("skipping malformed file handle")
			continue
		}

		path := h.Path()
		if !Relevant(path) {
			result.Dropped++
			logger.Debug("dropped irrelevant file", "path", path)
			continue
		}

		result.Records = append(result.Records, Record{
			Name:       component.DeriveName(path),
			Type:       component.Classify(path),
			SourcePath: path,
			SizeBytes:  h.Size(),
			Selected:   true,
		})
	}

	result.Elapsed = time.Since(start)
	logger.Debug("scan complete",
		"records", len(result.Records),
		"dropped", result.Dropped,
		"skipped", result.Skipped,
	)
	return result
}

// ResolveHandle finds the handle whose path matches the given source path.
// The record list and handle list are parallel for a given scan, so a
// record can always be traced back to its originating handle this way.
// Returns nil if no handle matches.
func ResolveHandle(handles []FileHandle, sourcePath string) FileHandle {
	for _, h := range handles {
		if h != nil && h.Path() == sourcePath {
			return h
		}
	}
	return nil
}
