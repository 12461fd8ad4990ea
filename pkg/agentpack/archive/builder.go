// Package archive assembles selected bundle records into a single upload
// payload and unpacks exported archives back into files. The container
// format is zip with relative paths preserved, matching what the registry
// backend produces and re-parses.
package archive

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime"
	"path"
	"strings"

	"github.com/jamesainslie/agentpack/pkg/agentpack/bundle"
	"github.com/jamesainslie/agentpack/pkg/agentpack/logging"
	"github.com/jamesainslie/agentpack/pkg/agentpack/selection"
)

// logger is the package-level logger for archive operations.
var logger = logging.Get("archive")

// ErrEmptySelection indicates that no selected record resolved to a handle.
// Building an empty archive is a caller-side contract violation, not a
// valid empty result.
var ErrEmptySelection = errors.New("no selected files to archive")

// ErrHandleMismatch indicates that a selected record's source path has no
// matching handle. The record and handle lists have desynchronized; the
// caller must restart from a fresh scan.
var ErrHandleMismatch = errors.New("selected path has no matching file handle")

// Archive is a built upload payload.
type Archive struct {
	// Name is the filename to upload under.
	Name string

	// ContentType is the MIME type of Data: the zip type for containers,
	// the original file's type for single-file pass-through.
	ContentType string

	// Data is the payload bytes.
	Data []byte

	// FileCount is the number of files included.
	FileCount int

	// Wrapped reports whether Data is a zip container. A single selected
	// file is passed through verbatim and is not wrapped.
	Wrapped bool
}

// Build assembles the currently selected records into an upload payload.
//
// Selected records are resolved back to their handles by source path.
// Exactly one resolved file is passed through verbatim; more than one is
// packed into a zip container keyed by relative path, so directory
// structure survives the round trip. Assembly is all-or-nothing: any
// resolution or read failure fails the whole build.
func Build(ctx context.Context, records []bundle.Record, handles []bundle.FileHandle, baseName string) (*Archive, error) {
	paths := selection.SelectedPaths(records)
	if len(paths) == 0 {
		return nil, ErrEmptySelection
	}

	resolved := make([]bundle.FileHandle, 0, len(paths))
	for _, p := range paths {
		h := bundle.ResolveHandle(handles, p)
		if h == nil {
			return nil, fmt.Errorf("%w: %s", ErrHandleMismatch, p)
		}
		resolved = append(resolved, h)
	}

	if len(resolved) == 1 {
		return passThrough(ctx, resolved[0])
	}
	return buildZip(ctx, resolved, baseName)
}

// passThrough returns a single file's raw bytes unchanged.
func passThrough(ctx context.Context, h bundle.FileHandle) (*Archive, error) {
	data, err := h.ReadBytes(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", h.Path(), err)
	}

	name := path.Base(strings.ReplaceAll(h.Path(), "\\", "/"))
	logger.Debug("single-file pass-through", "name", name, "bytes", len(data))

	return &Archive{
		Name:        name,
		ContentType: contentTypeFor(name),
		Data:        data,
		FileCount:   1,
		Wrapped:     false,
	}, nil
}

// buildZip packs the resolved handles into a zip container. Every file is
// read fully into memory; expected bundle sizes are source-control-sized
// text and config files.
func buildZip(ctx context.Context, handles []bundle.FileHandle, baseName string) (*Archive, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, h := range handles {
		data, err := h.ReadBytes(ctx)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", h.Path(), err)
		}

		// Entries keep the original relative path, slash-normalized.
		entry := strings.ReplaceAll(h.Path(), "\\", "/")
		w, err := zw.Create(entry)
		if err != nil {
			return nil, fmt.Errorf("creating zip entry %s: %w", entry, err)
		}
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("writing zip entry %s: %w", entry, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalizing archive: %w", err)
	}

	name := ArchiveName(baseName)
	logger.Debug("built archive", "name", name, "files", len(handles), "bytes", buf.Len())

	return &Archive{
		Name:        name,
		ContentType: "application/zip",
		Data:        buf.Bytes(),
		FileCount:   len(handles),
		Wrapped:     true,
	}, nil
}

// ArchiveName derives the upload filename from a base name: whitespace is
// replaced with underscores and the "_upload.zip" suffix is appended.
func ArchiveName(baseName string) string {
	sanitized := strings.Join(strings.Fields(baseName), "_")
	if sanitized == "" {
		sanitized = "bundle"
	}
	return sanitized + "_upload.zip"
}

// contentTypeFor returns the MIME type for a filename, falling back to
// application/octet-stream. The relevant extensions map through a fixed
// table so the result never depends on the host's mime database; anything
// else consults the database with parameters stripped.
func contentTypeFor(name string) string {
	ext := strings.ToLower(path.Ext(name))
	switch ext {
	case ".json":
		return "application/json"
	case ".yaml", ".yml":
		return "application/yaml"
	case ".md":
		return "text/markdown"
	case ".txt":
		return "text/plain"
	case ".py":
		return "text/x-python"
	case ".js":
		return "text/javascript"
	case ".ts":
		return "text/plain"
	}

	if t := mime.TypeByExtension(ext); t != "" {
		if media, _, err := mime.ParseMediaType(t); err == nil {
			return media
		}
		return t
	}
	return "application/octet-stream"
}
