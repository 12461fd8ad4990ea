package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsafePath indicates an archive entry whose path would escape the
// extraction root (absolute, drive-lettered, or traversal path).
var ErrUnsafePath = errors.New("unsafe archive entry path")

// ExtractedFile is one entry pulled out of an exported archive.
type ExtractedFile struct {
	// Path is the entry's relative path inside the archive.
	Path string

	// Data is the entry's content.
	Data []byte
}

// Extract unpacks an exported agent archive into its files, preserving
// relative paths. Extraction is all-or-nothing: a corrupt container or an
// unsafe entry path fails the whole call.
func Extract(data []byte) ([]ExtractedFile, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}

	var files []ExtractedFile
	for _, entry := range zr.File {
		if entry.FileInfo().IsDir() {
			continue
		}
		if !safeEntryPath(entry.Name) {
			return nil, fmt.Errorf("%w: %s", ErrUnsafePath, entry.Name)
		}

		rc, err := entry.Open()
		if err != nil {
			return nil, fmt.Errorf("opening entry %s: %w", entry.Name, err)
		}
		content, err := io.ReadAll(rc)
		closeErr := rc.Close()
		if err != nil {
			return nil, fmt.Errorf("reading entry %s: %w", entry.Name, err)
		}
		if closeErr != nil {
			return nil, fmt.Errorf("closing entry %s: %w", entry.Name, closeErr)
		}

		files = append(files, ExtractedFile{Path: entry.Name, Data: content})
	}

	logger.Debug("extracted archive", "files", len(files))
	return files, nil
}

// WriteFiles materializes extracted files under dir, creating intermediate
// directories as needed.
func WriteFiles(dir string, files []ExtractedFile) error {
	for _, f := range files {
		dest := filepath.Join(dir, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", f.Path, err)
		}
		if err := os.WriteFile(dest, f.Data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", f.Path, err)
		}
	}
	return nil
}

// safeEntryPath reports whether a zip entry path can be extracted without
// escaping the destination directory. Rejects empty paths, absolute paths,
// Windows drive letters, and any ".." traversal component.
func safeEntryPath(p string) bool {
	if p == "" {
		return false
	}
	if strings.HasPrefix(p, "/") || strings.HasPrefix(p, "\\") {
		return false
	}
	if len(p) >= 2 && p[1] == ':' {
		return false
	}
	for _, part := range strings.Split(strings.ReplaceAll(p, "\\", "/"), "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
