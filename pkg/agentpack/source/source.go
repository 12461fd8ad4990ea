// Package source collects file handles from the local filesystem for the
// CLI. It stands in for the browser's drag-drop and folder-picker
// collaborators: a chosen folder yields folder-relative paths, a single
// file yields its bare filename.
package source

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/charlievieth/fastwalk"
	"github.com/gobwas/glob"
	"github.com/jamesainslie/agentpack/pkg/agentpack/bundle"
	"github.com/jamesainslie/agentpack/pkg/agentpack/logging"
)

// logger is the package-level logger for source collection.
var logger = logging.Get("source")

// DiskHandle is a bundle.FileHandle backed by a file on disk. Content is
// read lazily, only when an archive build needs it.
type DiskHandle struct {
	relPath string
	absPath string
	size    int64
}

// Path returns the handle's relative path.
func (h *DiskHandle) Path() string { return h.relPath }

// Size returns the file length in bytes.
func (h *DiskHandle) Size() int64 { return h.size }

// ReadBytes reads the full file content from disk.
func (h *DiskHandle) ReadBytes(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(h.absPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", h.relPath, err)
	}
	return data, nil
}

// CollectDir walks root and returns a handle per regular file, with paths
// relative to root. Files matching an exclude pattern are omitted, as is
// everything under an excluded directory. Output is sorted by relative
// path so repeated collections of the same tree are identical.
func CollectDir(root string, excludes []string) ([]bundle.FileHandle, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", root, err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	globs := compileExcludes(excludes)

	var (
		mu      sync.Mutex
		handles []*DiskHandle
	)
	conf := fastwalk.Config{Follow: false}
	err = fastwalk.Walk(&conf, absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("walk error", "path", path, "error", err)
			return nil
		}

		rel, relErr := filepath.Rel(absRoot, path)
		if relErr != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if matchesAny(globs, rel, d.Name()) {
			if d.IsDir() {
				return fastwalk.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			logger.Warn("stat error", "path", path, "error", err)
			return nil
		}

		mu.Lock()
		handles = append(handles, &DiskHandle{
			relPath: rel,
			absPath: path,
			size:    fi.Size(),
		})
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	sort.Slice(handles, func(i, j int) bool {
		return handles[i].relPath < handles[j].relPath
	})

	out := make([]bundle.FileHandle, len(handles))
	for i, h := range handles {
		out[i] = h
	}
	logger.Debug("collected directory", "root", root, "files", len(out))
	return out, nil
}

// CollectFiles returns a handle per named file. Each handle's path is the
// bare filename, matching how a non-folder selection arrives.
func CollectFiles(paths []string) ([]bundle.FileHandle, error) {
	handles := make([]bundle.FileHandle, 0, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", p, err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("%s is a directory, not a file", p)
		}
		handles = append(handles, &DiskHandle{
			relPath: filepath.Base(p),
			absPath: abs,
			size:    info.Size(),
		})
	}
	return handles, nil
}

// compileExcludes compiles glob patterns, skipping any that fail to parse.
func compileExcludes(patterns []string) []glob.Glob {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			logger.Warn("invalid exclude pattern", "pattern", p, "error", err)
			continue
		}
		globs = append(globs, g)
	}
	return globs
}

// matchesAny reports whether any exclude pattern matches the relative
// path or the base name. Every pattern is tried against both, so a bare
// "node_modules" excludes the directory at any depth.
func matchesAny(globs []glob.Glob, rel, base string) bool {
	for _, g := range globs {
		if g.Match(rel) || g.Match(base) {
			return true
		}
	}
	return false
}

var _ bundle.FileHandle = (*DiskHandle)(nil)
