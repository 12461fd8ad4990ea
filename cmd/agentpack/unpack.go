package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jamesainslie/agentpack/pkg/agentpack/archive"
	"github.com/jamesainslie/agentpack/pkg/agentpack/config"
	"github.com/jamesainslie/agentpack/pkg/agentpack/manifest"
)

var unpackCmd = &cobra.Command{
	Use:   "unpack <archive> [dest]",
	Short: "Extract an archive built by pack",
	Long: `Extract a packed archive into a destination directory.

Entry paths are validated before extraction: absolute paths, drive
letters, and parent directory references are rejected, and nothing is
written unless the whole archive is readable.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runUnpack,
}

func init() {
	rootCmd.AddCommand(unpackCmd)
}

// runUnpack is the unpack command handler.
func runUnpack(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := initLogging(cfg); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	archivePath := args[0]
	dest := "."
	if len(args) > 1 {
		dest = args[1]
	}

	data, err := os.ReadFile(archivePath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("archive does not exist: %s", archivePath)
		}
		return fmt.Errorf("failed to read archive: %w", err)
	}

	files, err := archive.Extract(data)
	if err != nil {
		if errors.Is(err, archive.ErrUnsafePath) {
			return fmt.Errorf("refusing to extract %s: %w", archivePath, err)
		}
		return fmt.Errorf("failed to extract archive: %w", err)
	}

	absDest, err := filepath.Abs(dest)
	if err != nil {
		return fmt.Errorf("failed to resolve destination: %w", err)
	}

	if err := archive.WriteFiles(absDest, files); err != nil {
		return fmt.Errorf("failed to write files: %w", err)
	}

	var total int64
	for _, f := range files {
		total += int64(len(f.Data))
	}

	printInfo("Extracted %d files into %s (%s)", len(files), absDest, humanize.IBytes(uint64(total)))
	if getVerbose() {
		for _, f := range files {
			printVerbose("  %s", f.Path)
		}
	}

	logUnpackToManifest(cfg, files)

	return nil
}

// logUnpackToManifest records the unpack in the operation manifest.
func logUnpackToManifest(cfg *config.Config, files []archive.ExtractedFile) {
	if !cfg.Manifest.Enabled {
		return
	}

	records := make([]manifest.FileRecord, len(files))
	for i, f := range files {
		records[i] = manifest.FileRecord{
			Path: f.Path,
			Size: int64(len(f.Data)),
		}
	}

	m, err := manifest.New(cfg.Manifest.Path)
	if err != nil {
		printVerbose("Failed to initialize manifest: %v", err)
		return
	}

	if _, err := m.LogUnpack(records); err != nil {
		printVerbose("Failed to log unpack to manifest: %v", err)
	}
}
