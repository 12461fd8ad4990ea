package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jamesainslie/agentpack/pkg/agentpack/bundle"
	"github.com/jamesainslie/agentpack/pkg/agentpack/config"
	"github.com/jamesainslie/agentpack/pkg/agentpack/manifest"
	"github.com/jamesainslie/agentpack/pkg/agentpack/output"
	"github.com/jamesainslie/agentpack/pkg/agentpack/source"
	"github.com/jamesainslie/agentpack/pkg/agentpack/workflow"
)

var scanCmd = &cobra.Command{
	Use:   "scan [path...]",
	Short: "Scan a bundle and classify its contents",
	Long: `Scan a directory or a set of files and classify each relevant file
into a component type (skill, tool, memory, agent, other).

Irrelevant files (binaries, images, unsupported extensions) are dropped.
Pass a directory to scan it recursively, or individual file paths.`,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

// resolveSource collects file handles for the given args.
// A single directory argument is collected recursively; otherwise the
// args are treated as individual files.
func resolveSource(args []string, excludes []string) (string, []bundle.FileHandle, error) {
	scanPath := "."
	if len(args) > 0 {
		scanPath = args[0]
	}

	absPath, err := filepath.Abs(scanPath)
	if err != nil {
		return "", nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("path does not exist: %s", absPath)
		}
		return "", nil, fmt.Errorf("cannot access path: %w", err)
	}

	if info.IsDir() {
		if len(args) > 1 {
			return "", nil, fmt.Errorf("cannot mix directories and files: %s", args[1])
		}
		handles, err := source.CollectDir(absPath, excludes)
		if err != nil {
			return "", nil, fmt.Errorf("failed to collect directory: %w", err)
		}
		return absPath, handles, nil
	}

	handles, err := source.CollectFiles(args)
	if err != nil {
		return "", nil, fmt.Errorf("failed to collect files: %w", err)
	}
	return absPath, handles, nil
}

// runScan is the scan command handler.
func runScan(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := initLogging(cfg); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	excludes := viper.GetStringSlice("exclude")

	sourcePath, handles, err := resolveSource(args, excludes)
	if err != nil {
		return err
	}

	printVerbose("Collected %d files from %s", len(handles), sourcePath)

	start := time.Now()
	wf := workflow.New(handles)
	records := wf.Scan()
	elapsed := time.Since(start)

	result := &output.Result{
		Records: records,
		Source:  sourcePath,
		Dropped: wf.Dropped(),
		Skipped: wf.Skipped(),
		Elapsed: elapsed,
	}

	outFormat := viper.GetString("output")
	if outFormat == "" {
		outFormat = cfg.Format
	}

	formatter, err := output.Get(outFormat)
	if err != nil {
		return fmt.Errorf("unknown output format %q: available formats are %v", outFormat, output.Available())
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, result); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	fmt.Print(buf.String())

	logScanToManifest(cfg, records)

	return nil
}

// logScanToManifest records the scan in the operation manifest.
// Manifest failures are logged but never fail the command.
func logScanToManifest(cfg *config.Config, records []bundle.Record) {
	if !cfg.Manifest.Enabled {
		return
	}

	m, err := manifest.New(cfg.Manifest.Path)
	if err != nil {
		printVerbose("Failed to initialize manifest: %v", err)
		return
	}

	if _, err := m.LogScan(manifest.RecordsOf(records)); err != nil {
		printVerbose("Failed to log scan to manifest: %v", err)
	}
}
