package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jamesainslie/agentpack/cmd/agentpack/tui"
	"github.com/jamesainslie/agentpack/pkg/agentpack/archive"
	"github.com/jamesainslie/agentpack/pkg/agentpack/bundle"
	"github.com/jamesainslie/agentpack/pkg/agentpack/component"
	"github.com/jamesainslie/agentpack/pkg/agentpack/config"
	"github.com/jamesainslie/agentpack/pkg/agentpack/manifest"
	"github.com/jamesainslie/agentpack/pkg/agentpack/selection"
	"github.com/jamesainslie/agentpack/pkg/agentpack/workflow"
)

var (
	packName    string
	packOut     string
	packTypes   []string
	packYes     bool
	packTimeout time.Duration
)

var packCmd = &cobra.Command{
	Use:   "pack [path...]",
	Short: "Curate a bundle and build an upload archive",
	Long: `Scan a bundle, curate the selection, and build an archive.

By default pack opens an interactive picker to choose which components
to include. Use --yes to skip the picker and pack the full selection,
or --type to restrict the selection to specific component types.

A single selected file is packaged verbatim; multiple files are zipped
with their relative paths preserved.`,
	RunE: runPack,
}

func init() {
	packCmd.Flags().StringVarP(&packName, "name", "N", "", "archive base name (default: agent bundle name from config)")
	packCmd.Flags().StringVarP(&packOut, "out", "O", ".", "output directory for the archive")
	packCmd.Flags().StringSliceVarP(&packTypes, "type", "t", nil, "restrict selection to component types (skill, tool, memory, agent, other)")
	packCmd.Flags().BoolVarP(&packYes, "yes", "y", false, "skip the interactive picker and pack the current selection")
	packCmd.Flags().DurationVar(&packTimeout, "timeout", 0, "abort archive building after this duration (0=none)")

	rootCmd.AddCommand(packCmd)
}

// runPack is the pack command handler.
func runPack(_ *cobra.Command, args []string) error {
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

	wf := workflow.New(handles)
	records := wf.Scan()

	if len(records) == 0 {
		printInfo("No relevant components found in %s", sourcePath)
		return nil
	}

	if len(packTypes) > 0 {
		if err := restrictToTypes(wf, packTypes); err != nil {
			return err
		}
	}

	if !packYes {
		confirmed, err := tui.Run(wf, sourcePath)
		if err != nil {
			return fmt.Errorf("picker failed: %w", err)
		}
		if !confirmed {
			printInfo("Pack cancelled.")
			return nil
		}
	}

	baseName := packName
	if baseName == "" {
		baseName = cfg.ArchiveBase
	}

	ctx := context.Background()
	if packTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, packTimeout)
		defer cancel()
	}

	arch, err := wf.Build(ctx, baseName)
	if err != nil {
		if errors.Is(err, archive.ErrEmptySelection) {
			return fmt.Errorf("nothing selected: deselect fewer components or use --yes")
		}
		return fmt.Errorf("failed to build archive: %w", err)
	}

	outPath := filepath.Join(packOut, arch.Name)
	if err := os.WriteFile(outPath, arch.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write archive: %w", err)
	}

	printInfo("Packed %d components into %s (%s)",
		arch.FileCount, outPath, humanize.IBytes(uint64(len(arch.Data))))
	if !arch.Wrapped {
		printVerbose("Single file packaged verbatim as %s", arch.Name)
	}

	logPackToManifest(cfg, wf.Records(), arch.Name)

	return nil
}

// restrictToTypes narrows the workflow selection to the given types.
func restrictToTypes(wf *workflow.Workflow, typeNames []string) error {
	wanted := make(map[component.Type]bool, len(typeNames))
	for _, name := range typeNames {
		t, err := component.ParseType(strings.TrimSpace(name))
		if err != nil {
			return fmt.Errorf("invalid --type %q: valid types are %v", name, component.Types())
		}
		wanted[t] = true
	}

	// All records start selected, so toggling an unwanted group clears it.
	for _, t := range component.Types() {
		if wanted[t] {
			continue
		}
		if selection.TypeState(wf.Records(), t) == selection.GroupAll {
			wf.ToggleType(t)
		}
	}

	if wf.SelectedCount() == 0 {
		return fmt.Errorf("no components match types %v", typeNames)
	}
	return nil
}

// logPackToManifest records the pack in the operation manifest.
func logPackToManifest(cfg *config.Config, records []bundle.Record, archiveName string) {
	if !cfg.Manifest.Enabled {
		return
	}

	selected := make([]bundle.Record, 0, len(records))
	for _, rec := range records {
		if rec.Selected {
			selected = append(selected, rec)
		}
	}

	m, err := manifest.New(cfg.Manifest.Path)
	if err != nil {
		printVerbose("Failed to initialize manifest: %v", err)
		return
	}

	if _, err := m.LogPack(manifest.RecordsOf(selected), archiveName); err != nil {
		printVerbose("Failed to log pack to manifest: %v", err)
	}
}
