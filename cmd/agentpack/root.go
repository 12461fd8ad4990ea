package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jamesainslie/agentpack/pkg/agentpack/config"
	"github.com/jamesainslie/agentpack/pkg/agentpack/logging"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "agentpack",
		Short: "Scan, curate, and package agent bundles",
		Long: `Agentpack scans agent bundle directories, classifies their contents
into skills, tools, memories, and agents, and packages the selection
into an archive ready for upload.

Examples:
  agentpack scan .                 # Classify the current directory
  agentpack scan ~/my-agent -o json
  agentpack pack ~/my-agent        # Interactive curation, then build archive
  agentpack pack ~/my-agent -y     # Pack everything without the picker
  agentpack unpack bundle_upload.zip ./restored
  agentpack config show            # Show configuration
  agentpack history                # View operation history`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/agentpack/config.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format (table, plain, json, yaml)")
	rootCmd.PersistentFlags().StringSliceP("exclude", "e", nil, "exclude patterns (can be specified multiple times)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "minimal output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug output")

	// Bind flags to viper
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("exclude", rootCmd.PersistentFlags().Lookup("exclude"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			viper.AddConfigPath(filepath.Join(xdgConfigHome, "agentpack"))
		}

		homeDir, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(homeDir, ".config", "agentpack"))
		}
	}

	viper.SetEnvPrefix("AGENTPACK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("format", config.DefaultFormat)
	viper.SetDefault("archive_base", config.DefaultArchiveBase)
	viper.SetDefault("exclude", config.DefaultExclusions)
	viper.SetDefault("manifest.enabled", true)
	viper.SetDefault("manifest.retention_days", config.DefaultRetentionDays)

	// Read config file (ignore if not found)
	_ = viper.ReadInConfig()
}

// initLogging configures application logging from config and flags.
func initLogging(cfg *config.Config) error {
	level := cfg.Logging.Level
	if getVerbose() {
		level = "debug"
	}

	logPath := cfg.Logging.Path
	if logPath == "" {
		logPath = logging.DefaultLogPath()
	}

	return logging.Init(logging.Config{
		Level:   level,
		Path:    logPath,
		Console: cfg.Logging.Console && !getQuiet(),
	})
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// getVerbose returns true if verbose mode is enabled.
func getVerbose() bool {
	return viper.GetBool("verbose")
}

// getQuiet returns true if quiet mode is enabled.
func getQuiet() bool {
	return viper.GetBool("quiet")
}

// printVerbose prints a message if verbose mode is enabled.
func printVerbose(format string, args ...interface{}) {
	if getVerbose() && !getQuiet() {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// printInfo prints a message if quiet mode is not enabled.
func printInfo(format string, args ...interface{}) {
	if !getQuiet() {
		fmt.Printf(format+"\n", args...)
	}
}

// printError prints an error message to stderr.
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
