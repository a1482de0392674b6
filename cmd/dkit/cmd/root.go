// File: root.go
// Title: dkit Root Command
// Description: Defines the root command, global flags, and the shared
//              configuration and logging setup for all subcommands.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-20
// Modified: 2025-03-20
//
// Change History:
// - 2025-03-20 v0.1.0: Initial implementation

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/dkit/core/config"
	"github.com/msto63/dkit/core/log"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string
	quiet     bool
)

var (
	cfg    *config.Config
	logger *log.Logger
	runID  string
)

var rootCmd = &cobra.Command{
	Use:   "dkit",
	Short: "File toolkit for copying, sizing, and hashing",
	Long: `dkit exposes the file operations of the dkit library on the
command line: copying and moving with progress reporting, directory
sizing, checksums, globbing, and path creation.

Configuration is read from dkit.toml or dkit.yaml in the working
directory, ./config, or /etc/dkit; --config overrides the search.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and reports failures on stderr
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "dkit: %v\n", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: discovered dkit.toml/dkit.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text or json")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output and non-error logs")
}

// setup loads configuration and builds the shared logger. Flags win
// over config keys; config keys win over built-in defaults.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		opts := config.DefaultDiscoveryOptions()
		opts.Required = false
		opts.EnvPrefix = "DKIT"
		cfg, err = config.Discover(opts)
	}
	if err != nil {
		return err
	}

	levelName := logLevel
	if levelName == "" {
		levelName = cfg.GetString("log.level", "info")
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return err
	}
	if quiet && level < log.LevelError {
		level = log.LevelError
	}

	formatName := logFormat
	if formatName == "" {
		formatName = cfg.GetString("log.format", "text")
	}
	format := log.FormatText
	if strings.EqualFold(formatName, "json") {
		format = log.FormatJSON
	}

	runID = uuid.New().String()
	logger = log.New().
		WithLevel(level).
		WithFormat(format).
		WithOutput(os.Stderr).
		WithName("dkit").
		WithJobID(runID)

	return nil
}
