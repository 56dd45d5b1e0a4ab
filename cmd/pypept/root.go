// Copyright (C) 2025 The pyPept Authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"github.com/spf13/cobra"

	"github.com/MahitVaddadi-Bloom/pyPept/cmd/pypept/config"
	"github.com/MahitVaddadi-Bloom/pyPept/pkg/logging"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var rootVerbose bool // Force debug-level logging regardless of config

// rootLogger is configured in setupRoot and shared by all subcommands.
var rootLogger = logging.Default()

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

var rootCmd = &cobra.Command{
	Use:   "pypept",
	Short: "Diagnostics for the pyPept compatibility layer",
	Long: `Inspects the pyPept compatibility layer from the outside:
the reported module version and the numeric backend resolution
(backend version, major-version flag, resolved element types).

Examples:
  pypept version
  pypept backend
  pypept backend --json`,
	SilenceUsage:      true,
	PersistentPreRunE: setupRoot,
}

// =============================================================================
// COMMAND INITIALIZATION
// =============================================================================

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false,
		"Enable debug-level logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(backendCmd)
}

// setupRoot loads the CLI config and builds the shared logger.
func setupRoot(cmd *cobra.Command, _ []string) error {
	if err := config.Load(); err != nil {
		return err
	}

	level := logging.LevelInfo
	if name := config.Global.Logging.Level; name != "" {
		parsed, err := logging.ParseLevel(name)
		if err != nil {
			return err
		}
		level = parsed
	}
	if rootVerbose {
		level = logging.LevelDebug
	}

	rootLogger = logging.New(logging.Config{
		Level:     level,
		JSON:      config.Global.Logging.JSON,
		Output:    cmd.ErrOrStderr(),
		Component: "pypept",
	})
	return nil
}
