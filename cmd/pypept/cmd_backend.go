// Copyright (C) 2025 The pyPept Authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/MahitVaddadi-Bloom/pyPept/pkg/numeric"
	"github.com/MahitVaddadi-Bloom/pyPept/pkg/version"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var backendJSONOutput bool // Output as JSON

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// backendCmd prints the numeric backend resolution report.
//
// # Description
//
// Shows which numeric backend the binary was built against, its detected
// version, the major-version flag, and the element types the
// compatibility layer resolved for integer and float arrays. Useful when
// debugging dtype surprises in a host application.
//
// # Examples
//
//	pypept backend           # Human-readable report
//	pypept backend --json    # JSON output for scripting
var backendCmd = &cobra.Command{
	Use:   "backend",
	Short: "Show the resolved numeric backend configuration",
	Run:   runBackendCommand,
}

// =============================================================================
// COMMAND INITIALIZATION
// =============================================================================

func init() {
	backendCmd.Flags().BoolVar(&backendJSONOutput, "json", false,
		"Output as JSON for scripting")
}

// =============================================================================
// COMMAND IMPLEMENTATION
// =============================================================================

// backendReport is the JSON shape of the resolution report.
type backendReport struct {
	PyPept         string `json:"pypept_version"`
	Backend        string `json:"backend"`
	BackendVersion string `json:"backend_version"`
	IsV2           bool   `json:"is_v2"`
	IntType        string `json:"int_type"`
	FloatType      string `json:"float_type"`
}

func runBackendCommand(cmd *cobra.Command, _ []string) {
	res := numeric.Resolve()
	rootLogger.Debug("backend resolved",
		"backend", res.Backend,
		"version", res.BackendVersion.String(),
	)

	report := backendReport{
		PyPept:         version.Version(),
		Backend:        res.Backend,
		BackendVersion: res.BackendVersion.String(),
		IsV2:           res.IsV2,
		IntType:        res.IntType.String(),
		FloatType:      res.FloatType.String(),
	}

	if backendJSONOutput {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			rootLogger.Error("failed to encode report", "error", err.Error())
			return
		}
		cmd.Println(string(data))
		return
	}

	cmd.Printf("pyPept %s\n", report.PyPept)
	cmd.Printf("backend: %s %s (v2: %t)\n", report.Backend, report.BackendVersion, report.IsV2)
	cmd.Printf("int type: %s\n", report.IntType)
	cmd.Printf("float type: %s\n", report.FloatType)
}
