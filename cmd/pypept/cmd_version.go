// Copyright (C) 2025 The pyPept Authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"github.com/spf13/cobra"

	"github.com/MahitVaddadi-Bloom/pyPept/pkg/version"
)

// versionCmd prints the pyPept module version.
//
// The version comes from build metadata when pyPept is consumed as a
// module; source checkouts report the documented fallback.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the pyPept library version",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Println(version.Version())
	},
}
