// Copyright (C) 2025 The pyPept Authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Command pypept is the diagnostic CLI for the pyPept compatibility layer.
//
// Usage:
//
//	pypept version            # Print the pyPept module version
//	pypept backend            # Print the resolved numeric backend report
//	pypept backend --json     # Same, as JSON for scripting
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
