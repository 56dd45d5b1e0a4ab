// Copyright (C) 2025 The pyPept Authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package version reports the installed pyPept module version.
//
// The version is resolved from Go build metadata, the runtime's record of
// which module versions were compiled into the binary. When pyPept is built
// from a source checkout rather than consumed as a module dependency, build
// metadata carries no usable version; in that case a fixed fallback string
// is reported instead. Lookup failure and "module not recorded" are treated
// identically.
//
// Resolution happens once per process. The result is immutable afterward
// and safe to read from any goroutine.
package version

import (
	"runtime/debug"
	"sync"
)

const (
	// ModulePath is the canonical module path for pyPept.
	ModulePath = "github.com/MahitVaddadi-Bloom/pyPept"

	// Fallback is the version reported when build metadata has no record
	// for the module, e.g. when running from a source checkout.
	Fallback = "1.0.0"
)

var (
	once     sync.Once
	resolved string
)

// Version returns the best-effort version string for the pyPept module.
//
// The first call resolves the version from build metadata; subsequent
// calls return the cached result. Never returns an empty string.
//
// Returns:
//   - string: The recorded module version, or Fallback if none exists.
func Version() string {
	once.Do(func() {
		resolved = lookup(debug.ReadBuildInfo)
	})
	return resolved
}

// lookup resolves the module version using the given build-info reader.
//
// The reader is a parameter so tests can simulate environments where the
// module is installed as a dependency, built from source, or where build
// metadata is unavailable entirely.
func lookup(readBuildInfo func() (*debug.BuildInfo, bool)) string {
	info, ok := readBuildInfo()
	if !ok {
		return Fallback
	}

	// Binary built from this module directly.
	if info.Main.Path == ModulePath {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
		return Fallback
	}

	// pyPept consumed as a library by another module.
	for _, dep := range info.Deps {
		if dep.Path != ModulePath {
			continue
		}
		if dep.Replace != nil && dep.Replace.Version != "" {
			return dep.Replace.Version
		}
		if dep.Version != "" {
			return dep.Version
		}
	}

	return Fallback
}
