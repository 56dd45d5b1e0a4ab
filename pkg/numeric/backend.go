// Copyright (C) 2025 The pyPept Authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package numeric

import "runtime/debug"

// Backend describes the numeric-array library the compatibility layer
// sits in front of.
//
// Description:
//
//	A Backend reports its installed version and which concrete element
//	types it supports. Type-alias resolution probes these capabilities
//	in a fixed preference order instead of assuming any particular
//	backend release has any particular alias.
//
// Thread Safety:
//
//	Implementations must be safe for concurrent use. The built-in
//	backends are stateless.
type Backend interface {
	// Name returns a short backend identifier, e.g. "gonum".
	Name() string

	// Version returns the backend's self-reported version string.
	// The string may carry pre-release or build suffixes.
	Version() string

	// Supports reports whether the backend provides the given concrete
	// element type.
	Supports(dt DType) bool
}

// gonumModulePath is the module path of the production numeric backend.
const gonumModulePath = "gonum.org/v1/gonum"

// unknownVersion is reported when the backend's module version cannot be
// determined from build metadata. It parses as major version zero, which
// routes resolution down the legacy path.
const unknownVersion = "v0.0.0"

// gonumBackend is the production backend, backed by gonum/mat.
type gonumBackend struct{}

// DefaultBackend returns the production gonum-backed Backend.
//
// Its version is read from Go build metadata, keyed by the gonum module
// path. When no record exists (stripped binaries, unusual build modes)
// the version reports as v0.0.0 rather than failing.
func DefaultBackend() Backend {
	return gonumBackend{}
}

func (gonumBackend) Name() string {
	return "gonum"
}

func (gonumBackend) Version() string {
	return moduleVersion(gonumModulePath)
}

// Supports reports true for every concrete dtype: Go's type system
// guarantees all four element types exist regardless of gonum release.
func (gonumBackend) Supports(dt DType) bool {
	switch dt {
	case Int64, Float64, Int, Float:
		return true
	default:
		return false
	}
}

// moduleVersion looks up a dependency's version in build metadata.
func moduleVersion(path string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return unknownVersion
	}
	for _, dep := range info.Deps {
		if dep.Path != path {
			continue
		}
		if dep.Replace != nil && dep.Replace.Version != "" {
			return dep.Replace.Version
		}
		if dep.Version != "" {
			return dep.Version
		}
	}
	return unknownVersion
}
