// Copyright (C) 2025 The pyPept Authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package numeric shields pyPept from breaking changes in the numeric
// backend's element-type naming across its major versions.
//
// The backend's integer and float aliases are not guaranteed present in
// every release, and the preferred names changed at major version 2.
// This package resolves a version-appropriate pair of element types once
// per process and exposes one tolerant array-construction entry point.
//
// # Resolution
//
// Resolution runs once, at first use:
//
//  1. The backend's self-reported version string is parsed into a
//     structured semantic version (pre-release and build suffixes are
//     tolerated).
//  2. Major >= 2 selects the fixed-width-first preference order;
//     anything older selects the legacy-first order.
//  3. The integer and float element types are each resolved to the first
//     backend-supported entry in their preference list. Resolution never
//     fails: if nothing in a list is supported, the final entry is used.
//
// # Basic Usage
//
//	res := numeric.Resolve()
//	arr, err := res.AsArray([]int{1, 2, 3}, "int")
//	if err != nil {
//	    return err
//	}
//	// arr.DType() == res.IntType
//
// Package-level AsArray delegates to the default resolution for callers
// that don't need a handle on it.
//
// # Thread Safety
//
// The default resolution is computed under sync.Once and is immutable
// afterward. All construction functions are pure. Everything in this
// package is safe for concurrent use without locking.
package numeric

import (
	"sync"

	"github.com/Masterminds/semver/v3"
)

// Preference orders for type-alias resolution, probed front to back.
//
// These are package-level data rather than control flow so the fallback
// order is visible and directly testable. The two tiers exist because
// alias availability varies across minor releases within a major version;
// absence must degrade, not fail.
var (
	// intPrefsV2 prefers the fixed-width integer alias that is stable
	// under backend major version 2, with the native type as fallback.
	intPrefsV2 = []DType{Int64, Int}

	// intPrefsLegacy prefers the version-dependent native alias used by
	// pre-2 backends, with the fixed-width type as fallback.
	intPrefsLegacy = []DType{Int, Int64}

	// floatPrefsV2 mirrors intPrefsV2 for floating point.
	floatPrefsV2 = []DType{Float64, Float}

	// floatPrefsLegacy mirrors intPrefsLegacy for floating point.
	floatPrefsLegacy = []DType{Float, Float64}
)

// Resolution is the process-wide outcome of backend detection.
//
// All fields are set once during resolution and never mutated. There is
// no API to re-resolve the default Resolution within a process.
type Resolution struct {
	// Backend is the backend identifier, e.g. "gonum".
	Backend string

	// BackendVersion is the backend's parsed semantic version.
	BackendVersion *semver.Version

	// IsV2 reports whether the backend major version is >= 2.
	IsV2 bool

	// IntType is the element type to use for integer arrays.
	IntType DType

	// FloatType is the element type to use for float arrays.
	FloatType DType
}

var (
	resolveOnce sync.Once
	defaultRes  *Resolution
)

// Resolve returns the process-wide Resolution for the default backend.
//
// The first call performs detection; subsequent calls return the cached
// result. The returned value must be treated as read-only.
func Resolve() *Resolution {
	resolveOnce.Do(func() {
		defaultRes = ResolveBackend(DefaultBackend())
	})
	return defaultRes
}

// ResolveBackend computes a Resolution for an arbitrary backend.
//
// Description:
//
//	Parses the backend version, derives the major-version flag, and
//	resolves both element-type aliases by ordered capability probe.
//	This is a pure function; tests use it to simulate backend
//	environments that differ from the compiled-in one.
//
// Inputs:
//
//	b - The backend to resolve against. Must not be nil.
//
// Outputs:
//
//	*Resolution - The resolved, immutable configuration.
func ResolveBackend(b Backend) *Resolution {
	v := parseBackendVersion(b.Version())
	isV2 := v.Major() >= 2

	intPrefs, floatPrefs := intPrefsLegacy, floatPrefsLegacy
	if isV2 {
		intPrefs, floatPrefs = intPrefsV2, floatPrefsV2
	}

	return &Resolution{
		Backend:        b.Name(),
		BackendVersion: v,
		IsV2:           isV2,
		IntType:        firstSupported(b, intPrefs),
		FloatType:      firstSupported(b, floatPrefs),
	}
}

// parseBackendVersion parses a backend version string, tolerating
// pre-release and build suffixes and a leading "v".
//
// Unparseable versions resolve as 0.0.0 so detection degrades to the
// legacy path instead of failing initialization.
func parseBackendVersion(raw string) *semver.Version {
	v, err := semver.NewVersion(raw)
	if err != nil {
		return semver.New(0, 0, 0, "", "")
	}
	return v
}

// firstSupported returns the first backend-supported dtype in prefs,
// or the final entry when nothing is supported.
func firstSupported(b Backend, prefs []DType) DType {
	for _, dt := range prefs {
		if b.Supports(dt) {
			return dt
		}
	}
	return prefs[len(prefs)-1]
}
