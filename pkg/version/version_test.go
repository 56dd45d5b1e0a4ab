// Copyright (C) 2025 The pyPept Authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion_NeverEmpty(t *testing.T) {
	require.NotEmpty(t, Version())
}

func TestVersion_Cached(t *testing.T) {
	first := Version()
	second := Version()
	assert.Equal(t, first, second)
}

func TestLookup_NoBuildInfo(t *testing.T) {
	got := lookup(func() (*debug.BuildInfo, bool) {
		return nil, false
	})
	assert.Equal(t, Fallback, got)
}

func TestLookup_MainModule(t *testing.T) {
	tests := []struct {
		name        string
		mainVersion string
		want        string
	}{
		{"tagged release", "v1.2.3", "v1.2.3"},
		{"devel build", "(devel)", Fallback},
		{"empty version", "", Fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lookup(func() (*debug.BuildInfo, bool) {
				return &debug.BuildInfo{
					Main: debug.Module{Path: ModulePath, Version: tt.mainVersion},
				}, true
			})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookup_AsDependency(t *testing.T) {
	got := lookup(func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			Main: debug.Module{Path: "example.com/host", Version: "v0.5.0"},
			Deps: []*debug.Module{
				{Path: "gonum.org/v1/gonum", Version: "v0.17.0"},
				{Path: ModulePath, Version: "v1.4.0"},
			},
		}, true
	})
	assert.Equal(t, "v1.4.0", got)
}

func TestLookup_AsReplacedDependency(t *testing.T) {
	got := lookup(func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			Main: debug.Module{Path: "example.com/host", Version: "v0.5.0"},
			Deps: []*debug.Module{
				{
					Path:    ModulePath,
					Version: "v1.4.0",
					Replace: &debug.Module{Path: "example.com/fork", Version: "v1.4.1"},
				},
			},
		}, true
	})
	assert.Equal(t, "v1.4.1", got)
}

func TestLookup_ModuleAbsent(t *testing.T) {
	got := lookup(func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			Main: debug.Module{Path: "example.com/host", Version: "v0.5.0"},
			Deps: []*debug.Module{
				{Path: "gonum.org/v1/gonum", Version: "v0.17.0"},
			},
		}, true
	})
	assert.Equal(t, Fallback, got)
}
