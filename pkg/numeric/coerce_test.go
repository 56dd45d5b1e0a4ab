// Copyright (C) 2025 The pyPept Authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// legacyRes simulates a pre-2 backend with every alias available.
func legacyRes() *Resolution {
	return ResolveBackend(fakeBackend{
		name:      "sim",
		version:   "1.26.4",
		supported: allDTypes,
	})
}

// v2Res simulates a major-version-2 backend with every alias available.
func v2Res() *Resolution {
	return ResolveBackend(fakeBackend{
		name:      "sim",
		version:   "2.1.0",
		supported: allDTypes,
	})
}

func TestAsArray_SymbolicInt(t *testing.T) {
	for _, res := range []*Resolution{legacyRes(), v2Res()} {
		for _, dtype := range []string{"int", "int_"} {
			arr, err := res.AsArray([]int{1, 2, 3}, dtype)
			require.NoError(t, err)
			assert.Equal(t, res.IntType, arr.DType())
			assert.Equal(t, []int64{1, 2, 3}, arr.Ints())
		}
	}
}

func TestAsArray_SymbolicFloat(t *testing.T) {
	for _, res := range []*Resolution{legacyRes(), v2Res()} {
		for _, dtype := range []string{"float", "float_"} {
			arr, err := res.AsArray([]float64{1.0, 2.0}, dtype)
			require.NoError(t, err)
			assert.Equal(t, res.FloatType, arr.DType())
			assert.Equal(t, []float64{1, 2}, arr.Floats())
		}
	}
}

// "int" is both a symbolic alias and a concrete dtype name; the wrapper
// must translate it, so under a v2 resolution it yields the fixed-width
// type rather than the native one.
func TestAsArray_SymbolicTranslationWins(t *testing.T) {
	arr, err := v2Res().AsArray([]int{1}, "int")
	require.NoError(t, err)
	assert.Equal(t, Int64, arr.DType())

	arr, err = v2Res().AsArray([]float64{1}, "float")
	require.NoError(t, err)
	assert.Equal(t, Float64, arr.DType())
}

func TestAsArray_EmptyDTypeMatchesPlainConstruction(t *testing.T) {
	data := []float64{1.5, 2.5, 3.5}

	viaWrapper, err := legacyRes().AsArray(data, "")
	require.NoError(t, err)
	plain, err := New(data, Invalid)
	require.NoError(t, err)

	assert.Equal(t, plain.DType(), viaWrapper.DType())
	assert.True(t, plain.Equal(viaWrapper))
}

func TestAsArray_ConcreteNamesForwardedVerbatim(t *testing.T) {
	// "float64" is not in the symbolic set; it reaches the underlying
	// constructor untranslated and is honored as the literal dtype,
	// even when the resolution's FloatType is the native alias.
	res := legacyRes()
	require.Equal(t, Float, res.FloatType)

	arr, err := res.AsArray([]float64{1, 2}, "float64")
	require.NoError(t, err)
	assert.Equal(t, Float64, arr.DType())

	arr, err = res.AsArray([]int{1, 2}, "int64")
	require.NoError(t, err)
	assert.Equal(t, Int64, arr.DType())
}

func TestAsArray_UnknownDTypeForwarded(t *testing.T) {
	tests := []string{"int32", "double", "uint8", "complex128"}

	for _, dtype := range tests {
		t.Run(dtype, func(t *testing.T) {
			_, err := legacyRes().AsArray([]int{1}, dtype)
			assert.ErrorIs(t, err, ErrUnknownDType)
		})
	}
}

func TestAsArray_Idempotent(t *testing.T) {
	res := legacyRes()

	once, err := res.AsArray([]float64{1.9, 2.9}, "int")
	require.NoError(t, err)
	twice, err := res.AsArray(once, "int")
	require.NoError(t, err)

	assert.True(t, once.Equal(twice))
	// No conversion was needed, so no copy was made either.
	assert.Same(t, once, twice)
}

func TestAsArray_ConstructionErrorsPropagateUnwrapped(t *testing.T) {
	_, err := legacyRes().AsArray([][]int{{1, 2}, {3}}, "int")
	assert.Equal(t, ErrRaggedInput, err)

	_, err = legacyRes().AsArray("peptide", "")
	assert.Equal(t, ErrUnsupportedInput, err)
}

func TestAsArray_PackageLevel(t *testing.T) {
	arr, err := AsArray([]int{1, 2, 3}, "int")
	require.NoError(t, err)
	assert.Equal(t, Resolve().IntType, arr.DType())

	arr, err = AsArray([]float64{1.0, 2.0}, "float")
	require.NoError(t, err)
	assert.Equal(t, Resolve().FloatType, arr.DType())
}
