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

func TestDType_String(t *testing.T) {
	tests := []struct {
		dt   DType
		want string
	}{
		{Int64, "int64"},
		{Float64, "float64"},
		{Int, "int"},
		{Float, "float"},
		{Invalid, "invalid"},
		{DType(99), "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.dt.String())
		})
	}
}

func TestDType_Kinds(t *testing.T) {
	assert.True(t, Int64.IsInteger())
	assert.True(t, Int.IsInteger())
	assert.False(t, Float64.IsInteger())
	assert.False(t, Invalid.IsInteger())

	assert.True(t, Float64.IsFloat())
	assert.True(t, Float.IsFloat())
	assert.False(t, Int64.IsFloat())
	assert.False(t, Invalid.IsFloat())
}

func TestParseDType(t *testing.T) {
	for name, want := range dtypesByName {
		got, err := ParseDType(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestParseDType_Unknown(t *testing.T) {
	tests := []string{"", "int32", "double", "int_", "float_", "INT64"}

	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseDType(name)
			assert.ErrorIs(t, err, ErrUnknownDType)
		})
	}
}
