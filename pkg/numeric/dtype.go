// Copyright (C) 2025 The pyPept Authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package numeric

// DType identifies the element type of an Array.
//
// Only four concrete element types exist. Int64 and Float64 are the
// fixed-width types that stay stable across backend major versions; Int
// and Float are the platform-native types used as legacy aliases. The
// zero value Invalid means "no dtype requested" and lets constructors
// infer the element type from their input.
type DType uint8

const (
	// Invalid is the zero DType. Constructors treat it as a request to
	// infer the element type from the input data.
	Invalid DType = iota

	// Int64 is a 64-bit signed integer element type.
	Int64

	// Float64 is a 64-bit floating point element type.
	Float64

	// Int is the platform-native signed integer element type. On all
	// platforms pyPept supports this is 64 bits wide; it is kept as a
	// distinct dtype because legacy backend versions name it separately.
	Int

	// Float is the platform-native floating point element type (64-bit).
	Float
)

// dtypeNames maps each concrete DType to its canonical name.
var dtypeNames = map[DType]string{
	Int64:   "int64",
	Float64: "float64",
	Int:     "int",
	Float:   "float",
}

// dtypesByName is the inverse of dtypeNames.
var dtypesByName = map[string]DType{
	"int64":   Int64,
	"float64": Float64,
	"int":     Int,
	"float":   Float,
}

// String returns the canonical dtype name, or "invalid" for the zero value.
func (d DType) String() string {
	if name, ok := dtypeNames[d]; ok {
		return name
	}
	return "invalid"
}

// IsInteger reports whether the dtype holds integer elements.
func (d DType) IsInteger() bool {
	return d == Int64 || d == Int
}

// IsFloat reports whether the dtype holds floating point elements.
func (d DType) IsFloat() bool {
	return d == Float64 || d == Float
}

// ParseDType resolves a concrete dtype name.
//
// Only canonical names ("int64", "float64", "int", "float") are
// recognized. The symbolic compatibility aliases ("int_", "float_") are
// intentionally NOT understood here; translating those is the coercion
// wrapper's job. See Resolution.AsArray.
//
// Inputs:
//
//	name - The canonical dtype name.
//
// Outputs:
//
//	DType - The matching dtype.
//	error - ErrUnknownDType if the name is not a concrete dtype.
func ParseDType(name string) (DType, error) {
	if dt, ok := dtypesByName[name]; ok {
		return dt, nil
	}
	return Invalid, ErrUnknownDType
}
