// Copyright (C) 2025 The pyPept Authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package numeric

import (
	"reflect"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Array is an immutable dense numeric array of rank 1 or 2.
//
// Integer arrays store their elements as int64; float arrays as float64.
// The dtype records which alias the array was constructed under, which
// may be a fixed-width or a platform-native type. Arrays are never
// mutated after construction and are safe to share across goroutines.
type Array struct {
	dtype  DType
	shape  []int
	ints   []int64
	floats []float64
}

// element is a single gathered input value before dtype coercion.
type element struct {
	i       int64
	f       float64
	isFloat bool
}

// New constructs an Array from arbitrary numeric input.
//
// Description:
//
//	New is the underlying array constructor that the compatibility
//	wrapper delegates to. It accepts Go numeric scalars, flat slices,
//	nested slices (rank 2), existing *Array values, and gonum
//	mat.Matrix / mat.Vector values. Scalars become length-1 rank-1
//	arrays. Nesting deeper than rank 2 is not supported.
//
// Inputs:
//
//	data - The input value. See above for accepted kinds.
//	dt   - The requested element type. Invalid infers from the input:
//	       all-integer input yields Int64, anything else Float64.
//
// Outputs:
//
//	*Array - The constructed array.
//	error  - ErrRaggedInput for inhomogeneous nesting, ErrUnsupportedInput
//	         for values that cannot be read as numeric array data, or
//	         ErrUnknownDType for a dtype outside the concrete set.
//
// Float input coerced to an integer dtype truncates toward zero.
func New(data any, dt DType) (*Array, error) {
	if dt != Invalid {
		if _, ok := dtypeNames[dt]; !ok {
			return nil, ErrUnknownDType
		}
	}

	if arr, ok := data.(*Array); ok {
		return coerceExisting(arr, dt)
	}

	shape, vals, err := gatherInput(data)
	if err != nil {
		return nil, err
	}
	return build(shape, vals, dt), nil
}

// coerceExisting re-coerces an existing array. Arrays are immutable, so
// when no dtype change is requested the input is returned as-is.
func coerceExisting(arr *Array, dt DType) (*Array, error) {
	if dt == Invalid || dt == arr.dtype {
		return arr, nil
	}
	vals := make([]element, arr.Len())
	for i := range vals {
		if arr.dtype.IsInteger() {
			vals[i] = element{i: arr.ints[i]}
		} else {
			vals[i] = element{f: arr.floats[i], isFloat: true}
		}
	}
	return build(arr.shape, vals, dt), nil
}

// gatherInput flattens input into elements plus a shape.
func gatherInput(data any) ([]int, []element, error) {
	switch v := data.(type) {
	case nil:
		return nil, nil, ErrUnsupportedInput
	case mat.Vector:
		n := v.Len()
		vals := make([]element, n)
		for i := 0; i < n; i++ {
			vals[i] = element{f: v.AtVec(i), isFloat: true}
		}
		return []int{n}, vals, nil
	case mat.Matrix:
		r, c := v.Dims()
		vals := make([]element, 0, r*c)
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				vals = append(vals, element{f: v.At(i, j), isFloat: true})
			}
		}
		return []int{r, c}, vals, nil
	}
	return gatherReflect(reflect.ValueOf(data))
}

// gatherReflect handles scalars and (nested) slices via reflection.
func gatherReflect(v reflect.Value) ([]int, []element, error) {
	v = unwrap(v)

	if el, ok := scalarElement(v); ok {
		return []int{1}, []element{el}, nil
	}

	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, nil, ErrUnsupportedInput
	}

	n := v.Len()
	if n == 0 {
		return []int{0}, nil, nil
	}

	// Rank is decided by the first element: sequences of sequences are
	// rank 2, sequences of scalars rank 1. Mixing the two at the same
	// level is inhomogeneous input.
	first := unwrap(v.Index(0))
	if first.Kind() == reflect.Slice || first.Kind() == reflect.Array {
		return gatherRows(v, n)
	}

	vals := make([]element, 0, n)
	for i := 0; i < n; i++ {
		ev := unwrap(v.Index(i))
		if ev.Kind() == reflect.Slice || ev.Kind() == reflect.Array {
			return nil, nil, ErrRaggedInput
		}
		el, ok := scalarElement(ev)
		if !ok {
			return nil, nil, ErrUnsupportedInput
		}
		vals = append(vals, el)
	}
	return []int{n}, vals, nil
}

// gatherRows collects a rank-2 array from a sequence of row sequences.
func gatherRows(v reflect.Value, rows int) ([]int, []element, error) {
	cols := -1
	var vals []element
	for i := 0; i < rows; i++ {
		row := unwrap(v.Index(i))
		if row.Kind() != reflect.Slice && row.Kind() != reflect.Array {
			return nil, nil, ErrRaggedInput
		}
		if cols < 0 {
			cols = row.Len()
			vals = make([]element, 0, rows*cols)
		} else if row.Len() != cols {
			return nil, nil, ErrRaggedInput
		}
		for j := 0; j < cols; j++ {
			ev := unwrap(row.Index(j))
			if ev.Kind() == reflect.Slice || ev.Kind() == reflect.Array {
				// Rank 3 and beyond is out of scope for a dense
				// matrix-backed array.
				return nil, nil, ErrUnsupportedInput
			}
			el, ok := scalarElement(ev)
			if !ok {
				return nil, nil, ErrUnsupportedInput
			}
			vals = append(vals, el)
		}
	}
	return []int{rows, cols}, vals, nil
}

// unwrap steps through interface and pointer indirection.
func unwrap(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return v
		}
		v = v.Elem()
	}
	return v
}

// scalarElement reads a numeric scalar from a reflect.Value.
func scalarElement(v reflect.Value) (element, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return element{i: v.Int()}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return element{i: int64(v.Uint())}, true
	case reflect.Float32, reflect.Float64:
		return element{f: v.Float(), isFloat: true}, true
	default:
		return element{}, false
	}
}

// build materializes an Array from gathered elements.
func build(shape []int, vals []element, dt DType) *Array {
	if dt == Invalid {
		dt = Int64
		for _, el := range vals {
			if el.isFloat {
				dt = Float64
				break
			}
		}
	}

	arr := &Array{
		dtype: dt,
		shape: append([]int(nil), shape...),
	}
	if dt.IsInteger() {
		arr.ints = make([]int64, len(vals))
		for i, el := range vals {
			if el.isFloat {
				arr.ints[i] = int64(el.f) // truncates toward zero
			} else {
				arr.ints[i] = el.i
			}
		}
	} else {
		arr.floats = make([]float64, len(vals))
		for i, el := range vals {
			if el.isFloat {
				arr.floats[i] = el.f
			} else {
				arr.floats[i] = float64(el.i)
			}
		}
	}
	return arr
}

// DType returns the array's element type.
func (a *Array) DType() DType {
	return a.dtype
}

// Rank returns the number of array dimensions (1 or 2).
func (a *Array) Rank() int {
	return len(a.shape)
}

// Shape returns a copy of the array's dimensions.
func (a *Array) Shape() []int {
	return append([]int(nil), a.shape...)
}

// Len returns the total number of elements.
func (a *Array) Len() int {
	n := 1
	for _, d := range a.shape {
		n *= d
	}
	if len(a.shape) == 0 {
		return 0
	}
	return n
}

// Ints returns a copy of the elements as int64, truncating toward zero
// for float arrays.
func (a *Array) Ints() []int64 {
	out := make([]int64, a.Len())
	if a.dtype.IsInteger() {
		copy(out, a.ints)
		return out
	}
	for i, f := range a.floats {
		out[i] = int64(f)
	}
	return out
}

// Floats returns a copy of the elements as float64.
func (a *Array) Floats() []float64 {
	out := make([]float64, a.Len())
	if a.dtype.IsInteger() {
		for i, n := range a.ints {
			out[i] = float64(n)
		}
		return out
	}
	copy(out, a.floats)
	return out
}

// Dense converts the array to a gonum dense matrix.
//
// Rank-2 arrays map directly; rank-1 arrays become a single-row matrix.
// Integer elements are widened to float64.
func (a *Array) Dense() *mat.Dense {
	r, c := 1, 0
	if a.Rank() == 2 {
		r, c = a.shape[0], a.shape[1]
	} else {
		c = a.shape[0]
	}
	if r == 0 || c == 0 {
		return &mat.Dense{}
	}
	return mat.NewDense(r, c, a.Floats())
}

// Vector converts a rank-1 array to a gonum dense vector.
//
// Outputs:
//
//	*mat.VecDense - The vector view of the data.
//	error         - ErrShapeMismatch for rank-2 arrays.
func (a *Array) Vector() (*mat.VecDense, error) {
	if a.Rank() != 1 {
		return nil, ErrShapeMismatch
	}
	if a.shape[0] == 0 {
		return &mat.VecDense{}, nil
	}
	return mat.NewVecDense(a.shape[0], a.Floats()), nil
}

// Equal reports whether two arrays have identical dtype, shape, and
// elements. Float elements are compared exactly.
func (a *Array) Equal(b *Array) bool {
	if b == nil || a.dtype != b.dtype || len(a.shape) != len(b.shape) {
		return false
	}
	for i := range a.shape {
		if a.shape[i] != b.shape[i] {
			return false
		}
	}
	if a.dtype.IsInteger() {
		for i := range a.ints {
			if a.ints[i] != b.ints[i] {
				return false
			}
		}
		return true
	}
	return floats.Equal(a.floats, b.floats)
}
