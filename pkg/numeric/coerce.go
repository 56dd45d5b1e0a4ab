// Copyright (C) 2025 The pyPept Authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package numeric

// symbolicAlias tags a recognized symbolic dtype request.
//
// Symbolic requests name a compatibility alias ("give me whatever the
// resolved integer type is") rather than a literal element type. They
// are a small closed set, modeled as a tagged variant with an explicit
// mapping rather than string comparisons scattered through control flow.
type symbolicAlias uint8

const (
	aliasInt symbolicAlias = iota + 1
	aliasFloat
)

// symbolicAliases maps recognized symbolic dtype strings to their alias
// tag. "int" and "float" shadow the concrete dtype names of the same
// spelling on purpose: a caller asking the compatibility wrapper for
// "int" wants the resolved alias, not literally the native type.
var symbolicAliases = map[string]symbolicAlias{
	"int":    aliasInt,
	"int_":   aliasInt,
	"float":  aliasFloat,
	"float_": aliasFloat,
}

// AsArray builds an Array from data, translating symbolic dtype strings
// to the resolution's compatibility aliases.
//
// Description:
//
//	The dtype string is handled in three tiers:
//
//	  - "" requests no coercion; the element type is inferred from the
//	    input exactly as the underlying constructor would.
//	  - A recognized symbolic alias ("int", "int_", "float", "float_")
//	    is translated to the resolved IntType or FloatType.
//	  - Anything else is forwarded verbatim to the underlying
//	    constructor's dtype parsing. Concrete names such as "int64" are
//	    honored untranslated; unknown names fail with ErrUnknownDType.
//
//	No validation is added beyond the translation: construction errors
//	from the underlying constructor propagate unchanged.
//
// Inputs:
//
//	data  - Any value the underlying constructor accepts (scalars,
//	        slices, nested slices, *Array, gonum matrices and vectors).
//	dtype - Optional dtype request; "" means none.
//
// Outputs:
//
//	*Array - The constructed array.
//	error  - Errors from the underlying constructor, unwrapped.
//
// Example:
//
//	arr, err := res.AsArray([]int{1, 2, 3}, "int")
//	// arr.DType() == res.IntType
//
// Coercion is idempotent: re-coercing an Array under the same dtype
// yields an equal array.
func (r *Resolution) AsArray(data any, dtype string) (*Array, error) {
	dt := Invalid
	switch alias := symbolicAliases[dtype]; {
	case dtype == "":
		// No coercion requested.
	case alias == aliasInt:
		dt = r.IntType
	case alias == aliasFloat:
		dt = r.FloatType
	default:
		var err error
		dt, err = ParseDType(dtype)
		if err != nil {
			return nil, err
		}
	}
	return New(data, dt)
}

// AsArray delegates to the default Resolution. See Resolution.AsArray.
func AsArray(data any, dtype string) (*Array, error) {
	return Resolve().AsArray(data, dtype)
}
