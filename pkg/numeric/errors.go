// Copyright (C) 2025 The pyPept Authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package numeric

import "errors"

// Common errors for the numeric package.
var (
	// ErrUnknownDType is returned when a dtype name is not recognized.
	ErrUnknownDType = errors.New("unknown dtype")

	// ErrRaggedInput is returned when nested input rows differ in length.
	ErrRaggedInput = errors.New("ragged nested input")

	// ErrUnsupportedInput is returned when input cannot be interpreted
	// as numeric array data.
	ErrUnsupportedInput = errors.New("unsupported input type")

	// ErrShapeMismatch is returned when an array has the wrong rank for
	// the requested conversion.
	ErrShapeMismatch = errors.New("shape mismatch")
)
