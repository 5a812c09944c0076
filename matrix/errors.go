// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every public function of the package returns one of these sentinels,
// optionally wrapped with call-site context; tests match them via errors.Is.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Wrap with
// fmt.Errorf("ctx: %w", ErrX) when context is needed; never replace.

var (
	// ErrInvalidDimensions indicates that a requested side length is non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	// Public indexers (At) return this; the hot-path Cell reader does not check.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates that a value slice does not hold n*n cells.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNilRNG indicates that a nil random source was handed to a generator.
	ErrNilRNG = errors.New("matrix: nil random source")
)
