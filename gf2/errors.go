// SPDX-License-Identifier: MIT

// Package gf2: sentinel error set.
// This file defines ONLY package-level sentinel errors used across gf2.
// All kernels return these sentinels (optionally wrapped once with
// fmt.Errorf("Op: %w", Err) at facades) and tests match them via
// errors.Is. Kernels never panic on user-triggered error conditions.

package gf2

import "errors"

var (
	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("gf2: nil matrix")

	// ErrBadShape is returned when a requested shape is invalid (negative
	// rows or columns) or when sparse index arrays are inconsistent with
	// the declared shape.
	ErrBadShape = errors.New("gf2: invalid shape")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Mul where a.Cols() != b.Rows(), or stacking matrices
	// whose shared dimension disagrees.
	ErrDimensionMismatch = errors.New("gf2: dimension mismatch")

	// ErrNotBinary signals that an input container was recognized but holds
	// an entry outside {0,1} after coercion.
	ErrNotBinary = errors.New("gf2: entry is not 0 or 1")

	// ErrUnsupportedType signals that an input is neither a gf2.Matrix nor
	// a recognized convertible container and cannot be coerced to one.
	ErrUnsupportedType = errors.New("gf2: unsupported matrix type")

	// ErrIndexOutOfRange indicates a row selection index outside the valid
	// bounds of the source matrix.
	ErrIndexOutOfRange = errors.New("gf2: index out of range")
)
