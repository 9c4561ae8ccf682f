// SPDX-License-Identifier: MIT

// Package css: sentinel error set.
// Only malformed input is an error in this package; structural invalidity
// (commutation, pairing, rank inconsistencies) travels through Report and
// Valid instead. Tests match sentinels via errors.Is.

package css

import "errors"

var (
	// ErrNilMatrix indicates a required matrix argument was nil.
	ErrNilMatrix = errors.New("css: nil matrix")

	// ErrShapeMismatch indicates hx and hz disagree on column count, or a
	// supplied matrix attribute has a shape the code's length rules out.
	ErrShapeMismatch = errors.New("css: hx and hz column counts differ")

	// ErrUnknownAttr indicates an override key that names no recognized
	// code attribute.
	ErrUnknownAttr = errors.New("css: unknown attribute")

	// ErrBadOverride indicates an override value whose type cannot serve
	// the named attribute (the value's correctness is never checked, but
	// the entity's shape is statically known).
	ErrBadOverride = errors.New("css: override value has wrong type")

	// ErrNotMatrixAttr indicates a Save target that is not a matrix-valued
	// attribute and therefore has no adjacency-list representation.
	ErrNotMatrixAttr = errors.New("css: attribute is not matrix-valued")

	// ErrBadBudget indicates a non-positive distance time budget.
	ErrBadBudget = errors.New("css: distance budget must be positive")
)
