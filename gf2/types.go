// SPDX-License-Identifier: MIT

// Package gf2: the polymorphic binary-matrix abstraction.
// This file defines ONLY the Matrix capability set shared by the three
// concrete layouts (Dense, CSR, CSC). Kernels and facades live in their
// own files (echelon.go, kernel.go, ops.go) per the package conventions.

package gf2

// Matrix is a 2D array over {0,1}. The capability set is deliberately
// small: shape, element test, row/column support iteration and cloning.
// Everything else (multiply, transpose, reduction) is a package-level
// function over this interface, with fast paths per concrete layout.
//
// Contracts shared by all implementations:
//   - Row and Col return the support (indices of the 1-entries) in strictly
//     ascending order. The returned slice must not be mutated by callers.
//   - At panics on out-of-range indices, mirroring slice semantics; all
//     user-triggered error conditions are rejected earlier, at construction.
//   - Implementations are value containers: no method mutates the matrix
//     except the explicit setters on the mutable builders (Dense.Set).
//
// Complexity notes: Rows/Cols/At are O(1) for Dense; Row is O(1) for CSR
// and O(nnz) for CSC; Col is symmetric. Kernels therefore never iterate
// the expensive axis per-element — they assemble supports once, in O(nnz).
type Matrix interface {
	// Rows returns the number of rows. Complexity: O(1).
	Rows() int

	// Cols returns the number of columns. Complexity: O(1).
	Cols() int

	// At reports the entry at (i, j) as 0 or 1.
	At(i, j int) uint8

	// Row returns the ascending column indices of the 1-entries in row i.
	Row(i int) []int

	// Col returns the ascending row indices of the 1-entries in column j.
	Col(j int) []int

	// Clone returns a deep, independent copy with the same concrete layout.
	Clone() Matrix
}
