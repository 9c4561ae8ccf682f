// SPDX-License-Identifier: MIT

// Package css: logical operator derivation.
//
// A Z-type logical operator commutes with every X stabilizer but is not
// itself a Z stabilizer: a vector in ker(hx) outside the row space of hz.
// The minimal-basis rule is deterministic (documented below), so dense
// and sparse encodings of the same code yield the same basis.

package css

import "github.com/quantalib/cssforge/gf2"

// logicalBasis computes a minimal logical basis from the kernel of hKer
// minus the row space of hIm: logicalBasis(hx, hz) yields lz, and the
// mirrored call yields lx.
//
// Rule: stack a row basis of hIm on top of a kernel basis of hKer, reduce
// the transpose of the stack, and keep exactly the stack rows that are
// pivots beyond the hIm block. Pivot selection favors the lowest row
// index, so the hIm block absorbs everything it spans and the surviving
// kernel rows are independent of it — a minimal generating set of size
// k, chosen identically on every call.
func logicalBasis(hKer, hIm gf2.Matrix) (gf2.Matrix, error) {
	ker, err := gf2.Nullspace(hKer)
	if err != nil {
		return nil, err
	}
	im, err := gf2.RowBasis(hIm)
	if err != nil {
		return nil, err
	}
	stack, err := gf2.VStack(im, ker)
	if err != nil {
		return nil, err
	}
	st, err := gf2.Transpose(stack)
	if err != nil {
		return nil, err
	}
	e, err := gf2.RowEchelon(st, false)
	if err != nil {
		return nil, err
	}

	// Pivot columns of stackᵗ index rows of the stack; rows past the hIm
	// block are the logical representatives.
	var idx []int
	for _, p := range e.Pivots {
		if p >= im.Rows() {
			idx = append(idx, p)
		}
	}

	return gf2.SelectRows(stack, idx)
}

// canonicalize reduces a logical basis to its comparison-stable form via
// full row-echelon reduction. GF(2) pivots are already 1, so pivot
// normalization is the column clearing itself. Deterministic reduction
// makes this idempotent: canonicalizing a canonical basis returns it
// unchanged.
func canonicalize(l gf2.Matrix) (gf2.Matrix, error) {
	e, err := gf2.RowEchelon(l, true)
	if err != nil {
		return nil, err
	}

	return e.Reduced, nil
}
