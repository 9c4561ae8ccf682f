// SPDX-License-Identifier: MIT

// Package gf2: nullspace, row basis and row-space membership — the
// facades the CSS code model derives logical operators through.

package gf2

// Nullspace returns a basis for the null space of m over GF(2): a Dense
// matrix K with m·Kᵗ ≡ 0, whose Cols(m) − Rank(m) rows are linearly
// independent.
//
// Construction: reduce mᵗ with transform tracking. T·mᵗ is in row-echelon
// form, so the transform rows past the rank multiply mᵗ to zero rows —
// those transform rows, read as length-Cols(m) vectors, are the kernel
// basis. Deterministic by the reduction contract.
func Nullspace(m Matrix) (*Dense, error) {
	mt, err := Transpose(m)
	if err != nil {
		return nil, err
	}
	e, err := RowEchelon(mt, false)
	if err != nil {
		return nil, err
	}
	idx := make([]int, 0, mt.Rows()-e.Rank)
	for i := e.Rank; i < mt.Rows(); i++ {
		idx = append(idx, i)
	}

	return SelectRows(e.Transform, idx)
}

// RowBasis returns a maximal independent subset of m's rows, as a Dense
// matrix of Rank(m) rows. The selected rows are m's rows at the pivot
// columns of mᵗ's reduction, preserving m's own row order — overlapping
// spans stay comparable across calls.
func RowBasis(m Matrix) (*Dense, error) {
	mt, err := Transpose(m)
	if err != nil {
		return nil, err
	}
	e, err := RowEchelon(mt, false)
	if err != nil {
		return nil, err
	}

	return SelectRows(m, e.Pivots)
}

// InRowSpan reports whether the vector v lies in the span of m's rows:
// appending v to m must not raise the rank.
// Errors: ErrDimensionMismatch when len(v) != Cols(m); ErrNotBinary for
// entries outside {0,1}.
func InRowSpan(v []uint8, m Matrix) (bool, error) {
	if m == nil {
		return false, ErrNilMatrix
	}
	if len(v) != m.Cols() {
		return false, ErrDimensionMismatch
	}
	row, err := FromRows([][]uint8{v})
	if err != nil {
		return false, err
	}
	base, err := Rank(m)
	if err != nil {
		return false, err
	}
	stacked, err := VStack(m, row)
	if err != nil {
		return false, err
	}
	grown, err := Rank(stacked)
	if err != nil {
		return false, err
	}

	return grown == base, nil
}
