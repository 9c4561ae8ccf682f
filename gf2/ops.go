// SPDX-License-Identifier: MIT

// Package gf2: structural operations shared by the code-model layer —
// multiply, transpose, Kronecker product, stacking, selection and weight
// statistics. All operations are pure: operands are never mutated, and
// loop orders are fixed for reproducibility.

package gf2

import (
	"github.com/bits-and-blooms/bitset"
)

// Identity returns the n×n identity matrix as Dense.
// Complexity: O(n²/64) allocation + O(n) diagonal writes.
func Identity(n int) *Dense {
	m, err := NewDense(n, n)
	if err != nil {
		panic("gf2: Identity called with negative size") // programmer error
	}
	for i := 0; i < n; i++ {
		m.bits[i].Set(uint(i))
	}

	return m
}

// Zeros returns an r×c all-zero Dense matrix, ErrBadShape on negative dims.
func Zeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// Mul returns a·b over GF(2) as a Dense matrix.
// The product row i is the XOR of b's rows selected by the support of a's
// row i, so the cost is O(nnz(a) · c(b)/64) independent of b's layout.
// Returns ErrNilMatrix / ErrDimensionMismatch on bad operands.
func Mul(a, b Matrix) (*Dense, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if a.Cols() != b.Rows() {
		return nil, ErrDimensionMismatch
	}
	bRows := bitRows(b)
	out, err := NewDense(a.Rows(), b.Cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.Rows(); i++ {
		for _, k := range a.Row(i) {
			out.bits[i].InPlaceSymmetricDifference(bRows[k])
		}
	}

	return out, nil
}

// Transpose returns mᵗ. For the compressed layouts this is an O(1)
// relabeling sharing the index arrays (CSR ↔ CSC); for Dense it is an
// O(r·c) bit copy. The result preserves the sparse/dense family, which
// keeps a whole derivation pipeline inside one layout.
func Transpose(m Matrix) (Matrix, error) {
	switch t := m.(type) {
	case nil:
		return nil, ErrNilMatrix
	case *CSR:
		return &CSC{r: t.c, c: t.r, indptr: t.indptr, indices: t.indices}, nil
	case *CSC:
		return &CSR{r: t.c, c: t.r, indptr: t.indptr, indices: t.indices}, nil
	default:
		out, err := NewDense(m.Cols(), m.Rows())
		if err != nil {
			return nil, err
		}
		for i := 0; i < m.Rows(); i++ {
			for _, j := range m.Row(i) {
				out.bits[j].Set(uint(i))
			}
		}

		return out, nil
	}
}

// Kron returns the Kronecker product a ⊗ b as Dense: the (i·rb + p,
// j·cb + q) entry is a[i,j]·b[p,q]. Support-driven: cost O(nnz(a)·nnz(b)).
func Kron(a, b Matrix) (*Dense, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	rb, cb := b.Rows(), b.Cols()
	out, err := NewDense(a.Rows()*rb, a.Cols()*cb)
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.Rows(); i++ {
		for _, j := range a.Row(i) {
			for p := 0; p < rb; p++ {
				for _, q := range b.Row(p) {
					out.bits[i*rb+p].Set(uint(j*cb + q))
				}
			}
		}
	}

	return out, nil
}

// VStack stacks matrices vertically into a Dense result.
// All operands must agree on column count (ErrDimensionMismatch).
// Zero-row operands are legal and contribute nothing.
func VStack(ms ...Matrix) (*Dense, error) {
	if len(ms) == 0 {
		return nil, ErrNilMatrix
	}
	cols, rows := -1, 0
	for _, m := range ms {
		if m == nil {
			return nil, ErrNilMatrix
		}
		if cols >= 0 && m.Cols() != cols {
			return nil, ErrDimensionMismatch
		}
		cols = m.Cols()
		rows += m.Rows()
	}
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	at := 0
	for _, m := range ms {
		for i := 0; i < m.Rows(); i++ {
			for _, j := range m.Row(i) {
				out.bits[at].Set(uint(j))
			}
			at++
		}
	}

	return out, nil
}

// HStack concatenates matrices horizontally into a Dense result.
// All operands must agree on row count (ErrDimensionMismatch).
func HStack(ms ...Matrix) (*Dense, error) {
	if len(ms) == 0 {
		return nil, ErrNilMatrix
	}
	rows, cols := -1, 0
	for _, m := range ms {
		if m == nil {
			return nil, ErrNilMatrix
		}
		if rows >= 0 && m.Rows() != rows {
			return nil, ErrDimensionMismatch
		}
		rows = m.Rows()
		cols += m.Cols()
	}
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	off := 0
	for _, m := range ms {
		for i := 0; i < m.Rows(); i++ {
			for _, j := range m.Row(i) {
				out.bits[i].Set(uint(off + j))
			}
		}
		off += m.Cols()
	}

	return out, nil
}

// SelectRows extracts rows of m at the given indices (in the given order)
// into a Dense matrix. ErrIndexOutOfRange on any bad index.
func SelectRows(m Matrix, idx []int) (*Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	out, err := NewDense(len(idx), m.Cols())
	if err != nil {
		return nil, err
	}
	for p, i := range idx {
		if i < 0 || i >= m.Rows() {
			return nil, ErrIndexOutOfRange
		}
		for _, j := range m.Row(i) {
			out.bits[p].Set(uint(j))
		}
	}

	return out, nil
}

// Equal reports whether a and b have the same shape and the same entries,
// regardless of layout.
func Equal(a, b Matrix) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	for i := 0; i < a.Rows(); i++ {
		ra, rb := a.Row(i), b.Row(i)
		if len(ra) != len(rb) {
			return false
		}
		for p := range ra {
			if ra[p] != rb[p] {
				return false
			}
		}
	}

	return true
}

// IsZero reports whether every entry of m is 0.
func IsZero(m Matrix) bool {
	for i := 0; i < m.Rows(); i++ {
		if len(m.Row(i)) > 0 {
			return false
		}
	}

	return true
}

// MaxRowWeight returns the largest number of 1-entries in any row of m,
// 0 for an empty matrix.
func MaxRowWeight(m Matrix) int {
	max := 0
	for i := 0; i < m.Rows(); i++ {
		if w := len(m.Row(i)); w > max {
			max = w
		}
	}

	return max
}

// MaxColWeight returns the largest number of 1-entries in any column of m.
// Assembled in one O(nnz) pass rather than per-column queries.
func MaxColWeight(m Matrix) int {
	counts := make([]int, m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for _, j := range m.Row(i) {
			counts[j]++
		}
	}
	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}

	return max
}

// bitRows materializes the rows of m as bitsets; fast path borrows Dense
// storage directly (callers must not mutate the result in that case —
// kernels that XOR clone first).
func bitRows(m Matrix) []*bitset.BitSet {
	if d, ok := m.(*Dense); ok {
		return d.bits
	}
	rows := make([]*bitset.BitSet, m.Rows())
	for i := range rows {
		rows[i] = bitset.New(uint(m.Cols()))
		for _, j := range m.Row(i) {
			rows[i].Set(uint(j))
		}
	}

	return rows
}
