// SPDX-License-Identifier: MIT

// Package gf2: Dense is the bit-packed dense layout of the Matrix
// interface. Each row is a bitset, so row XOR (the only elementary row
// operation GF(2) has) runs word-at-a-time, and Hamming weights come
// from popcount rather than element loops.

package gf2

import (
	"github.com/bits-and-blooms/bitset"
)

// Dense is a row-major binary matrix with bit-packed rows.
// The zero value is not usable; construct via NewDense, FromRows or Convert.
type Dense struct {
	r, c int
	bits []*bitset.BitSet // len r, each of length c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Zero rows or columns are legal: kernel bases of full-rank matrices and
// logical bases of k=0 codes are empty matrices with a meaningful column
// count. Negative dimensions return ErrBadShape.
// Complexity: O(r*c/64) allocation.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}
	bits := make([]*bitset.BitSet, rows)
	for i := range bits {
		bits[i] = bitset.New(uint(cols))
	}

	return &Dense{r: rows, c: cols, bits: bits}, nil
}

// FromRows builds a Dense matrix from explicit 0/1 entries.
// All rows must have equal length (ErrBadShape otherwise) and every entry
// must be 0 or 1 (ErrNotBinary otherwise). An empty outer slice yields a
// legal 0×0 matrix.
func FromRows(rows [][]uint8) (*Dense, error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, ErrBadShape
		}
		for j, v := range row {
			switch v {
			case 0:
				// already zero
			case 1:
				m.bits[i].Set(uint(j))
			default:
				return nil, ErrNotBinary
			}
		}
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// At reports the entry at (i, j). Panics on out-of-range indices.
func (m *Dense) At(i, j int) uint8 {
	if j < 0 || j >= m.c {
		panic("gf2: Dense.At column out of range")
	}
	if m.bits[i].Test(uint(j)) {
		return 1
	}

	return 0
}

// Set assigns v (0 or 1) at (i, j). Dense is the mutable builder layout;
// sparse layouts are immutable after construction. Returns ErrNotBinary
// for values outside {0,1} and ErrIndexOutOfRange for bad indices.
func (m *Dense) Set(i, j int, v uint8) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return ErrIndexOutOfRange
	}
	if v > 1 {
		return ErrNotBinary
	}
	m.bits[i].SetTo(uint(j), v == 1)

	return nil
}

// Row returns the ascending support of row i. O(popcount) per call.
func (m *Dense) Row(i int) []int {
	return bitsetSupport(m.bits[i])
}

// Col returns the ascending support of column j. O(r) per call.
func (m *Dense) Col(j int) []int {
	var out []int
	for i := 0; i < m.r; i++ {
		if m.bits[i].Test(uint(j)) {
			out = append(out, i)
		}
	}

	return out
}

// Clone returns a deep copy. Complexity: O(r*c/64).
func (m *Dense) Clone() Matrix {
	bits := make([]*bitset.BitSet, m.r)
	for i, b := range m.bits {
		bits[i] = b.Clone()
	}

	return &Dense{r: m.r, c: m.c, bits: bits}
}

// rowBits exposes the packed row for package-internal kernels.
// Callers must not mutate the returned bitset.
func (m *Dense) rowBits(i int) *bitset.BitSet { return m.bits[i] }

// bitsetSupport lists the set bit positions of b in ascending order.
func bitsetSupport(b *bitset.BitSet) []int {
	out := make([]int, 0, b.Count())
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		out = append(out, int(i))
	}

	return out
}

// denseFromBitRows wraps pre-built rows without copying; internal helper
// for kernels that already own their row storage.
func denseFromBitRows(rows []*bitset.BitSet, cols int) *Dense {
	return &Dense{r: len(rows), c: cols, bits: rows}
}
