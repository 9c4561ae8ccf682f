// SPDX-License-Identifier: MIT

// Package gf2: compressed sparse layouts of the Matrix interface.
// CSR stores per-row sorted column indices; CSC stores per-column sorted
// row indices. The two are mirror images: transposing either is an O(1)
// relabeling that shares the underlying index arrays (see ops.go).

package gf2

import "sort"

// CSR is a compressed-sparse-row binary matrix: indices[indptr[i]:indptr[i+1]]
// are the ascending column indices of the 1-entries in row i.
// CSR is immutable after construction.
type CSR struct {
	r, c    int
	indptr  []int // len r+1, non-decreasing, indptr[0] == 0
	indices []int // len indptr[r], per-row ascending, each in [0, c)
}

// CSC is a compressed-sparse-column binary matrix: indices[indptr[j]:indptr[j+1]]
// are the ascending row indices of the 1-entries in column j.
// CSC is immutable after construction.
type CSC struct {
	r, c    int
	indptr  []int // len c+1
	indices []int // per-column ascending, each in [0, r)
}

// NewCSR validates and wraps compressed-row storage. The arrays are used
// directly (not copied); callers hand over ownership. Validation enforces
// the invariants the reduction kernels rely on: indptr monotone with the
// right length, per-row indices strictly ascending and in range.
// Returns ErrBadShape on any violation.
// Complexity: O(nnz).
func NewCSR(rows, cols int, indptr, indices []int) (*CSR, error) {
	if err := validateCompressed(rows, cols, indptr, indices); err != nil {
		return nil, err
	}

	return &CSR{r: rows, c: cols, indptr: indptr, indices: indices}, nil
}

// NewCSC validates and wraps compressed-column storage; the mirror of NewCSR.
func NewCSC(rows, cols int, indptr, indices []int) (*CSC, error) {
	if err := validateCompressed(cols, rows, indptr, indices); err != nil {
		return nil, err
	}

	return &CSC{r: rows, c: cols, indptr: indptr, indices: indices}, nil
}

// validateCompressed checks compressed storage with `outer` major slots and
// `inner` minor index bound (rows/cols for CSR, cols/rows for CSC).
func validateCompressed(outer, inner int, indptr, indices []int) error {
	if outer < 0 || inner < 0 {
		return ErrBadShape
	}
	if len(indptr) != outer+1 || indptr[0] != 0 || indptr[outer] != len(indices) {
		return ErrBadShape
	}
	for s := 0; s < outer; s++ {
		lo, hi := indptr[s], indptr[s+1]
		if lo > hi {
			return ErrBadShape
		}
		for p := lo; p < hi; p++ {
			if indices[p] < 0 || indices[p] >= inner {
				return ErrBadShape
			}
			if p > lo && indices[p] <= indices[p-1] {
				return ErrBadShape // duplicates collapse to 0 mod 2; reject instead of guessing
			}
		}
	}

	return nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *CSR) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *CSR) Cols() int { return m.c }

// At reports the entry at (i, j) via binary search on the row support.
func (m *CSR) At(i, j int) uint8 {
	if j < 0 || j >= m.c {
		panic("gf2: CSR.At column out of range")
	}

	return searchSupport(m.indices[m.indptr[i]:m.indptr[i+1]], j)
}

// Row returns the ascending support of row i as a view into the shared
// index array. O(1). Callers must not mutate it.
func (m *CSR) Row(i int) []int {
	return m.indices[m.indptr[i]:m.indptr[i+1]]
}

// Col returns the ascending support of column j. O(r·log nnz/r) — the
// minor axis is the expensive one in a compressed layout; kernels that
// need every column assemble supports once instead (see supports()).
func (m *CSR) Col(j int) []int {
	var out []int
	for i := 0; i < m.r; i++ {
		if searchSupport(m.Row(i), j) == 1 {
			out = append(out, i)
		}
	}

	return out
}

// Clone returns a deep copy. Complexity: O(nnz).
func (m *CSR) Clone() Matrix {
	return &CSR{
		r:       m.r,
		c:       m.c,
		indptr:  append([]int(nil), m.indptr...),
		indices: append([]int(nil), m.indices...),
	}
}

// Rows returns the number of rows. Complexity: O(1).
func (m *CSC) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *CSC) Cols() int { return m.c }

// At reports the entry at (i, j) via binary search on the column support.
func (m *CSC) At(i, j int) uint8 {
	if j < 0 || j >= m.c {
		panic("gf2: CSC.At column out of range")
	}
	if i < 0 || i >= m.r {
		panic("gf2: CSC.At row out of range")
	}

	return searchSupport(m.indices[m.indptr[j]:m.indptr[j+1]], i)
}

// Row returns the ascending support of row i. The minor axis: O(c·log).
func (m *CSC) Row(i int) []int {
	var out []int
	for j := 0; j < m.c; j++ {
		if searchSupport(m.Col(j), i) == 1 {
			out = append(out, j)
		}
	}

	return out
}

// Col returns the ascending support of column j as a view into the shared
// index array. O(1). Callers must not mutate it.
func (m *CSC) Col(j int) []int {
	return m.indices[m.indptr[j]:m.indptr[j+1]]
}

// Clone returns a deep copy. Complexity: O(nnz).
func (m *CSC) Clone() Matrix {
	return &CSC{
		r:       m.r,
		c:       m.c,
		indptr:  append([]int(nil), m.indptr...),
		indices: append([]int(nil), m.indices...),
	}
}

// searchSupport reports 1 iff x occurs in the ascending support slice s.
func searchSupport(s []int, x int) uint8 {
	p := sort.SearchInts(s, x)
	if p < len(s) && s[p] == x {
		return 1
	}

	return 0
}

// supports assembles the row supports of m in a single O(nnz) pass,
// regardless of layout. This is the layout pivot that lets the sparse
// reduction kernel treat CSR and CSC uniformly without densifying.
func supports(m Matrix) [][]int {
	rows := make([][]int, m.Rows())
	switch t := m.(type) {
	case *CSR:
		for i := range rows {
			rows[i] = append([]int(nil), t.Row(i)...)
		}
	case *CSC:
		// Bucket pass over columns: each (i, j) entry lands in rows[i] with
		// j visited in ascending order, so the result is already sorted.
		for j := 0; j < t.c; j++ {
			for _, i := range t.Col(j) {
				rows[i] = append(rows[i], j)
			}
		}
	default:
		for i := range rows {
			rows[i] = append([]int(nil), m.Row(i)...)
		}
	}

	return rows
}

// csrFromSupports packs row supports back into a CSR matrix.
func csrFromSupports(rows [][]int, cols int) *CSR {
	indptr := make([]int, len(rows)+1)
	nnz := 0
	for i, r := range rows {
		nnz += len(r)
		indptr[i+1] = nnz
	}
	indices := make([]int, 0, nnz)
	for _, r := range rows {
		indices = append(indices, r...)
	}

	return &CSR{r: len(rows), c: cols, indptr: indptr, indices: indices}
}

// cscFromSupports packs row supports into a CSC matrix via a counting pass.
func cscFromSupports(rows [][]int, cols int) *CSC {
	counts := make([]int, cols+1)
	for _, r := range rows {
		for _, j := range r {
			counts[j+1]++
		}
	}
	for j := 0; j < cols; j++ {
		counts[j+1] += counts[j]
	}
	indptr := append([]int(nil), counts...)
	indices := make([]int, indptr[cols])
	fill := append([]int(nil), indptr[:cols]...)
	for i, r := range rows {
		for _, j := range r {
			indices[fill[j]] = i
			fill[j]++
		}
	}

	return &CSC{r: len(rows), c: cols, indptr: indptr, indices: indices}
}
