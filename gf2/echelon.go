// SPDX-License-Identifier: MIT

// Package gf2: row-echelon reduction over GF(2) with transform tracking.
//
// Determinism contract: for a given input matrix and layout, reduction
// produces the same pivot columns, the same reduced matrix and the same
// transform on every call. The pivot tie-break is fixed — the lowest
// available row index with a 1 in the target column — because canonical
// logical bases and reproducible tests depend on it.
//
// Two kernels implement the same algorithm:
//   - echelonBits: packed rows, word-level XOR (Dense and foreign layouts),
//   - echelonSupports: sorted-support rows, merge XOR (CSR/CSC), assembled
//     from the compressed arrays in O(nnz) without a dense intermediate.

package gf2

import "github.com/bits-and-blooms/bitset"

// Echelon is the result of a row-echelon reduction of some matrix A.
type Echelon struct {
	// Reduced is the reduced matrix, in the same layout family as the input
	// (Dense in → Dense out, CSR in → CSR out, CSC in → CSC out).
	Reduced Matrix

	// Pivots lists the pivot column indices in ascending order.
	Pivots []int

	// Rank is len(Pivots): the GF(2) rank of A.
	Rank int

	// Transform is the accumulated row-operation matrix T with
	// T·A ≡ Reduced (mod 2). Shape Rows(A)×Rows(A), same layout family.
	Transform Matrix
}

// RowEchelon reduces m by Gaussian elimination over GF(2).
//
// For each target column, the pivot is the lowest row index at or below the
// current pivot row holding a 1 (rows are swapped into place); the pivot row
// is then XORed into every lower row with a 1 in that column, or into every
// other such row when full is true (reduced row-echelon form).
//
// Errors: ErrNilMatrix for a nil input. Zero-row and zero-column matrices
// reduce to themselves with rank 0.
// Complexity: O(r²·c/64) dense, O(r·nnz) sparse typical.
func RowEchelon(m Matrix, full bool) (*Echelon, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	switch t := m.(type) {
	case *CSR:
		pivots, rows, tr := echelonSupports(supports(t), t.c, full)
		return &Echelon{
			Reduced:   csrFromSupports(rows, t.c),
			Pivots:    pivots,
			Rank:      len(pivots),
			Transform: csrFromSupports(tr, t.r),
		}, nil
	case *CSC:
		pivots, rows, tr := echelonSupports(supports(t), t.c, full)
		return &Echelon{
			Reduced:   cscFromSupports(rows, t.c),
			Pivots:    pivots,
			Rank:      len(pivots),
			Transform: cscFromSupports(tr, t.r),
		}, nil
	default:
		pivots, rows, tr := echelonBits(bitRows(m), m.Cols(), full)
		return &Echelon{
			Reduced:   denseFromBitRows(rows, m.Cols()),
			Pivots:    pivots,
			Rank:      len(pivots),
			Transform: denseFromBitRows(tr, m.Rows()),
		}, nil
	}
}

// Rank returns the GF(2) rank of m: the pivot count of its reduction.
func Rank(m Matrix) (int, error) {
	e, err := RowEchelon(m, false)
	if err != nil {
		return 0, err
	}

	return e.Rank, nil
}

// echelonBits runs the elimination on packed rows. src rows are cloned;
// the transform starts as the identity and receives every swap and XOR
// applied to the working rows.
func echelonBits(src []*bitset.BitSet, cols int, full bool) (pivots []int, rows, t []*bitset.BitSet) {
	n := len(src)
	rows = make([]*bitset.BitSet, n)
	t = make([]*bitset.BitSet, n)
	for i := range src {
		rows[i] = src[i].Clone()
		t[i] = bitset.New(uint(n))
		t[i].Set(uint(i))
	}

	pr := 0 // current pivot row
	for col := 0; col < cols && pr < n; col++ {
		if !rows[pr].Test(uint(col)) {
			// Lowest available row index below pr wins the pivot.
			for r := pr + 1; r < n; r++ {
				if rows[r].Test(uint(col)) {
					rows[pr], rows[r] = rows[r], rows[pr]
					t[pr], t[r] = t[r], t[pr]
					break
				}
			}
		}
		if !rows[pr].Test(uint(col)) {
			continue // no pivot in this column
		}
		lo := pr + 1
		if full {
			lo = 0
		}
		for r := lo; r < n; r++ {
			if r == pr || !rows[r].Test(uint(col)) {
				continue
			}
			rows[r].InPlaceSymmetricDifference(rows[pr])
			t[r].InPlaceSymmetricDifference(t[pr])
		}
		pivots = append(pivots, col)
		pr++
	}

	return pivots, rows, t
}

// echelonSupports runs the same elimination on sorted-support rows.
// Row XOR is a sorted symmetric-difference merge, so a reduction stays
// proportional to the populated entries for sparse inputs.
func echelonSupports(src [][]int, cols int, full bool) (pivots []int, rows, t [][]int) {
	n := len(src)
	rows = make([][]int, n)
	t = make([][]int, n)
	for i := range src {
		rows[i] = append([]int(nil), src[i]...)
		t[i] = []int{i}
	}

	pr := 0
	for col := 0; col < cols && pr < n; col++ {
		if searchSupport(rows[pr], col) == 0 {
			for r := pr + 1; r < n; r++ {
				if searchSupport(rows[r], col) == 1 {
					rows[pr], rows[r] = rows[r], rows[pr]
					t[pr], t[r] = t[r], t[pr]
					break
				}
			}
		}
		if searchSupport(rows[pr], col) == 0 {
			continue
		}
		lo := pr + 1
		if full {
			lo = 0
		}
		for r := lo; r < n; r++ {
			if r == pr || searchSupport(rows[r], col) == 0 {
				continue
			}
			rows[r] = xorSorted(rows[r], rows[pr])
			t[r] = xorSorted(t[r], t[pr])
		}
		pivots = append(pivots, col)
		pr++
	}

	return pivots, rows, t
}

// xorSorted merges two ascending supports into their symmetric difference.
func xorSorted(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default: // equal entries cancel mod 2
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}
