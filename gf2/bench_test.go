// SPDX-License-Identifier: MIT

package gf2_test

import (
	"math/rand"
	"testing"

	"github.com/quantalib/cssforge/gf2"
)

// randomRows builds a reproducible r×c binary grid with the given density.
func randomRows(r, c int, density float64, seed int64) [][]uint8 {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]uint8, r)
	for i := range rows {
		rows[i] = make([]uint8, c)
		for j := range rows[i] {
			if rng.Float64() < density {
				rows[i][j] = 1
			}
		}
	}

	return rows
}

// BenchmarkRowEchelon_Dense measures word-packed reduction on a dense grid.
func BenchmarkRowEchelon_Dense(b *testing.B) {
	rows := randomRows(128, 256, 0.5, 1)
	m, err := gf2.FromRows(rows)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gf2.RowEchelon(m, false); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRowEchelon_CSR measures sorted-support reduction on a sparse grid.
func BenchmarkRowEchelon_CSR(b *testing.B) {
	rows := randomRows(128, 256, 0.03, 1)
	cols := 256
	indptr := make([]int, 1, len(rows)+1)
	var indices []int
	for _, row := range rows {
		for j, v := range row {
			if v == 1 {
				indices = append(indices, j)
			}
		}
		indptr = append(indptr, len(indices))
	}
	m, err := gf2.NewCSR(len(rows), cols, indptr, indices)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gf2.RowEchelon(m, false); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkNullspace measures kernel extraction on the dense path.
func BenchmarkNullspace(b *testing.B) {
	m, err := gf2.FromRows(randomRows(96, 192, 0.5, 2))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gf2.Nullspace(m); err != nil {
			b.Fatal(err)
		}
	}
}
