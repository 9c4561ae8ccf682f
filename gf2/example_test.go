// SPDX-License-Identifier: MIT

package gf2_test

import (
	"fmt"

	"github.com/quantalib/cssforge/gf2"
)

// ExampleRowEchelon demonstrates reduction with pivot and rank extraction.
func ExampleRowEchelon() {
	m, _ := gf2.Convert([][]int{
		{1, 1, 0},
		{0, 1, 1},
		{1, 0, 1}, // sum of the first two rows
	})
	e, _ := gf2.RowEchelon(m, false)

	fmt.Println("rank:", e.Rank)
	fmt.Println("pivots:", e.Pivots)
	// Output:
	// rank: 2
	// pivots: [0 1]
}

// ExampleNullspace demonstrates kernel extraction: every basis row is
// orthogonal to every row of the input, mod 2.
func ExampleNullspace() {
	m, _ := gf2.Convert([][]int{
		{1, 1, 0},
		{0, 1, 1},
	})
	k, _ := gf2.Nullspace(m)

	kt, _ := gf2.Transpose(k)
	prod, _ := gf2.Mul(m, kt)
	fmt.Println("kernel rows:", k.Rows())
	fmt.Println("m·kᵗ = 0:", gf2.IsZero(prod))
	// Output:
	// kernel rows: 1
	// m·kᵗ = 0: true
}
