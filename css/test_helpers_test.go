// SPDX-License-Identifier: MIT

// Shared fixtures for the css tests: the small named codes every suite
// in the literature leans on, in literal matrix form.

package css_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quantalib/cssforge/gf2"
)

// hamming3 is the Hamming(3) parity check; used as both halves of the
// Steane code fixture.
func hamming3() [][]uint8 {
	return [][]uint8{
		{0, 0, 0, 1, 1, 1, 1},
		{0, 1, 1, 0, 0, 1, 1},
		{1, 0, 1, 0, 1, 0, 1},
	}
}

// repChain is the (n−1)×n repetition-code chain. Valid classical seed,
// deliberately non-commuting when used as both CSS halves.
func repChain(n int) [][]uint8 {
	rows := make([][]uint8, n-1)
	for i := range rows {
		rows[i] = make([]uint8, n)
		rows[i][i] = 1
		rows[i][i+1] = 1
	}

	return rows
}

// ringChain is the n×n circulant chain, the toric construction's seed.
func ringChain(n int) [][]uint8 {
	rows := make([][]uint8, n)
	for i := range rows {
		rows[i] = make([]uint8, n)
		rows[i][i] = 1
		rows[i][(i+1)%n] = 1
	}

	return rows
}

// requireZeroProduct asserts a·bᵗ ≡ 0 (mod 2).
func requireZeroProduct(t *testing.T, a, b gf2.Matrix) {
	t.Helper()
	bt, err := gf2.Transpose(b)
	require.NoError(t, err)
	prod, err := gf2.Mul(a, bt)
	require.NoError(t, err)
	require.True(t, gf2.IsZero(prod), "product must vanish mod 2")
}
