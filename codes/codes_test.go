package codes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantalib/cssforge/codes"
	"github.com/quantalib/cssforge/gf2"
)

// TestRep_ChainStructure verifies the bidiagonal chain shape and the
// full-rank property of the repetition check.
func TestRep_ChainStructure(t *testing.T) {
	m, err := codes.Rep(5)
	require.NoError(t, err)
	require.Equal(t, 4, m.Rows())
	require.Equal(t, 5, m.Cols())

	for i := 0; i < 4; i++ {
		assert.Equal(t, []int{i, i + 1}, m.Row(i), "row %d must check adjacent bits", i)
	}

	rank, err := gf2.Rank(m)
	require.NoError(t, err)
	assert.Equal(t, 4, rank, "repetition chain is full-rank")
}

// TestRep_KernelIsAllOnes checks that the only nonzero codeword is the
// all-ones vector.
func TestRep_KernelIsAllOnes(t *testing.T) {
	m, err := codes.Rep(4)
	require.NoError(t, err)

	ker, err := gf2.Nullspace(m)
	require.NoError(t, err)
	require.Equal(t, 1, ker.Rows())
	assert.Equal(t, []int{0, 1, 2, 3}, ker.Row(0))
}

// TestRing_CirculantStructure verifies the wrap-around row and the rank
// deficit of one that distinguishes the ring from the chain.
func TestRing_CirculantStructure(t *testing.T) {
	m, err := codes.Ring(5)
	require.NoError(t, err)
	require.Equal(t, 5, m.Rows())
	require.Equal(t, 5, m.Cols())

	assert.Equal(t, []int{0, 4}, m.Row(4), "last row must wrap around")

	rank, err := gf2.Rank(m)
	require.NoError(t, err)
	assert.Equal(t, 4, rank, "row sum vanishes mod 2, costing one rank")
}

// TestHamming_ColumnsEnumerateBinary pins the r=3 instance against its
// textbook form and checks shape plus rank for a larger r.
func TestHamming_ColumnsEnumerateBinary(t *testing.T) {
	m, err := codes.Hamming(3)
	require.NoError(t, err)

	want, err := gf2.FromRows([][]uint8{
		{0, 0, 0, 1, 1, 1, 1},
		{0, 1, 1, 0, 0, 1, 1},
		{1, 0, 1, 0, 1, 0, 1},
	})
	require.NoError(t, err)
	assert.True(t, gf2.Equal(want, m))

	big, err := codes.Hamming(5)
	require.NoError(t, err)
	require.Equal(t, 5, big.Rows())
	require.Equal(t, 31, big.Cols())
	rank, err := gf2.Rank(big)
	require.NoError(t, err)
	assert.Equal(t, 5, rank, "distinct nonzero columns keep the rows independent")
}

// TestConstructions_RejectDegenerateParameters walks the parameter guard
// of each construction.
func TestConstructions_RejectDegenerateParameters(t *testing.T) {
	_, err := codes.Rep(1)
	assert.ErrorIs(t, err, codes.ErrBadParameter)

	_, err = codes.Ring(0)
	assert.ErrorIs(t, err, codes.ErrBadParameter)

	_, err = codes.Hamming(1)
	assert.ErrorIs(t, err, codes.ErrBadParameter)

	_, err = codes.Hamming(31)
	assert.ErrorIs(t, err, codes.ErrBadParameter)
}
