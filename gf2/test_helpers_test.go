// SPDX-License-Identifier: MIT

// Package gf2_test: shared fixtures and helpers for the gf2 test suite.
// Helpers build the same logical matrix in all three layouts so every
// kernel test can assert layout-uniform results.

package gf2_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quantalib/cssforge/gf2"
)

// fixtureH is the 12×16 binary check matrix the reduction determinism
// tests run against — irregular support, rank below row count.
var fixtureH = [][]uint8{
	{1, 1, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 1, 0, 0, 0, 1, 1, 0, 0, 0, 0, 1, 0, 0, 0},
	{0, 0, 0, 1, 1, 0, 1, 0, 0, 0, 0, 0, 0, 1, 0, 0},
	{0, 0, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 0, 0, 0, 1},
	{0, 1, 0, 0, 0, 0, 0, 1, 1, 0, 0, 1, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 1, 1, 1, 0},
	{1, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 1, 0, 1},
	{0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0},
	{0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 1},
	{0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 1, 1, 0, 0, 0, 0},
	{0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0},
	{1, 0, 1, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0},
}

// mustDense builds a *Dense from explicit entries or fails the test.
func mustDense(t *testing.T, rows [][]uint8) *gf2.Dense {
	t.Helper()
	m, err := gf2.FromRows(rows)
	require.NoError(t, err, "dense fixture must build")

	return m
}

// mustCSR rebuilds the same entries in compressed-row form.
func mustCSR(t *testing.T, rows [][]uint8) *gf2.CSR {
	t.Helper()
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
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
	require.NoError(t, err, "CSR fixture must build")

	return m
}

// mustCSC rebuilds the same entries in compressed-column form.
func mustCSC(t *testing.T, rows [][]uint8) *gf2.CSC {
	t.Helper()
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	indptr := make([]int, 1, cols+1)
	var indices []int
	for j := 0; j < cols; j++ {
		for i := range rows {
			if rows[i][j] == 1 {
				indices = append(indices, i)
			}
		}
		indptr = append(indptr, len(indices))
	}
	m, err := gf2.NewCSC(len(rows), cols, indptr, indices)
	require.NoError(t, err, "CSC fixture must build")

	return m
}

// allLayouts returns the same matrix in every layout, keyed by name.
func allLayouts(t *testing.T, rows [][]uint8) map[string]gf2.Matrix {
	t.Helper()

	return map[string]gf2.Matrix{
		"dense": mustDense(t, rows),
		"csr":   mustCSR(t, rows),
		"csc":   mustCSC(t, rows),
	}
}

// reverseRows returns a row-permuted copy (full reversal) of the entries.
func reverseRows(rows [][]uint8) [][]uint8 {
	out := make([][]uint8, len(rows))
	for i := range rows {
		out[i] = rows[len(rows)-1-i]
	}

	return out
}
