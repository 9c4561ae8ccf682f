package codes

import (
	"errors"
	"fmt"

	"github.com/quantalib/cssforge/gf2"
)

// ErrBadParameter rejects construction parameters with no classical
// code behind them (sizes below the smallest nontrivial instance).
var ErrBadParameter = errors.New("codes: invalid construction parameter")

// Rep returns the (n−1)×n repetition-code parity-check chain. Requires
// n ≥ 2.
func Rep(n int) (*gf2.Dense, error) {
	if n < 2 {
		return nil, fmt.Errorf("Rep(%d): %w", n, ErrBadParameter)
	}
	m, err := gf2.NewDense(n-1, n)
	if err != nil {
		return nil, fmt.Errorf("Rep(%d): %w", n, err)
	}
	for i := 0; i < n-1; i++ {
		m.Set(i, i, 1)
		m.Set(i, i+1, 1)
	}

	return m, nil
}

// Ring returns the n×n circulant chain: Rep's checks plus the wrap-around
// row, giving every bit exactly two checks. Requires n ≥ 2.
func Ring(n int) (*gf2.Dense, error) {
	if n < 2 {
		return nil, fmt.Errorf("Ring(%d): %w", n, ErrBadParameter)
	}
	m, err := gf2.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Ring(%d): %w", n, err)
	}
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
		m.Set(i, (i+1)%n, 1)
	}

	return m, nil
}

// Hamming returns the r×(2ʳ−1) Hamming parity-check matrix whose columns
// enumerate the binary expansions of 1..2ʳ−1, most significant bit first.
// Requires 2 ≤ r ≤ 30.
func Hamming(r int) (*gf2.Dense, error) {
	if r < 2 || r > 30 {
		return nil, fmt.Errorf("Hamming(%d): %w", r, ErrBadParameter)
	}
	n := 1<<uint(r) - 1
	m, err := gf2.NewDense(r, n)
	if err != nil {
		return nil, fmt.Errorf("Hamming(%d): %w", r, err)
	}
	for j := 0; j < n; j++ {
		v := j + 1
		for i := 0; i < r; i++ {
			if v>>uint(r-1-i)&1 == 1 {
				m.Set(i, j, 1)
			}
		}
	}

	return m, nil
}
