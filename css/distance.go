// SPDX-License-Identifier: MIT

// Package css: the distance estimator.
//
// The distance is the minimum Hamming weight over the coset of nontrivial
// logical operators — logical combinations offset by stabilizer-space
// elements — taken across X-type and Z-type. Exact enumeration is
// exponential in the stabilizer-plus-logical basis size, so the estimator
// switches regimes on block length: exhaustive below, budgeted
// random-descent search above. The heuristic result is an upper bound on
// the true distance, never certified.

package css

import (
	"math/bits"
	"math/rand"
	"time"

	"github.com/bits-and-blooms/bitset"

	"github.com/quantalib/cssforge/gf2"
)

const (
	// ExactDistanceMaxLength is the largest block length enumerated
	// exhaustively; longer codes fall back to the budgeted search.
	ExactDistanceMaxLength = 15

	// exactBasisCap bounds the enumerated basis size independently of the
	// block length, so inconsistent codes (whose logical rows need not be
	// independent of the stabilizers) cannot blow up the walk.
	exactBasisCap = 16
)

// estimateDistance derives AttrD: the minimum over both operator types.
// A code with no logical rows of either type has distance 0.
func (c *Code) estimateDistance() (int, error) {
	n, err := c.N()
	if err != nil {
		return 0, err
	}
	lx, err := c.Lx()
	if err != nil {
		return 0, err
	}
	lz, err := c.Lz()
	if err != nil {
		return 0, err
	}

	// One wall clock shared by both types: the budget bounds the whole
	// estimate, not each half.
	deadline := time.Now().Add(c.budget)
	rng := rand.New(rand.NewSource(c.seed))

	best := n + 1
	found := false
	for _, side := range []struct {
		logical gf2.Matrix
		stab    gf2.Matrix
	}{
		{logical: lx, stab: c.Hx()}, // X-type ops live over the X-stabilizer span
		{logical: lz, stab: c.Hz()},
	} {
		w, ok, err := typeDistance(side.logical, side.stab, n, deadline, rng)
		if err != nil {
			return 0, err
		}
		if ok {
			found = true
			if w < best {
				best = w
			}
		}
	}
	if !found {
		return 0, nil
	}

	return best, nil
}

// typeDistance finds (or bounds) the minimum weight over the coset
// {a·logical + b·stab : a ≠ 0}. ok is false when there are no logical
// rows of this type.
func typeDistance(logical, stab gf2.Matrix, n int, deadline time.Time, rng *rand.Rand) (int, bool, error) {
	k := logical.Rows()
	if k == 0 {
		return 0, false, nil
	}
	sb, err := gf2.RowBasis(stab)
	if err != nil {
		return 0, false, err
	}
	s := sb.Rows()

	rows := make([]*bitset.BitSet, 0, s+k)
	for i := 0; i < s; i++ {
		rows = append(rows, rowBitset(sb, i, n))
	}
	for i := 0; i < k; i++ {
		rows = append(rows, rowBitset(logical, i, n))
	}

	if n <= ExactDistanceMaxLength && s+k <= exactBasisCap {
		return exactMinWeight(rows, s, k, n), true, nil
	}

	return descentMinWeight(rows, s, k, n, deadline, rng), true, nil
}

// exactMinWeight walks every combination of the s stabilizer rows and k
// logical rows in Gray-code order (one XOR per step) and returns the
// minimum weight among combinations with a nonzero logical part.
func exactMinWeight(rows []*bitset.BitSet, s, k, n int) int {
	m := uint(s + k)
	logMask := (uint(1)<<uint(k) - 1) << uint(s)
	acc := bitset.New(uint(n))
	best := n + 1

	var gray uint
	for i := uint(1); i < 1<<m; i++ {
		bit := uint(bits.TrailingZeros(i))
		acc.InPlaceSymmetricDifference(rows[bit])
		gray ^= 1 << bit
		if gray&logMask == 0 {
			continue // pure stabilizer element, trivial by definition
		}
		if w := int(acc.Count()); w < best {
			best = w
		}
	}

	return best
}

// descentMinWeight is the budgeted search: deterministic single-logical
// starts first, then random logical+stabilizer starts, each greedily
// reduced by stabilizer rows while the weight drops. The deadline is
// advisory cooperative cancellation — it is checked between descents and
// the best weight so far is returned, an upper bound on the distance.
func descentMinWeight(rows []*bitset.BitSet, s, k, n int, deadline time.Time, rng *rand.Rand) int {
	best := n + 1
	descend := func(v *bitset.BitSet) {
		w := int(v.Count())
		for improved := true; improved; {
			improved = false
			for i := 0; i < s; i++ {
				if cw := int(v.SymmetricDifferenceCardinality(rows[i])); cw < w {
					v.InPlaceSymmetricDifference(rows[i])
					w = cw
					improved = true
				}
			}
		}
		if w < best {
			best = w
		}
	}

	// Every single logical row is a guaranteed coset member: descend from
	// each once, budget notwithstanding, so the bound is never vacuous.
	for i := 0; i < k; i++ {
		descend(rows[s+i].Clone())
	}

	for time.Now().Before(deadline) {
		v := bitset.New(uint(n))
		nonzero := false
		for i := 0; i < k; i++ {
			if rng.Intn(2) == 1 {
				v.InPlaceSymmetricDifference(rows[s+i])
				nonzero = true
			}
		}
		if !nonzero {
			v.InPlaceSymmetricDifference(rows[s+rng.Intn(k)])
		}
		for i := 0; i < s; i++ {
			if rng.Intn(2) == 1 {
				v.InPlaceSymmetricDifference(rows[i])
			}
		}
		descend(v)
	}

	return best
}

// rowBitset packs row i of m into a fresh bitset of length n.
func rowBitset(m gf2.Matrix, i, n int) *bitset.BitSet {
	b := bitset.New(uint(n))
	for _, j := range m.Row(i) {
		b.Set(uint(j))
	}

	return b
}
