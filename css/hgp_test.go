// SPDX-License-Identifier: MIT

package css_test

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantalib/cssforge/css"
	"github.com/quantalib/cssforge/gf2"
)

// TestNewHGP_RepetitionSeed pins the smallest interesting product: the
// surface-code family member built from the length-3 repetition chain,
// the [[13,1,3]] code.
func TestNewHGP_RepetitionSeed(t *testing.T) {
	hgp, err := css.NewHGP(repChain(3),
		css.WithName("HGP(Rep3)"),
		css.WithDiagnostics(io.Discard))
	require.NoError(t, err)

	n, err := hgp.N()
	require.NoError(t, err)
	assert.Equal(t, 13, n, "n = n1·n2 + r1·r2 = 9 + 4")

	k, err := hgp.K()
	require.NoError(t, err)
	assert.Equal(t, 1, k)

	d, err := hgp.Distance()
	require.NoError(t, err)
	assert.Equal(t, 3, d)

	assert.True(t, hgp.Valid())
}

// TestNewHGP_SeedDefaultsAndAccessors checks that h2 defaults to a copy
// of h1 and both seeds stay reachable through the accessors.
func TestNewHGP_SeedDefaultsAndAccessors(t *testing.T) {
	hgp, err := css.NewHGP(repChain(3), css.WithDiagnostics(io.Discard))
	require.NoError(t, err)

	assert.True(t, gf2.Equal(hgp.H1(), hgp.H2()), "h2 defaults to a copy of h1")
	assert.Equal(t, 2, hgp.H1().Rows())
	assert.Equal(t, 3, hgp.H1().Cols())
}

// TestNewHGP_MixedSeeds builds an asymmetric product and checks the
// block-length arithmetic on non-square ingredients.
func TestNewHGP_MixedSeeds(t *testing.T) {
	hgp, err := css.NewHGP(repChain(4),
		css.WithH2(repChain(3)),
		css.WithDiagnostics(io.Discard))
	require.NoError(t, err)

	// h1: 3×4, h2: 2×3 ⇒ n = 4·3 + 3·2 = 18.
	n, err := hgp.N()
	require.NoError(t, err)
	assert.Equal(t, 18, n)

	requireZeroProduct(t, hgp.Hx(), hgp.Hz())
	assert.True(t, hgp.Valid())
}

// TestNewHGP_ToricFromRing builds the [[18,2,3]] toric code from the
// length-3 ring: the rank-deficient seed contributes transpose logicals.
func TestNewHGP_ToricFromRing(t *testing.T) {
	hgp, err := css.NewHGP(ringChain(3),
		css.WithName("Toric3"),
		css.WithDistanceBudget(100*time.Millisecond),
		css.WithDiagnostics(io.Discard))
	require.NoError(t, err)

	n, err := hgp.N()
	require.NoError(t, err)
	assert.Equal(t, 18, n)

	k, err := hgp.K()
	require.NoError(t, err)
	assert.Equal(t, 2, k)

	assert.True(t, hgp.Valid())

	// Above the exact regime: every search candidate is a genuine coset
	// member, so the estimate can never undercut the true distance 3.
	d, err := hgp.Distance()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, d, 3)
	assert.LessOrEqual(t, d, n)
}

// TestNewHGP_HammingSeed checks the larger [[58,16]] product and the
// always-valid property on a seed with redundant columns.
func TestNewHGP_HammingSeed(t *testing.T) {
	hgp, err := css.NewHGP(hamming3(),
		css.WithName("HGP(Hamming3)"),
		css.WithDiagnostics(io.Discard))
	require.NoError(t, err)

	n, err := hgp.N()
	require.NoError(t, err)
	assert.Equal(t, 58, n, "n = 7·7 + 3·3")

	k, err := hgp.K()
	require.NoError(t, err)
	assert.Equal(t, 16, k)

	assert.True(t, hgp.Valid())
}

// TestNewHGP_AnySeedCommutes is the structural guarantee: arbitrary
// seed pairs, including ones that are terrible classical codes, always
// produce commuting check pairs.
func TestNewHGP_AnySeedCommutes(t *testing.T) {
	seeds := [][][]uint8{
		{{1, 1, 1}},
		{{1, 0}, {0, 1}, {1, 1}},
		{{0, 0, 0}, {1, 1, 1}},
	}
	for _, h1 := range seeds {
		for _, h2 := range seeds {
			hgp, err := css.NewHGP(h1,
				css.WithH2(h2),
				css.WithDiagnostics(io.Discard))
			require.NoError(t, err)
			requireZeroProduct(t, hgp.Hx(), hgp.Hz())
			requireZeroProduct(t, hgp.Hz(), hgp.Hx())
		}
	}
}

// TestNewHGP_RejectsBadSeeds mirrors the NewCode failure taxonomy at the
// seed conversion boundary.
func TestNewHGP_RejectsBadSeeds(t *testing.T) {
	_, err := css.NewHGP(nil)
	assert.ErrorIs(t, err, gf2.ErrNilMatrix)

	_, err = css.NewHGP([][]uint8{{1, 2}})
	assert.ErrorIs(t, err, gf2.ErrNotBinary)

	_, err = css.NewHGP(repChain(3), css.WithH2("nope"))
	assert.ErrorIs(t, err, gf2.ErrUnsupportedType)
}

// TestNewHGP_OverridesFlowThrough checks that construction overrides
// reach the embedded Code.
func TestNewHGP_OverridesFlowThrough(t *testing.T) {
	hgp, err := css.NewHGP(repChain(3),
		css.WithOverride(css.AttrD, 3),
		css.WithDiagnostics(io.Discard))
	require.NoError(t, err)

	assert.True(t, hgp.Overridden(css.AttrD))
	d, err := hgp.Distance()
	require.NoError(t, err)
	assert.Equal(t, 3, d)
}
