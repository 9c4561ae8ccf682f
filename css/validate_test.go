// SPDX-License-Identifier: MIT

package css_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantalib/cssforge/css"
)

// checkByName pulls one named verdict out of a report.
func checkByName(t *testing.T, r *css.Report, name string) css.Check {
	t.Helper()
	for _, c := range r.Checks {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("report has no check named %q", name)

	return css.Check{}
}

// TestValidate_SteanePassesEverything runs the full check set on the
// canonical valid fixture.
func TestValidate_SteanePassesEverything(t *testing.T) {
	code := steane(t)

	r := code.Validate()
	require.Len(t, r.Checks, 7)
	for _, c := range r.Checks {
		assert.Equal(t, css.Passed, c.Status, "check %q", c.Name)
		assert.NoError(t, c.Err)
	}
	assert.True(t, r.Valid())
	assert.True(t, code.Valid())
}

// TestValidate_RepetitionPairFailsCommutation uses the repetition chain
// as both halves: a legitimate classical code whose checks do not
// commute, the textbook structurally invalid input. The verdict must be
// a named Failed check, never an error.
func TestValidate_RepetitionPairFailsCommutation(t *testing.T) {
	code, err := css.NewCode(repChain(7),
		css.WithName("Rep7 pair"),
		css.WithDiagnostics(io.Discard))
	require.NoError(t, err)

	r := code.Validate()
	assert.Equal(t, css.Failed,
		checkByName(t, r, "stabilizers commute [hx·hzᵗ = 0]").Status)
	assert.Equal(t, css.Failed,
		checkByName(t, r, "stabilizers commute [hz·hxᵗ = 0]").Status)
	assert.False(t, r.Valid())
	assert.False(t, code.Valid())
}

// TestValidate_OverriddenBasisIsChecked swaps in a wrong logical basis;
// the validator must judge the override like any derived value.
func TestValidate_OverriddenBasisIsCheckedNotTrusted(t *testing.T) {
	code := steane(t, css.WithOverride(css.AttrLx, [][]uint8{
		{1, 0, 0, 0, 0, 0, 0}, // weight-1 vector, not in ker(hz)
	}))

	r := code.Validate()
	assert.Equal(t, css.Failed,
		checkByName(t, r, "logicals commute [hz·lxᵗ = 0]").Status)
	assert.False(t, r.Valid())
}

// TestValidate_ShapeMismatchIsSkippedNotFatal verifies that underivable
// inputs produce Skipped verdicts carrying their cause, and the code is
// reported invalid rather than crashing the validator.
func TestValidate_ShapeMismatchIsSkippedNotFatal(t *testing.T) {
	code, err := css.NewCode(hamming3(), css.WithDiagnostics(io.Discard))
	require.NoError(t, err)
	require.NoError(t, code.Set(map[css.Attr]any{
		css.AttrHz: [][]uint8{{1, 1, 0}},
	}))

	r := code.Validate()
	dims := checkByName(t, r, "block dimensions [n, k, lx, lz]")
	assert.Equal(t, css.Skipped, dims.Status)
	assert.ErrorIs(t, dims.Err, css.ErrShapeMismatch)
	assert.False(t, r.Valid())
}

// TestValidate_OverriddenValidShortCircuits pins the verdict itself: the
// boolean view trusts it, while Validate keeps reporting the truth.
func TestValidate_OverriddenValidShortCircuits(t *testing.T) {
	code, err := css.NewCode(repChain(5),
		css.WithDiagnostics(io.Discard),
		css.WithOverride(css.AttrValid, true))
	require.NoError(t, err)

	assert.True(t, code.Valid(), "pinned verdict wins")
	assert.False(t, code.Validate().Valid(), "the full report still tells the truth")
}

// TestTest_WritesReportToDiagnostics checks the Test facade: verdict
// returned, per-check lines and the closing verdict sentence written to
// the configured writer.
func TestTest_WritesReportToDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	code, err := css.NewCode(hamming3(),
		css.WithName("Steane"),
		css.WithDiagnostics(&buf))
	require.NoError(t, err)

	assert.True(t, code.Test(true))
	out := buf.String()
	assert.Contains(t, out, "Testing Steane")
	assert.Contains(t, out, "block dimensions [n, k, lx, lz]: Passed")
	assert.Contains(t, out, "is a valid CSS code")

	buf.Reset()
	assert.True(t, code.Test(false))
	assert.Empty(t, buf.String(), "show=false must stay silent")
}

// TestTest_InvalidReportWording pins the **invalid** marker in the
// closing sentence.
func TestTest_InvalidReportWording(t *testing.T) {
	var buf bytes.Buffer
	code, err := css.NewCode(repChain(5),
		css.WithName("Rep5 pair"),
		css.WithDiagnostics(&buf))
	require.NoError(t, err)

	assert.False(t, code.Test(true))
	assert.Contains(t, buf.String(), "is an **invalid** CSS code")
}
