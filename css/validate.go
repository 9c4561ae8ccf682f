// SPDX-License-Identifier: MIT

// Package css: the structural validator.
//
// Structural invalidity is not an error: a code whose stabilizers fail to
// commute is a legitimate object to diagnose. The validator runs every
// check independently, names each verdict, and reduces them to a single
// boolean. A check whose inputs cannot even be derived (shape mismatch,
// conversion failure) is reported Skipped with its cause and still makes
// the code invalid.

package css

import (
	"fmt"
	"io"

	"github.com/quantalib/cssforge/gf2"
)

// CheckStatus is the verdict of a single validator check.
type CheckStatus uint8

const (
	// Passed: the check's condition holds.
	Passed CheckStatus = iota
	// Failed: the condition was evaluated and does not hold.
	Failed
	// Skipped: the condition could not be evaluated; Check.Err says why.
	Skipped
)

// String renders the verdict for reports.
func (s CheckStatus) String() string {
	switch s {
	case Passed:
		return "Passed"
	case Failed:
		return "Failed"
	default:
		return "Skipped"
	}
}

// Check is one named validator verdict.
type Check struct {
	Name   string
	Status CheckStatus
	Err    error // non-nil only when Status == Skipped
}

// Report is the full validator output for one code.
type Report struct {
	Label  string // the code's display label at validation time
	Checks []Check
}

// Valid reports whether every check passed.
func (r *Report) Valid() bool {
	for _, c := range r.Checks {
		if c.Status != Passed {
			return false
		}
	}

	return true
}

// WriteTo renders the per-check verdicts and the final line to w,
// implementing io.WriterTo.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var total int64
	emit := func(format string, args ...any) error {
		n, err := fmt.Fprintf(w, format, args...)
		total += int64(n)

		return err
	}

	if err := emit("Testing %s ..\n", r.Label); err != nil {
		return total, err
	}
	for _, c := range r.Checks {
		switch c.Status {
		case Skipped:
			if err := emit("  %s: Skipped (%v)\n", c.Name, c.Err); err != nil {
				return total, err
			}
		default:
			if err := emit("  %s: %s\n", c.Name, c.Status); err != nil {
				return total, err
			}
		}
	}
	verdict := "a valid"
	if !r.Valid() {
		verdict = "an **invalid**"
	}
	err := emit("%s is %s CSS code\n", r.Label, verdict)

	return total, err
}

// Validate runs the full check set and returns a fresh Report. It never
// errors and never panics on an inconsistent code; use Valid or Test for
// the memoized boolean view.
func (c *Code) Validate() *Report {
	r := &Report{Label: c.String()}

	r.Checks = append(r.Checks, c.checkBlockDimensions())
	r.Checks = append(r.Checks, c.checkZeroProduct("stabilizers commute [hx·hzᵗ = 0]", c.Hx(), c.Hz()))
	r.Checks = append(r.Checks, c.checkZeroProduct("stabilizers commute [hz·hxᵗ = 0]", c.Hz(), c.Hx()))
	r.Checks = append(r.Checks, c.checkLogicalCommutation("logicals commute [hz·lxᵗ = 0]", c.Hz(), c.Lx))
	r.Checks = append(r.Checks, c.checkLogicalCommutation("logicals commute [hx·lzᵗ = 0]", c.Hx(), c.Lz))
	r.Checks = append(r.Checks, c.checkSymplecticPairing())
	r.Checks = append(r.Checks, c.checkRankConsistency())

	return r
}

// Valid is the memoized boolean verdict: Test with diagnostics
// suppressed. An overridden AttrValid short-circuits validation entirely.
func (c *Code) Valid() bool {
	v, err := c.attr(AttrValid, func() (any, error) {
		return c.Validate().Valid(), nil
	})
	if err != nil {
		return false
	}

	return v.(bool)
}

// Test runs the validator and returns its verdict; when show is true the
// per-check report is written to the configured diagnostics writer. The
// verdict is memoized for Valid (without clobbering an override).
func (c *Code) Test(show bool) bool {
	r := c.Validate()
	if show && c.diag != nil {
		_, _ = r.WriteTo(c.diag)
	}
	_, _ = c.attr(AttrValid, func() (any, error) {
		return r.Valid(), nil
	})

	return r.Valid()
}

// checkBlockDimensions verifies that both logical bases live on n columns
// and carry exactly K rows each (K as exposed, overrides included).
func (c *Code) checkBlockDimensions() Check {
	const name = "block dimensions [n, k, lx, lz]"
	n, err := c.N()
	if err != nil {
		return Check{Name: name, Status: Skipped, Err: err}
	}
	k, err := c.K()
	if err != nil {
		return Check{Name: name, Status: Skipped, Err: err}
	}
	lx, err := c.Lx()
	if err != nil {
		return Check{Name: name, Status: Skipped, Err: err}
	}
	lz, err := c.Lz()
	if err != nil {
		return Check{Name: name, Status: Skipped, Err: err}
	}
	ok := lx.Cols() == n && lz.Cols() == n && lx.Rows() == k && lz.Rows() == k
	if !ok {
		return Check{Name: name, Status: Failed}
	}

	return Check{Name: name, Status: Passed}
}

// checkZeroProduct verifies a·bᵗ ≡ 0 (mod 2).
func (c *Code) checkZeroProduct(name string, a, b gf2.Matrix) Check {
	zero, err := zeroProduct(a, b)
	if err != nil {
		return Check{Name: name, Status: Skipped, Err: err}
	}
	if !zero {
		return Check{Name: name, Status: Failed}
	}

	return Check{Name: name, Status: Passed}
}

// checkLogicalCommutation verifies h·lᵗ ≡ 0 for a lazily derived basis.
func (c *Code) checkLogicalCommutation(name string, h gf2.Matrix, basis func() (gf2.Matrix, error)) Check {
	l, err := basis()
	if err != nil {
		return Check{Name: name, Status: Skipped, Err: err}
	}

	return c.checkZeroProduct(name, h, l)
}

// checkSymplecticPairing verifies rank(lx·lzᵗ) = k: every logical qubit's
// X/Z pair anticommutes with itself and with nothing else, ruling out
// degenerate or redundant bases.
func (c *Code) checkSymplecticPairing() Check {
	const name = "symplectic pairing [rank(lx·lzᵗ) = k]"
	k, err := c.K()
	if err != nil {
		return Check{Name: name, Status: Skipped, Err: err}
	}
	lx, err := c.Lx()
	if err != nil {
		return Check{Name: name, Status: Skipped, Err: err}
	}
	lz, err := c.Lz()
	if err != nil {
		return Check{Name: name, Status: Skipped, Err: err}
	}
	lzt, err := gf2.Transpose(lz)
	if err != nil {
		return Check{Name: name, Status: Skipped, Err: err}
	}
	pairing, err := gf2.Mul(lx, lzt)
	if err != nil {
		return Check{Name: name, Status: Skipped, Err: err}
	}
	rank, err := gf2.Rank(pairing)
	if err != nil {
		return Check{Name: name, Status: Skipped, Err: err}
	}
	if rank != k {
		return Check{Name: name, Status: Failed}
	}

	return Check{Name: name, Status: Passed}
}

// checkRankConsistency compares the exposed K (override included) against
// the rank-derived value. The overridden K is never replaced; a
// disagreement is surfaced here as a data-model inconsistency.
func (c *Code) checkRankConsistency() Check {
	const name = "rank consistency [k = n − rank(hx) − rank(hz)]"
	k, err := c.K()
	if err != nil {
		return Check{Name: name, Status: Skipped, Err: err}
	}
	derived, err := c.deriveK()
	if err != nil {
		return Check{Name: name, Status: Skipped, Err: err}
	}
	if k != derived {
		return Check{Name: name, Status: Failed}
	}

	return Check{Name: name, Status: Passed}
}

// zeroProduct reports whether a·bᵗ vanishes mod 2.
func zeroProduct(a, b gf2.Matrix) (bool, error) {
	bt, err := gf2.Transpose(b)
	if err != nil {
		return false, err
	}
	prod, err := gf2.Mul(a, bt)
	if err != nil {
		return false, err
	}

	return gf2.IsZero(prod), nil
}
