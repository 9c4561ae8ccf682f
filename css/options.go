// SPDX-License-Identifier: MIT

// Package css: attribute names, functional construction options and
// documented defaults. Construction follows the package-wide pattern:
// required inputs are positional, everything else is a WithX option, and
// each default is a named constant (single source of truth).

package css

import (
	"io"
	"os"
	"time"
)

// Attr enumerates the recognized code attributes. The set is closed: the
// override mechanism accepts exactly these names, keeping the entity's
// shape statically known while preserving trust-the-caller semantics.
type Attr string

const (
	// AttrHx is the X-stabilizer parity-check matrix (matrix-valued).
	AttrHx Attr = "hx"
	// AttrHz is the Z-stabilizer parity-check matrix (matrix-valued).
	AttrHz Attr = "hz"
	// AttrH is the vertically stacked stabilizer matrix (matrix-valued).
	AttrH Attr = "h"
	// AttrLx is the logical X operator basis (matrix-valued).
	AttrLx Attr = "lx"
	// AttrLz is the logical Z operator basis (matrix-valued).
	AttrLz Attr = "lz"
	// AttrCanonicalLx is the pivot-normalized logical X basis (matrix-valued).
	AttrCanonicalLx Attr = "canonical_lx"
	// AttrCanonicalLz is the pivot-normalized logical Z basis (matrix-valued).
	AttrCanonicalLz Attr = "canonical_lz"
	// AttrN is the block length (int).
	AttrN Attr = "n"
	// AttrK is the logical qubit count (int).
	AttrK Attr = "k"
	// AttrD is the code distance, or a declared upper bound (int).
	AttrD Attr = "d"
	// AttrL is the maximum column weight over hx and hz (int).
	AttrL Attr = "l"
	// AttrQ is the maximum row weight over hx and hz (int).
	AttrQ Attr = "q"
	// AttrValid is the structural verdict (bool).
	AttrValid Attr = "valid"
)

// matrixAttrs marks the attributes with an adjacency-list representation;
// only these are accepted by Save.
var matrixAttrs = map[Attr]bool{
	AttrHx:          true,
	AttrHz:          true,
	AttrH:           true,
	AttrLx:          true,
	AttrLz:          true,
	AttrCanonicalLx: true,
	AttrCanonicalLz: true,
}

// intAttrs marks the int-valued attributes for override type checking.
var intAttrs = map[Attr]bool{
	AttrN: true,
	AttrK: true,
	AttrD: true,
	AttrL: true,
	AttrQ: true,
}

const (
	// DefaultName labels codes constructed without an explicit name,
	// mirroring the placeholder the interchange tooling expects.
	DefaultName = "<Unnamed CSS code>"

	// DefaultDistanceBudget bounds the heuristic distance search when the
	// caller does not configure one. Advisory, checked between iterations.
	DefaultDistanceBudget = time.Second

	// DefaultDistanceSeed seeds the heuristic search so repeated runs on
	// the same machine walk the same trajectory.
	DefaultDistanceSeed int64 = 1
)

// Option configures code construction. Options only record intent; all
// validation happens inside NewCode/NewHGP so errors surface in one place.
type Option func(*options)

// options is the internal construction record: required fields arrive as
// positional arguments, everything here is optional.
type options struct {
	hz        any
	h2        any
	name      string
	budget    time.Duration
	seed      int64
	diag      io.Writer
	overrides map[Attr]any
}

// defaultOptions returns the documented defaults.
func defaultOptions() options {
	return options{
		name:   DefaultName,
		budget: DefaultDistanceBudget,
		seed:   DefaultDistanceSeed,
		diag:   os.Stdout,
	}
}

// WithHz supplies the Z-stabilizer check matrix. When omitted, hz defaults
// to an independent copy of hx. Accepts anything gf2.Convert accepts.
func WithHz(hz any) Option {
	return func(o *options) { o.hz = hz }
}

// WithH2 supplies the second classical seed for the hypergraph product.
// When omitted, h2 defaults to an independent copy of h1. NewCode ignores
// this option; it exists for NewHGP.
func WithH2(h2 any) Option {
	return func(o *options) { o.h2 = h2 }
}

// WithName labels the code; the label prefixes saved interchange files
// and validation reports.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithDistanceBudget bounds the heuristic distance search wall-clock time.
// Non-positive budgets are rejected at construction with ErrBadBudget.
func WithDistanceBudget(d time.Duration) Option {
	return func(o *options) { o.budget = d }
}

// WithDistanceSeed fixes the heuristic search's random source, making the
// reported upper bound reproducible for a given budget and machine.
func WithDistanceSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithDiagnostics redirects Test's per-check output. Defaults to
// os.Stdout; a nil writer suppresses output entirely.
func WithDiagnostics(w io.Writer) Option {
	return func(o *options) { o.diag = w }
}

// WithOverride supplies a derived attribute up front. The value is stored
// verbatim, frozen, and the attribute is never computed — the escape
// hatch for pinning an expensive or externally certified quantity (most
// commonly the distance). Correctness is the caller's responsibility.
func WithOverride(attr Attr, value any) Option {
	return func(o *options) {
		if o.overrides == nil {
			o.overrides = make(map[Attr]any)
		}
		o.overrides[attr] = value
	}
}
