// SPDX-License-Identifier: MIT

// Package css: the hypergraph product constructor.
//
// The product of two classical parity-check matrices h1 (r1×n1) and
// h2 (r2×n2) is the CSS pair
//
//	hx = [ h1 ⊗ I(n2) | I(r1) ⊗ h2ᵗ ]
//	hz = [ I(n1) ⊗ h2 | h1ᵗ ⊗ I(r2) ]
//
// on n = n1·n2 + r1·r2 qubits. Commutation holds for ANY seed pair: the
// mixed-tensor identity gives hx·hzᵗ = h1⊗h2ᵗ + h1⊗h2ᵗ, which cancels
// mod 2 regardless of seed content — every product is structurally valid.

package css

import (
	"fmt"

	"github.com/quantalib/cssforge/gf2"
)

// HGP is a hypergraph product code: a Code whose check pair is derived
// from two classical seeds, which remain accessible alongside the full
// Code attribute surface.
type HGP struct {
	*Code
	h1, h2 gf2.Matrix
}

// NewHGP builds a hypergraph product code from seed h1 (required) and
// options. WithH2 supplies the second seed; when omitted, h2 defaults to
// an independent copy of h1. All remaining options (name, budget,
// overrides, diagnostics) carry the NewCode contract unchanged.
//
// Seed conversion failures surface as gf2 sentinels; the tensor shapes
// themselves are compatible for every seed pair, so the only structural
// failure mode lives in the seeds, not the product.
func NewHGP(h1 any, opts ...Option) (*HGP, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	h1m, err := gf2.Convert(h1)
	if err != nil {
		return nil, fmt.Errorf("NewHGP: h1: %w", err)
	}
	var h2m gf2.Matrix
	if o.h2 != nil {
		if h2m, err = gf2.Convert(o.h2); err != nil {
			return nil, fmt.Errorf("NewHGP: h2: %w", err)
		}
	} else {
		h2m = h1m.Clone()
	}

	hx, hz, err := productPair(h1m, h2m)
	if err != nil {
		return nil, fmt.Errorf("NewHGP: %w", err)
	}

	// Re-thread the collected options into the Code constructor, with the
	// derived hz taking the place of any WithHz the caller sneaked in.
	codeOpts := []Option{
		WithHz(hz),
		WithName(o.name),
		WithDistanceBudget(o.budget),
		WithDistanceSeed(o.seed),
		WithDiagnostics(o.diag),
	}
	code, err := NewCode(hx, codeOpts...)
	if err != nil {
		return nil, fmt.Errorf("NewHGP: %w", err)
	}
	if err := code.Set(o.overrides); err != nil {
		return nil, fmt.Errorf("NewHGP: %w", err)
	}

	return &HGP{Code: code, h1: h1m, h2: h2m}, nil
}

// H1 returns the first classical seed matrix.
func (h *HGP) H1() gf2.Matrix { return h.h1 }

// H2 returns the second classical seed matrix.
func (h *HGP) H2() gf2.Matrix { return h.h2 }

// productPair assembles the CSS check pair from the seeds.
func productPair(h1, h2 gf2.Matrix) (hx, hz gf2.Matrix, err error) {
	r1, n1 := h1.Rows(), h1.Cols()
	r2, n2 := h2.Rows(), h2.Cols()

	h1t, err := gf2.Transpose(h1)
	if err != nil {
		return nil, nil, err
	}
	h2t, err := gf2.Transpose(h2)
	if err != nil {
		return nil, nil, err
	}

	left, err := gf2.Kron(h1, gf2.Identity(n2))
	if err != nil {
		return nil, nil, err
	}
	right, err := gf2.Kron(gf2.Identity(r1), h2t)
	if err != nil {
		return nil, nil, err
	}
	if hx, err = gf2.HStack(left, right); err != nil {
		return nil, nil, err
	}

	if left, err = gf2.Kron(gf2.Identity(n1), h2); err != nil {
		return nil, nil, err
	}
	if right, err = gf2.Kron(h1t, gf2.Identity(r2)); err != nil {
		return nil, nil, err
	}
	if hz, err = gf2.HStack(left, right); err != nil {
		return nil, nil, err
	}

	return hx, hz, nil
}
