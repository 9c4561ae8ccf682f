// SPDX-License-Identifier: MIT

// Package css models CSS quantum error-correcting codes: a pair of
// classical parity-check matrices hx/hz plus every algebraic invariant
// derivable from them — length, logical count, logical operator bases,
// canonical forms, distance and structural validity.
//
// 🚀 What is a CSS code here?
//
//	A Code holds hx (X stabilizers) and hz (Z stabilizers) over GF(2) and
//	derives, lazily and at most once each:
//	  • N — block length (shared column count)
//	  • K — logical qubit count, n − rank(hx) − rank(hz)
//	  • Lx/Lz — minimal logical operator bases
//	  • CanonicalLx/CanonicalLz — reduced, comparison-stable bases
//	  • H — the stacked stabilizer matrix
//	  • Distance — exact for small codes, budgeted upper bound otherwise
//	  • Valid — verdict of the structural check set
//
//	HGP builds a Code from two classical seed matrices via the hypergraph
//	product, which commutes by construction for any pair of seeds.
//
// ✨ Design contracts:
//
//   - Lazy and memoized — every derived attribute computes on first access,
//     under a compute-once guard, and is cached for the Code's lifetime.
//   - Overrides are trusted — any recognized attribute supplied at
//     construction (or via Set) is stored verbatim, frozen, and never
//     recomputed; its correctness is the caller's responsibility.
//   - Invalidity is not an error — a code whose stabilizers fail to
//     commute is a legitimate object to inspect; Validate names the
//     failing checks, while attribute access stays side-effect-free.
//   - Malformed input is an error — unconvertible matrices and column
//     mismatches are rejected at construction or first use.
//
// ⚙️ Usage:
//
//	code, err := css.NewCode(hx, css.WithHz(hz), css.WithName("steane"))
//	if err != nil { ... }                  // malformed input only
//	n, _ := code.N()
//	if !code.Test(true) { ... }            // prints per-check diagnostics
//
// Concurrency: a Code is safe for concurrent attribute reads; each
// attribute's compute-and-cache step runs under a singleflight guard, so
// concurrent first access computes once and never observes a torn value.
package css
