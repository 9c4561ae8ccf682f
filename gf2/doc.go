// SPDX-License-Identifier: MIT

// Package gf2 implements binary matrices and the mod-2 linear algebra
// used to build and verify quantum CSS codes: row-echelon reduction,
// rank, nullspace (kernel) bases and row-space membership, uniformly
// across one dense and two sparse layouts.
//
// 🚀 What is gf2?
//
//	Arithmetic over the two-element field — addition is XOR and
//	multiplication is AND — applied to 2D binary matrices:
//	  • Dense — rows packed into machine words (bitset-backed)
//	  • CSR   — compressed sparse row (per-row sorted column indices)
//	  • CSC   — compressed sparse column (per-column sorted row indices)
//	All three satisfy the Matrix interface; every kernel accepts any of
//	them and produces identical observable results.
//
// ✨ Key guarantees:
//
//   - Determinism — pivot tie-break is always the lowest available row
//     index, so the same input yields the same pivots, the same reduced
//     matrix and the same transform on every call, in every layout.
//   - No silent coercion — Convert returns ErrUnsupportedType or
//     ErrNotBinary instead of substituting a sentinel matrix.
//   - No numerical drift — there is no floating point anywhere; a pivot
//     is a 1 or it is nothing.
//
// ⚙️ Usage:
//
//	m, _ := gf2.Convert([][]int{{1, 1, 0}, {0, 1, 1}})
//	e, _ := gf2.RowEchelon(m, false)   // pivots, rank, transform
//	k, _ := gf2.Nullspace(m)           // rows span ker(m) over GF(2)
//
// Performance:
//
//   - Dense reduction XORs whole rows word-at-a-time.
//   - CSR/CSC reduction works on sorted row supports assembled in
//     O(nnz); no dense intermediate is materialized.
//
// See css for the code model built on top of these kernels.
package gf2
