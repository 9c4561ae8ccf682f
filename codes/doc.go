// Package codes provides the classical parity-check constructions used
// to seed CSS and hypergraph product codes.
//
// ✨ Constructions
//
//   - Rep(n) — the (n−1)×n repetition-code chain: row i checks bits i
//     and i+1. Full-rank, distance n.
//   - Ring(n) — the n×n circulant closure of the chain: row i checks
//     bits i and (i+1) mod n. Rank n−1; the classical ingredient of the
//     toric construction.
//   - Hamming(r) — the r×(2ʳ−1) Hamming check matrix: column j is the
//     binary expansion of j+1, most significant bit in row 0.
//
// All three return dense matrices and reject degenerate parameters with
// ErrBadParameter. Constructions are pure and deterministic: the same
// parameter always yields the identical matrix.
package codes
