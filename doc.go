// Package cssforge constructs and verifies CSS quantum error-correcting
// codes from classical parity-check matrices — from raw GF(2) linear
// algebra up to hypergraph-product code families.
//
// 🚀 What is cssforge?
//
//	An offline, deterministic library that brings together:
//		• GF(2) kernels: row echelon, rank, nullspace, row-space tests
//		• One binary-matrix abstraction, three layouts: packed dense, CSR, CSC
//		• CSS code model: lazy, memoized invariants (n, k, logicals, distance)
//		• Hypergraph product: a valid CSS code from any two classical seeds
//		• Validator: commutation / pairing / rank checks with per-check reports
//		• Distance: exact coset enumeration for small codes, budgeted search above
//
// ✨ Why choose cssforge?
//
//   - Deterministic to the bit — same input, same pivots, same bases, every run
//   - Diagnostics are values – structural invalidity is reported, never thrown
//   - Trust-the-caller overrides – pin any derived attribute and skip its cost
//   - Pure Go – no cgo, no services, no I/O inside the kernels
//
// Everything is organized under four subpackages:
//
//	gf2/   — binary-matrix layouts + the mod-2 linear-algebra engine
//	css/   — Code & HGP models, validator, distance estimator
//	alist/ — MacKay adjacency-list interchange files (read/write)
//	codes/ — classical seed constructions: repetition, ring, Hamming
//
// Quick sketch:
//
//	seed, _ := codes.Rep(3)         // [[1 1 0] [0 1 1]]
//	code, _ := css.NewHGP(seed)     // the [[13,1,3]] product code
//	ok := code.Test(true)           // prints the check list, returns true
//
// Dive into each package's doc.go for contracts, determinism notes and
// worked examples.
//
//	go get github.com/quantalib/cssforge
package cssforge
