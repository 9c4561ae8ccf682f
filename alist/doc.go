// Package alist reads and writes the MacKay adjacency-list ("alist")
// interchange format for binary matrices.
//
// 🚀 What this package delivers
//
//   - Write / Save — serialize any gf2.Matrix to the plain-text layout
//     the classical-coding ecosystem exchanges parity checks in.
//   - Read / Load — parse an alist stream back into a sparse gf2.Matrix,
//     rejecting malformed input with ErrBadFormat.
//
// ⚙️ The format
//
// For an m×n matrix the file carries, line by line:
//
//	n m
//	maxColWeight maxRowWeight
//	w(col 0) … w(col n−1)
//	w(row 0) … w(row m−1)
//	n lines: 1-based row indices of each column, zero-padded to maxColWeight
//	m lines: 1-based column indices of each row, zero-padded to maxRowWeight
//
// Note the header order: columns first. Padding zeros are structural
// filler, not entries; Read accepts them only past a line's declared
// weight.
//
// Determinism: Write emits indices in ascending order, so equal matrices
// serialize to byte-identical files.
package alist
