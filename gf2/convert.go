// SPDX-License-Identifier: MIT

// Package gf2: explicit conversion into the Matrix abstraction.
// Convert replaces the silent nil-on-failure coercion pattern with a
// result/error pair: a failed conversion can never be mistaken for a
// valid empty matrix.

package gf2

// Convert coerces v into a Matrix.
//
// Accepted inputs, checked in order:
//   - Matrix (Dense, CSR, CSC, or any other implementation): returned as is.
//   - [][]uint8, [][]int, [][]bool: coerced to a Dense matrix; rows must be
//     equal-length (ErrBadShape) and entries must be 0/1 (ErrNotBinary).
//   - anything else: ErrUnsupportedType.
//
// Convert never substitutes a sentinel matrix on failure.
func Convert(v any) (Matrix, error) {
	switch t := v.(type) {
	case nil:
		return nil, ErrNilMatrix
	case Matrix:
		return t, nil
	case [][]uint8:
		return FromRows(t)
	case [][]int:
		return fromInts(t)
	case [][]bool:
		return fromBools(t)
	default:
		return nil, ErrUnsupportedType
	}
}

// fromInts coerces an int grid; any entry outside {0,1} is ErrNotBinary.
func fromInts(rows [][]int) (*Dense, error) {
	conv := make([][]uint8, len(rows))
	for i, row := range rows {
		conv[i] = make([]uint8, len(row))
		for j, v := range row {
			if v != 0 && v != 1 {
				return nil, ErrNotBinary
			}
			conv[i][j] = uint8(v)
		}
	}

	return FromRows(conv)
}

// fromBools coerces a bool grid; true maps to 1.
func fromBools(rows [][]bool) (*Dense, error) {
	conv := make([][]uint8, len(rows))
	for i, row := range rows {
		conv[i] = make([]uint8, len(row))
		for j, v := range row {
			if v {
				conv[i][j] = 1
			}
		}
	}

	return FromRows(conv)
}
