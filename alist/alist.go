package alist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/quantalib/cssforge/gf2"
)

// ErrBadFormat signals a structurally invalid alist stream: short input,
// non-numeric tokens, weights disagreeing with the index lists, or
// indices outside the declared shape. Matched via errors.Is.
var ErrBadFormat = errors.New("alist: malformed adjacency-list input")

// Write serializes m in MacKay alist layout. Indices are emitted 1-based
// and ascending, padded with zeros to the respective maximum weight.
func Write(w io.Writer, m gf2.Matrix) error {
	if m == nil {
		return fmt.Errorf("Write: %w", gf2.ErrNilMatrix)
	}
	rows, cols := m.Rows(), m.Cols()
	maxCol, maxRow := gf2.MaxColWeight(m), gf2.MaxRowWeight(m)

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", cols, rows)
	fmt.Fprintf(bw, "%d %d\n", maxCol, maxRow)
	for j := 0; j < cols; j++ {
		writeSep(bw, j, strconv.Itoa(len(m.Col(j))))
	}
	bw.WriteByte('\n')
	for i := 0; i < rows; i++ {
		writeSep(bw, i, strconv.Itoa(len(m.Row(i))))
	}
	bw.WriteByte('\n')
	for j := 0; j < cols; j++ {
		writePadded(bw, m.Col(j), maxCol)
	}
	for i := 0; i < rows; i++ {
		writePadded(bw, m.Row(i), maxRow)
	}

	return bw.Flush()
}

// Save writes m to an alist file at path, truncating any existing file.
func Save(path string, m gf2.Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	if err := Write(f, m); err != nil {
		f.Close()
		return fmt.Errorf("Save: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("Save: %w", err)
	}

	return nil
}

// Read parses an alist stream into a sparse row-compressed matrix. The
// row-index section is authoritative; per-line weights and the column
// section are cross-checked against it, and any disagreement (or an
// index outside the declared shape) yields ErrBadFormat.
func Read(r io.Reader) (gf2.Matrix, error) {
	toks := newTokenizer(r)

	cols, err := toks.next()
	if err != nil {
		return nil, err
	}
	rows, err := toks.next()
	if err != nil {
		return nil, err
	}
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("Read: negative shape %dx%d: %w", rows, cols, ErrBadFormat)
	}
	maxCol, err := toks.next()
	if err != nil {
		return nil, err
	}
	maxRow, err := toks.next()
	if err != nil {
		return nil, err
	}

	colW, err := toks.weights(cols, maxCol)
	if err != nil {
		return nil, err
	}
	rowW, err := toks.weights(rows, maxRow)
	if err != nil {
		return nil, err
	}

	// Column section: 1-based row indices per column, padded to maxCol.
	colIdx, err := toks.section(cols, maxCol, colW, rows)
	if err != nil {
		return nil, err
	}
	// Row section: 1-based column indices per row, padded to maxRow.
	rowIdx, err := toks.section(rows, maxRow, rowW, cols)
	if err != nil {
		return nil, err
	}
	if err := crossCheck(rowIdx, colIdx); err != nil {
		return nil, err
	}

	indptr := make([]int, rows+1)
	var indices []int
	for i, supp := range rowIdx {
		indices = append(indices, supp...)
		indptr[i+1] = len(indices)
	}
	m, err := gf2.NewCSR(rows, cols, indptr, indices)
	if err != nil {
		return nil, fmt.Errorf("Read: %w", ErrBadFormat)
	}

	return m, nil
}

// Load reads an alist file at path.
func Load(path string) (gf2.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	defer f.Close()

	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}

	return m, nil
}

// writeSep writes tok preceded by a space for every position but the first.
func writeSep(w *bufio.Writer, pos int, tok string) {
	if pos > 0 {
		w.WriteByte(' ')
	}
	w.WriteString(tok)
}

// writePadded writes one index line: 1-based entries, zero padding to width.
func writePadded(w *bufio.Writer, supp []int, width int) {
	for p := 0; p < width; p++ {
		v := 0
		if p < len(supp) {
			v = supp[p] + 1
		}
		writeSep(w, p, strconv.Itoa(v))
	}
	w.WriteByte('\n')
}

// tokenizer yields whitespace-separated integers; the format is
// line-oriented only for humans, so parsing is token-oriented.
type tokenizer struct {
	sc *bufio.Scanner
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &tokenizer{sc: sc}
}

func (t *tokenizer) next() (int, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, fmt.Errorf("Read: %w", err)
		}
		return 0, fmt.Errorf("Read: unexpected end of input: %w", ErrBadFormat)
	}
	n, err := strconv.Atoi(strings.TrimSpace(t.sc.Text()))
	if err != nil {
		return 0, fmt.Errorf("Read: token %q: %w", t.sc.Text(), ErrBadFormat)
	}

	return n, nil
}

// weights reads count weight tokens, each within [0, max].
func (t *tokenizer) weights(count, max int) ([]int, error) {
	ws := make([]int, count)
	for i := range ws {
		w, err := t.next()
		if err != nil {
			return nil, err
		}
		if w < 0 || w > max {
			return nil, fmt.Errorf("Read: weight %d exceeds maximum %d: %w", w, max, ErrBadFormat)
		}
		ws[i] = w
	}

	return ws, nil
}

// section reads count padded index lines of the given width, returning
// 0-based ascending supports. Entries past a line's weight must be the
// padding zero; real entries must be unique, ascending after sign
// conversion and within [0, bound).
func (t *tokenizer) section(count, width int, weights []int, bound int) ([][]int, error) {
	out := make([][]int, count)
	for i := 0; i < count; i++ {
		supp := make([]int, 0, weights[i])
		for p := 0; p < width; p++ {
			v, err := t.next()
			if err != nil {
				return nil, err
			}
			if p >= weights[i] {
				if v != 0 {
					return nil, fmt.Errorf("Read: nonzero padding %d: %w", v, ErrBadFormat)
				}
				continue
			}
			if v < 1 || v > bound {
				return nil, fmt.Errorf("Read: index %d outside [1,%d]: %w", v, bound, ErrBadFormat)
			}
			if len(supp) > 0 && v-1 <= supp[len(supp)-1] {
				return nil, fmt.Errorf("Read: indices not strictly ascending: %w", ErrBadFormat)
			}
			supp = append(supp, v-1)
		}
		out[i] = supp
	}

	return out, nil
}

// crossCheck verifies the two redundant sections describe one matrix.
func crossCheck(rowIdx, colIdx [][]int) error {
	seen := make(map[[2]int]bool)
	nnz := 0
	for i, supp := range rowIdx {
		for _, j := range supp {
			seen[[2]int{i, j}] = true
			nnz++
		}
	}
	colNNZ := 0
	for j, supp := range colIdx {
		for _, i := range supp {
			if !seen[[2]int{i, j}] {
				return fmt.Errorf("Read: sections disagree at (%d,%d): %w", i, j, ErrBadFormat)
			}
			colNNZ++
		}
	}
	if colNNZ != nnz {
		return fmt.Errorf("Read: sections disagree on entry count: %w", ErrBadFormat)
	}

	return nil
}
