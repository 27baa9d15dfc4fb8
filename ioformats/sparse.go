package ioformats

import (
	"bufio"
	"fmt"
	"io"

	"github.com/discopt/cmr-sub003/matrix"
)

// ReadSparse parses this sparse format: header `H W K`, then K
// lines of `r c v` with 1-based row/column indices and v != 0. Entries
// need not be sorted within a row; matrix.FromTriplets sorts them.
func ReadSparse(r io.Reader) (*matrix.Matrix[int8], error) {
	sc := newTokenScanner(r)
	h, err := sc.nextInt()
	if err != nil {
		return nil, fmt.Errorf("ioformats.ReadSparse: header: %w", err)
	}
	w, err := sc.nextInt()
	if err != nil {
		return nil, fmt.Errorf("ioformats.ReadSparse: header: %w", err)
	}
	k, err := sc.nextInt()
	if err != nil {
		return nil, fmt.Errorf("ioformats.ReadSparse: header: %w", err)
	}
	if h <= 0 || w <= 0 || k < 0 {
		return nil, fmt.Errorf("ioformats.ReadSparse: invalid header %d %d %d: %w", h, w, k, ErrMalformed)
	}
	triplets := make([]matrix.Triplet[int8], 0, k)
	for i := 0; i < k; i++ {
		row, err := sc.nextInt()
		if err != nil {
			return nil, fmt.Errorf("ioformats.ReadSparse: entry %d: %w", i, err)
		}
		col, err := sc.nextInt()
		if err != nil {
			return nil, fmt.Errorf("ioformats.ReadSparse: entry %d: %w", i, err)
		}
		v, err := sc.nextInt()
		if err != nil {
			return nil, fmt.Errorf("ioformats.ReadSparse: entry %d: %w", i, err)
		}
		if v == 0 {
			return nil, fmt.Errorf("ioformats.ReadSparse: entry %d: %w", i, ErrZeroEntry)
		}
		if row < 1 || row > h || col < 1 || col > w {
			return nil, fmt.Errorf("ioformats.ReadSparse: entry %d: index (%d,%d) out of %dx%d: %w", i, row, col, h, w, ErrMalformed)
		}
		triplets = append(triplets, matrix.Triplet[int8]{Row: row - 1, Col: col - 1, Value: int8(v)})
	}
	return matrix.FromTriplets(h, w, triplets)
}

// WriteSparse emits m in this sparse format, 1-based indices,
// ascending row-major order (the order CSR storage already keeps m in).
func WriteSparse(w io.Writer, m *matrix.Matrix[int8]) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d %d\n", m.NumRows(), m.NumColumns(), m.NumNonzeros()); err != nil {
		return err
	}
	for i := 0; i < m.NumRows(); i++ {
		s, e := m.RowRange(i)
		for k := s; k < e; k++ {
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", i+1, m.ColIndex()[k]+1, m.Values()[k]); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
