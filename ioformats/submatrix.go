package ioformats

import (
	"bufio"
	"fmt"
	"io"

	"github.com/discopt/cmr-sub003/matrix"
)

// ReadSubmatrix parses this submatrix format: header `HR HC H W`,
// then HR 1-based row indices, then HC 1-based column indices, where H
// and W name the dimensions of the matrix the submatrix was extracted
// from (used only to validate the listed indices, not stored).
func ReadSubmatrix(r io.Reader) (*matrix.Submatrix, error) {
	sc := newTokenScanner(r)
	hr, err := sc.nextInt()
	if err != nil {
		return nil, fmt.Errorf("ioformats.ReadSubmatrix: header: %w", err)
	}
	hc, err := sc.nextInt()
	if err != nil {
		return nil, fmt.Errorf("ioformats.ReadSubmatrix: header: %w", err)
	}
	h, err := sc.nextInt()
	if err != nil {
		return nil, fmt.Errorf("ioformats.ReadSubmatrix: header: %w", err)
	}
	w, err := sc.nextInt()
	if err != nil {
		return nil, fmt.Errorf("ioformats.ReadSubmatrix: header: %w", err)
	}
	if hr < 0 || hc < 0 || h <= 0 || w <= 0 {
		return nil, fmt.Errorf("ioformats.ReadSubmatrix: invalid header %d %d %d %d: %w", hr, hc, h, w, ErrMalformed)
	}
	rows := make([]int, hr)
	for i := 0; i < hr; i++ {
		v, err := sc.nextInt()
		if err != nil {
			return nil, fmt.Errorf("ioformats.ReadSubmatrix: row index %d: %w", i, err)
		}
		if v < 1 || v > h {
			return nil, fmt.Errorf("ioformats.ReadSubmatrix: row index %d out of 1..%d: %w", v, h, ErrMalformed)
		}
		rows[i] = v - 1
	}
	cols := make([]int, hc)
	for j := 0; j < hc; j++ {
		v, err := sc.nextInt()
		if err != nil {
			return nil, fmt.Errorf("ioformats.ReadSubmatrix: column index %d: %w", j, err)
		}
		if v < 1 || v > w {
			return nil, fmt.Errorf("ioformats.ReadSubmatrix: column index %d out of 1..%d: %w", v, w, ErrMalformed)
		}
		cols[j] = v - 1
	}
	return &matrix.Submatrix{Rows: rows, Columns: cols}, nil
}

// WriteSubmatrix emits s in this submatrix format, relative to a
// source matrix of dimensions h x w.
func WriteSubmatrix(w io.Writer, s *matrix.Submatrix, h, wCols int) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d %d %d\n", len(s.Rows), len(s.Columns), h, wCols); err != nil {
		return err
	}
	for i, r := range s.Rows {
		sep := " "
		if i == len(s.Rows)-1 {
			sep = "\n"
		}
		if _, err := fmt.Fprintf(bw, "%d%s", r+1, sep); err != nil {
			return err
		}
	}
	for j, c := range s.Columns {
		sep := " "
		if j == len(s.Columns)-1 {
			sep = "\n"
		}
		if _, err := fmt.Fprintf(bw, "%d%s", c+1, sep); err != nil {
			return err
		}
	}
	return bw.Flush()
}
