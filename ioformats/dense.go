package ioformats

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/discopt/cmr-sub003/matrix"
)

// ReadDense parses the dense matrix format: a header line `H W`, then H
// lines of W whitespace-separated integer tokens. Comment lines (leading
// `#`), extra blank lines, and a missing trailing newline are all
// tolerated, following the same lenient line-scanner conventions used by
// this module's graph-loading code.
func ReadDense(r io.Reader) (*matrix.Matrix[int8], error) {
	sc := newTokenScanner(r)
	h, err := sc.nextInt()
	if err != nil {
		return nil, fmt.Errorf("ioformats.ReadDense: header: %w", err)
	}
	w, err := sc.nextInt()
	if err != nil {
		return nil, fmt.Errorf("ioformats.ReadDense: header: %w", err)
	}
	if h <= 0 || w <= 0 {
		return nil, fmt.Errorf("ioformats.ReadDense: non-positive dimensions %dx%d: %w", h, w, ErrMalformed)
	}
	var triplets []matrix.Triplet[int8]
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			v, err := sc.nextInt()
			if err != nil {
				return nil, fmt.Errorf("ioformats.ReadDense: row %d col %d: %w", i, j, err)
			}
			if v != 0 {
				triplets = append(triplets, matrix.Triplet[int8]{Row: i, Col: j, Value: int8(v)})
			}
		}
	}
	return matrix.FromTriplets(h, w, triplets)
}

// WriteDense emits m in this dense format.
func WriteDense(w io.Writer, m *matrix.Matrix[int8]) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", m.NumRows(), m.NumColumns()); err != nil {
		return err
	}
	for i := 0; i < m.NumRows(); i++ {
		row := make([]string, m.NumColumns())
		s, e := m.RowRange(i)
		for k := s; k < e; k++ {
			row[m.ColIndex()[k]] = strconv.Itoa(int(m.Values()[k]))
		}
		for j := range row {
			if row[j] == "" {
				row[j] = "0"
			}
		}
		if _, err := fmt.Fprintln(bw, strings.Join(row, " ")); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// tokenScanner pulls whitespace-separated integer tokens off r, skipping
// blank lines and `#`-prefixed comment lines.
type tokenScanner struct {
	sc      *bufio.Scanner
	pending []string
}

func newTokenScanner(r io.Reader) *tokenScanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	return &tokenScanner{sc: sc}
}

func (s *tokenScanner) nextInt() (int, error) {
	for len(s.pending) == 0 {
		if !s.sc.Scan() {
			if err := s.sc.Err(); err != nil {
				return 0, err
			}
			return 0, fmt.Errorf("unexpected end of input: %w", ErrMalformed)
		}
		line := strings.TrimSpace(s.sc.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		s.pending = strings.Fields(line)
	}
	tok := s.pending[0]
	s.pending = s.pending[1:]
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("token %q: %w", tok, ErrMalformed)
	}
	return v, nil
}
