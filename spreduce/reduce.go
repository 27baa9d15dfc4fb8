package spreduce

import (
	"fmt"

	"github.com/discopt/cmr-sub003/elt"
	"github.com/discopt/cmr-sub003/hashtable"
	"github.com/discopt/cmr-sub003/matrix"
)

const wheelSearchBound = 14

// coefficients generates deterministic, well-mixed per-index hash
// coefficients via splitmix64. Same salt always yields the same
// coefficient sequence, so reduction certificates are reproducible across
// runs.
func coefficients(n int, salt uint64) []int64 {
	out := make([]int64, n)
	x := salt + 0x9E3779B97F4A7C15
	for i := 0; i < n; i++ {
		x += 0x9E3779B97F4A7C15
		z := x
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		z = z ^ (z >> 31)
		out[i] = int64(z >> 1) // keep it positive-ish before projection
	}
	return out
}

type reducer struct {
	rowNZ []map[int]int8
	colNZ []map[int]int8

	activeRow, activeCol   []bool
	inQueueRow, inQueueCol []bool
	coeffRow, coeffCol     []int64
	hashRows, hashCols     *hashtable.IntMultiMap
	queue                  []elt.E
	reductions             []Reduction
}

func newReducer(m *matrix.Matrix[int8]) *reducer {
	n, p := m.NumRows(), m.NumColumns()
	r := &reducer{
		rowNZ:      make([]map[int]int8, n),
		colNZ:      make([]map[int]int8, p),
		activeRow:  make([]bool, n),
		activeCol:  make([]bool, p),
		inQueueRow: make([]bool, n),
		inQueueCol: make([]bool, p),
		coeffRow:   coefficients(n, 0x51),
		coeffCol:   coefficients(p, 0xA7),
		hashRows:   hashtable.NewIntMultiMap(n),
		hashCols:   hashtable.NewIntMultiMap(p),
	}
	for i := range r.rowNZ {
		r.rowNZ[i] = make(map[int]int8)
		r.activeRow[i] = true
	}
	for j := range r.colNZ {
		r.colNZ[j] = make(map[int]int8)
		r.activeCol[j] = true
	}
	for i := 0; i < n; i++ {
		s, e := m.RowRange(i)
		for k := s; k < e; k++ {
			j := int(m.ColIndex()[k])
			v := m.Values()[k]
			r.rowNZ[i][j] = v
			r.colNZ[j][i] = v
		}
	}
	return r
}

func (r *reducer) rowHash(i int) int64 {
	var h int64
	for col, v := range r.rowNZ[i] {
		h += r.coeffCol[col] * int64(v)
	}
	return hashtable.ProjectHash(h)
}

func (r *reducer) colHash(j int) int64 {
	var h int64
	for row, v := range r.colNZ[j] {
		h += r.coeffRow[row] * int64(v)
	}
	return hashtable.ProjectHash(h)
}

func (r *reducer) pushRow(i int) {
	if !r.activeRow[i] || r.inQueueRow[i] {
		return
	}
	r.inQueueRow[i] = true
	r.queue = append(r.queue, elt.Row(i))
}

func (r *reducer) pushCol(j int) {
	if !r.activeCol[j] || r.inQueueCol[j] {
		return
	}
	r.inQueueCol[j] = true
	r.queue = append(r.queue, elt.Column(j))
}

func (r *reducer) insertRow(i int) {
	r.hashRows.Insert(r.rowHash(i), int64(i))
}

func (r *reducer) insertCol(j int) {
	r.hashCols.Insert(r.colHash(j), int64(j))
}

// compareVectors reports whether a and b (nonzero maps of equal intended
// length) are identical or negatives of one another.
func compareVectors(a, b map[int]int8) (match, negated bool) {
	if len(a) != len(b) {
		return false, false
	}
	direct, neg := true, true
	for k, v := range a {
		bv, ok := b[k]
		if !ok {
			return false, false
		}
		if bv != v {
			direct = false
		}
		if bv != -v {
			neg = false
		}
	}
	if direct {
		return true, false
	}
	if neg {
		return true, true
	}
	return false, false
}

// run drains the FIFO queue to exhaustion. Every row and column starts in
// the queue: lines with <=1 nonzero perform a zero/unit reduction the
// moment they are popped; lines with >=2 nonzeros perform their one
// parallel-candidate lookup against whatever has already been inserted
// into the hash table, then insert themselves. Later pops triggered by a
// neighbour's removal give a line a fresh look with its then-current
// vector and hash.
func (r *reducer) run() {
	for i := range r.rowNZ {
		r.pushRow(i)
	}
	for j := range r.colNZ {
		r.pushCol(j)
	}
	for len(r.queue) > 0 {
		x := r.queue[0]
		r.queue = r.queue[1:]
		if x.IsRow() {
			i := x.Index()
			r.inQueueRow[i] = false
			r.processRow(i)
		} else {
			j := x.Index()
			r.inQueueCol[j] = false
			r.processCol(j)
		}
	}
}

func (r *reducer) removeColIncidence(col, row int) {
	delete(r.colNZ[col], row)
	if !r.activeCol[col] {
		return
	}
	switch {
	case len(r.colNZ[col]) <= 1:
		r.pushCol(col)
	default:
		r.insertCol(col)
	}
}

func (r *reducer) removeRowIncidence(row, col int) {
	delete(r.rowNZ[row], col)
	if !r.activeRow[row] {
		return
	}
	switch {
	case len(r.rowNZ[row]) <= 1:
		r.pushRow(row)
	default:
		r.insertRow(row)
	}
}

func (r *reducer) removeRowCompletely(i int) {
	for col := range r.rowNZ[i] {
		r.removeColIncidence(col, i)
	}
	r.activeRow[i] = false
	r.rowNZ[i] = nil
}

func (r *reducer) removeColCompletely(j int) {
	for row := range r.colNZ[j] {
		r.removeRowIncidence(row, j)
	}
	r.activeCol[j] = false
	r.colNZ[j] = nil
}

func (r *reducer) processRow(i int) {
	if !r.activeRow[i] {
		return
	}
	cnt := len(r.rowNZ[i])
	if cnt <= 1 {
		var mate elt.E = elt.Invalid
		var negated bool
		for col, v := range r.rowNZ[i] {
			mate = elt.Column(col)
			negated = v < 0
		}
		r.reductions = append(r.reductions, Reduction{Element: elt.Row(i), Mate: mate, Negated: negated})
		for col := range r.rowNZ[i] {
			r.removeColIncidence(col, i)
		}
		r.activeRow[i] = false
		r.rowNZ[i] = nil
		return
	}

	// Probe the hash of the row and of its negation, so that negated
	// parallel rows are found as well as identical ones.
	var raw int64
	for col, v := range r.rowNZ[i] {
		raw += r.coeffCol[col] * int64(v)
	}
	for _, h := range [2]int64{hashtable.ProjectHash(raw), hashtable.ProjectHash(-raw)} {
		for cand, it, ok := r.hashRows.FindFirst(h); ok; cand, it, ok = r.hashRows.FindNext(it, h) {
			j := int(cand)
			if j == i || !r.activeRow[j] || len(r.rowNZ[j]) != cnt {
				continue
			}
			if match, neg := compareVectors(r.rowNZ[i], r.rowNZ[j]); match {
				r.reductions = append(r.reductions, Reduction{Element: elt.Row(i), Mate: elt.Row(j), Negated: neg})
				r.removeRowCompletely(i)
				return
			}
		}
	}
	r.insertRow(i)
}

func (r *reducer) processCol(j int) {
	if !r.activeCol[j] {
		return
	}
	cnt := len(r.colNZ[j])
	if cnt <= 1 {
		var mate elt.E = elt.Invalid
		var negated bool
		for row, v := range r.colNZ[j] {
			mate = elt.Row(row)
			negated = v < 0
		}
		r.reductions = append(r.reductions, Reduction{Element: elt.Column(j), Mate: mate, Negated: negated})
		for row := range r.colNZ[j] {
			r.removeRowIncidence(row, j)
		}
		r.activeCol[j] = false
		r.colNZ[j] = nil
		return
	}

	var raw int64
	for row, v := range r.colNZ[j] {
		raw += r.coeffRow[row] * int64(v)
	}
	for _, h := range [2]int64{hashtable.ProjectHash(raw), hashtable.ProjectHash(-raw)} {
		for cand, it, ok := r.hashCols.FindFirst(h); ok; cand, it, ok = r.hashCols.FindNext(it, h) {
			k := int(cand)
			if k == j || !r.activeCol[k] || len(r.colNZ[k]) != cnt {
				continue
			}
			if match, neg := compareVectors(r.colNZ[j], r.colNZ[k]); match {
				r.reductions = append(r.reductions, Reduction{Element: elt.Column(j), Mate: elt.Column(k), Negated: neg})
				r.removeColCompletely(j)
				return
			}
		}
	}
	r.insertCol(j)
}

func (r *reducer) remainingRows() []int {
	var out []int
	for i, ok := range r.activeRow {
		if ok {
			out = append(out, i)
		}
	}
	return out
}

func (r *reducer) remainingCols() []int {
	var out []int
	for j, ok := range r.activeCol {
		if ok {
			out = append(out, j)
		}
	}
	return out
}

// Reduce strips zero, unit and parallel rows/columns from m.
// m must be ternary (binary matrices qualify). The returned ops list is in
// the order reductions were performed. remaining describes what is left
// after reduction in m's original row/column numbering: it is empty when m
// reduces entirely. If the remainder is nonempty and SP-irreducible,
// exactly one of wheel or sep is non-nil: wheel names a W₃ submatrix seed
// for the nested-minor-sequence engine; sep witnesses a
// 2-separation of the remainder.
//
// Complexity: O(nnz) expected for the reduction loop; the wheel search is
// bounded (see wheelSearchBound) and falls back to a connectivity-based
// separation when the remainder is too large to search exhaustively.
func Reduce(m *matrix.Matrix[int8]) (ops []Reduction, remaining matrix.Submatrix, wheel *WheelCertificate, sep *Separation, err error) {
	if !m.IsTernary(0) {
		return nil, matrix.Submatrix{}, nil, nil, fmt.Errorf("spreduce.Reduce: %w", ErrNotTernary)
	}

	r := newReducer(m)
	r.run()

	rr := r.remainingRows()
	cc := r.remainingCols()
	remaining = matrix.Submatrix{Rows: rr, Columns: cc}

	if len(rr) == 0 && len(cc) == 0 {
		return r.reductions, remaining, nil, nil, nil
	}

	if w := findWheel(r, rr, cc); w != nil {
		return r.reductions, remaining, w, nil, nil
	}
	return r.reductions, remaining, nil, findSeparation(r, rr, cc), nil
}
