package nestedminor

import (
	"fmt"

	"github.com/discopt/cmr-sub003/elt"
	"github.com/discopt/cmr-sub003/matrix"
	"github.com/discopt/cmr-sub003/spreduce"
)

// Grow runs the core loop of this on the SP-reduced remainder
// described by rows/cols of full, seeded by a W₃ certificate found by
// spreduce.Reduce. On success it returns a Sequence placing the seed and
// every subsequently absorbed line in growth order; on getting stuck it
// returns a 2-separation between what was placed so far and what remains.
func Grow(full *matrix.Matrix[int8], rows, cols []int, seed *spreduce.WheelCertificate) (*Sequence, *spreduce.Separation, error) {
	if seed == nil || !distinct3(seed.Rows) || !distinct3(seed.Columns) {
		return nil, nil, fmt.Errorf("nestedminor.Grow: %w", ErrEmptySeed)
	}
	rowSet := toSet(rows)
	colSet := toSet(cols)
	for _, r := range seed.Rows {
		if !rowSet[r] {
			return nil, nil, fmt.Errorf("nestedminor.Grow: row %d: %w", r, ErrSeedNotInRemainder)
		}
	}
	for _, c := range seed.Columns {
		if !colSet[c] {
			return nil, nil, fmt.Errorf("nestedminor.Grow: column %d: %w", c, ErrSeedNotInRemainder)
		}
	}

	g := &grower{
		full:        full,
		placedRow:   map[int]bool{},
		placedCol:   map[int]bool{},
		unplacedRow: map[int]bool{},
		unplacedCol: map[int]bool{},
	}
	for _, r := range seed.Rows {
		g.placedRow[r] = true
	}
	for _, c := range seed.Columns {
		g.placedCol[c] = true
	}
	for _, r := range rows {
		if !g.placedRow[r] {
			g.unplacedRow[r] = true
		}
	}
	for _, c := range cols {
		if !g.placedCol[c] {
			g.unplacedCol[c] = true
		}
	}
	g.order = []elt.E{
		elt.Row(seed.Rows[0]), elt.Row(seed.Rows[1]), elt.Row(seed.Rows[2]),
		elt.Column(seed.Columns[0]), elt.Column(seed.Columns[1]), elt.Column(seed.Columns[2]),
	}
	g.steps = []int{6}

	for {
		if len(g.unplacedRow) == 0 && len(g.unplacedCol) == 0 {
			return g.finish()
		}
		if added := g.tryAddRow(); added {
			continue
		}
		if added := g.tryAddCol(); added {
			continue
		}
		if added := g.tryAddPair(); added {
			continue
		}
		return nil, g.stuckSeparation(), nil
	}
}

func distinct3(a [3]int) bool {
	return a[0] != a[1] && a[1] != a[2] && a[0] != a[2]
}

func toSet(xs []int) map[int]bool {
	s := make(map[int]bool, len(xs))
	for _, x := range xs {
		s[x] = true
	}
	return s
}

type grower struct {
	full                   *matrix.Matrix[int8]
	placedRow, placedCol   map[int]bool
	unplacedRow, unplacedCol map[int]bool
	order                  []elt.E
	steps                  []int
}

// restrictedRow returns row i's nonzero entries restricted to currently
// placed columns.
func (g *grower) restrictedRow(i int) map[int]int8 {
	out := map[int]int8{}
	s, e := g.full.RowRange(i)
	for k := s; k < e; k++ {
		c := int(g.full.ColIndex()[k])
		if g.placedCol[c] {
			out[c] = g.full.Values()[k]
		}
	}
	return out
}

func (g *grower) restrictedCol(j int) map[int]int8 {
	out := map[int]int8{}
	for i := range g.placedRow {
		if v, ok := g.full.FindEntry(i, j); ok {
			out[i] = g.full.Values()[v]
		}
	}
	return out
}

// tryAddRow implements rule 1: an unprocessed row with >1 nonzero among
// placed columns, and not parallel (or negated-parallel) to any already
// placed row restricted the same way, extends the sequence by one row.
// Ascending index order keeps growth deterministic.
func (g *grower) tryAddRow() bool {
	var candidates []int
	for i := range g.unplacedRow {
		candidates = append(candidates, i)
	}
	sortInts(candidates)
	for _, i := range candidates {
		vec := g.restrictedRow(i)
		if len(vec) <= 1 {
			continue
		}
		parallel := false
		for p := range g.placedRow {
			if compareRestricted(vec, g.restrictedRow(p)) {
				parallel = true
				break
			}
		}
		if parallel {
			continue
		}
		delete(g.unplacedRow, i)
		g.placedRow[i] = true
		g.order = append(g.order, elt.Row(i))
		g.steps = append(g.steps, 1)
		return true
	}
	return false
}

func (g *grower) tryAddCol() bool {
	var candidates []int
	for j := range g.unplacedCol {
		candidates = append(candidates, j)
	}
	sortInts(candidates)
	for _, j := range candidates {
		vec := g.restrictedCol(j)
		if len(vec) <= 1 {
			continue
		}
		parallel := false
		for p := range g.placedCol {
			if compareRestricted(vec, g.restrictedCol(p)) {
				parallel = true
				break
			}
		}
		if parallel {
			continue
		}
		delete(g.unplacedCol, j)
		g.placedCol[j] = true
		g.order = append(g.order, elt.Column(j))
		g.steps = append(g.steps, 1)
		return true
	}
	return false
}

// tryAddPair implements rule 2: when no single unprocessed row or column
// qualifies under rule 1 alone, look for an unprocessed row r and an
// unprocessed column c with a nonzero pivot entry such that placing both
// together keeps every placed row pairwise non-parallel (restricted to
// placed columns plus c) and every placed column pairwise non-parallel
// (restricted to placed rows plus r). Ascending (row, column) order keeps
// growth deterministic. This extends the sequence by one row and one
// column in a single step, rather than getting stuck whenever neither
// line can be added in isolation.
func (g *grower) tryAddPair() bool {
	var rowCands, colCands []int
	for i := range g.unplacedRow {
		rowCands = append(rowCands, i)
	}
	for j := range g.unplacedCol {
		colCands = append(colCands, j)
	}
	sortInts(rowCands)
	sortInts(colCands)
	for _, r := range rowCands {
		for _, c := range colCands {
			if g.full.At(r, c) == 0 {
				continue
			}
			if !g.pairExtends(r, c) {
				continue
			}
			delete(g.unplacedRow, r)
			delete(g.unplacedCol, c)
			g.placedRow[r] = true
			g.placedCol[c] = true
			g.order = append(g.order, elt.Row(r), elt.Column(c))
			g.steps = append(g.steps, 2)
			return true
		}
	}
	return false
}

// pairExtends tentatively places row r and column c together and checks
// that every pair of placed rows (restricted to placed columns including
// c) and every pair of placed columns (restricted to placed rows
// including r) remains non-parallel and non-negated-parallel, and that r
// and c each still carry more than one nonzero in that restriction. The
// tentative placement is always undone before returning.
func (g *grower) pairExtends(r, c int) bool {
	g.placedRow[r] = true
	g.placedCol[c] = true
	defer func() {
		delete(g.placedRow, r)
		delete(g.placedCol, c)
	}()

	if len(g.restrictedRow(r)) <= 1 || len(g.restrictedCol(c)) <= 1 {
		return false
	}
	return g.rowsConsistent() && g.colsConsistent()
}

// rowsConsistent reports whether every pair of currently placed rows,
// restricted to currently placed columns, is neither equal nor negated.
func (g *grower) rowsConsistent() bool {
	var rows []int
	for i := range g.placedRow {
		rows = append(rows, i)
	}
	sortInts(rows)
	for i := 0; i < len(rows); i++ {
		vi := g.restrictedRow(rows[i])
		for j := i + 1; j < len(rows); j++ {
			if compareRestricted(vi, g.restrictedRow(rows[j])) {
				return false
			}
		}
	}
	return true
}

// colsConsistent is rowsConsistent's column-side mirror.
func (g *grower) colsConsistent() bool {
	var cols []int
	for j := range g.placedCol {
		cols = append(cols, j)
	}
	sortInts(cols)
	for i := 0; i < len(cols); i++ {
		vi := g.restrictedCol(cols[i])
		for j := i + 1; j < len(cols); j++ {
			if compareRestricted(vi, g.restrictedCol(cols[j])) {
				return false
			}
		}
	}
	return true
}

// compareRestricted reports whether a and b are equal or negatives of one
// another as sparse vectors (maps of index -> nonzero value).
func compareRestricted(a, b map[int]int8) bool {
	if len(a) != len(b) {
		return false
	}
	direct, neg := true, true
	for k, v := range a {
		bv, ok := b[k]
		if !ok {
			return false
		}
		if bv != v {
			direct = false
		}
		if bv != -v {
			neg = false
		}
	}
	return direct || neg
}

func sortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

func (g *grower) stuckSeparation() *spreduce.Separation {
	sep := &spreduce.Separation{}
	for i := range g.placedRow {
		sep.RowsA = append(sep.RowsA, i)
	}
	for j := range g.placedCol {
		sep.ColumnsA = append(sep.ColumnsA, j)
	}
	for i := range g.unplacedRow {
		sep.RowsB = append(sep.RowsB, i)
	}
	for j := range g.unplacedCol {
		sep.ColumnsB = append(sep.ColumnsB, j)
	}
	sortInts(sep.RowsA)
	sortInts(sep.ColumnsA)
	sortInts(sep.RowsB)
	sortInts(sep.ColumnsB)
	return sep
}

func (g *grower) finish() (*Sequence, *spreduce.Separation, error) {
	var rowOrder, colOrder []int
	for _, e := range g.order {
		if e.IsRow() {
			rowOrder = append(rowOrder, e.Index())
		} else {
			colOrder = append(colOrder, e.Index())
		}
	}
	m, err := g.full.Slice(&matrix.Submatrix{Rows: rowOrder, Columns: colOrder})
	if err != nil {
		return nil, nil, fmt.Errorf("nestedminor.Grow: %w", err)
	}
	return &Sequence{Order: g.order, StepSizes: g.steps, Matrix: m}, nil, nil
}
