package camion

import (
	"fmt"

	"github.com/discopt/cmr-sub003/matrix"
)

// localPattern returns the alternating +1/-1 sign for each row on path p,
// starting at +1, as a map keyed by row.
func localPattern(p Path) map[int]int8 {
	out := make(map[int]int8, len(p.Rows))
	sign := int8(1)
	for _, row := range p.Rows {
		out[row] = sign
		sign = -sign
	}
	return out
}

// Sign decides whether support (a 0/1 matrix) admits a ±1 network-matrix
// signing consistent with the given per-column fundamental-cycle paths.
// On success it returns the signed ternary matrix and a nil violator. On
// failure it returns a nil matrix and a violator: two columns and the
// shared rows whose signs could not be reconciled (or a row whose
// committed sign conflicts, given twice).
//
// Complexity: O(sum of path lengths) for the BFS, plus O(nnz) to build the
// signed matrix.
func Sign(support *matrix.Matrix[int8], paths []Path) (signed *matrix.Matrix[int8], violator *Violator, err error) {
	byCol := make(map[int]Path, len(paths))
	for _, p := range paths {
		byCol[p.Column] = p
		for _, row := range p.Rows {
			if _, ok := support.FindEntry(row, p.Column); !ok {
				return nil, nil, fmt.Errorf("camion.Sign: row %d col %d: %w", row, p.Column, ErrPathNotInSupport)
			}
		}
	}

	// rowsToCols indexes, for each row, which columns' paths touch it, so
	// the column-adjacency BFS can find neighbours sharing a row.
	rowsToCols := make(map[int][]int)
	for _, p := range paths {
		for _, row := range p.Rows {
			rowsToCols[row] = append(rowsToCols[row], p.Column)
		}
	}

	local := make(map[int]map[int]int8, len(paths))
	for _, p := range paths {
		local[p.Column] = localPattern(p)
	}

	final := make(map[int]map[int]int8, len(paths)) // column -> row -> committed sign
	rowFinal := make(map[int]int8)                  // row -> committed sign, set by whichever column reaches it first
	visitedCol := make(map[int]bool, len(paths))

	var cols []int
	for _, p := range paths {
		cols = append(cols, p.Column)
	}
	sortInts(cols)

	for _, start := range cols {
		if visitedCol[start] {
			continue
		}
		// seed this component: commit start's own alternating pattern as-is.
		final[start] = local[start]
		for row, s := range local[start] {
			rowFinal[row] = s
		}
		visitedCol[start] = true
		queue := []int{start}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			neighbors := neighborColumns(cur, byCol, rowsToCols)
			sortInts(neighbors)
			for _, nb := range neighbors {
				if visitedCol[nb] {
					continue
				}
				flip, ok := reconcile(byCol[cur].Rows, byCol[nb].Rows, final[cur], local[nb])
				if !ok {
					r1, r2 := sharedRows(byCol[cur].Rows, byCol[nb].Rows)
					return nil, &Violator{Rows: [2]int{r1, r2}, Columns: [2]int{cur, nb}}, nil
				}
				committed := applyFlip(local[nb], flip)
				final[nb] = committed
				for row, s := range committed {
					if existing, ok := rowFinal[row]; ok && existing != s {
						return nil, &Violator{Rows: [2]int{row, row}, Columns: [2]int{cur, nb}}, nil
					}
					rowFinal[row] = s
				}
				visitedCol[nb] = true
				queue = append(queue, nb)
			}
		}
	}

	triplets := make([]matrix.Triplet[int8], 0, support.NumNonzeros())
	for i := 0; i < support.NumRows(); i++ {
		s, e := support.RowRange(i)
		for k := s; k < e; k++ {
			j := int(support.ColIndex()[k])
			sign, ok := final[j][i]
			if !ok {
				sign = 1 // entry outside any supplied path: no constraint, default +1
			}
			triplets = append(triplets, matrix.Triplet[int8]{Row: i, Col: j, Value: sign})
		}
	}
	signed, err = matrix.FromTriplets[int8](support.NumRows(), support.NumColumns(), triplets)
	if err != nil {
		return nil, nil, fmt.Errorf("camion.Sign: %w", err)
	}
	return signed, nil, nil
}

func neighborColumns(col int, byCol map[int]Path, rowsToCols map[int][]int) []int {
	seen := map[int]bool{}
	var out []int
	for _, row := range byCol[col].Rows {
		for _, other := range rowsToCols[row] {
			if other != col && !seen[other] {
				seen[other] = true
				out = append(out, other)
			}
		}
	}
	return out
}

func sharedRows(a, b []int) (int, int) {
	bset := map[int]bool{}
	for _, r := range b {
		bset[r] = true
	}
	var shared []int
	for _, r := range a {
		if bset[r] {
			shared = append(shared, r)
		}
	}
	sortInts(shared)
	if len(shared) >= 2 {
		return shared[0], shared[1]
	}
	if len(shared) == 1 {
		return shared[0], shared[0]
	}
	return -1, -1
}

// reconcile finds the flip (+1 or -1) to apply to nb's local pattern so
// that it agrees with cur's already-committed signs on every row the two
// columns share. Returns ok=false if no single flip works.
func reconcile(curRows, nbRows []int, curFinal, nbLocal map[int]int8) (int8, bool) {
	var flip int8
	haveFlip := false
	for _, row := range nbRows {
		curSign, inCur := curFinal[row]
		if !inCur {
			continue
		}
		nbSign := nbLocal[row]
		candidate := curSign * nbSign // nbSign*candidate should equal curSign, i.e. candidate = curSign/nbSign = curSign*nbSign
		if !haveFlip {
			flip = candidate
			haveFlip = true
			continue
		}
		if flip != candidate {
			return 0, false
		}
	}
	if !haveFlip {
		return 1, true
	}
	return flip, true
}

func applyFlip(local map[int]int8, flip int8) map[int]int8 {
	out := make(map[int]int8, len(local))
	for row, s := range local {
		out[row] = s * flip
	}
	return out
}

func sortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

// VerifySigning checks whether m's own ternary entries — rather than a
// freshly constructed signing — already satisfy the network-matrix
// alternation rule along each given column's fundamental-cycle path,
// reconciled for the same global per-column orientation ambiguity Sign's
// BFS resolves (choosing which tree direction a column's path was walked
// in does not change the underlying network matrix, so two columns that
// individually alternate correctly but disagree once made to share a row
// can still be consistent after one of them is read in reverse).
//
// Unlike Sign, this never fabricates a signing: a column whose own
// entries fail to alternate along its path is an immediate violator,
// independent of any other column.
func VerifySigning(m *matrix.Matrix[int8], paths []Path) (violator *Violator, err error) {
	byCol := make(map[int]Path, len(paths))
	local := make(map[int]map[int]int8, len(paths))
	for _, p := range paths {
		byCol[p.Column] = p
		pat := make(map[int]int8, len(p.Rows))
		for i, row := range p.Rows {
			idx, ok := m.FindEntry(row, p.Column)
			if !ok {
				return nil, fmt.Errorf("camion.VerifySigning: row %d col %d: %w", row, p.Column, ErrPathNotInSupport)
			}
			s := m.Values()[idx]
			pat[row] = s
			if i > 0 {
				prevRow := p.Rows[i-1]
				if int8(pat[prevRow]*s) != -1 {
					return &Violator{Rows: [2]int{prevRow, row}, Columns: [2]int{p.Column, p.Column}}, nil
				}
			}
		}
		local[p.Column] = pat
	}

	rowsToCols := make(map[int][]int)
	for _, p := range paths {
		for _, row := range p.Rows {
			rowsToCols[row] = append(rowsToCols[row], p.Column)
		}
	}

	final := make(map[int]map[int]int8, len(paths))
	rowFinal := make(map[int]int8)
	visitedCol := make(map[int]bool, len(paths))

	var cols []int
	for _, p := range paths {
		cols = append(cols, p.Column)
	}
	sortInts(cols)

	for _, start := range cols {
		if visitedCol[start] {
			continue
		}
		final[start] = local[start]
		for row, s := range local[start] {
			rowFinal[row] = s
		}
		visitedCol[start] = true
		queue := []int{start}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			neighbors := neighborColumns(cur, byCol, rowsToCols)
			sortInts(neighbors)
			for _, nb := range neighbors {
				if visitedCol[nb] {
					continue
				}
				flip, ok := reconcile(byCol[cur].Rows, byCol[nb].Rows, final[cur], local[nb])
				if !ok {
					r1, r2 := sharedRows(byCol[cur].Rows, byCol[nb].Rows)
					return &Violator{Rows: [2]int{r1, r2}, Columns: [2]int{cur, nb}}, nil
				}
				committed := applyFlip(local[nb], flip)
				for row, s := range committed {
					if existing, ok := rowFinal[row]; ok && existing != s {
						return &Violator{Rows: [2]int{row, row}, Columns: [2]int{cur, nb}}, nil
					}
					rowFinal[row] = s
				}
				final[nb] = committed
				visitedCol[nb] = true
				queue = append(queue, nb)
			}
		}
	}
	return nil, nil
}
