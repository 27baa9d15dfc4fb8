// Package bipartite implements breadth-first search over the bipartite
// graph of a matrix, whose vertices are the matrix's rows and columns and
// whose edges are its nonzero entries. It is used by the separation engine
// for 2- and 3-separation refinement and by Camion signing.
//
// The walker follows a familiar BFS-with-options shape, re-targeted from a
// generic adjacency-list graph to direct matrix nonzero iteration so no
// per-probe graph allocation occurs, and generalized from single-target to
// group-to-group reachability.
package bipartite

import (
	"errors"

	"github.com/discopt/cmr-sub003/elt"
	"github.com/discopt/cmr-sub003/matrix"
)

// ErrNoSourceGroup is returned when no enabled vertex belongs to the
// smallest present group (i.e. groups contains only negative values).
var ErrNoSourceGroup = errors.New("bipartite: no enabled vertex to start from")

// Result is the outcome of a group-to-group BFS probe.
type Result struct {
	Reached     bool
	Source      elt.E
	Target      elt.E
	Predecessor map[elt.E]elt.E // predecessor of each reached vertex, keyed by vertex
	PathSign    int             // signed sum of edge entries along the discovered Source->Target path
}

// walker holds the mutable state of one BFS run.
type walker struct {
	queue   []elt.E
	visited map[elt.E]bool
	pred    map[elt.E]elt.E
	sign    map[elt.E]int // accumulated signed sum from the (multi-)source to this vertex
}

// BFS searches, in the bipartite incidence graph of m, for a shortest path
// from any enabled vertex of the smallest present group g0 to any enabled
// vertex of a group g > g0. rowGroup has length m.NumRows(), colGroup has
// length m.NumColumns(); a negative entry disables that line.
//
// Enumeration is deterministic: sources are tried in (group, then index)
// order with rows preceding columns at equal index, and each vertex's
// neighbors are visited in ascending column/row index order, so repeated
// invocations on identical inputs return identical certificates.
// Complexity: O(numRows + numColumns + nnz).
func BFS[T matrix.Entry](m *matrix.Matrix[T], rowGroup, colGroup []int) (*Result, error) {
	g0, ok := smallestGroup(rowGroup, colGroup)
	if !ok {
		return nil, ErrNoSourceGroup
	}

	w := &walker{
		visited: make(map[elt.E]bool),
		pred:    make(map[elt.E]elt.E),
		sign:    make(map[elt.E]int),
	}

	for i, grp := range rowGroup {
		if grp == g0 {
			w.seed(elt.Row(i))
		}
	}
	for j, grp := range colGroup {
		if grp == g0 {
			w.seed(elt.Column(j))
		}
	}

	for len(w.queue) > 0 {
		cur := w.queue[0]
		w.queue = w.queue[1:]

		grp := groupOf(cur, rowGroup, colGroup)
		if grp != g0 {
			return &Result{
				Reached:     true,
				Source:      rootSourceOf(w, cur),
				Target:      cur,
				Predecessor: w.pred,
				PathSign:    w.sign[cur],
			}, nil
		}

		for _, nbr := range neighbors(m, cur, rowGroup, colGroup) {
			if w.visited[nbr.v] {
				continue
			}
			w.visited[nbr.v] = true
			w.pred[nbr.v] = cur
			w.sign[nbr.v] = w.sign[cur] + nbr.sign
			w.queue = append(w.queue, nbr.v)
		}
	}

	return &Result{Reached: false}, nil
}

func (w *walker) seed(v elt.E) {
	if !w.visited[v] {
		w.visited[v] = true
		w.pred[v] = elt.Invalid
		w.sign[v] = 0
		w.queue = append(w.queue, v)
	}
}

// rootSourceOf walks predecessor links back to the seed (whose predecessor
// is elt.Invalid) to report which source discovered v.
func rootSourceOf(w *walker, v elt.E) elt.E {
	cur := v
	for {
		p, ok := w.pred[cur]
		if !ok || p == elt.Invalid {
			return cur
		}
		cur = p
	}
}

func groupOf(v elt.E, rowGroup, colGroup []int) int {
	if v.IsRow() {
		return rowGroup[v.Index()]
	}
	return colGroup[v.Index()]
}

func smallestGroup(rowGroup, colGroup []int) (int, bool) {
	best := 0
	found := false
	consider := func(g int) {
		if g < 0 {
			return
		}
		if !found || g < best {
			best = g
			found = true
		}
	}
	for _, g := range rowGroup {
		consider(g)
	}
	for _, g := range colGroup {
		consider(g)
	}
	return best, found
}

type neighbor struct {
	v    elt.E
	sign int
}

// neighbors returns the enabled bipartite neighbors of v (the nonzero
// entries of its row or column), in ascending index order, each tagged
// with the sign of the connecting entry.
func neighbors[T matrix.Entry](m *matrix.Matrix[T], v elt.E, rowGroup, colGroup []int) []neighbor {
	out := make([]neighbor, 0, 4)
	if v.IsRow() {
		i := v.Index()
		s, e := m.RowRange(i)
		for k := s; k < e; k++ {
			j := int(m.ColIndex()[k])
			if colGroup[j] < 0 {
				continue
			}
			out = append(out, neighbor{v: elt.Column(j), sign: signOf(m.Values()[k])})
		}
		return out
	}
	j := v.Index()
	for i := 0; i < m.NumRows(); i++ {
		if rowGroup[i] < 0 {
			continue
		}
		if idx, ok := m.FindEntry(i, j); ok {
			out = append(out, neighbor{v: elt.Row(i), sign: signOf(m.Values()[idx])})
		}
	}
	return out
}

func signOf[T matrix.Entry](v T) int {
	f := float64(v)
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	default:
		return 0
	}
}
