package decomp

import (
	"github.com/discopt/cmr-sub003/env"
	"github.com/discopt/cmr-sub003/matrix"
)

// unionFind is a small path-halving disjoint-set structure used only to
// label connected components of a matrix's bipartite row/column graph.
type unionFind struct{ parent []int }

func newUnionFind(n int) *unionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return &unionFind{p}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		u.parent[ra] = rb
	}
}

// runOneSeparation implements dispatch rule 1: connected components over
// the bipartite graph of node.Matrix, ignoring signs. A row with no
// nonzeros (or a column with no nonzeros) has no edges and is therefore
// its own singleton component under a literal reading of the rule; such a
// line is merged into the lowest-indexed component that has both a row
// and a column, since a sum decomposition needs both sides nonempty
// (this matrix convention has no notion of a 0-column block). If
// every line is isolated (m is the zero matrix) no split is possible and
// the node is simply marked connectivity-tested.
func runOneSeparation(node *Node, q *Queue, e *env.Environment) error {
	node.connectivityTested = true
	m := node.Matrix
	nr, nc := m.NumRows(), m.NumColumns()
	uf := newUnionFind(nr + nc)
	for i := 0; i < nr; i++ {
		if err := e.Tick(); err != nil {
			return err
		}
		s, end := m.RowRange(i)
		for k := s; k < end; k++ {
			uf.union(i, nr+int(m.ColIndex()[k]))
		}
	}

	rowsByRoot := map[int][]int{}
	colsByRoot := map[int][]int{}
	for i := 0; i < nr; i++ {
		r := uf.find(i)
		rowsByRoot[r] = append(rowsByRoot[r], i)
	}
	for j := 0; j < nc; j++ {
		r := uf.find(nr + j)
		colsByRoot[r] = append(colsByRoot[r], j)
	}

	properRoots := make([]int, 0)
	for root, rows := range rowsByRoot {
		if len(rows) > 0 && len(colsByRoot[root]) > 0 {
			properRoots = append(properRoots, root)
		}
	}
	sortInts(properRoots)

	if len(properRoots) > 0 {
		fallback := properRoots[0]
		isProper := make(map[int]bool, len(properRoots))
		for _, root := range properRoots {
			isProper[root] = true
		}
		for root, rows := range rowsByRoot {
			if !isProper[root] {
				rowsByRoot[fallback] = append(rowsByRoot[fallback], rows...)
			}
		}
		for root, cols := range colsByRoot {
			if !isProper[root] {
				colsByRoot[fallback] = append(colsByRoot[fallback], cols...)
			}
		}
	}
	if len(properRoots) < 2 {
		q.Push(&Task{Node: node})
		return nil
	}

	for _, root := range properRoots {
		rows := append([]int{}, rowsByRoot[root]...)
		cols := append([]int{}, colsByRoot[root]...)
		sortInts(rows)
		sortInts(cols)
		child, err := m.Slice(&matrix.Submatrix{Rows: rows, Columns: cols})
		if err != nil {
			return err
		}
		childRowElements := make([]int, len(rows))
		for i, r := range rows {
			childRowElements[i] = node.RowElements[r]
		}
		childColElements := make([]int, len(cols))
		for i, c := range cols {
			childColElements[i] = node.ColElements[c]
		}
		childNode := &Node{Matrix: child, RowElements: childRowElements, ColElements: childColElements}
		node.Children = append(node.Children, childNode)
		e.AddNodesCreated(1)
		q.Push(&Task{Node: childNode})
	}
	node.Kind = KindOneSum
	return nil
}

func sortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}
