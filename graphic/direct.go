package graphic

import (
	"fmt"

	"github.com/discopt/cmr-sub003/camion"
	"github.com/discopt/cmr-sub003/matrix"
)

// columnSupportRows returns the sorted row indices where column j is
// nonzero in a binary (0/1) matrix.
func columnSupportRows(support *matrix.Matrix[int8], j int) []int {
	var rows []int
	for i := 0; i < support.NumRows(); i++ {
		if _, ok := support.FindEntry(i, j); ok {
			rows = append(rows, i)
		}
	}
	return rows
}

func rowsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sortedCopy(xs []int) []int {
	out := make([]int, len(xs))
	copy(out, xs)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// DirectTest checks whether the binary matrix support is the fundamental-
// cycle matrix of some spanning tree on support.NumRows()+1 vertices, for
// some choice of endpoints per column. Every row is a candidate tree edge;
// the tree topology (via Prüfer decode) and the row-to-edge bijection are
// both searched exhaustively, so the test is only attempted up to
// directTestRowBound rows.
func DirectTest(support *matrix.Matrix[int8]) (*Result, error) {
	numRows := support.NumRows()
	numCols := support.NumColumns()
	if numRows > directTestRowBound {
		return nil, fmt.Errorf("graphic.DirectTest: %d rows exceeds bound %d: %w", numRows, directTestRowBound, ErrTooLarge)
	}

	colRows := make([][]int, numCols)
	for j := 0; j < numCols; j++ {
		colRows[j] = columnSupportRows(support, j)
	}

	numVertices := numRows + 1
	if numRows == 0 {
		return &Result{IsGraphic: true, Tree: &Tree{NumVertices: numVertices}, Endpoints: map[int]Endpoints{}}, nil
	}

	sequences := allPruferSequences(numVertices)
	perms := permutations(numRows)

	for _, seq := range sequences {
		raw := pruferDecode(seq, numVertices)
		for _, perm := range perms {
			edges := make([]TreeEdge, numRows)
			for row, edgeIdx := range perm {
				edges[row] = TreeEdge{Row: row, U: raw[edgeIdx].U, V: raw[edgeIdx].V}
			}
			endpoints, ok := matchAllColumns(edges, numVertices, colRows, numCols)
			if ok {
				return &Result{
					IsGraphic: true,
					Tree:      &Tree{NumVertices: numVertices, Edges: edges},
					Endpoints: endpoints,
				}, nil
			}
		}
	}
	return &Result{IsGraphic: false}, nil
}

// matchAllColumns tries to find, for every column, a vertex pair whose
// tree path support exactly equals the column's nonzero rows.
func matchAllColumns(edges []TreeEdge, numVertices int, colRows [][]int, numCols int) (map[int]Endpoints, bool) {
	endpoints := make(map[int]Endpoints, numCols)
	for j := 0; j < numCols; j++ {
		want := colRows[j]
		found := false
		for u := 0; u < numVertices && !found; u++ {
			for v := u + 1; v < numVertices && !found; v++ {
				rows := pathRows(edges, numVertices, u, v)
				if rowsEqual(sortedCopy(rows), want) {
					endpoints[j] = Endpoints{U: u, V: v}
					found = true
				}
			}
		}
		if !found {
			return nil, false
		}
	}
	return endpoints, true
}

// DirectTestTernary runs DirectTest on m's support and, if graphic,
// confirms the binary pattern lifts to a genuine network matrix by
// Camion-signing the tree paths matched for each column.
func DirectTestTernary(m *matrix.Matrix[int8]) (*Result, error) {
	support := m.Support()
	result, err := DirectTest(support)
	if err != nil {
		return nil, err
	}
	if !result.IsGraphic {
		return result, nil
	}

	paths := make([]camion.Path, 0, len(result.Endpoints))
	for col, ep := range result.Endpoints {
		rows := pathRows(result.Tree.Edges, result.Tree.NumVertices, ep.U, ep.V)
		paths = append(paths, camion.Path{Column: col, Rows: rows})
	}

	signed, violator, err := camion.Sign(support, paths)
	if err != nil {
		return nil, fmt.Errorf("graphic.DirectTestTernary: %w", err)
	}
	if violator != nil {
		return &Result{IsGraphic: false, Violator: fromCamionViolator(violator)}, nil
	}

	result.Signed = signed
	return result, nil
}
