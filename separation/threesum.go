package separation

import (
	"fmt"

	"github.com/discopt/cmr-sub003/matrix"
)

// DecomposeThreeSumSeymour handles the threeConcentrated case: rank 2 is
// concentrated in a single off-diagonal block. Both children carry the
// two representative lines of that block, as marker columns (First) and
// marker rows (Second); no further shared marker line is added. Epsilon
// is fixed by the parity, modulo 4, of the signed sum along a BFS path
// (epsilonFromPathSum) connecting the two representative lines within
// the block.
func DecomposeThreeSumSeymour(m *matrix.Matrix[int8], part Partition, res *Result) (*ThreeSumSeymour, error) {
	if res.Kind != KindThreeConcentrated {
		return nil, fmt.Errorf("separation.DecomposeThreeSumSeymour: %w", ErrNotASeparation)
	}

	repRows, repCols := res.RepBottomLeftRows, res.RepBottomLeftCols
	if res.RankTopRight == 2 {
		repRows, repCols = res.RepTopRightRows, res.RepTopRightCols
	}
	aRows, aCols := part.RowsA, part.ColsA
	dRows, dCols := part.RowsB, part.ColsB
	if len(repRows) < 2 || len(repCols) < 1 {
		return nil, fmt.Errorf("separation.DecomposeThreeSumSeymour: insufficient rank-2 representatives")
	}

	eps := epsilonFromPathSum(m, true, repRows[0], repRows[1])

	firstCols := append(append([]int{}, aCols...), repCols...)
	secondRows := append(append([]int{}, dRows...), repRows...)

	first, err := sliceChild(m, aRows, firstCols, len(aRows), len(aCols))
	if err != nil {
		return nil, err
	}
	second, err := sliceChild(m, secondRows, dCols, len(dRows), len(dCols))
	if err != nil {
		return nil, err
	}

	return &ThreeSumSeymour{First: first, Second: second, Epsilon: eps}, nil
}

// DecomposeThreeSumTruemper handles the threeDistributed case: rank 1 in
// each off-diagonal block. gamma and beta are each fixed by a BFS
// path-sum parity, one per block's pair of representative lines.
func DecomposeThreeSumTruemper(m *matrix.Matrix[int8], part Partition, res *Result) (*ThreeSumTruemper, error) {
	if res.Kind != KindThreeDistributed {
		return nil, fmt.Errorf("separation.DecomposeThreeSumTruemper: %w", ErrNotASeparation)
	}
	if len(res.RepTopRightRows) < 1 || len(res.RepTopRightCols) < 1 || len(res.RepBottomLeftRows) < 1 || len(res.RepBottomLeftCols) < 1 {
		return nil, fmt.Errorf("separation.DecomposeThreeSumTruemper: missing representative lines")
	}

	gamma := epsilonFromPathSum(m, true, res.RepTopRightRows[0], res.RepBottomLeftRows[0])
	beta := epsilonFromPathSum(m, false, res.RepTopRightCols[0], res.RepBottomLeftCols[0])

	firstCols := append(append([]int{}, part.ColsA...), res.RepTopRightCols[0])
	secondRows := append(append([]int{}, part.RowsB...), res.RepBottomLeftRows[0])

	first, err := sliceChild(m, part.RowsA, firstCols, len(part.RowsA), len(part.ColsA))
	if err != nil {
		return nil, err
	}
	second, err := sliceChild(m, secondRows, part.ColsB, len(part.RowsB), len(part.ColsB))
	if err != nil {
		return nil, err
	}

	return &ThreeSumTruemper{First: first, Second: second, Gamma: gamma, Beta: beta}, nil
}

// pathNode is a single BFS vertex: a matrix row or column.
type pathNode struct {
	isRow bool
	idx   int
}

// epsilonFromPathSum runs a dedicated single-source, single-target BFS
// over the matrix's bipartite row/column incidence graph from line a to
// line b (both rows if isRow, both columns otherwise), accumulating the
// signed sum of entries crossed, and folds that sum to +-1 via parity
// mod 4: the BFS-path sum's parity modulo 4 fixes epsilon. This does not
// reuse bipartite.BFS:
// that primitive is shaped for group-to-group reachability (any vertex
// outside the source group ends the search), which cannot express a
// single point-to-point path through arbitrary intermediate rows and
// columns without also treating them as alternate sources. Returns +1 if
// no path exists (only possible when the block itself is degenerate).
func epsilonFromPathSum(m *matrix.Matrix[int8], isRow bool, a, b int) int8 {
	start := pathNode{isRow, a}
	target := pathNode{isRow, b}
	if start == target {
		return 1
	}

	visited := map[pathNode]bool{start: true}
	sign := map[pathNode]int{start: 0}
	queue := []pathNode{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range pathNeighbors(m, cur) {
			if visited[nb.node] {
				continue
			}
			visited[nb.node] = true
			sign[nb.node] = sign[cur] + nb.sign
			if nb.node == target {
				mod := ((sign[nb.node] % 4) + 4) % 4
				if mod == 2 {
					return -1
				}
				return 1
			}
			queue = append(queue, nb.node)
		}
	}
	return 1
}

type pathNeighbor struct {
	node pathNode
	sign int
}

func pathNeighbors(m *matrix.Matrix[int8], n pathNode) []pathNeighbor {
	var out []pathNeighbor
	if n.isRow {
		s, e := m.RowRange(n.idx)
		for k := s; k < e; k++ {
			j := int(m.ColIndex()[k])
			out = append(out, pathNeighbor{node: pathNode{false, j}, sign: int(m.Values()[k])})
		}
		return out
	}
	for i := 0; i < m.NumRows(); i++ {
		if idx, ok := m.FindEntry(i, n.idx); ok {
			out = append(out, pathNeighbor{node: pathNode{true, i}, sign: int(m.Values()[idx])})
		}
	}
	return out
}

// sliceChild extracts the submatrix at (rows, cols) from m, tagging every
// row index at or beyond plainRowCount and every column index at or
// beyond plainColCount as a marker line, matching the Decompose*
// convention of appending marker lines at the end of the row/column
// slice passed in.
func sliceChild(m *matrix.Matrix[int8], rows, cols []int, plainRowCount, plainColCount int) (Child, error) {
	colPos := indexPositions(cols)
	var triplets []matrix.Triplet[int8]
	for ri, r := range rows {
		for _, c := range cols {
			if v := m.At(r, c); v != 0 {
				triplets = append(triplets, matrix.Triplet[int8]{Row: ri, Col: colPos[c], Value: v})
			}
		}
	}
	mat, err := matrix.FromTriplets[int8](len(rows), len(cols), triplets)
	if err != nil {
		return Child{}, fmt.Errorf("separation.sliceChild: %w", err)
	}
	child := Child{Matrix: mat}
	for i := plainRowCount; i < len(rows); i++ {
		child.MarkerRows = append(child.MarkerRows, i)
	}
	for j := plainColCount; j < len(cols); j++ {
		child.MarkerColumns = append(child.MarkerColumns, j)
	}
	return child, nil
}
