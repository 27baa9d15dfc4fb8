package separation

import (
	"fmt"

	"github.com/discopt/cmr-sub003/matrix"
)

// DecomposeTwoSum splits m along a 2-separation into two children whose
// 2-sum (via ComposeTwoSum) recovers m. Exactly one off-diagonal block is
// nonzero (binary rank 1, per Analyze). First is the top-left block and
// Second the bottom-right block. The child that shares the nonzero
// block's columns gets the block's representative row as a marker row;
// the other child gets the per-row +-1/0 multiplier as a marker column,
// so that the outer product of the two markers reconstructs the nonzero
// block (NonzeroOnTopRight records which block that was).
func DecomposeTwoSum(m *matrix.Matrix[int8], part Partition, res *Result) (*TwoSum, error) {
	if res.Kind != KindTwo {
		return nil, fmt.Errorf("separation.DecomposeTwoSum: %w", ErrNotASeparation)
	}
	if res.RankTopRight == 1 && res.RankBottomLeft == 0 {
		return decomposeTwoSum(m, part.RowsA, part.ColsB, part.RowsB, part.ColsA, true)
	}
	return decomposeTwoSum(m, part.RowsB, part.ColsA, part.RowsA, part.ColsB, false)
}

// decomposeTwoSum builds the two children given the nonzero block's line
// sets (nzRows, nzCols) and the zero block's (zRows, zCols). nzIsTopRight
// tells it whether the nonzero block sits at (RowsA,ColsB) or (RowsB,ColsA).
func decomposeTwoSum(m *matrix.Matrix[int8], nzRows, nzCols, zRows, zCols []int, nzIsTopRight bool) (*TwoSum, error) {
	b, violator, err := scanBlock(m, true, nzRows, nzCols)
	if err != nil {
		return nil, fmt.Errorf("separation.decomposeTwoSum: %w", err)
	}
	if violator != nil {
		return nil, fmt.Errorf("separation.decomposeTwoSum: %w", ErrRankExceedsAssumption)
	}

	rowMultiplier := make(map[int]int8, len(nzRows))
	for _, r := range nzRows {
		vec := restrict(m, true, r, nzCols)
		if len(vec) == 0 {
			continue
		}
		neg, ok := matchesSigned(vec, b.rep1)
		if !ok {
			return nil, fmt.Errorf("separation.decomposeTwoSum: %w", ErrRankExceedsAssumption)
		}
		if neg {
			rowMultiplier[r] = -1
		} else {
			rowMultiplier[r] = 1
		}
	}

	var aRows, aCols, dRows, dCols []int
	if nzIsTopRight {
		// A = RowsA x ColsA = nzRows x zCols; D = RowsB x ColsB = zRows x nzCols.
		aRows, aCols = nzRows, zCols
		dRows, dCols = zRows, nzCols
	} else {
		// A = RowsA x ColsA = zRows x nzCols; D = RowsB x ColsB = nzRows x zCols.
		aRows, aCols = zRows, nzCols
		dRows, dCols = nzRows, zCols
	}

	// b.rep1 is keyed by nzCols: that equals dCols (top-right case, so D
	// gets the marker row) or aCols (bottom-left case, so A gets the
	// marker row). rowMultiplier is keyed by nzRows, the complementary fit.
	var first, second Child
	var err2 error
	if nzIsTopRight {
		first, err2 = buildChildWithMarkerCol(m, aRows, aCols, rowMultiplier)
		if err2 != nil {
			return nil, err2
		}
		second, err2 = buildChildWithMarkerRow(m, dRows, dCols, b.rep1)
		if err2 != nil {
			return nil, err2
		}
	} else {
		first, err2 = buildChildWithMarkerRow(m, aRows, aCols, b.rep1)
		if err2 != nil {
			return nil, err2
		}
		second, err2 = buildChildWithMarkerCol(m, dRows, dCols, rowMultiplier)
		if err2 != nil {
			return nil, err2
		}
	}

	return &TwoSum{First: first, Second: second, NonzeroOnTopRight: nzIsTopRight}, nil
}

// buildChildWithMarkerRow builds the (rows x cols) block of m plus one
// extra marker row, valued by repVec (keyed by the entries of cols).
func buildChildWithMarkerRow(m *matrix.Matrix[int8], rows, cols []int, repVec map[int]int8) (Child, error) {
	colPos := indexPositions(cols)
	var triplets []matrix.Triplet[int8]
	for ri, r := range rows {
		for _, c := range cols {
			if v := m.At(r, c); v != 0 {
				triplets = append(triplets, matrix.Triplet[int8]{Row: ri, Col: colPos[c], Value: v})
			}
		}
	}
	markerRow := len(rows)
	for c, v := range repVec {
		if v != 0 {
			triplets = append(triplets, matrix.Triplet[int8]{Row: markerRow, Col: colPos[c], Value: v})
		}
	}
	mat, err := matrix.FromTriplets[int8](len(rows)+1, len(cols), triplets)
	if err != nil {
		return Child{}, fmt.Errorf("separation.buildChildWithMarkerRow: %w", err)
	}
	return Child{Matrix: mat, MarkerRows: []int{markerRow}}, nil
}

// buildChildWithMarkerCol builds the (rows x cols) block of m plus one
// extra marker column, valued by rowMul (keyed by the entries of rows).
func buildChildWithMarkerCol(m *matrix.Matrix[int8], rows, cols []int, rowMul map[int]int8) (Child, error) {
	colPos := indexPositions(cols)
	var triplets []matrix.Triplet[int8]
	for ri, r := range rows {
		for _, c := range cols {
			if v := m.At(r, c); v != 0 {
				triplets = append(triplets, matrix.Triplet[int8]{Row: ri, Col: colPos[c], Value: v})
			}
		}
	}
	markerCol := len(cols)
	for ri, r := range rows {
		if v := rowMul[r]; v != 0 {
			triplets = append(triplets, matrix.Triplet[int8]{Row: ri, Col: markerCol, Value: v})
		}
	}
	mat, err := matrix.FromTriplets[int8](len(rows), len(cols)+1, triplets)
	if err != nil {
		return Child{}, fmt.Errorf("separation.buildChildWithMarkerCol: %w", err)
	}
	return Child{Matrix: mat, MarkerColumns: []int{markerCol}}, nil
}

func indexPositions(xs []int) map[int]int {
	out := make(map[int]int, len(xs))
	for i, x := range xs {
		out[x] = i
	}
	return out
}

// ComposeTwoSum reconstructs the parent matrix from a TwoSum. First
// (minus its marker line) is the top-left block, Second (minus its
// marker line) is the bottom-right block, and the nonzero off-diagonal
// block (top-right if NonzeroOnTopRight, else bottom-left) is the outer
// product of the two markers.
func ComposeTwoSum(sum *TwoSum) (*matrix.Matrix[int8], error) {
	first, second := sum.First.Matrix, sum.Second.Matrix

	var numRowsA, numColsA, numRowsB, numColsB int
	var markerVec, markerMul map[int]int8 // markerVec keyed by ColsA or ColsB, markerMul keyed by RowsA or RowsB

	if sum.NonzeroOnTopRight {
		if len(sum.First.MarkerColumns) != 1 || len(sum.Second.MarkerRows) != 1 {
			return nil, fmt.Errorf("separation.ComposeTwoSum: %w", ErrNotASeparation)
		}
		numColsA = sum.First.MarkerColumns[0]
		numRowsA = first.NumRows()
		numColsB = second.NumColumns()
		numRowsB = sum.Second.MarkerRows[0]
		markerMul = columnAsMap(first, numRowsA, numColsA) // First's marker column, keyed by RowsA
		markerVec = rowAsMap(second, numRowsB, numColsB)   // Second's marker row, keyed by ColsB
	} else {
		if len(sum.First.MarkerRows) != 1 || len(sum.Second.MarkerColumns) != 1 {
			return nil, fmt.Errorf("separation.ComposeTwoSum: %w", ErrNotASeparation)
		}
		numRowsA = sum.First.MarkerRows[0]
		numColsA = first.NumColumns()
		numRowsB = second.NumRows()
		numColsB = sum.Second.MarkerColumns[0]
		markerVec = rowAsMap(first, numRowsA, numColsA)    // First's marker row, keyed by ColsA
		markerMul = columnAsMap(second, numRowsB, numColsB) // Second's marker column, keyed by RowsB
	}

	totalRows := numRowsA + numRowsB
	totalCols := numColsA + numColsB

	var triplets []matrix.Triplet[int8]
	for i := 0; i < numRowsA; i++ {
		for j := 0; j < numColsA; j++ {
			if v := first.At(i, j); v != 0 {
				triplets = append(triplets, matrix.Triplet[int8]{Row: i, Col: j, Value: v})
			}
		}
	}
	for i := 0; i < numRowsB; i++ {
		for j := 0; j < numColsB; j++ {
			if v := second.At(i, j); v != 0 {
				triplets = append(triplets, matrix.Triplet[int8]{Row: numRowsA + i, Col: numColsA + j, Value: v})
			}
		}
	}

	if sum.NonzeroOnTopRight {
		for i := 0; i < numRowsA; i++ {
			mul := markerMul[i]
			if mul == 0 {
				continue
			}
			for j, v := range markerVec {
				triplets = append(triplets, matrix.Triplet[int8]{Row: i, Col: numColsA + j, Value: mul * v})
			}
		}
	} else {
		for i := 0; i < numRowsB; i++ {
			mul := markerMul[i]
			if mul == 0 {
				continue
			}
			for j, v := range markerVec {
				triplets = append(triplets, matrix.Triplet[int8]{Row: numRowsA + i, Col: j, Value: mul * v})
			}
		}
	}

	return matrix.FromTriplets[int8](totalRows, totalCols, triplets)
}

// rowAsMap returns row `markerRow` of m (restricted to columns 0..numCols-1)
// as a sparse map.
func rowAsMap(m *matrix.Matrix[int8], markerRow, numCols int) map[int]int8 {
	out := make(map[int]int8)
	for j := 0; j < numCols; j++ {
		if v := m.At(markerRow, j); v != 0 {
			out[j] = v
		}
	}
	return out
}

// columnAsMap returns column `markerCol` of m (restricted to rows
// 0..numRows-1) as a sparse map.
func columnAsMap(m *matrix.Matrix[int8], numRows, markerCol int) map[int]int8 {
	out := make(map[int]int8)
	for i := 0; i < numRows; i++ {
		if v := m.At(i, markerCol); v != 0 {
			out[i] = v
		}
	}
	return out
}
