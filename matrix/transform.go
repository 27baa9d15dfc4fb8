package matrix

import "fmt"

// FindEntry performs a binary search for (row, col) within the row's CSR
// slice. Returns the index into ColIndex()/Values() and true if present,
// or (0, false) meaning "structural zero".
// Complexity: O(log d) where d is the row's degree.
func (m *Matrix[T]) FindEntry(row, col int) (int, bool) {
	s, e := m.RowRange(row)
	lo, hi := s, e
	for lo < hi {
		mid := (lo + hi) / 2
		c := int(m.colIndex[mid])
		switch {
		case c == col:
			return mid, true
		case c < col:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return 0, false
}

// At returns the entry at (row, col), or the zero value of T if structurally zero.
func (m *Matrix[T]) At(row, col int) T {
	if idx, ok := m.FindEntry(row, col); ok {
		return m.values[idx]
	}
	var zero T
	return zero
}

// Transpose returns the transpose of m, computed in linear time via
// counting sort on columns (so the result's rows come out pre-sorted by
// column of origin, i.e. ascending, without an extra Sort pass).
// Complexity: O(numRows + numColumns + nnz).
func (m *Matrix[T]) Transpose() *Matrix[T] {
	nnz := len(m.values)
	out := &Matrix[T]{
		numRows:    m.numColumns,
		numColumns: m.numRows,
		rowPointer: make([]int32, m.numColumns+1),
		colIndex:   make([]int32, nnz),
		values:     make([]T, nnz),
	}
	// Counting pass: number of nonzeros per original column.
	for _, c := range m.colIndex {
		out.rowPointer[c+1]++
	}
	for c := 0; c < m.numColumns; c++ {
		out.rowPointer[c+1] += out.rowPointer[c]
	}
	cursor := make([]int32, m.numColumns)
	copy(cursor, out.rowPointer[:m.numColumns])
	for i := 0; i < m.numRows; i++ {
		s, e := m.RowRange(i)
		for k := s; k < e; k++ {
			c := m.colIndex[k]
			pos := cursor[c]
			out.colIndex[pos] = int32(i)
			out.values[pos] = m.values[k]
			cursor[c]++
		}
	}
	return out
}

// Permute returns the matrix obtained by reordering rows according to
// rowMap and columns according to colMap: result row i, column j equals
// m.At(rowMap[i], colMap[j]). rowMap and colMap must each be permutations
// of 0..numRows-1 / 0..numColumns-1.
// Complexity: O(nnz log d).
func (m *Matrix[T]) Permute(rowMap, colMap []int) (*Matrix[T], error) {
	if len(rowMap) != m.numRows || len(colMap) != m.numColumns {
		return nil, fmt.Errorf("matrix.Permute: map length mismatch: %w", ErrDimensionMismatch)
	}
	colInverse := make([]int, m.numColumns)
	for newCol, oldCol := range colMap {
		colInverse[oldCol] = newCol
	}
	triplets := make([]Triplet[T], 0, len(m.values))
	for newRow, oldRow := range rowMap {
		s, e := m.RowRange(oldRow)
		for k := s; k < e; k++ {
			triplets = append(triplets, Triplet[T]{
				Row: newRow, Col: colInverse[int(m.colIndex[k])], Value: m.values[k],
			})
		}
	}
	return FromTriplets[T](m.numRows, m.numColumns, triplets)
}

// Slice extracts the submatrix named by s: rows and columns are taken in
// the order given by s.Rows / s.Columns (which need not be ascending).
// Complexity: O(nnz of the slice * log d).
func (m *Matrix[T]) Slice(s *Submatrix) (*Matrix[T], error) {
	for _, r := range s.Rows {
		if r < 0 || r >= m.numRows {
			return nil, fmt.Errorf("matrix.Slice: row %d out of range: %w", r, ErrOutOfRange)
		}
	}
	for _, c := range s.Columns {
		if c < 0 || c >= m.numColumns {
			return nil, fmt.Errorf("matrix.Slice: column %d out of range: %w", c, ErrOutOfRange)
		}
	}
	colPos := make(map[int]int, len(s.Columns))
	for newCol, oldCol := range s.Columns {
		colPos[oldCol] = newCol
	}
	triplets := make([]Triplet[T], 0)
	for newRow, oldRow := range s.Rows {
		rs, re := m.RowRange(oldRow)
		for k := rs; k < re; k++ {
			if newCol, ok := colPos[int(m.colIndex[k])]; ok {
				triplets = append(triplets, Triplet[T]{Row: newRow, Col: newCol, Value: m.values[k]})
			}
		}
	}
	return FromTriplets[T](len(s.Rows), len(s.Columns), triplets)
}
