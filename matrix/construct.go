package matrix

import (
	"fmt"
	"sort"
)

// New allocates an r x c matrix with nnz uninitialized nonzero slots.
// Callers are expected to fill colIndex/values row by row (ascending column
// per row) and then call Sort if they could not guarantee that order.
// Complexity: O(nnz).
func New[T Entry](rows, cols, nnz int) (*Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("matrix.New(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	if nnz < 0 {
		return nil, fmt.Errorf("matrix.New: negative nnz %d: %w", nnz, ErrInvalidDimensions)
	}
	return &Matrix[T]{
		numRows:    rows,
		numColumns: cols,
		rowPointer: make([]int32, rows+1),
		colIndex:   make([]int32, nnz),
		values:     make([]T, nnz),
	}, nil
}

// Triplet is a row/col/value triple used to build a matrix from
// unordered input, e.g. the sparse-format loader.
type Triplet[T Entry] struct {
	Row, Col int
	Value    T
}

// FromTriplets builds a Matrix from an unordered list of (row, col, value)
// triplets, zero-valued entries rejected, rows sorted ascending by column.
// Complexity: O(nnz log nnz).
func FromTriplets[T Entry](rows, cols int, triplets []Triplet[T]) (*Matrix[T], error) {
	var zero T
	for _, t := range triplets {
		if t.Value == zero {
			return nil, fmt.Errorf("matrix.FromTriplets: zero entry at (%d,%d): %w", t.Row, t.Col, ErrInconsistent)
		}
		if t.Row < 0 || t.Row >= rows || t.Col < 0 || t.Col >= cols {
			return nil, fmt.Errorf("matrix.FromTriplets: (%d,%d) out of %dx%d: %w", t.Row, t.Col, rows, cols, ErrOutOfRange)
		}
	}
	sorted := make([]Triplet[T], len(triplets))
	copy(sorted, triplets)
	sort.Slice(sorted, func(a, b int) bool {
		if sorted[a].Row != sorted[b].Row {
			return sorted[a].Row < sorted[b].Row
		}
		return sorted[a].Col < sorted[b].Col
	})
	m, err := New[T](rows, cols, len(sorted))
	if err != nil {
		return nil, err
	}
	row := 0
	for idx, t := range sorted {
		for row < t.Row {
			row++
			m.rowPointer[row] = int32(idx)
		}
		if idx > 0 && sorted[idx-1].Row == t.Row && sorted[idx-1].Col == t.Col {
			return nil, fmt.Errorf("matrix.FromTriplets: duplicate entry at (%d,%d): %w", t.Row, t.Col, ErrInconsistent)
		}
		m.colIndex[idx] = int32(t.Col)
		m.values[idx] = t.Value
	}
	for row < rows {
		row++
		m.rowPointer[row] = int32(len(sorted))
	}
	return m, nil
}

// Sort sorts the nonzeros of every row into ascending column order.
// Idempotent. Complexity: O(nnz log d) where d is the max row degree.
func (m *Matrix[T]) Sort() {
	for i := 0; i < m.numRows; i++ {
		s, e := m.RowRange(i)
		if e-s <= 1 {
			continue
		}
		cols := m.colIndex[s:e]
		vals := m.values[s:e]
		idx := make([]int, e-s)
		for k := range idx {
			idx[k] = k
		}
		sort.Slice(idx, func(a, b int) bool { return cols[idx[a]] < cols[idx[b]] })
		newCols := make([]int32, e-s)
		newVals := make([]T, e-s)
		for k, j := range idx {
			newCols[k] = cols[j]
			newVals[k] = vals[j]
		}
		copy(cols, newCols)
		copy(vals, newVals)
	}
}

// Copy returns a deep, independent copy of m.
// Complexity: O(nnz).
func (m *Matrix[T]) Copy() *Matrix[T] {
	out := &Matrix[T]{
		numRows:    m.numRows,
		numColumns: m.numColumns,
		rowPointer: make([]int32, len(m.rowPointer)),
		colIndex:   make([]int32, len(m.colIndex)),
		values:     make([]T, len(m.values)),
	}
	copy(out.rowPointer, m.rowPointer)
	copy(out.colIndex, m.colIndex)
	copy(out.values, m.values)
	return out
}

// ConsistencyCheck verifies the CSR invariants: rowPointer[0] == 0,
// rowPointer[numRows] == numNonzeros, ascending-unique columns per row, and
// no stored zero. Returns a descriptive error on the first violation found.
// Complexity: O(nnz).
func (m *Matrix[T]) ConsistencyCheck() error {
	var zero T
	if m.rowPointer[0] != 0 {
		return fmt.Errorf("matrix.ConsistencyCheck: rowPointer[0] = %d: %w", m.rowPointer[0], ErrInconsistent)
	}
	if int(m.rowPointer[m.numRows]) != len(m.values) {
		return fmt.Errorf("matrix.ConsistencyCheck: rowPointer[numRows] = %d, want %d: %w",
			m.rowPointer[m.numRows], len(m.values), ErrInconsistent)
	}
	for i := 0; i < m.numRows; i++ {
		s, e := m.RowRange(i)
		for k := s; k < e; k++ {
			if m.colIndex[k] < 0 || int(m.colIndex[k]) >= m.numColumns {
				return fmt.Errorf("matrix.ConsistencyCheck: row %d entry %d column %d out of range: %w", i, k, m.colIndex[k], ErrInconsistent)
			}
			if m.values[k] == zero {
				return fmt.Errorf("matrix.ConsistencyCheck: row %d column %d stores an explicit zero: %w", i, m.colIndex[k], ErrInconsistent)
			}
			if k > s && m.colIndex[k] <= m.colIndex[k-1] {
				return fmt.Errorf("matrix.ConsistencyCheck: row %d columns not strictly ascending at position %d: %w", i, k, ErrInconsistent)
			}
		}
	}
	return nil
}
