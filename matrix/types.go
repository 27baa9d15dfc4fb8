package matrix

// Entry is the set of value types a Matrix[T] may hold: int8 for binary
// ({0,1}) and ternary ({-1,0,1}) matrices, int32 for general integer
// matrices, and float64 for the one double-based fallback allowed by the
// spec. A single generic implementation replaces what the original engine
// duplicated per value type, specializing only where arithmetic genuinely
// differs (ternary folding, double tolerance).
type Entry interface {
	~int8 | ~int32 | ~float64
}

// Matrix is a row-major compressed-sparse-row matrix over entry type T.
//
// Invariants: rowPointer[0] == 0, rowPointer[numRows] == numNonzeros,
// within each row colIndex is strictly ascending, and no stored value is
// the zero value of T.
type Matrix[T Entry] struct {
	numRows    int
	numColumns int

	rowPointer []int32 // length numRows+1
	colIndex   []int32 // length numNonzeros, ascending per row
	values     []T     // length numNonzeros
}

// Submatrix is an order-preserving pair of index sequences into a parent
// Matrix, used both as the argument to Slice and as a violator certificate.
type Submatrix struct {
	Rows    []int
	Columns []int
}

// NumRows returns the number of rows.
func (m *Matrix[T]) NumRows() int { return m.numRows }

// NumColumns returns the number of columns.
func (m *Matrix[T]) NumColumns() int { return m.numColumns }

// NumNonzeros returns the number of stored nonzero entries.
func (m *Matrix[T]) NumNonzeros() int { return len(m.values) }

// RowPointer returns the CSR row-pointer array (do not mutate).
func (m *Matrix[T]) RowPointer() []int32 { return m.rowPointer }

// ColIndex returns the CSR column-index array (do not mutate).
func (m *Matrix[T]) ColIndex() []int32 { return m.colIndex }

// Values returns the CSR value array (do not mutate).
func (m *Matrix[T]) Values() []T { return m.values }

// RowRange returns the half-open slice bounds [start,end) of row i into
// ColIndex/Values.
func (m *Matrix[T]) RowRange(i int) (start, end int) {
	return int(m.rowPointer[i]), int(m.rowPointer[i+1])
}

// RowNonzeroCount returns the number of nonzeros in row i.
func (m *Matrix[T]) RowNonzeroCount(i int) int {
	s, e := m.RowRange(i)
	return e - s
}
