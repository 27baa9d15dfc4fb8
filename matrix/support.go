package matrix

import "math"

// sign returns -1, 0, or +1 for a generic numeric value, treating
// magnitudes <= tol as zero (only meaningful for float64; tol should be 0
// for exact integer types).
func sign[T Entry](v T, tol float64) int8 {
	f := float64(v)
	switch {
	case f > tol:
		return 1
	case f < -tol:
		return -1
	default:
		return 0
	}
}

// Support returns the binary matrix with the same nonzero pattern as m,
// every entry replaced by 1.
// Complexity: O(nnz).
func (m *Matrix[T]) Support() *Matrix[int8] {
	out := &Matrix[int8]{
		numRows:    m.numRows,
		numColumns: m.numColumns,
		rowPointer: append([]int32(nil), m.rowPointer...),
		colIndex:   append([]int32(nil), m.colIndex...),
		values:     make([]int8, len(m.values)),
	}
	for i := range out.values {
		out.values[i] = 1
	}
	return out
}

// SignedSupport returns the ternary matrix with the same nonzero pattern as
// m, every entry replaced by its sign. tol is the tolerance used only when
// T is float64 (pass 0 for exact integer types).
// Complexity: O(nnz).
func (m *Matrix[T]) SignedSupport(tol float64) *Matrix[int8] {
	out := &Matrix[int8]{
		numRows:    m.numRows,
		numColumns: m.numColumns,
		rowPointer: append([]int32(nil), m.rowPointer...),
		colIndex:   append([]int32(nil), m.colIndex...),
		values:     make([]int8, len(m.values)),
	}
	for i, v := range m.values {
		out.values[i] = sign(v, tol)
	}
	return out
}

// IsBinary reports whether every entry of m lies in {0,1}, within
// tolerance tol for float64 matrices (pass 0 for exact integer types).
// Complexity: O(nnz).
func (m *Matrix[T]) IsBinary(tol float64) bool {
	for _, v := range m.values {
		f := float64(v)
		if math.Abs(f) > tol && math.Abs(f-1) > tol {
			return false
		}
	}
	return true
}

// IsTernary reports whether every entry of m lies in {-1,0,1}, within
// tolerance tol for float64 matrices (pass 0 for exact integer types).
// Complexity: O(nnz).
func (m *Matrix[T]) IsTernary(tol float64) bool {
	for _, v := range m.values {
		f := float64(v)
		if math.Abs(f) > tol && math.Abs(f-1) > tol && math.Abs(f+1) > tol {
			return false
		}
	}
	return true
}
