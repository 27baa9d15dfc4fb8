package matrix

import "fmt"

// BinaryPivot performs a GF(2) pivot of m at (i,j), requiring m.At(i,j) != 0.
// The result M' equals M except that for r != i, c != j with both M(i,c)
// and M(r,j) nonzero, M'(r,c) = 1 - M(r,c) (flipped over GF(2)); row i and
// column j are preserved unchanged.
// Complexity: O(nnz + rowDegree(i) * colDegree(j)).
func BinaryPivot(m *Matrix[int8], i, j int) (*Matrix[int8], error) {
	if i < 0 || i >= m.numRows || j < 0 || j >= m.numColumns {
		return nil, fmt.Errorf("matrix.BinaryPivot(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if m.At(i, j) == 0 {
		return nil, fmt.Errorf("matrix.BinaryPivot(%d,%d): %w", i, j, ErrInvalidPivot)
	}

	// dense flip-set: rows with nonzero at column j, columns with nonzero at row i
	rowHasJ := make(map[int]bool)
	for r := 0; r < m.numRows; r++ {
		if r != i {
			if _, ok := m.FindEntry(r, j); ok {
				rowHasJ[r] = true
			}
		}
	}
	colHasI := make(map[int]bool)
	rs, re := m.RowRange(i)
	for k := rs; k < re; k++ {
		c := int(m.colIndex[k])
		if c != j {
			colHasI[c] = true
		}
	}

	dense := make(map[[2]int]int8)
	for r := 0; r < m.numRows; r++ {
		s, e := m.RowRange(r)
		for k := s; k < e; k++ {
			dense[[2]int{r, int(m.colIndex[k])}] = m.values[k]
		}
	}
	for r := range rowHasJ {
		for c := range colHasI {
			key := [2]int{r, c}
			dense[key] = 1 - dense[key]
		}
	}

	triplets := make([]Triplet[int8], 0, len(dense))
	for k, v := range dense {
		if v != 0 {
			triplets = append(triplets, Triplet[int8]{Row: k[0], Col: k[1], Value: v})
		}
	}
	return FromTriplets[int8](m.numRows, m.numColumns, triplets)
}

// TernaryPivot performs a pivot of ternary matrix m at (i,j), requiring
// m.At(i,j) in {-1,+1}. For r != i, c != j:
//
//	M'(r,c) = M(r,c) - M(r,j)*M(i,c)/M(i,j)
//
// folded back into {-1,0,1} by adding/subtracting 3. Entries of column j
// outside row i are negated and row i is unchanged, which makes the pivot
// its own inverse. Callers must guarantee
// (via prior validation, e.g. a series of binary-consistent operations)
// that every such fold lands in range, or ErrTernaryFoldFailed is returned.
// Complexity: O(nnz + rowDegree(i) * colDegree(j)).
func TernaryPivot(m *Matrix[int8], i, j int) (*Matrix[int8], error) {
	if i < 0 || i >= m.numRows || j < 0 || j >= m.numColumns {
		return nil, fmt.Errorf("matrix.TernaryPivot(%d,%d): %w", i, j, ErrOutOfRange)
	}
	pivotVal := m.At(i, j)
	if pivotVal != 1 && pivotVal != -1 {
		return nil, fmt.Errorf("matrix.TernaryPivot(%d,%d): %w", i, j, ErrInvalidPivot)
	}

	dense := make(map[[2]int]int8)
	for r := 0; r < m.numRows; r++ {
		s, e := m.RowRange(r)
		for k := s; k < e; k++ {
			dense[[2]int{r, int(m.colIndex[k])}] = m.values[k]
		}
	}

	rowI := make(map[int]int8) // column -> M(i,c)
	rs, re := m.RowRange(i)
	for k := rs; k < re; k++ {
		rowI[int(m.colIndex[k])] = m.values[k]
	}
	colJ := make(map[int]int8) // row -> M(r,j)
	for r := 0; r < m.numRows; r++ {
		if v, ok := m.FindEntry(r, j); ok {
			colJ[r] = m.values[v]
		}
	}

	for r, mrj := range colJ {
		if r == i {
			continue
		}
		for c, mic := range rowI {
			if c == j {
				continue
			}
			raw := int(dense[[2]int{r, c}]) - int(mrj)*int(mic)/int(pivotVal)
			for raw > 1 {
				raw -= 3
			}
			for raw < -1 {
				raw += 3
			}
			if raw < -1 || raw > 1 {
				return nil, fmt.Errorf("matrix.TernaryPivot(%d,%d) at (%d,%d): %w", i, j, r, c, ErrTernaryFoldFailed)
			}
			dense[[2]int{r, c}] = int8(raw)
		}
	}
	for r, mrj := range colJ {
		if r != i {
			dense[[2]int{r, j}] = -mrj
		}
	}

	triplets := make([]Triplet[int8], 0, len(dense))
	for k, v := range dense {
		if v != 0 {
			triplets = append(triplets, Triplet[int8]{Row: k[0], Col: k[1], Value: v})
		}
	}
	return FromTriplets[int8](m.numRows, m.numColumns, triplets)
}
