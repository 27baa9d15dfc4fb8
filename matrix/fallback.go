package matrix

import "fmt"

// ApproximateDeterminant computes the determinant of a square float64
// matrix via Doolittle LU decomposition without pivoting. This is the one
// double-based fallback determinant used outside the exact integer core; it
// is used only by test/diagnostic tooling (the exact subdeterminant
// enumeration used to validate TestTotalUnimodularity lives elsewhere and
// works over exact integer arithmetic).
// Complexity: O(n^3).
func ApproximateDeterminant(m *Matrix[float64]) (float64, error) {
	n := m.NumRows()
	if n != m.NumColumns() {
		return 0, fmt.Errorf("matrix.ApproximateDeterminant: %dx%d: %w", n, m.NumColumns(), ErrNotSquare)
	}
	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
		s, e := m.RowRange(i)
		for k := s; k < e; k++ {
			a[i][int(m.ColIndex()[k])] = m.Values()[k]
		}
	}

	det := 1.0
	for i := 0; i < n; i++ {
		if a[i][i] == 0 {
			return 0, fmt.Errorf("matrix.ApproximateDeterminant: zero pivot at %d: %w", i, ErrSingular)
		}
		det *= a[i][i]
		for r := i + 1; r < n; r++ {
			factor := a[r][i] / a[i][i]
			for c := i; c < n; c++ {
				a[r][c] -= factor * a[i][c]
			}
		}
	}
	return det, nil
}
