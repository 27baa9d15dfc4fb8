package cmr

import (
	"fmt"

	"github.com/discopt/cmr-sub003/matrix"
)

// overflowBound bounds how large a running elimination value may grow
// before the whole call fails with a specific error, rather than silently
// wrapping.
const overflowBound = int64(1) << 60

// extractRankAndDeterminant performs fraction-free (Bareiss) integer
// Gaussian elimination on a dense copy of m, selecting pivots in
// ascending row/column order: row-reduction to upper-triangular form,
// tracking row operations. It returns the matrix's rank and the absolute
// value of the determinant of the square basis submatrix the chosen pivots
// span, which in Bareiss elimination is the last pivot (1 for rank 0).
// Grounded on
// matrix.ApproximateDeterminant's dense-copy LU style, generalized from
// float64 back-substitution to exact integer fraction-free elimination
// (so a claimed k can be compared exactly, with no tolerance) and from a
// square-only precondition to rank extraction over rectangular input.
func extractRankAndDeterminant(m *matrix.Matrix[int8]) (rank int, determinant int64, err error) {
	nr, nc := m.NumRows(), m.NumColumns()
	a := make([][]int64, nr)
	for i := range a {
		a[i] = make([]int64, nc)
		s, e := m.RowRange(i)
		for k := s; k < e; k++ {
			a[i][int(m.ColIndex()[k])] = int64(m.Values()[k])
		}
	}

	prevPivot := int64(1)
	pivotRow := 0
	for col := 0; col < nc && pivotRow < nr; col++ {
		sel := -1
		for r := pivotRow; r < nr; r++ {
			if a[r][col] != 0 {
				sel = r
				break
			}
		}
		if sel == -1 {
			continue
		}
		a[pivotRow], a[sel] = a[sel], a[pivotRow]

		for r := pivotRow + 1; r < nr; r++ {
			for c := col; c < nc; c++ {
				if err := checkOverflow(a[pivotRow][col], a[r][c]); err != nil {
					return 0, 0, err
				}
				if err := checkOverflow(a[r][col], a[pivotRow][c]); err != nil {
					return 0, 0, err
				}
				num := a[pivotRow][col]*a[r][c] - a[r][col]*a[pivotRow][c]
				a[r][c] = num / prevPivot
			}
		}
		prevPivot = a[pivotRow][col]
		pivotRow++
	}

	det := prevPivot
	if det < 0 {
		det = -det
	}
	return pivotRow, det, nil
}

func checkOverflow(a, b int64) error {
	if a == 0 || b == 0 {
		return nil
	}
	if a > overflowBound/absInt64(b) || a < -overflowBound/absInt64(b) {
		return fmt.Errorf("cmr: rank/determinant extraction overflowed at %d*%d: %w", a, b, ErrOverflow)
	}
	return nil
}

func absInt64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
