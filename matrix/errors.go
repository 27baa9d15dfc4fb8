// Package matrix: sentinel error set. All algorithms in this package return
// these sentinels (possibly wrapped with fmt.Errorf("%w", ...)); callers
// should check via errors.Is.
package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotSquare signals that a square matrix was required but the input wasn't.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrStructuralZero indicates FindEntry located no stored entry at (i,j).
	ErrStructuralZero = errors.New("matrix: structural zero")

	// ErrInvalidPivot indicates a pivot was requested at a zero (binary) or
	// non-unit (ternary) entry.
	ErrInvalidPivot = errors.New("matrix: invalid pivot entry")

	// ErrTernaryFoldFailed indicates a ternary pivot produced an entry outside
	// {-1,0,1} that could not be folded back into range.
	ErrTernaryFoldFailed = errors.New("matrix: ternary pivot fold failed")

	// ErrInconsistent indicates a ConsistencyCheck failure: unsorted columns,
	// duplicate columns, or a stored zero.
	ErrInconsistent = errors.New("matrix: inconsistent internal structure")

	// ErrNotBinary indicates an entry outside {0,1} where a binary matrix was required.
	ErrNotBinary = errors.New("matrix: entries are not binary")

	// ErrNotTernary indicates an entry outside {-1,0,1} where a ternary matrix was required.
	ErrNotTernary = errors.New("matrix: entries are not ternary")

	// ErrSingular is returned by the double-based fallback determinant when a
	// zero pivot is encountered in the non-pivoting elimination scheme.
	ErrSingular = errors.New("matrix: singular matrix")
)
