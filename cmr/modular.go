package cmr

import (
	"fmt"

	"github.com/discopt/cmr-sub003/env"
	"github.com/discopt/cmr-sub003/matrix"
)

// testModular is the shared pre-processing step for the
// testUnimodular/testKModular family: row-reduce m to extract its rank
// and the determinant of the basis the pivots span, compare that against
// the caller's claimed k, and — regardless of the comparison's outcome —
// still run testTU so the caller gets a full decomposition either way;
// a k mismatch is reported alongside the decomposition, not in place of it.
func testModular(m *matrix.Matrix[int8], claimedK int64, e *env.Environment) (*ModularResult, error) {
	if !m.IsTernary(0) {
		return nil, fmt.Errorf("cmr.testModular: %w", ErrInvalidInput)
	}
	rank, det, err := extractRankAndDeterminant(m)
	if err != nil {
		return nil, fmt.Errorf("cmr.testModular: %w", err)
	}
	tu, err := TestTotalUnimodularity(m, e)
	if err != nil {
		return nil, err
	}
	return &ModularResult{Rank: rank, Determinant: det, MatchesClaim: det == claimedK, TU: tu}, nil
}

// TestUnimodular is the k=1 case of testModular, i.e. the rank-extracted
// basis submatrix has determinant exactly +-1.
func TestUnimodular(m *matrix.Matrix[int8], e *env.Environment) (*ModularResult, error) {
	return testModular(m, 1, e)
}

// TestStronglyUnimodular checks unimodularity in both m and its
// transpose, so a k-sum-style decomposition built from either orientation
// still has unit-determinant bases.
func TestStronglyUnimodular(m *matrix.Matrix[int8], e *env.Environment) (*ModularResult, error) {
	fwd, err := testModular(m, 1, e)
	if err != nil {
		return nil, err
	}
	if !fwd.MatchesClaim {
		return fwd, nil
	}
	rank, det, err := extractRankAndDeterminant(m.Transpose())
	if err != nil {
		return nil, fmt.Errorf("cmr.TestStronglyUnimodular: %w", err)
	}
	fwd.MatchesClaim = fwd.MatchesClaim && det == 1 && rank == fwd.Rank
	return fwd, nil
}

// TestKModular is testModular with an arbitrary caller-supplied k in
// place of 1.
func TestKModular(m *matrix.Matrix[int8], k int64, e *env.Environment) (*ModularResult, error) {
	if k <= 0 {
		return nil, fmt.Errorf("cmr.TestKModular: %w", ErrInvalidInput)
	}
	return testModular(m, k, e)
}

// TestStronglyKModular is the k-modular analogue of TestStronglyUnimodular,
// checked on m and its transpose.
func TestStronglyKModular(m *matrix.Matrix[int8], k int64, e *env.Environment) (*ModularResult, error) {
	if k <= 0 {
		return nil, fmt.Errorf("cmr.TestStronglyKModular: %w", ErrInvalidInput)
	}
	fwd, err := testModular(m, k, e)
	if err != nil {
		return nil, err
	}
	if !fwd.MatchesClaim {
		return fwd, nil
	}
	rank, det, err := extractRankAndDeterminant(m.Transpose())
	if err != nil {
		return nil, fmt.Errorf("cmr.TestStronglyKModular: %w", err)
	}
	fwd.MatchesClaim = fwd.MatchesClaim && det == k && rank == fwd.Rank
	return fwd, nil
}

// TestComplementTotalUnimodularity checks TU of every one of the
// 2^(m+n+1) "complemented copies" of m, where the m+n+1 independent sign
// choices are: negate row i (one bit per row), negate column j (one bit
// per column), and negate the whole matrix (one extra global bit,
// subsuming the case where an even number of row/column flips would
// otherwise cancel out — kept as its own bit because the enumeration is
// defined over independent line choices, not over their post-XOR
// effect). Since 2^(m+n+1) complemented copies is intractable for
// anything but small matrices, the enumeration is bounded by
// env.Environment.MaxComplementBits: a matrix whose m+n+1 exceeds that
// bound returns ErrTooLarge immediately rather than silently truncating
// the enumeration or running long enough to look hung.
func TestComplementTotalUnimodularity(m *matrix.Matrix[int8], e *env.Environment) ([]*TUResult, error) {
	if !m.IsTernary(0) {
		return nil, fmt.Errorf("cmr.TestComplementTotalUnimodularity: %w", ErrInvalidInput)
	}
	e = resolveEnv(e)
	nr, nc := m.NumRows(), m.NumColumns()
	lines := nr + nc + 1
	if lines > e.MaxComplementBits() {
		return nil, fmt.Errorf("cmr.TestComplementTotalUnimodularity: %d lines exceeds bound %d: %w", lines, e.MaxComplementBits(), ErrTooLarge)
	}
	total := uint64(1) << uint(lines)
	results := make([]*TUResult, 0, total)
	for mask := uint64(0); mask < total; mask++ {
		c, err := complementBy(m, mask, nr)
		if err != nil {
			return nil, fmt.Errorf("cmr.TestComplementTotalUnimodularity: %w", err)
		}
		if err := e.Checkpoint(); err != nil {
			return nil, wrapEnvErr("cmr.TestComplementTotalUnimodularity", err)
		}
		res, err := TestTotalUnimodularity(c, e)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// complementBy builds the complemented copy of m selected by mask: bit i
// (i < nr) negates row i, bit nr+j negates column j, and the top bit
// (bit nr+nc) negates every entry once more on top of whichever
// row/column bits are also set.
func complementBy(m *matrix.Matrix[int8], mask uint64, nr int) (*matrix.Matrix[int8], error) {
	global := mask&(uint64(1)<<uint(nr+m.NumColumns())) != 0
	triplets := make([]matrix.Triplet[int8], 0, m.NumNonzeros())
	for r := 0; r < m.NumRows(); r++ {
		s, e := m.RowRange(r)
		rowFlip := mask&(uint64(1)<<uint(r)) != 0
		for k := s; k < e; k++ {
			col := int(m.ColIndex()[k])
			v := m.Values()[k]
			colFlip := mask&(uint64(1)<<uint(nr+col)) != 0
			if rowFlip != colFlip {
				v = -v
			}
			if global {
				v = -v
			}
			triplets = append(triplets, matrix.Triplet[int8]{Row: r, Col: col, Value: v})
		}
	}
	return matrix.FromTriplets(m.NumRows(), m.NumColumns(), triplets)
}
