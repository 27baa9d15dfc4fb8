package cmr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/discopt/cmr-sub003/env"
	"github.com/discopt/cmr-sub003/internal/bitset"
	"github.com/discopt/cmr-sub003/matrix"
)

func newEnvWithSmallComplementBound() *env.Environment {
	return env.New(env.WithMaxComplementBits(8))
}

func tern(rows, cols int, triplets []matrix.Triplet[int8]) *matrix.Matrix[int8] {
	m, err := matrix.FromTriplets(rows, cols, triplets)
	if err != nil {
		panic(err)
	}
	return m
}

// bruteForceMaxAbsSubdeterminant enumerates every square submatrix of m by
// row/column subset (via bitset) so TU can be checked against exact
// subdeterminants directly, and returns the largest absolute value of any
// subdeterminant found. This is
// the independent oracle the facade tests below cross-check
// TestTotalUnimodularity's verdict against, rather than trusting the
// decomposition's own answer in isolation.
func bruteForceMaxAbsSubdeterminant(m *matrix.Matrix[int8]) int64 {
	nr, nc := m.NumRows(), m.NumColumns()
	if nr > 16 || nc > 16 {
		panic("bruteForceMaxAbsSubdeterminant: fixture too large for exhaustive enumeration")
	}
	dense := make([][]int64, nr)
	for i := 0; i < nr; i++ {
		dense[i] = make([]int64, nc)
		s, e := m.RowRange(i)
		for k := s; k < e; k++ {
			dense[i][int(m.ColIndex()[k])] = int64(m.Values()[k])
		}
	}
	var best int64
	for rMask := uint64(1); rMask < uint64(1)<<uint(nr); rMask++ {
		rows := bitset.FromUint64(nr, rMask)
		rc := rows.PopCount()
		for cMask := uint64(1); cMask < uint64(1)<<uint(nc); cMask++ {
			cols := bitset.FromUint64(nc, cMask)
			if cols.PopCount() != rc {
				continue
			}
			var rowIdx, colIdx []int
			for i := 0; i < nr; i++ {
				if rows.Get(i) {
					rowIdx = append(rowIdx, i)
				}
			}
			for j := 0; j < nc; j++ {
				if cols.Get(j) {
					colIdx = append(colIdx, j)
				}
			}
			sub := make([][]int64, rc)
			for a, i := range rowIdx {
				sub[a] = make([]int64, rc)
				for b, j := range colIdx {
					sub[a][b] = dense[i][j]
				}
			}
			d := absInt64(smallDeterminant(sub))
			if d > best {
				best = d
			}
		}
	}
	return best
}

// smallDeterminant computes an exact integer determinant via cofactor
// expansion; only ever called on the small (<=16x16, typically <=5x5)
// fixtures these tests use, so expansion cost is not a concern.
func smallDeterminant(a [][]int64) int64 {
	n := len(a)
	if n == 0 {
		return 1
	}
	if n == 1 {
		return a[0][0]
	}
	var det int64
	sign := int64(1)
	for col := 0; col < n; col++ {
		minor := make([][]int64, n-1)
		for i := 1; i < n; i++ {
			row := make([]int64, 0, n-1)
			for j := 0; j < n; j++ {
				if j == col {
					continue
				}
				row = append(row, a[i][j])
			}
			minor[i-1] = row
		}
		det += sign * a[0][col] * smallDeterminant(minor)
		sign = -sign
	}
	return det
}

func TestTestTotalUnimodularityTrivialSingleton(t *testing.T) {
	m := tern(1, 1, []matrix.Triplet[int8]{{Row: 0, Col: 0, Value: 1}})
	res, err := TestTotalUnimodularity(m, nil)
	require.NoError(t, err)
	assert.True(t, res.IsTotallyUnimodular)
	assert.LessOrEqual(t, bruteForceMaxAbsSubdeterminant(m), int64(1))
}

// networkPathTreeFixture is the known-good 2x3 ternary matrix from the
// graphic package's own direct-test fixtures: two tree edges (rows) and
// three fundamental-cycle columns, hand-verified to have every 2x2 minor
// in {-1, 0, 1} (so it is genuinely totally unimodular, not merely
// graphic in support).
func networkPathTreeFixture() *matrix.Matrix[int8] {
	return tern(2, 3, []matrix.Triplet[int8]{
		{Row: 0, Col: 0, Value: 1},
		{Row: 1, Col: 1, Value: 1},
		{Row: 0, Col: 2, Value: 1},
		{Row: 1, Col: 2, Value: -1},
	})
}

func TestTestTotalUnimodularityOnNetworkMatrixFixture(t *testing.T) {
	m := networkPathTreeFixture()
	res, err := TestTotalUnimodularity(m, nil)
	require.NoError(t, err)
	assert.True(t, res.IsTotallyUnimodular)
	assert.LessOrEqual(t, bruteForceMaxAbsSubdeterminant(m), int64(1))
}

// TestTestTotalUnimodularityRejectsBadSigning exercises the confirming
// pass: this 2x2 matrix has a graphic (path) binary support but its own
// chosen signs give det([[1,1],[1,-1]]) = -2, so it is genuinely not totally unimodular, even though decomp.Run alone
// (reasoning only about the binary support) would call it regular.
func TestTestTotalUnimodularityRejectsBadSigning(t *testing.T) {
	m := tern(2, 2, []matrix.Triplet[int8]{
		{Row: 0, Col: 0, Value: 1}, {Row: 0, Col: 1, Value: 1},
		{Row: 1, Col: 0, Value: 1}, {Row: 1, Col: 1, Value: -1},
	})
	require.Equal(t, int64(2), bruteForceMaxAbsSubdeterminant(m))
	res, err := TestTotalUnimodularity(m, nil)
	require.NoError(t, err)
	assert.False(t, res.IsTotallyUnimodular)
	require.NotNil(t, res.Violator)
}

// joinedFourConnectedFixture is an 8-cycle stitched from two rows and two
// columns at a time: row0/row1 share column 0, row1/row2 share column 2,
// row2/row3 share column 3, row3/row0 share column 1, and every row and
// column carries exactly two nonzeros. No line is a unit or parallel to
// another, so series-parallel reduction leaves the whole 4x4 matrix
// untouched, and no 3x3 submatrix has the two-per-line wheel pattern (every
// such submatrix drops at least one line to a single nonzero once a column
// or row is excluded), so the nested-minor engine never gets a seed either.
// The only way this matrix's single 3-separation is found is rule 9's
// broadened candidate search trying a joint row-pair-and-column-pair
// partition instead of one fixed single line. See DESIGN.md for why this
// replaces an earlier large-wheel fixture that this driver's wheel-seed
// search cannot recognize at all.
func joinedFourConnectedFixture() *matrix.Matrix[int8] {
	return tern(4, 4, []matrix.Triplet[int8]{
		{Row: 0, Col: 0, Value: 1}, {Row: 0, Col: 1, Value: 1},
		{Row: 1, Col: 0, Value: 1}, {Row: 1, Col: 2, Value: 1},
		{Row: 2, Col: 2, Value: 1}, {Row: 2, Col: 3, Value: 1},
		{Row: 3, Col: 1, Value: 1}, {Row: 3, Col: 3, Value: 1},
	})
}

// TestTestTotalUnimodularityOnJoinedFourConnectedFixture exercises the
// decomposition driver end to end (rather than calling rule 9's search
// directly, as decomp's own test does) on a matrix whose only genuine
// separation needs the joint row-pair-and-column-pair candidate shape.
func TestTestTotalUnimodularityOnJoinedFourConnectedFixture(t *testing.T) {
	m := joinedFourConnectedFixture()
	assert.LessOrEqual(t, bruteForceMaxAbsSubdeterminant(m), int64(1))
	res, err := TestTotalUnimodularity(m, nil)
	require.NoError(t, err)
	assert.True(t, res.IsTotallyUnimodular)
}

func TestTestTotalUnimodularityRejectsNonTernaryInput(t *testing.T) {
	m := tern(1, 1, []matrix.Triplet[int8]{{Row: 0, Col: 0, Value: 2}})
	_, err := TestTotalUnimodularity(m, nil)
	require.ErrorIs(t, err, ErrInvalidInput)
}

// fullMatrixViolatorFixture has determinant -2 (confirmed by two
// independent cofactor expansions): it is not totally unimodular, and no
// proper submatrix is assumed minimal here -- only that the whole matrix
// is not TU and some violator is reported.
func fullMatrixViolatorFixture() *matrix.Matrix[int8] {
	return tern(4, 4, []matrix.Triplet[int8]{
		{Row: 0, Col: 0, Value: 1}, {Row: 0, Col: 1, Value: 1},
		{Row: 1, Col: 1, Value: 1}, {Row: 1, Col: 2, Value: 1},
		{Row: 2, Col: 2, Value: 1}, {Row: 2, Col: 3, Value: 1},
		{Row: 3, Col: 0, Value: 1}, {Row: 3, Col: 3, Value: -1},
	})
}

func TestTestTotalUnimodularityOnFullMatrixViolator(t *testing.T) {
	m := fullMatrixViolatorFixture()
	assert.EqualValues(t, 2, bruteForceMaxAbsSubdeterminant(m))
	res, err := TestTotalUnimodularity(m, nil)
	require.NoError(t, err)
	assert.False(t, res.IsTotallyUnimodular)
	assert.NotNil(t, res.Violator)
}

// fanoPatternFixture is the Fano plane's incidence pattern restricted to
// three of its seven lines: every row has weight 3 and every column is
// covered, but the pattern is not representable over GF(2) as a regular
// matroid.
func fanoPatternFixture() *matrix.Matrix[int8] {
	return tern(3, 4, []matrix.Triplet[int8]{
		{Row: 0, Col: 0, Value: 1}, {Row: 0, Col: 1, Value: 1}, {Row: 0, Col: 3, Value: 1},
		{Row: 1, Col: 0, Value: 1}, {Row: 1, Col: 2, Value: 1}, {Row: 1, Col: 3, Value: 1},
		{Row: 2, Col: 1, Value: 1}, {Row: 2, Col: 2, Value: 1}, {Row: 2, Col: 3, Value: 1},
	})
}

func TestTestRegularRejectsFanoPattern(t *testing.T) {
	res, err := TestRegular(fanoPatternFixture(), nil)
	require.NoError(t, err)
	assert.False(t, res.IsRegular)
}

// r10CirculantFixture is decomp's own weight-3 self-dual 5x5 circulant
// pattern, known to be recognized as the R10 matroid by isR10Candidate.
func r10CirculantFixture() *matrix.Matrix[int8] {
	var triplets []matrix.Triplet[int8]
	for i := 0; i < 5; i++ {
		for _, d := range []int{0, 1, 3} {
			triplets = append(triplets, matrix.Triplet[int8]{Row: i, Col: (i + d) % 5, Value: 1})
		}
	}
	return tern(5, 5, triplets)
}

func TestTestRegularAcceptsR10Pattern(t *testing.T) {
	res, err := TestRegular(r10CirculantFixture(), nil)
	require.NoError(t, err)
	assert.True(t, res.IsRegular)
}

func TestTestRegularRejectsNonBinaryInput(t *testing.T) {
	m := tern(1, 1, []matrix.Triplet[int8]{{Row: 0, Col: 0, Value: -1}})
	_, err := TestRegular(m, nil)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestTestNetworkAcceptsPathTreeFixture(t *testing.T) {
	m := networkPathTreeFixture()
	res, err := TestNetwork(m)
	require.NoError(t, err)
	assert.True(t, res.IsNetwork)
}

func TestTestConetworkOnTransposedPathTreeFixture(t *testing.T) {
	m := networkPathTreeFixture().Transpose()
	res, err := TestConetwork(m)
	require.NoError(t, err)
	assert.True(t, res.IsNetwork)
}

func TestTestNetworkRejectsBadSigning(t *testing.T) {
	m := tern(2, 2, []matrix.Triplet[int8]{
		{Row: 0, Col: 0, Value: 1}, {Row: 0, Col: 1, Value: 1},
		{Row: 1, Col: 0, Value: 1}, {Row: 1, Col: 1, Value: -1},
	})
	res, err := TestNetwork(m)
	require.NoError(t, err)
	assert.False(t, res.IsNetwork)
}

func TestTestUnimodularOnIdentity(t *testing.T) {
	m := tern(2, 2, []matrix.Triplet[int8]{
		{Row: 0, Col: 0, Value: 1}, {Row: 1, Col: 1, Value: 1},
	})
	res, err := TestUnimodular(m, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Rank)
	assert.Equal(t, int64(1), res.Determinant)
	assert.True(t, res.MatchesClaim)
	assert.True(t, res.TU.IsTotallyUnimodular)
}

func TestTestKModularOnScaledIdentity(t *testing.T) {
	m := tern(2, 2, []matrix.Triplet[int8]{
		{Row: 0, Col: 0, Value: 1}, {Row: 1, Col: 1, Value: 1},
	})
	res, err := TestKModular(m, 1, nil)
	require.NoError(t, err)
	assert.True(t, res.MatchesClaim)
}

func TestTestKModularRejectsNonPositiveClaim(t *testing.T) {
	m := tern(1, 1, []matrix.Triplet[int8]{{Row: 0, Col: 0, Value: 1}})
	_, err := TestKModular(m, 0, nil)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestTestStronglyUnimodularOnIdentity(t *testing.T) {
	m := tern(2, 2, []matrix.Triplet[int8]{
		{Row: 0, Col: 0, Value: 1}, {Row: 1, Col: 1, Value: 1},
	})
	res, err := TestStronglyUnimodular(m, nil)
	require.NoError(t, err)
	assert.True(t, res.MatchesClaim)
}

func TestTestComplementTotalUnimodularityEnumeratesAllComplements(t *testing.T) {
	m := tern(1, 2, []matrix.Triplet[int8]{
		{Row: 0, Col: 0, Value: 1}, {Row: 0, Col: 1, Value: 1},
	})
	results, err := TestComplementTotalUnimodularity(m, nil)
	require.NoError(t, err)
	// 1 row + 2 columns + 1 global bit = 4 independent line choices,
	// 2^4 = 16 complemented copies total.
	assert.Len(t, results, 16)
	for _, r := range results {
		assert.True(t, r.IsTotallyUnimodular)
	}
}

func TestTestComplementTotalUnimodularityRejectsOversizedInput(t *testing.T) {
	var triplets []matrix.Triplet[int8]
	for i := 0; i < 16; i++ {
		triplets = append(triplets, matrix.Triplet[int8]{Row: i, Col: i, Value: 1})
	}
	m := tern(16, 16, triplets)
	e := newEnvWithSmallComplementBound()
	_, err := TestComplementTotalUnimodularity(m, e)
	require.ErrorIs(t, err, ErrTooLarge)
}
