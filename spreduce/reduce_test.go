package spreduce

import (
	"testing"

	"github.com/discopt/cmr-sub003/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tern(rows, cols int, triplets []matrix.Triplet[int8]) *matrix.Matrix[int8] {
	m, err := matrix.FromTriplets(rows, cols, triplets)
	if err != nil {
		panic(err)
	}
	return m
}

func TestReduceZeroMatrix(t *testing.T) {
	m := tern(3, 3, nil)
	ops, remaining, wheel, sep, err := Reduce(m)
	require.NoError(t, err)
	assert.Empty(t, remaining.Rows)
	assert.Empty(t, remaining.Columns)
	assert.Nil(t, wheel)
	assert.Nil(t, sep)
	assert.Len(t, ops, 6) // one zero-line reduction per row and per column
}

func TestReduceSingleEntryReducesToEmpty(t *testing.T) {
	m := tern(1, 1, []matrix.Triplet[int8]{{Row: 0, Col: 0, Value: 1}})
	ops, remaining, wheel, sep, err := Reduce(m)
	require.NoError(t, err)
	assert.Empty(t, remaining.Rows)
	assert.Empty(t, remaining.Columns)
	assert.Nil(t, wheel)
	assert.Nil(t, sep)
	require.Len(t, ops, 2) // unit row, then its now-zero column
}

func TestReduceParallelRows(t *testing.T) {
	// row0 = row1 = (1,1,0) are parallel, and row2/col2 form a unit pair
	// (col2 only hits row2); everything reduces away.
	m := tern(3, 3, []matrix.Triplet[int8]{
		{Row: 0, Col: 0, Value: 1}, {Row: 0, Col: 1, Value: 1},
		{Row: 1, Col: 0, Value: 1}, {Row: 1, Col: 1, Value: 1},
		{Row: 2, Col: 2, Value: 1},
	})
	ops, remaining, wheel, sep, err := Reduce(m)
	require.NoError(t, err)
	assert.Nil(t, wheel)
	assert.Nil(t, sep)
	assert.Empty(t, remaining.Rows)
	assert.Empty(t, remaining.Columns)
	assert.NotEmpty(t, ops)
}

func TestReduceNegatedParallelRows(t *testing.T) {
	m := tern(2, 2, []matrix.Triplet[int8]{
		{Row: 0, Col: 0, Value: 1}, {Row: 0, Col: 1, Value: -1},
		{Row: 1, Col: 0, Value: -1}, {Row: 1, Col: 1, Value: 1},
	})
	ops, remaining, _, _, err := Reduce(m)
	require.NoError(t, err)
	assert.Empty(t, remaining.Rows)
	require.NotEmpty(t, ops)
	var sawNegated bool
	for _, op := range ops {
		if op.Negated {
			sawNegated = true
		}
	}
	assert.True(t, sawNegated)
}

// wheelW3 builds the canonical 3x3 wheel support pattern: every row and
// column has exactly two ones.
func wheelW3() *matrix.Matrix[int8] {
	return tern(3, 3, []matrix.Triplet[int8]{
		{Row: 0, Col: 0, Value: 1}, {Row: 0, Col: 1, Value: 1},
		{Row: 1, Col: 1, Value: 1}, {Row: 1, Col: 2, Value: 1},
		{Row: 2, Col: 0, Value: 1}, {Row: 2, Col: 2, Value: 1},
	})
}

func TestReduceBareWheelIsIrreducible(t *testing.T) {
	m := wheelW3()
	ops, remaining, wheel, sep, err := Reduce(m)
	require.NoError(t, err)
	assert.Empty(t, ops, "a bare wheel has no zero/unit/parallel lines to remove")
	require.NotNil(t, wheel, "bare wheel must be reported back as itself")
	assert.Nil(t, sep)
	assert.ElementsMatch(t, []int{0, 1, 2}, remaining.Rows)
	assert.ElementsMatch(t, []int{0, 1, 2}, remaining.Columns)
}

func TestReduceWheelWithSeriesParallelAdditionLeavesOnlyWheel(t *testing.T) {
	// Start from W3 and append a pendant column attached to row 0 alone
	// (a unit column) plus a column parallel to column 0: both must be
	// stripped, leaving exactly the original 3x3 wheel.
	m := tern(3, 5, []matrix.Triplet[int8]{
		{Row: 0, Col: 0, Value: 1}, {Row: 0, Col: 1, Value: 1},
		{Row: 1, Col: 1, Value: 1}, {Row: 1, Col: 2, Value: 1},
		{Row: 2, Col: 0, Value: 1}, {Row: 2, Col: 2, Value: 1},
		{Row: 0, Col: 3, Value: 1}, // unit column, only touches row 0
		{Row: 0, Col: 4, Value: 1}, {Row: 2, Col: 4, Value: 1}, // parallel to column 0
	})
	ops, remaining, wheel, sep, err := Reduce(m)
	require.NoError(t, err)
	assert.NotEmpty(t, ops)
	require.NotNil(t, wheel)
	assert.Nil(t, sep)
	assert.ElementsMatch(t, []int{0, 1, 2}, remaining.Rows)
	assert.ElementsMatch(t, []int{0, 1, 2}, remaining.Columns)
}

func TestReduceDisconnectedRemainderIsASeparation(t *testing.T) {
	// Two disjoint 2x2 blocks, each internally SP-irreducible (rows/columns
	// within a block are neither unit nor parallel to one another) and too
	// small individually to contain a wheel; sharing no row/column, they
	// form a clean separation.
	m := tern(4, 4, []matrix.Triplet[int8]{
		{Row: 0, Col: 0, Value: 1}, {Row: 0, Col: 1, Value: 1},
		{Row: 1, Col: 0, Value: 1}, {Row: 1, Col: 1, Value: -1},
		{Row: 2, Col: 2, Value: 1}, {Row: 2, Col: 3, Value: 1},
		{Row: 3, Col: 2, Value: 1}, {Row: 3, Col: 3, Value: -1},
	})
	_, remaining, wheel, sep, err := Reduce(m)
	require.NoError(t, err)
	assert.Nil(t, wheel)
	require.NotNil(t, sep)
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, remaining.Rows)
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, remaining.Columns)
	assert.NotEmpty(t, sep.RowsA)
	assert.NotEmpty(t, sep.RowsB)
}

func TestReduceRejectsNonTernary(t *testing.T) {
	m := tern(1, 1, []matrix.Triplet[int8]{{Row: 0, Col: 0, Value: 2}})
	_, _, _, _, err := Reduce(m)
	assert.ErrorIs(t, err, ErrNotTernary)
}
