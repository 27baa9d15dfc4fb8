package nestedminor

import (
	"testing"

	"github.com/discopt/cmr-sub003/matrix"
	"github.com/discopt/cmr-sub003/spreduce"
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

func wheelW3() *matrix.Matrix[int8] {
	return tern(3, 3, []matrix.Triplet[int8]{
		{Row: 0, Col: 0, Value: 1}, {Row: 0, Col: 1, Value: 1},
		{Row: 1, Col: 1, Value: 1}, {Row: 1, Col: 2, Value: 1},
		{Row: 2, Col: 0, Value: 1}, {Row: 2, Col: 2, Value: 1},
	})
}

func TestGrowBareWheelSucceedsTrivially(t *testing.T) {
	m := wheelW3()
	seed := &spreduce.WheelCertificate{Rows: [3]int{0, 1, 2}, Columns: [3]int{0, 1, 2}}
	seq, sep, err := Grow(m, []int{0, 1, 2}, []int{0, 1, 2}, seed)
	require.NoError(t, err)
	assert.Nil(t, sep)
	require.NotNil(t, seq)
	assert.Len(t, seq.Order, 6)
	assert.Equal(t, 3, seq.Matrix.NumRows())
	assert.Equal(t, 3, seq.Matrix.NumColumns())
}

func TestGrowAddsAFourthRow(t *testing.T) {
	// wheel plus a 4th row touching two of the seed's columns with sign
	// pattern (1,-1), which matches no seed row: non-parallel, >1 nonzero
	// among placed columns, so rule 1 absorbs it directly.
	m := tern(4, 3, []matrix.Triplet[int8]{
		{Row: 0, Col: 0, Value: 1}, {Row: 0, Col: 1, Value: 1},
		{Row: 1, Col: 1, Value: 1}, {Row: 1, Col: 2, Value: 1},
		{Row: 2, Col: 0, Value: 1}, {Row: 2, Col: 2, Value: 1},
		{Row: 3, Col: 0, Value: 1}, {Row: 3, Col: 1, Value: -1},
	})
	seed := &spreduce.WheelCertificate{Rows: [3]int{0, 1, 2}, Columns: [3]int{0, 1, 2}}
	seq, sep, err := Grow(m, []int{0, 1, 2, 3}, []int{0, 1, 2}, seed)
	require.NoError(t, err)
	assert.Nil(t, sep)
	require.NotNil(t, seq)
	assert.Len(t, seq.Order, 7)
	assert.Equal(t, 4, seq.Matrix.NumRows())
}

func TestGrowUnreachableRowYieldsSeparation(t *testing.T) {
	// Row 3 has only a single nonzero among the seed columns (parallel to
	// nothing usefully, degree 1 restricted): growth cannot place it, and
	// with nothing else to place either, the engine reports a separation.
	m := tern(4, 3, []matrix.Triplet[int8]{
		{Row: 0, Col: 0, Value: 1}, {Row: 0, Col: 1, Value: 1},
		{Row: 1, Col: 1, Value: 1}, {Row: 1, Col: 2, Value: 1},
		{Row: 2, Col: 0, Value: 1}, {Row: 2, Col: 2, Value: 1},
		{Row: 3, Col: 0, Value: 1},
	})
	seed := &spreduce.WheelCertificate{Rows: [3]int{0, 1, 2}, Columns: [3]int{0, 1, 2}}
	seq, sep, err := Grow(m, []int{0, 1, 2, 3}, []int{0, 1, 2}, seed)
	require.NoError(t, err)
	assert.Nil(t, seq)
	require.NotNil(t, sep)
	assert.Equal(t, []int{3}, sep.RowsB)
}

func TestGrowRejectsSeedNotInRemainder(t *testing.T) {
	m := wheelW3()
	seed := &spreduce.WheelCertificate{Rows: [3]int{0, 1, 2}, Columns: [3]int{0, 1, 2}}
	_, _, err := Grow(m, []int{0, 1}, []int{0, 1, 2}, seed)
	assert.ErrorIs(t, err, ErrSeedNotInRemainder)
}
