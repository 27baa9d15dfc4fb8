package graphic

import (
	"testing"

	"github.com/discopt/cmr-sub003/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bin(rows, cols int, triplets []matrix.Triplet[int8]) *matrix.Matrix[int8] {
	m, err := matrix.FromTriplets(rows, cols, triplets)
	if err != nil {
		panic(err)
	}
	return m
}

// TestDirectTestSimplePathIsGraphic uses a 2-edge path tree on 3 vertices
// (0-1, 1-2): columns for the two tree-adjacent pairs and the full span
// are all realizable fundamental-cycle columns.
func TestDirectTestSimplePathIsGraphic(t *testing.T) {
	m := bin(2, 3, []matrix.Triplet[int8]{
		{Row: 0, Col: 0, Value: 1},
		{Row: 1, Col: 1, Value: 1},
		{Row: 0, Col: 2, Value: 1},
		{Row: 1, Col: 2, Value: 1},
	})
	result, err := DirectTest(m)
	require.NoError(t, err)
	assert.True(t, result.IsGraphic)
	assert.NotNil(t, result.Tree)
	assert.Equal(t, 3, result.Tree.NumVertices)
	assert.Len(t, result.Endpoints, 3)
}

// TestDirectTestConflictingPairsIsNotGraphic needs all three pairwise
// row-supports (achievable only by a star topology) together with the
// full-triple support (achievable only by a path topology): no single
// spanning tree on 4 vertices realizes both simultaneously.
func TestDirectTestConflictingPairsIsNotGraphic(t *testing.T) {
	m := bin(3, 4, []matrix.Triplet[int8]{
		{Row: 0, Col: 0, Value: 1}, {Row: 1, Col: 0, Value: 1},
		{Row: 1, Col: 1, Value: 1}, {Row: 2, Col: 1, Value: 1},
		{Row: 0, Col: 2, Value: 1}, {Row: 2, Col: 2, Value: 1},
		{Row: 0, Col: 3, Value: 1}, {Row: 1, Col: 3, Value: 1}, {Row: 2, Col: 3, Value: 1},
	})
	result, err := DirectTest(m)
	require.NoError(t, err)
	assert.False(t, result.IsGraphic)
}

// TestDirectTestTooLargeReturnsError checks the directTestRowBound guard.
func TestDirectTestTooLargeReturnsError(t *testing.T) {
	n := directTestRowBound + 1
	m := bin(n, 1, []matrix.Triplet[int8]{{Row: 0, Col: 0, Value: 1}})
	_, err := DirectTest(m)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooLarge)
}

// TestDirectTestTernarySignsThePathTree checks that a ternary matrix whose
// nonzero pattern is the same 2-edge path tree, with signs already
// alternating correctly along the spanning path, signs successfully.
func TestDirectTestTernarySignsThePathTree(t *testing.T) {
	m, err := matrix.FromTriplets[int8](2, 3, []matrix.Triplet[int8]{
		{Row: 0, Col: 0, Value: 1},
		{Row: 1, Col: 1, Value: 1},
		{Row: 0, Col: 2, Value: 1},
		{Row: 1, Col: 2, Value: -1},
	})
	require.NoError(t, err)

	result, err := DirectTestTernary(m)
	require.NoError(t, err)
	require.True(t, result.IsGraphic)
	assert.Nil(t, result.Violator)
	require.NotNil(t, result.Signed)
	assert.Equal(t, 2, result.Signed.NumRows())
	assert.Equal(t, 3, result.Signed.NumColumns())
}
