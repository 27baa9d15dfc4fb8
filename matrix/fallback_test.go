package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApproximateDeterminantIdentity(t *testing.T) {
	m, err := FromTriplets[float64](3, 3, []Triplet[float64]{
		{Row: 0, Col: 0, Value: 1}, {Row: 1, Col: 1, Value: 1}, {Row: 2, Col: 2, Value: 1},
	})
	require.NoError(t, err)
	det, err := ApproximateDeterminant(m)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, det, 1e-9)
}

func TestApproximateDeterminantKnownValue(t *testing.T) {
	m, err := FromTriplets[float64](2, 2, []Triplet[float64]{
		{Row: 0, Col: 0, Value: 2}, {Row: 0, Col: 1, Value: 1},
		{Row: 1, Col: 0, Value: 1}, {Row: 1, Col: 1, Value: 1},
	})
	require.NoError(t, err)
	det, err := ApproximateDeterminant(m)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, det, 1e-9)
}

func TestApproximateDeterminantNonSquare(t *testing.T) {
	m, err := FromTriplets[float64](1, 2, []Triplet[float64]{{Row: 0, Col: 0, Value: 1}})
	require.NoError(t, err)
	_, err = ApproximateDeterminant(m)
	assert.ErrorIs(t, err, ErrNotSquare)
}

func TestApproximateDeterminantSingular(t *testing.T) {
	m, err := FromTriplets[float64](2, 2, nil)
	require.NoError(t, err)
	_, err = ApproximateDeterminant(m)
	assert.ErrorIs(t, err, ErrSingular)
}
