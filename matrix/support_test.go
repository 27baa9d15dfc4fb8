package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportAndSignedSupport(t *testing.T) {
	m, err := FromTriplets[int32](2, 2, []Triplet[int32]{
		{Row: 0, Col: 0, Value: 3},
		{Row: 0, Col: 1, Value: -2},
		{Row: 1, Col: 1, Value: 5},
	})
	require.NoError(t, err)

	sup := m.Support()
	assert.EqualValues(t, 1, sup.At(0, 0))
	assert.EqualValues(t, 1, sup.At(0, 1))
	assert.EqualValues(t, 0, sup.At(1, 0))

	signed := m.SignedSupport(0)
	assert.EqualValues(t, 1, signed.At(0, 0))
	assert.EqualValues(t, -1, signed.At(0, 1))
	assert.EqualValues(t, 1, signed.At(1, 1))
}

func TestIsBinaryIsTernary(t *testing.T) {
	bin, err := FromTriplets[int8](1, 2, []Triplet[int8]{{Row: 0, Col: 0, Value: 1}, {Row: 0, Col: 1, Value: 1}})
	require.NoError(t, err)
	assert.True(t, bin.IsBinary(0))
	assert.True(t, bin.IsTernary(0))

	ter, err := FromTriplets[int8](1, 2, []Triplet[int8]{{Row: 0, Col: 0, Value: -1}, {Row: 0, Col: 1, Value: 1}})
	require.NoError(t, err)
	assert.False(t, ter.IsBinary(0))
	assert.True(t, ter.IsTernary(0))

	dbl, err := FromTriplets[float64](1, 1, []Triplet[float64]{{Row: 0, Col: 0, Value: 1.0000001}})
	require.NoError(t, err)
	assert.True(t, dbl.IsBinary(1e-5))
	assert.False(t, dbl.IsBinary(1e-9))
}
