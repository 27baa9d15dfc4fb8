package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDenseBitsGetSetFlip(t *testing.T) {
	d, err := NewDenseBits(3, 3)
	require.NoError(t, err)
	assert.False(t, d.Get(1, 1))
	d.Set1(1, 1)
	assert.True(t, d.Get(1, 1))
	d.Flip(1, 1)
	assert.False(t, d.Get(1, 1))
	d.Set1(0, 0)
	d.Set0(0, 0)
	assert.False(t, d.Get(0, 0))
}

func TestDenseBitsPivotPreservesBaseRowCol(t *testing.T) {
	d, err := NewDenseBits(3, 3)
	require.NoError(t, err)
	// all-ones matrix
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			d.Set1(r, c)
		}
	}
	d.Pivot(0, 0)
	for c := 0; c < 3; c++ {
		assert.True(t, d.Get(0, c), "base row must be preserved")
	}
	for r := 0; r < 3; r++ {
		assert.True(t, d.Get(r, 0), "base column must be preserved")
	}
	// off-base entries should have flipped from 1 to 0
	assert.False(t, d.Get(1, 1))
	assert.False(t, d.Get(2, 2))
}

func TestFromMatrix(t *testing.T) {
	m, err := FromTriplets[int8](2, 2, []Triplet[int8]{{Row: 0, Col: 1, Value: -1}})
	require.NoError(t, err)
	d, err := FromMatrix(m)
	require.NoError(t, err)
	assert.True(t, d.Get(0, 1))
	assert.False(t, d.Get(0, 0))
}
