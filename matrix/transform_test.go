package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallMatrix(t *testing.T) *Matrix[int8] {
	t.Helper()
	m, err := FromTriplets[int8](2, 3, []Triplet[int8]{
		{Row: 0, Col: 0, Value: 1},
		{Row: 0, Col: 2, Value: -1},
		{Row: 1, Col: 1, Value: 1},
	})
	require.NoError(t, err)
	return m
}

func TestTransposeInvolution(t *testing.T) {
	m := smallMatrix(t)
	tt := m.Transpose().Transpose()
	require.NoError(t, tt.ConsistencyCheck())
	assert.Equal(t, m.NumRows(), tt.NumRows())
	assert.Equal(t, m.NumColumns(), tt.NumColumns())
	for i := 0; i < m.NumRows(); i++ {
		for j := 0; j < m.NumColumns(); j++ {
			assert.Equal(t, m.At(i, j), tt.At(i, j))
		}
	}
}

func TestTransposeValues(t *testing.T) {
	m := smallMatrix(t)
	tr := m.Transpose()
	assert.Equal(t, 3, tr.NumRows())
	assert.Equal(t, 2, tr.NumColumns())
	assert.EqualValues(t, 1, tr.At(0, 0))
	assert.EqualValues(t, -1, tr.At(2, 0))
	assert.EqualValues(t, 1, tr.At(1, 1))
}

func TestPermuteSupportMatchesPermutedSupport(t *testing.T) {
	m := smallMatrix(t)
	rowMap := []int{1, 0}
	colMap := []int{2, 0, 1}
	pm, err := m.Permute(rowMap, colMap)
	require.NoError(t, err)

	supportOfPermuted := pm.Support()
	permutedSupport, err := m.Support().Permute(rowMap, colMap)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, permutedSupport.At(i, j), supportOfPermuted.At(i, j))
		}
	}
}

func TestSliceEntryByEntry(t *testing.T) {
	m := smallMatrix(t)
	s := &Submatrix{Rows: []int{1, 0}, Columns: []int{2, 1}}
	sl, err := m.Slice(s)
	require.NoError(t, err)
	require.NoError(t, sl.ConsistencyCheck())
	for newR, oldR := range s.Rows {
		for newC, oldC := range s.Columns {
			assert.Equal(t, m.At(oldR, oldC), sl.At(newR, newC))
		}
	}
}

func TestFindEntryStructuralZero(t *testing.T) {
	m := smallMatrix(t)
	_, ok := m.FindEntry(0, 1)
	assert.False(t, ok)
	idx, ok := m.FindEntry(0, 0)
	assert.True(t, ok)
	assert.EqualValues(t, 1, m.Values()[idx])
}
