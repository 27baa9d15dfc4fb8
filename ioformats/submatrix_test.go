package ioformats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSubmatrixParsesIndices(t *testing.T) {
	s, err := ReadSubmatrix(strings.NewReader("2 1 5 5\n1 3\n2\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, s.Rows)
	assert.Equal(t, []int{1}, s.Columns)
}

func TestReadSubmatrixRejectsOutOfRangeIndex(t *testing.T) {
	_, err := ReadSubmatrix(strings.NewReader("1 0 2 2\n3\n"))
	require.ErrorIs(t, err, ErrMalformed)
}

func TestWriteSubmatrixRoundTrips(t *testing.T) {
	s, err := ReadSubmatrix(strings.NewReader("2 1 5 5\n1 3\n2\n"))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, WriteSubmatrix(&buf, s, 5, 5))
	got, err := ReadSubmatrix(&buf)
	require.NoError(t, err)
	assert.Equal(t, s.Rows, got.Rows)
	assert.Equal(t, s.Columns, got.Columns)
}
