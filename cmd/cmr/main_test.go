package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestRunTUOnTrivialMatrixExitsZero(t *testing.T) {
	path := writeTempFile(t, "1 1\n1\n")
	code := run([]string{"tu", path})
	assert.Equal(t, 0, code)
}

func TestRunRegularOnIdentityExitsZero(t *testing.T) {
	path := writeTempFile(t, "2 2\n1 0\n0 1\n")
	code := run([]string{"regular", path})
	assert.Equal(t, 0, code)
}

func TestRunUnknownSubcommandExitsOne(t *testing.T) {
	code := run([]string{"bogus"})
	assert.Equal(t, 1, code)
}

func TestRunMissingFileExitsOne(t *testing.T) {
	code := run([]string{"tu", "/nonexistent/path/does/not/exist"})
	assert.Equal(t, 1, code)
}

func TestRunWithNoArgsExitsOne(t *testing.T) {
	code := run(nil)
	assert.Equal(t, 1, code)
}

func TestRunTUWritesViolatorSubmatrixOnNegativeAnswer(t *testing.T) {
	// det([[1,1],[1,-1]]) = -2: genuinely not totally unimodular, so -c
	// -N should produce a nonempty violator submatrix file.
	in := writeTempFile(t, "2 2\n1 1\n1 -1\n")
	outPath := filepath.Join(filepath.Dir(in), "violator.txt")
	code := run([]string{"tu", "-c", "-N", outPath, in})
	assert.Equal(t, 0, code)
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
