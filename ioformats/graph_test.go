package ioformats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadEdgeListParsesRowAndColumnTags(t *testing.T) {
	el, err := ReadEdgeList(strings.NewReader("a b r1\nb c c1\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, el.Graph.NumNodes())
	assert.Equal(t, 2, el.Graph.NumEdges())
}

func TestReadEdgeListParsesBareIntegerTags(t *testing.T) {
	el, err := ReadEdgeList(strings.NewReader("x y 2\nx y -3\n"))
	require.NoError(t, err)
	tags := make([]string, 0, 2)
	for _, a := range el.Graph.Edges() {
		tags = append(tags, el.Tags[a].String())
	}
	assert.ElementsMatch(t, []string{"c2", "r3"}, tags)
}

func TestReadEdgeListRejectsMalformedLine(t *testing.T) {
	_, err := ReadEdgeList(strings.NewReader("only two tokens here\n"))
	require.ErrorIs(t, err, ErrMalformed)
}

func TestWriteEdgeListRoundTrips(t *testing.T) {
	el, err := ReadEdgeList(strings.NewReader("a b r1\nb c c2\n"))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, WriteEdgeList(&buf, el))
	got, err := ReadEdgeList(&buf)
	require.NoError(t, err)
	assert.Equal(t, el.Graph.NumNodes(), got.Graph.NumNodes())
	assert.Equal(t, el.Graph.NumEdges(), got.Graph.NumEdges())
}

func TestWriteDOTEmitsGraphvizSyntax(t *testing.T) {
	el, err := ReadEdgeList(strings.NewReader("a b r1\n"))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, WriteDOT(&buf, el))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "graph G {\n"))
	assert.Contains(t, out, "--")
	assert.Contains(t, out, "label=\"r1\"")
}
