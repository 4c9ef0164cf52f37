package loader_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/katalvlaran/csrkernel/csr"
	"github.com/katalvlaran/csrkernel/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Triangle(t *testing.T) {
	g, err := loader.Load(strings.NewReader("0 1\n1 2\n2 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
}

func TestLoad_CommentsAndBlankLines(t *testing.T) {
	g, err := loader.Load(strings.NewReader("// header\n0 1\n\n1 2\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, []int{1}, g.Neighbors(0))
	assert.Equal(t, []int{2}, g.Neighbors(1))
}

func TestLoad_SparseIDsInferVertexCount(t *testing.T) {
	g, err := loader.Load(strings.NewReader("0 5\n"))
	require.NoError(t, err)
	assert.Equal(t, 6, g.VertexCount())
}

func TestLoad_EmptyInput(t *testing.T) {
	g, err := loader.Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, g.VertexCount())
}

func TestLoad_MalformedLine(t *testing.T) {
	_, err := loader.Load(strings.NewReader("0 1\nbananas\n"))
	assert.ErrorIs(t, err, loader.ErrMalformedLine)
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoad_TooFewTokens(t *testing.T) {
	_, err := loader.Load(strings.NewReader("0\n"))
	assert.ErrorIs(t, err, loader.ErrMalformedLine)
}

func TestLoad_NegativeID(t *testing.T) {
	_, err := loader.Load(strings.NewReader("0 -1\n"))
	assert.ErrorIs(t, err, loader.ErrNegativeID)
}

func TestLoad_RoundTripWithWriter(t *testing.T) {
	edges := []csr.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 0}, {From: 0, To: 0}}
	var sb strings.Builder
	for _, e := range edges {
		fmt.Fprintf(&sb, "%d %d\n", e.From, e.To)
	}

	want, err := csr.NewFromEdges(3, edges)
	require.NoError(t, err)
	got, err := loader.Load(strings.NewReader(sb.String()))
	require.NoError(t, err)

	assert.Equal(t, want.VertexCount(), got.VertexCount())
	assert.Equal(t, want.EdgeCount(), got.EdgeCount())
	for v := 0; v < want.VertexCount(); v++ {
		assert.Equal(t, want.Neighbors(v), got.Neighbors(v))
	}
}
