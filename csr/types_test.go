package csr_test

import (
	"testing"

	"github.com/katalvlaran/csrkernel/csr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromEdges_Basic(t *testing.T) {
	g, err := csr.NewFromEdges(3, []csr.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 0}})
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, []int{1}, g.Neighbors(0))
	assert.Equal(t, []int{2}, g.Neighbors(1))
	assert.Equal(t, []int{0}, g.Neighbors(2))
}

func TestNewFromEdges_PreservesInsertionOrderWithinBucket(t *testing.T) {
	g, err := csr.NewFromEdges(3, []csr.Edge{
		{From: 0, To: 2}, {From: 0, To: 1}, {From: 0, To: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 1}, g.Neighbors(0))
	assert.Equal(t, 0, g.OutDegree(1))
	assert.Equal(t, 0, g.OutDegree(2))
}

func TestNewFromEdges_SelfLoopAndDuplicatesPreserved(t *testing.T) {
	g, err := csr.NewFromEdges(1, []csr.Edge{{From: 0, To: 0}, {From: 0, To: 0}})
	require.NoError(t, err)
	assert.Equal(t, 2, g.OutDegree(0))
	assert.Equal(t, []int{0, 0}, g.Neighbors(0))
}

func TestNewFromEdges_EmptyGraph(t *testing.T) {
	g, err := csr.NewFromEdges(0, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.False(t, g.HasVertex(0))
}

func TestNewFromEdges_Errors(t *testing.T) {
	_, err := csr.NewFromEdges(-1, nil)
	assert.ErrorIs(t, err, csr.ErrNegativeVertexCount)

	_, err = csr.NewFromEdges(2, []csr.Edge{{From: 0, To: 5}})
	assert.ErrorIs(t, err, csr.ErrEdgeOutOfRange)

	_, err = csr.NewFromEdges(2, []csr.Edge{{From: -1, To: 0}})
	assert.ErrorIs(t, err, csr.ErrEdgeOutOfRange)
}

func TestGraph_NilIsEmpty(t *testing.T) {
	var g *csr.Graph
	assert.Equal(t, 0, g.VertexCount())
}
