package csr

import (
	"errors"
	"sync"
)

// Sentinel errors for csr construction and lookups.
var (
	// ErrNegativeVertexCount indicates a caller asked for a graph with V < 0.
	ErrNegativeVertexCount = errors.New("csr: negative vertex count")

	// ErrEdgeOutOfRange indicates an edge endpoint lies outside [0, V).
	ErrEdgeOutOfRange = errors.New("csr: edge endpoint out of range")

	// ErrVertexOutOfRange indicates a query vertex lies outside [0, V).
	ErrVertexOutOfRange = errors.New("csr: vertex out of range")
)

// Edge is a single directed (u, v) pair, used only at construction time;
// the built Graph stores edges bucketed by source in flat slices, not as
// a slice of Edge.
type Edge struct {
	From int
	To   int
}

// Graph is an immutable directed graph in compressed-sparse-row form.
//
// Offsets has len(Offsets) == V+1; Offsets[V] == len(Edges). Edges[Offsets[v]:Offsets[v+1]]
// are v's out-neighbors in file/insertion order. Self-loops and duplicate
// edges are permitted and preserved verbatim.
type Graph struct {
	offsets []int
	edges   []int

	invOnce sync.Once
	inv     *Graph // cached reverse-edge CSR, built lazily by Inverse
}

// NewFromSortedBuckets builds a Graph directly from precomputed offsets and
// edges, trusting the caller's invariants (offsets monotonically
// non-decreasing, offsets[V] == len(edges), every edge in [0, V)). It is a
// low-level constructor for callers that have already bucketed their edges
// by source; loader.Load builds through NewFromEdges instead, and most
// callers should go through loader.Load.
func NewFromSortedBuckets(offsets, edges []int) *Graph {
	return &Graph{offsets: offsets, edges: edges}
}

// NewFromEdges builds a Graph from an unordered edge list and an explicit
// vertex count. Edges are bucketed by source vertex via counting sort,
// preserving the relative order of edges sharing a source. Returns
// ErrNegativeVertexCount or ErrEdgeOutOfRange on invalid input.
//
// Complexity: O(V+E) time and space.
func NewFromEdges(v int, edges []Edge) (*Graph, error) {
	if v < 0 {
		return nil, ErrNegativeVertexCount
	}
	for _, e := range edges {
		if e.From < 0 || e.From >= v || e.To < 0 || e.To >= v {
			return nil, ErrEdgeOutOfRange
		}
	}

	offsets := make([]int, v+1)
	for _, e := range edges {
		offsets[e.From+1]++
	}
	for i := 0; i < v; i++ {
		offsets[i+1] += offsets[i]
	}

	cursor := make([]int, v)
	copy(cursor, offsets[:v])
	flat := make([]int, len(edges))
	for _, e := range edges {
		flat[cursor[e.From]] = e.To
		cursor[e.From]++
	}

	return &Graph{offsets: offsets, edges: flat}, nil
}

// VertexCount returns V, the number of vertices 0..V-1.
func (g *Graph) VertexCount() int {
	if g == nil {
		return 0
	}
	return len(g.offsets) - 1
}

// EdgeCount returns E, the number of directed edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// OutDegree returns the number of out-neighbors of v.
// Panics if v is out of range; callers on a hot path should have already
// validated v via VertexCount.
func (g *Graph) OutDegree(v int) int {
	return g.offsets[v+1] - g.offsets[v]
}

// Neighbors returns v's out-neighbors as a slice view into the Graph's
// internal storage. The returned slice must not be mutated or retained
// past the Graph's lifetime assumptions (the Graph is immutable, but the
// slice aliases its backing array).
func (g *Graph) Neighbors(v int) []int {
	return g.edges[g.offsets[v]:g.offsets[v+1]]
}

// HasVertex reports whether v is a valid vertex index for g.
func (g *Graph) HasVertex(v int) bool {
	return v >= 0 && v < g.VertexCount()
}
