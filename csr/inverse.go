package csr

// Inverse returns a CSR graph over the reversed edges of g (an edge u->v in
// g becomes v->u in the result), building it on first call and caching the
// result for the lifetime of g. Concurrent first-callers block on the same
// sync.Once and see the same cached Graph; this is the only place a Graph
// acquires state after construction, and it is purely derived, read-only
// data — g itself is never mutated.
//
// Used by pagerank's par-opt variant to pull contributions from
// in-neighbors instead of pushing to out-neighbors.
func (g *Graph) Inverse() *Graph {
	g.invOnce.Do(func() {
		v := g.VertexCount()
		edges := make([]Edge, 0, g.EdgeCount())
		for u := 0; u < v; u++ {
			for _, w := range g.Neighbors(u) {
				edges = append(edges, Edge{From: w, To: u})
			}
		}
		// NewFromEdges cannot fail here: endpoints are already validated
		// members of [0, v) by construction of g.
		inv, _ := NewFromEdges(v, edges)
		g.inv = inv
	})

	return g.inv
}
