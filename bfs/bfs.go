package bfs

import "github.com/katalvlaran/csrkernel/csr"

// Sequential runs standard breadth-first search on g from source using a
// FIFO queue: Dist is initialized to -1, Dist[source] is set to 0, and
// each dequeued vertex's unvisited out-neighbors are assigned one more
// than its own distance and enqueued.
//
// Returns ErrGraphNil for a nil graph, ErrSourceOutOfRange if source is not
// a valid vertex of g. V == 0 returns an empty Result with no error (there
// is no valid source to reject against).
//
// Complexity: O(V + E) time, O(V) space.
func Sequential(g *csr.Graph, source int) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	if n == 0 {
		return &Result{Dist: nil}, nil
	}
	if !g.HasVertex(source) {
		return nil, ErrSourceOutOfRange
	}

	dist := make([]int, n)
	for i := range dist {
		dist[i] = -1
	}
	dist[source] = 0

	queue := make([]int, 0, n)
	queue = append(queue, source)

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, w := range g.Neighbors(u) {
			if dist[w] == -1 {
				dist[w] = dist[u] + 1
				queue = append(queue, w)
			}
		}
	}

	return &Result{Dist: dist}, nil
}
