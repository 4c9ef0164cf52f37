package bfs

import "errors"

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrSourceOutOfRange is returned when source is not a valid vertex of g.
	ErrSourceOutOfRange = errors.New("bfs: source out of range")
)

// Result holds the outcome of a BFS traversal: Dist[v] is the number of
// edges on a shortest directed path from the source to v, or -1 if v is
// unreachable. Dist[source] == 0.
type Result struct {
	Dist []int
}
