package bfs

import (
	"sync/atomic"

	"github.com/katalvlaran/csrkernel/csr"
	"github.com/katalvlaran/csrkernel/workerpool"
)

// smallGraphThreshold is the vertex-count cutoff below which Parallel
// delegates to Sequential rather than paying fork-join overhead, per the
// automatic-fallback rule in the concurrency model.
const smallGraphThreshold = 10_000

// Parallel runs level-synchronous BFS on g from source using threads
// worker goroutines per level.
//
// Level l begins with a frontier F_l (initially {source}). Workers
// partition F_l and, for each u in their slice, scan u's out-neighbors;
// for each neighbor w, a single atomic compare-and-swap on dist[w] from -1
// to l+1 claims it, and on success it is appended to the worker's
// thread-local next-frontier buffer. After every worker finishes the
// level, the buffers are concatenated into F_{l+1}; the level-synchronous
// loop terminates when F_{l+1} is empty. Ordering within a level is
// unspecified; Dist itself is identical to Sequential's result regardless.
//
// If V is below the small-graph threshold or threads <= 1, Parallel
// delegates to Sequential.
func Parallel(g *csr.Graph, source, threads int) (*Result, error) {
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
	if n < smallGraphThreshold || threads <= 1 {
		return Sequential(g, source)
	}

	dist := make([]atomic.Int64, n)
	for i := range dist {
		dist[i].Store(-1)
	}
	dist[source].Store(0)

	pool := workerpool.New(threads)
	frontier := workerpool.NewFrontier([]int{source}, pool.Workers())
	level := 0

	for len(frontier.Current()) > 0 {
		nextLevel := int64(level + 1)
		current := frontier.Current()

		ranges := workerpool.Chunk(len(current), pool.Workers())
		_ = pool.Run(len(current), func(lo, hi int) error {
			worker := rangeWorkerID(ranges, lo)
			for _, u := range current[lo:hi] {
				for _, w := range g.Neighbors(u) {
					if dist[w].CompareAndSwap(-1, nextLevel) {
						frontier.Stage(worker, w)
					}
				}
			}
			return nil
		})

		frontier.Swap()
		level++
	}

	out := make([]int, n)
	for i := range out {
		out[i] = int(dist[i].Load())
	}
	return &Result{Dist: out}, nil
}

// rangeWorkerID returns the index of the chunk in ranges whose [lo, hi)
// starts at lo, matching Pool.Run's chunk-to-goroutine assignment so each
// worker writes only to its own Frontier staging buffer.
func rangeWorkerID(ranges [][2]int, lo int) int {
	for i, r := range ranges {
		if r[0] == lo {
			return i
		}
	}
	return 0
}
