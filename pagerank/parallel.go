package pagerank

import (
	"github.com/katalvlaran/csrkernel/csr"
	"github.com/katalvlaran/csrkernel/workerpool"
)

const smallGraphThreshold = 10_000

// Parallel runs PageRank with the push variant: each iteration, the vertex
// range is partitioned across threads workers for the push phase. Rather
// than contending on a single shared contrib array with atomic
// floating-point adds — costly and, since float addition is not
// associative, a source of run-to-run nondeterminism — each worker
// accumulates into its own thread-local contrib vector (and its own
// dangling-mass partial), and workerpool.Reduce sums the partials
// element-wise on a single thread at the end of the phase.
//
// If V is below the small-graph threshold or threads <= 1, Parallel
// delegates to Sequential.
func Parallel(g *csr.Graph, threads int) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	if n == 0 {
		return &Result{Rank: nil}, nil
	}
	if n < smallGraphThreshold || threads <= 1 {
		return Sequential(g)
	}

	rank := uniformRank(n)
	pool := workerpool.New(threads)

	var iterations int
	var delta float64
	for iterations = 1; iterations <= MaxIterations; iterations++ {
		contrib, dangling := pushPhase(pool, g, rank, n)
		delta = applyDamping(rank, contrib, dangling, n)
		if delta < Epsilon {
			break
		}
	}
	if iterations > MaxIterations {
		iterations = MaxIterations
	}

	return &Result{Rank: rank, Iterations: iterations, FinalDelta: delta}, nil
}

// contribPartial bundles one worker's thread-local contribution vector
// alongside the dangling mass it observed in its vertex slice.
type contribPartial struct {
	contrib  []float64
	dangling float64
}

// pushPhase runs one push iteration over [0, n) partitioned across pool's
// workers, returning the combined contrib vector and total dangling mass.
func pushPhase(pool workerpool.Pool, g *csr.Graph, rank []float64, n int) ([]float64, float64) {
	result := workerpool.Reduce(pool, n,
		func(lo, hi int) contribPartial {
			local := make([]float64, n)
			var dangling float64
			for v := lo; v < hi; v++ {
				deg := g.OutDegree(v)
				if deg == 0 {
					dangling += rank[v]
					continue
				}
				share := rank[v] / float64(deg)
				for _, w := range g.Neighbors(v) {
					local[w] += share
				}
			}
			return contribPartial{contrib: local, dangling: dangling}
		},
		func(acc, partial contribPartial) contribPartial {
			if acc.contrib == nil {
				acc.contrib = make([]float64, n)
			}
			for i, v := range partial.contrib {
				acc.contrib[i] += v
			}
			acc.dangling += partial.dangling
			return acc
		},
		contribPartial{},
	)
	if result.contrib == nil {
		result.contrib = make([]float64, n)
	}
	return result.contrib, result.dangling
}
