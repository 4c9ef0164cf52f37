package pagerank

import (
	"math"

	"github.com/katalvlaran/csrkernel/csr"
)

// Sequential runs PageRank with a single accumulator vector: one scan over
// vertices pushes contributions into contrib, a second scan applies
// damping and dangling-mass redistribution to produce the next rank
// vector. Terminates when the L-infinity delta between successive rank
// vectors falls below Epsilon or MaxIterations is reached.
func Sequential(g *csr.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	if n == 0 {
		return &Result{Rank: nil}, nil
	}

	rank := uniformRank(n)
	contrib := make([]float64, n)

	var iterations int
	var delta float64
	for iterations = 1; iterations <= MaxIterations; iterations++ {
		for i := range contrib {
			contrib[i] = 0
		}

		var dangling float64
		for v := 0; v < n; v++ {
			deg := g.OutDegree(v)
			if deg == 0 {
				dangling += rank[v]
				continue
			}
			share := rank[v] / float64(deg)
			for _, w := range g.Neighbors(v) {
				contrib[w] += share
			}
		}

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

// uniformRank returns the initial rank vector, 1/V at every vertex.
func uniformRank(n int) []float64 {
	rank := make([]float64, n)
	uniform := 1.0 / float64(n)
	for i := range rank {
		rank[i] = uniform
	}
	return rank
}

// applyDamping computes r_{t+1}[u] = (1-alpha)/V + alpha*(contrib[u] +
// dangling/V) in place over rank, and returns the L-infinity delta against
// the previous values.
func applyDamping(rank, contrib []float64, dangling float64, n int) float64 {
	base := (1 - Damping) / float64(n)
	danglingShare := Damping * dangling / float64(n)

	var maxDelta float64
	for u := range rank {
		next := base + Damping*contrib[u] + danglingShare
		if d := math.Abs(next - rank[u]); d > maxDelta {
			maxDelta = d
		}
		rank[u] = next
	}
	return maxDelta
}
