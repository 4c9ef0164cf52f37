package wcc

import (
	"github.com/katalvlaran/csrkernel/csr"
	"github.com/katalvlaran/csrkernel/unionfind"
	"github.com/katalvlaran/csrkernel/workerpool"
)

// Sequential computes weakly connected components by iterating every edge
// once and issuing union(u,v), then mapping comp[v] = find(v) for every
// vertex.
//
// Complexity: O(V + E * alpha(V)) time, O(V) space.
func Sequential(g *csr.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	if n == 0 {
		return &Result{Comp: nil}, nil
	}

	uf := unionfind.New(n)
	for u := 0; u < n; u++ {
		for _, v := range g.Neighbors(u) {
			uf.Union(u, v)
		}
	}

	comp := make([]int, n)
	for v := 0; v < n; v++ {
		comp[v] = uf.Find(v)
	}
	return &Result{Comp: comp}, nil
}

// Parallel computes weakly connected components by partitioning the vertex
// range into threads contiguous slices and having each worker issue
// union(u,v) for every edge whose source falls in its slice, concurrently
// with the others. unionfind.UnionFind's Find/Union are lock-free, so no
// additional synchronization is needed across workers. A final pass maps
// comp[v] = find(v) in parallel over vertices.
//
// Component membership is deterministic; the representative vertex chosen
// for a component may differ across runs, since union-by-rank ties are
// broken by whichever concurrent Union call wins the root CAS.
func Parallel(g *csr.Graph, threads int) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	if n == 0 {
		return &Result{Comp: nil}, nil
	}
	if threads <= 1 {
		return Sequential(g)
	}

	uf := unionfind.New(n)
	pool := workerpool.New(threads)
	_ = pool.Run(n, func(lo, hi int) error {
		for u := lo; u < hi; u++ {
			for _, v := range g.Neighbors(u) {
				uf.Union(u, v)
			}
		}
		return nil
	})

	comp := make([]int, n)
	_ = pool.Run(n, func(lo, hi int) error {
		for v := lo; v < hi; v++ {
			comp[v] = uf.Find(v)
		}
		return nil
	})

	return &Result{Comp: comp}, nil
}
