package unionfind

import "sync/atomic"

// UnionFind is a disjoint-set forest over vertices 0..n-1. The zero value
// is not usable; construct with New.
type UnionFind struct {
	parent []atomic.Int64
	rank   []atomic.Uint32
}

// New returns a UnionFind over n singleton sets {0}, {1}, ..., {n-1}.
func New(n int) *UnionFind {
	uf := &UnionFind{
		parent: make([]atomic.Int64, n),
		rank:   make([]atomic.Uint32, n),
	}
	for i := range uf.parent {
		uf.parent[i].Store(int64(i))
	}
	return uf
}

// Find returns the representative (root) of x's set, applying path halving
// along the way: every visited non-root node is repointed at its
// grandparent using an atomic compare-and-swap.
//
// Safe to call concurrently with Find and Union on any vertices.
func (uf *UnionFind) Find(x int) int {
	for {
		p := uf.parent[x].Load()
		if p == int64(x) {
			return x
		}
		gp := uf.parent[p].Load()
		if gp != p {
			// Path halving: point x directly at its grandparent.
			uf.parent[x].CompareAndSwap(p, gp)
		}
		x = int(gp)
	}
}

// Union merges the sets containing a and b. It is a no-op if they are
// already in the same set. Ties in rank are broken by the smaller root
// index becoming the child, matching a deterministic (if arbitrary) choice
// independent of goroutine scheduling for any single-threaded caller; under
// concurrency the winner of the root-root race is whichever CAS succeeds
// first, which is why component representative identity is not guaranteed
// stable across runs.
//
// Safe to call concurrently with Find and Union on any vertices.
func (uf *UnionFind) Union(a, b int) {
	for {
		ra, rb := uf.Find(a), uf.Find(b)
		if ra == rb {
			return
		}

		rankA, rankB := uf.rank[ra].Load(), uf.rank[rb].Load()
		lo, hi := ra, rb
		tie := rankA == rankB
		switch {
		case rankA > rankB:
			lo, hi = rb, ra
		case rankA == rankB && ra > rb:
			lo, hi = rb, ra
		}

		if !uf.parent[lo].CompareAndSwap(int64(lo), int64(hi)) {
			continue // lost a race; retry from Find
		}
		if tie {
			uf.rank[hi].Add(1)
		}
		return
	}
}

// Connected reports whether a and b are in the same set.
func (uf *UnionFind) Connected(a, b int) bool {
	return uf.Find(a) == uf.Find(b)
}

// Len returns the number of vertices the forest was constructed over.
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}
