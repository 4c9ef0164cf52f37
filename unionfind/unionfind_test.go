package unionfind_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/csrkernel/unionfind"
	"github.com/stretchr/testify/assert"
)

func TestUnionFind_SingletonsDisjoint(t *testing.T) {
	uf := unionfind.New(5)
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, uf.Find(i))
	}
	assert.False(t, uf.Connected(0, 1))
}

func TestUnionFind_UnionMergesAndIsIdempotent(t *testing.T) {
	uf := unionfind.New(4)
	uf.Union(0, 1)
	uf.Union(1, 2)
	assert.True(t, uf.Connected(0, 2))
	assert.False(t, uf.Connected(0, 3))

	root := uf.Find(0)
	uf.Union(0, 2) // already connected: no-op
	assert.Equal(t, root, uf.Find(0))
}

func TestUnionFind_SelfUnionNoOp(t *testing.T) {
	uf := unionfind.New(1)
	uf.Union(0, 0)
	assert.Equal(t, 0, uf.Find(0))
}

func TestUnionFind_ChainCollapsesUnderPathHalving(t *testing.T) {
	uf := unionfind.New(6)
	for i := 0; i < 5; i++ {
		uf.Union(i, i+1)
	}
	root := uf.Find(0)
	for i := 1; i < 6; i++ {
		assert.Equal(t, root, uf.Find(i))
	}
}

func TestUnionFind_ConcurrentUnionsConverge(t *testing.T) {
	const n = 2000
	uf := unionfind.New(n)

	var wg sync.WaitGroup
	workers := 8
	chunk := (n - 1 + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n-1 {
			hi = n - 1
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				uf.Union(i, i+1)
			}
		}(lo, hi)
	}
	wg.Wait()

	root := uf.Find(0)
	for i := 1; i < n; i++ {
		assert.Equal(t, root, uf.Find(i), "vertex %d should share the single component", i)
	}
}
