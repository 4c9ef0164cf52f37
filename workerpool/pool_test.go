package workerpool_test

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/csrkernel/workerpool"
	"github.com/stretchr/testify/assert"
)

func TestChunk_CoversEveryIndexExactlyOnce(t *testing.T) {
	ranges := workerpool.Chunk(17, 4)
	seen := make([]bool, 17)
	for _, r := range ranges {
		for i := r[0]; i < r[1]; i++ {
			assert.False(t, seen[i], "index %d covered twice", i)
			seen[i] = true
		}
	}
	for i, ok := range seen {
		assert.True(t, ok, "index %d never covered", i)
	}
}

func TestChunk_EmptyRange(t *testing.T) {
	assert.Nil(t, workerpool.Chunk(0, 4))
}

func TestPool_RunVisitsEveryIndex(t *testing.T) {
	pool := workerpool.New(4)
	var visited int64
	err := pool.Run(101, func(lo, hi int) error {
		atomic.AddInt64(&visited, int64(hi-lo))
		return nil
	})
	assert.NoError(t, err)
	assert.EqualValues(t, 101, visited)
}

func TestPool_RunPropagatesError(t *testing.T) {
	pool := workerpool.New(4)
	boom := errors.New("boom")
	err := pool.Run(10, func(lo, hi int) error {
		if lo == 0 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
}

func TestPool_SingleWorkerRunsSynchronously(t *testing.T) {
	pool := workerpool.New(1)
	order := 0
	_ = pool.Run(5, func(lo, hi int) error {
		order++
		return nil
	})
	assert.Equal(t, 1, order)
}
