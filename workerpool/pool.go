package workerpool

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Pool runs bounded fork-join work over a fixed worker count. It carries no
// other state and is safe to reuse across calls and across goroutines.
type Pool struct {
	workers int
}

// New returns a Pool with the given worker count. A count <= 1 collapses
// every Run to a single synchronous call, which is also the behavior
// callers get from the small-graph/single-thread fallback described in the
// concurrency model.
func New(workers int) Pool {
	if workers < 1 {
		workers = 1
	}
	return Pool{workers: workers}
}

// Workers returns the configured worker count.
func (p Pool) Workers() int {
	return p.workers
}

// Chunk splits n items into at most workers contiguous, roughly equal ranges
// [lo, hi) and returns them in order. Used by every kernel that partitions
// a frontier, an edge slice, or a vertex range across workers.
func Chunk(n, workers int) [][2]int {
	if workers < 1 {
		workers = 1
	}
	if n <= 0 {
		return nil
	}
	size := (n + workers - 1) / workers
	if size < 1 {
		size = 1
	}

	var ranges [][2]int
	for lo := 0; lo < n; lo += size {
		hi := lo + size
		if hi > n {
			hi = n
		}
		ranges = append(ranges, [2]int{lo, hi})
	}
	return ranges
}

// Run partitions [0, n) into p.Workers() contiguous chunks and invokes fn
// once per non-empty chunk in its own goroutine, blocking until every
// invocation has returned. This is the fork-join barrier: Run does not
// return until all workers have quiesced. The first non-nil error returned
// by any fn call is returned once all goroutines finish.
func (p Pool) Run(n int, fn func(lo, hi int) error) error {
	ranges := Chunk(n, p.workers)
	if len(ranges) == 0 {
		return nil
	}
	if len(ranges) == 1 {
		return fn(ranges[0][0], ranges[0][1])
	}

	g := new(errgroup.Group)
	for _, r := range ranges {
		lo, hi := r[0], r[1]
		g.Go(func() error {
			return fn(lo, hi)
		})
	}
	return g.Wait()
}

// RunContext is Run with cancellation: if ctx is cancelled, in-flight
// chunks still run to completion (kernels themselves are not
// interruptible, per the concurrency model), but fn may observe ctx.Err()
// and return early on its own.
func (p Pool) RunContext(ctx context.Context, n int, fn func(ctx context.Context, lo, hi int) error) error {
	ranges := Chunk(n, p.workers)
	if len(ranges) == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, r := range ranges {
		lo, hi := r[0], r[1]
		g.Go(func() error {
			return fn(gctx, lo, hi)
		})
	}
	return g.Wait()
}
