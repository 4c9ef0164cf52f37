// Package workerpool provides the one fork-join primitive every parallel
// kernel in this module dispatches through: a bounded Pool that partitions
// a range into contiguous chunks and runs one goroutine per chunk, a
// generic Reduce function for the thread-local-fold accumulation pattern, and a
// Frontier for level-synchronous BFS.
//
// Pool is a thin wrapper over golang.org/x/sync/errgroup.Group: Run blocks
// until every chunk's goroutine returns (or one returns an error, which is
// propagated after all goroutines finish), giving the full barrier the
// kernels' phase boundaries require.
package workerpool
