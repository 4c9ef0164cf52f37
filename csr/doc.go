// Package csr defines the compressed-sparse-row Graph — the single shared,
// immutable representation every kernel in this module reads.
//
// A Graph owns two flat slices, Offsets and Edges: Offsets[v]..Offsets[v+1]
// bounds the slice of Edges holding v's out-neighbors, in insertion order.
// There is no reverse index unless a par-opt kernel asks for one, in which
// case Graph.Inverse builds and caches a second CSR lazily.
//
// Graphs are built once (by loader.Load, or by NewFromEdges directly) and never
// mutated afterward: every exported method is safe to call concurrently
// from any number of goroutines without external synchronization.
package csr
