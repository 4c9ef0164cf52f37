// Package bfs computes single-source shortest-path distances (in edge
// count) over a csr.Graph, in a sequential reference form and a
// level-synchronous parallel form.
//
// Both forms return identical Result.Dist vectors for the same (graph,
// source) pair; only the discoverer of a given vertex — which worker's
// CAS won the race — is allowed to vary between runs of the parallel form.
package bfs
