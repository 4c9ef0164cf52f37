// Package pagerank computes PageRank over a csr.Graph using the standard
// damping formulation with dangling-mass redistribution, in a sequential
// reference form, a parallel push form (thread-local contribution vectors
// reduced via workerpool.Reduce), and a parallel-optimized pull form that
// lazily builds and caches the graph's inverse CSR.
package pagerank
