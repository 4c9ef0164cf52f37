// Package wcc computes weakly connected components of a csr.Graph: the
// partition induced by treating every directed edge as an undirected union
// request, in a sequential reference form and a lock-free parallel form
// built on unionfind.UnionFind.
package wcc
