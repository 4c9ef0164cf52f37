// Package unionfind implements a lock-free disjoint-set forest over dense
// vertex indices, suitable for concurrent Union calls from many goroutines.
//
// Parents are stored as an []atomic.Int64 indexed by vertex; Find applies
// path halving (each step repoints a node at its grandparent) and Union
// applies union-by-rank with a compare-and-swap retry loop. Only a root's
// parent pointer is ever mutated by Union, always by CAS from a self-parent
// value, so Find's concurrent path-halving writes never race with a Union
// that changes which tree a root belongs to.
package unionfind
