// Package genedge emits synthetic directed edge lists in the "u v" format
// loader.Load consumes, for benchmarking and test fixtures: Path, Cycle,
// Star, RandomSparse, and RandomRegularish topologies.
package genedge
