// Package report formats kernel results to the external interfaces
// described by the engine's output contract: per-vertex result lines for
// BFS/WCC/PageRank, companion _stats/_top100 summaries, and a benchmark
// CSV with one row per run.
package report
