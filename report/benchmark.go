package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"
)

// BenchmarkRow is one run of a kernel/variant combination, destined for a
// row of the benchmark CSV.
type BenchmarkRow struct {
	Algorithm         string // "bfs", "wcc", or "pagerank"
	Variant           string // "seq", "par", or "par-opt"
	Threads           int
	Vertices          int
	Edges             int
	Millis            int64
	IterationsOrLevels int
}

var benchmarkHeader = []string{
	"algorithm", "variant", "threads", "vertices", "edges", "millis", "iterations_or_levels", "run_id",
}

// BenchmarkWriter writes benchmark rows as CSV, tagging every row with a
// fresh UUID so independent runs of the same (algorithm, variant, threads)
// combination can be told apart downstream.
type BenchmarkWriter struct {
	cw *csv.Writer
}

// NewBenchmarkWriter wraps w, writing the CSV header immediately.
func NewBenchmarkWriter(w io.Writer) (*BenchmarkWriter, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(benchmarkHeader); err != nil {
		return nil, fmt.Errorf("report: write benchmark header: %w", err)
	}
	return &BenchmarkWriter{cw: cw}, nil
}

// Write appends one row, flushing immediately so a crash mid-benchmark
// loses at most the in-flight row.
func (bw *BenchmarkWriter) Write(row BenchmarkRow) error {
	record := []string{
		row.Algorithm,
		row.Variant,
		strconv.Itoa(row.Threads),
		strconv.Itoa(row.Vertices),
		strconv.Itoa(row.Edges),
		strconv.FormatInt(row.Millis, 10),
		strconv.Itoa(row.IterationsOrLevels),
		uuid.NewString(),
	}
	if err := bw.cw.Write(record); err != nil {
		return fmt.Errorf("report: write benchmark row: %w", err)
	}
	bw.cw.Flush()
	return bw.cw.Error()
}
