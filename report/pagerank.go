package report

import (
	"bufio"
	"fmt"
	"io"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/csrkernel/pagerank"
)

// rankFormat is the PageRank output line format; %.10g comfortably clears
// the 8-significant-digit floor while staying compact.
const rankFormat = "%d %.10g\n"

// WriteRank writes res.Rank as V lines "v r", one per vertex in ascending
// index order, r formatted to at least 8 significant digits.
func WriteRank(w io.Writer, res *pagerank.Result) error {
	bw := bufio.NewWriter(w)
	for v, r := range res.Rank {
		if _, err := fmt.Fprintf(bw, rankFormat, v, r); err != nil {
			return fmt.Errorf("report: write pagerank line: %w", err)
		}
	}
	return bw.Flush()
}

// rankEntry pairs a vertex with its rank for the top-N report.
type rankEntry struct {
	vertex int
	rank   float64
}

// WriteRankTop100 writes the top 100 vertices by rank, descending, as
// lines "v r". Fewer than 100 lines are written if V < 100.
func WriteRankTop100(w io.Writer, res *pagerank.Result) error {
	entries := make([]rankEntry, len(res.Rank))
	for v, r := range res.Rank {
		entries[v] = rankEntry{vertex: v, rank: r}
	}
	slices.SortFunc(entries, func(a, b rankEntry) int {
		switch {
		case a.rank > b.rank:
			return -1
		case a.rank < b.rank:
			return 1
		default:
			return a.vertex - b.vertex
		}
	})

	n := len(entries)
	if n > 100 {
		n = 100
	}

	bw := bufio.NewWriter(w)
	for _, e := range entries[:n] {
		if _, err := fmt.Fprintf(bw, rankFormat, e.vertex, e.rank); err != nil {
			return fmt.Errorf("report: write pagerank top100 line: %w", err)
		}
	}
	return bw.Flush()
}

// WriteRankStats writes a single summary line "sum=.. min=.. max=.. mean=.."
// over res.Rank.
func WriteRankStats(w io.Writer, res *pagerank.Result) error {
	if len(res.Rank) == 0 {
		_, err := fmt.Fprintln(w, "sum=0 min=0 max=0 mean=0")
		return err
	}

	var sum, min, max float64
	min, max = res.Rank[0], res.Rank[0]
	for _, r := range res.Rank {
		sum += r
		if r < min {
			min = r
		}
		if r > max {
			max = r
		}
	}
	mean := stat.Mean(res.Rank, nil)

	_, err := fmt.Fprintf(w, "sum=%.10g min=%.10g max=%.10g mean=%.10g\n", sum, min, max, mean)
	if err != nil {
		return fmt.Errorf("report: write pagerank stats: %w", err)
	}
	return nil
}
