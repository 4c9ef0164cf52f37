package genedge

import (
	"bufio"
	"fmt"
	"io"
)

const (
	methodPath  = "Path"
	methodCycle = "Cycle"
	methodStar  = "Star"

	minPathVertices  = 2
	minCycleVertices = 3
	minStarVertices  = 2
)

// Path writes a simple directed path 0 -> 1 -> ... -> (n-1), n-1 edges
// total, in ascending order.
func Path(w io.Writer, n int) error {
	if n < minPathVertices {
		return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathVertices, ErrTooFewVertices)
	}

	bw := bufio.NewWriter(w)
	for i := 1; i < n; i++ {
		if _, err := fmt.Fprintf(bw, "%d %d\n", i-1, i); err != nil {
			return fmt.Errorf("%s: write: %w", methodPath, err)
		}
	}
	return bw.Flush()
}

// Cycle writes a simple directed cycle 0 -> 1 -> ... -> (n-1) -> 0, n edges
// total, in ascending order.
func Cycle(w io.Writer, n int) error {
	if n < minCycleVertices {
		return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleVertices, ErrTooFewVertices)
	}

	bw := bufio.NewWriter(w)
	for i := 0; i < n; i++ {
		if _, err := fmt.Fprintf(bw, "%d %d\n", i, (i+1)%n); err != nil {
			return fmt.Errorf("%s: write: %w", methodCycle, err)
		}
	}
	return bw.Flush()
}

// Star writes a star topology with hub vertex 0 and n-1 leaves 1..n-1:
// n-1 spokes, each hub -> leaf, in ascending leaf order.
func Star(w io.Writer, n int) error {
	if n < minStarVertices {
		return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarVertices, ErrTooFewVertices)
	}

	bw := bufio.NewWriter(w)
	for leaf := 1; leaf < n; leaf++ {
		if _, err := fmt.Fprintf(bw, "%d %d\n", 0, leaf); err != nil {
			return fmt.Errorf("%s: write: %w", methodStar, err)
		}
	}
	return bw.Flush()
}
