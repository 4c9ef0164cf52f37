package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/csrkernel/wcc"
)

// WriteWCC writes res.Comp as V lines "v c", one per vertex in ascending
// index order, where c is the representative of v's component.
func WriteWCC(w io.Writer, res *wcc.Result) error {
	bw := bufio.NewWriter(w)
	for v, c := range res.Comp {
		if _, err := fmt.Fprintf(bw, "%d %d\n", v, c); err != nil {
			return fmt.Errorf("report: write wcc line: %w", err)
		}
	}
	return bw.Flush()
}

// WriteWCCStats writes the component-size histogram companion report:
// one line per component as "representative size", sorted by size
// descending (ties by representative ascending), followed by a summary
// line "components=N largest=M".
func WriteWCCStats(w io.Writer, res *wcc.Result) error {
	hist := res.Histogram()

	bw := bufio.NewWriter(w)
	for _, h := range hist {
		if _, err := fmt.Fprintf(bw, "%d %d\n", h.Representative, h.Size); err != nil {
			return fmt.Errorf("report: write wcc stats line: %w", err)
		}
	}

	var largest int
	if len(hist) > 0 {
		largest = hist[0].Size
	}
	if _, err := fmt.Fprintf(bw, "components=%d largest=%d\n", len(hist), largest); err != nil {
		return fmt.Errorf("report: write wcc stats summary: %w", err)
	}
	return bw.Flush()
}
