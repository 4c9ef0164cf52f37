package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/csrkernel/bfs"
)

// WriteBFS writes res.Dist as V lines "v d", one per vertex in ascending
// index order.
func WriteBFS(w io.Writer, res *bfs.Result) error {
	bw := bufio.NewWriter(w)
	for v, d := range res.Dist {
		if _, err := fmt.Fprintf(bw, "%d %d\n", v, d); err != nil {
			return fmt.Errorf("report: write bfs line: %w", err)
		}
	}
	return bw.Flush()
}
