package loader

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/csrkernel/csr"
)

// Load reads r to completion and builds a csr.Graph from the edges it
// describes. The vertex count is max observed node ID + 1 (0 if no edges).
//
// Algorithm: a single pass collects (u,v) pairs while tracking max_id, then
// delegates the offset/edge bucketing to csr.NewFromEdges. Returns a
// wrapped ErrMalformedLine or ErrNegativeID identifying the offending line,
// or any I/O error from r unchanged.
//
// Complexity: O(E) time, O(E) space for the temporary pair buffer.
func Load(r io.Reader) (*csr.Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var edges []csr.Edge
	maxID := -1
	line := 0

	for scanner.Scan() {
		line++
		text := scanner.Text()

		if idx := strings.Index(text, "//"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, parseErrorf(ErrMalformedLine, line, "expected 2 integers, got %d fields", len(fields))
		}

		u, err := parseNonNegative(fields[0])
		if err != nil {
			return nil, parseErrorf(err, line, "bad source %q", fields[0])
		}
		v, err := parseNonNegative(fields[1])
		if err != nil {
			return nil, parseErrorf(err, line, "bad destination %q", fields[1])
		}

		edges = append(edges, csr.Edge{From: u, To: v})
		if u > maxID {
			maxID = u
		}
		if v > maxID {
			maxID = v
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return csr.NewFromEdges(maxID+1, edges)
}

func parseNonNegative(tok string) (int, error) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, ErrMalformedLine
	}
	if n < 0 {
		return 0, ErrNegativeID
	}
	return n, nil
}
