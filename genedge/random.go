package genedge

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
)

const (
	methodRandomSparse      = "RandomSparse"
	methodRandomRegularish  = "RandomRegularish"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
	maxStubMatchingAttempts = 3
)

// RandomSparse writes an Erdos-Renyi-style directed graph over n vertices:
// every ordered pair (i,j) with i != j is included independently with
// probability p, in stable i-ascending, j-ascending trial order so output
// is reproducible for a fixed rng seed.
func RandomSparse(w io.Writer, n int, p float64, rng *rand.Rand) error {
	if n < minRandomSparseVertices {
		return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
	}
	if p < probMin || p > probMax {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
	}
	if rng == nil && p > 0.0 && p < 1.0 {
		return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
	}

	bw := bufio.NewWriter(w)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			include := p == 1.0
			if rng != nil && p > 0.0 && p < 1.0 {
				include = rng.Float64() <= p
			}
			if !include {
				continue
			}
			if _, err := fmt.Fprintf(bw, "%d %d\n", i, j); err != nil {
				return fmt.Errorf("%s: write: %w", methodRandomSparse, err)
			}
		}
	}
	return bw.Flush()
}

// RandomRegularish writes an approximately d-regular directed graph over n
// vertices via stub-matching: n*d out-stubs and n*d in-stubs are each
// shuffled independently and paired positionally, with bounded retries to
// avoid self-loops and duplicate edges. "-ish" because, unlike the
// teacher's undirected stub-matching (which can reject a bad pairing
// outright), a directed pairing that still contains a loop or duplicate
// after the retry budget is emitted as-is rather than failing the whole
// generator — exact regularity is not a goal here, only realistic degree
// distribution for benchmarking.
func RandomRegularish(w io.Writer, n, d int, rng *rand.Rand) error {
	if n < 1 || d < 0 || d >= n {
		return fmt.Errorf("%s: n=%d, d=%d: %w", methodRandomRegularish, n, d, ErrInvalidDegree)
	}
	if rng == nil {
		return fmt.Errorf("%s: rng is required: %w", methodRandomRegularish, ErrNeedRandSource)
	}
	if d == 0 {
		return nil
	}

	out := make([]int, n*d)
	in := make([]int, n*d)
	for i, pos := 0, 0; i < n; i++ {
		for k := 0; k < d; k++ {
			out[pos] = i
			in[pos] = i
			pos++
		}
	}

	var edges [][2]int
	for attempt := 0; attempt < maxStubMatchingAttempts; attempt++ {
		rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
		rng.Shuffle(len(in), func(i, j int) { in[i], in[j] = in[j], in[i] })

		seen := make(map[[2]int]struct{}, len(out))
		valid := true
		candidate := make([][2]int, 0, len(out))
		for k := range out {
			u, v := out[k], in[k]
			key := [2]int{u, v}
			if _, dup := seen[key]; dup || u == v {
				valid = false
			}
			seen[key] = struct{}{}
			candidate = append(candidate, key)
		}
		if valid {
			edges = candidate
			break
		}
		edges = candidate // best effort if every attempt is exhausted
	}

	bw := bufio.NewWriter(w)
	for _, e := range edges {
		if _, err := fmt.Fprintf(bw, "%d %d\n", e[0], e[1]); err != nil {
			return fmt.Errorf("%s: write: %w", methodRandomRegularish, err)
		}
	}
	return bw.Flush()
}
