package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/csrkernel/csr"
	"github.com/katalvlaran/csrkernel/loader"
)

// loadGraph opens path and parses it into a csr.Graph via loader.Load.
func loadGraph(path string) (*csr.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	g, err := loader.Load(f)
	if err != nil {
		return nil, fmt.Errorf("parse input: %w", err)
	}
	return g, nil
}

// openOutput opens path for writing, or returns os.Stdout if path is empty.
// The returned io.WriteCloser is always safe to Close.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// companionPath derives a "_suffix" companion path from a base output
// path, inserting suffix before the file extension. An empty base (stdout)
// keeps the companion on stdout too; the two streams are interleaved but
// distinguishable by format.
func companionPath(base, suffix string) string {
	if base == "" {
		return ""
	}
	if ext := strings.LastIndex(base, "."); ext != -1 {
		return base[:ext] + suffix + base[ext:]
	}
	return base + suffix
}
