package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/csrkernel/bfs"
	"github.com/katalvlaran/csrkernel/pagerank"
	"github.com/katalvlaran/csrkernel/report"
	"github.com/katalvlaran/csrkernel/wcc"
)

func TestWriteBFS(t *testing.T) {
	var buf bytes.Buffer
	res := &bfs.Result{Dist: []int{0, 1, -1}}
	if err := report.WriteBFS(&buf, res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "0 0\n1 1\n2 -1\n"
	if buf.String() != want {
		t.Errorf("got %q; want %q", buf.String(), want)
	}
}

func TestWriteWCC(t *testing.T) {
	var buf bytes.Buffer
	res := &wcc.Result{Comp: []int{0, 0, 2, 2, 2}}
	if err := report.WriteWCC(&buf, res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "0 0\n1 0\n2 2\n3 2\n4 2\n"
	if buf.String() != want {
		t.Errorf("got %q; want %q", buf.String(), want)
	}
}

func TestWriteWCCStats(t *testing.T) {
	var buf bytes.Buffer
	res := &wcc.Result{Comp: []int{0, 0, 2, 2, 2}}
	if err := report.WriteWCCStats(&buf, res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "components=2") || !strings.Contains(out, "largest=3") {
		t.Errorf("stats summary missing expected fields: %q", out)
	}
	// largest component listed first
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if lines[0] != "2 3" {
		t.Errorf("first histogram line = %q; want %q", lines[0], "2 3")
	}
}

func TestWriteRankAndTop100(t *testing.T) {
	var buf bytes.Buffer
	res := &pagerank.Result{Rank: []float64{0.5, 0.2, 0.3}}
	if err := report.WriteRank(&buf, res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d; want 3", len(lines))
	}

	var topBuf bytes.Buffer
	if err := report.WriteRankTop100(&topBuf, res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	topLines := strings.Split(strings.TrimSpace(topBuf.String()), "\n")
	if !strings.HasPrefix(topLines[0], "0 ") {
		t.Errorf("first top100 line = %q; want to start with vertex 0 (highest rank)", topLines[0])
	}
}

func TestWriteRankStats(t *testing.T) {
	var buf bytes.Buffer
	res := &pagerank.Result{Rank: []float64{0.2, 0.3, 0.5}}
	if err := report.WriteRankStats(&buf, res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"sum=1", "min=0.2", "max=0.5"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats %q missing %q", out, want)
		}
	}
}

func TestBenchmarkWriter(t *testing.T) {
	var buf bytes.Buffer
	bw, err := report.NewBenchmarkWriter(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := bw.Write(report.BenchmarkRow{
		Algorithm: "bfs", Variant: "par", Threads: 4,
		Vertices: 100, Edges: 200, Millis: 12, IterationsOrLevels: 5,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d; want 2 (header + row)", len(lines))
	}
	if !strings.HasPrefix(lines[0], "algorithm,variant,threads") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "bfs,par,4,100,200,12,5,") {
		t.Errorf("row = %q", lines[1])
	}
}
