package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/csrkernel/bfs"
	"github.com/katalvlaran/csrkernel/csr"
)

// ExampleSequential_chain shows BFS distances on a simple 5-vertex chain.
func ExampleSequential_chain() {
	g, _ := csr.NewFromEdges(5, []csr.Edge{
		{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 4},
	})

	res, err := bfs.Sequential(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Dist)
	// Output:
	// [0 1 2 3 4]
}

// ExampleSequential_unreachable shows BFS from the far end of a chain: every
// other vertex is unreachable since the chain is directed one way.
func ExampleSequential_unreachable() {
	g, _ := csr.NewFromEdges(5, []csr.Edge{
		{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 4},
	})

	res, err := bfs.Sequential(g, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Dist)
	// Output:
	// [-1 -1 -1 -1 0]
}
