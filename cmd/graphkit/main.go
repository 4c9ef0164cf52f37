// Command graphkit runs the BFS, WCC, and PageRank graph kernels against
// an edge-list input file from the command line.
package main

import "github.com/katalvlaran/csrkernel/cmd/graphkit/cmd"

func main() {
	cmd.Execute()
}
