// Command life runs Conway's Game of Life on an unbounded grid.
package main

import "sparse-life/internal/cli"

func main() {
	cli.Execute()
}
