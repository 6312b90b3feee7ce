// SPDX-License-Identifier: MIT

package percolation_test

import (
	"fmt"

	"github.com/katalvlaran/percolation/percolation"
)

// ExampleGrid walks a 2×2 grid from closed to percolating.
//
//	step 1: open (1,1)        X .
//	step 2: open (1,2)        X X   top row full, no path down
//	step 3: open (2,1)        X X
//	                          X .   percolates
func ExampleGrid() {
	g, _ := percolation.New(2)

	open, _ := g.IsOpen(1, 1)
	fmt.Println("(1,1) open:", open)

	_ = g.Open(1, 1)
	full, _ := g.IsFull(1, 1)
	fmt.Println("(1,1) full:", full)

	_ = g.Open(1, 2)
	fmt.Println("percolates:", g.Percolates())

	_ = g.Open(2, 1)
	full, _ = g.IsFull(2, 1)
	fmt.Println("(2,1) full:", full)
	fmt.Println("percolates:", g.Percolates())
	fmt.Println("open sites:", g.NumberOfOpenSites())

	// Output:
	// (1,1) open: false
	// (1,1) full: true
	// percolates: false
	// (2,1) full: true
	// percolates: true
	// open sites: 3
}

// ExampleGrid_Open_outOfRange shows the error for a coordinate off the grid.
func ExampleGrid_Open_outOfRange() {
	g, _ := percolation.New(3)
	fmt.Println(g.Open(4, 1))
	fmt.Println(g.Open(1, 0))

	// Output:
	// percolation: site out of range: row
	// percolation: site out of range: col
}
