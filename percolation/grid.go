// SPDX-License-Identifier: MIT

package percolation

import "github.com/katalvlaran/percolation/unionfind"

// New builds an n×n grid with every site closed.
// The top row is pre-joined to the virtual top in both forests and the bottom
// row to the virtual bottom in the percolation forest only.
// Returns ErrInvalidSize if n < 1.
// Complexity: O(n²) time and memory.
func New(n int) (*Grid, error) {
	if n < 1 {
		return nil, ErrInvalidSize
	}
	nodes := n*n + 2
	perc, err := unionfind.New(nodes)
	if err != nil {
		return nil, err
	}
	full, err := unionfind.New(nodes)
	if err != nil {
		return nil, err
	}

	g := &Grid{
		n:      n,
		bottom: n*n + 1,
		open:   make([]bool, nodes),
		perc:   perc,
		full:   full,
	}
	g.open[virtualTop] = true
	g.open[g.bottom] = true

	for col := 1; col <= n; col++ {
		top := g.index(1, col)
		g.join(virtualTop, top)
		_ = g.perc.Union(g.bottom, g.index(n, col))
	}

	return g, nil
}

// Size returns n, the side length of the grid.
func (g *Grid) Size() int {
	return g.n
}

// Open opens site (row, col) and joins it with every already-open orthogonal
// neighbour. Opening an open site is a no-op.
// Returns ErrRowOutOfRange or ErrColOutOfRange without touching the grid.
func (g *Grid) Open(row, col int) error {
	if err := g.validate(row, col); err != nil {
		return err
	}
	site := g.index(row, col)
	if g.open[site] {
		return nil
	}
	g.open[site] = true

	if col > 1 && g.open[site-1] {
		g.join(site, site-1)
	}
	if col < g.n && g.open[site+1] {
		g.join(site, site+1)
	}
	if row > 1 && g.open[site-g.n] {
		g.join(site, site-g.n)
	}
	if row < g.n && g.open[site+g.n] {
		g.join(site, site+g.n)
	}
	g.opened++

	return nil
}

// IsOpen reports whether site (row, col) is open.
func (g *Grid) IsOpen(row, col int) (bool, error) {
	if err := g.validate(row, col); err != nil {
		return false, err
	}

	return g.open[g.index(row, col)], nil
}

// IsFull reports whether site (row, col) is open and connected to the top row
// through open sites. Bottom-row connectivity never leaks into this answer.
func (g *Grid) IsFull(row, col int) (bool, error) {
	if err := g.validate(row, col); err != nil {
		return false, err
	}
	site := g.index(row, col)
	if !g.open[site] {
		return false, nil
	}
	root, _ := g.full.Find(site)
	top, _ := g.full.Find(virtualTop)

	return root == top, nil
}

// NumberOfOpenSites returns how many sites have been opened.
// Complexity: O(1).
func (g *Grid) NumberOfOpenSites() int {
	return g.opened
}

// OpenFraction returns NumberOfOpenSites / n².
func (g *Grid) OpenFraction() float64 {
	return float64(g.opened) / float64(g.n*g.n)
}

// Percolates reports whether an open path connects the top row to the bottom row.
func (g *Grid) Percolates() bool {
	// 1×1: top and bottom row are the same site, pre-joined to both sentinels.
	if g.n == 1 {
		return g.open[g.index(1, 1)]
	}
	ok, _ := g.perc.Connected(virtualTop, g.bottom)

	return ok
}

// Snapshot returns a copy of the open flags as rows[row-1][col-1].
// Complexity: O(n²) time and memory.
func (g *Grid) Snapshot() [][]bool {
	rows := make([][]bool, g.n)
	for r := 0; r < g.n; r++ {
		base := r*g.n + 1
		rows[r] = make([]bool, g.n)
		copy(rows[r], g.open[base:base+g.n])
	}

	return rows
}

// index maps a validated (row, col) to its linear site index in [1, n²].
func (g *Grid) index(row, col int) int {
	return (row-1)*g.n + col
}

func (g *Grid) validate(row, col int) error {
	if row < 1 || row > g.n {
		return ErrRowOutOfRange
	}
	if col < 1 || col > g.n {
		return ErrColOutOfRange
	}

	return nil
}

// join unions p and q in both forests. Indices are always in range here.
func (g *Grid) join(p, q int) {
	_ = g.perc.Union(p, q)
	_ = g.full.Union(p, q)
}
