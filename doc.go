// SPDX-License-Identifier: MIT

// Package percolation is your playground for site percolation on square
// grids: build an n×n system, open sites one by one, ask whether it
// percolates, and estimate the critical open fraction by Monte Carlo.
//
// Subpackages:
//
//	unionfind/               flat weighted quick-union forest with path halving
//	percolation/             Grid: Open, IsOpen, IsFull, Percolates (backwash-free)
//	stats/                   Monte Carlo driver: mean, stddev, 95% confidence interval
//	cmd/percolation-stats/   command-line front end
//
// Quick ASCII example (n=3, X = open):
//
//	X . .
//	X X .
//	. X .
//
// (1,1)→(2,1)→(2,2)→(3,2) is an open top-to-bottom path, so the system percolates.
//
//	go run github.com/katalvlaran/percolation/cmd/percolation-stats 200 100
package percolation
