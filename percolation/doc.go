// SPDX-License-Identifier: MIT

// Package percolation models an n×n grid of sites that open one at a time and
// answers, after every opening, whether an open path spans the grid from the
// top row to the bottom row.
//
// What:
//
//   - Grid addresses sites by 1-indexed (row, col); site (r,c) lives at linear
//     index (r-1)*n + c. Index 0 is a virtual top, index n²+1 a virtual bottom.
//   - Two union-find forests share that index space:
//     perc joins the virtual bottom to every bottom-row site and answers Percolates;
//     full never touches the virtual bottom and answers IsFull.
//
// Why two forests:
//
//	With a single forest, once the grid percolates every open bottom-row site
//	shares a root with the virtual top through the virtual bottom, so IsFull
//	would report sites that have no open path to the top ("backwash").
//	Keeping the virtual bottom out of the full forest removes that without any
//	extra per-query cost.
//
// Complexity:
//
//   - New:                  O(n²) time and memory.
//   - Open:                 amortized O(α(n²)), at most 4 neighbour unions per forest.
//   - IsOpen/NumberOfOpenSites: O(1).
//   - IsFull/Percolates:    amortized O(α(n²)).
//
// Errors:
//
//   - ErrInvalidSize:    n < 1.
//   - ErrRowOutOfRange:  row outside [1, n]; matches ErrOutOfRange.
//   - ErrColOutOfRange:  col outside [1, n]; matches ErrOutOfRange.
//
// A failed call never mutates the grid. A Grid is not safe for concurrent use.
package percolation
