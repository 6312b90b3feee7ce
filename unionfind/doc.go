// SPDX-License-Identifier: MIT

// Package unionfind provides a flat, array-backed disjoint-set (union-find)
// forest over the integer elements 0..n-1.
//
// What:
//
//   - UF keeps a parent slice and a size slice; no per-node allocations.
//   - Union attaches the smaller tree under the larger root (weighted quick-union).
//   - Find halves the path on every walk, so trees stay nearly flat.
//
// Why:
//
//   - Incremental connectivity: "are p and q connected?" after each merge,
//     without re-scanning the whole structure.
//   - Building block for grid models with sentinel nodes (see package percolation).
//
// Complexity:
//
//   - New:               O(n) time and memory.
//   - Find/Union/Connected: amortized O(α(n)), effectively constant.
//
// Errors:
//
//   - ErrInvalidSize: n < 1 on construction.
//   - ErrOutOfRange:  element index outside [0, n).
package unionfind
