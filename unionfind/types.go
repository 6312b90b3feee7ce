// SPDX-License-Identifier: MIT

package unionfind

import "errors"

// Sentinel errors for unionfind operations.
var (
	// ErrInvalidSize indicates a forest was requested with fewer than one element.
	ErrInvalidSize = errors.New("unionfind: size must be >= 1")
	// ErrOutOfRange indicates an element index outside [0, n).
	ErrOutOfRange = errors.New("unionfind: element index out of range")
)

// UF is a weighted quick-union forest with path halving.
// parent[i] == i marks a root; size[r] is only meaningful for roots.
// A UF is not safe for concurrent use.
type UF struct {
	parent []int
	size   []int
	count  int
}
