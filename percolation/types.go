// SPDX-License-Identifier: MIT

package percolation

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/percolation/unionfind"
)

// Sentinel errors for percolation operations.
var (
	// ErrInvalidSize indicates a grid was requested with n < 1.
	ErrInvalidSize = errors.New("percolation: grid size must be >= 1")
	// ErrOutOfRange is matched by both coordinate errors below.
	ErrOutOfRange = errors.New("percolation: site out of range")
	// ErrRowOutOfRange indicates row outside [1, n].
	ErrRowOutOfRange = fmt.Errorf("%w: row", ErrOutOfRange)
	// ErrColOutOfRange indicates col outside [1, n].
	ErrColOutOfRange = fmt.Errorf("%w: col", ErrOutOfRange)
)

// virtualTop is the sentinel joined to every top-row site in both forests.
const virtualTop = 0

// Grid is an n×n percolation system.
//
// open has n²+2 entries; open[virtualTop] and open[bottom] are always true.
// Sites only ever go from closed to open.
type Grid struct {
	n      int
	bottom int // virtual bottom index, n²+1
	open   []bool
	opened int

	perc *unionfind.UF // includes the virtual bottom
	full *unionfind.UF // excludes the virtual bottom
}
