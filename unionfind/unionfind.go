// SPDX-License-Identifier: MIT

package unionfind

// New returns a forest of n singleton sets {0}, {1}, ..., {n-1}.
// Returns ErrInvalidSize if n < 1.
// Complexity: O(n) time and memory.
func New(n int) (*UF, error) {
	if n < 1 {
		return nil, ErrInvalidSize
	}
	uf := &UF{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf, nil
}

// Len reports the number of elements in the forest.
func (uf *UF) Len() int {
	return len(uf.parent)
}

// Count reports the number of disjoint sets.
func (uf *UF) Count() int {
	return uf.count
}

// Find returns the root of the set containing p.
// Complexity: amortized O(α(n)).
func (uf *UF) Find(p int) (int, error) {
	if !uf.valid(p) {
		return 0, ErrOutOfRange
	}

	return uf.find(p), nil
}

// Connected reports whether p and q belong to the same set.
func (uf *UF) Connected(p, q int) (bool, error) {
	if !uf.valid(p) || !uf.valid(q) {
		return false, ErrOutOfRange
	}

	return uf.find(p) == uf.find(q), nil
}

// Union merges the sets containing p and q. Merging two elements that are
// already connected is a no-op.
// Complexity: amortized O(α(n)).
func (uf *UF) Union(p, q int) error {
	if !uf.valid(p) || !uf.valid(q) {
		return ErrOutOfRange
	}
	uf.union(p, q)

	return nil
}

func (uf *UF) valid(p int) bool {
	return p >= 0 && p < len(uf.parent)
}

// find walks to the root, pointing every other node at its grandparent.
// Callers must have validated p.
func (uf *UF) find(p int) int {
	for uf.parent[p] != p {
		uf.parent[p] = uf.parent[uf.parent[p]]
		p = uf.parent[p]
	}

	return p
}

// union links the smaller tree under the larger root. Callers must have
// validated p and q.
func (uf *UF) union(p, q int) {
	rootP, rootQ := uf.find(p), uf.find(q)
	if rootP == rootQ {
		return
	}
	if uf.size[rootP] < uf.size[rootQ] {
		rootP, rootQ = rootQ, rootP
	}
	uf.parent[rootQ] = rootP
	uf.size[rootP] += uf.size[rootQ]
	uf.count--
}
