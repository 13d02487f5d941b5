// Package fenwick provides a 1-indexed binary indexed tree over int64 values
// with O(log N) point updates and prefix sums.
package fenwick

// Tree is a Fenwick tree over positions 1..n.
type Tree struct {
	data []int64
}

// New creates a tree over positions 1..n, all zero.
func New(n int) *Tree {
	return &Tree{data: make([]int64, n+1)}
}

// Len returns the number of positions.
func (t *Tree) Len() int {
	return len(t.data) - 1
}

// Add adds delta at idx. Indices past Len are ignored, which lets difference
// updates write their closing entry at n+1 unconditionally.
func (t *Tree) Add(idx int, delta int64) {
	for ; idx > 0 && idx < len(t.data); idx += idx & -idx {
		t.data[idx] += delta
	}
}

// PrefixSum returns the sum of positions 1..idx. idx is clamped to [0, Len].
func (t *Tree) PrefixSum(idx int) int64 {
	if idx >= len(t.data) {
		idx = len(t.data) - 1
	}

	var sum int64

	for ; idx > 0; idx -= idx & -idx {
		sum += t.data[idx]
	}

	return sum
}

// RangeSum returns the sum of positions lo..hi.
func (t *Tree) RangeSum(lo, hi int) int64 {
	if lo > hi {
		return 0
	}

	return t.PrefixSum(hi) - t.PrefixSum(lo-1)
}

// Reset zeroes every position.
func (t *Tree) Reset() {
	clear(t.data)
}
