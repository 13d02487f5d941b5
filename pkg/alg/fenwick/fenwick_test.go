package fenwick

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test constants.
const (
	testSize  = 10
	testDelta = 3
)

// TestNew verifies an empty tree sums to zero.
func TestNew(t *testing.T) {
	t.Parallel()

	tree := New(testSize)
	assert.Equal(t, testSize, tree.Len())
	assert.Equal(t, int64(0), tree.PrefixSum(testSize))
}

// TestAdd_PrefixSum verifies prefix sums against a plain slice.
func TestAdd_PrefixSum(t *testing.T) {
	t.Parallel()

	tree := New(testSize)
	plain := make([]int64, testSize+1)

	for i := 1; i <= testSize; i++ {
		delta := int64(i*testDelta - testSize)
		tree.Add(i, delta)
		plain[i] += delta
	}

	var want int64

	for i := 1; i <= testSize; i++ {
		want += plain[i]
		assert.Equal(t, want, tree.PrefixSum(i), "idx=%d", i)
	}

	assert.Equal(t, plain[4]+plain[5]+plain[6], tree.RangeSum(4, 6))
	assert.Equal(t, int64(0), tree.RangeSum(6, 4))
}

// TestAdd_OutOfRange verifies writes past Len and at zero are dropped.
func TestAdd_OutOfRange(t *testing.T) {
	t.Parallel()

	tree := New(testSize)
	tree.Add(testSize+1, testDelta)
	tree.Add(0, testDelta)

	assert.Equal(t, int64(0), tree.PrefixSum(testSize))
	assert.Equal(t, int64(0), tree.PrefixSum(testSize+5))
}

// TestReset verifies Reset clears every position.
func TestReset(t *testing.T) {
	t.Parallel()

	tree := New(testSize)
	tree.Add(1, testDelta)
	tree.Reset()

	assert.Equal(t, int64(0), tree.PrefixSum(testSize))
}
