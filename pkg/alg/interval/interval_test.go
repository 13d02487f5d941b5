package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test constants.
const (
	testLow10    = 10
	testHigh20   = 20
	testLow15    = 15
	testHigh25   = 25
	testLow30    = 30
	testHigh40   = 40
	testLow5     = 5
	testHigh35   = 35
	testPoint12  = 12
	testPoint50  = 50
	testCount100 = 100
)

// TestNew verifies empty tree creation.
func TestNew(t *testing.T) {
	t.Parallel()

	tree := New()
	assert.NotNil(t, tree)
	assert.Equal(t, 0, tree.Len())
	assert.Nil(t, tree.QueryOverlap(testLow10, testHigh20))
}

// TestInsert_QueryOverlap verifies overlap matches on both sides of the query.
func TestInsert_QueryOverlap(t *testing.T) {
	t.Parallel()

	tree := New()
	tree.Insert(testLow10, testHigh20, 1)
	tree.Insert(testLow15, testHigh25, 2)
	tree.Insert(testLow30, testHigh40, 3)

	results := tree.QueryOverlap(testPoint12, 18)
	require.Len(t, results, 2)
	assert.Equal(t, Interval{Low: testLow10, High: testHigh20, Value: 1}, results[0])
	assert.Equal(t, Interval{Low: testLow15, High: testHigh25, Value: 2}, results[1])

	assert.Empty(t, tree.QueryOverlap(26, 29))
}

// TestQueryPoint_Boundaries verifies closed endpoints and adjacent intervals.
func TestQueryPoint_Boundaries(t *testing.T) {
	t.Parallel()

	tree := New()
	tree.Insert(testLow10, testHigh20, 1)
	tree.Insert(21, testHigh40, 2)
	tree.Insert(testLow15, testLow15, 3)

	assert.Len(t, tree.QueryPoint(testLow10), 1)
	assert.Len(t, tree.QueryPoint(testLow15), 2)

	results := tree.QueryPoint(21)
	require.Len(t, results, 1)
	assert.Equal(t, 2, results[0].Value)

	assert.Empty(t, tree.QueryPoint(testPoint50))
}

// TestDuplicates verifies identical intervals are all kept.
func TestDuplicates(t *testing.T) {
	t.Parallel()

	tree := New()
	tree.Insert(testLow10, testHigh20, 1)
	tree.Insert(testLow10, testHigh20, 2)

	assert.Equal(t, 2, tree.Len())
	assert.Len(t, tree.QueryPoint(testLow15), 2)
}

// TestClear verifies clear removes all intervals.
func TestClear(t *testing.T) {
	t.Parallel()

	tree := New()
	tree.Insert(testLow10, testHigh20, 1)
	tree.Insert(testLow5, testHigh35, 2)
	tree.Clear()

	assert.Equal(t, 0, tree.Len())
	assert.Empty(t, tree.QueryOverlap(0, testCount100))
}

// TestLargeScale verifies balance and pruning with sorted inserts.
func TestLargeScale(t *testing.T) {
	t.Parallel()

	const (
		intervalCount   = 10000
		intervalWidth   = 5
		intervalSpacing = 10
		// 2*log2(count+1) bounds a red-black tree's height.
		maxHeight       = 28
	)

	tree := New()
	for i := range intervalCount {
		low := i * intervalSpacing
		tree.Insert(low, low+intervalWidth, i)
	}

	assert.Equal(t, intervalCount, tree.Len())

	// [0,5], [10,15], ..., [990,995].
	assert.Len(t, tree.QueryOverlap(0, 995), testCount100)

	results := tree.QueryPoint(testPoint50 * intervalSpacing)
	require.Len(t, results, 1)
	assert.Equal(t, testPoint50, results[0].Value)

	assert.LessOrEqual(t, height(tree.root), maxHeight)
}

// TestMaxHighMaintenance verifies the root carries the widest High after rotations.
func TestMaxHighMaintenance(t *testing.T) {
	t.Parallel()

	tree := New()
	tree.Insert(1, 100, 1)
	tree.Insert(2, 3, 2)
	tree.Insert(4, 5, 3)
	tree.Insert(6, 7, 4)

	require.NotNil(t, tree.root)
	assert.Equal(t, 100, tree.root.maxHigh)
	assert.Len(t, tree.QueryPoint(99), 1)
}

// TestInterval_Contains verifies the closed-range check.
func TestInterval_Contains(t *testing.T) {
	t.Parallel()

	iv := Interval{Low: testLow10, High: testHigh20}
	assert.True(t, iv.Contains(testLow10))
	assert.True(t, iv.Contains(testHigh20))
	assert.False(t, iv.Contains(testHigh25))
}

func height(n *node) int {
	if n == nil {
		return 0
	}

	return 1 + max(height(n.left), height(n.right))
}
