// Package interval provides an insert-only augmented interval tree over closed
// integer ranges. Each node records the largest High in its subtree, so
// overlap and point queries prune whole subtrees: O(log N) insert and
// O(log N + k) query for k results.
package interval

// Interval is a closed range [Low, High] carrying a caller-defined Value.
type Interval struct {
	Low   int
	High  int
	Value int
}

// Contains reports whether point lies in [Low, High].
func (iv Interval) Contains(point int) bool {
	return iv.Low <= point && point <= iv.High
}

// Tree is a red-black tree ordered by (Low, High) and augmented with maxHigh.
type Tree struct {
	root *node
	size int
}

type node struct {
	interval    Interval
	maxHigh     int
	left, right *node
	parent      *node
	red         bool
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{}
}

// Len returns the number of stored intervals.
func (t *Tree) Len() int {
	return t.size
}

// Clear removes every interval.
func (t *Tree) Clear() {
	t.root = nil
	t.size = 0
}

// Insert stores [low, high] with value. Duplicates are kept.
func (t *Tree) Insert(low, high, value int) {
	n := &node{
		interval: Interval{Low: low, High: high, Value: value},
		maxHigh:  high,
		red:      true,
	}

	t.attach(n)
	t.rebalance(n)
	t.size++
}

// QueryOverlap returns the intervals [a, b] with a <= high and b >= low, in
// (Low, High) order.
func (t *Tree) QueryOverlap(low, high int) []Interval {
	var results []Interval

	collect(t.root, low, high, &results)

	return results
}

// QueryPoint returns the intervals containing point.
func (t *Tree) QueryPoint(point int) []Interval {
	return t.QueryOverlap(point, point)
}

// attach performs the plain BST insertion, widening maxHigh along the path.
func (t *Tree) attach(n *node) {
	if t.root == nil {
		t.root = n

		return
	}

	cur := t.root

	for {
		cur.maxHigh = max(cur.maxHigh, n.interval.High)

		next := &cur.right
		if less(n.interval, cur.interval) {
			next = &cur.left
		}

		if *next == nil {
			*next = n
			n.parent = cur

			return
		}

		cur = *next
	}
}

// rebalance restores the red-black properties after attach.
func (t *Tree) rebalance(n *node) {
	for n != t.root && isRed(n.parent) {
		parent := n.parent

		grand := parent.parent
		if grand == nil {
			break
		}

		leftSide := parent == grand.left
		uncle := child(grand, !leftSide)

		if isRed(uncle) {
			parent.red = false
			uncle.red = false
			grand.red = true
			n = grand

			continue
		}

		if n == child(parent, !leftSide) {
			t.rotate(parent, leftSide)
			n, parent = parent, n
		}

		parent.red = false
		grand.red = true
		t.rotate(grand, !leftSide)
	}

	t.root.red = false
}

// rotate turns n left (toLeft) or right around its child and recomputes
// maxHigh for the two nodes that moved.
func (t *Tree) rotate(n *node, toLeft bool) {
	pivot := child(n, !toLeft)
	inner := child(pivot, toLeft)

	if toLeft {
		n.right = inner
		pivot.left = n
	} else {
		n.left = inner
		pivot.right = n
	}

	if inner != nil {
		inner.parent = n
	}

	pivot.parent = n.parent

	switch {
	case n.parent == nil:
		t.root = pivot
	case n == n.parent.left:
		n.parent.left = pivot
	default:
		n.parent.right = pivot
	}

	n.parent = pivot

	refresh(n)
	refresh(pivot)
}

func collect(n *node, low, high int, results *[]Interval) {
	if n == nil || n.maxHigh < low {
		return
	}

	collect(n.left, low, high, results)

	if n.interval.Low <= high && n.interval.High >= low {
		*results = append(*results, n.interval)
	}

	// Everything to the right starts after n, hence after high too.
	if n.interval.Low > high {
		return
	}

	collect(n.right, low, high, results)
}

func less(a, b Interval) bool {
	if a.Low != b.Low {
		return a.Low < b.Low
	}

	return a.High < b.High
}

func isRed(n *node) bool {
	return n != nil && n.red
}

func child(n *node, left bool) *node {
	if n == nil {
		return nil
	}

	if left {
		return n.left
	}

	return n.right
}

func refresh(n *node) {
	m := n.interval.High

	if n.left != nil {
		m = max(m, n.left.maxHigh)
	}

	if n.right != nil {
		m = max(m, n.right.maxHigh)
	}

	n.maxHigh = m
}
