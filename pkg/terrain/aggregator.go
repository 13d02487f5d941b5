package terrain

import "fmt"

// Engine is anything that accepts range updates and yields final heights.
type Engine interface {
	// Apply adds one operation.
	Apply(op Op)
	// Materialize returns the heights at positions 1..Len() in order.
	Materialize() []int64
	// Len returns the number of positions.
	Len() int
}

// Aggregator is a second-order difference array over positions 1..n.
//
// offset[i] is the jump in height starting at i, slope[i] the change of the
// running slope starting at i. Both buffers hold n+2 entries so that writes at
// end+1 == n+1 need no bounds special case. Every update touches only its
// start and end+1 slots.
type Aggregator struct {
	offset []int64
	slope  []int64
	n      int
}

// New allocates an aggregator for positions 1..n. It panics if n is negative.
func New(n int) *Aggregator {
	if n < 0 {
		panic(fmt.Errorf("terrain: %w: %d", ErrInvalidSize, n))
	}

	return &Aggregator{
		offset: make([]int64, n+2),
		slope:  make([]int64, n+2),
		n:      n,
	}
}

// Len returns the number of positions.
func (a *Aggregator) Len() int {
	return a.n
}

// Reset zeroes both difference buffers so the aggregator can be reused.
func (a *Aggregator) Reset() {
	clear(a.offset)
	clear(a.slope)
}

// ApplyConstant adds delta at every position in [start, end].
func (a *Aggregator) ApplyConstant(start, end int, delta int64) {
	a.mustInterval(start, end)

	a.offset[start] += delta
	a.offset[end+1] -= delta
}

// ApplyLinearRamp adds a contribution growing by slopeDelta per step over
// [start, end]: slopeDelta at start, 2*slopeDelta at start+1, and so on. The
// contribution stays flat at its final value after end.
func (a *Aggregator) ApplyLinearRamp(start, end int, slopeDelta int64) {
	a.mustInterval(start, end)

	a.slope[start] += slopeDelta
	a.slope[end+1] -= slopeDelta
}

// ApplyHillOrValley adds sign*(1+min(j-start, end-j)) at every j in
// [start, end]. sign is +1 for a hill and -1 for a valley.
//
// The shape is a base of sign over the whole interval, an upward ramp over
// [start+1, mid] and a downward ramp ending at end. For an odd interval
// length the downward ramp starts one step later, leaving a two-wide plateau.
// Both ramps leave flat residues of equal size and opposite sign, so nothing
// survives past end.
func (a *Aggregator) ApplyHillOrValley(start, end int, sign int64) {
	a.mustInterval(start, end)

	if sign != 1 && sign != -1 {
		panic(fmt.Errorf("terrain: %w: %d", ErrInvalidSign, sign))
	}

	a.ApplyConstant(start, end, sign)

	if start == end {
		return
	}

	mid := start + (end-start)/2

	downStart := mid + 1
	if (end-start)%2 == 1 {
		downStart = mid + 2
	}

	if start+1 <= mid {
		a.ApplyLinearRamp(start+1, mid, sign)
	}

	if downStart <= end {
		a.ApplyLinearRamp(downStart, end, -sign)
	}
}

// Apply dispatches op to the matching primitive.
func (a *Aggregator) Apply(op Op) {
	switch op.Kind {
	case KindRaise, KindDepress:
		a.ApplyConstant(op.Start, op.End, op.Kind.Sign())
	case KindHill, KindValley:
		a.ApplyHillOrValley(op.Start, op.End, op.Kind.Sign())
	default:
		panic(fmt.Errorf("terrain: %w: %q", ErrUnknownKind, byte(op.Kind)))
	}
}

// Materialize sweeps the difference buffers once and returns the heights at
// positions 1..n. The buffers are not modified, so repeated calls agree.
func (a *Aggregator) Materialize() []int64 {
	heights := make([]int64, a.n)

	var runningSlope, runningHeight int64

	for i := 1; i <= a.n; i++ {
		runningSlope += a.slope[i]
		runningHeight += a.offset[i] + runningSlope
		heights[i-1] = runningHeight
	}

	return heights
}

func (a *Aggregator) mustInterval(start, end int) {
	err := checkInterval(start, end, a.n)
	if err != nil {
		panic(fmt.Errorf("terrain: %w", err))
	}
}
