package terrain

import (
	"fmt"

	"github.com/Sumatoshi-tech/terrain/pkg/alg/fenwick"
)

// Online answers point queries between updates. It keeps the linear
// coefficients of every position in two Fenwick trees, so height(pos) is
// coef(pos)*pos + base(pos). Updates and queries are O(log n).
type Online struct {
	coef *fenwick.Tree
	base *fenwick.Tree
	n    int
}

// NewOnline creates an online engine over positions 1..n. It panics if n is
// negative.
func NewOnline(n int) *Online {
	if n < 0 {
		panic(fmt.Errorf("terrain: %w: %d", ErrInvalidSize, n))
	}

	return &Online{
		coef: fenwick.New(n),
		base: fenwick.New(n),
		n:    n,
	}
}

// Len returns the number of positions.
func (o *Online) Len() int {
	return o.n
}

// ApplyLinear adds a*pos + b at every pos in [start, end].
func (o *Online) ApplyLinear(start, end int, a, b int64) {
	o.mustInterval(start, end)

	o.coef.Add(start, a)
	o.coef.Add(end+1, -a)
	o.base.Add(start, b)
	o.base.Add(end+1, -b)
}

// Apply adds one operation. Hills and valleys split at the left peak into an
// ascending and a descending linear piece. The whole interval is checked
// before either piece is written.
func (o *Online) Apply(op Op) {
	o.mustInterval(op.Start, op.End)

	sign := op.Kind.Sign()

	switch op.Kind {
	case KindRaise, KindDepress:
		o.ApplyLinear(op.Start, op.End, 0, sign)
	case KindHill, KindValley:
		mid := op.Start + (op.End-op.Start)/2
		o.ApplyLinear(op.Start, mid, sign, sign*int64(1-op.Start))

		if mid < op.End {
			o.ApplyLinear(mid+1, op.End, -sign, sign*int64(op.End+1))
		}
	default:
		panic(fmt.Errorf("terrain: %w: %q", ErrUnknownKind, byte(op.Kind)))
	}
}

// At returns the current height at pos.
func (o *Online) At(pos int) int64 {
	o.mustInterval(pos, pos)

	return o.coef.PrefixSum(pos)*int64(pos) + o.base.PrefixSum(pos)
}

// Materialize returns the heights at positions 1..n.
func (o *Online) Materialize() []int64 {
	heights := make([]int64, o.n)
	for i := range heights {
		heights[i] = o.At(i + 1)
	}

	return heights
}

// Reset clears every update.
func (o *Online) Reset() {
	o.coef.Reset()
	o.base.Reset()
}

func (o *Online) mustInterval(start, end int) {
	err := checkInterval(start, end, o.n)
	if err != nil {
		panic(fmt.Errorf("terrain: %w", err))
	}
}
