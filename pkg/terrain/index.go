package terrain

import (
	"slices"

	"github.com/Sumatoshi-tech/terrain/pkg/alg/interval"
)

// Contribution is the share of one operation at a position.
type Contribution struct {
	// Ordinal is the 1-based arrival position of the op.
	Ordinal int   `json:"ordinal" yaml:"ordinal"`
	Op      Op    `json:"op" yaml:"op"`
	Amount  int64 `json:"amount" yaml:"amount"`
}

// Index answers "which operations shape this position" without replaying
// them. It keeps the op intervals in an interval tree.
type Index struct {
	tree *interval.Tree
	ops  []Op
}

// NewIndex indexes ops. The slice is retained, not copied.
func NewIndex(ops []Op) *Index {
	tree := interval.New()
	for i, op := range ops {
		tree.Insert(op.Start, op.End, i)
	}

	return &Index{tree: tree, ops: ops}
}

// Len returns the number of indexed ops.
func (x *Index) Len() int {
	return x.tree.Len()
}

// Covering returns the contribution of every op whose interval contains pos,
// in arrival order.
func (x *Index) Covering(pos int) []Contribution {
	hits := x.tree.QueryPoint(pos)
	if len(hits) == 0 {
		return nil
	}

	out := make([]Contribution, 0, len(hits))
	for _, hit := range hits {
		op := x.ops[hit.Value]
		out = append(out, Contribution{Ordinal: hit.Value + 1, Op: op, Amount: op.Contribution(pos)})
	}

	slices.SortFunc(out, func(a, b Contribution) int { return a.Ordinal - b.Ordinal })

	return out
}

// Total returns the final height at pos.
func (x *Index) Total(pos int) int64 {
	var sum int64
	for _, c := range x.Covering(pos) {
		sum += c.Amount
	}

	return sum
}
