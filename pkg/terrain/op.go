package terrain

import (
	"errors"
	"fmt"
)

// Contract violation errors. Engines panic with these wrapped; Op.Validate
// returns them for callers handling untrusted input.
var (
	ErrInvalidInterval = errors.New("invalid interval")
	ErrInvalidSign     = errors.New("sign must be +1 or -1")
	ErrInvalidSize     = errors.New("size must not be negative")
)

// Op is one range update over the closed interval [Start, End].
type Op struct {
	Kind  Kind `json:"kind" yaml:"kind"`
	Start int  `json:"start" yaml:"start"`
	End   int  `json:"end" yaml:"end"`
}

// String renders the op in its input form, e.g. "H 1 5".
func (o Op) String() string {
	return fmt.Sprintf("%s %d %d", o.Kind, o.Start, o.End)
}

// Validate checks the op against an index line of n positions.
func (o Op) Validate(n int) error {
	if o.Kind.Sign() == 0 {
		return fmt.Errorf("%w: %q", ErrUnknownKind, byte(o.Kind))
	}

	return checkInterval(o.Start, o.End, n)
}

// Contains reports whether pos lies inside the op's interval.
func (o Op) Contains(pos int) bool {
	return o.Start <= pos && pos <= o.End
}

// Contribution returns the amount the op adds at pos, straight from the shape
// definition: sign for flat kinds, sign*(1+min(pos-start, end-pos)) for
// triangular ones, and 0 outside the interval.
func (o Op) Contribution(pos int) int64 {
	if !o.Contains(pos) {
		return 0
	}

	sign := o.Kind.Sign()
	if !o.Kind.Triangular() {
		return sign
	}

	return sign * int64(1+min(pos-o.Start, o.End-pos))
}

// Peak returns the largest absolute contribution of the op.
func (o Op) Peak() int64 {
	if !o.Kind.Triangular() {
		return 1
	}

	return int64(1 + (o.End-o.Start)/2)
}

func checkInterval(start, end, n int) error {
	if start < 1 || end > n || start > end {
		return fmt.Errorf("%w: [%d, %d] on 1..%d", ErrInvalidInterval, start, end, n)
	}

	return nil
}
