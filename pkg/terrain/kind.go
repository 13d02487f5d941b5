// Package terrain accumulates piecewise-linear range updates over a 1-based
// index line and materializes the resulting heights.
//
// Four shapes are supported: raise and depress (flat +1/-1 over an interval)
// and hill and valley (a triangular bump of peak 1 + floor(len/2)). The
// default engine, [Aggregator], stores two difference arrays and applies each
// update in O(1); [Online] trades that for O(log n) updates with point queries
// between them.
package terrain

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned when an operation code is not one of R, D, H, V.
var ErrUnknownKind = errors.New("unknown operation kind")

// Kind identifies the shape of a range update.
type Kind byte

// Operation kinds, keyed by their input letter.
const (
	KindRaise   Kind = 'R'
	KindDepress Kind = 'D'
	KindHill    Kind = 'H'
	KindValley  Kind = 'V'
)

// Kinds lists every kind in input-letter order.
var Kinds = []Kind{KindRaise, KindDepress, KindHill, KindValley}

// ParseKind converts a single-letter code into a Kind.
func ParseKind(code string) (Kind, error) {
	if len(code) == 1 {
		switch k := Kind(code[0]); k {
		case KindRaise, KindDepress, KindHill, KindValley:
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, code)
}

// String returns the input letter of the kind.
func (k Kind) String() string {
	return string(k)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k.Sign() == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, byte(k))
	}

	return []byte{byte(k)}, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}

	*k = parsed

	return nil
}

// Name returns a lower-case descriptive name, used for metric attributes.
func (k Kind) Name() string {
	switch k {
	case KindRaise:
		return "raise"
	case KindDepress:
		return "depress"
	case KindHill:
		return "hill"
	case KindValley:
		return "valley"
	default:
		return "unknown"
	}
}

// Sign is +1 for upward shapes and -1 for downward ones. Unknown kinds are 0.
func (k Kind) Sign() int64 {
	switch k {
	case KindRaise, KindHill:
		return 1
	case KindDepress, KindValley:
		return -1
	default:
		return 0
	}
}

// Triangular reports whether the kind is a hill or a valley.
func (k Kind) Triangular() bool {
	return k == KindHill || k == KindValley
}
