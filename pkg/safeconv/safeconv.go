// Package safeconv provides integer conversions that report or panic on overflow.
package safeconv

import (
	"errors"
	"fmt"
)

// MaxInt is the maximum value for int type (platform-dependent).
const MaxInt = int(^uint(0) >> 1)

// MinInt is the minimum value for int type (platform-dependent).
const MinInt = -MaxInt - 1

// ErrOverflow is returned when a value does not fit the target type.
var ErrOverflow = errors.New("integer overflow")

// Int64ToInt converts v to int, failing when int is narrower than v needs.
func Int64ToInt(v int64) (int, error) {
	if v > int64(MaxInt) || v < int64(MinInt) {
		return 0, fmt.Errorf("%w: %d does not fit in int", ErrOverflow, v)
	}

	return int(v), nil
}

// MustInt64ToInt converts v to int, panics on overflow.
// Use only when overflow is logically impossible.
func MustInt64ToInt(v int64) int {
	n, err := Int64ToInt(v)
	if err != nil {
		panic("safeconv: int64 to int overflow")
	}

	return n
}

// AddInt64 returns a+b and whether the sum stayed in range.
func AddInt64(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}

	return sum, true
}
