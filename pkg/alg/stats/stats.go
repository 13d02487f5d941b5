// Package stats provides descriptive statistics over numeric samples.
// Standard deviation is the population form (÷n, not ÷(n−1)).
package stats

import (
	"math"
	"slices"
)

// Number is any integer or float sample type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// PercentileMedian is the median threshold.
const PercentileMedian = 0.5

// Mean returns the arithmetic mean of values. Samples are summed as float64,
// so large integer inputs cannot overflow.
// Returns 0 for an empty slice.
func Mean[T Number](values []T) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64

	for _, v := range values {
		sum += float64(v)
	}

	return sum / float64(len(values))
}

// MeanStdDev returns the arithmetic mean and population standard deviation.
// Returns (0, 0) for an empty slice.
func MeanStdDev[T Number](values []T) (mean, stddev float64) {
	count := len(values)
	if count == 0 {
		return 0, 0
	}

	mean = Mean(values)

	var sumSq float64

	for _, v := range values {
		diff := float64(v) - mean
		sumSq += diff * diff
	}

	return mean, math.Sqrt(sumSq / float64(count))
}

// Percentile returns the p-th percentile of values using linear interpolation.
// p is clamped to [0, 1]. The input slice is not modified.
// Returns 0 for an empty slice.
func Percentile[T Number](values []T, p float64) float64 {
	count := len(values)
	if count == 0 {
		return 0
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	idx := max(0, min(p, 1)) * float64(count-1)
	lower := int(math.Floor(idx))
	upper := int(math.Ceil(idx))

	if lower == upper {
		return float64(sorted[lower])
	}

	frac := idx - float64(lower)

	return float64(sorted[lower])*(1-frac) + float64(sorted[upper])*frac
}

// Median returns the 50th percentile of values.
// Returns 0 for an empty slice.
func Median[T Number](values []T) float64 {
	return Percentile(values, PercentileMedian)
}
