package terrain

import (
	"github.com/Sumatoshi-tech/terrain/pkg/alg/stats"
	"github.com/Sumatoshi-tech/terrain/pkg/safeconv"
)

// Summary describes a height profile. MinAt and MaxAt are 1-based positions
// of the first minimum and maximum. Overflow is set when Sum no longer fits in
// an int64; Sum then holds the last in-range partial sum.
type Summary struct {
	Positions int   `json:"positions" yaml:"positions"`
	Min       int64 `json:"min" yaml:"min"`
	MinAt     int   `json:"min_at" yaml:"min_at"`
	Max       int64 `json:"max" yaml:"max"`
	MaxAt     int   `json:"max_at" yaml:"max_at"`
	Sum       int64 `json:"sum" yaml:"sum"`
	Overflow  bool  `json:"overflow,omitempty" yaml:"overflow,omitempty"`

	Mean   float64 `json:"mean" yaml:"mean"`
	StdDev float64 `json:"stddev" yaml:"stddev"`
	Median float64 `json:"median" yaml:"median"`
}

// Summarize computes the extremes and sum in one pass, then the float
// statistics. An empty profile yields the zero Summary.
func Summarize(heights []int64) Summary {
	if len(heights) == 0 {
		return Summary{}
	}

	s := Summary{
		Positions: len(heights),
		Min:       heights[0],
		MinAt:     1,
		Max:       heights[0],
		MaxAt:     1,
	}

	for i, h := range heights {
		if !s.Overflow {
			sum, ok := safeconv.AddInt64(s.Sum, h)
			if ok {
				s.Sum = sum
			} else {
				s.Overflow = true
			}
		}

		if h < s.Min {
			s.Min, s.MinAt = h, i+1
		}

		if h > s.Max {
			s.Max, s.MaxAt = h, i+1
		}
	}

	s.Mean, s.StdDev = stats.MeanStdDev(heights)
	s.Median = stats.Median(heights)

	return s
}
