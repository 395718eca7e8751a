package eval

import (
	"fmt"
	"math"
)

// Stats summarizes a series of accuracies.
type Stats struct {
	N      int
	Mean   float64
	StdDev float64 // sample standard deviation, n-1 denominator
	Min    float64
	Max    float64
}

// Summarize reduces values to their mean, sample standard deviation and
// range. A single value has StdDev 0.
//
// Errors:
//   - ErrInvalidArgument — values is empty.
func Summarize(values []float64) (Stats, error) {
	if len(values) == 0 {
		return Stats{}, fmt.Errorf("eval: Summarize on empty series: %w", ErrInvalidArgument)
	}
	s := Stats{N: len(values), Min: values[0], Max: values[0]}
	for _, v := range values {
		s.Mean += v
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	s.Mean /= float64(len(values))

	if len(values) > 1 {
		var ss, d float64
		for _, v := range values {
			d = v - s.Mean
			ss += d * d
		}
		s.StdDev = math.Sqrt(ss / float64(len(values)-1))
	}

	return s, nil
}
