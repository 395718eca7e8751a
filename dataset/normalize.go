package dataset

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/kdknn/record"
)

// Scale is the per-feature affine map applied by a normalization pass:
// x' = (x - Offset) / Divisor, or 0 when Divisor is 0.
type Scale struct {
	Offset  float64
	Divisor float64
}

// Apply maps one value through s.
func (s Scale) Apply(x float64) float64 {
	if s.Divisor == 0 {
		return 0
	}

	return (x - s.Offset) / s.Divisor
}

// MinMax rescales every feature of rs into [0, 1] in place and returns the
// per-feature scales used. A constant feature becomes 0. An empty batch is a
// no-op.
//
// Errors: ErrDataFormat when records disagree on dimension.
func MinMax[F constraints.Float, L comparable](rs []record.Record[F, L]) ([]Scale, error) {
	dim, err := uniformDim(rs)
	if err != nil || dim == 0 {
		return nil, err
	}
	scales := make([]Scale, dim)
	for j := 0; j < dim; j++ {
		lo, hi := math.Inf(1), math.Inf(-1)
		for i := range rs {
			v := float64(rs[i].Features[j])
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		scales[j] = Scale{Offset: lo, Divisor: hi - lo}
	}
	apply(rs, scales)

	return scales, nil
}

// ZScore standardizes every feature of rs in place: subtract the mean and
// divide by the sample standard deviation (n-1 denominator). A constant
// feature, or a batch of one record, becomes 0. An empty batch is a no-op.
//
// Errors: ErrDataFormat when records disagree on dimension.
func ZScore[F constraints.Float, L comparable](rs []record.Record[F, L]) ([]Scale, error) {
	dim, err := uniformDim(rs)
	if err != nil || dim == 0 {
		return nil, err
	}
	n := float64(len(rs))
	scales := make([]Scale, dim)
	for j := 0; j < dim; j++ {
		var mean float64
		for i := range rs {
			mean += float64(rs[i].Features[j])
		}
		mean /= n

		var ss, d float64
		for i := range rs {
			d = float64(rs[i].Features[j]) - mean
			ss += d * d
		}
		sd := 0.0
		if len(rs) > 1 {
			sd = math.Sqrt(ss / (n - 1))
		}
		scales[j] = Scale{Offset: mean, Divisor: sd}
	}
	apply(rs, scales)

	return scales, nil
}

// ApplyScales maps rs in place through scales computed by MinMax or ZScore,
// e.g. to normalize a query batch the same way as the training data.
func ApplyScales[F constraints.Float, L comparable](rs []record.Record[F, L], scales []Scale) error {
	for i := range rs {
		if rs[i].Dim() != len(scales) {
			return fmt.Errorf("dataset: record %d has %d features, want %d: %w",
				i, rs[i].Dim(), len(scales), ErrDataFormat)
		}
	}
	apply(rs, scales)

	return nil
}

func apply[F constraints.Float, L comparable](rs []record.Record[F, L], scales []Scale) {
	for i := range rs {
		for j, s := range scales {
			rs[i].Features[j] = F(s.Apply(float64(rs[i].Features[j])))
		}
	}
}

func uniformDim[F constraints.Float, L comparable](rs []record.Record[F, L]) (int, error) {
	if len(rs) == 0 {
		return 0, nil
	}
	dim := rs[0].Dim()
	for i := range rs {
		if rs[i].Dim() != dim {
			return 0, fmt.Errorf("dataset: record %d has %d features, want %d: %w",
				i, rs[i].Dim(), dim, ErrDataFormat)
		}
	}

	return dim, nil
}
