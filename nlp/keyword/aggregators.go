package keyword

import "gonum.org/v1/gonum/floats"

// Aggregator reduces a phrase's word scores, in token order, to one score.
type Aggregator interface {
	Aggregate(scores []float64) float64
}

// AggregatorFunc adapts a function to Aggregator.
type AggregatorFunc func(scores []float64) float64

func (f AggregatorFunc) Aggregate(scores []float64) float64 { return f(scores) }

// SumAggregator adds the scores.
type SumAggregator struct{}

func (SumAggregator) Aggregate(scores []float64) float64 {
	return floats.Sum(scores)
}

// MeanAggregator averages the scores; an empty phrase scores 0.
type MeanAggregator struct{}

func (MeanAggregator) Aggregate(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	return floats.Sum(scores) / float64(len(scores))
}

// DefaultMaxLenBeforePenalization is the phrase length PenalizedNormAggregator
// tolerates before dividing by length.
const DefaultMaxLenBeforePenalization = 5

// PenalizedNormAggregator returns the L2 norm of the scores, divided by the
// number of non-zero scores once that number exceeds MaxLen. Zero scores
// (stop tokens inside a phrase) do not count towards the length.
type PenalizedNormAggregator struct {
	MaxLen int
}

func (a PenalizedNormAggregator) Aggregate(scores []float64) float64 {
	maxLen := a.MaxLen
	if maxLen <= 0 {
		maxLen = DefaultMaxLenBeforePenalization
	}
	d := 0
	for _, s := range scores {
		if s != 0 {
			d++
		}
	}
	if d == 0 {
		return 0
	}
	if d <= maxLen {
		d = 1
	}
	return floats.Norm(scores, 2) / float64(d)
}
