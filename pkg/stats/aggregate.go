package stats

import (
	"fmt"
	"math"
	"slices"
)

// Aggregates is a summary of aggregate statistics for a set of values.
type Aggregates struct {
	Minimum     float64
	Maximum     float64
	Mean        float64
	Median      float64
	StdDev      float64
	SampleCount int
}

// Aggregate calculates aggregate statistics for a set of numeric values.
// StdDev is the population standard deviation.
func Aggregate(values []float64) (Aggregates, error) {
	if len(values) == 0 {
		return Aggregates{}, fmt.Errorf("no samples to aggregate")
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	return Aggregates{
		Minimum:     sorted[0],
		Maximum:     sorted[len(sorted)-1],
		Mean:        mean(sorted),
		Median:      median(sorted),
		StdDev:      stddev(sorted),
		SampleCount: len(sorted),
	}, nil
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// median expects values to be sorted.
func median(values []float64) float64 {
	mid := len(values) / 2
	if len(values)%2 == 1 {
		return values[mid]
	}
	return (values[mid-1] + values[mid]) / 2
}

func stddev(values []float64) float64 {
	m := mean(values)
	var sum float64
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}
