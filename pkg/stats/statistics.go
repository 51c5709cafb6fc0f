package stats

import (
	"fmt"

	"github.com/m-lab/testmaster/pkg/metrics"
	"github.com/m-lab/testmaster/pkg/results"
)

// Statistics holds aggregates for each NDT metric tracked across a result
// set.
type Statistics struct {
	TotalDuration Aggregates
	C2SDuration   Aggregates
	S2CDuration   Aggregates
	C2SThroughput Aggregates
	S2CThroughput Aggregates
	Latency       Aggregates
}

// Calculate computes aggregate statistics for each NDT metric over a set
// of results. Results missing a metric are skipped for that metric only;
// a metric with no samples at all is an error.
func Calculate(rs []results.Result) (Statistics, error) {
	var (
		s   Statistics
		err error
	)

	if s.TotalDuration, err = aggregateMetric("total duration", rs, metrics.TotalDuration); err != nil {
		return Statistics{}, err
	}
	if s.C2SDuration, err = aggregateMetric("c2s duration", rs, metrics.C2SDuration); err != nil {
		return Statistics{}, err
	}
	if s.S2CDuration, err = aggregateMetric("s2c duration", rs, metrics.S2CDuration); err != nil {
		return Statistics{}, err
	}
	if s.C2SThroughput, err = aggregateMetric("c2s throughput", rs, metrics.C2SThroughput); err != nil {
		return Statistics{}, err
	}
	if s.S2CThroughput, err = aggregateMetric("s2c throughput", rs, metrics.S2CThroughput); err != nil {
		return Statistics{}, err
	}
	if s.Latency, err = aggregateMetric("latency", rs, metrics.Latency); err != nil {
		return Statistics{}, err
	}

	return s, nil
}

func aggregateMetric(name string, rs []results.Result, metric func(results.Result) (float64, bool)) (Aggregates, error) {
	values := make([]float64, 0, len(rs))
	for _, r := range rs {
		if v, ok := metric(r); ok {
			values = append(values, v)
		}
	}

	agg, err := Aggregate(values)
	if err != nil {
		return Aggregates{}, fmt.Errorf("aggregating %s: %w", name, err)
	}
	return agg, nil
}
