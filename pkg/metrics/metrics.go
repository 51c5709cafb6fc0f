// Package metrics extracts per-result measurement values from NDT results.
// Every function reports ok=false when the result does not carry the
// measurement, typically because a test did not complete.
package metrics

import (
	"time"

	"github.com/m-lab/testmaster/pkg/results"
)

// TotalDuration returns the total duration of an NDT run in seconds.
func TotalDuration(r results.Result) (float64, bool) {
	return duration(r.StartTime, r.EndTime)
}

// C2SDuration returns the duration of the c2s (upload) test in seconds.
func C2SDuration(r results.Result) (float64, bool) {
	if r.C2S == nil {
		return 0, false
	}
	return duration(r.C2S.StartTime, r.C2S.EndTime)
}

// S2CDuration returns the duration of the s2c (download) test in seconds.
func S2CDuration(r results.Result) (float64, bool) {
	if r.S2C == nil {
		return 0, false
	}
	return duration(r.S2C.StartTime, r.S2C.EndTime)
}

// C2SThroughput returns the measured upload throughput in Mbps.
func C2SThroughput(r results.Result) (float64, bool) {
	if r.C2S == nil || r.C2S.Throughput == nil {
		return 0, false
	}
	return *r.C2S.Throughput, true
}

// S2CThroughput returns the measured download throughput in Mbps.
func S2CThroughput(r results.Result) (float64, bool) {
	if r.S2C == nil || r.S2C.Throughput == nil {
		return 0, false
	}
	return *r.S2C.Throughput, true
}

// Latency returns the measured latency in milliseconds.
func Latency(r results.Result) (float64, bool) {
	if r.Latency == nil {
		return 0, false
	}
	return *r.Latency, true
}

func duration(start, end *time.Time) (float64, bool) {
	if start == nil || end == nil {
		return 0, false
	}
	return end.Sub(*start).Seconds(), true
}
