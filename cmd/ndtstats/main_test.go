package main

import (
	"strings"
	"testing"

	"github.com/m-lab/testmaster/pkg/stats"
)

func sampleStatistics() stats.Statistics {
	agg := stats.Aggregates{
		Minimum:     23,
		Maximum:     26,
		Mean:        24.7,
		Median:      25,
		StdDev:      1.247,
		SampleCount: 3,
	}
	return stats.Statistics{
		TotalDuration: agg,
		C2SDuration:   agg,
		S2CDuration:   agg,
		C2SThroughput: agg,
		S2CThroughput: agg,
		Latency:       agg,
	}
}

func TestRenderSimple(t *testing.T) {
	var buf strings.Builder
	if err := renderSimple(&buf, sampleStatistics()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	wantBlock := "Total Duration (s)\n" +
		"    Minimum: 23.0\n" +
		"    Maximum: 26.0\n" +
		"    Mean:    24.7\n" +
		"    Median:  25.0\n" +
		"    StdDev:  1.247\n" +
		"    Samples: 3\n\n"
	if !strings.HasPrefix(out, wantBlock) {
		t.Errorf("output does not start with expected block:\ngot:\n%s\nwant prefix:\n%s", out, wantBlock)
	}

	if got := strings.Count(out, "Samples: 3"); got != 6 {
		t.Errorf("expected 6 metric blocks, found %d", got)
	}
	for _, name := range []string{
		"Upload Duration (s)",
		"Download Duration (s)",
		"Upload Throughput (Mbps)",
		"Download Throughput (Mbps)",
		"Latency (ms)",
	} {
		if !strings.Contains(out, name+"\n    Minimum:") {
			t.Errorf("missing indented block for %q", name)
		}
	}
}

func TestRenderCSV(t *testing.T) {
	var buf strings.Builder
	if err := renderCSV(&buf, sampleStatistics()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("expected header plus 6 rows, got %d lines", len(lines))
	}
	if lines[0] != "Metric,Minimum,Maximum,Mean,Median,StdDev,Samples" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "Total Duration (s),23,26,24.7,25,1.247,3" {
		t.Errorf("first row = %q", lines[1])
	}
	if lines[6] != "Latency (ms),23,26,24.7,25,1.247,3" {
		t.Errorf("last row = %q", lines[6])
	}
}
