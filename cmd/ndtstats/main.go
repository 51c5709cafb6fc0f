package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/m-lab/testmaster/pkg/logging"
	"github.com/m-lab/testmaster/pkg/results"
	"github.com/m-lab/testmaster/pkg/stats"
)

var version = "dev"

const (
	_ = iota
	exitPatternNotSpecified
	exitUnknownFormat
	exitNoMatchingFiles
	exitParseFailed
	exitStatisticsFailed
	exitOutputFailed
)

const (
	formatSimple = "simple"
	formatCSV    = "csv"
)

// simpleTemplate prints one summary block per metric, with the detail
// lines indented under the metric name by sprig's indent.
const simpleTemplate = `{{ range . -}}
{{ .Name }}
{{ printf "Minimum: %.1f\nMaximum: %.1f\nMean:    %.1f\nMedian:  %.1f\nStdDev:  %.3f\nSamples: %d" .Minimum .Maximum .Mean .Median .StdDev .SampleCount | indent 4 }}

{{ end -}}
`

var csvHeader = []string{"Metric", "Minimum", "Maximum", "Mean", "Median", "StdDev", "Samples"}

var (
	pattern      string
	outputFormat string
	loggingType  string
	logLevel     string
	showVersion  bool
)

func init() {
	flag.StringVar(
		&pattern,
		"pattern",
		"",
		"glob pattern of input result files")
	flag.StringVar(
		&outputFormat,
		"format",
		formatSimple,
		"output format: simple or csv")
	flag.StringVar(
		&loggingType,
		"logging-type",
		"tint",
		"logging type: json, text or tint")
	flag.StringVar(
		&logLevel,
		"log-level",
		"info",
		"logging level: debug, info, warn, error")
	flag.BoolVar(
		&showVersion,
		"version",
		false,
		"print version and exit")
}

type metricSummary struct {
	Name string
	stats.Aggregates
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	_ = logging.Initialize(loggingType, logLevel)

	if pattern == "" {
		slog.Error("-pattern not set")
		os.Exit(exitPatternNotSpecified)
	}
	if outputFormat != formatSimple && outputFormat != formatCSV {
		slog.Error("invalid output format", "format", outputFormat)
		os.Exit(exitUnknownFormat)
	}

	statistics := calculate(loadResults())

	if err := printStatistics(statistics, outputFormat); err != nil {
		slog.Error("failed to write statistics", "error", err)
		os.Exit(exitOutputFailed)
	}
}

func loadResults() map[string]results.Result {
	matches, err := results.Expand(pattern)
	if err != nil {
		slog.Error("bad pattern", "pattern", pattern, "error", err)
		os.Exit(exitNoMatchingFiles)
	}
	if len(matches) == 0 {
		slog.Error("no files matched pattern", "pattern", pattern)
		os.Exit(exitNoMatchingFiles)
	}

	parsed, err := results.ParseFiles(matches)
	if err != nil {
		slog.Error("failed to parse results", "error", err)
		os.Exit(exitParseFailed)
	}

	slog.Info("parsed results", "files", len(matches), "results", len(parsed))
	return parsed
}

func calculate(parsed map[string]results.Result) stats.Statistics {
	rs := make([]results.Result, 0, len(parsed))
	for _, r := range parsed {
		rs = append(rs, r)
	}

	statistics, err := stats.Calculate(rs)
	if err != nil {
		slog.Error("failed to calculate statistics", "error", err)
		os.Exit(exitStatisticsFailed)
	}
	return statistics
}

func printStatistics(s stats.Statistics, format string) error {
	if format == formatCSV {
		return renderCSV(os.Stdout, s)
	}
	return renderSimple(os.Stdout, s)
}

func renderSimple(w io.Writer, s stats.Statistics) error {
	tmpl, err := template.New("summary").Funcs(sprig.FuncMap()).Parse(simpleTemplate)
	if err != nil {
		return fmt.Errorf("parsing summary template: %w", err)
	}
	return tmpl.Execute(w, metricSummaries(s))
}

func renderCSV(w io.Writer, s stats.Statistics) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, m := range metricSummaries(s) {
		record := []string{
			m.Name,
			formatFloat(m.Minimum),
			formatFloat(m.Maximum),
			formatFloat(m.Mean),
			formatFloat(m.Median),
			formatFloat(m.StdDev),
			strconv.Itoa(m.SampleCount),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func metricSummaries(s stats.Statistics) []metricSummary {
	return []metricSummary{
		{"Total Duration (s)", s.TotalDuration},
		{"Upload Duration (s)", s.C2SDuration},
		{"Download Duration (s)", s.S2CDuration},
		{"Upload Throughput (Mbps)", s.C2SThroughput},
		{"Download Throughput (Mbps)", s.S2CThroughput},
		{"Latency (ms)", s.Latency},
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
