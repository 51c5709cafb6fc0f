package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/m-lab/testmaster/pkg/compare"
	"github.com/m-lab/testmaster/pkg/logging"
)

var version = "dev"

const (
	_ = iota
	exitInputNotSpecified
	exitInputReadFailed
	exitOutputWriteFailed
)

var (
	oldCSV      string
	newCSV      string
	outputFile  string
	loggingType string
	logLevel    string
	showVersion bool
)

func init() {
	flag.StringVar(
		&oldCSV,
		"old-csv",
		"",
		"path to old results CSV file")
	flag.StringVar(
		&newCSV,
		"new-csv",
		"",
		"path to new results CSV file")
	flag.StringVar(
		&outputFile,
		"output-file",
		"e2e_comparison_results.csv",
		"path where the comparison CSV will be written")
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

func main() {
	flag.Parse()

	if showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	_ = logging.Initialize(loggingType, logLevel)

	if oldCSV == "" {
		slog.Error("-old-csv not set")
		os.Exit(exitInputNotSpecified)
	}
	if newCSV == "" {
		slog.Error("-new-csv not set")
		os.Exit(exitInputNotSpecified)
	}

	oldAvgs := compare.Average(loadResultSet(oldCSV))
	newAvgs := compare.Average(loadResultSet(newCSV))

	printSoftwareSummary("# Software used in old CSV (-old-csv)", oldAvgs)
	printSoftwareSummary("# Software used in new CSV (-new-csv)", newAvgs)

	rows := compare.Compare(oldAvgs, newAvgs)
	printRows(rows)

	writeResults(rows)
}

func loadResultSet(filename string) compare.ResultSet {
	f, err := os.Open(filename)
	if err != nil {
		slog.Error("failed to open results CSV", "filename", filename, "error", err)
		os.Exit(exitInputReadFailed)
	}
	defer f.Close()

	set, err := compare.ParseCSV(f)
	if err != nil {
		slog.Error("failed to parse results CSV", "filename", filename, "error", err)
		os.Exit(exitInputReadFailed)
	}
	return set
}

func printSoftwareSummary(label string, avgs compare.Averages) {
	fmt.Println(label)
	for _, key := range compare.SortedKeys(avgs) {
		parts := strings.SplitN(key, "-", 3)
		sw := avgs[key]
		fmt.Printf("    %s: %s, %s: %s, client: %s\n",
			parts[0], sw.OSVersion, parts[1], sw.BrowserVersion, parts[2])
	}
	fmt.Println()
}

func printRows(rows []compare.Row) {
	fmt.Println("# E2E comparison results")
	for _, row := range rows {
		fmt.Printf("%-10s,%-10s,%-10s,%-15s,%7s,%7s,%7s\n",
			row.OS, row.Browser, row.Client, row.Metric,
			row.OldAvg, row.NewAvg, row.Change)
	}
}

func writeResults(rows []compare.Row) {
	out, err := os.Create(outputFile)
	if err != nil {
		slog.Error("failed to create output file", "filename", outputFile, "error", err)
		os.Exit(exitOutputWriteFailed)
	}

	writeErr := compare.WriteCSV(out, rows)

	if closeErr := out.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		slog.Error("failed to write comparison CSV", "filename", outputFile, "error", writeErr)
		os.Exit(exitOutputWriteFailed)
	}

	slog.Info("wrote comparison results", "filename", outputFile, "rows", len(rows))
}
