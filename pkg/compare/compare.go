// Package compare diffs aggregated metrics between two end-to-end result
// sets exported as CSV.
package compare

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"
)

// CSVFields is the column order of a comparison CSV.
var CSVFields = []string{"os", "browser", "client", "metric", "old_avg", "new_avg", "%change"}

// skippedColumns are input CSV columns that carry no metric values.
var skippedColumns = map[string]bool{
	"filename":   true,
	"error_list": true,
}

// Software holds the metric time series for one os-browser-client triple.
type Software struct {
	OSVersion      string
	BrowserVersion string
	// Metrics maps metric name -> timestamp -> raw value.
	Metrics map[string]map[string]string
}

// ResultSet maps "os-browser-client" keys to their collected metrics.
type ResultSet map[string]*Software

// Averaged holds per-metric means for one os-browser-client triple.
type Averaged struct {
	OSVersion      string
	BrowserVersion string
	Metrics        map[string]float64
}

// Averages maps "os-browser-client" keys to their metric means.
type Averages map[string]*Averaged

// Row is one line of comparison output. OldAvg is "none" when the
// software/metric pair is absent from the old set; Change is "error" when
// the delta cannot be computed.
type Row struct {
	OS      string
	Browser string
	Client  string
	Metric  string
	OldAvg  string
	NewAvg  string
	Change  string
}

// ParseCSV reads an end-to-end results CSV into a ResultSet. Each row's
// filename field supplies the software triple and timestamp; every other
// column except error_list is treated as a metric value.
func ParseCSV(r io.Reader) (ResultSet, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	filenameCol := slices.Index(header, "filename")
	if filenameCol < 0 {
		return nil, fmt.Errorf("CSV has no filename column")
	}

	set := make(ResultSet)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row: %w", err)
		}

		m, err := ParseFilename(record[filenameCol])
		if err != nil {
			return nil, err
		}

		key := strings.Join([]string{m.OS, m.Browser, m.Client}, "-")
		sw, ok := set[key]
		if !ok {
			sw = &Software{
				OSVersion:      m.OSVersion,
				BrowserVersion: m.BrowserVersion,
				Metrics:        make(map[string]map[string]string),
			}
			set[key] = sw
		}

		for i, value := range record {
			if i >= len(header) || skippedColumns[header[i]] {
				continue
			}
			metric := header[i]
			if sw.Metrics[metric] == nil {
				sw.Metrics[metric] = make(map[string]string)
			}
			sw.Metrics[metric][m.Timestamp] = value
		}
	}

	return set, nil
}

// Average computes the mean of each metric for each software triple,
// rounded to two decimals. Unparseable or empty values contribute zero to
// the sum but still count toward the sample count, matching how the
// exported CSVs record failed runs.
func Average(set ResultSet) Averages {
	avgs := make(Averages, len(set))
	for key, sw := range set {
		a := &Averaged{
			OSVersion:      sw.OSVersion,
			BrowserVersion: sw.BrowserVersion,
			Metrics:        make(map[string]float64, len(sw.Metrics)),
		}
		for metric, series := range sw.Metrics {
			var sum float64
			for _, raw := range series {
				if v, err := strconv.ParseFloat(raw, 64); err == nil {
					sum += v
				}
			}
			a.Metrics[metric] = round2(sum / float64(len(series)))
		}
		avgs[key] = a
	}
	return avgs
}

// Compare builds comparison rows for every software/metric pair present
// in the new result set, ordered by software key and metric name.
func Compare(oldAvgs, newAvgs Averages) []Row {
	var rows []Row

	for _, key := range sortedKeys(newAvgs) {
		sw := newAvgs[key]
		parts := strings.SplitN(key, "-", 3)

		for _, metric := range sortedMetrics(sw.Metrics) {
			newAvg := sw.Metrics[metric]

			oldAvg, oldOK := lookupMetric(oldAvgs, key, metric)

			change := "error"
			if newAvg != 0 && oldOK && oldAvg != 0 {
				change = formatFloat(math.Round((newAvg - oldAvg) / newAvg * 100))
			}

			oldField := "none"
			if oldOK {
				oldField = formatFloat(oldAvg)
			}

			rows = append(rows, Row{
				OS:      parts[0],
				Browser: parts[1],
				Client:  parts[2],
				Metric:  metric,
				OldAvg:  oldField,
				NewAvg:  formatFloat(newAvg),
				Change:  change,
			})
		}
	}

	return rows
}

// WriteCSV writes comparison rows in CSVFields order.
func WriteCSV(w io.Writer, rows []Row) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(CSVFields); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, row := range rows {
		record := []string{row.OS, row.Browser, row.Client, row.Metric, row.OldAvg, row.NewAvg, row.Change}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// SortedKeys returns the software keys of an Averages set in order.
func SortedKeys(avgs Averages) []string {
	return sortedKeys(avgs)
}

func sortedKeys(avgs Averages) []string {
	keys := make([]string, 0, len(avgs))
	for key := range avgs {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

func sortedMetrics(metrics map[string]float64) []string {
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func lookupMetric(avgs Averages, key, metric string) (float64, bool) {
	sw, ok := avgs[key]
	if !ok {
		return 0, false
	}
	v, ok := sw.Metrics[metric]
	return v, ok
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
