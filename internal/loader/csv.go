// Package loader reads and writes timestamped values as CSV.
package loader

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"SeriesScope/internal/series"
)

// Options controls CSV parsing.
type Options struct {
	DateColumn  string // header name of the timestamp column (default "date")
	ValueColumn string // header name of the value column (default "value")
	DateFormat  string // Go layout tried first (default "2006-01-02")
	HasHeader   bool   // whether the first row is a header
	Delimiter   rune   // field delimiter (default ',')
}

// DefaultOptions returns the options used when nil is passed to Load.
func DefaultOptions() *Options {
	return &Options{
		DateColumn:  "date",
		ValueColumn: "value",
		DateFormat:  "2006-01-02",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// Fallback layouts tried after Options.DateFormat.
var dateFormats = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
}

// Load reads a CSV file into points ordered by ascending timestamp. Rows
// sharing a timestamp collapse to the last one read.
func Load(path string, opts *Options) (series.Points, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()
	return LoadFromReader(file, opts)
}

// LoadFromReader reads CSV data from r. See Load.
func LoadFromReader(r io.Reader, opts *Options) (series.Points, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true

	dateIdx, valueIdx := 0, 1
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, fmt.Errorf("read csv header: %w", err)
		}
		dateIdx, valueIdx = -1, -1
		for i, h := range header {
			switch strings.TrimSpace(h) {
			case opts.DateColumn:
				dateIdx = i
			case opts.ValueColumn:
				valueIdx = i
			}
		}
		if dateIdx == -1 {
			return nil, fmt.Errorf("date column %q not found in header", opts.DateColumn)
		}
		if valueIdx == -1 {
			return nil, fmt.Errorf("value column %q not found in header", opts.ValueColumn)
		}
	}

	byTime := make(map[time.Time]float64)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		if dateIdx >= len(record) || valueIdx >= len(record) {
			continue
		}

		valStr := strings.TrimSpace(record[valueIdx])
		if valStr == "" || valStr == "NA" || valStr == "NaN" || valStr == "null" {
			continue
		}
		val, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			continue
		}

		ts, err := parseDate(strings.TrimSpace(record[dateIdx]), opts.DateFormat)
		if err != nil {
			continue
		}
		byTime[ts] = val
	}

	if len(byTime) == 0 {
		return nil, errors.New("no valid data rows found in csv")
	}

	pts := make(series.Points, 0, len(byTime))
	for ts, val := range byTime {
		pts = append(pts, series.Point{Time: ts, Value: val})
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i].Time.Before(pts[j].Time) })
	return pts, nil
}

func parseDate(s, preferred string) (time.Time, error) {
	formats := dateFormats
	if preferred != "" {
		formats = append([]string{preferred}, dateFormats...)
	}
	var lastErr error
	for _, layout := range formats {
		ts, err := time.Parse(layout, s)
		if err == nil {
			return ts, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// Save writes points to a CSV file with a "date,value" header.
func Save(path string, pts series.Points) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	w.WriteString("date,value\n")
	for _, p := range pts {
		w.WriteString(p.Time.Format("2006-01-02"))
		w.WriteString(",")
		w.WriteString(strconv.FormatFloat(p.Value, 'f', -1, 64))
		w.WriteString("\n")
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}
