package timeseries

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrParse is matched by every ParseError.
	ErrParse = errors.New("malformed csv field")
	// ErrMissingColumn is returned when the header lacks a required column.
	ErrMissingColumn = errors.New("required column not found in header")
	// ErrNoData is returned when the file holds a header but no observations.
	ErrNoData = errors.New("no valid data found in CSV")
)

// ParseError reports a date or value that could not be parsed.
type ParseError struct {
	Line   int    // 1-based line number in the input
	Column string // header name of the offending column
	Value  string // raw field text
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: column %q: cannot parse %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrParse) hold for any ParseError.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	DateColumn  string // Column name for dates (default: "date")
	ValueColumn string // Column name for values (default: "value")
	DateFormat  string // Preferred date layout (default: "2006-01-02")
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip before the header
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		DateColumn:  "date",
		ValueColumn: "value",
		DateFormat:  "2006-01-02",
		Delimiter:   ',',
	}
}

// fallbackDateFormats are tried after CSVOptions.DateFormat.
var fallbackDateFormats = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006/01/02",
	"01/02/2006",
	"02-Jan-2006",
}

// missingTokens mark an absent observation; such rows are skipped. The set
// matches the default NA strings of pandas.read_csv.
var missingTokens = map[string]bool{
	"":         true,
	"#N/A":     true,
	"#N/A N/A": true,
	"#NA":      true,
	"-1.#IND":  true,
	"-1.#QNAN": true,
	"-NaN":     true,
	"-nan":     true,
	"1.#IND":   true,
	"1.#QNAN":  true,
	"<NA>":     true,
	"N/A":      true,
	"NA":       true,
	"NULL":     true,
	"NaN":      true,
	"None":     true,
	"n/a":      true,
	"nan":      true,
	"null":     true,
}

// LoadCSV loads a series from a CSV file. A missing file yields an error
// wrapping fs.ErrNotExist.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filename, err)
	}
	defer file.Close()

	series, err := LoadCSVFromReader(file, opts)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filename, err)
	}
	return series, nil
}

// LoadCSVFromReader loads a series from an io.Reader. Rows keep their
// source order.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}
	delim := opts.Delimiter
	if delim == 0 {
		delim = ','
	}

	reader := csv.NewReader(r)
	reader.Comma = delim
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoData
	}
	if err != nil {
		return nil, err
	}

	dateIdx, valueIdx := -1, -1
	for i, h := range header {
		h = strings.TrimSpace(strings.Trim(h, "\""))
		switch h {
		case opts.DateColumn:
			dateIdx = i
		case opts.ValueColumn:
			valueIdx = i
		}
	}
	if dateIdx == -1 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, opts.DateColumn)
	}
	if valueIdx == -1 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, opts.ValueColumn)
	}

	var values []float64
	var timestamps []time.Time

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := reader.FieldPos(0)

		// The date is checked even when the value is missing.
		dateStr := field(record, dateIdx)
		ts, err := parseDate(dateStr, opts.DateFormat)
		if err != nil {
			return nil, &ParseError{Line: line, Column: opts.DateColumn, Value: dateStr, Err: err}
		}

		valStr := field(record, valueIdx)
		if missingTokens[valStr] {
			continue
		}
		val, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			return nil, &ParseError{Line: line, Column: opts.ValueColumn, Value: valStr, Err: err}
		}
		if math.IsNaN(val) {
			continue
		}

		values = append(values, val)
		timestamps = append(timestamps, ts)
	}

	if len(values) == 0 {
		return nil, ErrNoData
	}

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       opts.ValueColumn,
	}, nil
}

func field(record []string, idx int) string {
	if idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(strings.Trim(record[idx], "\""))
}

func parseDate(s, preferred string) (time.Time, error) {
	var firstErr error
	formats := append([]string{preferred}, fallbackDateFormats...)
	for _, layout := range formats {
		if layout == "" {
			continue
		}
		ts, err := time.Parse(layout, s)
		if err == nil {
			return ts, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}
