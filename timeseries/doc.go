// Package timeseries provides the Series type and its CSV loader.
//
// A Series pairs timestamps with values in source order. The loader is
// strict: a malformed date or value aborts the load with a *ParseError,
// and a missing file surfaces as an error wrapping fs.ErrNotExist.
//
// # Loading from CSV
//
//	series, err := timeseries.LoadCSV("fcc-forum-pageviews.csv", nil)
//	if errors.Is(err, fs.ErrNotExist) {
//	    // input missing
//	}
//	var perr *timeseries.ParseError
//	if errors.As(err, &perr) {
//	    fmt.Println(perr.Line, perr.Column)
//	}
//
// Rows whose value is empty, NA, NaN or null are treated as absent and
// skipped.
//
// # CSV Options
//
//	opts := &timeseries.CSVOptions{
//	    DateColumn:  "date",
//	    ValueColumn: "value",
//	    DateFormat:  "2006-01-02",
//	}
//	series, err := timeseries.LoadCSVFromReader(reader, opts)
//
// # Derivations
//
// Filter and Copy return new series and leave the receiver untouched:
//
//	high := series.Filter(func(ts time.Time, v float64) bool { return v > 1000 })
package timeseries
