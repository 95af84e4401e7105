package timeseries

import (
	"errors"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrLengthMismatch is returned when timestamps and values differ in length.
var ErrLengthMismatch = errors.New("timestamps and values must have the same length")

// Series represents a daily observation series with timestamps and values.
//
// A Series handed to the aggregate and charts packages is treated as
// read-only; every derivation returns a new Series.
type Series struct {
	Timestamps []time.Time
	Values     []float64
	Name       string
}

// NewWithTimestamps creates a series with explicit timestamps.
func NewWithTimestamps(timestamps []time.Time, values []float64) (*Series, error) {
	if len(timestamps) != len(values) {
		return nil, ErrLengthMismatch
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}, nil
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// At returns the timestamp and value of the i-th observation.
func (s *Series) At(i int) (time.Time, float64) {
	return s.Timestamps[i], s.Values[i]
}

// Mean calculates the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	return stat.Mean(s.Values, nil)
}

// Min returns the minimum value in the series.
func (s *Series) Min() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	return floats.Min(s.Values)
}

// Max returns the maximum value in the series.
func (s *Series) Max() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	return floats.Max(s.Values)
}

// Span returns the first and last timestamps in source order.
func (s *Series) Span() (first, last time.Time) {
	if len(s.Timestamps) == 0 {
		return time.Time{}, time.Time{}
	}
	return s.Timestamps[0], s.Timestamps[len(s.Timestamps)-1]
}

// Filter returns a new series holding the observations for which keep
// reports true. Source order is preserved.
func (s *Series) Filter(keep func(ts time.Time, v float64) bool) *Series {
	values := make([]float64, 0, len(s.Values))
	timestamps := make([]time.Time, 0, len(s.Values))
	for i, v := range s.Values {
		var ts time.Time
		if i < len(s.Timestamps) {
			ts = s.Timestamps[i]
		}
		if keep(ts, v) {
			values = append(values, v)
			timestamps = append(timestamps, ts)
		}
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	timestamps := make([]time.Time, len(s.Timestamps))
	copy(timestamps, s.Timestamps)

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}
