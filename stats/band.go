package stats

import (
	"fmt"
	"time"

	"github.com/sartorproj/pageviews/timeseries"
)

// Default percentiles keep the central 95% of a distribution.
const (
	DefaultLowerPercentile = 0.025
	DefaultUpperPercentile = 0.975
)

// Band is a closed value interval [Low, High].
type Band struct {
	Low  float64
	High float64
}

// Contains reports whether v lies inside the band, bounds included.
func (b Band) Contains(v float64) bool {
	return v >= b.Low && v <= b.High
}

func (b Band) String() string {
	return fmt.Sprintf("[%g, %g]", b.Low, b.High)
}

// PercentileBand computes the band between the low and high quantiles of
// values.
func PercentileBand(values []float64, low, high float64, method Method) (Band, error) {
	if low > high {
		return Band{}, fmt.Errorf("%w: lower %v above upper %v", ErrBadProbability, low, high)
	}
	lo, err := Quantile(values, low, method)
	if err != nil {
		return Band{}, fmt.Errorf("lower quantile: %w", err)
	}
	hi, err := Quantile(values, high, method)
	if err != nil {
		return Band{}, fmt.Errorf("upper quantile: %w", err)
	}
	return Band{Low: lo, High: hi}, nil
}

// FilterPercentileBand drops observations whose value falls outside the
// percentile band of the whole series. The band is computed once, before
// any row is removed. The input series is left untouched.
func FilterPercentileBand(series *timeseries.Series, low, high float64, method Method) (*timeseries.Series, Band, error) {
	band, err := PercentileBand(series.Values, low, high, method)
	if err != nil {
		return nil, Band{}, err
	}
	cleaned := series.Filter(func(_ time.Time, v float64) bool {
		return band.Contains(v)
	})
	return cleaned, band, nil
}
