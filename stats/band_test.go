package stats

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/pageviews/timeseries"
)

func series(t *testing.T, values ...float64) *timeseries.Series {
	t.Helper()
	ts := make([]time.Time, len(values))
	start := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := range ts {
		ts[i] = start.AddDate(0, 0, i)
	}
	s, err := timeseries.NewWithTimestamps(ts, values)
	require.NoError(t, err)
	return s
}

func TestFilterPercentileBandFourRows(t *testing.T) {
	raw := series(t, 1, 100, 102, 3)

	cleaned, band, err := FilterPercentileBand(raw, DefaultLowerPercentile, DefaultUpperPercentile, Linear)
	require.NoError(t, err)

	assert.InDelta(t, 1.15, band.Low, 1e-9)
	assert.InDelta(t, 101.85, band.High, 1e-9)
	assert.Equal(t, []float64{100, 3}, cleaned.Values)
	assert.Equal(t, 2, cleaned.Timestamps[0].Day())
	assert.Equal(t, 4, cleaned.Timestamps[1].Day())

	assert.Equal(t, []float64{1, 100, 102, 3}, raw.Values, "raw series must not change")
}

func TestFilterPercentileBandEmpiricalKeepsAll(t *testing.T) {
	raw := series(t, 1, 100, 102, 3)

	cleaned, _, err := FilterPercentileBand(raw, DefaultLowerPercentile, DefaultUpperPercentile, Empirical)
	require.NoError(t, err)
	assert.Equal(t, raw.Values, cleaned.Values)
}

func TestFilterPercentileBandProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	values := make([]float64, 1000)
	for i := range values {
		values[i] = rng.NormFloat64()*1000 + 50000
	}
	raw := series(t, values...)

	lo, err := Quantile(values, DefaultLowerPercentile, Linear)
	require.NoError(t, err)
	hi, err := Quantile(values, DefaultUpperPercentile, Linear)
	require.NoError(t, err)

	cleaned, band, err := FilterPercentileBand(raw, DefaultLowerPercentile, DefaultUpperPercentile, Linear)
	require.NoError(t, err)

	assert.Equal(t, lo, band.Low)
	assert.Equal(t, hi, band.High)
	assert.Less(t, cleaned.Len(), raw.Len())
	for _, v := range cleaned.Values {
		assert.True(t, band.Contains(v), "value %v outside %v", v, band)
	}

	// Every dropped value lies outside the band.
	kept := make(map[float64]bool, cleaned.Len())
	for _, v := range cleaned.Values {
		kept[v] = true
	}
	for _, v := range raw.Values {
		if !kept[v] {
			assert.False(t, band.Contains(v))
		}
	}
}

func TestFilterPercentileBandConstantSeries(t *testing.T) {
	raw := series(t, 5, 5, 5)
	cleaned, band, err := FilterPercentileBand(raw, DefaultLowerPercentile, DefaultUpperPercentile, Linear)
	require.NoError(t, err)
	assert.Equal(t, Band{Low: 5, High: 5}, band)
	assert.Equal(t, 3, cleaned.Len())
}

func TestPercentileBandErrors(t *testing.T) {
	_, err := PercentileBand([]float64{1, 2}, 0.9, 0.1, Linear)
	assert.ErrorIs(t, err, ErrBadProbability)

	_, err = PercentileBand(nil, 0.1, 0.9, Linear)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestBandContainsIsInclusive(t *testing.T) {
	b := Band{Low: 1, High: 2}
	assert.True(t, b.Contains(1))
	assert.True(t, b.Contains(2))
	assert.False(t, b.Contains(0.999))
	assert.False(t, b.Contains(2.001))
	assert.Equal(t, "[1, 2]", b.String())
}

func TestFilterPercentileBandWithNaN(t *testing.T) {
	raw := series(t, 1, 2, 3, 4, 5, math.NaN())

	cleaned, band, err := FilterPercentileBand(raw, DefaultLowerPercentile, DefaultUpperPercentile, Linear)
	require.NoError(t, err)

	assert.InDelta(t, 1.1, band.Low, 1e-9)
	assert.InDelta(t, 4.9, band.High, 1e-9)
	assert.Equal(t, []float64{2, 3, 4}, cleaned.Values)
}
