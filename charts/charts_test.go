package charts

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/sartorproj/pageviews/aggregate"
	"github.com/sartorproj/pageviews/timeseries"
)

// fixture builds a daily series from start for the given number of days.
func fixture(t *testing.T, start time.Time, days int) *timeseries.Series {
	t.Helper()
	ts := make([]time.Time, days)
	values := make([]float64, days)
	for i := range ts {
		ts[i] = start.AddDate(0, 0, i)
		values[i] = float64(1000 + (i*37)%500 + 10*int(ts[i].Month()))
	}
	s, err := timeseries.NewWithTimestamps(ts, values)
	require.NoError(t, err)
	s.Name = "value"
	return s
}

func empty(t *testing.T) *timeseries.Series {
	t.Helper()
	s, err := timeseries.NewWithTimestamps(nil, nil)
	require.NoError(t, err)
	return s
}

func tickLabels(t *testing.T, p *plot.Plot) []string {
	t.Helper()
	ticks, ok := p.X.Tick.Marker.(plot.ConstantTicks)
	require.True(t, ok, "x axis should use nominal ticks")
	labels := make([]string, len(ticks))
	for i, tk := range ticks {
		labels[i] = tk.Label
	}
	return labels
}

func TestLine(t *testing.T) {
	s := fixture(t, time.Date(2016, time.May, 9, 0, 0, 0, 0, time.UTC), 60)

	fig, err := Line(s)
	require.NoError(t, err)

	assert.Equal(t, 1, fig.Rows())
	assert.Equal(t, 1, fig.Cols())
	p := fig.Panel(0, 0)
	assert.Equal(t, LineTitle, p.Title.Text)
	assert.Equal(t, "Date", p.X.Label.Text)
	assert.Equal(t, "Page Views", p.Y.Label.Text)
	assert.IsType(t, plot.TimeTicks{}, p.X.Tick.Marker)
}

func TestBar(t *testing.T) {
	s := fixture(t, time.Date(2016, time.May, 9, 0, 0, 0, 0, time.UTC), 700)

	fig, err := Bar(s)
	require.NoError(t, err)

	p := fig.Panel(0, 0)
	assert.Equal(t, BarTitle, p.Title.Text)
	assert.Equal(t, "Years", p.X.Label.Text)
	assert.Equal(t, "Average Page Views", p.Y.Label.Text)
	assert.Equal(t, []string{"2016", "2017", "2018"}, tickLabels(t, p))
}

func TestBarLayoutOmitsMissingMonths(t *testing.T) {
	means := []aggregate.MonthlyMean{
		{Year: 2016, Month: time.May, Mean: 1},
		{Year: 2016, Month: time.December, Mean: 2},
		{Year: 2017, Month: time.January, Mean: 3},
	}

	years, bars := barLayout(means)

	assert.Equal(t, []int{2016, 2017}, years)
	assert.Equal(t, []barSlot{
		{Cluster: 0, Month: time.May, Value: 1},
		{Cluster: 0, Month: time.December, Value: 2},
		{Cluster: 1, Month: time.January, Value: 3},
	}, bars)
}

func TestSlotOffsetFollowsCalendar(t *testing.T) {
	prev := slotOffset(time.January, 10)
	assert.Equal(t, -55.0, float64(prev))
	for _, m := range aggregate.Months[1:] {
		off := slotOffset(m, 10)
		assert.Greater(t, float64(off), float64(prev), "slot for %s", m)
		prev = off
	}
	assert.Equal(t, 55.0, float64(prev))
}

func TestMonthColorsDistinct(t *testing.T) {
	require.Len(t, monthColors, 12)
	seen := make(map[[4]uint32]bool)
	for _, c := range monthColors {
		r, g, b, a := c.RGBA()
		key := [4]uint32{r, g, b, a}
		assert.False(t, seen[key])
		seen[key] = true
	}
}

func TestBox(t *testing.T) {
	// December 2018 through February 2020 spans three years and all months.
	s := fixture(t, time.Date(2018, time.December, 1, 0, 0, 0, 0, time.UTC), 450)

	fig, err := Box(s)
	require.NoError(t, err)

	require.Equal(t, 1, fig.Rows())
	require.Equal(t, 2, fig.Cols())

	trend := fig.Panel(0, 0)
	assert.Equal(t, "Year-wise Box Plot (Trend)", trend.Title.Text)
	assert.Equal(t, "Year", trend.X.Label.Text)
	assert.Equal(t, "Page Views", trend.Y.Label.Text)
	assert.Equal(t, []string{"2018", "2019", "2020"}, tickLabels(t, trend))

	season := fig.Panel(0, 1)
	assert.Equal(t, "Month-wise Box Plot (Seasonality)", season.Title.Text)
	assert.Equal(t, "Month", season.X.Label.Text)
	assert.Equal(t, "Page Views", season.Y.Label.Text)
	assert.Equal(t,
		[]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		tickLabels(t, season))
}

func TestRenderersRejectEmptySeries(t *testing.T) {
	for name, render := range map[string]func(*timeseries.Series) (*Figure, error){
		"line": Line,
		"bar":  Bar,
		"box":  Box,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := render(empty(t))
			assert.ErrorIs(t, err, ErrNoData)
		})
	}
}

func TestWriteToProducesPNG(t *testing.T) {
	s := fixture(t, time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC), 90)

	fig, err := Box(s)
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := fig.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	ratio := float64(img.Bounds().Dx()) / float64(img.Bounds().Dy())
	assert.InDelta(t, 16.0/6.0, ratio, 0.01)
}

func TestWriteToEmptyFigure(t *testing.T) {
	_, err := (&Figure{}).WriteTo(&bytes.Buffer{})
	assert.ErrorIs(t, err, ErrNoData)
}

func TestSaveIsIdempotentAndOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "line_plot.png")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	s := fixture(t, time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC), 120)

	render := func() []byte {
		fig, err := Line(s)
		require.NoError(t, err)
		require.NoError(t, fig.Save(path))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		return data
	}

	first := render()
	second := render()

	assert.NotEqual(t, []byte("stale"), first)
	assert.Equal(t, first, second)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestSaveMissingDirectory(t *testing.T) {
	s := fixture(t, time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC), 10)
	fig, err := Line(s)
	require.NoError(t, err)

	err = fig.Save(filepath.Join(t.TempDir(), "absent", "line_plot.png"))
	assert.Error(t, err)
}

func TestBoxWidthScalesWithGroups(t *testing.T) {
	twelve := boxWidth(12)
	four := boxWidth(4)

	// Twelve month boxes share a 6.5in usable panel: about 25pt each.
	assert.InDelta(t, 25.2, float64(twelve), 0.1)
	assert.Greater(t, float64(four), float64(twelve))
	assert.LessOrEqual(t, float64(boxWidth(1)), float64(maxBoxWidth))

	// Boxes never overlap their neighbours.
	for _, n := range []int{1, 4, 12} {
		slot := (boxPanelWidth - 1.5*vg.Inch) / vg.Length(n+1)
		assert.Less(t, float64(boxWidth(n)), float64(slot))
	}
}
