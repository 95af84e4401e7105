package charts

import (
	"fmt"
	"image/color"
	"strconv"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/sartorproj/pageviews/aggregate"
	"github.com/sartorproj/pageviews/timeseries"
)

// Bar chart labels.
const (
	BarTitle  = "Monthly Average Page Views per Year"
	BarXLabel = "Years"
	BarYLabel = "Average Page Views"
)

const (
	barFigureWidth  = 15 * vg.Inch
	barFigureHeight = 5 * vg.Inch
)

// monthColors gives every calendar month a fixed colour across clusters.
var monthColors = palette.Rainbow(len(aggregate.Months), palette.Red, palette.Magenta, 0.65, 0.9, 1).Colors()

// barSlot places one bar: cluster index on the x axis and the month slot
// inside the cluster.
type barSlot struct {
	Cluster int
	Month   time.Month
	Value   float64
}

// barLayout lays out one bar per observed (year, month) pair. Clusters
// follow ascending years; within a cluster, slots follow the calendar.
func barLayout(means []aggregate.MonthlyMean) (years []int, bars []barSlot) {
	years = aggregate.Years(means)
	cluster := make(map[int]int, len(years))
	for i, y := range years {
		cluster[y] = i
	}
	bars = make([]barSlot, 0, len(means))
	for _, m := range means {
		bars = append(bars, barSlot{Cluster: cluster[m.Year], Month: m.Month, Value: m.Mean})
	}
	return years, bars
}

// slotOffset returns the offset of a month slot from the cluster centre.
func slotOffset(m time.Month, width vg.Length) vg.Length {
	center := float64(len(aggregate.Months)-1) / 2
	return vg.Length(float64(m-1)-center) * width
}

// Bar draws the monthly mean of every year as grouped vertical bars.
func Bar(series *timeseries.Series) (*Figure, error) {
	means := aggregate.MonthlyMeans(series)
	if len(means) == 0 {
		return nil, ErrNoData
	}
	years, bars := barLayout(means)

	p := plot.New()
	p.Title.Text = BarTitle
	p.X.Label.Text = BarXLabel
	p.Y.Label.Text = BarYLabel
	p.Add(plotter.NewGrid())

	slot := (barFigureWidth - 1.5*vg.Inch) / vg.Length(len(years)+1)
	width := slot * 0.85 / vg.Length(len(aggregate.Months))

	for _, b := range bars {
		bc, err := newBar(b.Value, width, monthColors[b.Month-1])
		if err != nil {
			return nil, fmt.Errorf("bar plot: %w", err)
		}
		bc.XMin = float64(b.Cluster)
		bc.Offset = slotOffset(b.Month, width)
		p.Add(bc)
	}

	// The legend lists all twelve months in calendar order.
	for i, name := range aggregate.MonthNames() {
		thumb, err := newBar(0, width, monthColors[i])
		if err != nil {
			return nil, fmt.Errorf("bar plot legend: %w", err)
		}
		p.Legend.Add(name, thumb)
	}
	p.Legend.Top = true
	p.Legend.Left = true

	labels := make([]string, len(years))
	for i, y := range years {
		labels[i] = strconv.Itoa(y)
	}
	p.NominalX(labels...)

	return single("bar", p, barFigureWidth, barFigureHeight), nil
}

func newBar(v float64, width vg.Length, c color.Color) (*plotter.BarChart, error) {
	bc, err := plotter.NewBarChart(plotter.Values{v}, width)
	if err != nil {
		return nil, err
	}
	bc.Color = c
	bc.LineStyle.Width = 0
	return bc, nil
}
