package charts

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/sartorproj/pageviews/timeseries"
)

// Line chart labels.
const (
	LineTitle  = "Daily freeCodeCamp Forum Page Views 5/2016-12/2019"
	LineXLabel = "Date"
	LineYLabel = "Page Views"
)

// Line draws the whole series as one line over time, in series order.
func Line(series *timeseries.Series) (*Figure, error) {
	if series.Len() == 0 {
		return nil, ErrNoData
	}

	pts := make(plotter.XYs, series.Len())
	for i := range pts {
		ts, v := series.At(i)
		pts[i].X = float64(ts.Unix())
		pts[i].Y = v
	}

	p := plot.New()
	p.Title.Text = LineTitle
	p.X.Label.Text = LineXLabel
	p.Y.Label.Text = LineYLabel
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01"}
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("line plot: %w", err)
	}
	line.LineStyle.Width = vg.Points(1)
	line.LineStyle.Color = plotutil.Color(0)
	p.Add(line)

	name := series.Name
	if name == "" {
		name = "value"
	}
	p.Legend.Add(name, line)
	p.Legend.Top = true

	return single("line", p, 15*vg.Inch, 5*vg.Inch), nil
}
