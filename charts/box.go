package charts

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/sartorproj/pageviews/aggregate"
	"github.com/sartorproj/pageviews/timeseries"
)

// Box plot labels.
const (
	TrendTitle        = "Year-wise Box Plot (Trend)"
	TrendXLabel       = "Year"
	SeasonalityTitle  = "Month-wise Box Plot (Seasonality)"
	SeasonalityXLabel = "Month"
	BoxYLabel         = "Page Views"
)

const (
	boxFigureWidth  = 16 * vg.Inch
	boxFigureHeight = 6 * vg.Inch
	boxPanelWidth   = boxFigureWidth / 2
	maxBoxWidth     = vg.Inch / 2
)

// boxWidth sizes each box from its share of the panel width.
func boxWidth(groups int) vg.Length {
	slot := (boxPanelWidth - 1.5*vg.Inch) / vg.Length(groups+1)
	w := slot * 0.7
	if w > maxBoxWidth {
		w = maxBoxWidth
	}
	return w
}

// Box draws two panels side by side: values by year on the left and by
// calendar month on the right.
func Box(series *timeseries.Series) (*Figure, error) {
	records := aggregate.BoxRecords(series)
	if len(records) == 0 {
		return nil, ErrNoData
	}

	trend, err := boxPanel(aggregate.GroupByYear(records), TrendTitle, TrendXLabel)
	if err != nil {
		return nil, fmt.Errorf("trend panel: %w", err)
	}
	seasonality, err := boxPanel(aggregate.GroupByMonth(records), SeasonalityTitle, SeasonalityXLabel)
	if err != nil {
		return nil, fmt.Errorf("seasonality panel: %w", err)
	}

	return &Figure{
		Name:   "box",
		Panels: [][]*plot.Plot{{trend, seasonality}},
		Width:  boxFigureWidth,
		Height: boxFigureHeight,
	}, nil
}

func boxPanel(groups []aggregate.Group, title, xlabel string) (*plot.Plot, error) {
	if len(groups) == 0 {
		return nil, ErrNoData
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = BoxYLabel

	width := boxWidth(len(groups))
	labels := make([]string, len(groups))
	for i, g := range groups {
		b, err := plotter.NewBoxPlot(width, float64(i), plotter.Values(g.Values))
		if err != nil {
			return nil, fmt.Errorf("group %s: %w", g.Label, err)
		}
		b.FillColor = plotutil.Color(i)
		p.Add(b)
		labels[i] = g.Label
	}
	p.NominalX(labels...)
	return p, nil
}
