// Package pageviews draws a reproducible set of charts from a daily
// page-view time series.
//
// The pass loads a CSV with date and value columns, drops the values
// outside the central 95% of the distribution, and writes three PNG charts.
// It follows the freeCodeCamp forum page-view exercise.
//
// # Features
//
//   - Strict CSV loading with typed parse errors
//   - Quantiles with an explicit interpolation method
//   - Percentile-band outlier removal
//   - Line chart of the cleaned series
//   - Grouped bar chart of monthly means per year
//   - Side-by-side trend and seasonality box plots
//
// # Quick Start
//
//	p, err := pipeline.Open("fcc-forum-pageviews.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fig, err := p.DrawBoxPlot() // writes box_plot.png
//
// Figures can also be built without touching the filesystem:
//
//	cleaned, _ := pipeline.Load("fcc-forum-pageviews.csv")
//	fig, _ := charts.Bar(cleaned)
//	fig.WriteTo(w)
//
// # Packages
//
//   - timeseries: Series type and CSV loader
//   - stats: quantiles and percentile-band filtering
//   - aggregate: monthly means and box plot groupings
//   - charts: gonum/plot renderers and PNG output
//   - pipeline: load once, draw and write each chart
package pageviews
