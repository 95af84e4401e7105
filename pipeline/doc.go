// Package pipeline runs the visualization pass: load and clean the dataset
// once, then draw and write each chart.
//
//	p, err := pipeline.Open("fcc-forum-pageviews.csv",
//	    pipeline.WithOutputDir("out"),
//	    pipeline.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	return p.RunAll() // line_plot.png, bar_plot.png, box_plot.png
//
// Each Draw method also returns the in-memory figure for inspection.
package pipeline
