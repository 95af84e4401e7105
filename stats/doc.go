// Package stats provides quantile estimation and percentile-band outlier
// filtering for time series.
//
// # Quantiles
//
// Quantile takes an explicit interpolation Method so that results do not
// depend on library defaults:
//
//	q, err := stats.Quantile(values, 0.975, stats.Linear)
//
// Linear matches numpy's and pandas' default ("type 7"). Empirical and
// LinInterp delegate to gonum's stat.Quantile; NearestRank delegates to
// montanaflynn/stats.
//
// # Outlier Filtering
//
// FilterPercentileBand keeps the observations inside [q_low, q_high] of the
// raw distribution:
//
//	cleaned, band, err := stats.FilterPercentileBand(series,
//	    stats.DefaultLowerPercentile, stats.DefaultUpperPercentile, stats.Linear)
//	fmt.Printf("kept %d of %d within %v\n", cleaned.Len(), series.Len(), band)
package stats
