package aggregate

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/pageviews/timeseries"
)

// MonthlyMean is the average of all observations in one calendar month of
// one year.
type MonthlyMean struct {
	Year      int
	Month     time.Month
	MonthName string
	Mean      float64
	Count     int
}

type yearMonth struct {
	year  int
	month time.Month
}

// MonthlyMeans groups the series by (year, month) and averages each group.
// Only observed pairs are returned, ordered by year and then calendar month.
func MonthlyMeans(series *timeseries.Series) []MonthlyMean {
	groups := make(map[yearMonth][]float64)
	for i, v := range series.Values {
		ts := series.Timestamps[i]
		key := yearMonth{year: ts.Year(), month: ts.Month()}
		groups[key] = append(groups[key], v)
	}

	means := make([]MonthlyMean, 0, len(groups))
	for key, values := range groups {
		means = append(means, MonthlyMean{
			Year:      key.year,
			Month:     key.month,
			MonthName: key.month.String(),
			Mean:      stat.Mean(values, nil),
			Count:     len(values),
		})
	}
	sort.Slice(means, func(i, j int) bool {
		if means[i].Year != means[j].Year {
			return means[i].Year < means[j].Year
		}
		return means[i].Month < means[j].Month
	})
	return means
}

// Years returns the distinct years present in means, ascending.
func Years(means []MonthlyMean) []int {
	var years []int
	for _, m := range means {
		if len(years) == 0 || years[len(years)-1] != m.Year {
			years = append(years, m.Year)
		}
	}
	return years
}
