package aggregate

import (
	"sort"
	"strconv"

	"github.com/sartorproj/pageviews/timeseries"
)

// BoxRecord is one cleaned observation tagged with the fields the box
// panels group on. MonthNumber is the sort key; MonthAbbr is display only.
type BoxRecord struct {
	Year        int
	MonthAbbr   string
	MonthNumber int
	Value       float64
}

// Group is a labelled set of values for one box.
type Group struct {
	Label  string
	Values []float64
}

// BoxRecords derives one record per observation, stably sorted by month
// number.
func BoxRecords(series *timeseries.Series) []BoxRecord {
	records := make([]BoxRecord, len(series.Values))
	for i, v := range series.Values {
		ts := series.Timestamps[i]
		records[i] = BoxRecord{
			Year:        ts.Year(),
			MonthAbbr:   MonthAbbr(ts.Month()),
			MonthNumber: int(ts.Month()),
			Value:       v,
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].MonthNumber < records[j].MonthNumber
	})
	return records
}

// GroupByYear buckets values per year in ascending year order.
func GroupByYear(records []BoxRecord) []Group {
	byYear := make(map[int][]float64)
	for _, r := range records {
		byYear[r.Year] = append(byYear[r.Year], r.Value)
	}
	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	groups := make([]Group, len(years))
	for i, y := range years {
		groups[i] = Group{Label: strconv.Itoa(y), Values: byYear[y]}
	}
	return groups
}

// GroupByMonth buckets values per month, ordered January to December by
// month number. Months without observations are left out.
func GroupByMonth(records []BoxRecord) []Group {
	var byMonth [13][]float64
	for _, r := range records {
		byMonth[r.MonthNumber] = append(byMonth[r.MonthNumber], r.Value)
	}

	var groups []Group
	for _, m := range Months {
		if values := byMonth[m]; len(values) > 0 {
			groups = append(groups, Group{Label: MonthAbbr(m), Values: values})
		}
	}
	return groups
}
