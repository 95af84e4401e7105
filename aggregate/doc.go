// Package aggregate builds the derived views the charts are drawn from.
//
// Every view is computed fresh from a cleaned series and never modifies it.
// Month ordering always follows the calendar through an explicit month
// number, never the alphabetical order of month names.
//
//	means := aggregate.MonthlyMeans(cleaned)   // bar chart view
//	records := aggregate.BoxRecords(cleaned)   // box plot view
//	byYear := aggregate.GroupByYear(records)   // trend panel
//	byMonth := aggregate.GroupByMonth(records) // seasonality panel
package aggregate
