package aggregate

import "time"

// Months lists the calendar months in order. It is the grouping domain and
// the display order for every monthly view.
var Months = [12]time.Month{
	time.January, time.February, time.March, time.April,
	time.May, time.June, time.July, time.August,
	time.September, time.October, time.November, time.December,
}

// MonthNames returns the full month names January through December.
func MonthNames() []string {
	names := make([]string, len(Months))
	for i, m := range Months {
		names[i] = m.String()
	}
	return names
}

// MonthAbbr returns the three-letter abbreviation of m ("Jan", "Feb", ...).
func MonthAbbr(m time.Month) string {
	return m.String()[:3]
}
