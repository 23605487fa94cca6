package localdate

import (
	"time"
)

// Day is a calendar day anchored to a specific timezone. It is the only
// date representation the attendance paths use, so writes and the range
// queries that read them back agree on where a day starts and ends.
type Day struct {
	year  int
	month time.Month
	day   int
	loc   *time.Location
}

// At normalizes t to the calendar day it falls on in loc.
func At(t time.Time, loc *time.Location) Day {
	local := t.In(loc)
	return Day{year: local.Year(), month: local.Month(), day: local.Day(), loc: loc}
}

// Parse accepts "2006-01-02" or a full RFC3339 timestamp and normalizes it
// to the calendar day in loc. Bare dates are interpreted in loc, not UTC.
func Parse(value string, loc *time.Location) (Day, error) {
	if t, err := time.ParseInLocation("2006-01-02", value, loc); err == nil {
		return At(t, loc), nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return Day{}, err
	}
	return At(t, loc), nil
}

// Start is 00:00:00.000 of the day.
func (d Day) Start() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, d.loc)
}

// End is the last representable instant of the day, used as the inclusive
// upper bound of the lookup window.
func (d Day) End() time.Time {
	return time.Date(d.year, d.month, d.day, 23, 59, 59, int(time.Second-time.Nanosecond), d.loc)
}

// Key is the canonical "2006-01-02" form used for dedup keys, dailyStatus
// maps and export column headers.
func (d Day) Key() string {
	return d.Start().Format("2006-01-02")
}

// Next is the following calendar day.
func (d Day) Next() Day {
	return At(d.Start().AddDate(0, 0, 1), d.loc)
}

// Equal reports whether two values name the same calendar day.
func (d Day) Equal(other Day) bool {
	return d.year == other.year && d.month == other.month && d.day == other.day
}

// MonthWindow is the [start, end) window covering the given month.
func MonthWindow(year, month int, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}

// Range lists every day of the half-open window [from, to). A window of N
// calendar days always yields exactly N entries.
func Range(from, to time.Time, loc *time.Location) []Day {
	var days []Day
	for d := At(from, loc); d.Start().Before(to); d = d.Next() {
		days = append(days, d)
	}
	return days
}
