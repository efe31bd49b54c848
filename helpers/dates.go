package helpers

import "time"

const isoDate = "2006-01-02"

// Today returns the current UTC date as an ISO date string.
func Today() string {
	return time.Now().UTC().Format(isoDate)
}

// FormatISO formats t as an ISO date string.
func FormatISO(t time.Time) string {
	return t.Format(isoDate)
}

// DayBefore returns the ISO date one calendar day before date. An
// unparseable input returns "".
func DayBefore(date string) string {
	t, err := time.Parse(isoDate, date)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(isoDate)
}

// LastNDays returns the n ISO dates ending today, oldest first.
func LastNDays(n int) []string {
	days := make([]string, 0, n)
	now := time.Now().UTC()
	for i := n - 1; i >= 0; i-- {
		days = append(days, now.AddDate(0, 0, -i).Format(isoDate))
	}
	return days
}

// MonthGrid returns the number of days in the month and the weekday
// (0 = Sunday) its first day falls on. month is 1-based.
func MonthGrid(year, month int) (daysInMonth, startWeekday int) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return last.Day(), int(first.Weekday())
}
