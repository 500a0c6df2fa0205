package dateutil

import (
	"fmt"
	"time"
)

// StartOfMonth returns midnight on the first day of the month containing date.
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// AddMonths advances a month cursor. The result is always the first of the
// month, so a cursor started on the 31st never skips a short month.
func AddMonths(date time.Time, months int) time.Time {
	return StartOfMonth(date).AddDate(0, months, 0)
}

// MonthLabel renders a short month label such as "Jan-2026".
func MonthLabel(date time.Time) string {
	return fmt.Sprintf("%s-%d", date.Month().String()[:3], date.Year())
}

// LongMonthLabel renders a full month label such as "January-2026".
func LongMonthLabel(date time.Time) string {
	return fmt.Sprintf("%s-%d", date.Month().String(), date.Year())
}

// ParseYearMonth parses "2006-01" or "2006-01-02" into the first of that month (UTC).
func ParseYearMonth(value string) (time.Time, error) {
	for _, layout := range []string{"2006-01", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return StartOfMonth(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid month %q: expected YYYY-MM or YYYY-MM-DD", value)
}

// MonthsLeftInYear counts the months from date through December inclusive.
func MonthsLeftInYear(date time.Time) int {
	return 12 - int(date.Month()) + 1
}
