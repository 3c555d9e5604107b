// utils/date_utils.go
package utils

import "time"

const (
	dayLayout   = "2006-01-02"
	clockLayout = "15:04"
)

// DateKey returns the UTC calendar date an instant falls on, the key the
// date-grouped activity view partitions by.
func DateKey(t time.Time) string {
	return t.UTC().Format(dayLayout)
}

// CombineDateAndTime merges a form's separate date ("2006-01-02") and time
// ("15:04") inputs into the single UTC instant an activity is stored with.
func CombineDateAndTime(datePart, timePart string) (time.Time, error) {
	day, err := time.ParseInLocation(dayLayout, datePart, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	clock, err := time.ParseInLocation(clockLayout, timePart, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), 0, 0, time.UTC), nil
}
