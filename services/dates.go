package services

import (
	"time"
)

// A "day" is midnight-to-midnight in the configured app time zone, which
// the services carry around as a *time.Location. Entry dates are stored
// normalized to that midnight so same-day queries are plain equality.

func dayStart(t time.Time, loc *time.Location) time.Time {
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

// parseDay accepts YYYY-MM-DD; an empty string means today.
func parseDay(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return dayStart(time.Now(), loc), nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return time.Time{}, validationf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}
