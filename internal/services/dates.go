package services

import (
	"math"
	"time"

	"github.com/wellnestlab/wellnest/internal/models"
)

// DateAtLocation truncates a wall-clock instant to the civil date in the
// given location.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// DaysBetween returns the signed day count b - a. Both inputs are truncated
// to midnight first so time-of-day never perturbs the result; the quotient
// is rounded so 23- and 25-hour civil days around DST transitions still
// count as one day.
func DaysBetween(a time.Time, b time.Time, location *time.Location) int {
	start := DateAtLocation(a, location)
	end := DateAtLocation(b, location)
	return int(math.Round(end.Sub(start).Hours() / 24))
}

// WeekStart returns Monday at midnight of the week containing the value.
func WeekStart(value time.Time, location *time.Location) time.Time {
	day := DateAtLocation(value, location)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func SameISOWeek(a time.Time, b time.Time, location *time.Location) bool {
	return WeekStart(a, location).Equal(WeekStart(b, location))
}

// WeekdayKey returns the Monday-indexed weekly-status key (mon..sun) for
// the value's civil date.
func WeekdayKey(value time.Time, location *time.Location) string {
	day := DateAtLocation(value, location)
	return models.WeekdayKeys[(int(day.Weekday())+6)%7]
}
