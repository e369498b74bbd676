package core

import (
	"time"
)

// Day represents a calendar day. Time-of-day is discarded at construction so
// every Day is a UTC midnight and day arithmetic is exact.
type Day time.Time

// NewDay creates a Day from a time.Time, truncating to day granularity.
func NewDay(t time.Time) Day {
	return Day(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
}

// DayOf creates a Day from a year/month/day triple.
func DayOf(year int, month time.Month, day int) Day {
	return Day(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// Time returns the underlying time.Time (UTC midnight).
func (d Day) Time() time.Time {
	return time.Time(d)
}

// IsZero checks if the day is unset.
func (d Day) IsZero() bool {
	return time.Time(d).IsZero()
}

// Before returns true if d is before u.
func (d Day) Before(u Day) bool {
	return time.Time(d).Before(time.Time(u))
}

// After returns true if d is after u.
func (d Day) After(u Day) bool {
	return time.Time(d).After(time.Time(u))
}

// Equal returns true if d and u are the same calendar day.
func (d Day) Equal(u Day) bool {
	return time.Time(d).Equal(time.Time(u))
}

// AddDays returns the day n days after d (n may be negative).
func (d Day) AddDays(n int) Day {
	return Day(time.Time(d).AddDate(0, 0, n))
}

// Sub returns the number of whole days from u to d. Both operands are UTC
// midnights, so the duration is always an exact multiple of 24h.
func (d Day) Sub(u Day) int {
	return int(time.Time(d).Sub(time.Time(u)) / (24 * time.Hour))
}

var dayEpoch = DayOf(1970, time.January, 1)

// Number returns the day number relative to 1970-01-01 (negative before it).
// Used as the x coordinate for interpolation and trend fitting.
func (d Day) Number() int {
	return d.Sub(dayEpoch)
}

// DayFromNumber is the inverse of Number.
func DayFromNumber(n int) Day {
	return dayEpoch.AddDays(n)
}

func (d Day) String() string { return time.Time(d).Format("2006-01-02") }

func MinDay(a, b Day) Day {
	if a.Before(b) {
		return a
	}
	return b
}

func MaxDay(a, b Day) Day {
	if a.After(b) {
		return a
	}
	return b
}
