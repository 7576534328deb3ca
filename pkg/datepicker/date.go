package datepicker

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var datePattern = regexp.MustCompile(`^(\d{1,4})-(\d{1,2})-(\d{1,2})$`)

// Date is the year/month/day tuple a dialog reports on confirm. It is not
// checked against the calendar: 2024-02-31 is a valid Date.
type Date struct {
	Year  int `json:"year" yaml:"year"`
	Month int `json:"month" yaml:"month"`
	Day   int `json:"day" yaml:"day"`
}

// DateOf returns the date part of t.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// ParseDate parses YYYY-MM-DD. Day and month are only checked for their
// wheel ranges (1-31, 1-12), not against the calendar.
func ParseDate(s string) (Date, error) {
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return Date{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	var d Date
	d.Year, _ = strconv.Atoi(m[1])
	d.Month, _ = strconv.Atoi(m[2])
	d.Day, _ = strconv.Atoi(m[3])
	if d.Month < MinMonth || d.Month > MaxMonth {
		return Date{}, fmt.Errorf("invalid date %q: month %d out of range %d-%d", s, d.Month, MinMonth, MaxMonth)
	}
	if d.Day < MinDay || d.Day > MaxDay {
		return Date{}, fmt.Errorf("invalid date %q: day %d out of range %d-%d", s, d.Day, MinDay, MaxDay)
	}
	return d, nil
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Clock abstracts time.Now() so the default year is deterministic in tests.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant.
type FixedClock time.Time

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return time.Time(c)
}
