package model

import (
	"fmt"
	"time"
)

// DateLayout is the canonical serialized form of a Date.
const DateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day and no timezone. All period
// and overdue comparisons in the application operate on Dates (or their Key
// form), never on instants, so a transaction entered on the 5th stays on the
// 5th no matter where the process runs.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// Today returns the current date in local time.
func Today() Date {
	now := time.Now()
	return Date{Year: now.Year(), Month: now.Month(), Day: now.Day()}
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Key returns the canonical YYYY-MM-DD form. Keys compare lexicographically
// in chronological order.
func (d Date) Key() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// String implements fmt.Stringer.
func (d Date) String() string {
	return d.Key()
}

// Compare returns -1, 0, or 1 as d is before, equal to, or after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(int(d.Month) - int(other.Month))
	default:
		return sign(d.Day - other.Day)
	}
}

// Before reports whether d is strictly before other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d is strictly after other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// SameMonth reports whether d and other fall in the same calendar month and
// year.
func (d Date) SameMonth(other Date) bool {
	return d.Year == other.Year && d.Month == other.Month
}

// AddMonths advances d by n calendar months (n may be negative). When the
// source day does not exist in the target month, the day clamps to the last
// valid day of that month: Jan 31 + 1 month is Feb 28 (or 29 in a leap
// year), never Mar 2. The clamp keeps monthly schedules from drifting into
// the following month.
func (d Date) AddMonths(n int) Date {
	anchor := time.Date(d.Year, d.Month+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	day := d.Day
	if last := daysInMonth(anchor.Year(), anchor.Month()); day > last {
		day = last
	}
	return Date{Year: anchor.Year(), Month: anchor.Month(), Day: day}
}

// WithDay returns d with its day-of-month replaced, clamped to the last
// valid day of d's month.
func (d Date) WithDay(day int) Date {
	if last := daysInMonth(d.Year, d.Month); day > last {
		day = last
	}
	return Date{Year: d.Year, Month: d.Month, Day: day}
}

// MarshalJSON serializes the date as a YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Key() + `"`), nil
}

// UnmarshalJSON parses a YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date literal %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
