package ast

import (
	"fmt"
	"time"
)

// DateFormat is the canonical layout of a date token.
const DateFormat = "2006-01-02"

// readDateFormat also accepts single-digit months and days.
const readDateFormat = "2006-1-2"

// Date is a calendar day. The zero value is the sentinel that sorts before
// every real date and is the cursor before any date line was read.
type Date struct {
	y int
	m time.Month
	d int
}

// NewDate returns a normalized Date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{t.Year(), t.Month(), t.Day()}
}

// ParseDate parses a YYYY-MM-DD token. Single-digit months and days are
// accepted.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(readDateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date: %s", s)
	}
	return Date{t.Year(), t.Month(), t.Day()}, nil
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Year returns the year of d.
func (d Date) Year() int { return d.y }

// Month returns the month of d.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month of d.
func (d Date) Day() int { return d.d }

// IsZero reports whether d is the sentinel date.
func (d Date) IsZero() bool { return d == Date{} }

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after x.
func (d Date) Compare(x Date) int {
	switch {
	case d.y != x.y:
		return cmpInt(d.y, x.y)
	case d.m != x.m:
		return cmpInt(int(d.m), int(x.m))
	default:
		return cmpInt(d.d, x.d)
	}
}

// Before reports whether d is before x.
func (d Date) Before(x Date) bool { return d.Compare(x) < 0 }

// After reports whether d is after x.
func (d Date) After(x Date) bool { return d.Compare(x) > 0 }

// SameMonth reports whether d and x fall in the same calendar month.
func (d Date) SameMonth(x Date) bool { return d.y == x.y && d.m == x.m }

// MonthStart returns the first day of the month of d.
func (d Date) MonthStart() Date {
	if d.IsZero() {
		return d
	}
	return Date{d.y, d.m, 1}
}

// NextMonth returns the first day of the month following d.
func (d Date) NextMonth() Date {
	if d.m == time.December {
		return Date{d.y + 1, time.January, 1}
	}
	return Date{d.y, d.m + 1, 1}
}

// Time returns d at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC)
}

// Format formats d according to layout, see time.Time.Format.
func (d Date) Format(layout string) string { return d.Time().Format(layout) }

func (d Date) String() string {
	if d.IsZero() {
		return "-"
	}
	return d.Format(DateFormat)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
