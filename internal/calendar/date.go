package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Layout is the textual form of a Date, zero padded so that string ordering
// matches date ordering.
const Layout = "2006-01-02"

// Date is a local calendar day with no time of day. The zero value means
// "no date"; a Date built by NewDate or Normalize always has Month in 1..12.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date, rolling out-of-range months and days into the
// adjacent month or year the same way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return Normalize(time.Date(year, month, day, 0, 0, 0, 0, time.Local))
}

// Normalize strips the time of day from t.
func Normalize(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// IsZero reports whether d is the "no date" value.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns local midnight of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

// Weekday uses the time package convention, Sunday = 0 ... Saturday = 6.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// AddDays moves d by n days, crossing month and year boundaries.
func (d Date) AddDays(n int) Date {
	return NewDate(d.Year, d.Month, d.Day+n)
}

// Compare returns -1, 0 or +1 as d is before, equal to or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(int(d.Month), int(o.Month))
	default:
		return cmpInt(d.Day, o.Day)
	}
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }

func (d Date) String() string {
	return Format(d)
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

// Format renders d as YYYY-MM-DD.
func Format(d Date) string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Parse accepts exactly three dash separated groups of digits. Values are
// not range checked: "2024-13-01" rolls over to 2025-01-01 and
// "2024-03-00" to 2024-02-29.
func Parse(s string) (Date, bool) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Date{}, false
	}
	var nums [3]int
	for i, p := range parts {
		if p == "" || strings.TrimLeft(p, "0123456789") != "" {
			return Date{}, false
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, false
		}
		nums[i] = n
	}
	return NewDate(nums[0], time.Month(nums[1]), nums[2]), true
}

// IsWeekend reports whether d falls on a Saturday or a Sunday.
func IsWeekend(d Date) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// WeekendsInRange lists every weekend day in [start, end] in ascending
// order. It returns an empty slice when end is before start.
func WeekendsInRange(start, end Date) []string {
	weekends := []string{}
	for cur := start; !cur.After(end); cur = cur.AddDays(1) {
		if IsWeekend(cur) {
			weekends = append(weekends, Format(cur))
		}
	}
	return weekends
}

// MonthGrid lays out the given month in Sunday-first weeks. Leading and
// trailing cells are borrowed from the neighbouring months, so every cell
// holds a real date. month may be outside 1..12 and rolls into the
// neighbouring year.
func MonthGrid(year int, month time.Month) [][]Date {
	first := NewDate(year, month, 1)
	end := NewDate(first.Year, first.Month+1, 1)
	cursor := first.AddDays(-int(first.Weekday()))

	weeks := make([][]Date, 0, 6)
	for {
		week := make([]Date, 7)
		for i := range week {
			week[i] = cursor
			cursor = cursor.AddDays(1)
		}
		weeks = append(weeks, week)
		if !cursor.Before(end) {
			break
		}
	}
	return weeks
}
