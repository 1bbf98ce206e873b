package calendar

import (
	"errors"
	"fmt"
	"time"

	calendarlib "github.com/Lofanmi/chinese-calendar-golang/calendar"

	"github.com/lululau/rangecal/internal/holidays"
)

// Year range that Format can represent as four digits.
const (
	MinYear = 1
	MaxYear = 9999
)

// Gregorian year range supported by the lunar calendar library.
const (
	minLunarYear = 1900
	maxLunarYear = 3000
)

// ErrYearOutOfRange indicates the requested year cannot be laid out.
var ErrYearOutOfRange = fmt.Errorf("year must be between %d and %d", MinYear, MaxYear)

// Day is one cell of a month view, annotated for display.
type Day struct {
	Date            Date
	InMonth         bool
	IsToday         bool
	LunarDayAlias   string
	LunarMonthAlias string
	SolarTerm       string
	Holiday         *holidays.Info
}

// SecondaryLabel is the text shown beneath the day number: a solar term,
// else the lunar month name on the first day of a lunar month, else the
// lunar day.
func (d Day) SecondaryLabel() string {
	if d.SolarTerm != "" {
		return d.SolarTerm
	}
	if d.LunarDayAlias == "初一" && d.LunarMonthAlias != "" {
		return d.LunarMonthAlias
	}
	return d.LunarDayAlias
}

// MonthView is a month laid out into Sunday-first weeks.
type MonthView struct {
	Year  int
	Month time.Month
	Title string
	Weeks [][]Day
}

// Service builds month views against an injectable clock.
type Service struct {
	now      func() time.Time
	lunar    bool
	holidays holidays.Table
}

// Option configures the Service.
type Option func(*Service)

// WithNow overrides the clock, which is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithLunar enables lunar day and solar term labels.
func WithLunar(enabled bool) Option {
	return func(s *Service) {
		s.lunar = enabled
	}
}

// WithHolidays attaches holiday annotations.
func WithHolidays(table holidays.Table) Option {
	return func(s *Service) {
		s.holidays = table
	}
}

// NewService constructs a Service.
func NewService(opts ...Option) *Service {
	s := &Service{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now returns the current instant according to the service clock.
func (s *Service) Now() time.Time {
	return s.now()
}

// Today returns the current local day according to the service clock.
func (s *Service) Today() Date {
	return Normalize(s.now())
}

// HasHolidayData reports whether holiday annotations are configured.
func (s *Service) HasHolidayData() bool {
	return len(s.holidays) > 0
}

// Month builds a MonthView. month may be outside 1..12 and rolls over into
// the neighbouring year.
func (s *Service) Month(year int, month time.Month) (MonthView, error) {
	first := NewDate(year, month, 1)
	if first.Year < MinYear || first.Year > MaxYear {
		return MonthView{}, ErrYearOutOfRange
	}
	today := s.Today()

	grid := MonthGrid(first.Year, first.Month)
	weeks := make([][]Day, len(grid))
	for i, row := range grid {
		week := make([]Day, len(row))
		for j, d := range row {
			week[j] = s.buildDay(d, first.Month, today)
		}
		weeks[i] = week
	}

	return MonthView{
		Year:  first.Year,
		Month: first.Month,
		Title: fmt.Sprintf("%s %d", first.Month, first.Year),
		Weeks: weeks,
	}, nil
}

// Months returns count consecutive month views starting at year/month.
func (s *Service) Months(year int, month time.Month, count int) ([]MonthView, error) {
	views := make([]MonthView, 0, count)
	for i := 0; i < count; i++ {
		view, err := s.Month(year, month+time.Month(i))
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if len(views) == 0 {
		return nil, errors.New("no months requested")
	}
	return views, nil
}

func (s *Service) buildDay(d Date, currentMonth time.Month, today Date) Day {
	day := Day{
		Date:    d,
		InMonth: d.Month == currentMonth,
		IsToday: d == today,
	}
	if s.holidays != nil {
		day.Holiday = s.holidays.Lookup(d.Year, int(d.Month), d.Day)
	}
	if !s.lunar || d.Year < minLunarYear || d.Year > maxLunarYear {
		return day
	}

	cal := calendarlib.BySolar(
		int64(d.Year),
		int64(d.Month),
		int64(d.Day),
		12, 0, 0,
	)
	day.LunarDayAlias = cal.Lunar.DayAlias()
	day.LunarMonthAlias = cal.Lunar.MonthAlias()
	if solarterm := cal.Solar.CurrentSolarterm; solarterm != nil {
		t := d.Time()
		if solarterm.IsInDay(&t) {
			day.SolarTerm = solarterm.Alias()
		}
	}
	return day
}
