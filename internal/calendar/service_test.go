package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lululau/rangecal/internal/holidays"
)

func TestMonthGeneratesCompleteWeeks(t *testing.T) {
	now := time.Date(2025, 11, 18, 10, 0, 0, 0, time.Local)
	svc := NewService(WithNow(func() time.Time { return now }))
	view, err := svc.Month(2025, time.November)
	if err != nil {
		t.Fatalf("Month returned error: %v", err)
	}
	if view.Month != time.November {
		t.Fatalf("expected November, got %v", view.Month)
	}
	if view.Title != "November 2025" {
		t.Fatalf("unexpected title %q", view.Title)
	}
	if len(view.Weeks) < 5 {
		t.Fatalf("expected at least 5 weeks, got %d", len(view.Weeks))
	}
	if wd := view.Weeks[0][0].Date.Weekday(); wd != time.Sunday {
		t.Fatalf("calendar should start on Sunday, got %v", wd)
	}
	foundToday := false
	for _, week := range view.Weeks {
		if len(week) != 7 {
			t.Fatalf("week should have 7 days, got %d", len(week))
		}
		for _, day := range week {
			if day.IsToday {
				foundToday = true
				if day.Date.Day != 18 {
					t.Fatalf("expected IsToday on 18th, got %d", day.Date.Day)
				}
			}
		}
	}
	if !foundToday {
		t.Fatalf("expected to flag current day")
	}
}

func TestMonthMarksOutsideDays(t *testing.T) {
	svc := NewService()
	view, err := svc.Month(2024, time.March)
	require.NoError(t, err)

	first := view.Weeks[0][0]
	assert.Equal(t, NewDate(2024, time.February, 25), first.Date)
	assert.False(t, first.InMonth)
	assert.True(t, view.Weeks[0][5].InMonth, "March 1st 2024 is a Friday")
}

func TestMonthRollsOverYear(t *testing.T) {
	svc := NewService()
	view, err := svc.Month(2024, 13)
	require.NoError(t, err)
	assert.Equal(t, 2025, view.Year)
	assert.Equal(t, time.January, view.Month)
}

func TestMonthsReturnsConsecutiveViews(t *testing.T) {
	svc := NewService()
	views, err := svc.Months(2024, time.December, 2)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, time.December, views[0].Month)
	assert.Equal(t, 2025, views[1].Year)
	assert.Equal(t, time.January, views[1].Month)

	_, err = svc.Months(2024, time.January, 0)
	assert.Error(t, err)
}

func TestYearOutOfRange(t *testing.T) {
	svc := NewService()
	_, err := svc.Month(10000, time.January)
	assert.ErrorIs(t, err, ErrYearOutOfRange)
	_, err = svc.Month(0, time.January)
	assert.ErrorIs(t, err, ErrYearOutOfRange)
}

func TestLunarLabels(t *testing.T) {
	svc := NewService(WithLunar(true))
	view, err := svc.Month(2025, time.November)
	require.NoError(t, err)

	labelled := 0
	for _, week := range view.Weeks {
		for _, day := range week {
			if day.SecondaryLabel() != "" {
				labelled++
			}
		}
	}
	assert.Equal(t, len(view.Weeks)*7, labelled)

	plain, err := NewService().Month(2025, time.November)
	require.NoError(t, err)
	assert.Empty(t, plain.Weeks[1][1].SecondaryLabel())
}

func TestSecondaryLabelPrecedence(t *testing.T) {
	assert.Equal(t, "立冬", Day{SolarTerm: "立冬", LunarDayAlias: "初一", LunarMonthAlias: "十月"}.SecondaryLabel())
	assert.Equal(t, "十月", Day{LunarDayAlias: "初一", LunarMonthAlias: "十月"}.SecondaryLabel())
	assert.Equal(t, "初五", Day{LunarDayAlias: "初五", LunarMonthAlias: "十月"}.SecondaryLabel())
}

func TestHolidayAnnotations(t *testing.T) {
	table := holidays.Table{
		"2024": {"10-01": &holidays.Entry{Holiday: true, Name: "National Day"}},
	}
	svc := NewService(WithHolidays(table))
	require.True(t, svc.HasHolidayData())

	view, err := svc.Month(2024, time.October)
	require.NoError(t, err)
	var found *holidays.Info
	for _, week := range view.Weeks {
		for _, day := range week {
			if day.Date == NewDate(2024, time.October, 1) {
				found = day.Holiday
			}
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "National Day", found.Name)
}
