package picker

import (
	"strings"

	"github.com/lululau/rangecal/internal/calendar"
)

// Reduce applies one event. The returned Change is non-nil only when the
// event committed a range. Open and Clear are honoured in every phase; all
// other events are ignored while the picker is closed.
func Reduce(s State, ev Event) (State, *Change) {
	switch ev.(type) {
	case Open:
		if !s.Open {
			s.Open = true
			s.Tentative = s.Committed
		}
		return s, nil
	case Clear:
		s.Committed = calendar.Range{}
		s.Tentative = calendar.Range{}
		s.Text = ""
		return s, nil
	}

	if !s.Open {
		return s, nil
	}

	switch ev := ev.(type) {
	case CellClicked:
		if !ev.Date.IsZero() {
			s.Tentative = click(s.Tentative, calendar.Normalize(ev.Date.Time()))
		}
	case TextChanged:
		s.Text = ev.Text
		if r, ok := ParseField(ev.Text); ok {
			s.Tentative = r
		}
	case PredefinedChosen:
		if !ev.Range.Complete() {
			return s, nil
		}
		start := calendar.Normalize(ev.Range.Start.Time())
		end := calendar.Normalize(ev.Range.End.Time())
		if end.Before(start) {
			start, end = end, start
		}
		s.Tentative = calendar.Range{Start: start, End: end}
	case Commit:
		if !s.Tentative.Complete() {
			return s, nil
		}
		s.Committed = s.Tentative
		s.Text = FieldText(s.Committed)
		s.Open = false
		return s, &Change{
			Range:    s.Committed.Strings(),
			Weekends: s.Committed.Weekends(),
		}
	case Cancel:
		s.Tentative = s.Committed
		s.Open = false
	default:
		s.Cursor = navigate(s.Cursor, ev)
	}
	return s, nil
}

// click applies a day click. Weekends are not selectable. A click after a
// complete range always starts over; a click before the start swaps the
// ends; a click on the start itself does nothing.
func click(r calendar.Range, d calendar.Date) calendar.Range {
	if calendar.IsWeekend(d) {
		return r
	}
	switch {
	case r.Start.IsZero() || r.Complete():
		return calendar.Range{Start: d}
	case d.After(r.Start):
		r.End = d
	case d.Before(r.Start):
		r.Start, r.End = d, r.Start
	}
	return r
}

// ParseField reads "<start> ~ <end>". Only a well formed pair with
// start <= end is accepted; an inverted pair is rejected, not swapped.
func ParseField(text string) (calendar.Range, bool) {
	parts := strings.Split(text, Delimiter)
	if len(parts) != 2 {
		return calendar.Range{}, false
	}
	start, ok := calendar.Parse(parts[0])
	if !ok {
		return calendar.Range{}, false
	}
	end, ok := calendar.Parse(parts[1])
	if !ok || end.Before(start) {
		return calendar.Range{}, false
	}
	return calendar.Range{Start: start, End: end}, true
}

func navigate(c Cursor, ev Event) Cursor {
	switch ev := ev.(type) {
	case PrevMonth:
		return c.PreviousMonth()
	case NextMonth:
		return c.NextMonth()
	case ShowMonthGrid:
		c.View = MonthGrid
	case ShowYearGrid:
		c.View = YearGrid
	case MonthChosen:
		if ev.Month < 1 || ev.Month > 12 {
			return c
		}
		c.Month = ev.Month
		c.View = DayGrid
	case YearChosen:
		c.Year = ev.Year
		c.View = MonthGrid
	case PrevYearPage:
		c.Year -= YearPageSize
	case NextYearPage:
		c.Year += YearPageSize
	}
	return c
}
