// Package picker is the date-range selection engine. A State value is never
// mutated in place: Reduce takes a State and one Event and returns the next
// State, so every transition can be tested without a terminal.
package picker

import (
	"fmt"
	"time"

	"github.com/lululau/rangecal/internal/calendar"
)

// Delimiter separates the two dates in the visible field text.
const Delimiter = " ~ "

// Placeholder is shown while the field text is empty.
const Placeholder = "YYYY-MM-DD" + Delimiter + "YYYY-MM-DD"

// YearPageSize is the number of years on one page of the year grid.
const YearPageSize = 12

// ViewMode selects which grid the navigation surface shows.
type ViewMode int

const (
	DayGrid ViewMode = iota
	MonthGrid
	YearGrid
)

func (v ViewMode) String() string {
	switch v {
	case DayGrid:
		return "day"
	case MonthGrid:
		return "month"
	case YearGrid:
		return "year"
	}
	return fmt.Sprintf("ViewMode(%d)", int(v))
}

// Cursor is what the navigation surface currently displays. It is
// independent of the selection.
type Cursor struct {
	Year  int
	Month time.Month
	View  ViewMode
}

// Normalize keeps the month within 1..12 by rolling the year value.
func (c Cursor) Normalize() Cursor {
	for c.Month > 12 {
		c.Month -= 12
		c.Year++
	}
	for c.Month < 1 {
		c.Month += 12
		c.Year--
	}
	return c
}

// NextMonth moves the cursor to the following month.
func (c Cursor) NextMonth() Cursor {
	c.Month++
	return c.Normalize()
}

// PreviousMonth moves the cursor to the preceding month.
func (c Cursor) PreviousMonth() Cursor {
	c.Month--
	return c.Normalize()
}

// YearPage lists the years of the current year grid page,
// Year-6 through Year+5.
func (c Cursor) YearPage() []int {
	years := make([]int, YearPageSize)
	for i := range years {
		years[i] = c.Year - YearPageSize/2 + i
	}
	return years
}

// Phase is the selection state of the picker.
type Phase int

const (
	Closed Phase = iota
	DaySelect
	RangeStart
	RangeComplete
)

func (p Phase) String() string {
	switch p {
	case Closed:
		return "closed"
	case DaySelect:
		return "day-select"
	case RangeStart:
		return "range-start"
	case RangeComplete:
		return "range-complete"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// State is the whole picker: visibility, both ranges, the cursor and the
// visible field text.
type State struct {
	Open      bool
	Committed calendar.Range
	Tentative calendar.Range
	Cursor    Cursor
	Text      string
}

// New returns a closed picker with no selection whose cursor shows the
// month containing today.
func New(today calendar.Date) State {
	return State{
		Cursor: Cursor{Year: today.Year, Month: today.Month, View: DayGrid},
	}
}

// Phase derives the selection phase from the state.
func (s State) Phase() Phase {
	switch {
	case !s.Open:
		return Closed
	case s.Tentative.Complete():
		return RangeComplete
	case !s.Tentative.Start.IsZero():
		return RangeStart
	}
	return DaySelect
}

// CanCommit reports whether the OK action is enabled.
func (s State) CanCommit() bool {
	return s.Open && s.Tentative.Complete()
}

// FieldText renders a complete range the way the field displays it.
func FieldText(r calendar.Range) string {
	return calendar.Format(r.Start) + Delimiter + calendar.Format(r.End)
}
