package calendar

import "time"

// Range is an inclusive pair of dates. Either end may be the zero Date while
// a selection is still in progress.
type Range struct {
	Start Date
	End   Date
}

// Complete reports whether both ends are set.
func (r Range) Complete() bool {
	return !r.Start.IsZero() && !r.End.IsZero()
}

// IsZero reports whether neither end is set.
func (r Range) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// Contains reports whether d lies within a complete range, ends included.
func (r Range) Contains(d Date) bool {
	return r.Complete() && !d.Before(r.Start) && !d.After(r.End)
}

// Strings returns the externalised [start, end] pair, or nil when the range
// is not complete.
func (r Range) Strings() []string {
	if !r.Complete() {
		return nil
	}
	return []string{Format(r.Start), Format(r.End)}
}

// Weekends returns the weekend days of a complete range.
func (r Range) Weekends() []string {
	if !r.Complete() {
		return []string{}
	}
	return WeekendsInRange(r.Start, r.End)
}

// PredefinedRange is a labelled shortcut offered next to the calendar.
type PredefinedRange struct {
	Label string
	Range Range
}

// PredefinedRanges returns the standard shortcuts relative to now. The
// catalog is rebuilt on every call so it always tracks the given clock.
func PredefinedRanges(now time.Time) []PredefinedRange {
	today := Normalize(now)
	return []PredefinedRange{
		{Label: "Today", Range: Range{Start: today, End: today}},
		{Label: "This Week", Range: Range{Start: today.AddDays(-int(today.Weekday())), End: today}},
		{Label: "Last 7 Days", Range: Range{Start: today.AddDays(-6), End: today}},
		{Label: "Last Month", Range: Range{
			Start: NewDate(today.Year, today.Month-1, 1),
			End:   NewDate(today.Year, today.Month, 0),
		}},
	}
}
