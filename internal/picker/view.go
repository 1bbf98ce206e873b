package picker

import (
	"time"

	"github.com/lululau/rangecal/internal/calendar"
	"github.com/lululau/rangecal/internal/holidays"
)

// Cell is a day grid cell classified for rendering.
type Cell struct {
	Date     calendar.Date
	InMonth  bool
	Today    bool
	Selected bool
	InRange  bool
	Weekend  bool
	Disabled bool
	Label    string
	Holiday  *holidays.Info
}

// Classify decides how a day is drawn for the given tentative range. It
// does not look at anything else, so the result depends only on its
// arguments.
func Classify(tentative calendar.Range, d, today calendar.Date) Cell {
	weekend := calendar.IsWeekend(d)
	return Cell{
		Date:     d,
		Today:    d == today,
		Selected: (!tentative.Start.IsZero() && d == tentative.Start) || (!tentative.End.IsZero() && d == tentative.End),
		InRange:  tentative.Contains(d),
		Weekend:  weekend,
		Disabled: weekend,
	}
}

// Panel is one month of the day grid.
type Panel struct {
	Year  int
	Month time.Month
	Title string
	Weeks [][]Cell
}

// MonthOption is one entry of the month grid.
type MonthOption struct {
	Month   time.Month
	Label   string
	Current bool
}

// YearOption is one entry of the year grid.
type YearOption struct {
	Year    int
	Current bool
}

// View is everything the host needs to draw the picker.
type View struct {
	Open          bool
	Phase         Phase
	Cursor        Cursor
	Tentative     calendar.Range
	Panels        []Panel
	Months        []MonthOption
	Years         []YearOption
	CommitEnabled bool
	Text          string
	Placeholder   string
}

// BuildView derives the view model. panels is the number of consecutive
// months shown in the day grid.
func BuildView(s State, svc *calendar.Service, panels int) (View, error) {
	v := View{
		Open:          s.Open,
		Phase:         s.Phase(),
		Cursor:        s.Cursor,
		Tentative:     s.Tentative,
		CommitEnabled: s.CanCommit(),
		Text:          s.Text,
		Placeholder:   Placeholder,
	}

	switch s.Cursor.View {
	case DayGrid:
		if panels < 1 {
			panels = 1
		}
		months, err := svc.Months(s.Cursor.Year, s.Cursor.Month, panels)
		if err != nil {
			return View{}, err
		}
		today := svc.Today()
		v.Panels = make([]Panel, len(months))
		for i, month := range months {
			v.Panels[i] = NewPanel(month, s.Tentative, today)
		}
	case MonthGrid:
		v.Months = make([]MonthOption, 12)
		for i := range v.Months {
			m := time.Month(i + 1)
			v.Months[i] = MonthOption{
				Month:   m,
				Label:   m.String()[:3],
				Current: m == s.Cursor.Month,
			}
		}
	case YearGrid:
		years := s.Cursor.YearPage()
		v.Years = make([]YearOption, len(years))
		for i, y := range years {
			v.Years[i] = YearOption{Year: y, Current: y == s.Cursor.Year}
		}
	}
	return v, nil
}

// NewPanel classifies every day of a month view against a range.
func NewPanel(month calendar.MonthView, tentative calendar.Range, today calendar.Date) Panel {
	weeks := make([][]Cell, len(month.Weeks))
	for i, week := range month.Weeks {
		row := make([]Cell, len(week))
		for j, day := range week {
			cell := Classify(tentative, day.Date, today)
			cell.InMonth = day.InMonth
			cell.Label = day.SecondaryLabel()
			cell.Holiday = day.Holiday
			row[j] = cell
		}
		weeks[i] = row
	}
	return Panel{
		Year:  month.Year,
		Month: month.Month,
		Title: month.Title,
		Weeks: weeks,
	}
}
