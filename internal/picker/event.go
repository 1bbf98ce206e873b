package picker

import (
	"time"

	"github.com/lululau/rangecal/internal/calendar"
)

// Event is one user gesture delivered by the host.
type Event interface {
	event()
}

type (
	// Open shows the picker and copies the committed range into the
	// tentative one.
	Open struct{}
	// CellClicked selects a day in the day grid.
	CellClicked struct{ Date calendar.Date }
	// TextChanged carries the raw field text after a keystroke.
	TextChanged struct{ Text string }
	// PredefinedChosen replaces the tentative range with a shortcut.
	PredefinedChosen struct{ Range calendar.Range }
	// Commit accepts the tentative range.
	Commit struct{}
	// Cancel discards tentative edits and closes the picker.
	Cancel struct{}
	// Clear removes every selection and empties the field.
	Clear struct{}

	PrevMonth     struct{}
	NextMonth     struct{}
	ShowMonthGrid struct{}
	ShowYearGrid  struct{}
	MonthChosen   struct{ Month time.Month }
	YearChosen    struct{ Year int }
	PrevYearPage  struct{}
	NextYearPage  struct{}
)

func (Open) event()             {}
func (CellClicked) event()      {}
func (TextChanged) event()      {}
func (PredefinedChosen) event() {}
func (Commit) event()           {}
func (Cancel) event()           {}
func (Clear) event()            {}
func (PrevMonth) event()        {}
func (NextMonth) event()        {}
func (ShowMonthGrid) event()    {}
func (ShowYearGrid) event()     {}
func (MonthChosen) event()      {}
func (YearChosen) event()       {}
func (PrevYearPage) event()     {}
func (NextYearPage) event()     {}

// Change is what a successful commit reports to the host.
type Change struct {
	Range    []string `json:"range"`
	Weekends []string `json:"weekends"`
}
