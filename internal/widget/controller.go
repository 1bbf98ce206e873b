// Package widget is the outward face of the picker: it owns visibility,
// feeds host gestures into the selection engine and reports commits.
package widget

import (
	"time"

	"go.uber.org/zap"

	"github.com/lululau/rangecal/internal/calendar"
	"github.com/lululau/rangecal/internal/picker"
)

// OnChange receives the committed range as two YYYY-MM-DD strings and the
// weekend days inside it. It is called once per successful commit and never
// on cancel, clear or navigation.
type OnChange func(rng []string, weekends []string)

// Controller is driven from a single event loop and is not safe for
// concurrent use.
type Controller struct {
	svc        *calendar.Service
	state      picker.State
	onChange   OnChange
	predefined []calendar.PredefinedRange
	panels     int
	logger     *zap.Logger
}

// Option configures the Controller.
type Option func(*Controller)

// WithOnChange sets the commit callback.
func WithOnChange(fn OnChange) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

// WithPredefined sets the shortcut catalog offered below the calendar.
func WithPredefined(ranges []calendar.PredefinedRange) Option {
	return func(c *Controller) {
		c.predefined = ranges
	}
}

// WithPanels sets how many consecutive months the day grid shows.
func WithPanels(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.panels = n
		}
	}
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// New constructs a closed Controller whose cursor shows the current month.
func New(svc *calendar.Service, opts ...Option) *Controller {
	if svc == nil {
		svc = calendar.NewService()
	}
	c := &Controller{
		svc:    svc,
		panels: 2,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.state = picker.New(svc.Today())
	return c
}

// Dispatch applies one event and fires the callback when it commits.
func (c *Controller) Dispatch(ev picker.Event) {
	before := c.state
	next, change := picker.Reduce(c.state, ev)
	c.state = next

	switch ev := ev.(type) {
	case picker.Open:
		if !before.Open {
			c.logger.Debug("picker opened", zap.Stringer("phase", next.Phase()))
		}
	case picker.CellClicked:
		if next.Tentative == before.Tentative {
			c.logger.Debug("click ignored", zap.Stringer("date", ev.Date))
		}
	case picker.TextChanged:
		if before.Open && next.Tentative == before.Tentative {
			c.logger.Debug("typed range not applied", zap.String("text", ev.Text))
		}
	case picker.Cancel:
		if before.Open {
			c.logger.Debug("picker cancelled")
		}
	case picker.Clear:
		c.logger.Debug("selection cleared")
	}

	if change == nil {
		return
	}
	c.logger.Info("range committed",
		zap.Strings("range", change.Range),
		zap.Int("weekends", len(change.Weekends)))
	if c.onChange != nil {
		c.onChange(change.Range, change.Weekends)
	}
}

// OpenRequested shows the picker.
func (c *Controller) OpenRequested() { c.Dispatch(picker.Open{}) }

// CellClicked selects a day.
func (c *Controller) CellClicked(d calendar.Date) { c.Dispatch(picker.CellClicked{Date: d}) }

// TextChanged delivers the raw field text.
func (c *Controller) TextChanged(raw string) { c.Dispatch(picker.TextChanged{Text: raw}) }

// PredefinedRangeChosen applies a shortcut range.
func (c *Controller) PredefinedRangeChosen(r calendar.Range) {
	c.Dispatch(picker.PredefinedChosen{Range: r})
}

// CommitRequested presses OK.
func (c *Controller) CommitRequested() { c.Dispatch(picker.Commit{}) }

// CancelRequested discards tentative edits, e.g. on an outside click.
func (c *Controller) CancelRequested() { c.Dispatch(picker.Cancel{}) }

// ClearRequested drops both ranges and the field text.
func (c *Controller) ClearRequested() { c.Dispatch(picker.Clear{}) }

func (c *Controller) PrevMonth() { c.Dispatch(picker.PrevMonth{}) }
func (c *Controller) NextMonth() { c.Dispatch(picker.NextMonth{}) }
func (c *Controller) ShowMonthGrid() { c.Dispatch(picker.ShowMonthGrid{}) }
func (c *Controller) ShowYearGrid() { c.Dispatch(picker.ShowYearGrid{}) }
func (c *Controller) MonthChosen(m time.Month) { c.Dispatch(picker.MonthChosen{Month: m}) }
func (c *Controller) YearChosen(y int) { c.Dispatch(picker.YearChosen{Year: y}) }
func (c *Controller) PrevYearPage() { c.Dispatch(picker.PrevYearPage{}) }
func (c *Controller) NextYearPage() { c.Dispatch(picker.NextYearPage{}) }

// IsOpen reports visibility.
func (c *Controller) IsOpen() bool {
	return c.state.Open
}

// State returns a copy of the current picker state.
func (c *Controller) State() picker.State {
	return c.state
}

// Committed returns the last committed range, which may be empty.
func (c *Controller) Committed() calendar.Range {
	return c.state.Committed
}

// Predefined returns the shortcut catalog.
func (c *Controller) Predefined() []calendar.PredefinedRange {
	return c.predefined
}

// Panels is the number of months shown side by side in the day grid.
func (c *Controller) Panels() int {
	return c.panels
}

// Today is the current day according to the controller's clock.
func (c *Controller) Today() calendar.Date {
	return c.svc.Today()
}

// View is the picker view model plus the shortcut catalog.
type View struct {
	picker.View
	Predefined []calendar.PredefinedRange
}

// View builds the current view model.
func (c *Controller) View() (View, error) {
	v, err := picker.BuildView(c.state, c.svc, c.panels)
	if err != nil {
		return View{}, err
	}
	return View{View: v, Predefined: c.predefined}, nil
}
