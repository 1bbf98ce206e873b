// Package tui hosts the picker in a Bubble Tea program. It turns key presses
// into controller events and draws the controller's view model; the day the
// keyboard cursor rests on is the only state it keeps for itself.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lululau/rangecal/internal/calendar"
	"github.com/lululau/rangecal/internal/picker"
	"github.com/lululau/rangecal/internal/render"
	"github.com/lululau/rangecal/internal/widget"
)

var (
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316"))
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	appStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FEC260"))
)

// Run starts the interactive picker and blocks until the user quits.
func Run(ctrl *widget.Controller) error {
	prog := tea.NewProgram(newModel(ctrl), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}

type model struct {
	ctrl      *widget.Controller
	keys      keyMap
	help      help.Model
	input     textinput.Model
	typing    bool
	focus     calendar.Date
	index     int
	statusMsg string
}

func newModel(ctrl *widget.Controller) model {
	ti := textinput.New()
	ti.Placeholder = picker.Placeholder
	ti.CharLimit = 32
	ti.Prompt = "> "
	return model{
		ctrl:  ctrl,
		keys:  defaultKeyMap(),
		help:  help.New(),
		input: ti,
		focus: ctrl.Today(),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		if m.typing {
			return m.handleTypingKey(msg)
		}
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.statusMsg = ""
		if !m.ctrl.IsOpen() {
			return m.handleClosedKey(msg)
		}
		return m.handleOpenKey(msg)
	}
	return m, nil
}

func (m model) handleClosedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Open):
		m.open()
	case key.Matches(msg, m.keys.Type):
		m.open()
		cmd := m.startTyping()
		return m, cmd
	case key.Matches(msg, m.keys.Clear):
		m.ctrl.ClearRequested()
	}
	return m, nil
}

func (m model) handleOpenKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.ctrl.CancelRequested()
		return m, nil
	case key.Matches(msg, m.keys.Commit):
		m.ctrl.CommitRequested()
		if m.ctrl.IsOpen() {
			m.statusMsg = "pick both ends of the range first"
		}
		return m, nil
	case key.Matches(msg, m.keys.Clear):
		m.ctrl.ClearRequested()
		return m, nil
	case key.Matches(msg, m.keys.Type):
		cmd := m.startTyping()
		return m, cmd
	case key.Matches(msg, m.keys.Shortcut):
		m.chooseShortcut(msg)
		return m, nil
	}

	switch m.ctrl.State().Cursor.View {
	case picker.DayGrid:
		m.handleDayKey(msg)
	case picker.MonthGrid:
		m.handleMonthKey(msg)
	case picker.YearGrid:
		m.handleYearKey(msg)
	}
	return m, nil
}

func (m *model) handleDayKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.moveFocus(m.focus.AddDays(-1))
	case key.Matches(msg, m.keys.Right):
		m.moveFocus(m.focus.AddDays(1))
	case key.Matches(msg, m.keys.Up):
		m.moveFocus(m.focus.AddDays(-7))
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(m.focus.AddDays(7))
	case key.Matches(msg, m.keys.PrevPage):
		m.ctrl.PrevMonth()
		m.focus = clampDay(m.focus.Year, m.focus.Month-1, m.focus.Day)
		m.ensureVisible()
	case key.Matches(msg, m.keys.NextPage):
		m.ctrl.NextMonth()
		m.focus = clampDay(m.focus.Year, m.focus.Month+1, m.focus.Day)
		m.ensureVisible()
	case key.Matches(msg, m.keys.Select):
		if calendar.IsWeekend(m.focus) {
			m.statusMsg = "weekends cannot be selected"
			return
		}
		m.ctrl.CellClicked(m.focus)
	case key.Matches(msg, m.keys.Months):
		m.ctrl.ShowMonthGrid()
		m.index = int(m.ctrl.State().Cursor.Month) - 1
	case key.Matches(msg, m.keys.Years):
		m.ctrl.ShowYearGrid()
		m.index = picker.YearPageSize / 2
	}
}

func (m *model) handleMonthKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Select):
		m.ctrl.MonthChosen(time.Month(m.index + 1))
		cur := m.ctrl.State().Cursor
		m.focus = clampDay(cur.Year, cur.Month, m.focus.Day)
	case key.Matches(msg, m.keys.Years):
		m.ctrl.ShowYearGrid()
		m.index = picker.YearPageSize / 2
	default:
		m.moveIndex(msg)
	}
}

func (m *model) handleYearKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Select):
		years := m.ctrl.State().Cursor.YearPage()
		m.ctrl.YearChosen(years[m.index])
		m.index = int(m.ctrl.State().Cursor.Month) - 1
	case key.Matches(msg, m.keys.PrevPage):
		m.ctrl.PrevYearPage()
	case key.Matches(msg, m.keys.NextPage):
		m.ctrl.NextYearPage()
	default:
		m.moveIndex(msg)
	}
}

func (m model) handleTypingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc, tea.KeyTab, tea.KeyEnter:
		m.typing = false
		m.input.Blur()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != before {
		prev := m.ctrl.State().Tentative
		m.ctrl.TextChanged(value)
		if next := m.ctrl.State().Tentative; next != prev && !next.Start.IsZero() {
			m.moveFocus(next.Start)
		}
	}
	return m, cmd
}

func (m *model) open() {
	m.ctrl.OpenRequested()
	if start := m.ctrl.State().Tentative.Start; !start.IsZero() {
		m.focus = start
	} else {
		m.focus = m.ctrl.Today()
	}
	m.ensureVisible()
}

func (m *model) startTyping() tea.Cmd {
	m.typing = true
	m.input.SetValue(m.ctrl.State().Text)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *model) chooseShortcut(msg tea.KeyMsg) {
	ranges := m.ctrl.Predefined()
	idx := int(msg.Runes[0] - '1')
	if idx < 0 || idx >= len(ranges) {
		m.statusMsg = "no such shortcut"
		return
	}
	m.ctrl.PredefinedRangeChosen(ranges[idx].Range)
	if m.ctrl.State().Cursor.View == picker.DayGrid {
		m.moveFocus(m.ctrl.State().Tentative.Start)
	}
}

// moveFocus puts the keyboard cursor on d and pages the calendar so that d
// is on screen.
func (m *model) moveFocus(d calendar.Date) {
	m.focus = d
	m.ensureVisible()
}

// ensureVisible pages one month when the focus sits in the month just off
// either edge of the panels, and jumps straight to the focus month otherwise.
func (m *model) ensureVisible() {
	cur := m.ctrl.State().Cursor
	panels := time.Month(m.ctrl.Panels())
	first := calendar.NewDate(cur.Year, cur.Month, 1)
	last := calendar.NewDate(cur.Year, cur.Month+panels, 0)
	before := calendar.NewDate(cur.Year, cur.Month-1, 1)
	after := calendar.NewDate(cur.Year, cur.Month+panels+1, 0)
	switch {
	case !m.focus.Before(first) && !m.focus.After(last):
		return
	case !m.focus.Before(before) && m.focus.Before(first):
		m.ctrl.PrevMonth()
	case m.focus.After(last) && !m.focus.After(after):
		m.ctrl.NextMonth()
	default:
		m.ctrl.YearChosen(m.focus.Year)
		m.ctrl.MonthChosen(m.focus.Month)
	}
}

func (m *model) moveIndex(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.index--
	case key.Matches(msg, m.keys.Right):
		m.index++
	case key.Matches(msg, m.keys.Up):
		m.index -= 3
	case key.Matches(msg, m.keys.Down):
		m.index += 3
	}
	m.index = max(0, min(m.index, 11))
}

// clampDay builds a date in the given month, pulling day back to the
// month's last day instead of rolling over.
func clampDay(year int, month time.Month, day int) calendar.Date {
	first := calendar.NewDate(year, month, 1)
	last := calendar.NewDate(first.Year, first.Month+1, 0)
	if day > last.Day {
		day = last.Day
	}
	return calendar.NewDate(first.Year, first.Month, day)
}

func (m model) View() string {
	state := m.ctrl.State()
	open := state.Open

	var sb strings.Builder
	sb.WriteString(styled(appStyle, "rangecal"))
	sb.WriteString("\n\n")
	if m.typing {
		sb.WriteString(m.input.View())
	} else {
		sb.WriteString(render.Field(state.Text, picker.Placeholder))
	}
	sb.WriteString("\n\n")

	status := m.statusMsg
	if open {
		v, err := m.ctrl.View()
		if err != nil {
			status = err.Error()
		} else {
			sb.WriteString(render.Picker(v, render.Focus{
				Date:       m.focus,
				Index:      m.index,
				Predefined: activeShortcut(v.Predefined, state.Tentative),
			}))
			sb.WriteString("\n\n")
		}
	} else if state.Committed.Complete() {
		weekends := state.Committed.Weekends()
		summary := "weekends: none"
		if len(weekends) > 0 {
			summary = "weekends: " + strings.Join(weekends, ", ")
		}
		sb.WriteString(styled(summaryStyle, summary))
		sb.WriteString("\n\n")
	}

	h := m.help
	h.ShowAll = open
	sb.WriteString(h.View(m.keys))
	if status != "" {
		sb.WriteString("\n")
		sb.WriteString(styled(statusStyle, status))
	}
	return sb.String()
}

// activeShortcut is the index of the shortcut whose range is the tentative
// selection, or render.NoPredefinedFocus.
func activeShortcut(ranges []calendar.PredefinedRange, tentative calendar.Range) int {
	if !tentative.Complete() {
		return render.NoPredefinedFocus
	}
	for i, r := range ranges {
		if r.Range == tentative {
			return i
		}
	}
	return render.NoPredefinedFocus
}

func styled(s lipgloss.Style, text string) string {
	if render.NoColor() {
		return text
	}
	return s.Render(text)
}
