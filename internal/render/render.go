// Package render draws the picker view model as terminal text.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lululau/rangecal/internal/calendar"
	"github.com/lululau/rangecal/internal/picker"
	"github.com/lululau/rangecal/internal/textwidth"
	"github.com/lululau/rangecal/internal/widget"
)

const (
	cellWidth   = 4
	cellGap     = 1
	panelGap    = 3
	optionWidth = 8
	optionCols  = 3
)

var (
	noColorMode bool // Global flag to disable all color output
)

// SetNoColor sets the global no-color flag
func SetNoColor(disable bool) {
	noColorMode = disable
}

// NoColor reports whether color output is disabled.
func NoColor() bool {
	return noColorMode
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FEC260"))
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A5B4FC"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	weekendStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4B5563"))
	todayStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#34D399")).Bold(true)
	holidayStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6"))
	workdayStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316"))
	inRangeStyle  = lipgloss.NewStyle().Background(lipgloss.Color("#1E3A5F"))
	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0F172A")).
			Background(lipgloss.Color("#FEC260"))
	focusStyle   = lipgloss.NewStyle().Reverse(true)
	buttonStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#34D399"))
	fieldStyle   = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#475569")).
			Padding(0, 1)
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
)

var weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Focus marks what the host highlights. Date is the day grid cursor, Index
// the month or year grid cursor and Predefined the shortcut in effect.
type Focus struct {
	Date       calendar.Date
	Index      int
	Predefined int
}

// NoPredefinedFocus leaves every shortcut unhighlighted.
const NoPredefinedFocus = -1

// Picker renders the whole open picker: navigation grid and footer.
func Picker(v widget.View, focus Focus) string {
	var body string
	switch v.Cursor.View {
	case picker.DayGrid:
		body = DayGrid(v.Panels, focus.Date)
	case picker.MonthGrid:
		body = MonthGrid(v.Months, v.Cursor.Year, focus.Index)
	case picker.YearGrid:
		body = YearGrid(v.Years, focus.Index)
	}
	return strings.Join([]string{body, "", Footer(v, focus.Predefined)}, "\n")
}

// Field renders the text field with its placeholder and clear affordance.
func Field(text string, placeholder string) string {
	content := text
	if content == "" {
		content = style(dimStyle, placeholder)
	} else {
		content += "  " + style(dimStyle, "x")
	}
	if noColorMode {
		return "[ " + content + " ]"
	}
	return fieldStyle.Render(content)
}

// Footer renders the shortcut list and the OK button.
func Footer(v widget.View, focused int) string {
	var sb strings.Builder
	for i, r := range v.Predefined {
		label := fmt.Sprintf("%d %s", i+1, r.Label)
		if i == focused {
			label = mark(focusStyle, "(", label, ")")
		}
		sb.WriteString(label)
		sb.WriteString("   ")
	}
	ok := "[ OK ]"
	if v.CommitEnabled {
		ok = style(buttonStyle, ok)
	} else {
		ok = style(dimStyle, ok)
		if noColorMode {
			ok = "[ -- ]"
		}
	}
	sb.WriteString(ok)
	return sb.String()
}

// DayGrid renders month panels side by side.
func DayGrid(panels []picker.Panel, focus calendar.Date) string {
	blocks := make([]string, 0, len(panels)*2)
	for i, p := range panels {
		if i > 0 {
			blocks = append(blocks, strings.Repeat(" ", panelGap))
		}
		blocks = append(blocks, Panel(p, focus))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

// Panel renders one month: title, weekday header and a row per week, with
// an extra row of secondary labels when the cells carry any.
func Panel(p picker.Panel, focus calendar.Date) string {
	width := 7*cellWidth + 6*cellGap
	gap := strings.Repeat(" ", cellGap)

	header := make([]string, len(weekdays))
	for i, wd := range weekdays {
		header[i] = style(headerStyle, textwidth.PadCenter(wd, cellWidth))
	}

	lines := []string{
		style(titleStyle, textwidth.PadCenter(p.Title, width)),
		strings.Join(header, gap),
	}
	labelled := hasLabels(p)
	for _, week := range p.Weeks {
		days := make([]string, len(week))
		labels := make([]string, len(week))
		for i, c := range week {
			days[i] = renderCell(c, c.Date == focus)
			labels[i] = renderLabel(c)
		}
		lines = append(lines, strings.Join(days, gap))
		if labelled {
			lines = append(lines, strings.Join(labels, gap))
		}
	}
	return strings.Join(lines, "\n")
}

func hasLabels(p picker.Panel) bool {
	for _, week := range p.Weeks {
		for _, c := range week {
			if c.Label != "" {
				return true
			}
		}
	}
	return false
}

func renderCell(c picker.Cell, focused bool) string {
	num := fmt.Sprintf("%2d", c.Date.Day)
	switch {
	case focused:
		return mark(focusStyle, ">", num, "<")
	case c.Selected:
		return mark(selectedStyle, "[", num, "]")
	case c.InRange && !c.Disabled:
		return mark(inRangeStyle, " ", num, "*")
	case c.InRange:
		return mark(inRangeStyle.Inherit(weekendStyle), " ", num, "~")
	case c.Today:
		return mark(todayStyle, " ", num, ".")
	case c.Holiday != nil && c.Holiday.IsHoliday:
		return mark(holidayStyle, " ", num, " ")
	case c.Holiday != nil:
		return mark(workdayStyle, " ", num, " ")
	case c.Disabled:
		return mark(weekendStyle, " ", num, "-")
	case !c.InMonth:
		return mark(dimStyle, " ", num, " ")
	}
	return " " + num + " "
}

func renderLabel(c picker.Cell) string {
	label := textwidth.PadCenter(textwidth.Truncate(c.Label, cellWidth), cellWidth)
	if !c.InMonth || c.Disabled {
		return style(dimStyle, label)
	}
	return label
}

// MonthGrid renders the twelve month labels in rows of three.
func MonthGrid(months []picker.MonthOption, year int, focused int) string {
	labels := make([]string, len(months))
	current := make([]bool, len(months))
	for i, m := range months {
		labels[i] = m.Label
		current[i] = m.Current
	}
	return style(titleStyle, fmt.Sprintf("%d", year)) + "\n" + optionGrid(labels, current, focused)
}

// YearGrid renders one page of twelve years in rows of three.
func YearGrid(years []picker.YearOption, focused int) string {
	labels := make([]string, len(years))
	current := make([]bool, len(years))
	for i, y := range years {
		labels[i] = fmt.Sprintf("%d", y.Year)
		current[i] = y.Current
	}
	title := ""
	if len(years) > 0 {
		title = fmt.Sprintf("%d - %d", years[0].Year, years[len(years)-1].Year)
	}
	return style(titleStyle, title) + "\n" + optionGrid(labels, current, focused)
}

func optionGrid(labels []string, current []bool, focused int) string {
	var rows []string
	var row []string
	for i, label := range labels {
		text := textwidth.PadCenter(label, optionWidth-2)
		switch {
		case i == focused:
			text = mark(focusStyle, ">", text, "<")
		case current[i]:
			text = mark(selectedStyle, "[", text, "]")
		default:
			text = " " + text + " "
		}
		row = append(row, text)
		if len(row) == optionCols {
			rows = append(rows, strings.Join(row, " "))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, " "))
	}
	return strings.Join(rows, "\n")
}

// mark wraps text in a style, or in the given marker characters when colors
// are disabled.
func mark(s lipgloss.Style, left, text, right string) string {
	if noColorMode {
		return left + text + right
	}
	return s.Render(" " + text + " ")
}

func style(s lipgloss.Style, text string) string {
	if noColorMode {
		return text
	}
	return s.Render(text)
}

// Legend explains the cell markers and colors.
func Legend(holidays bool) string {
	var legend string
	if noColorMode {
		legend = "[d] selected  d* in range  d. today  d- weekend (not selectable)"
	} else {
		legend = "yellow=selected  blue band=in range  green=today  gray=weekend (not selectable)"
	}
	if holidays {
		if noColorMode {
			legend += "  (holiday colors need color output)"
		} else {
			legend += "  blue=holiday  orange=make-up workday"
		}
	}
	return style(helpStyle, legend)
}
