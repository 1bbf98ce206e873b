package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/lululau/rangecal/internal/calendar"
	"github.com/lululau/rangecal/internal/picker"
)

// PlainOptions controls how the non-interactive renderer behaves.
type PlainOptions struct {
	Writer  io.Writer
	Service *calendar.Service
	Year    int
	Month   time.Month
	Months  int
	Width   int
	// Selection, when complete, is highlighted in the grid.
	Selection calendar.Range
}

// RunPlain renders the requested months exactly once. Panels are placed
// side by side while they fit in the terminal width.
func RunPlain(opts PlainOptions) error {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	if opts.Service == nil {
		opts.Service = calendar.NewService()
	}
	if opts.Months < 1 {
		opts.Months = 1
	}

	views, err := opts.Service.Months(opts.Year, opts.Month, opts.Months)
	if err != nil {
		return err
	}
	today := opts.Service.Today()
	blocks := make([]string, len(views))
	for i, view := range views {
		blocks[i] = Panel(picker.NewPanel(view, opts.Selection, today), calendar.Date{})
	}

	width := opts.Width
	if width == 0 {
		width = DetectWidth()
	}
	if _, err := fmt.Fprintln(opts.Writer, Layout(blocks, width)); err != nil {
		return err
	}
	_, err = fmt.Fprintln(opts.Writer, "\n"+Legend(opts.Service.HasHolidayData()))
	return err
}

// Layout joins blocks into rows that fit within width columns.
func Layout(blocks []string, width int) string {
	if len(blocks) == 0 {
		return ""
	}
	var rows []string
	var row []string
	rowWidth := 0
	for _, block := range blocks {
		w := lipgloss.Width(block)
		if len(row) > 0 && rowWidth+panelGap+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		if len(row) > 0 {
			row = append(row, strings.Repeat(" ", panelGap))
			rowWidth += panelGap
		}
		row = append(row, block)
		rowWidth += w
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	return strings.Join(rows, "\n\n")
}

// DetectWidth tries to determine the terminal width, falling back to 100 cols.
func DetectWidth() int {
	fd := os.Stdout.Fd()
	if isatty.IsTerminal(fd) {
		if w, _, err := term.GetSize(int(fd)); err == nil {
			return w
		}
	}
	return 100
}
