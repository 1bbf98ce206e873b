package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/lululau/rangecal/internal/calendar"
	"github.com/lululau/rangecal/internal/config"
	"github.com/lululau/rangecal/internal/picker"
	"github.com/lululau/rangecal/internal/render"
	"github.com/lululau/rangecal/internal/textwidth"
	"github.com/lululau/rangecal/internal/widget"
)

func (a *app) pickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Open the interactive picker (default)",
		Long:  "Open the interactive picker. The last committed range and its weekends are printed on exit.",
		Args:  cobra.NoArgs,
		RunE:  a.runPick,
	}
}

func (a *app) runPick(cmd *cobra.Command, args []string) error {
	svc := a.service()

	var last *picker.Change
	ctrl := widget.New(svc,
		widget.WithOnChange(func(rng, weekends []string) {
			last = &picker.Change{Range: rng, Weekends: weekends}
		}),
		widget.WithPredefined(calendar.PredefinedRanges(svc.Now())),
		widget.WithPanels(a.cfg.UI.Panels),
		widget.WithLogger(a.logger),
	)

	if err := a.runPicker(ctrl); err != nil {
		return fmt.Errorf("picker failed: %w", err)
	}
	if last == nil {
		return nil
	}
	return writeChange(a.out, a.cfg.Output.Format, *last)
}

func (a *app) weekendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weekends START END",
		Short: "List the weekend days of an inclusive range",
		Example: `  rangecal weekends 2024-03-05 2024-03-12
  rangecal weekends --format text 2024-03-01 2024-03-31`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseDate(args[0])
			if err != nil {
				return err
			}
			end, err := parseDate(args[1])
			if err != nil {
				return err
			}

			change := picker.Change{
				Range:    []string{calendar.Format(start), calendar.Format(end)},
				Weekends: calendar.WeekendsInRange(start, end),
			}
			return writeChange(a.out, a.cfg.Output.Format, change)
		},
	}
}

func (a *app) gridCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grid [YEAR [MONTH]]",
		Short: "Print month grids without entering the picker",
		Long: `Print month grids and exit.

  grid            the current month and the next
  grid 1983       every month of 1983
  grid 2012 12    December 2012 and January 2013`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := a.service()
			today := svc.Today()
			opts := render.PlainOptions{
				Writer:  a.out,
				Service: svc,
				Year:    today.Year,
				Month:   today.Month,
				Months:  a.cfg.UI.Panels,
			}

			switch len(args) {
			case 1:
				year, err := parseNumber(args[0], "year")
				if err != nil {
					return err
				}
				opts.Year, opts.Month, opts.Months = year, time.January, 12
			case 2:
				year, err := parseNumber(args[0], "year")
				if err != nil {
					return err
				}
				month, err := parseNumber(args[1], "month")
				if err != nil {
					return err
				}
				if month < 1 || month > 12 {
					return fmt.Errorf("month must be between 1 and 12 (got %d)", month)
				}
				opts.Year, opts.Month = year, time.Month(month)
			}
			return render.RunPlain(opts)
		},
	}
}

func (a *app) rangesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ranges",
		Short: "Print the predefined ranges relative to today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ranges := calendar.PredefinedRanges(a.service().Now())
			if a.cfg.Output.Format == config.FormatText {
				for i, r := range ranges {
					if _, err := fmt.Fprintf(a.out, "%d  %s %s\n", i+1, textwidth.PadRight(r.Label, 12), picker.FieldText(r.Range)); err != nil {
						return err
					}
				}
				return nil
			}

			type entry struct {
				Label string   `json:"label"`
				Range []string `json:"range"`
			}
			entries := make([]entry, len(ranges))
			for i, r := range ranges {
				entries[i] = entry{Label: r.Label, Range: r.Range.Strings()}
			}
			return writeJSON(a.out, entries)
		},
	}
}

// writeChange prints a change as JSON, or as the range line followed by one
// weekend per line.
func writeChange(w io.Writer, format string, change picker.Change) error {
	if format != config.FormatText {
		return writeJSON(w, change)
	}
	if len(change.Range) == 2 {
		if _, err := fmt.Fprintf(w, "%s%s%s\n", change.Range[0], picker.Delimiter, change.Range[1]); err != nil {
			return err
		}
	}
	for _, day := range change.Weekends {
		if _, err := fmt.Fprintln(w, day); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseNumber(value string, field string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("cannot parse %q as %s", value, field)
	}
	return n, nil
}
