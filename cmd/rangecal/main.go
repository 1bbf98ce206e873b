package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lululau/rangecal/internal/calendar"
	"github.com/lululau/rangecal/internal/config"
	"github.com/lululau/rangecal/internal/holidays"
	"github.com/lululau/rangecal/internal/logging"
	"github.com/lululau/rangecal/internal/render"
	"github.com/lululau/rangecal/internal/tui"
	"github.com/lululau/rangecal/internal/widget"
)

// app carries what every command needs once flags and config are resolved.
type app struct {
	out    io.Writer
	errOut io.Writer

	configPath   string
	noColor      bool
	lunar        bool
	holidaysFile string
	format       string
	today        string

	cfg    *config.Config
	logger *zap.Logger
	now    func() time.Time

	// runPicker runs the interactive picker; tests replace it.
	runPicker func(ctrl *widget.Controller) error
}

func main() {
	if err := newApp(os.Stdout, os.Stderr).rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newApp(out, errOut io.Writer) *app {
	return &app{
		out:       out,
		errOut:    errOut,
		logger:    zap.NewNop(),
		now:       time.Now,
		runPicker: tui.Run,
	}
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rangecal",
		Short: "Pick a date range and list the weekends inside it",
		Long: `rangecal is a two-month date range picker for the terminal.

Weekends cannot be chosen as range ends but are reported when they fall
inside the committed range. Run without a command to open the picker.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: a.runPick,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "Config file path (default: rangecal.yaml in ., $XDG_CONFIG_HOME/rangecal, ~/.config/rangecal)")
	flags.BoolVarP(&a.noColor, "no-color", "N", false, "Disable all color output")
	flags.BoolVar(&a.lunar, "lunar", false, "Show lunar day names under each day")
	flags.StringVar(&a.holidaysFile, "holidays-file", "", "Holiday data file (default: user cache)")
	flags.StringVar(&a.format, "format", "", "Output format: text or json")
	flags.StringVar(&a.today, "today", "", "Pretend today is YYYY-MM-DD")

	rootCmd.AddCommand(a.pickCmd())
	rootCmd.AddCommand(a.weekendsCmd())
	rootCmd.AddCommand(a.gridCmd())
	rootCmd.AddCommand(a.rangesCmd())

	return rootCmd
}

// setup loads config, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("no-color") {
		cfg.UI.NoColor = a.noColor
	}
	if flags.Changed("lunar") {
		cfg.UI.Lunar = a.lunar
	}
	if flags.Changed("holidays-file") {
		cfg.Holidays.File = a.holidaysFile
	}
	if flags.Changed("format") {
		cfg.Output.Format = a.format
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	a.cfg = cfg

	if a.today != "" {
		d, err := parseDate(a.today)
		if err != nil {
			return err
		}
		a.now = func() time.Time { return d.Time() }
	}

	if cfg.UI.NoColor {
		render.SetNoColor(true)
	}

	interactive := cmd.Name() == "pick" || cmd == cmd.Root()
	logger, err := logging.New(cfg.Log, interactive)
	if err != nil {
		return err
	}
	a.logger = logger
	a.logger.Debug("config loaded",
		zap.Int("panels", cfg.UI.Panels),
		zap.String("format", cfg.Output.Format),
		zap.Bool("lunar", cfg.UI.Lunar))
	return nil
}

// service builds the calendar service. Unreadable holiday data is reported
// and otherwise ignored.
func (a *app) service() *calendar.Service {
	opts := []calendar.Option{
		calendar.WithNow(a.now),
		calendar.WithLunar(a.cfg.UI.Lunar),
	}

	table, err := holidays.Load(a.cfg.Holidays.File)
	if err != nil {
		fmt.Fprintf(a.errOut, "Warning: cannot load holidays: %v\n", err)
		a.logger.Warn("holidays not loaded", zap.Error(err))
	} else if len(table) > 0 {
		opts = append(opts, calendar.WithHolidays(table))
	}
	return calendar.NewService(opts...)
}

// parseDate reads a command line date. Unlike typed picker input it refuses
// years that cannot be written as four digits.
func parseDate(arg string) (calendar.Date, error) {
	d, ok := calendar.Parse(arg)
	if !ok || d.Year < calendar.MinYear || d.Year > calendar.MaxYear {
		return calendar.Date{}, invalidDate(arg)
	}
	return d, nil
}

func invalidDate(arg string) error {
	return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", arg)
}
