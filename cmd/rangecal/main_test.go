package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lululau/rangecal/internal/calendar"
	"github.com/lululau/rangecal/internal/picker"
	"github.com/lululau/rangecal/internal/widget"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	return dir
}

func run(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()
	cmd := a.rootCmd()
	cmd.SetArgs(args)
	err := cmd.Execute()
	return a.out.(*bytes.Buffer).String(), err
}

func newTestApp() *app {
	return newApp(&bytes.Buffer{}, &bytes.Buffer{})
}

func TestWeekendsJSON(t *testing.T) {
	isolate(t)
	out, err := run(t, newTestApp(), "weekends", "2024-03-05", "2024-03-12")
	require.NoError(t, err)

	var change picker.Change
	require.NoError(t, json.Unmarshal([]byte(out), &change))
	assert.Equal(t, []string{"2024-03-05", "2024-03-12"}, change.Range)
	assert.Equal(t, []string{"2024-03-09", "2024-03-10"}, change.Weekends)
}

func TestWeekendsText(t *testing.T) {
	isolate(t)
	out, err := run(t, newTestApp(), "weekends", "--format", "text", "2024-03-01", "2024-03-03")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01 ~ 2024-03-03\n2024-03-02\n2024-03-03\n", out)
}

func TestWeekendsReversedRangeIsEmpty(t *testing.T) {
	isolate(t)
	out, err := run(t, newTestApp(), "weekends", "2024-03-12", "2024-03-05")
	require.NoError(t, err)
	assert.Contains(t, out, `"weekends": []`)
}

func TestWeekendsInvalidDate(t *testing.T) {
	isolate(t)
	_, err := run(t, newTestApp(), "weekends", "2024/03/05", "2024-03-12")
	assert.EqualError(t, err, `invalid date "2024/03/05": expected YYYY-MM-DD`)

	_, err = run(t, newTestApp(), "weekends", "2024-03-05")
	assert.Error(t, err)
}

func TestRangesText(t *testing.T) {
	isolate(t)
	out, err := run(t, newTestApp(), "ranges", "--today", "2024-03-13", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "1  Today        2024-03-13 ~ 2024-03-13\n")
	assert.Contains(t, out, "4  Last Month   2024-02-01 ~ 2024-02-29\n")
}

func TestRangesJSON(t *testing.T) {
	isolate(t)
	out, err := run(t, newTestApp(), "ranges", "--today", "2024-03-13")
	require.NoError(t, err)

	var entries []struct {
		Label string   `json:"label"`
		Range []string `json:"range"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 4)
	assert.Equal(t, "This Week", entries[1].Label)
	assert.Equal(t, []string{"2024-03-10", "2024-03-13"}, entries[1].Range)
}

func TestBadToday(t *testing.T) {
	isolate(t)
	_, err := run(t, newTestApp(), "ranges", "--today", "yesterday")
	assert.ErrorContains(t, err, "invalid date")
}

func TestGrid(t *testing.T) {
	isolate(t)
	out, err := run(t, newTestApp(), "grid", "--no-color", "2012", "12")
	require.NoError(t, err)
	assert.Contains(t, out, "December 2012")
	assert.Contains(t, out, "January 2013")

	_, err = run(t, newTestApp(), "grid", "2024", "13")
	assert.ErrorContains(t, err, "month must be between 1 and 12")

	_, err = run(t, newTestApp(), "grid", "twenty")
	assert.ErrorContains(t, err, "cannot parse")
}

func TestGridWholeYear(t *testing.T) {
	isolate(t)
	out, err := run(t, newTestApp(), "grid", "1983")
	require.NoError(t, err)
	assert.Contains(t, out, "January 1983")
	assert.Contains(t, out, "December 1983")
}

func TestPickPrintsLastCommit(t *testing.T) {
	isolate(t)
	a := newTestApp()
	a.runPicker = func(ctrl *widget.Controller) error {
		assert.Equal(t, calendar.NewDate(2024, time.March, 13), ctrl.Today())
		assert.Len(t, ctrl.Predefined(), 4)

		ctrl.OpenRequested()
		ctrl.PredefinedRangeChosen(ctrl.Predefined()[0].Range)
		ctrl.CommitRequested()

		ctrl.OpenRequested()
		ctrl.CellClicked(calendar.NewDate(2024, time.March, 5))
		ctrl.CellClicked(calendar.NewDate(2024, time.March, 12))
		ctrl.CommitRequested()
		return nil
	}

	out, err := run(t, a, "--today", "2024-03-13", "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05 ~ 2024-03-12\n2024-03-09\n2024-03-10\n", out)
}

func TestPickWithoutCommitPrintsNothing(t *testing.T) {
	isolate(t)
	a := newTestApp()
	a.runPicker = func(ctrl *widget.Controller) error {
		ctrl.OpenRequested()
		ctrl.CellClicked(calendar.NewDate(2024, time.March, 5))
		ctrl.CancelRequested()
		return nil
	}

	out, err := run(t, a, "pick")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestConfigFileSetsDefaults(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "rc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  panels: 1\noutput:\n  format: text\n"), 0o644))

	a := newTestApp()
	a.runPicker = func(ctrl *widget.Controller) error {
		assert.Equal(t, 1, ctrl.Panels())
		return nil
	}
	_, err := run(t, a, "pick", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "text", a.cfg.Output.Format)

	_, err = run(t, newTestApp(), "weekends", "--format", "xml", "2024-03-05", "2024-03-12")
	assert.ErrorContains(t, err, "output.format")
}

func TestMissingHolidaysFileWarns(t *testing.T) {
	dir := isolate(t)
	a := newTestApp()
	_, err := run(t, a, "grid", "--holidays-file", filepath.Join(dir, "missing.json"), "2024", "3")
	require.NoError(t, err)
	assert.Contains(t, a.errOut.(*bytes.Buffer).String(), "Warning: cannot load holidays")
}

func TestWeekendsRejectsYearsOutsideFourDigits(t *testing.T) {
	isolate(t)
	_, err := run(t, newTestApp(), "weekends", "0001-01-01", "99999999-12-31")
	assert.EqualError(t, err, `invalid date "99999999-12-31": expected YYYY-MM-DD`)

	_, err = run(t, newTestApp(), "weekends", "0000-06-01", "0001-01-01")
	assert.EqualError(t, err, `invalid date "0000-06-01": expected YYYY-MM-DD`)

	_, err = run(t, newTestApp(), "ranges", "--today", "10000-01-01")
	assert.ErrorContains(t, err, "invalid date")
}
