package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate moves the test into an empty directory with no user config.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadExplicitFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, `
ui:
  no_color: true
  lunar: true
  panels: 1
holidays:
  file: /tmp/holidays.json
output:
  format: text
log:
  level: debug
  file: /tmp/rangecal.log
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.UI.NoColor)
	assert.True(t, cfg.UI.Lunar)
	assert.Equal(t, 1, cfg.UI.Panels)
	assert.Equal(t, "/tmp/holidays.json", cfg.Holidays.File)
	assert.Equal(t, FormatText, cfg.Output.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/rangecal.log", cfg.Log.File)
}

func TestLoadSearchesXDGConfigHome(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "xdg", "rangecal", "rangecal.yaml"), "ui:\n  lunar: true\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.UI.Lunar)
	assert.Equal(t, 2, cfg.UI.Panels, "unset keys keep their defaults")
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "rangecal.yaml"), "ui:\n  panels: 2\n")
	t.Setenv("RANGECAL_UI_PANELS", "1")
	t.Setenv("RANGECAL_UI_NO_COLOR", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.UI.Panels)
	assert.True(t, cfg.UI.NoColor)
}

func TestDotEnvIsLoaded(t *testing.T) {
	dir := isolate(t)
	t.Setenv("RANGECAL_OUTPUT_FORMAT", "")
	require.NoError(t, os.Unsetenv("RANGECAL_OUTPUT_FORMAT"))
	writeFile(t, filepath.Join(dir, ".env"), "RANGECAL_OUTPUT_FORMAT=text\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, cfg.Output.Format)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "one panel", mutate: func(c *Config) { c.UI.Panels = 1 }},
		{name: "no panels", mutate: func(c *Config) { c.UI.Panels = 0 }, wantErr: true},
		{name: "three panels", mutate: func(c *Config) { c.UI.Panels = 3 }, wantErr: true},
		{name: "text output", mutate: func(c *Config) { c.Output.Format = FormatText }},
		{name: "unknown output", mutate: func(c *Config) { c.Output.Format = "xml" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "rangecal.yaml"), "output:\n  format: xml\n")

	_, err := Load("")
	assert.ErrorContains(t, err, "output.format")
}
