package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Output formats accepted by output.format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config represents application configuration
type Config struct {
	UI       UIConfig       `mapstructure:"ui"`
	Holidays HolidaysConfig `mapstructure:"holidays"`
	Output   OutputConfig   `mapstructure:"output"`
	Log      LogConfig      `mapstructure:"log"`
}

// UIConfig controls how the picker is drawn
type UIConfig struct {
	NoColor bool `mapstructure:"no_color"`
	Lunar   bool `mapstructure:"lunar"`  // Lunar day names as secondary cell labels
	Panels  int  `mapstructure:"panels"` // Months shown side by side (1 or 2)
}

// HolidaysConfig points at the holiday annotation data
type HolidaysConfig struct {
	File string `mapstructure:"file"` // Empty means the user cache file, if present
}

// OutputConfig controls how committed ranges are printed
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// LogConfig represents logger configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		UI:     UIConfig{Panels: 2},
		Output: OutputConfig{Format: FormatJSON},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads configuration from configPath, or from rangecal.yaml in the
// usual places when configPath is empty. A missing search-path file is not an
// error. Environment variables prefixed with RANGECAL_ override the file, and
// a .env file in the working directory is loaded first.
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	def := Default()
	v.SetDefault("ui.no_color", def.UI.NoColor)
	v.SetDefault("ui.lunar", def.UI.Lunar)
	v.SetDefault("ui.panels", def.UI.Panels)
	v.SetDefault("holidays.file", def.Holidays.File)
	v.SetDefault("output.format", def.Output.Format)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.file", def.Log.File)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("rangecal")
		v.SetConfigType("yaml")
		for _, dir := range searchPaths() {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix("RANGECAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func searchPaths() []string {
	paths := []string{"."}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "rangecal"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "rangecal"))
	}
	return paths
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.UI.Panels < 1 || c.UI.Panels > 2 {
		return fmt.Errorf("ui.panels must be 1 or 2, got %d", c.UI.Panels)
	}

	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("output.format must be '%s' or '%s', got '%s'", FormatText, FormatJSON, c.Output.Format)
	}

	return nil
}
