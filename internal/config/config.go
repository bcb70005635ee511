// Package config loads janani settings from defaults, an optional YAML file
// and JANANI_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/janani/internal/domain"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Config is the full application configuration.
type Config struct {
	Timeline TimelineConfig `mapstructure:"timeline"`
	Display  DisplayConfig  `mapstructure:"display"`
	Log      LogConfig      `mapstructure:"log"`
}

// TimelineConfig holds the mount-time defaults of the timeline view.
type TimelineConfig struct {
	DefaultWeek int `mapstructure:"default_week"`
}

// DisplayConfig controls static rendering.
type DisplayConfig struct {
	Width         int    `mapstructure:"width"` // 0 detects the terminal width
	MarkdownStyle string `mapstructure:"markdown_style"`
	WordWrap      int    `mapstructure:"word_wrap"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"` // empty logs to stderr
}

// EnvConfigPath names the variable that points at an explicit config file.
const EnvConfigPath = "JANANI_CONFIG"

// Load reads configuration. An empty path falls back to JANANI_CONFIG and
// then to janani.yaml in the working directory or ~/.config/janani.
// A missing config file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("timeline.default_week", domain.DefaultWeek)
	v.SetDefault("display.width", 0)
	v.SetDefault("display.markdown_style", "auto")
	v.SetDefault("display.word_wrap", 80)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("janani")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "janani"))
		}
	}

	v.SetEnvPrefix("JANANI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Timeline: TimelineConfig{DefaultWeek: domain.DefaultWeek},
		Display:  DisplayConfig{MarkdownStyle: "auto", WordWrap: 80},
		Log:      LogConfig{Level: "warn", Format: "console"},
	}
}

// Validate checks values that would otherwise surface as confusing
// rendering or logging failures later.
func (c *Config) Validate() error {
	if err := domain.ValidateWeek(c.Timeline.DefaultWeek); err != nil {
		return fmt.Errorf("invalid timeline.default_week: %w", err)
	}
	if c.Display.Width < 0 {
		return fmt.Errorf("invalid display.width %d: must be >= 0", c.Display.Width)
	}
	if c.Display.WordWrap < 0 {
		return fmt.Errorf("invalid display.word_wrap %d: must be >= 0", c.Display.WordWrap)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log.level %q: %w", c.Log.Level, err)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log.format %q: want console or json", c.Log.Format)
	}
	return nil
}
