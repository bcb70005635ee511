package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/janani/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "janani.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvConfigPath, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
timeline:
  default_week: 28
display:
  width: 90
  markdown_style: dark
log:
  level: debug
  format: json
  file: /tmp/janani.log
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 28, cfg.Timeline.DefaultWeek)
	assert.Equal(t, 90, cfg.Display.Width)
	assert.Equal(t, "dark", cfg.Display.MarkdownStyle)
	assert.Equal(t, 80, cfg.Display.WordWrap)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/tmp/janani.log", cfg.Log.File)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "timeline:\n  default_week: 28\n")
	t.Setenv("JANANI_TIMELINE_DEFAULT_WEEK", "35")
	t.Setenv("JANANI_LOG_LEVEL", "info")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 35, cfg.Timeline.DefaultWeek)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvConfigPath(t *testing.T) {
	path := writeConfig(t, "timeline:\n  default_week: 5\n")
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Timeline.DefaultWeek)
}

func TestLoad_InvalidDefaultWeek(t *testing.T) {
	path := writeConfig(t, "timeline:\n  default_week: 41\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWeekOutOfRange)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, "timeline: [unclosed\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative width", func(c *Config) { c.Display.Width = -1 }},
		{"negative wrap", func(c *Config) { c.Display.WordWrap = -5 }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }},
		{"week zero", func(c *Config) { c.Timeline.DefaultWeek = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, Default().Validate())
}
