package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/janani/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "janani.log")

	logger, err := New(config.LogConfig{Level: "info", Format: "json", File: path})
	require.NoError(t, err)

	logger.Info("week_changed", zap.Int("week", 21))
	logger.Debug("dropped")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"week_changed"`)
	assert.Contains(t, string(data), `"week":21`)
	assert.Contains(t, string(data), `"logger":"janani"`)
	assert.NotContains(t, string(data), "dropped")
}

func TestNew_ConsoleFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "janani.log")

	logger, err := New(config.LogConfig{Level: "debug", Format: "console", File: path})
	require.NoError(t, err)
	logger.Debug("selection_toggled", zap.Int("trimester", 2))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "DEBUG")
	assert.Contains(t, string(data), "selection_toggled")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(config.LogConfig{Level: "chatty", Format: "json"})
	assert.Error(t, err)
}

func TestForTUI(t *testing.T) {
	base := zap.NewExample()

	got := ForTUI(base, config.LogConfig{})
	assert.NotSame(t, base, got)
	assert.False(t, got.Core().Enabled(zap.ErrorLevel))

	got = ForTUI(base, config.LogConfig{File: "/tmp/x.log"})
	assert.Same(t, base, got)

	assert.NotNil(t, ForTUI(nil, config.LogConfig{File: "/tmp/x.log"}))
}
