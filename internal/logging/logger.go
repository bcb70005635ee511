// Package logging builds the zap logger used across janani.
package logging

import (
	"fmt"

	"github.com/alexanderramin/janani/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a logger from cfg. The console format uses zap's development
// encoder with colored levels; json uses the production encoder.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	switch cfg.Format {
	case "json":
		zapCfg = zap.NewProductionConfig()
	default:
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		if cfg.File != "" {
			zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		}
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	out := "stderr"
	if cfg.File != "" {
		out = cfg.File
	}
	zapCfg.OutputPaths = []string{out}
	zapCfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger.Named("janani"), nil
}

// ForTUI returns the logger to use while the alt screen is active. Lines
// written to stderr would corrupt the rendered frame, so unless logs go to
// a file the TUI runs with a no-op logger.
func ForTUI(base *zap.Logger, cfg config.LogConfig) *zap.Logger {
	if base == nil || cfg.File == "" {
		return zap.NewNop()
	}
	return base
}
