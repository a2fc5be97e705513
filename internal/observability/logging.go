// Package observability builds the game's structured logger.
package observability

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tatianab/treasure-hunter/internal/config"
)

var baseConfigs = map[string]func() zap.Config{
	"json":    zap.NewProductionConfig,
	"console": zap.NewDevelopmentConfig,
}

// NewLogger returns a logger named "treasure-hunter" that appends to
// cfg.File, the terminal being taken by the game screen.
func NewLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	base, ok := baseConfigs[cfg.Format]
	if !ok {
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("bad log level %q: %w", cfg.Level, err)
	}

	zc := base()
	zc.Level = level
	zc.Sampling = nil
	zc.OutputPaths = []string{cfg.File}
	zc.ErrorOutputPaths = []string{cfg.File}
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("opening log %s: %w", cfg.File, err)
	}
	return logger.Named("treasure-hunter"), nil
}
