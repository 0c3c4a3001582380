package main

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/eliteGoblin/activity/internal/config"
	"github.com/eliteGoblin/activity/internal/infra"
)

// createLogger builds the file logger. The terminal may be in raw mode, so
// when the file cannot be opened logging is dropped instead of sent to stdout.
func createLogger(cfg *config.Config, fs *infra.FileSystem) *zap.Logger {
	path := fs.ExpandHome(cfg.LogFile())

	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}
	zc.EncoderConfig.TimeKey = "time"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if level, err := zap.ParseAtomicLevel(cfg.LogLevel()); err == nil {
		zc.Level = level
	}

	logger, err := zc.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger.With(zap.String("session", uuid.NewString()))
}
