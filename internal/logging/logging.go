// Package logging builds the zap loggers used by the command line.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lululau/rangecal/internal/config"
)

// New returns the logger for one run. A configured log file always wins;
// otherwise interactive runs get a no-op logger because the terminal belongs
// to the picker, and one-shot commands log to stderr.
func New(cfg config.LogConfig, interactive bool) (*zap.Logger, error) {
	switch {
	case cfg.File != "":
		return NewFile(cfg.File, cfg.Level), nil
	case interactive:
		return zap.NewNop(), nil
	default:
		return NewConsole(cfg.Level)
	}
}

// NewConsole builds a production logger writing JSON to stderr.
func NewConsole(level string) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(parseLevel(level))
	zapConfig.EncoderConfig.TimeKey = "timestamp"
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// NewFile builds a logger writing JSON to a rotated file.
func NewFile(logFile string, level string) *zap.Logger {
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	return zap.New(fileCore(zapcore.AddSync(logWriter), parseLevel(level)))
}

func fileCore(ws zapcore.WriteSyncer, level zapcore.Level) zapcore.Core {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), ws, level)
}

func parseLevel(level string) zapcore.Level {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel
	}
	return zapLevel
}
