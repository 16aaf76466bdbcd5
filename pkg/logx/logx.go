package logx

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level mirrors zap's levels for callers that don't import zap directly
type Level = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

var (
	atomicLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	sugar       = newLogger().Sugar()
)

func newLogger() *zap.Logger {
	cfg := zap.Config{
		Encoding:         "console",
		Level:            atomicLevel,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:  "msg",
			LevelKey:    "level",
			EncodeLevel: zapcore.CapitalLevelEncoder,
			TimeKey:     "time",
			EncodeTime:  zapcore.RFC3339TimeEncoder,
		},
	}

	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		// zap only fails on malformed config; fall back to the default production logger
		logger, _ = zap.NewProduction()
	}
	return logger
}

// SetLevel adjusts the global log level
func SetLevel(level Level) {
	atomicLevel.SetLevel(level)
}

func Debug(args ...any)                 { sugar.Debug(args...) }
func Debugf(format string, args ...any) { sugar.Debugf(format, args...) }
func Info(args ...any)                  { sugar.Info(args...) }
func Infof(format string, args ...any)  { sugar.Infof(format, args...) }
func Warn(args ...any)                  { sugar.Warn(args...) }
func Warnf(format string, args ...any)  { sugar.Warnf(format, args...) }
func Error(args ...any)                 { sugar.Error(args...) }
func Errorf(format string, args ...any) { sugar.Errorf(format, args...) }

// Fatalf logs and exits the process
func Fatalf(format string, args ...any) {
	sugar.Errorf(format, args...)
	_ = sugar.Sync()
	os.Exit(1)
}
