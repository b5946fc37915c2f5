// Package logging wraps go.uber.org/zap with the small surface obcore
// needs: named, cloneable loggers with a dev/prod encoder preset.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

// Level is a logging priority. Higher levels are more important.
type Level int8

const (
	DebugLevel Level = -1
	InfoLevel  Level = 0
	WarnLevel  Level = 1
	ErrorLevel Level = 2
)

// Logger wraps a zap.Logger with a name and its originating config so
// clones can be derived (Named, With) without losing the level knob.
type Logger struct {
	*zap.Logger
	config *zap.Config
	name   string
}

// New builds a Logger from an explicit zap core and config.
func New(core zapcore.Core, cfg *zap.Config) *Logger {
	return &Logger{
		Logger: zap.New(core),
		config: cfg,
	}
}

// NewDevLogger returns a human-readable, debug-level console logger.
func NewDevLogger() *Logger {
	return NewFromEnv("dev")
}

// NewFromEnv builds a Logger preset for "dev" (console, debug) or any
// other value, which is treated as production (JSON, info).
func NewFromEnv(env string) *Logger {
	var encoderConfig zapcore.EncoderConfig
	var encoder zapcore.Encoder
	var level zapcore.Level
	var cfg zap.Config

	switch env {
	case "dev":
		encoderConfig = zapcore.EncoderConfig{
			CallerKey:      "C",
			EncodeCaller:   zapcore.ShortCallerEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			LevelKey:       "L",
			LineEnding:     "\n",
			MessageKey:     "M",
			NameKey:        "N",
			TimeKey:        "T",
		}
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
		level = zapcore.Level(DebugLevel)
		cfg = zap.Config{
			Level:            zap.NewAtomicLevelAt(level),
			Development:      true,
			Encoding:         "console",
			EncoderConfig:    encoderConfig,
			OutputPaths:      []string{"stdout"},
			ErrorOutputPaths: []string{"stderr"},
		}
	default:
		encoderConfig = zapcore.EncoderConfig{
			CallerKey:      "caller",
			EncodeCaller:   zapcore.ShortCallerEncoder,
			EncodeDuration: zapcore.SecondsDurationEncoder,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			LevelKey:       "level",
			LineEnding:     "\n",
			MessageKey:     "message",
			NameKey:        "logger",
			TimeKey:        "@timestamp",
		}
		encoder = zapcore.NewJSONEncoder(encoderConfig)
		level = zapcore.Level(InfoLevel)
		cfg = zap.Config{
			Level:            zap.NewAtomicLevelAt(level),
			Development:      false,
			Encoding:         "json",
			EncoderConfig:    encoderConfig,
			OutputPaths:      []string{"stdout"},
			ErrorOutputPaths: []string{"stderr"},
		}
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level)
	return New(core, &cfg)
}

// NewTestLogger returns a Logger suitable for use inside *testing.T runs.
// It is not bound to a *testing.T: its output is discarded.
func NewTestLogger() *Logger {
	cfg := zap.NewDevelopmentConfig()
	return &Logger{
		Logger: zaptest.NewLogger(noopT{}),
		config: &cfg,
	}
}

// noopT satisfies zaptest.TestingT without requiring a *testing.T, so
// NewTestLogger can be called from non-test code paths (e.g. examples).
type noopT struct{}

func (noopT) Logf(string, ...interface{}) {}

func (noopT) Errorf(string, ...interface{}) {}

func (noopT) Fail() {}

func (noopT) Failed() bool { return false }

func (noopT) Name() string { return "noopT" }

func (noopT) FailNow() {}

func (l *Logger) Clone() *Logger {
	cfgCopy := *l.config
	cfgCopy.Level = zap.NewAtomicLevelAt(l.config.Level.Level())
	return &Logger{Logger: l.Logger, config: &cfgCopy, name: l.name}
}

func (l *Logger) Named(name string) *Logger {
	c := l.Clone()
	full := name
	if l.name != "" {
		full = fmt.Sprintf("%s.%s", l.name, name)
	}
	c.Logger = c.Logger.Named(name)
	c.name = full
	return c
}

func (l *Logger) With(fields ...zap.Field) *Logger {
	c := l.Clone()
	c.Logger = c.Logger.With(fields...)
	return c
}

func (l *Logger) SetLevel(level Level) {
	if l.config == nil {
		return
	}
	l.config.Level.SetLevel(zapcore.Level(level))
}

func (l *Logger) GetLevel() Level {
	if l.config == nil {
		return InfoLevel
	}
	return Level(l.config.Level.Level())
}

// AtExit flushes buffered log entries; call via defer at process shutdown.
func (l *Logger) AtExit() {
	if l.Logger != nil {
		_ = l.Logger.Sync()
	}
}
