// Package logger wraps zap so the rest of the codebase can log
// structured fields without importing zap directly.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Fatal(msg string, fields ...zap.Field)

	Sync() error
}

type loggerImpl struct {
	base *zap.Logger
}

// New builds a logger. pretty selects the colorized development
// encoder; otherwise production JSON.
func New(level string, pretty bool) Logger {
	var cfg zap.Config
	if pretty {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
	}

	if lvl := parseLevel(level); lvl != nil {
		cfg.Level = zap.NewAtomicLevelAt(*lvl)
	}

	base, err := cfg.Build(zap.AddStacktrace(zapcore.FatalLevel))
	if err != nil {
		panic(err)
	}

	return &loggerImpl{base: base}
}

func parseLevel(lvl string) *zapcore.Level {
	switch lvl {
	case "debug":
		l := zapcore.DebugLevel
		return &l
	case "info":
		l := zapcore.InfoLevel
		return &l
	case "warn":
		l := zapcore.WarnLevel
		return &l
	case "error":
		l := zapcore.ErrorLevel
		return &l
	default:
		return nil
	}
}

func (l *loggerImpl) Debug(msg string, fields ...zap.Field) { l.base.Debug(msg, fields...) }
func (l *loggerImpl) Info(msg string, fields ...zap.Field)  { l.base.Info(msg, fields...) }
func (l *loggerImpl) Warn(msg string, fields ...zap.Field)  { l.base.Warn(msg, fields...) }
func (l *loggerImpl) Error(msg string, fields ...zap.Field) { l.base.Error(msg, fields...) }
func (l *loggerImpl) Fatal(msg string, fields ...zap.Field) { l.base.Fatal(msg, fields...) }

func (l *loggerImpl) Sync() error { return l.base.Sync() }

// Field constructors re-exported from zap for convenience.
func String(key, val string) zap.Field        { return zap.String(key, val) }
func Int(key string, val int) zap.Field       { return zap.Int(key, val) }
func Uint64(key string, val uint64) zap.Field { return zap.Uint64(key, val) }
func Bool(key string, val bool) zap.Field     { return zap.Bool(key, val) }
func Err(err error) zap.Field                 { return zap.Error(err) }
