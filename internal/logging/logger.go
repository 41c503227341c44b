// Package logging provides the structured logging interface used across
// reaxtrace, backed by go.uber.org/zap. Direct use of zap is confined to this
// package so the underlying library can be swapped without touching
// business logic.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field is a typed key-value pair attached to a log entry.
type Field = zap.Field

// String, Int, Err, etc. re-export zap's field constructors so callers never
// import zap directly.
var (
	String = zap.String
	Int    = zap.Int
	Err    = zap.Error
	Any    = zap.Any
)

// Logger is the reaxtrace-wide structured logging contract.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
	// SetLevel changes the minimum logged level at runtime; an unknown level
	// returns an error and leaves the current level unchanged. Used to
	// hot-reload log_level from a watched config file without restarting
	// the logger.
	SetLevel(level string) error
	Sync() error
}

type zapLogger struct {
	z     *zap.Logger
	level zap.AtomicLevel
}

// New builds a production-profile zap logger at the given level ("debug",
// "info", "warn", "error"); unknown levels fall back to "info".
func New(level string) (Logger, error) {
	atomicLevel := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	_ = atomicLevel.UnmarshalText([]byte(level))

	cfg := zap.NewProductionConfig()
	cfg.Level = atomicLevel
	cfg.EncoderConfig.TimeKey = "ts"

	z, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &zapLogger{z: z, level: atomicLevel}, nil
}

// Nop returns a Logger that discards everything, for tests.
func Nop() Logger {
	return &zapLogger{z: zap.NewNop(), level: zap.NewAtomicLevelAt(zapcore.InfoLevel)}
}

func (l *zapLogger) Debug(msg string, fields ...Field) { l.z.Debug(msg, fields...) }
func (l *zapLogger) Info(msg string, fields ...Field)  { l.z.Info(msg, fields...) }
func (l *zapLogger) Warn(msg string, fields ...Field)  { l.z.Warn(msg, fields...) }
func (l *zapLogger) Error(msg string, fields ...Field) { l.z.Error(msg, fields...) }
func (l *zapLogger) With(fields ...Field) Logger {
	return &zapLogger{z: l.z.With(fields...), level: l.level}
}
func (l *zapLogger) Sync() error { return l.z.Sync() }

func (l *zapLogger) SetLevel(level string) error {
	return l.level.UnmarshalText([]byte(level))
}
