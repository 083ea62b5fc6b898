// Package logger wraps zap with a key/value API. The Logger satisfies the
// Temporal SDK log.Logger interface, so the same instance serves the CLI and
// the worker client.
package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a structured key/value logger backed by a zap SugaredLogger.
type Logger struct {
	SugaredLogger *zap.SugaredLogger
}

// New builds a logger for mode. "prod"/"production" selects JSON output at
// info level; anything else selects console output at debug level.
func New(mode string) (*Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zapLogger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{SugaredLogger: zapLogger.Sugar()}, nil
}

// NewFromZap wraps an existing zap logger.
func NewFromZap(z *zap.Logger) *Logger { return &Logger{SugaredLogger: z.Sugar()} }

// Nop returns a logger that discards everything.
func Nop() *Logger { return NewFromZap(zap.NewNop()) }

// Sync flushes buffered entries.
func (l *Logger) Sync() {
	_ = l.SugaredLogger.Sync()
}

// Debug logs msg at debug level with alternating key/value pairs.
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Debugw(msg, keysAndValues...)
}

// Info logs msg at info level with alternating key/value pairs.
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Infow(msg, keysAndValues...)
}

// Warn logs msg at warn level with alternating key/value pairs.
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Warnw(msg, keysAndValues...)
}

// Error logs msg at error level with alternating key/value pairs.
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Errorw(msg, keysAndValues...)
}

// With returns a child logger carrying the given fields.
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With(keysAndValues...)}
}
