// Package logger is the zap-backed structured logger shared by all components.
package logger

import (
	"fmt"

	"go.uber.org/zap"
)

type Logger struct {
	zap *zap.Logger
}

// NewLogger builds a JSON production logger writing to stderr, stdout belongs
// to the storefront driver. Extra options are applied on top of the defaults.
func NewLogger(level string, opts ...zap.Option) (*Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("zap.ParseAtomicLevel: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.OutputPaths = []string{"stderr"}

	// the wrapper methods below add one frame
	opts = append([]zap.Option{zap.AddCaller(), zap.AddCallerSkip(1)}, opts...)

	z, err := cfg.Build(opts...)
	if err != nil {
		return nil, fmt.Errorf("cfg.Build: %w", err)
	}

	return &Logger{zap: z}, nil
}

func Nop() *Logger {
	return &Logger{zap: zap.NewNop()}
}

// With returns a child logger that adds fields to every entry, e.g. the session ID.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{zap: l.writer().With(fields...)}
}

func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.writer().Debug(msg, fields...)
}

func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.writer().Info(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.writer().Warn(msg, fields...)
}

func (l *Logger) Error(msg string, fields ...zap.Field) {
	l.writer().Error(msg, fields...)
}

func (l *Logger) Sync() error {
	return l.writer().Sync()
}

// writer tolerates a nil or zero Logger.
func (l *Logger) writer() *zap.Logger {
	if l == nil || l.zap == nil {
		return zap.NewNop()
	}

	return l.zap
}
