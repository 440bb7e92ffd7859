package logging

import (
	"errors"
	"syscall"

	"github.com/n0rdy/palindromes/types/loglevels"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger is a structured logger backed by zap.
// TRACE has no zap counterpart, so it is written at the debug level with a "trace" flag.
type ZapLogger struct {
	logger *zap.Logger
}

// NewZapLogger builds a zap logger with the production (JSON) configuration,
// or with the development (console) one if development is true.
func NewZapLogger(level loglevels.LogLevel, development bool) (Logger, error) {
	var config zap.Config
	if development {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}
	config.Level = zap.NewAtomicLevelAt(zapLevel(level))

	logger, err := config.Build()
	if err != nil {
		return nil, err
	}
	return NewZapLoggerFrom(logger), nil
}

// NewZapLoggerFrom wraps an already configured zap logger.
func NewZapLoggerFrom(logger *zap.Logger) Logger {
	return &ZapLogger{logger: logger}
}

func (zl *ZapLogger) Trace(message string) {
	zl.logger.Debug(message, zap.Bool("trace", true))
}

func (zl *ZapLogger) Debug(message string) {
	zl.logger.Debug(message)
}

func (zl *ZapLogger) Info(message string) {
	zl.logger.Info(message)
}

func (zl *ZapLogger) Warn(message string, errs ...error) {
	zl.logger.Warn(message, errorFields(errs)...)
}

func (zl *ZapLogger) Error(message string, errs ...error) {
	zl.logger.Error(message, errorFields(errs)...)
}

// Close flushes the buffered entries.
// Syncing a terminal fails on some platforms, that error is not reported.
func (zl *ZapLogger) Close() error {
	err := zl.logger.Sync()
	if err != nil && (errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY)) {
		return nil
	}
	return err
}

func errorFields(errs []error) []zap.Field {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return []zap.Field{zap.Error(errs[0])}
	default:
		return []zap.Field{zap.Errors("errors", errs)}
	}
}

func zapLevel(level loglevels.LogLevel) zapcore.Level {
	switch level {
	case loglevels.TRACE, loglevels.DEBUG:
		return zapcore.DebugLevel
	case loglevels.WARN:
		return zapcore.WarnLevel
	case loglevels.ERROR:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
