package messaging

import (
	"github.com/ThreeDotsLabs/watermill"
	"go.uber.org/zap"
)

// zapLogger adapts *zap.Logger to watermill.LoggerAdapter.
type zapLogger struct {
	logger *zap.Logger
}

// NewZapLogger returns a watermill logger writing through logger.
func NewZapLogger(logger *zap.Logger) watermill.LoggerAdapter {
	return &zapLogger{logger: logger}
}

func (l *zapLogger) Error(msg string, err error, fields watermill.LogFields) {
	l.logger.Error(msg, append(toZap(fields), zap.Error(err))...)
}

func (l *zapLogger) Info(msg string, fields watermill.LogFields) {
	l.logger.Info(msg, toZap(fields)...)
}

func (l *zapLogger) Debug(msg string, fields watermill.LogFields) {
	l.logger.Debug(msg, toZap(fields)...)
}

// Trace maps to debug; zap has no lower level.
func (l *zapLogger) Trace(msg string, fields watermill.LogFields) {
	l.logger.Debug(msg, toZap(fields)...)
}

func (l *zapLogger) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &zapLogger{logger: l.logger.With(toZap(fields)...)}
}

func toZap(fields watermill.LogFields) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}

	return out
}
