package logging

import "go.uber.org/zap"

// ZapLogger adapts a *zap.Logger.
type ZapLogger struct {
	s *zap.SugaredLogger
}

// NewZap returns a gp22.Logger writing to l.
func NewZap(l *zap.Logger) *ZapLogger {
	return &ZapLogger{s: l.Sugar()}
}

// Debug logs msg at debug level.
func (l *ZapLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.s.Debugw(msg, keysAndValues...)
}

// Info logs msg at info level.
func (l *ZapLogger) Info(msg string, keysAndValues ...interface{}) {
	l.s.Infow(msg, keysAndValues...)
}

// Error logs msg at error level.
func (l *ZapLogger) Error(msg string, keysAndValues ...interface{}) {
	l.s.Errorw(msg, keysAndValues...)
}
