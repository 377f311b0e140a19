package logging

import "github.com/sirupsen/logrus"

// LogrusLogger adapts a logrus logger or entry.
type LogrusLogger struct {
	l logrus.FieldLogger
}

// NewLogrus returns a gp22.Logger writing to l, typically a *logrus.Logger
// or a *logrus.Entry carrying extra fields.
func NewLogrus(l logrus.FieldLogger) *LogrusLogger {
	return &LogrusLogger{l: l}
}

// Debug logs msg at debug level.
func (l *LogrusLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.l.WithFields(logrus.Fields(fields(keysAndValues))).Debug(msg)
}

// Info logs msg at info level.
func (l *LogrusLogger) Info(msg string, keysAndValues ...interface{}) {
	l.l.WithFields(logrus.Fields(fields(keysAndValues))).Info(msg)
}

// Error logs msg at error level.
func (l *LogrusLogger) Error(msg string, keysAndValues ...interface{}) {
	l.l.WithFields(logrus.Fields(fields(keysAndValues))).Error(msg)
}
