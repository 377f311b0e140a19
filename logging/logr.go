package logging

import "github.com/go-logr/logr"

// DebugLevel is the logr verbosity debug messages are written at.
const DebugLevel = 1

// LogrLogger adapts a logr.Logger.
type LogrLogger struct {
	l logr.Logger
}

// NewLogr returns a gp22.Logger writing to l.
func NewLogr(l logr.Logger) *LogrLogger {
	return &LogrLogger{l: l}
}

// Debug logs msg at debug level.
func (l *LogrLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.l.V(DebugLevel).Info(msg, keysAndValues...)
}

// Info logs msg at info level.
func (l *LogrLogger) Info(msg string, keysAndValues ...interface{}) {
	l.l.Info(msg, keysAndValues...)
}

// Error logs msg at error level. An "error" value of type error, if
// present, is passed as the logr error.
func (l *LogrLogger) Error(msg string, keysAndValues ...interface{}) {
	var err error
	rest := make([]interface{}, 0, len(keysAndValues))
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 < len(keysAndValues) && keysAndValues[i] == "error" {
			if e, ok := keysAndValues[i+1].(error); ok && err == nil {
				err = e
				continue
			}
		}
		rest = append(rest, keysAndValues[i])
		if i+1 < len(keysAndValues) {
			rest = append(rest, keysAndValues[i+1])
		}
	}
	l.l.Error(err, msg, rest...)
}
