package logging

import "github.com/rs/zerolog"

// ZerologLogger adapts a zerolog.Logger.
type ZerologLogger struct {
	l zerolog.Logger
}

// NewZerolog returns a gp22.Logger writing to l.
func NewZerolog(l zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{l: l}
}

// Debug logs msg at debug level.
func (l *ZerologLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.l.Debug().Fields(fields(keysAndValues)).Msg(msg)
}

// Info logs msg at info level.
func (l *ZerologLogger) Info(msg string, keysAndValues ...interface{}) {
	l.l.Info().Fields(fields(keysAndValues)).Msg(msg)
}

// Error logs msg at error level.
func (l *ZerologLogger) Error(msg string, keysAndValues ...interface{}) {
	l.l.Error().Fields(fields(keysAndValues)).Msg(msg)
}
