package logging

import (
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

// KitLogger adapts a go-kit log.Logger. Messages go under the "msg" key
// and levels are set with the log/level package, so level.NewFilter
// applies as usual.
type KitLogger struct {
	l log.Logger
}

// NewKit returns a gp22.Logger writing to l.
func NewKit(l log.Logger) *KitLogger {
	return &KitLogger{l: l}
}

// Debug logs msg at debug level.
func (l *KitLogger) Debug(msg string, keysAndValues ...interface{}) {
	_ = level.Debug(l.l).Log(kitPairs(msg, keysAndValues)...)
}

// Info logs msg at info level.
func (l *KitLogger) Info(msg string, keysAndValues ...interface{}) {
	_ = level.Info(l.l).Log(kitPairs(msg, keysAndValues)...)
}

// Error logs msg at error level.
func (l *KitLogger) Error(msg string, keysAndValues ...interface{}) {
	_ = level.Error(l.l).Log(kitPairs(msg, keysAndValues)...)
}

func kitPairs(msg string, keysAndValues []interface{}) []interface{} {
	return append([]interface{}{"msg", msg}, keysAndValues...)
}
