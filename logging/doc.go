// Package logging adapts common structured loggers to the gp22.Logger interface.
//
//	zl, _ := zap.NewDevelopment()
//	tdc := gp22.New(opener, gp22.WithLogger(logging.NewZap(zl)))
//
// Key-value pairs are passed through as structured fields. Keys that are
// not strings are formatted with fmt.Sprint; a trailing key without a
// value is kept with a nil value.
package logging

import "fmt"

// fields converts alternating keys and values into a map.
func fields(keysAndValues []interface{}) map[string]interface{} {
	m := make(map[string]interface{}, (len(keysAndValues)+1)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprint(keysAndValues[i])
		}
		var val interface{}
		if i+1 < len(keysAndValues) {
			val = keysAndValues[i+1]
		}
		m[key] = val
	}
	return m
}
