// Package docpath provides safe dotted-path lookups into nested JSON maps.
// Every other component relies on it to tolerate partial documents: a missing
// step never panics, it returns the caller's default.
package docpath

import (
	"strconv"
	"strings"
)

// Get traverses obj one dot-segment at a time. It returns def when a step is
// not a map, the key is absent, or the stored value is explicitly null.
func Get(obj any, path string, def any) any {
	current := obj
	for _, key := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return def
		}
		v, ok := m[key]
		if !ok || v == nil {
			return def
		}
		current = v
	}
	return current
}

// String resolves path to a string. Numeric values are formatted rather than
// dropped, since identifiers like question_no arrive as either type.
func String(obj any, path, def string) string {
	switch v := Get(obj, path, nil).(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return def
	}
}

// Bool resolves path to a bool, returning def for anything that is not one.
func Bool(obj any, path string, def bool) bool {
	if v, ok := Get(obj, path, nil).(bool); ok {
		return v
	}
	return def
}

// Float resolves path to a float64. Numeric strings are parsed; anything
// unparseable yields def.
func Float(obj any, path string, def float64) float64 {
	switch v := Get(obj, path, nil).(type) {
	case float64:
		return v
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
		return def
	default:
		return def
	}
}

// Int resolves path to an int via Float, truncating fractional values.
func Int(obj any, path string, def int) int {
	return int(Float(obj, path, float64(def)))
}

// Strings resolves path to a list of strings. Non-string elements are
// formatted with their JSON scalar representation; non-list values yield nil.
func Strings(obj any, path string) []string {
	list, ok := Get(obj, path, nil).([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		switch v := item.(type) {
		case string:
			out = append(out, v)
		case float64:
			out = append(out, strconv.FormatFloat(v, 'f', -1, 64))
		case bool:
			out = append(out, strconv.FormatBool(v))
		case nil:
			out = append(out, "")
		default:
			out = append(out, "")
		}
	}
	return out
}
