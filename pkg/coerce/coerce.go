// Package coerce приводит слабо типизированные значения из декодированного JSON
// (map[string]any) к целевым типам доменной модели. Некорректный ввод никогда не
// попадает в хранилище: вместо него подставляется указанный fallback.
package coerce

import (
	"math"
	"strconv"
	"strings"
)

// String converts a decoded JSON scalar to its string form.
// nil and unsupported types become "".
func String(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// TrimmedString is String followed by strings.TrimSpace.
func TrimmedString(v any) string {
	return strings.TrimSpace(String(v))
}

// StringOr returns the coerced string or fallback when it is empty.
func StringOr(v any, fallback string) string {
	if s := String(v); s != "" {
		return s
	}
	return fallback
}

// Number converts a decoded JSON value to a finite float64.
// Строки парсятся; всё, что не приводится к конечному числу, даёт fallback.
func Number(v any, fallback float64) float64 {
	var n float64
	switch t := v.(type) {
	case float64:
		n = t
	case int:
		n = float64(t)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return fallback
		}
		n = parsed
	case bool:
		if t {
			n = 1
		}
	default:
		return fallback
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return fallback
	}
	return n
}

// Int is Number truncated to an integer.
func Int(v any, fallback int) int {
	return int(Number(v, float64(fallback)))
}

// Bool converts a decoded JSON value to a boolean (truthiness rules:
// nil, false, 0 and "" are false, everything else is true).
func Bool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case int:
		return t != 0
	case string:
		return t != ""
	default:
		return false
	}
}

// StringSlice converts a decoded JSON array to a slice of coerced strings.
// Non-array input yields an empty (non-nil) slice.
func StringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, String(item))
	}
	return out
}

// ClampFloat returns n clamped to the given minimum.
func ClampFloat(n, min float64) float64 {
	if n < min {
		return min
	}
	return n
}

// ClampInt returns n clamped to the given minimum.
func ClampInt(n, min int) int {
	if n < min {
		return min
	}
	return n
}
