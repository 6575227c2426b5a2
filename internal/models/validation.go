package models

import (
	"strconv"
	"strings"
)

// ValidationRow is one raw row of the realtime HM validation source. Column
// casing varies between sources, so rows are generic maps and lookups go
// through Get.
type ValidationRow map[string]interface{}

// Get returns the value for a key, trying an exact match first and falling
// back to a case-insensitive scan. Returns nil for missing keys.
func (r ValidationRow) Get(key string) interface{} {
	if r == nil {
		return nil
	}
	if v, ok := r[key]; ok {
		return v
	}
	lower := strings.ToLower(key)
	for k, v := range r {
		if strings.ToLower(k) == lower {
			return v
		}
	}
	return nil
}

// Str returns the value for a key rendered as a string, "" when absent.
func (r ValidationRow) Str(key string) string {
	v := r.Get(key)
	if v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(s, 10)
	case int:
		return strconv.Itoa(s)
	default:
		return ""
	}
}

// Float returns the numeric value for a key, false when the field is absent
// or not parsable as a number.
func (r ValidationRow) Float(key string) (float64, bool) {
	v := r.Get(key)
	switch n := v.(type) {
	case nil:
		return 0, false
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
