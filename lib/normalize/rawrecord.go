package normalize

import (
	"encoding/json"
	"strconv"
)

// RawRecord is one scraped event exactly as a source handed it over:
// a schema-less JSON object. No key is guaranteed to exist and no
// value is guaranteed to have a particular type, so all access goes
// through the tolerant getters below. Records are immutable once they
// enter the pipeline.
type RawRecord map[string]any

// GetString renders the value under key as a string. Numbers are
// formatted rather than rejected because sources disagree on whether
// prices and dates are strings. Anything else yields "".
func (r RawRecord) GetString(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// GetStringList collects the string elements of the list under key.
// Non-string elements are skipped, a non-list value yields nil.
func (r RawRecord) GetStringList(key string) []string {
	list, ok := r[key].([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			continue
		}
		out = append(out, s)
	}
	return out
}

// GetList returns the raw list under key, or nil.
func (r RawRecord) GetList(key string) []any {
	list, _ := r[key].([]any)
	return list
}

// GetObject returns the nested object under key, or nil.
func (r RawRecord) GetObject(key string) RawRecord {
	obj, _ := r[key].(map[string]any)
	return RawRecord(obj)
}
