package aggregate

import (
	"fmt"
	"strconv"
	"strings"
)

// Children returns the array stored under key in an object parent. With an
// empty key the parent itself must be the array. Any other shape yields an
// empty slice.
func Children(parent any, key string) []any {
	if key == "" {
		if items, ok := parent.([]any); ok {
			return items
		}
		return []any{}
	}
	obj, ok := parent.(map[string]any)
	if !ok {
		return []any{}
	}
	items, ok := obj[key].([]any)
	if !ok {
		return []any{}
	}
	return items
}

// Field returns a Ref func reading the reference id from key.
func Field(key string) func(map[string]any) (string, bool) {
	return func(child map[string]any) (string, bool) {
		return StringField(child, key)
	}
}

// StringField renders a scalar field as a reference id. Strings are trimmed;
// numbers keep their literal form. Empty values and non-scalars report false.
func StringField(obj map[string]any, key string) (string, bool) {
	value, ok := obj[key]
	if !ok || value == nil {
		return "", false
	}
	var ref string
	switch v := value.(type) {
	case string:
		ref = strings.TrimSpace(v)
	case float64:
		ref = strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		ref = strconv.Itoa(v)
	case int64:
		ref = strconv.FormatInt(v, 10)
	case fmt.Stringer:
		ref = strings.TrimSpace(v.String())
	default:
		return "", false
	}
	return ref, ref != ""
}
