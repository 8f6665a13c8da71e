package forms

import (
	"fmt"
	"strconv"
	"strings"
)

// stringValue pulls a display-string value out of a loosely typed payload.
// Strings pass through trimmed; numbers and booleans are formatted; nils,
// maps, and slices become the empty string. JSON-decoded whole numbers come
// back as the digits the user typed, without a float tail.
func stringValue(payload map[string]any, key string) string {
	if payload == nil {
		return ""
	}
	raw, ok := payload[key]
	if !ok || raw == nil {
		return ""
	}
	switch value := raw.(type) {
	case string:
		return strings.TrimSpace(value)
	case map[string]any, []any:
		return ""
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(value))
	}
}

// section returns a nested object, or nil when the key is absent or holds a
// different shape.
func section(payload map[string]any, key string) map[string]any {
	if payload == nil {
		return nil
	}
	nested, _ := payload[key].(map[string]any)
	return nested
}

// list returns a nested array of objects, dropping entries of other shapes.
func list(payload map[string]any, key string) []map[string]any {
	if payload == nil {
		return nil
	}
	raw, _ := payload[key].([]any)
	if len(raw) == 0 {
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, entry := range raw {
		if item, ok := entry.(map[string]any); ok {
			out = append(out, item)
		}
	}
	return out
}
