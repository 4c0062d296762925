// Package params extracts typed values from loosely typed argument maps,
// as decoded from YAML step lists or MCP tool arguments.
package params

import (
	"fmt"
	"strings"
)

// String returns params[key] as a string. Non-string scalars are formatted.
func String(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok && v != nil {
		if s, ok := v.(string); ok {
			return s
		}
		// Handle numeric values that YAML may parse as int/float
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

// Int returns params[key] as an int. JSON numbers arrive as float64.
func Int(params map[string]interface{}, key string, defaultVal int) int {
	if v, ok := params[key]; ok {
		switch n := v.(type) {
		case int:
			return n
		case float64:
			return int(n)
		case int64:
			return int(n)
		case uint64:
			return int(n)
		}
	}
	return defaultVal
}

// Bool returns params[key] as a bool.
func Bool(params map[string]interface{}, key string, defaultVal bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultVal
}

// Strings returns params[key] as a string list. A list keeps its elements
// in order; a single string is split on commas.
func Strings(params map[string]interface{}, key string) []string {
	v, ok := params[key]
	if !ok || v == nil {
		return nil
	}
	switch list := v.(type) {
	case []string:
		return list
	case []interface{}:
		out := make([]string, 0, len(list))
		for _, item := range list {
			out = append(out, fmt.Sprintf("%v", item))
		}
		return out
	case string:
		var out []string
		for _, part := range strings.Split(list, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	default:
		return []string{fmt.Sprintf("%v", v)}
	}
}
