// Package coerce converts form-layer values into the types the CRM schema
// expects. Form fields arrive as loosely typed values ("Yes"/"No" strings,
// numeric strings, picklist placeholders) and must be normalized before a
// record can be sent to the CRM.
package coerce

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToBoolean converts a form value to a boolean. Actual booleans pass through;
// the strings "yes" and "true" (case-insensitive, trimmed) become true.
// Everything else, including nil and empty strings, becomes false.
func ToBoolean(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case nil:
		return false
	default:
		s := strings.ToLower(strings.TrimSpace(fmt.Sprintf("%v", val)))
		return s == "yes" || s == "true"
	}
}

// ToNumber converts a form value to a float64. The second return value is
// false when the input is empty, nil, or not parseable as a finite number.
func ToNumber(v any) (float64, bool) {
	switch val := v.(type) {
	case nil:
		return 0, false
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return 0, false
		}
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	default:
		s := strings.TrimSpace(fmt.Sprintf("%v", val))
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
}

// ToText converts a form value to its string form. The second return value is
// false when the input is nil or stringifies to an empty value.
func ToText(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	s := fmt.Sprintf("%v", v)
	if strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

// ToYesNo converts a form value to the literal string "Yes" or "No". Booleans
// map directly; the strings "yes"/"true" map to "Yes" and "no"/"false" map to
// "No". Unrecognized and empty input defaults to "No" because the fields
// stored this way are schema-typed Yes/No text with no unanswered variant.
func ToYesNo(v any) string {
	switch val := v.(type) {
	case bool:
		if val {
			return "Yes"
		}
		return "No"
	case nil:
		return "No"
	default:
		s := strings.ToLower(strings.TrimSpace(fmt.Sprintf("%v", val)))
		if s == "yes" || s == "true" {
			return "Yes"
		}
		return "No"
	}
}
