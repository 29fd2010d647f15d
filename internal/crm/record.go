// Package crm holds the flat record representation sent to the remote CRM and
// the HTTP client that talks to it.
package crm

import (
	"math"
	"strings"

	"github.com/avsafe/occurrence-portal/internal/coerce"
)

// maxFieldLength is the CRM's single-line field limit. Longer strings are
// truncated, which is lossy but matches the remote schema constraint.
const maxFieldLength = 255

// Record is a flat mapping from CRM field name to a CRM-typed value: string,
// number, boolean, or array of strings. A key that should not be sent is
// simply absent; the CRM interprets absence differently from an empty string.
type Record map[string]any

// Cleanup returns a copy of the record with every empty, placeholder, or
// invalid value removed:
//
//   - nil values are dropped
//   - strings are trimmed; empty and placeholder results are dropped and
//     survivors truncated to 255 characters
//   - string arrays are filtered the same way and dropped when empty
//   - non-finite numbers are dropped
//   - booleans always survive unchanged
//
// Any other value type passes through untouched.
func Cleanup(r Record) Record {
	cleaned := make(Record, len(r))
	for key, value := range r {
		switch v := value.(type) {
		case nil:
			continue
		case string:
			s := strings.TrimSpace(v)
			if s == "" || coerce.IsPlaceholder(s) {
				continue
			}
			cleaned[key] = truncate(s)
		case []string:
			filtered := make([]string, 0, len(v))
			for _, entry := range v {
				s := strings.TrimSpace(entry)
				if s == "" || coerce.IsPlaceholder(s) {
					continue
				}
				filtered = append(filtered, truncate(s))
			}
			if len(filtered) == 0 {
				continue
			}
			cleaned[key] = filtered
		case float64:
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			cleaned[key] = v
		case bool:
			cleaned[key] = v
		default:
			cleaned[key] = v
		}
	}
	return cleaned
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) > maxFieldLength {
		return string(runes[:maxFieldLength])
	}
	return s
}
