package coerce

import "strings"

// placeholderValues are the UI strings a picklist renders when nothing was
// selected. They must never reach the CRM; the remote side treats an absent
// key differently from an empty or placeholder string.
var placeholderValues = map[string]struct{}{
	"-None-":             {},
	"- Please Select -":  {},
	"– Please select –":  {},
	"- Select -":         {},
	"Please Select":      {},
	"Not Answered":       {},
	"Not answered":       {},
	"undefined":          {},
	"null":               {},
	"Select if relevant": {},
}

// IsPlaceholder reports whether the trimmed string is one of the known UI
// placeholder values.
func IsPlaceholder(s string) bool {
	_, ok := placeholderValues[strings.TrimSpace(s)]
	return ok
}

// SanitizePicklist trims a picklist selection and reports whether it should
// be sent at all. The second return value is false for empty strings and for
// every known placeholder, meaning the key must be omitted from the record.
func SanitizePicklist(v any) (string, bool) {
	s, ok := ToText(v)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" || IsPlaceholder(s) {
		return "", false
	}
	return s, true
}

// SanitizePicklistUnknown behaves like SanitizePicklist except that the
// values "Not Answered" and "Not answered" map to the literal "Unknown".
// Only used for picklists whose remote schema defines an explicit Unknown
// member (phase of flight, flight rules, airspace class/type, altitude type,
// light conditions).
func SanitizePicklistUnknown(v any) (string, bool) {
	s, ok := ToText(v)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "Not Answered" || s == "Not answered" {
		return "Unknown", true
	}
	if s == "" || IsPlaceholder(s) {
		return "", false
	}
	return s, true
}
