// Package forms defines the occurrence report submission types shared by the
// API layer, the CRM mapping layer, and the PDF generator.
package forms

import (
	"fmt"
	"strings"
)

// FormType identifies one of the four occurrence report variants.
type FormType string

// The closed set of report types.
const (
	FormTypeAccident  FormType = "accident"
	FormTypeDefect    FormType = "defect"
	FormTypeComplaint FormType = "complaint"
	FormTypeHazard    FormType = "hazard"
)

// formIDs are the fixed CRM form codes per report type.
var formIDs = map[FormType]string{
	FormTypeAccident:  "1",
	FormTypeDefect:    "2",
	FormTypeComplaint: "123",
	FormTypeHazard:    "4",
}

// ParseFormType resolves a client-supplied form type string. Matching is
// case-insensitive and accepts the historical "<type> report" alias.
func ParseFormType(s string) (FormType, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.TrimSuffix(normalized, " report")

	switch FormType(normalized) {
	case FormTypeAccident, FormTypeDefect, FormTypeComplaint, FormTypeHazard:
		return FormType(normalized), nil
	}
	return "", fmt.Errorf("unknown form type %q", s)
}

// FormID returns the fixed numeric-string form code for the type.
func (t FormType) FormID() string {
	return formIDs[t]
}

// Title returns the display title used on generated documents.
func (t FormType) Title() string {
	switch t {
	case FormTypeAccident:
		return "Accident Report"
	case FormTypeDefect:
		return "Defect Report"
	case FormTypeComplaint:
		return "Complaint Report"
	case FormTypeHazard:
		return "Hazard Report"
	}
	return "Occurrence Report"
}

// Submission is one occurrence report as received from the client: a bag of
// named fields plus any uploaded files. Field values are loosely typed
// (strings, numbers, booleans) exactly as the form layer sent them; the
// mapping package is responsible for coercing them into CRM types.
type Submission struct {
	Type        FormType
	Fields      map[string]any
	Attachments []Attachment
}

// Field returns the first present, non-empty value among the given field
// names. The form UI historically renamed fields, so most CRM fields are read
// through a short alias chain: canonical name first, legacy aliases after.
func (s *Submission) Field(names ...string) any {
	for _, name := range names {
		v, ok := s.Fields[name]
		if !ok || v == nil {
			continue
		}
		if str, isStr := v.(string); isStr && strings.TrimSpace(str) == "" {
			continue
		}
		return v
	}
	return nil
}

// Text returns the trimmed string form of the first present value among the
// given field names, or "" when none is present.
func (s *Submission) Text(names ...string) string {
	v := s.Field(names...)
	if v == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%v", v))
}
