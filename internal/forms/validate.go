package forms

import (
	"fmt"
	"strings"
)

// ValidationError carries the full list of missing-field messages for one
// submission so the client can surface them all at once.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Messages, "; "))
}

// requiredField pairs a human-readable label with the alias chain used to
// locate the value in the submission.
type requiredField struct {
	label string
	names []string
}

var requiredByType = map[FormType][]requiredField{
	FormTypeAccident: {
		{"First name", []string{"First_Name", "firstName"}},
		{"Last name", []string{"Last_Name", "lastName"}},
		{"Contact phone", []string{"Contact_Phone", "contactPhone"}},
		{"Email address", []string{"Email", "emailAddress"}},
		{"Occurrence date", []string{"Occurrence_Date1", "occurrenceDate"}},
		{"Details of incident", []string{"Details_of_incident", "detailsOfIncident"}},
	},
	FormTypeDefect: {
		{"First name", []string{"First_Name", "firstName"}},
		{"Last name", []string{"Last_Name", "lastName"}},
		{"Email address", []string{"Email", "emailAddress"}},
		{"Occurrence date", []string{"Occurrence_Date1", "occurrenceDate"}},
		{"Details of defect", []string{"Details_of_incident", "detailsOfDefect", "detailsOfIncident"}},
	},
	FormTypeComplaint: {
		{"First name", []string{"First_Name", "firstName"}},
		{"Last name", []string{"Last_Name", "lastName"}},
		{"Email address", []string{"Email", "emailAddress"}},
		{"Details of complaint", []string{"Details_of_incident", "detailsOfComplaint", "detailsOfIncident"}},
	},
	FormTypeHazard: {
		{"First name", []string{"First_Name", "firstName"}},
		{"Last name", []string{"Last_Name", "lastName"}},
		{"Email address", []string{"Email", "emailAddress"}},
		{"Occurrence date", []string{"Occurrence_Date1", "occurrenceDate"}},
		{"Details of hazard", []string{"Details_of_incident", "detailsOfHazard", "detailsOfIncident"}},
	},
}

// ValidateRequired checks the form-type-specific required fields and returns
// a ValidationError listing every missing one. A nil return means the
// submission may proceed to the build step.
func ValidateRequired(s *Submission) error {
	var missing []string
	for _, f := range requiredByType[s.Type] {
		if s.Text(f.names...) == "" {
			missing = append(missing, fmt.Sprintf("%s is required", f.label))
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Messages: missing}
	}
	return nil
}
