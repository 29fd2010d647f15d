package crm

import (
	"errors"
	"fmt"
)

// ErrNoRecordID is returned when the CRM reports success but the response
// carries no record ID in any of the known envelope shapes.
var ErrNoRecordID = errors.New("crm: could not extract record ID from create response")

// APIError is a structured rejection from the CRM. Field, ExpectedType and
// ReceivedValue are populated when the CRM names the offending field, which
// is what makes the boolean-mismatch auto-correction possible.
type APIError struct {
	Code          string
	Message       string
	Field         string
	ExpectedType  string
	ReceivedValue string
}

func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("crm: %s: %s (field %q, expected %s, received %q)",
			e.Code, e.Message, e.Field, e.ExpectedType, e.ReceivedValue)
	}
	return fmt.Sprintf("crm: %s: %s", e.Code, e.Message)
}

// BooleanMismatch reports whether the error is the auto-correctable case: the
// CRM rejected the record because a boolean-typed field received a non-boolean
// value.
func (e *APIError) BooleanMismatch() bool {
	return e.Code == "INVALID_DATA" && e.ExpectedType == "boolean" && e.Field != ""
}
