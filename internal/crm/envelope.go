package crm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// The CRM has returned several envelope shapes for record creation over the
// years: a bare {"details":{"id":...}}, a {"data":[{"code":"SUCCESS",...}]}
// wrapper, and a {"status":"success",...} wrapper. ParseCreateResponse
// resolves all of them into either a record ID or a typed error, instead of
// guessing with optional-field chains at each call site.

type createEnvelope struct {
	Data    []createEntry  `json:"data"`
	Code    string         `json:"code"`
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Details *createDetails `json:"details"`
}

type createEntry struct {
	Code    string         `json:"code"`
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Details *createDetails `json:"details"`
}

type createDetails struct {
	ID               json.Number `json:"id"`
	APIName          string      `json:"api_name"`
	ExpectedDataType string      `json:"expected_data_type"`
	ReceivedValue    any         `json:"received_value"`
}

// ParseCreateResponse extracts the created record's ID from a CRM create
// response body. Rejections surface as *APIError; a success-shaped body with
// no locatable ID surfaces as ErrNoRecordID.
func ParseCreateResponse(body []byte) (string, error) {
	var env createEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return "", fmt.Errorf("crm: unparseable create response: %w", err)
	}

	// Wrapped shape: {"data":[{"code":"SUCCESS","details":{"id":...}}]}.
	if len(env.Data) > 0 {
		entry := env.Data[0]
		if isSuccess(entry.Code, entry.Status) {
			if entry.Details != nil && entry.Details.ID.String() != "" {
				return entry.Details.ID.String(), nil
			}
			return "", ErrNoRecordID
		}
		return "", apiErrorFrom(entry.Code, entry.Message, entry.Details)
	}

	// Top-level shapes: {"details":{"id":...}} with or without a code/status.
	if env.Code != "" && !isSuccess(env.Code, env.Status) {
		return "", apiErrorFrom(env.Code, env.Message, env.Details)
	}
	if env.Details != nil && env.Details.ID.String() != "" {
		return env.Details.ID.String(), nil
	}

	return "", ErrNoRecordID
}

func isSuccess(code, status string) bool {
	return code == "SUCCESS" || strings.EqualFold(status, "success")
}

func apiErrorFrom(code, message string, details *createDetails) *APIError {
	apiErr := &APIError{Code: code, Message: message}
	if apiErr.Code == "" {
		apiErr.Code = "UNKNOWN"
	}
	if details != nil {
		apiErr.Field = details.APIName
		apiErr.ExpectedType = details.ExpectedDataType
		if details.ReceivedValue != nil {
			apiErr.ReceivedValue = fmt.Sprintf("%v", details.ReceivedValue)
		}
	}
	return apiErr
}
