package crm

import (
	"errors"
	"testing"
)

func TestParseCreateResponseShapes(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		wantID string
	}{
		{
			name:   "wrapped SUCCESS entry",
			body:   `{"data":[{"code":"SUCCESS","details":{"id":"5725767000001052001"}}]}`,
			wantID: "5725767000001052001",
		},
		{
			name:   "top-level details",
			body:   `{"details":{"id":"123456"}}`,
			wantID: "123456",
		},
		{
			name:   "status success wrapper",
			body:   `{"status":"success","details":{"id":"987"}}`,
			wantID: "987",
		},
		{
			name:   "numeric id",
			body:   `{"data":[{"code":"SUCCESS","details":{"id":42}}]}`,
			wantID: "42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseCreateResponse([]byte(tt.body))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != tt.wantID {
				t.Errorf("id = %q, want %q", id, tt.wantID)
			}
		})
	}
}

func TestParseCreateResponseBooleanMismatch(t *testing.T) {
	body := `{"data":[{"code":"INVALID_DATA","message":"invalid data","details":{"api_name":"Accident","expected_data_type":"boolean","received_value":"Yes"}}]}`

	_, err := ParseCreateResponse([]byte(body))
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if !apiErr.BooleanMismatch() {
		t.Errorf("expected boolean mismatch, got %+v", apiErr)
	}
	if apiErr.Field != "Accident" {
		t.Errorf("Field = %q", apiErr.Field)
	}
	if apiErr.ReceivedValue != "Yes" {
		t.Errorf("ReceivedValue = %q", apiErr.ReceivedValue)
	}
}

func TestParseCreateResponseOtherError(t *testing.T) {
	body := `{"data":[{"code":"MANDATORY_NOT_FOUND","message":"required field not found","details":{"api_name":"Last_Name"}}]}`

	_, err := ParseCreateResponse([]byte(body))
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.BooleanMismatch() {
		t.Error("MANDATORY_NOT_FOUND must not look auto-correctable")
	}
	if apiErr.Code != "MANDATORY_NOT_FOUND" {
		t.Errorf("Code = %q", apiErr.Code)
	}
}

func TestParseCreateResponseNoID(t *testing.T) {
	for _, body := range []string{
		`{"data":[{"code":"SUCCESS"}]}`,
		`{"status":"success"}`,
		`{}`,
	} {
		_, err := ParseCreateResponse([]byte(body))
		if !errors.Is(err, ErrNoRecordID) {
			t.Errorf("body %s: expected ErrNoRecordID, got %v", body, err)
		}
	}
}

func TestParseCreateResponseMalformed(t *testing.T) {
	_, err := ParseCreateResponse([]byte("not json"))
	if err == nil {
		t.Fatal("expected error for malformed body")
	}
}
