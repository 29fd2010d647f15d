package pdfgen

import (
	"bytes"
	"strings"
	"testing"
	"time"

	ledongthuc "github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avsafe/occurrence-portal/internal/forms"
)

func accidentForm() *forms.Submission {
	return &forms.Submission{
		Type: forms.FormTypeAccident,
		Fields: map[string]any{
			"firstName":         "John",
			"lastName":          "Doe",
			"contactPhone":      "+61412345678",
			"emailAddress":      "john@example.com",
			"occurrenceDate":    "2024-01-15",
			"detailsOfIncident": strings.Repeat("Hard landing following wind shear on short final. ", 8),
			"aircraftConcat":    "24-1234",
			"damageToAircraft":  "Substantial",
		},
	}
}

func TestBuildAccidentReport(t *testing.T) {
	data, err := BuildReport(accidentForm(), Metadata{
		OccurrenceID: "OCC-02451",
		Submitted:    time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	pages := validatePDF(t, data)
	assert.GreaterOrEqual(t, pages, 2, "the accident report spans multiple pages")
}

func TestBuildShortReports(t *testing.T) {
	for _, formType := range []forms.FormType{forms.FormTypeDefect, forms.FormTypeComplaint, forms.FormTypeHazard} {
		sub := &forms.Submission{
			Type: formType,
			Fields: map[string]any{
				"firstName":         "Jane",
				"lastName":          "Smith",
				"emailAddress":      "jane@example.com",
				"occurrenceDate":    "2024-02-01",
				"detailsOfIncident": "Short description.",
			},
		}

		data, err := BuildReport(sub, Metadata{OccurrenceID: "OCC-00042"})
		require.NoError(t, err, "form type %s", formType)
		validatePDF(t, data)
	}
}

func TestReportTextReadBack(t *testing.T) {
	data, err := BuildReport(accidentForm(), Metadata{
		OccurrenceID: "OCC-02451",
		Submitted:    time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	reader, err := ledongthuc.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.GreaterOrEqual(t, reader.NumPage(), 2)

	page := reader.Page(1)
	require.False(t, page.V.IsNull())

	text, err := page.GetPlainText(nil)
	require.NoError(t, err)
	assert.Contains(t, text, "Accident Report")
	assert.Contains(t, text, "OCC-02451")
}

func TestReportFilename(t *testing.T) {
	tests := []struct {
		formType     forms.FormType
		occurrenceID string
		want         string
	}{
		{forms.FormTypeAccident, "OCC-02451", "Accident_Report_OCC-02451.pdf"},
		{forms.FormTypeDefect, "OCC-7", "Defect_Report_OCC-7.pdf"},
		{forms.FormTypeComplaint, "", "Complaint_Report_Pending.pdf"},
		{forms.FormTypeHazard, "OCC-9", "Hazard_Report_OCC-9.pdf"},
	}

	for _, tt := range tests {
		if got := ReportFilename(tt.formType, tt.occurrenceID); got != tt.want {
			t.Errorf("ReportFilename(%s, %q) = %q, want %q", tt.formType, tt.occurrenceID, got, tt.want)
		}
	}
}

func TestBuildReportUnknownType(t *testing.T) {
	_, err := BuildReport(&forms.Submission{Type: forms.FormType("incident")}, Metadata{})
	require.Error(t, err)
}
