package api

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/avsafe/occurrence-portal/internal/forms"
	"github.com/avsafe/occurrence-portal/internal/httpresponse"
	"github.com/avsafe/occurrence-portal/internal/pdfgen"
)

// PDFAPI handles rendering a submitted report as a downloadable PDF.
type PDFAPI struct {
	Router fiber.Router
}

type generatePDFRequest struct {
	FormType string         `json:"formType"`
	FormData map[string]any `json:"formData"`
	Metadata struct {
		OccurrenceID string `json:"occurrenceId"`
		RecordID     string `json:"recordId"`
		Timestamp    string `json:"timestamp"`
	} `json:"metadata"`
}

// Register mounts the PDF generation route.
func (api *PDFAPI) Register() {
	api.Router.Post("/generate-pdf", func(c *fiber.Ctx) error {
		var req generatePDFRequest
		if err := c.BodyParser(&req); err != nil {
			return httpresponse.BadRequest(c, "Request body must be JSON", nil)
		}

		formType, err := forms.ParseFormType(req.FormType)
		if err != nil {
			return httpresponse.BadRequest(c, err.Error(), nil)
		}

		meta := pdfgen.Metadata{
			OccurrenceID: req.Metadata.OccurrenceID,
			RecordID:     req.Metadata.RecordID,
		}
		if req.Metadata.Timestamp != "" {
			if ts, parseErr := time.Parse(time.RFC3339, req.Metadata.Timestamp); parseErr == nil {
				meta.Submitted = ts
			}
		}

		data, err := pdfgen.BuildReport(&forms.Submission{Type: formType, Fields: req.FormData}, meta)
		if err != nil {
			return httpresponse.Error(c, "PDF generation failed", err)
		}

		filename := pdfgen.ReportFilename(formType, req.Metadata.OccurrenceID)
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
		return c.Send(data)
	})
}
