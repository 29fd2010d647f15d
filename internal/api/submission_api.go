// Package api registers the portal's HTTP routes.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/avsafe/occurrence-portal/internal/forms"
	"github.com/avsafe/occurrence-portal/internal/httpresponse"
	"github.com/avsafe/occurrence-portal/internal/submission"
)

// SubmissionAPI handles the unified report submission endpoint.
type SubmissionAPI struct {
	Router       fiber.Router
	Orchestrator *submission.Orchestrator
}

// Register mounts the submission route.
func (api *SubmissionAPI) Register() {
	api.Router.Post("/submissions", func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		requestID := uuid.NewString()

		sub, err := parseSubmission(c)
		if err != nil {
			return httpresponse.BadRequest(c, err.Error(), nil)
		}
		log.Info(fmt.Sprintf("[%s] Received %s submission with %d file parts", requestID, sub.Type, len(sub.Attachments)))

		result, err := api.Orchestrator.Submit(ctx, sub)
		if err != nil {
			var ve *forms.ValidationError
			if errors.As(err, &ve) {
				return httpresponse.BadRequest(c, "Validation failed", ve.Messages)
			}
			return httpresponse.Error(c, err.Error(), err)
		}

		body := fiber.Map{
			"recordId":                 result.RecordID,
			"occurrenceId":             nullable(result.OccurrenceID),
			"workdriveFolder":          nullable(result.FolderID),
			"attachments":              uploadedNames(result),
			"userAttachmentsProcessed": len(result.Uploaded),
			"formData":                 sub.Fields,
			"formType":                 sub.Type,
			"metadata": fiber.Map{
				"occurrenceId":    nullable(result.OccurrenceID),
				"recordId":        result.RecordID,
				"timestamp":       time.Now().UTC().Format(time.RFC3339),
				"attachmentCount": len(result.Uploaded),
			},
		}
		if result.Warning != "" {
			body["warning"] = result.Warning
		}
		return httpresponse.Success(c, body)
	})
}

// parseSubmission decodes the multipart submission body: a formType field, a
// JSON-encoded formData field, and zero or more file_<n> parts.
func parseSubmission(c *fiber.Ctx) (*forms.Submission, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, fmt.Errorf("request body must be multipart form data")
	}

	formType, err := forms.ParseFormType(firstValue(form, "formType"))
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if raw := firstValue(form, "formData"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &fields); err != nil {
			return nil, fmt.Errorf("formData is not valid JSON")
		}
	}

	sub := &forms.Submission{Type: formType, Fields: fields}
	for name, headers := range form.File {
		if !strings.HasPrefix(name, "file_") {
			continue
		}
		for _, header := range headers {
			att, err := readAttachment(header)
			if err != nil {
				return nil, err
			}
			sub.Attachments = append(sub.Attachments, att)
		}
	}
	return sub, nil
}

func readAttachment(header *multipart.FileHeader) (forms.Attachment, error) {
	file, err := header.Open()
	if err != nil {
		return forms.Attachment{}, fmt.Errorf("failed to open uploaded file %q", header.Filename)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return forms.Attachment{}, fmt.Errorf("failed to read uploaded file %q", header.Filename)
	}

	return forms.Attachment{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     content,
	}, nil
}

func firstValue(form *multipart.Form, key string) string {
	if values := form.Value[key]; len(values) > 0 {
		return values[0]
	}
	return ""
}

// nullable maps an empty string to JSON null, which is how the response
// contract signals "not available".
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func uploadedNames(result *submission.Result) []string {
	if result.Uploaded == nil {
		return []string{}
	}
	return result.Uploaded
}
