// Package submission runs one occurrence report end to end: validation,
// record build, CRM create with bounded auto-correction, occurrence-ID
// polling, and attachment upload. Record creation is the primary success
// criterion; everything downstream of it degrades to a warning instead of
// failing the request.
package submission

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/avsafe/occurrence-portal/internal/coerce"
	"github.com/avsafe/occurrence-portal/internal/crm"
	"github.com/avsafe/occurrence-portal/internal/docstore"
	"github.com/avsafe/occurrence-portal/internal/forms"
	"github.com/avsafe/occurrence-portal/internal/mapping"
)

const (
	// DefaultPollAttempts bounds the occurrence-ID fetch after creation.
	DefaultPollAttempts = 5
	// DefaultPollDelay is the fixed wait between fetch attempts. The CRM
	// generates the identifier asynchronously, usually within a few seconds.
	DefaultPollDelay = 2 * time.Second

	occurrenceIDField = "Occurrence_ID"
)

// Orchestrator coordinates one submission run. Zero-value fields fall back to
// the package defaults; Sleep exists so tests run without real delays.
type Orchestrator struct {
	CRM            crm.API
	Store          docstore.Store
	Module         string
	ParentFolderID string
	PollAttempts   int
	PollDelay      time.Duration
	Sleep          func(time.Duration)
}

// Result is the outcome of a successful (possibly degraded) submission.
type Result struct {
	RecordID     string
	OccurrenceID string
	FolderID     string
	Uploaded     []string
	Warning      string
}

// Submit runs the full pipeline for one report. Errors returned here mean the
// CRM record was never created; after creation succeeds, downstream failures
// are reported through Result.Warning instead.
func (o *Orchestrator) Submit(ctx context.Context, sub *forms.Submission) (*Result, error) {
	if err := forms.ValidateRequired(sub); err != nil {
		return nil, err
	}

	record, err := mapping.Build(sub)
	if err != nil {
		return nil, err
	}

	recordID, err := o.createWithCorrection(ctx, record)
	if err != nil {
		return nil, err
	}
	log.Info(fmt.Sprintf("Created %s record %s for %s report", o.Module, recordID, sub.Type))

	result := &Result{RecordID: recordID}

	occurrenceID, err := o.pollOccurrenceID(ctx, recordID)
	if err != nil {
		result.Warning = fmt.Sprintf("occurrence ID unavailable: %v", err)
		return result, nil
	}
	if !ValidOccurrenceID(occurrenceID) {
		result.Warning = fmt.Sprintf("occurrence ID %q is malformed; attachments were not uploaded", occurrenceID)
		return result, nil
	}
	result.OccurrenceID = occurrenceID

	if o.ParentFolderID == "" || o.Store == nil {
		return result, nil
	}

	attachments := forms.FilterValid(sub.Attachments)
	if len(attachments) == 0 {
		return result, nil
	}
	o.uploadAttachments(ctx, result, attachments)
	return result, nil
}

// createWithCorrection calls the CRM create API with a single bounded
// auto-correction: when the CRM reports a boolean-type mismatch on a named
// field whose current value is not boolean, that one field is coerced and the
// create retried exactly once.
func (o *Orchestrator) createWithCorrection(ctx context.Context, record crm.Record) (string, error) {
	recordID, err := o.CRM.CreateRecord(ctx, o.Module, record)
	if err == nil {
		return recordID, nil
	}

	var apiErr *crm.APIError
	if !errors.As(err, &apiErr) || !apiErr.BooleanMismatch() {
		return "", err
	}
	current, present := record[apiErr.Field]
	if !present {
		// The record never carried the field; coercing would invent an
		// answer the reporter did not give.
		return "", err
	}
	if _, isBool := current.(bool); isBool {
		// The field is already boolean; retrying the same payload cannot help.
		return "", err
	}

	log.Warn(fmt.Sprintf("CRM rejected field %s as non-boolean, coercing and retrying once", apiErr.Field))
	record[apiErr.Field] = coerce.ToBoolean(current)

	recordID, retryErr := o.CRM.CreateRecord(ctx, o.Module, record)
	if retryErr != nil {
		return "", fmt.Errorf("create retry after coercing %s failed: %w", apiErr.Field, retryErr)
	}
	return recordID, nil
}

// pollOccurrenceID fetches the CRM-generated occurrence identifier, retrying
// with a fixed delay because the CRM assigns it asynchronously.
func (o *Orchestrator) pollOccurrenceID(ctx context.Context, recordID string) (string, error) {
	attempts := o.PollAttempts
	if attempts <= 0 {
		attempts = DefaultPollAttempts
	}
	delay := o.PollDelay
	if delay <= 0 {
		delay = DefaultPollDelay
	}
	sleep := o.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			sleep(delay)
		}

		record, err := o.CRM.GetRecord(ctx, o.Module, recordID)
		if err != nil {
			log.Warn(fmt.Sprintf("Occurrence ID fetch attempt %d/%d failed: %v", attempt, attempts, err))
			continue
		}
		if id, ok := record[occurrenceIDField].(string); ok && strings.TrimSpace(id) != "" {
			return strings.TrimSpace(id), nil
		}
	}
	return "", fmt.Errorf("no occurrence ID after %d attempts", attempts)
}

// ValidOccurrenceID reports whether an identifier matches the CRM's OCC
// numbering pattern.
func ValidOccurrenceID(id string) bool {
	return strings.HasPrefix(id, "OCC") && len(id) >= 5
}

// uploadAttachments creates the per-occurrence folder and uploads every valid
// attachment into it. All failures here downgrade to a warning on the result.
func (o *Orchestrator) uploadAttachments(ctx context.Context, result *Result, attachments []forms.Attachment) {
	folderID, err := o.Store.EnsureFolder(ctx, o.ParentFolderID, result.OccurrenceID)
	if err != nil {
		result.Warning = fmt.Sprintf("attachment upload failed: %v", err)
		return
	}
	result.FolderID = folderID

	// Best effort: the record keeps working without the folder reference.
	if err := o.CRM.UpdateRecord(ctx, o.Module, result.RecordID, crm.Record{"Workdrive_Folder_ID": folderID}); err != nil {
		log.Warn(fmt.Sprintf("Failed to store folder ID on record %s: %v", result.RecordID, err))
	}

	var failures []string
	for _, att := range attachments {
		if _, err := o.Store.UploadFile(ctx, folderID, att.Name, att.ContentType, att.Content); err != nil {
			log.Error(fmt.Sprintf("Upload of %q failed: %v", att.Name, err))
			failures = append(failures, att.Name)
			continue
		}
		result.Uploaded = append(result.Uploaded, att.Name)
	}
	if len(failures) > 0 {
		result.Warning = fmt.Sprintf("attachment upload failed for: %s", strings.Join(failures, ", "))
	}
}
