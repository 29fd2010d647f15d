// Package docstore talks to the remote document store holding occurrence
// attachments. Each occurrence gets its own subfolder under a configured
// parent, keyed by the CRM-generated occurrence identifier.
package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"
)

// Store is the operation set the submission orchestrator needs. Tests
// substitute fakes.
type Store interface {
	// EnsureFolder finds or creates a subfolder with the given name under
	// the parent folder and returns its ID.
	EnsureFolder(ctx context.Context, parentID, name string) (string, error)
	// UploadFile uploads one file into the folder and returns the stored
	// file's ID.
	UploadFile(ctx context.Context, folderID, filename, contentType string, content []byte) (string, error)
}

// Client is the HTTP implementation of Store.
type Client struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
}

// NewClient creates a document store client for the given API base URL.
func NewClient(baseURL, authToken string) *Client {
	return &Client{
		baseURL:   baseURL,
		authToken: authToken,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type folderEntry struct {
	ID         string `json:"id"`
	Attributes struct {
		Name string `json:"name"`
	} `json:"attributes"`
}

// EnsureFolder implements Store.
func (c *Client) EnsureFolder(ctx context.Context, parentID, name string) (string, error) {
	if existing, err := c.findFolder(ctx, parentID, name); err == nil && existing != "" {
		return existing, nil
	}
	return c.createFolder(ctx, parentID, name)
}

func (c *Client) findFolder(ctx context.Context, parentID, name string) (string, error) {
	endpoint := fmt.Sprintf("%s/api/v1/files/%s/files", c.baseURL, url.PathEscape(parentID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build folder list request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.authToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("folder list request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("folder list returned status %d", resp.StatusCode)
	}

	var env struct {
		Data []folderEntry `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return "", fmt.Errorf("failed to decode folder list: %w", err)
	}
	for _, entry := range env.Data {
		if entry.Attributes.Name == name {
			return entry.ID, nil
		}
	}
	return "", nil
}

func (c *Client) createFolder(ctx context.Context, parentID, name string) (string, error) {
	payload, err := json.Marshal(map[string]any{
		"data": map[string]any{
			"attributes": map[string]string{
				"name":      name,
				"parent_id": parentID,
			},
			"type": "files",
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal folder request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/files", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build folder create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.authToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("folder create request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("folder create returned status %d", resp.StatusCode)
	}

	var env struct {
		Data folderEntry `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return "", fmt.Errorf("failed to decode folder create response: %w", err)
	}
	if env.Data.ID == "" {
		return "", fmt.Errorf("folder create response carried no folder ID")
	}
	return env.Data.ID, nil
}

// UploadFile implements Store.
func (c *Client) UploadFile(ctx context.Context, folderID, filename, contentType string, content []byte) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("content", filename)
	if err != nil {
		return "", fmt.Errorf("failed to create multipart part: %w", err)
	}
	if _, err := io.Copy(part, bytes.NewReader(content)); err != nil {
		return "", fmt.Errorf("failed to write multipart content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	endpoint := fmt.Sprintf("%s/api/v1/upload?parent_id=%s&filename=%s&override-name-exist=true",
		c.baseURL, url.QueryEscape(folderID), url.QueryEscape(filename))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.authToken)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("upload of %q returned status %d", filename, resp.StatusCode)
	}

	var env struct {
		Data []struct {
			Attributes struct {
				ResourceID string `json:"resource_id"`
			} `json:"attributes"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	if len(env.Data) == 0 {
		return "", fmt.Errorf("upload response carried no file entry")
	}
	return env.Data[0].Attributes.ResourceID, nil
}
