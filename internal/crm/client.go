package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// API is the subset of CRM operations the portal depends on. The submission
// orchestrator, lookup adapter, and occurrence listing all consume this
// interface so tests can substitute fakes.
type API interface {
	// CreateRecord inserts a record into the named CRM module and returns
	// the new record's ID. Rejections are returned as *APIError.
	CreateRecord(ctx context.Context, module string, record Record) (string, error)
	// UpdateRecord patches fields on an existing record.
	UpdateRecord(ctx context.Context, module, id string, fields Record) error
	// GetRecord fetches a single record by ID.
	GetRecord(ctx context.Context, module, id string) (Record, error)
	// SearchRecords runs a criteria search against the named module. An
	// empty result is ([], nil), not an error.
	SearchRecords(ctx context.Context, module, criteria string) ([]Record, error)
}

// Client is the HTTP implementation of API.
type Client struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
}

// NewClient creates a CRM client for the given API base URL.
func NewClient(baseURL, authToken string) *Client {
	return &Client{
		baseURL:   baseURL,
		authToken: authToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// CreateRecord implements API.
func (c *Client) CreateRecord(ctx context.Context, module string, record Record) (string, error) {
	payload, err := json.Marshal(map[string]any{"data": []Record{record}})
	if err != nil {
		return "", fmt.Errorf("failed to marshal record: %w", err)
	}

	body, _, err := c.do(ctx, http.MethodPost, c.moduleURL(module), payload)
	if err != nil {
		return "", err
	}
	return ParseCreateResponse(body)
}

// UpdateRecord implements API.
func (c *Client) UpdateRecord(ctx context.Context, module, id string, fields Record) error {
	payload, err := json.Marshal(map[string]any{"data": []Record{fields}})
	if err != nil {
		return fmt.Errorf("failed to marshal record update: %w", err)
	}

	body, _, err := c.do(ctx, http.MethodPut, c.moduleURL(module)+"/"+url.PathEscape(id), payload)
	if err != nil {
		return err
	}
	if _, err := ParseCreateResponse(body); err != nil {
		return fmt.Errorf("failed to update record %s: %w", id, err)
	}
	return nil
}

// GetRecord implements API.
func (c *Client) GetRecord(ctx context.Context, module, id string) (Record, error) {
	body, status, err := c.do(ctx, http.MethodGet, c.moduleURL(module)+"/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNoContent {
		return nil, fmt.Errorf("crm: record %s not found in %s", id, module)
	}

	var env struct {
		Data []Record `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to decode record response: %w", err)
	}
	if len(env.Data) == 0 {
		return nil, fmt.Errorf("crm: record %s not found in %s", id, module)
	}
	return env.Data[0], nil
}

// SearchRecords implements API.
func (c *Client) SearchRecords(ctx context.Context, module, criteria string) ([]Record, error) {
	endpoint := c.moduleURL(module) + "/search?criteria=" + url.QueryEscape(criteria)
	body, status, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	// The CRM signals "no matches" with 204 and an empty body.
	if status == http.StatusNoContent || len(body) == 0 {
		return nil, nil
	}

	var env struct {
		Data []Record `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	return env.Data, nil
}

func (c *Client) moduleURL(module string) string {
	return fmt.Sprintf("%s/crm/v2/%s", c.baseURL, url.PathEscape(module))
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload []byte) ([]byte, int, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build CRM request: %w", err)
	}
	req.Header.Set("Authorization", "Zoho-oauthtoken "+c.authToken)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("CRM request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read CRM response: %w", err)
	}

	// 4xx bodies carry the structured rejection envelope; let the caller's
	// envelope parser turn them into typed errors. 5xx is a hard failure.
	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, resp.StatusCode, fmt.Errorf("CRM request failed with status %d", resp.StatusCode)
	}
	return body, resp.StatusCode, nil
}
