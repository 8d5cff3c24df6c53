// Package platform hands generated workbooks to the import platform's
// workbook-creation API. Nothing is read back except the new workbook id.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"workbook-generator/internal/logging"
	"workbook-generator/internal/model"
)

// ErrMissingSpace is returned when no space id is available for a workbook.
var ErrMissingSpace = errors.New("workbook has no space id")

// Creator creates workbooks on the platform.
type Creator interface {
	CreateWorkbook(ctx context.Context, spaceID string, wb *model.Workbook) (string, error)
}

// APIError is a non-2xx platform response.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("platform API returned %s: %s", e.Status, e.Message)
	}

	return fmt.Sprintf("platform API returned %s", e.Status)
}

// Client is an HTTP Creator.
type Client struct {
	baseURL *url.URL
	apiKey  string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient creates a Client for the API at baseURL.
func NewClient(baseURL, apiKey string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil || !u.IsAbs() {
		return nil, fmt.Errorf("invalid platform API URL %q", baseURL)
	}

	if apiKey == "" {
		return nil, errors.New("platform API key is required")
	}

	c := &Client{
		baseURL: u,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

type createResponse struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

type errorResponse struct {
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// CreateWorkbook posts wb to <base>/v1/workbooks and returns the new id.
// A non-empty spaceID replaces the workbook's own.
func (c *Client) CreateWorkbook(ctx context.Context, spaceID string, wb *model.Workbook) (string, error) {
	payload := *wb
	if spaceID != "" {
		payload.SpaceID = spaceID
	}

	if payload.SpaceID == "" {
		return "", ErrMissingSpace
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode workbook: %w", err)
	}

	endpoint := c.baseURL.JoinPath("v1", "workbooks").String()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("create workbook: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &APIError{StatusCode: resp.StatusCode, Status: resp.Status, Message: errorMessage(data)}
	}

	var out createResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if out.Data.ID == "" {
		return "", errors.New("platform API response has no workbook id")
	}

	logging.FromContext(ctx).Info("workbook created",
		"workbook_id", out.Data.ID,
		"space_id", payload.SpaceID,
		"sheets", len(payload.Sheets),
	)

	return out.Data.ID, nil
}

func errorMessage(data []byte) string {
	var er errorResponse
	if err := json.Unmarshal(data, &er); err == nil && len(er.Errors) > 0 {
		msgs := make([]string, 0, len(er.Errors))
		for _, e := range er.Errors {
			msgs = append(msgs, e.Message)
		}

		return strings.Join(msgs, "; ")
	}

	return strings.TrimSpace(string(data))
}
