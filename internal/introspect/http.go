package introspect

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

type queryRequest struct {
	Query string `json:"query"`
}

// fetch POSTs the introspection query to endpoint and decodes the data member.
func (i *Introspector) fetch(ctx context.Context, endpoint string) (*Document, error) {
	endpoint = strings.TrimSpace(endpoint)

	body, err := json.Marshal(queryRequest{Query: Query})
	if err != nil {
		return nil, fmt.Errorf("failed to encode introspection query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build introspection request: %w", err)
	}

	for key, values := range i.headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if i.userAgent != "" {
		req.Header.Set("User-Agent", i.userAgent)
	}

	resp, err := i.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch GraphQL schema from %s: %w", endpoint, err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &SchemaFetchError{
			URL:        endpoint,
			StatusCode: resp.StatusCode,
			StatusText: statusText(resp),
		}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, i.maxResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read introspection response: %w", err)
	}

	if int64(len(data)) > i.maxResponseBytes {
		return nil, fmt.Errorf("introspection response from %s exceeds %d bytes", endpoint, i.maxResponseBytes)
	}

	doc, err := Decode(data)
	if err != nil {
		if fe, ok := err.(*SchemaFetchError); ok {
			fe.URL = endpoint
			fe.StatusCode = resp.StatusCode
		}

		return nil, err
	}

	return doc, nil
}

// statusText extracts the reason phrase from resp.Status ("500 Internal Server Error").
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}

	if text == "" {
		text = resp.Status
	}

	return text
}
