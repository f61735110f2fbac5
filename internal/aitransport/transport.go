// Package aitransport provides shared HTTP transport for the AI sidecar
// and upstream inference services.
package aitransport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds any single sidecar or inference round trip.
const DefaultTimeout = 5 * time.Second

// PostJSON sends a JSON body to url and decodes the JSON response into
// respPtr. respPtr must be a pointer to a struct matching the response.
func PostJSON(ctx context.Context, client *http.Client, url string, reqBody, respPtr any) error {
	body, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("service returned %d", resp.StatusCode)
	}

	if decodeErr := json.NewDecoder(resp.Body).Decode(respPtr); decodeErr != nil {
		return fmt.Errorf("decode response: %w", decodeErr)
	}
	return nil
}

// GetJSON performs a GET against url with optional headers and decodes
// the JSON response into respPtr.
func GetJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, respPtr any) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}

	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("service returned %d", resp.StatusCode)
	}

	if decodeErr := json.NewDecoder(resp.Body).Decode(respPtr); decodeErr != nil {
		return fmt.Errorf("decode response: %w", decodeErr)
	}
	return nil
}

// DoHealth calls GET /health at baseURL and returns reachability and
// round-trip latency.
func DoHealth(ctx context.Context, baseURL string) (reachable bool, latencyMs int64, err error) {
	start := time.Now()

	httpReq, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/health", http.NoBody)
	if reqErr != nil {
		return false, 0, fmt.Errorf("create request: %w", reqErr)
	}

	client := &http.Client{Timeout: DefaultTimeout}
	resp, doErr := client.Do(httpReq)
	latencyMs = time.Since(start).Milliseconds()
	if doErr != nil {
		return false, latencyMs, fmt.Errorf("service unreachable: %w", doErr)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return false, latencyMs, fmt.Errorf("unhealthy status: %d", resp.StatusCode)
	}
	return true, latencyMs, nil
}
