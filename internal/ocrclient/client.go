// Package ocrclient is an HTTP client for the vision OCR sidecar. The
// same endpoint serves photo context extraction and scanned paper
// complaints.
package ocrclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/civicgrid/triage/internal/aitransport"
)

// ErrUnavailable indicates the OCR sidecar is unreachable.
var ErrUnavailable = errors.New("ocr service unavailable")

// Client talks to the sidecar's /ocr endpoint.
type Client struct {
	baseURL string
	client  *http.Client
}

// ExtractRequest is the request body for POST /ocr.
type ExtractRequest struct {
	ImagePath string `json:"image_path"`
}

// ExtractResponse is the sidecar's extraction result.
type ExtractResponse struct {
	Text string `json:"text"`
}

// NewClient creates an OCR client.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: aitransport.DefaultTimeout}
	}
	return &Client{baseURL: baseURL, client: httpClient}
}

// Extract reads visible text out of a stored image.
func (c *Client) Extract(ctx context.Context, imagePath string) (*ExtractResponse, error) {
	req := &ExtractRequest{ImagePath: imagePath}
	var result ExtractResponse
	if err := aitransport.PostJSON(ctx, c.client, c.baseURL+"/ocr", req, &result); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return &result, nil
}

// Health checks whether the sidecar is reachable.
func (c *Client) Health(ctx context.Context) error {
	reachable, _, err := aitransport.DoHealth(ctx, c.baseURL)
	if err != nil {
		if !reachable {
			return fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return err
	}
	return nil
}
