// Package sttclient is an HTTP client for the speech-to-text sidecar.
package sttclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/civicgrid/triage/internal/aitransport"
)

// ErrUnavailable indicates the transcription sidecar is unreachable.
var ErrUnavailable = errors.New("transcription service unavailable")

// Client talks to the sidecar's /transcribe endpoint.
type Client struct {
	baseURL string
	client  *http.Client
}

// TranscribeRequest is the request body for POST /transcribe.
type TranscribeRequest struct {
	AudioPath string `json:"audio_path"`
}

// TranscribeResponse is the sidecar's transcription result.
type TranscribeResponse struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// NewClient creates a transcription client.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: aitransport.DefaultTimeout}
	}
	return &Client{baseURL: baseURL, client: httpClient}
}

// Transcribe converts a stored voice note into text.
func (c *Client) Transcribe(ctx context.Context, audioPath string) (*TranscribeResponse, error) {
	req := &TranscribeRequest{AudioPath: audioPath}
	var result TranscribeResponse
	if err := aitransport.PostJSON(ctx, c.client, c.baseURL+"/transcribe", req, &result); err != nil {
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
