// Package geminiclient is the secondary inference provider, consulted
// only when the primary verdict is weak.
package geminiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/civicgrid/triage/internal/aitransport"
	"github.com/civicgrid/triage/internal/logger"
	"github.com/civicgrid/triage/internal/reasoning"
)

const (
	defaultConfidence = 0.8
	generalConfidence = 0.1
	defaultModel      = "gemini-1.5-flash"
	generalCategory   = "General"

	classificationPrompt = `Classify this civic complaint into exactly one category from:
Street Light, Potholes, Garbage, Water Stagnation, Mosquito Menace, Stray Dogs, Fallen Tree, General.
Assign a priority from: LOW, MEDIUM, HIGH, CRITICAL.
Respond with a JSON object only: {"category": "...", "priority": "...", "confidence": 0.0}.

Complaint: `

	translationPrompt = `Translate this civic complaint into English. Preserve place names,
numbers and square-bracket annotations exactly. If already English, return it unchanged.
Respond with the translation only.

Complaint: `
)

// ErrUnavailable indicates the Gemini API is unreachable or rejected
// the request.
var ErrUnavailable = errors.New("gemini service unavailable")

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type verdict struct {
	Category   string  `json:"category"`
	Priority   string  `json:"priority"`
	Confidence float64 `json:"confidence"`
}

// Client implements reasoning.Service against the Gemini REST API.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
	logger  logger.Logger
}

// New creates a Gemini client. model falls back to the default flash
// deployment.
func New(apiKey, baseURL, model string, httpClient *http.Client, log logger.Logger) *Client {
	if model == "" {
		model = defaultModel
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: aitransport.DefaultTimeout}
	}
	return &Client{baseURL: baseURL, apiKey: apiKey, model: model, client: httpClient, logger: log}
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.baseURL, c.model, url.QueryEscape(c.apiKey))

	req := generateRequest{Contents: []content{{Parts: []part{{Text: prompt}}}}}
	var resp generateResponse
	if err := aitransport.PostJSON(ctx, c.client, endpoint, &req, &resp); err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty candidate", ErrUnavailable)
	}
	return strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text), nil
}

// Translate renders the complaint text into English.
func (c *Client) Translate(ctx context.Context, text string) (string, error) {
	return c.generate(ctx, translationPrompt+text)
}

// Classify asks the model for a category verdict on the complaint.
func (c *Client) Classify(ctx context.Context, text string) (*reasoning.Classification, error) {
	raw, err := c.generate(ctx, classificationPrompt+text)
	if err != nil {
		return nil, err
	}

	var v verdict
	if unmarshalErr := json.Unmarshal([]byte(stripFences(raw)), &v); unmarshalErr != nil {
		return nil, fmt.Errorf("parse verdict: %w", unmarshalErr)
	}
	if v.Category == "" {
		v.Category = generalCategory
	}
	if v.Confidence <= 0 {
		if v.Category == generalCategory {
			v.Confidence = generalConfidence
		} else {
			v.Confidence = defaultConfidence
		}
	}

	c.logger.Debug("gemini classification",
		logger.String("category", v.Category),
		logger.Float64("confidence", v.Confidence))

	return &reasoning.Classification{
		Category:   v.Category,
		Priority:   v.Priority,
		Confidence: v.Confidence,
	}, nil
}

// stripFences removes a markdown code fence the model sometimes wraps
// around its JSON answer.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
