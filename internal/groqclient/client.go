// Package groqclient is the primary inference provider, speaking the
// OpenAI-compatible chat API hosted by Groq.
package groqclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/civicgrid/triage/internal/logger"
	"github.com/civicgrid/triage/internal/reasoning"
)

// Confidence assigned when the model answers but reports no score of
// its own. A General verdict carries little signal.
const (
	defaultConfidence        = 0.7
	generalConfidence        = 0.2
	classificationTemp       = 0.1
	defaultModel             = "llama-3.3-70b-versatile"
	generalCategory          = "General"
	classificationSystemText = `You are a civic complaint triage assistant for a city corporation.
Classify the complaint into exactly one category from this list:
Street Light, Potholes, Garbage, Water Stagnation, Mosquito Menace, Stray Dogs, Fallen Tree, General.
Assign a priority from: LOW, MEDIUM, HIGH, CRITICAL.
Respond with a JSON object: {"category": "...", "priority": "...", "confidence": 0.0}.
Confidence is your certainty between 0 and 1. Use "General" only when no category fits.`
	translationSystemText = `You translate citizen complaints into English.
Preserve place names, numbers and annotations in square brackets exactly as written.
If the text is already English, return it unchanged. Respond with the translation only.`
)

// ErrUnavailable indicates the Groq API is unreachable or rejected the
// request.
var ErrUnavailable = errors.New("groq service unavailable")

type verdict struct {
	Category   string  `json:"category"`
	Priority   string  `json:"priority"`
	Confidence float64 `json:"confidence"`
}

// Client implements reasoning.Service against the Groq chat API.
type Client struct {
	api    *openai.Client
	model  string
	logger logger.Logger
}

// New creates a Groq client. baseURL overrides the API endpoint for
// tests; model falls back to the default Llama deployment.
func New(apiKey, baseURL, model string, log logger.Logger) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = defaultModel
	}
	return &Client{api: openai.NewClientWithConfig(cfg), model: model, logger: log}
}

// Translate renders the complaint text into English.
func (c *Client) Translate(ctx context.Context, text string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: classificationTemp,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: translationSystemText},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion", ErrUnavailable)
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Classify asks the model for a category verdict on the complaint.
func (c *Client) Classify(ctx context.Context, text string) (*reasoning.Classification, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: classificationTemp,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: classificationSystemText},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty completion", ErrUnavailable)
	}

	var v verdict
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if unmarshalErr := json.Unmarshal([]byte(content), &v); unmarshalErr != nil {
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

	c.logger.Debug("groq classification",
		logger.String("category", v.Category),
		logger.Float64("confidence", v.Confidence))

	return &reasoning.Classification{
		Category:   v.Category,
		Priority:   v.Priority,
		Confidence: v.Confidence,
	}, nil
}
