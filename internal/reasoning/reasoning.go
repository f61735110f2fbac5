// Package reasoning defines the language-model collaborator contract
// used by the classifier and the translation stage.
package reasoning

import "context"

// Classification is a model's verdict on one complaint.
type Classification struct {
	Category   string
	Priority   string
	Confidence float64
}

// Service is implemented by inference providers. Translate renders text
// to English; Classify returns a category verdict or nil when the
// provider has no opinion.
type Service interface {
	Translate(ctx context.Context, text string) (string, error)
	Classify(ctx context.Context, text string) (*Classification, error)
}

// Disabled is a Service that never produces output. It stands in when a
// provider is not configured so callers need no nil checks.
type Disabled struct{}

// Translate returns the input unchanged.
func (Disabled) Translate(_ context.Context, text string) (string, error) {
	return text, nil
}

// Classify returns no verdict.
func (Disabled) Classify(_ context.Context, _ string) (*Classification, error) {
	return nil, nil //nolint:nilnil // absence of a verdict is not an error
}
