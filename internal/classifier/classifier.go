package classifier

import (
	"context"
	"strings"

	"github.com/civicgrid/triage/internal/domain"
	"github.com/civicgrid/triage/internal/logger"
	"github.com/civicgrid/triage/internal/reasoning"
)

// Confidence thresholds for arbitration between verdicts.
const (
	// acceptConfidence accepts a verdict outright.
	acceptConfidence = 0.6
	// rejectConfidence forces a verdict down to General/LOW.
	rejectConfidence = 0.3
	// lockConfidence marks a keyword-evidence verdict.
	lockConfidence = 1.0
	// nameEchoConfidence applies when a category name is echoed
	// verbatim in the text but the models answered General.
	nameEchoConfidence = 0.9
)

const generalCategory = "General"

// Result is the classifier's verdict for one complaint.
type Result struct {
	Category   string  `json:"category"`
	Priority   string  `json:"priority"`
	Confidence float64 `json:"confidence"`
	Locked     bool    `json:"locked"`
}

// Classifier arbitrates between keyword evidence, a primary inference
// provider, and a secondary provider consulted only on weak verdicts.
type Classifier struct {
	matcher   *CategoryMatcher
	primary   reasoning.Service
	secondary reasoning.Service
	logger    logger.Logger
}

// New creates a classifier. Nil providers are treated as disabled.
func New(matcher *CategoryMatcher, primary, secondary reasoning.Service, log logger.Logger) *Classifier {
	if primary == nil {
		primary = reasoning.Disabled{}
	}
	if secondary == nil {
		secondary = reasoning.Disabled{}
	}
	return &Classifier{
		matcher:   matcher,
		primary:   primary,
		secondary: secondary,
		logger:    log,
	}
}

// Classify runs the full arbitration sequence. Keyword evidence wins
// immediately and locks the category; otherwise the providers are
// consulted and their best verdict is thresholded. Provider failures
// degrade the verdict, never the pipeline.
func (c *Classifier) Classify(ctx context.Context, text string) Result {
	if category, ok := c.matcher.Match(text); ok {
		c.logger.Debug("category locked by keyword evidence",
			logger.String("category", category))
		return Result{
			Category:   category,
			Priority:   domain.PriorityMedium,
			Confidence: lockConfidence,
			Locked:     true,
		}
	}

	best := c.consult(ctx, c.primary, "primary", text)
	if best == nil || best.Confidence < acceptConfidence {
		if second := c.consult(ctx, c.secondary, "secondary", text); second != nil {
			if best == nil || second.Confidence > best.Confidence {
				best = second
			}
		}
	}

	result := c.threshold(best)
	return c.applyNameEcho(text, result)
}

// consult asks one provider for a verdict, logging and swallowing
// failures.
func (c *Classifier) consult(ctx context.Context, svc reasoning.Service, role, text string) *reasoning.Classification {
	verdict, err := svc.Classify(ctx, text)
	if err != nil {
		c.logger.Warn("inference provider failed, continuing without it",
			logger.String("provider", role),
			logger.Error(err))
		return nil
	}
	return verdict
}

// threshold maps a raw verdict onto the final category and priority.
func (c *Classifier) threshold(best *reasoning.Classification) Result {
	if best == nil {
		return Result{Category: generalCategory, Priority: domain.PriorityLow, Confidence: 0}
	}
	if best.Confidence < rejectConfidence {
		return Result{
			Category:   generalCategory,
			Priority:   domain.PriorityLow,
			Confidence: best.Confidence,
		}
	}

	priority := domain.PriorityFromLevel(domain.PriorityLevel(best.Priority))
	return Result{
		Category:   best.Category,
		Priority:   priority,
		Confidence: best.Confidence,
	}
}

// applyNameEcho rescues a General verdict when the complainant wrote a
// category name verbatim.
func (c *Classifier) applyNameEcho(text string, r Result) Result {
	if r.Category != generalCategory {
		return r
	}
	textLower := strings.ToLower(text)
	for _, cat := range c.matcher.Categories() {
		if strings.Contains(textLower, strings.ToLower(cat.Category)) {
			c.logger.Debug("category recovered from name echo",
				logger.String("category", cat.Category))
			return Result{
				Category:   cat.Category,
				Priority:   domain.PriorityMedium,
				Confidence: nameEchoConfidence,
				Locked:     true,
			}
		}
	}
	return r
}
