// Package policy validates classified categories against the list of
// issues the corporation actually services.
package policy

import (
	"context"
	"strings"

	"github.com/civicgrid/triage/internal/domain"
	"github.com/civicgrid/triage/internal/logger"
)

// allowedIssues is the serviceable issue list. Matching is substring in
// either direction, case-insensitive, so "Garbage" accepts "Garbage
// Overflow" and vice versa.
var allowedIssues = []string{
	"Potholes",
	"Garbage",
	"Broken Garbage Bin",
	"Street Light",
	"Public Toilet",
	"Mosquito Menace",
	"Water Stagnation",
	"Storm Water Drain",
	"Stray Dogs",
	"Fallen Tree",
	"Others",
}

// CounterStore counts complaints flagged for manual review, keyed by
// category so unrelated issues never share a backlog. The redis and
// in-memory implementations live in the reviewstore package.
type CounterStore interface {
	Incr(ctx context.Context, category string) (int64, error)
}

// Validator checks categories against the allow list and raises an
// operator alert when too many complaints pile up in review.
type Validator struct {
	counter   CounterStore
	threshold int64
	logger    logger.Logger
}

// NewValidator creates a validator. counter may be nil, in which case
// review counting is skipped.
func NewValidator(counter CounterStore, threshold int64, log logger.Logger) *Validator {
	return &Validator{counter: counter, threshold: threshold, logger: log}
}

// Validate returns domain.ValidationOK when the category is
// serviceable, domain.ValidationReview otherwise. Review outcomes bump
// the counter; counter failures never change the outcome.
func (v *Validator) Validate(ctx context.Context, category string) string {
	if Allowed(category) {
		return domain.ValidationOK
	}

	v.logger.Info("category outside serviceable list, flagging for review",
		logger.String("category", category))

	if v.counter != nil {
		count, err := v.counter.Incr(ctx, category)
		switch {
		case err != nil:
			v.logger.Warn("review counter unavailable", logger.Error(err))
		case count >= v.threshold:
			v.logger.Warn("review backlog threshold reached, operator attention needed",
				logger.String("category", category),
				logger.Int64("pending_reviews", count),
				logger.Int64("threshold", v.threshold))
		}
	}

	return domain.ValidationReview
}

// Allowed reports whether the category matches any serviceable issue.
func Allowed(category string) bool {
	cat := strings.ToLower(strings.TrimSpace(category))
	if cat == "" {
		return false
	}
	for _, issue := range allowedIssues {
		issueLower := strings.ToLower(issue)
		if strings.Contains(cat, issueLower) || strings.Contains(issueLower, cat) {
			return true
		}
	}
	return false
}
