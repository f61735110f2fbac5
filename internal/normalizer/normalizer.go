// Package normalizer annotates complaint text with canonical technical
// terms for the colloquial and mixed-language phrases it contains.
package normalizer

import (
	"strings"

	"github.com/civicgrid/triage/internal/data"
	"github.com/civicgrid/triage/internal/domain"
	"github.com/civicgrid/triage/internal/logger"
)

// Normalizer maps colloquial fragments to canonical terms. It is a pure
// function over a static table: the original text is never altered, only
// appended to.
type Normalizer struct {
	terms  []domain.CivicTerm
	logger logger.Logger
}

// New creates a Normalizer over the given term dictionary.
func New(terms []domain.CivicTerm, log logger.Logger) *Normalizer {
	return &Normalizer{terms: terms, logger: log}
}

// Normalize scans the lowercased text for colloquial phrases and appends
// one bracketed hint listing the canonical terms found. Duplicate
// canonical terms collapse to one, keeping first-seen order. Empty input
// returns empty output.
func (n *Normalizer) Normalize(text string) string {
	if text == "" {
		return ""
	}

	matchText := data.NormalizeMatchText(text)

	var hints []string
	seen := make(map[string]bool)
	for _, term := range n.terms {
		if !strings.Contains(matchText, term.Colloquial) {
			continue
		}
		if seen[term.Canonical] {
			continue
		}
		seen[term.Canonical] = true
		hints = append(hints, term.Canonical)
	}

	if len(hints) == 0 {
		return text
	}

	annotated := text + " [Detected Intent: " + strings.Join(hints, ", ") + "]"
	n.logger.Debug("text normalized",
		logger.Int("hints", len(hints)),
		logger.String("text", annotated))
	return annotated
}
