// Package booster escalates a complaint's priority based on its
// surroundings. Boosts only ever raise the level.
package booster

import (
	"strings"

	"github.com/civicgrid/triage/internal/domain"
	"github.com/civicgrid/triage/internal/logger"
)

// sensitiveKeywords force the highest priority when mentioned, on the
// grounds that vulnerable people are involved.
var sensitiveKeywords = []string{
	"school", "college", "residential", "hospital", "kids", "public safety",
}

// landmarkBoosts is evaluated in order. Hospital pins the level to
// critical; the rest add to it.
var landmarkBoosts = []struct {
	landmarkType string
	delta        int
	pin          bool
	reason       string
}{
	{domain.LandmarkHospital, 0, true, "Near Hospital"},
	{domain.LandmarkSchool, 2, false, "Near School"},
	{domain.LandmarkCollege, 1, false, "Near College"},
	{domain.LandmarkTransportHub, 1, false, "Near Transport Hub"},
	{domain.LandmarkMarket, 1, false, "Near Market/Shopping Area"},
}

const defaultReason = "Standard Assessment"

// Input carries the location and urgency context feeding the boost.
type Input struct {
	Priority     string
	LandmarkType string
	Text         string
	UrgencyFound bool
}

// Result is the escalated priority with the reasons that produced it.
type Result struct {
	Priority string
	Reason   string
}

// Booster applies landmark, urgency, and sensitive-mention escalation.
type Booster struct {
	logger logger.Logger
}

// New creates a booster.
func New(log logger.Logger) *Booster {
	return &Booster{logger: log}
}

// Boost escalates the priority. The result is never lower than the
// input priority.
func (b *Booster) Boost(in Input) Result {
	level := domain.PriorityLevel(in.Priority)
	reasons := make([]string, 0, 4)

	for _, lb := range landmarkBoosts {
		if in.LandmarkType != lb.landmarkType {
			continue
		}
		if lb.pin {
			level = domain.LevelCritical
		} else {
			level = capLevel(level + lb.delta)
		}
		reasons = append(reasons, lb.reason)
		break
	}

	if in.UrgencyFound {
		level = domain.LevelCritical
		reasons = append(reasons, "Emergency Keywords Detected")
	}

	if mentioned := sensitiveMentions(in.Text); len(mentioned) > 0 {
		level = domain.LevelCritical
		reasons = append(reasons, "Sensitive Zone Mentioned ("+strings.Join(mentioned, ", ")+")")
	}

	reason := defaultReason
	if len(reasons) > 0 {
		reason = strings.Join(reasons, ", ")
	}

	result := Result{Priority: domain.PriorityFromLevel(level), Reason: reason}
	b.logger.Debug("priority boost applied",
		logger.String("from", in.Priority),
		logger.String("to", result.Priority),
		logger.String("reason", reason))
	return result
}

// sensitiveMentions returns the sensitive keywords present in the text,
// in table order.
func sensitiveMentions(text string) []string {
	textLower := strings.ToLower(text)
	var found []string
	for _, k := range sensitiveKeywords {
		if strings.Contains(textLower, k) {
			found = append(found, k)
		}
	}
	return found
}

func capLevel(level int) int {
	if level > domain.LevelCritical {
		return domain.LevelCritical
	}
	return level
}
