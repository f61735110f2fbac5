package domain

import "strings"

// Priority labels, ordered from least to most urgent.
const (
	PriorityLow      = "LOW"
	PriorityMedium   = "MEDIUM"
	PriorityHigh     = "HIGH"
	PriorityCritical = "CRITICAL"
)

// Priority ordinal levels.
const (
	LevelLow      = 1
	LevelMedium   = 2
	LevelHigh     = 3
	LevelCritical = 4
)

// PriorityLevel maps a priority label to its ordinal level.
// Unrecognized labels default to MEDIUM.
func PriorityLevel(priority string) int {
	switch strings.ToUpper(strings.TrimSpace(priority)) {
	case PriorityLow:
		return LevelLow
	case PriorityMedium:
		return LevelMedium
	case PriorityHigh:
		return LevelHigh
	case PriorityCritical:
		return LevelCritical
	default:
		return LevelMedium
	}
}

// PriorityFromLevel maps an ordinal level back to its label.
func PriorityFromLevel(level int) string {
	switch level {
	case LevelLow:
		return PriorityLow
	case LevelHigh:
		return PriorityHigh
	case LevelCritical:
		return PriorityCritical
	default:
		return PriorityMedium
	}
}
