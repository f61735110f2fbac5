// Package router maps validated categories to the owning department
// and attaches the SLA implied by the final priority.
package router

import (
	"strings"

	"github.com/civicgrid/triage/internal/domain"
	"github.com/civicgrid/triage/internal/logger"
)

const defaultDepartment = "General Administration"

// departmentRoutes is evaluated in order, substring case-insensitive on
// the category. More specific entries come before their prefixes.
var departmentRoutes = []struct {
	category   string
	department string
}{
	{"Broken Garbage Bin", "Solid Waste Management Dept"},
	{"Garbage", "Solid Waste Management Dept"},
	{"Potholes", "Bridges & Roads Dept"},
	{"Street Light", "Electrical Dept"},
	{"Public Toilet", "Sanitation & Health Dept"},
	{"Mosquito Menace", "Health Dept (Vector Control)"},
	{"Water Stagnation", "Storm Water Drain Dept"},
	{"Storm Water Drain", "Storm Water Drain Dept"},
	{"Stray Dogs", "Veterinary Public Health Dept"},
	{"Fallen Tree", "Parks and Gardens Dept"},
	{"Others", defaultDepartment},
}

// slaTable maps the final priority to its service level and ETA.
var slaTable = map[string]domain.Dispatch{
	domain.PriorityCritical: {SLA: "Immediate Action", ETA: "4 Hours"},
	domain.PriorityHigh:     {SLA: "High Priority", ETA: "24 Hours"},
	domain.PriorityMedium:   {SLA: "Standard", ETA: "48 Hours"},
}

var defaultSLA = domain.Dispatch{SLA: "Low Priority", ETA: "72 Hours"}

// Router assigns departments and SLAs.
type Router struct {
	logger logger.Logger
}

// New creates a router.
func New(log logger.Logger) *Router {
	return &Router{logger: log}
}

// Route returns the dispatch for a category, priority, and resolved
// zone. The department is never empty and never the literal "none";
// unknown categories land at General Administration. A non-empty zone
// is appended to the department in parentheses.
func (r *Router) Route(category, priority, zone string) domain.Dispatch {
	dispatch := slaFor(priority)
	dispatch.Department = departmentFor(category)

	if zone != "" {
		dispatch.Department += " (" + zone + ")"
	}

	r.logger.Debug("complaint routed",
		logger.String("category", category),
		logger.String("department", dispatch.Department),
		logger.String("eta", dispatch.ETA))
	return dispatch
}

func departmentFor(category string) string {
	cat := strings.ToLower(strings.TrimSpace(category))
	if cat == "" || cat == "none" {
		return defaultDepartment
	}
	for _, route := range departmentRoutes {
		if strings.Contains(cat, strings.ToLower(route.category)) {
			return route.department
		}
	}
	return defaultDepartment
}

func slaFor(priority string) domain.Dispatch {
	if d, ok := slaTable[strings.ToUpper(strings.TrimSpace(priority))]; ok {
		return d
	}
	return defaultSLA
}
