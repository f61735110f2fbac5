package api

import (
	"strconv"
	"time"

	"github.com/civicgrid/triage/internal/domain"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// SubmitComplaintRequest is the citizen-facing submission payload.
type SubmitComplaintRequest struct {
	Text      string `json:"text"`
	VoicePath string `json:"voice_path"`
	ImagePath string `json:"image_path"`
	PaperPath string `json:"paper_path"`
	GPS       string `json:"gps"`
	ZoneHint  string `json:"zone_hint"`
}

// Input converts the request into a pipeline input.
func (r SubmitComplaintRequest) Input() domain.ComplaintInput {
	return domain.ComplaintInput{
		Text:            r.Text,
		VoiceHandle:     r.VoicePath,
		PhotoHandle:     r.ImagePath,
		PaperScanHandle: r.PaperPath,
		GPS:             r.GPS,
		ZoneHint:        r.ZoneHint,
	}
}

// AnalyzeResponse wraps a synchronous pipeline verdict.
type AnalyzeResponse struct {
	Result *domain.AnalysisOutput `json:"result,omitempty"`
	Error  string                 `json:"error,omitempty"`
}

// ComplaintResponse is the stored complaint as returned to clients.
type ComplaintResponse struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	GPS         string     `json:"gps,omitempty"`
	Area        string     `json:"area,omitempty"`
	Category    string     `json:"category"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	Department  string     `json:"department,omitempty"`
	SLA         string     `json:"sla,omitempty"`
	ETA         string     `json:"eta,omitempty"`
	Insight     string     `json:"insight,omitempty"`
	Zone        string     `json:"zone,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	AnalyzedAt  *time.Time `json:"analyzed_at,omitempty"`
}

// ComplaintsListResponse is a list of complaints with metadata.
type ComplaintsListResponse struct {
	Complaints []ComplaintResponse `json:"complaints"`
	Total      int                 `json:"total"`
}

// toComplaintResponse converts a domain complaint to an API response.
func toComplaintResponse(c *domain.Complaint) ComplaintResponse {
	return ComplaintResponse{
		ID:          c.ID,
		Description: c.Description,
		GPS:         c.GPS,
		Area:        c.Area,
		Category:    c.Category,
		Priority:    c.Priority,
		Status:      c.Status,
		Department:  c.Department,
		SLA:         c.SLA,
		ETA:         c.ETA,
		Insight:     c.Insight,
		Zone:        c.Zone,
		CreatedAt:   c.CreatedAt,
		AnalyzedAt:  c.AnalyzedAt,
	}
}

// parseLimit parses the list limit query parameter, clamped to maxListLimit.
func parseLimit(raw string) int {
	if raw == "" {
		return defaultListLimit
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return defaultListLimit
	}
	if n > maxListLimit {
		return maxListLimit
	}
	return n
}
