// Package domain contains the core types of the complaint triage pipeline.
package domain

import "time"

// Complaint lifecycle statuses.
const (
	// StatusSubmitted means the complaint record exists but analysis has
	// not run yet.
	StatusSubmitted = "SUBMITTED"
	// StatusPending means analysis completed and the complaint awaits
	// department action.
	StatusPending = "PENDING"
	// StatusFailed means the analysis pipeline could not process the
	// complaint.
	StatusFailed = "FAILED"
)

// Validation statuses produced by the policy check.
const (
	ValidationOK     = "Validated"
	ValidationReview = "Needs_Review"
)

// ComplaintInput is the raw citizen submission handed to the pipeline.
// All fields are optional; handles are opaque references resolved by the
// transcription and OCR collaborators. Inputs are read-only to every stage.
type ComplaintInput struct {
	Text            string `json:"text,omitempty"`
	VoiceHandle     string `json:"voice_handle,omitempty"`
	PhotoHandle     string `json:"photo_handle,omitempty"`
	PaperScanHandle string `json:"paper_scan_handle,omitempty"`
	// GPS is a "lat,lon" pair, possibly with surrounding whitespace.
	GPS string `json:"gps,omitempty"`
	// ZoneHint is a caller-supplied zone used when detection finds none.
	ZoneHint string `json:"zone_hint,omitempty"`
}

// Empty reports whether the input carries neither text nor any media handle.
func (in ComplaintInput) Empty() bool {
	return in.Text == "" && in.VoiceHandle == "" && in.PhotoHandle == "" && in.PaperScanHandle == ""
}

// Complaint is the persisted complaint record.
type Complaint struct {
	ID          string     `db:"id"           json:"id"`
	Description string     `db:"description"  json:"description"`
	GPS         string     `db:"gps"          json:"gps,omitempty"`
	Area        string     `db:"area"         json:"area,omitempty"`
	VoicePath   string     `db:"voice_path"   json:"voice_path,omitempty"`
	ImagePath   string     `db:"image_path"   json:"image_path,omitempty"`
	PaperPath   string     `db:"paper_path"   json:"paper_path,omitempty"`
	Category    string     `db:"category"     json:"category"`
	Priority    string     `db:"priority"     json:"priority"`
	Status      string     `db:"status"       json:"status"`
	Department  string     `db:"department"   json:"department,omitempty"`
	SLA         string     `db:"sla"          json:"sla,omitempty"`
	ETA         string     `db:"eta"          json:"eta,omitempty"`
	Insight     string     `db:"insight"      json:"insight,omitempty"`
	Zone        string     `db:"zone"         json:"zone,omitempty"`
	CreatedAt   time.Time  `db:"created_at"   json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"   json:"updated_at"`
	AnalyzedAt  *time.Time `db:"analyzed_at"  json:"analyzed_at,omitempty"`
}

// Input builds the pipeline input for a stored complaint.
func (c *Complaint) Input() ComplaintInput {
	return ComplaintInput{
		Text:            c.Description,
		VoiceHandle:     c.VoicePath,
		PhotoHandle:     c.ImagePath,
		PaperScanHandle: c.PaperPath,
		GPS:             c.GPS,
		ZoneHint:        c.Area,
	}
}
