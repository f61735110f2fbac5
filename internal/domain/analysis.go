package domain

// Default landmark type when no gazetteer entry matches.
const LandmarkResidential = "Residential"

// Landmark types carried by gazetteer entries.
const (
	LandmarkSchool       = "School"
	LandmarkHospital     = "Hospital"
	LandmarkCollege      = "College"
	LandmarkTransportHub = "Transport Hub"
	LandmarkMarket       = "Market"
)

// PipelineState is the single mutable record threaded through the
// pipeline stages. Each stage writes only the fields it owns; everything
// else is read-only to it. The record is discarded once the terminal
// AnalysisOutput has been built.
type PipelineState struct {
	Input ComplaintInput

	// Branch A: transcription and normalization.
	RawText     string
	EnglishText string

	// Branch B: photo OCR.
	OCRContext string

	// Join: merged text both downstream stages read.
	FinalText string

	// Stage C: location resolution.
	LandmarkType string
	LandmarkName string
	UrgencyFound bool
	DetectedZone string

	// Stage D: similarity lookup and classification.
	ReferenceCase  string
	Category       string
	CategoryLocked bool
	Confidence     float64
	BasePriority   string

	// Terminal stage.
	FinalPriority string
	Insight       string
	Status        string
	Dispatch      Dispatch
}

// Dispatch is the routing decision for a classified complaint.
type Dispatch struct {
	Department string `json:"department"`
	SLA        string `json:"sla"`
	ETA        string `json:"eta"`
}

// AnalysisOutput is the terminal, externally visible result of one
// pipeline run. Constructed once per request, never mutated.
type AnalysisOutput struct {
	Category      string  `json:"category"`
	Priority      string  `json:"priority"`
	Status        string  `json:"status"`
	ReferenceCase string  `json:"reference_case,omitempty"`
	Department    string  `json:"department"`
	SLA           string  `json:"sla"`
	ETA           string  `json:"eta"`
	Insight       string  `json:"insight"`
	Zone          string  `json:"zone,omitempty"`
	FinalText     string  `json:"final_text"`
	Confidence    float64 `json:"confidence"`
	Locked        bool    `json:"locked"`
}
