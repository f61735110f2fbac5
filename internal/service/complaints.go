// Package service exposes complaint intake and triage operations on top
// of the store and the pipeline.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/civicgrid/triage/internal/classifier"
	"github.com/civicgrid/triage/internal/domain"
	"github.com/civicgrid/triage/internal/logger"
	"github.com/civicgrid/triage/internal/pipeline"
)

// ComplaintStore is the persistence contract the service needs.
type ComplaintStore interface {
	Create(ctx context.Context, c *domain.Complaint) error
	GetByID(ctx context.Context, id string) (*domain.Complaint, error)
	List(ctx context.Context, limit int) ([]domain.Complaint, error)
	ListPending(ctx context.Context, limit int) ([]domain.Complaint, error)
	UpdateAnalysis(ctx context.Context, id string, out *domain.AnalysisOutput, description string) error
	MarkFailed(ctx context.Context, id string) error
}

// ComplaintService handles intake, synchronous analysis, and the
// background triage of stored complaints.
type ComplaintService struct {
	store        ComplaintStore
	orchestrator *pipeline.Orchestrator
	matcher      *classifier.CategoryMatcher
	logger       logger.Logger
}

// NewComplaintService creates the service.
func NewComplaintService(store ComplaintStore, orch *pipeline.Orchestrator, matcher *classifier.CategoryMatcher, log logger.Logger) *ComplaintService {
	return &ComplaintService{
		store:        store,
		orchestrator: orch,
		matcher:      matcher,
		logger:       log,
	}
}

// Submit stores a new complaint for background triage. A quick keyword
// scan gives the record a provisional category so dashboards are not
// empty while the full pipeline catches up.
func (s *ComplaintService) Submit(ctx context.Context, input domain.ComplaintInput) (*domain.Complaint, error) {
	if input.Empty() {
		return nil, pipeline.ErrInsufficientInput
	}

	category := "General"
	if s.matcher != nil {
		if quick, ok := s.matcher.Match(input.Text); ok {
			category = quick
		}
	}

	now := time.Now().UTC()
	c := &domain.Complaint{
		ID:          uuid.New().String(),
		Description: input.Text,
		GPS:         input.GPS,
		Area:        input.ZoneHint,
		VoicePath:   input.VoiceHandle,
		ImagePath:   input.PhotoHandle,
		PaperPath:   input.PaperScanHandle,
		Category:    category,
		Priority:    domain.PriorityMedium,
		Status:      domain.StatusSubmitted,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("store complaint: %w", err)
	}

	s.logger.Info("complaint submitted",
		logger.String("id", c.ID),
		logger.String("provisional_category", category))
	return c, nil
}

// Analyze runs the pipeline synchronously without touching the store.
func (s *ComplaintService) Analyze(ctx context.Context, input domain.ComplaintInput) (*domain.AnalysisOutput, error) {
	return s.orchestrator.Analyze(ctx, input)
}

// Get returns one stored complaint.
func (s *ComplaintService) Get(ctx context.Context, id string) (*domain.Complaint, error) {
	return s.store.GetByID(ctx, id)
}

// List returns recent complaints.
func (s *ComplaintService) List(ctx context.Context, limit int) ([]domain.Complaint, error) {
	return s.store.List(ctx, limit)
}

// ListPending returns submitted complaints awaiting triage.
func (s *ComplaintService) ListPending(ctx context.Context, limit int) ([]domain.Complaint, error) {
	return s.store.ListPending(ctx, limit)
}

// Process triages one stored complaint and persists the verdict. The
// description is replaced with the pipeline's annotated text plus the
// routing note so the citizen-facing record explains what happened.
func (s *ComplaintService) Process(ctx context.Context, c *domain.Complaint) error {
	out, err := s.orchestrator.Analyze(ctx, c.Input())
	if err != nil {
		if markErr := s.store.MarkFailed(ctx, c.ID); markErr != nil {
			s.logger.Error("could not mark complaint failed",
				logger.String("id", c.ID),
				logger.Error(markErr))
		}
		return fmt.Errorf("triage complaint %s: %w", c.ID, err)
	}

	description := annotateDescription(c, out)
	if updateErr := s.store.UpdateAnalysis(ctx, c.ID, out, description); updateErr != nil {
		return fmt.Errorf("persist verdict for %s: %w", c.ID, updateErr)
	}

	s.logger.Info("complaint processed",
		logger.String("id", c.ID),
		logger.String("category", out.Category),
		logger.String("department", out.Department))
	return nil
}

// annotateDescription builds the stored description from the pipeline
// text and the routing verdict.
func annotateDescription(c *domain.Complaint, out *domain.AnalysisOutput) string {
	description := out.FinalText
	if c.VoicePath != "" && c.Description == "" {
		description = "[Transcribed: " + out.FinalText + "]"
	}
	return description + " [AI Routed to: " + out.Department + " | ETA: " + out.ETA + "]"
}
