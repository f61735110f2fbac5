package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/civicgrid/triage/internal/booster"
	"github.com/civicgrid/triage/internal/classifier"
	"github.com/civicgrid/triage/internal/data"
	"github.com/civicgrid/triage/internal/domain"
	"github.com/civicgrid/triage/internal/location"
	"github.com/civicgrid/triage/internal/logger"
	"github.com/civicgrid/triage/internal/normalizer"
	"github.com/civicgrid/triage/internal/pipeline"
	"github.com/civicgrid/triage/internal/policy"
	"github.com/civicgrid/triage/internal/reviewstore"
	"github.com/civicgrid/triage/internal/router"
	"github.com/civicgrid/triage/internal/service"
)

type fakeStore struct {
	created  []*domain.Complaint
	updated  map[string]*domain.AnalysisOutput
	descs    map[string]string
	failed   []string
	failCrea error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		updated: make(map[string]*domain.AnalysisOutput),
		descs:   make(map[string]string),
	}
}

func (f *fakeStore) Create(_ context.Context, c *domain.Complaint) error {
	if f.failCrea != nil {
		return f.failCrea
	}
	f.created = append(f.created, c)
	return nil
}

func (f *fakeStore) GetByID(_ context.Context, id string) (*domain.Complaint, error) {
	for _, c := range f.created {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeStore) List(_ context.Context, _ int) ([]domain.Complaint, error) {
	out := make([]domain.Complaint, 0, len(f.created))
	for _, c := range f.created {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeStore) ListPending(_ context.Context, _ int) ([]domain.Complaint, error) {
	var out []domain.Complaint
	for _, c := range f.created {
		if c.Status == domain.StatusSubmitted {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateAnalysis(_ context.Context, id string, out *domain.AnalysisOutput, description string) error {
	f.updated[id] = out
	f.descs[id] = description
	return nil
}

func (f *fakeStore) MarkFailed(_ context.Context, id string) error {
	f.failed = append(f.failed, id)
	return nil
}

func newTestService(t *testing.T, store service.ComplaintStore) *service.ComplaintService {
	t.Helper()
	log := logger.NewNop()
	matcher := classifier.NewCategoryMatcher(data.CategoryKeywordTable())
	orch := pipeline.New(pipeline.Options{
		Normalizer: normalizer.New(data.CivicTerms(), log),
		Resolver:   location.NewResolver(data.Landmarks(), data.Zones(), nil, log),
		Classifier: classifier.New(matcher, nil, nil, log),
		Booster:    booster.New(log),
		Validator:  policy.NewValidator(reviewstore.NewMemoryStore(), 3, log),
		Router:     router.New(log),
		Logger:     log,
	})
	return service.NewComplaintService(store, orch, matcher, log)
}

func TestSubmitStoresProvisionalRecord(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(t, store)

	got, err := svc.Submit(context.Background(), domain.ComplaintInput{
		Text: "huge pothole near the bus stop",
		GPS:  "13.0850,80.2100",
	})
	if err != nil {
		t.Fatalf("Submit returned unexpected error: %v", err)
	}

	if got.ID == "" {
		t.Error("expected generated id")
	}
	if got.Status != domain.StatusSubmitted {
		t.Errorf("status = %q, want SUBMITTED", got.Status)
	}
	if got.Category != "Potholes" {
		t.Errorf("provisional category = %q, want Potholes", got.Category)
	}
	if got.Priority != domain.PriorityMedium {
		t.Errorf("priority = %q, want MEDIUM", got.Priority)
	}
	if len(store.created) != 1 {
		t.Errorf("created %d records, want 1", len(store.created))
	}
}

func TestSubmitEmptyInputRejected(t *testing.T) {
	svc := newTestService(t, newFakeStore())
	_, err := svc.Submit(context.Background(), domain.ComplaintInput{})
	if !errors.Is(err, pipeline.ErrInsufficientInput) {
		t.Fatalf("err = %v, want ErrInsufficientInput", err)
	}
}

func TestSubmitUnmatchedTextDefaultsGeneral(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(t, store)

	got, err := svc.Submit(context.Background(), domain.ComplaintInput{
		Text: "the ward office opens late",
	})
	if err != nil {
		t.Fatalf("Submit returned unexpected error: %v", err)
	}
	if got.Category != "General" {
		t.Errorf("provisional category = %q, want General", got.Category)
	}
}

func TestProcessPersistsVerdictAndAnnotation(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(t, store)

	submitted, err := svc.Submit(context.Background(), domain.ComplaintInput{
		Text: "There is a huge pothole here",
		GPS:  "13.0850,80.2100",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if err := svc.Process(context.Background(), submitted); err != nil {
		t.Fatalf("Process returned unexpected error: %v", err)
	}

	out, ok := store.updated[submitted.ID]
	if !ok {
		t.Fatal("verdict not persisted")
	}
	if out.Category != "Potholes" {
		t.Errorf("category = %q, want Potholes", out.Category)
	}
	if out.Priority != domain.PriorityCritical {
		t.Errorf("priority = %q, want CRITICAL", out.Priority)
	}

	desc := store.descs[submitted.ID]
	if !strings.Contains(desc, "[AI Routed to: Bridges & Roads Dept (Anna Nagar Zone) | ETA: 4 Hours]") {
		t.Errorf("description %q missing routing annotation", desc)
	}
}

func TestProcessEmptyComplaintMarkedFailed(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(t, store)

	bad := &domain.Complaint{ID: "empty-1", Status: domain.StatusSubmitted}
	if err := svc.Process(context.Background(), bad); err == nil {
		t.Fatal("expected error for empty complaint")
	}
	if len(store.failed) != 1 || store.failed[0] != "empty-1" {
		t.Errorf("failed ids = %v, want [empty-1]", store.failed)
	}
}
