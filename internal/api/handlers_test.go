package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicgrid/triage/internal/database"
	"github.com/civicgrid/triage/internal/domain"
	"github.com/civicgrid/triage/internal/pipeline"
)

// mockLogger implements Logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(_ string, _ ...interface{}) {}
func (m *mockLogger) Info(_ string, _ ...interface{})  {}
func (m *mockLogger) Warn(_ string, _ ...interface{})  {}
func (m *mockLogger) Error(_ string, _ ...interface{}) {}

// mockService implements ComplaintService for testing
type mockService struct {
	complaints map[string]*domain.Complaint
	analysis   *domain.AnalysisOutput
	err        error
}

func newMockService() *mockService {
	return &mockService{complaints: make(map[string]*domain.Complaint)}
}

func (m *mockService) Submit(_ context.Context, input domain.ComplaintInput) (*domain.Complaint, error) {
	if m.err != nil {
		return nil, m.err
	}
	if input.Empty() {
		return nil, pipeline.ErrInsufficientInput
	}
	c := &domain.Complaint{
		ID:          "c-1",
		Description: input.Text,
		Category:    "General",
		Priority:    domain.PriorityMedium,
		Status:      domain.StatusSubmitted,
		CreatedAt:   time.Now().UTC(),
	}
	m.complaints[c.ID] = c
	return c, nil
}

func (m *mockService) Analyze(_ context.Context, input domain.ComplaintInput) (*domain.AnalysisOutput, error) {
	if m.err != nil {
		return nil, m.err
	}
	if input.Empty() {
		return nil, pipeline.ErrInsufficientInput
	}
	return m.analysis, nil
}

func (m *mockService) Get(_ context.Context, id string) (*domain.Complaint, error) {
	if m.err != nil {
		return nil, m.err
	}
	c, ok := m.complaints[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return c, nil
}

func (m *mockService) List(_ context.Context, limit int) ([]domain.Complaint, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]domain.Complaint, 0, len(m.complaints))
	for _, c := range m.complaints {
		if len(out) >= limit {
			break
		}
		out = append(out, *c)
	}
	return out, nil
}

func setupRouter(service ComplaintService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(service, nil, "1.0.0", &mockLogger{})
	router := gin.New()
	SetupRoutes(router, handler, nil)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSubmitComplaint(t *testing.T) {
	router := setupRouter(newMockService())

	w := doJSON(t, router, http.MethodPost, "/api/v1/complaints", SubmitComplaintRequest{
		Text: "Garbage pile near Anna Nagar park",
		GPS:  "13.0850,80.2101",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp ComplaintResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "c-1", resp.ID)
	assert.Equal(t, domain.StatusSubmitted, resp.Status)
}

func TestSubmitComplaintEmptyInput(t *testing.T) {
	router := setupRouter(newMockService())

	w := doJSON(t, router, http.MethodPost, "/api/v1/complaints", SubmitComplaintRequest{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitComplaintMalformedBody(t *testing.T) {
	router := setupRouter(newMockService())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/complaints", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeComplaint(t *testing.T) {
	service := newMockService()
	service.analysis = &domain.AnalysisOutput{
		Category:   "Potholes",
		Priority:   domain.PriorityCritical,
		Status:     domain.ValidationOK,
		Department: "Bridges & Roads Dept (Anna Nagar Zone)",
		SLA:        "Immediate Action",
		ETA:        "4 Hours",
	}
	router := setupRouter(service)

	w := doJSON(t, router, http.MethodPost, "/api/v1/complaints/analyze", SubmitComplaintRequest{
		Text: "Huge pothole near the school gate",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Result)
	assert.Equal(t, "Potholes", resp.Result.Category)
	assert.Equal(t, "4 Hours", resp.Result.ETA)
	assert.Empty(t, resp.Error)
}

func TestAnalyzeComplaintPipelineError(t *testing.T) {
	service := newMockService()
	service.err = errors.New("provider down")
	router := setupRouter(service)

	w := doJSON(t, router, http.MethodPost, "/api/v1/complaints/analyze", SubmitComplaintRequest{
		Text: "streetlight out",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetComplaint(t *testing.T) {
	service := newMockService()
	service.complaints["c-1"] = &domain.Complaint{
		ID:       "c-1",
		Category: "Garbage",
		Priority: domain.PriorityHigh,
		Status:   domain.StatusPending,
	}
	router := setupRouter(service)

	w := doJSON(t, router, http.MethodGet, "/api/v1/complaints/c-1", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp ComplaintResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Garbage", resp.Category)
}

func TestGetComplaintNotFound(t *testing.T) {
	router := setupRouter(newMockService())

	w := doJSON(t, router, http.MethodGet, "/api/v1/complaints/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListComplaints(t *testing.T) {
	service := newMockService()
	service.complaints["c-1"] = &domain.Complaint{ID: "c-1"}
	service.complaints["c-2"] = &domain.Complaint{ID: "c-2"}
	router := setupRouter(service)

	w := doJSON(t, router, http.MethodGet, "/api/v1/complaints?limit=10", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp ComplaintsListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
}

func TestHealthCheck(t *testing.T) {
	router := setupRouter(newMockService())

	w := doJSON(t, router, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestReadyCheckWithoutDB(t *testing.T) {
	router := setupRouter(newMockService())

	w := doJSON(t, router, http.MethodGet, "/ready", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSidecarHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(newMockService(), nil, "1.0.0", &mockLogger{})
	handler.AddSidecar("ocr", func(_ context.Context) error { return nil })
	handler.AddSidecar("transcription", func(_ context.Context) error { return errors.New("connection refused") })
	router := gin.New()
	SetupRoutes(router, handler, nil)

	w := doJSON(t, router, http.MethodGet, "/api/v1/health/sidecars", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Sidecars map[string]string `json:"sidecars"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Sidecars["ocr"])
	assert.Contains(t, resp.Sidecars["transcription"], "connection refused")
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", defaultListLimit},
		{"abc", defaultListLimit},
		{"-3", defaultListLimit},
		{"25", 25},
		{"9999", maxListLimit},
	}
	for _, tt := range tests {
		if got := parseLimit(tt.raw); got != tt.want {
			t.Errorf("parseLimit(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}
