// Package api exposes the complaint intake and triage HTTP endpoints.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/civicgrid/triage/internal/database"
	"github.com/civicgrid/triage/internal/domain"
	"github.com/civicgrid/triage/internal/pipeline"
)

// ComplaintService is the service contract the handlers need.
type ComplaintService interface {
	Submit(ctx context.Context, input domain.ComplaintInput) (*domain.Complaint, error)
	Analyze(ctx context.Context, input domain.ComplaintInput) (*domain.AnalysisOutput, error)
	Get(ctx context.Context, id string) (*domain.Complaint, error)
	List(ctx context.Context, limit int) ([]domain.Complaint, error)
}

// HealthChecker reports whether a backing dependency is reachable.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// HealthFunc probes one AI sidecar dependency.
type HealthFunc func(ctx context.Context) error

// Logger defines the logging interface
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// Handler handles HTTP requests for the triage API
type Handler struct {
	service  ComplaintService
	db       HealthChecker
	sidecars map[string]HealthFunc
	version  string
	logger   Logger
}

// NewHandler creates a new API handler. db may be nil when no readiness
// probe is wanted.
func NewHandler(service ComplaintService, db HealthChecker, version string, logger Logger) *Handler {
	return &Handler{
		service:  service,
		db:       db,
		sidecars: make(map[string]HealthFunc),
		version:  version,
		logger:   logger,
	}
}

// AddSidecar registers a named AI sidecar health probe.
func (h *Handler) AddSidecar(name string, check HealthFunc) {
	h.sidecars[name] = check
}

// SubmitComplaint handles POST /api/v1/complaints
func (h *Handler) SubmitComplaint(c *gin.Context) {
	var req SubmitComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid complaint submission", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	complaint, err := h.service.Submit(c.Request.Context(), req.Input())
	if err != nil {
		if errors.Is(err, pipeline.ErrInsufficientInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "complaint needs text or a media attachment"})
			return
		}
		h.logger.Error("Failed to store complaint", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store complaint"})
		return
	}

	h.logger.Info("Complaint submitted",
		"complaint_id", complaint.ID,
		"provisional_category", complaint.Category,
	)

	c.JSON(http.StatusCreated, toComplaintResponse(complaint))
}

// AnalyzeComplaint handles POST /api/v1/complaints/analyze. It runs the
// full pipeline synchronously without persisting anything, so callers can
// preview the verdict for a submission.
func (h *Handler) AnalyzeComplaint(c *gin.Context) {
	var req SubmitComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid analyze request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Analyze(c.Request.Context(), req.Input())
	if err != nil {
		if errors.Is(err, pipeline.ErrInsufficientInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "complaint needs text or a media attachment"})
			return
		}
		h.logger.Error("Analysis failed", "error", err)
		c.JSON(http.StatusInternalServerError, AnalyzeResponse{Error: err.Error()})
		return
	}

	h.logger.Info("Complaint analyzed",
		"category", result.Category,
		"priority", result.Priority,
		"department", result.Department,
	)

	c.JSON(http.StatusOK, AnalyzeResponse{Result: result})
}

// GetComplaint handles GET /api/v1/complaints/:id
func (h *Handler) GetComplaint(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "complaint id is required"})
		return
	}

	complaint, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
			return
		}
		h.logger.Error("Failed to get complaint", "complaint_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get complaint"})
		return
	}

	c.JSON(http.StatusOK, toComplaintResponse(complaint))
}

// ListComplaints handles GET /api/v1/complaints
func (h *Handler) ListComplaints(c *gin.Context) {
	limit := parseLimit(c.Query("limit"))

	h.logger.Debug("Listing complaints", "limit", limit)

	complaints, err := h.service.List(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to list complaints", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list complaints"})
		return
	}

	response := make([]ComplaintResponse, len(complaints))
	for i := range complaints {
		response[i] = toComplaintResponse(&complaints[i])
	}

	c.JSON(http.StatusOK, ComplaintsListResponse{
		Complaints: response,
		Total:      len(response),
	})
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "triage",
		"version": h.version,
	})
}

// ReadyCheck handles GET /ready
func (h *Handler) ReadyCheck(c *gin.Context) {
	checks := gin.H{}
	ready := true

	if h.db != nil {
		if err := h.db.PingContext(c.Request.Context()); err != nil {
			checks["database"] = err.Error()
			ready = false
		} else {
			checks["database"] = "ok"
		}
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "checks": checks})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready", "checks": checks})
}

// SidecarHealth handles GET /api/v1/health/sidecars. Sidecars are
// optional; an unreachable one degrades the pipeline rather than the
// service, so this never affects readiness.
func (h *Handler) SidecarHealth(c *gin.Context) {
	checks := gin.H{}
	for name, check := range h.sidecars {
		if err := check(c.Request.Context()); err != nil {
			checks[name] = err.Error()
			continue
		}
		checks[name] = "ok"
	}
	c.JSON(http.StatusOK, gin.H{"sidecars": checks})
}
