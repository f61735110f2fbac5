package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes. metrics may be nil when no
// metrics endpoint is exposed.
func SetupRoutes(router *gin.Engine, handler *Handler, metrics http.Handler) {
	// Health and readiness checks
	router.GET("/health", handler.HealthCheck)
	router.GET("/ready", handler.ReadyCheck)

	if metrics != nil {
		router.GET("/metrics", gin.WrapH(metrics))
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health/sidecars", handler.SidecarHealth)

		complaints := v1.Group("/complaints")
		{
			complaints.POST("", handler.SubmitComplaint)          // POST /api/v1/complaints
			complaints.POST("/analyze", handler.AnalyzeComplaint) // POST /api/v1/complaints/analyze
			complaints.GET("", handler.ListComplaints)            // GET /api/v1/complaints
			complaints.GET("/:id", handler.GetComplaint)          // GET /api/v1/complaints/:id
		}
	}
}
