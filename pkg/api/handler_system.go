package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reddalert/reddalert/pkg/database"
	"github.com/reddalert/reddalert/pkg/version"
)

// healthHandler handles GET /health.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.sqlDB)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"version":  version.Full(),
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"version":  version.Full(),
		"database": dbHealth,
	})
}

// pollNowHandler handles POST /api/v1/poll-now: one synchronous
// pipeline run outside the schedule.
func (s *Server) pollNowHandler(c *gin.Context) {
	if s.pipeline == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "polling is not available"})
		return
	}

	summary, err := s.pipeline.Run(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
