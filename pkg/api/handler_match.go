package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reddalert/reddalert/pkg/services"
)

// listMatchesHandler handles GET /api/v1/matches.
func (s *Server) listMatchesHandler(c *gin.Context) {
	filter := services.MatchFilter{
		Community:   c.Query("subreddit"),
		RuleID:      c.Query("keyword_id"),
		AlertStatus: c.Query("alert_status"),
	}

	if v := c.Query("start_date"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date: must be RFC3339"})
			return
		}
		filter.Since = t
	}
	if v := c.Query("end_date"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date: must be RFC3339"})
			return
		}
		filter.Until = t
	}

	page := intQuery(c, "page", 1)
	perPage := intQuery(c, "per_page", 20)

	result, err := s.matches.List(c.Request.Context(), currentTenant(c).ID, filter, page, perPage)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// getMatchHandler handles GET /api/v1/matches/:id.
func (s *Server) getMatchHandler(c *gin.Context) {
	match, err := s.matches.Get(c.Request.Context(), currentTenant(c).ID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

// statsHandler handles GET /api/v1/stats.
func (s *Server) statsHandler(c *gin.Context) {
	stats, err := s.matches.Stats(c.Request.Context(), currentTenant(c).ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func intQuery(c *gin.Context, key string, fallback int) int {
	v := c.Query(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}
