package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reddalert/reddalert/pkg/services"
)

type createKeywordRequest struct {
	Phrases         []string `json:"phrases" binding:"required"`
	Exclusions      []string `json:"exclusions"`
	ProximityWindow int      `json:"proximity_window"`
	RequireOrder    bool     `json:"require_order"`
	UseStemming     bool     `json:"use_stemming"`
	ExclusionScope  string   `json:"exclusion_scope"`
}

type updateKeywordRequest struct {
	Phrases         []string `json:"phrases"`
	Exclusions      []string `json:"exclusions"`
	ProximityWindow *int     `json:"proximity_window"`
	RequireOrder    *bool    `json:"require_order"`
	UseStemming     *bool    `json:"use_stemming"`
	ExclusionScope  *string  `json:"exclusion_scope"`
}

type silenceKeywordRequest struct {
	// Minutes to mute the rule for; zero unsilences immediately.
	Minutes int `json:"minutes"`
}

// listKeywordsHandler handles GET /api/v1/keywords.
func (s *Server) listKeywordsHandler(c *gin.Context) {
	rules, err := s.keywords.List(c.Request.Context(), currentTenant(c).ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rules)
}

// createKeywordHandler handles POST /api/v1/keywords.
func (s *Server) createKeywordHandler(c *gin.Context) {
	var req createKeywordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	phrases, err := sanitizePhrases(req.Phrases)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	exclusions, err := sanitizeExclusions(req.Exclusions)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	rule, err := s.keywords.Create(c.Request.Context(), currentTenant(c).ID, services.CreateKeywordRuleInput{
		Phrases:         phrases,
		Exclusions:      exclusions,
		ProximityWindow: req.ProximityWindow,
		RequireOrder:    req.RequireOrder,
		UseStemming:     req.UseStemming,
		ExclusionScope:  req.ExclusionScope,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rule)
}

// getKeywordHandler handles GET /api/v1/keywords/:id.
func (s *Server) getKeywordHandler(c *gin.Context) {
	rule, err := s.keywords.Get(c.Request.Context(), currentTenant(c).ID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rule)
}

// updateKeywordHandler handles PATCH /api/v1/keywords/:id.
func (s *Server) updateKeywordHandler(c *gin.Context) {
	var req updateKeywordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := services.UpdateKeywordRuleInput{
		ProximityWindow: req.ProximityWindow,
		RequireOrder:    req.RequireOrder,
		UseStemming:     req.UseStemming,
		ExclusionScope:  req.ExclusionScope,
	}
	if req.Phrases != nil {
		phrases, err := sanitizePhrases(req.Phrases)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		input.Phrases = phrases
	}
	if req.Exclusions != nil {
		exclusions, err := sanitizeExclusions(req.Exclusions)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		input.Exclusions = exclusions
	}

	rule, err := s.keywords.Update(c.Request.Context(), currentTenant(c).ID, c.Param("id"), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rule)
}

// deleteKeywordHandler handles DELETE /api/v1/keywords/:id. Rules are
// deactivated, not removed, so historical matches keep their context.
func (s *Server) deleteKeywordHandler(c *gin.Context) {
	if err := s.keywords.SoftDelete(c.Request.Context(), currentTenant(c).ID, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// silenceKeywordHandler handles POST /api/v1/keywords/:id/silence.
func (s *Server) silenceKeywordHandler(c *gin.Context) {
	var req silenceKeywordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Minutes < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "minutes must not be negative"})
		return
	}

	var until time.Time
	if req.Minutes > 0 {
		until = time.Now().UTC().Add(time.Duration(req.Minutes) * time.Minute)
	}

	rule, err := s.keywords.Silence(c.Request.Context(), currentTenant(c).ID, c.Param("id"), until)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rule)
}
