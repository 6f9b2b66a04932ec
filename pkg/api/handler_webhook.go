package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reddalert/reddalert/pkg/dispatch"
	"github.com/reddalert/reddalert/pkg/services"
)

type createWebhookRequest struct {
	URL       string `json:"url" binding:"required"`
	GuildName string `json:"guild_name"`
	IsPrimary *bool  `json:"is_primary"`
}

type updateWebhookRequest struct {
	URL       *string `json:"url"`
	GuildName *string `json:"guild_name"`
	IsPrimary *bool   `json:"is_primary"`
	IsActive  *bool   `json:"is_active"`
}

// listWebhooksHandler handles GET /api/v1/webhooks.
func (s *Server) listWebhooksHandler(c *gin.Context) {
	endpoints, err := s.webhooks.List(c.Request.Context(), currentTenant(c).ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, endpoints)
}

// createWebhookHandler handles POST /api/v1/webhooks.
func (s *Server) createWebhookHandler(c *gin.Context) {
	var req createWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateWebhookURL(req.URL); err != nil {
		respondServiceError(c, err)
		return
	}

	endpoint, err := s.webhooks.Create(c.Request.Context(), currentTenant(c).ID, services.CreateWebhookInput{
		URL:       req.URL,
		GuildName: req.GuildName,
		IsPrimary: req.IsPrimary,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, endpoint)
}

// getWebhookHandler handles GET /api/v1/webhooks/:id.
func (s *Server) getWebhookHandler(c *gin.Context) {
	endpoint, err := s.webhooks.Get(c.Request.Context(), currentTenant(c).ID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, endpoint)
}

// updateWebhookHandler handles PATCH /api/v1/webhooks/:id.
func (s *Server) updateWebhookHandler(c *gin.Context) {
	var req updateWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.URL != nil {
		if err := validateWebhookURL(*req.URL); err != nil {
			respondServiceError(c, err)
			return
		}
	}

	endpoint, err := s.webhooks.Update(c.Request.Context(), currentTenant(c).ID, c.Param("id"), services.UpdateWebhookInput{
		URL:       req.URL,
		GuildName: req.GuildName,
		IsPrimary: req.IsPrimary,
		IsActive:  req.IsActive,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, endpoint)
}

// deleteWebhookHandler handles DELETE /api/v1/webhooks/:id.
func (s *Server) deleteWebhookHandler(c *gin.Context) {
	if err := s.webhooks.Delete(c.Request.Context(), currentTenant(c).ID, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// testWebhookHandler handles POST /api/v1/webhooks/:id/test. Delivers a
// sample embed and stamps the endpoint on success.
func (s *Server) testWebhookHandler(c *gin.Context) {
	if s.sender == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "webhook testing is not available"})
		return
	}

	endpoint, err := s.webhooks.Get(c.Request.Context(), currentTenant(c).ID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if !s.sender.Send(c.Request.Context(), endpoint.URL, dispatch.TestEmbed()) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "webhook delivery failed"})
		return
	}

	endpoint, err = s.webhooks.MarkTested(c.Request.Context(), currentTenant(c).ID, endpoint.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, endpoint)
}
