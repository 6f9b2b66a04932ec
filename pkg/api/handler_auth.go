package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Email string `json:"email"`
}

type registerResponse struct {
	ClientID string `json:"client_id"`
	// APIKey is returned exactly once; only its hash is stored.
	APIKey string `json:"api_key"`
}

// registerHandler handles POST /api/v1/auth/register.
func (s *Server) registerHandler(c *gin.Context) {
	// An empty body registers a tenant without a contact address.
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tenant, apiKey, err := s.tenants.Register(c.Request.Context(), req.Email)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, registerResponse{
		ClientID: tenant.ID,
		APIKey:   apiKey,
	})
}

type updateMeRequest struct {
	// Email nil leaves the address untouched; empty string clears it.
	Email *string `json:"email"`
}

// getMeHandler handles GET /api/v1/clients/me.
func (s *Server) getMeHandler(c *gin.Context) {
	c.JSON(http.StatusOK, currentTenant(c))
}

// updateMeHandler handles PATCH /api/v1/clients/me.
func (s *Server) updateMeHandler(c *gin.Context) {
	var req updateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Email == nil {
		c.JSON(http.StatusOK, currentTenant(c))
		return
	}

	tenant, err := s.tenants.UpdateEmail(c.Request.Context(), currentTenant(c).ID, *req.Email)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tenant)
}
