package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reddalert/reddalert/pkg/services"
)

type createCommunityRequest struct {
	Name              string `json:"name" binding:"required"`
	IncludeMediaPosts *bool  `json:"include_media_posts"`
	DedupeCrossposts  *bool  `json:"dedupe_crossposts"`
	FilterBots        *bool  `json:"filter_bots"`
}

type updateCommunityRequest struct {
	Status            *string `json:"status"`
	IncludeMediaPosts *bool   `json:"include_media_posts"`
	DedupeCrossposts  *bool   `json:"dedupe_crossposts"`
	FilterBots        *bool   `json:"filter_bots"`
}

// listCommunitiesHandler handles GET /api/v1/subreddits.
func (s *Server) listCommunitiesHandler(c *gin.Context) {
	communities, err := s.communities.List(c.Request.Context(), currentTenant(c).ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, communities)
}

// createCommunityHandler handles POST /api/v1/subreddits.
func (s *Server) createCommunityHandler(c *gin.Context) {
	var req createCommunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name, err := normalizeCommunityName(req.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	community, err := s.communities.Create(c.Request.Context(), currentTenant(c).ID, services.CreateCommunityInput{
		Name:              name,
		IncludeMediaPosts: req.IncludeMediaPosts,
		DedupeCrossposts:  req.DedupeCrossposts,
		FilterBots:        req.FilterBots,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, community)
}

// getCommunityHandler handles GET /api/v1/subreddits/:id.
func (s *Server) getCommunityHandler(c *gin.Context) {
	community, err := s.communities.Get(c.Request.Context(), currentTenant(c).ID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, community)
}

// updateCommunityHandler handles PATCH /api/v1/subreddits/:id.
func (s *Server) updateCommunityHandler(c *gin.Context) {
	var req updateCommunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	community, err := s.communities.Update(c.Request.Context(), currentTenant(c).ID, c.Param("id"), services.UpdateCommunityInput{
		Status:            req.Status,
		IncludeMediaPosts: req.IncludeMediaPosts,
		DedupeCrossposts:  req.DedupeCrossposts,
		FilterBots:        req.FilterBots,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, community)
}

// deleteCommunityHandler handles DELETE /api/v1/subreddits/:id.
func (s *Server) deleteCommunityHandler(c *gin.Context) {
	if err := s.communities.Delete(c.Request.Context(), currentTenant(c).ID, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
