// Package api exposes the tenant-facing HTTP management API.
package api

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"github.com/reddalert/reddalert/ent"
	"github.com/reddalert/reddalert/pkg/dispatch"
	"github.com/reddalert/reddalert/pkg/scheduler"
	"github.com/reddalert/reddalert/pkg/services"
)

// Server represents the API server.
type Server struct {
	sqlDB *sql.DB

	tenants     *services.TenantService
	keywords    *services.KeywordService
	communities *services.CommunityService
	webhooks    *services.WebhookService
	matches     *services.MatchService

	// pipeline backs the manual poll endpoint; nil disables it.
	pipeline *scheduler.Pipeline
	// sender delivers test embeds; nil disables the webhook test endpoint.
	sender *dispatch.WebhookSender
}

// NewServer creates a new API server. sqlDB backs the health endpoint;
// pipeline and sender are optional.
func NewServer(db *ent.Client, sqlDB *sql.DB, pipeline *scheduler.Pipeline, sender *dispatch.WebhookSender) *Server {
	return &Server{
		sqlDB:       sqlDB,
		tenants:     services.NewTenantService(db),
		keywords:    services.NewKeywordService(db),
		communities: services.NewCommunityService(db),
		webhooks:    services.NewWebhookService(db),
		matches:     services.NewMatchService(db),
		pipeline:    pipeline,
		sender:      sender,
	}
}

// Router builds the HTTP routing table.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), securityHeaders())

	r.GET("/health", s.healthHandler)

	v1 := r.Group("/api/v1")
	v1.POST("/auth/register", s.registerHandler)

	authed := v1.Group("", apiKeyAuth(s.tenants))

	authed.GET("/clients/me", s.getMeHandler)
	authed.PATCH("/clients/me", s.updateMeHandler)

	authed.GET("/keywords", s.listKeywordsHandler)
	authed.POST("/keywords", s.createKeywordHandler)
	authed.GET("/keywords/:id", s.getKeywordHandler)
	authed.PATCH("/keywords/:id", s.updateKeywordHandler)
	authed.DELETE("/keywords/:id", s.deleteKeywordHandler)
	authed.POST("/keywords/:id/silence", s.silenceKeywordHandler)

	authed.GET("/subreddits", s.listCommunitiesHandler)
	authed.POST("/subreddits", s.createCommunityHandler)
	authed.GET("/subreddits/:id", s.getCommunityHandler)
	authed.PATCH("/subreddits/:id", s.updateCommunityHandler)
	authed.DELETE("/subreddits/:id", s.deleteCommunityHandler)

	authed.GET("/webhooks", s.listWebhooksHandler)
	authed.POST("/webhooks", s.createWebhookHandler)
	authed.GET("/webhooks/:id", s.getWebhookHandler)
	authed.PATCH("/webhooks/:id", s.updateWebhookHandler)
	authed.DELETE("/webhooks/:id", s.deleteWebhookHandler)
	authed.POST("/webhooks/:id/test", s.testWebhookHandler)

	authed.GET("/matches", s.listMatchesHandler)
	authed.GET("/matches/:id", s.getMatchHandler)
	authed.GET("/stats", s.statsHandler)

	authed.POST("/poll-now", s.pollNowHandler)

	return r
}
