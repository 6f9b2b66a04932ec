package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reddalert/reddalert/ent"
	"github.com/reddalert/reddalert/pkg/services"
)

const tenantContextKey = "tenant"

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}

// apiKeyAuth returns middleware that resolves the X-API-Key header to a
// tenant. The failure response never reveals whether the key exists.
func apiKeyAuth(tenants *services.TenantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant, err := tenants.Authenticate(c.Request.Context(), c.GetHeader("X-API-Key"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing API key"})
			return
		}
		c.Set(tenantContextKey, tenant)
		c.Next()
	}
}

// currentTenant returns the tenant resolved by apiKeyAuth.
func currentTenant(c *gin.Context) *ent.Tenant {
	return c.MustGet(tenantContextKey).(*ent.Tenant)
}
