package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// mayorAuth admits requests carrying a valid bearer token and stores the
// mayor id under "mayorID".
func (h *Handler) mayorAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	mayorID, err := h.services.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	c.Set("mayorID", mayorID)
	c.Next()
}

// rateLimit rejects requests beyond the configured rate with 429.
func (h *Handler) rateLimit(c *gin.Context) {
	if h.limiter == nil || h.limiter.Allow() {
		c.Next()
		return
	}
	h.log.Infow("rate_limited", "path", c.FullPath(), "mayor_id", c.GetInt("mayorID"))
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
		"error": "rate limit exceeded",
	})
}
