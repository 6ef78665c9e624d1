package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"diary-agent/pkg/response"
)

// RateLimit rejects requests over the configured rate with 429.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter != nil && !m.limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded: %s %s", c.Request.Method, c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Error("요청이 너무 많습니다. 잠시 후 다시 시도해 주세요."))
			return
		}
		c.Next()
	}
}
