package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AnishD4/StudyTide/pkg/response"
)

var errTooManyRequests = errors.New("too many AI requests, slow down")

// AIRateLimit throttles generation-backed endpoints per user. It must run
// after Auth since the bucket key is the caller's user ID.
func (m Middleware) AIRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		sc, ok := ScopeFromContext(c)
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if !m.aiLimiter.allow(sc.UserID) {
			m.l.Warnf(ctx, "middleware.AIRateLimit: user=%s throttled", sc.UserID)
			response.Error(c, http.StatusTooManyRequests, errTooManyRequests)
			c.Abort()
			return
		}

		c.Next()
	}
}
