package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/AnishD4/StudyTide/internal/model"
	"github.com/AnishD4/StudyTide/pkg/response"
)

const scopeContextKey = "x-studytide-scope"

// Auth validates the bearer token and stores the caller's scope on the gin
// context. Requests without a valid token never reach the handlers.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token := extractBearer(c.GetHeader("Authorization"))
		if token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if sc, ok := m.tokenCache.Get(token); ok {
			c.Set(scopeContextKey, sc)
			c.Next()
			return
		}

		sc, err := m.verifyToken(token)
		if err != nil {
			m.l.Warnf(ctx, "middleware.Auth: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		m.tokenCache.Add(token, sc)
		c.Set(scopeContextKey, sc)
		c.Next()
	}
}

func (m Middleware) verifyToken(token string) (model.Scope, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return m.jwtSecret, nil
	}, parserOptions...)
	if err != nil {
		return model.Scope{}, fmt.Errorf("parse token: %w", err)
	}
	if !parsed.Valid {
		return model.Scope{}, fmt.Errorf("token is not valid")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return model.Scope{}, fmt.Errorf("token has no subject")
	}

	sc := model.Scope{UserID: sub}
	if email, ok := claims["email"].(string); ok {
		sc.Email = email
	}
	return sc, nil
}

func extractBearer(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// ScopeFromContext returns the scope stored by Auth. The boolean is false on
// routes that skipped the middleware.
func ScopeFromContext(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeContextKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
