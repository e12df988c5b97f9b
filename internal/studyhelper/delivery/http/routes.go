package http

import (
	"github.com/gin-gonic/gin"

	"github.com/AnishD4/StudyTide/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The action
// dispatch route carries the per-user AI rate limit on top of auth.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	helper := rg.Group("/study-helper")
	helper.Use(mw.Auth())
	{
		helper.POST("", mw.AIRateLimit(), h.Action)
		helper.GET("/history", h.History)
		helper.DELETE("/history", h.ClearHistory)
	}
}
