package http

import (
	"github.com/gin-gonic/gin"

	"github.com/AnishD4/StudyTide/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Every route
// requires a valid bearer token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	assignments := rg.Group("/assignments")
	assignments.Use(mw.Auth())
	{
		assignments.POST("", h.Create)
		assignments.GET("", h.List)
		assignments.PATCH("/:id", h.SetCompleted)
		assignments.DELETE("/:id", h.Delete)
	}
}
