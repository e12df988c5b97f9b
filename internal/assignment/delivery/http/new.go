package http

import (
	"github.com/gin-gonic/gin"

	"github.com/AnishD4/StudyTide/internal/assignment"
	"github.com/AnishD4/StudyTide/pkg/log"
)

// Handler is the public interface for the assignment HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	SetCompleted(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc assignment.UseCase
}

// New creates a new HTTP handler for the assignment domain.
func New(l log.Logger, uc assignment.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
