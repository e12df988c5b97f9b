package http

import (
	"github.com/gin-gonic/gin"

	"github.com/AnishD4/StudyTide/internal/studyhelper"
	"github.com/AnishD4/StudyTide/pkg/log"
)

// Handler is the public interface for the study helper HTTP delivery layer.
type Handler interface {
	Action(c *gin.Context)
	History(c *gin.Context)
	ClearHistory(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc studyhelper.UseCase
}

// New creates a new HTTP handler for the study helper domain.
func New(l log.Logger, uc studyhelper.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
