package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AnishD4/StudyTide/internal/assignment"
	"github.com/AnishD4/StudyTide/pkg/response"
)

// respondError translates domain errors into HTTP responses. Unknown errors
// become a generic 500 so storage details never leak to the client.
func (h *handler) respondError(c *gin.Context, err error) {
	switch err {
	case assignment.ErrEmptyTitle:
		response.Error(c, http.StatusBadRequest, err)
	case assignment.ErrNotFound:
		response.Error(c, http.StatusNotFound, err)
	default:
		response.InternalError(c, err)
	}
}
