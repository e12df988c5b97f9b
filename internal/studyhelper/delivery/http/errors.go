package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AnishD4/StudyTide/internal/studyhelper"
	"github.com/AnishD4/StudyTide/pkg/gemini"
	"github.com/AnishD4/StudyTide/pkg/response"
)

// respondError translates domain and upstream errors into HTTP responses.
// Generation and extraction failures read as 502 since the service itself
// is healthy; only unexpected storage errors become a 500.
func (h *handler) respondError(c *gin.Context, err error) {
	var apiErr *gemini.APIError

	switch {
	case errors.Is(err, studyhelper.ErrEmptyMessage):
		response.Error(c, http.StatusBadRequest, err)
	case errors.Is(err, studyhelper.ErrAssignmentNotFound):
		response.Error(c, http.StatusNotFound, err)
	case errors.Is(err, studyhelper.ErrNoFlashcardsFound),
		errors.Is(err, studyhelper.ErrMalformedFlashcards),
		errors.Is(err, gemini.ErrNotConfigured),
		errors.Is(err, gemini.ErrEmptyResponse),
		errors.As(err, &apiErr):
		response.Error(c, http.StatusBadGateway, err)
	default:
		response.InternalError(c, err)
	}
}
