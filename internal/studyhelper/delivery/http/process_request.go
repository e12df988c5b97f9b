package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// processActionReq binds and validates the action dispatch body.
func (h *handler) processActionReq(c *gin.Context) (actionReq, error) {
	var req actionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}

	switch req.Action {
	case actionSuggestMaterials, actionChat, actionGenerateFlashcards, actionGenerateStudyGuide:
		return req, nil
	default:
		return req, fmt.Errorf("unknown action %q", req.Action)
	}
}

// processHistoryReq binds the thread selector from the query string.
func (h *handler) processHistoryReq(c *gin.Context) (historyReq, error) {
	var req historyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
