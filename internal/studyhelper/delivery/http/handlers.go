package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AnishD4/StudyTide/internal/middleware"
	"github.com/AnishD4/StudyTide/internal/model"
	"github.com/AnishD4/StudyTide/internal/studyhelper"
	"github.com/AnishD4/StudyTide/pkg/response"
)

// Action godoc
// @Summary     Run a study helper action
// @Description Dispatches one helper action: suggest-materials, chat, generate-flashcards, or generate-study-guide. Assignment context comes from assignment_id, or from assignment_title/assignment_description for a general study session.
// @Tags        StudyHelper
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body actionReq true "Action request"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Bad Gateway - generation failed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/study-helper [POST]
func (h *handler) Action(c *gin.Context) {
	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processActionReq(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err)
		return
	}

	switch req.Action {
	case actionSuggestMaterials:
		h.suggestMaterials(c, sc, req)
	case actionChat:
		h.chat(c, sc, req)
	case actionGenerateFlashcards:
		h.generateFlashcards(c, sc, req)
	case actionGenerateStudyGuide:
		h.generateStudyGuide(c, sc, req)
	}
}

func (h *handler) suggestMaterials(c *gin.Context, sc model.Scope, req actionReq) {
	ctx := c.Request.Context()

	output, err := h.uc.SuggestMaterials(ctx, sc, studyhelper.SuggestInput{Task: req.taskRef()})
	if err != nil && !errors.Is(err, studyhelper.ErrReplyNotPersisted) {
		h.l.Errorf(ctx, "studyhelper.http.SuggestMaterials: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newSuggestResp(output))
}

func (h *handler) chat(c *gin.Context, sc model.Scope, req actionReq) {
	ctx := c.Request.Context()

	output, err := h.uc.Chat(ctx, sc, studyhelper.ChatInput{
		Task:    req.taskRef(),
		Message: req.Message,
	})
	// A reply that could not be persisted is still returned; the persisted
	// flag in the body marks the partial success.
	if err != nil && !errors.Is(err, studyhelper.ErrReplyNotPersisted) {
		h.l.Errorf(ctx, "studyhelper.http.Chat: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newChatResp(output))
}

func (h *handler) generateFlashcards(c *gin.Context, sc model.Scope, req actionReq) {
	ctx := c.Request.Context()

	output, err := h.uc.GenerateFlashcards(ctx, sc, studyhelper.FlashcardsInput{Task: req.taskRef()})
	if err != nil {
		h.l.Errorf(ctx, "studyhelper.http.GenerateFlashcards: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newFlashcardsResp(output))
}

func (h *handler) generateStudyGuide(c *gin.Context, sc model.Scope, req actionReq) {
	ctx := c.Request.Context()

	output, err := h.uc.GenerateStudyGuide(ctx, sc, studyhelper.GuideInput{Task: req.taskRef()})
	if err != nil {
		h.l.Errorf(ctx, "studyhelper.http.GenerateStudyGuide: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newGuideResp(output))
}

// History godoc
// @Summary     Fetch conversation history
// @Description Returns chat turns oldest first. assignment_id narrows the result to one thread; omit it to list every turn across threads.
// @Tags        StudyHelper
// @Produce     json
// @Security    BearerAuth
// @Param       assignment_id query string false "Assignment ID"
// @Success     200 {object} historyResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/study-helper/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processHistoryReq(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err)
		return
	}

	output, err := h.uc.History(ctx, sc, studyhelper.HistoryInput{AssignmentID: req.AssignmentID})
	if err != nil {
		h.l.Errorf(ctx, "studyhelper.http.History: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newHistoryResp(output))
}

// ClearHistory godoc
// @Summary     Clear conversation history
// @Description Deletes every turn in the thread. Omit assignment_id for the general study thread.
// @Tags        StudyHelper
// @Produce     json
// @Security    BearerAuth
// @Param       assignment_id query string false "Assignment ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/study-helper/history [DELETE]
func (h *handler) ClearHistory(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processHistoryReq(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err)
		return
	}

	if err := h.uc.ClearHistory(ctx, sc, studyhelper.ClearInput{AssignmentID: req.AssignmentID}); err != nil {
		h.l.Errorf(ctx, "studyhelper.http.ClearHistory: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}
