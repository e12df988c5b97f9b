package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AnishD4/StudyTide/internal/middleware"
	"github.com/AnishD4/StudyTide/pkg/response"
)

// Create godoc
// @Summary     Create an assignment
// @Description Creates an assignment for the caller. Effort (minutes) and difficulty are estimated before the insert; when the generation service is unavailable a deterministic fallback sizes the task instead.
// @Tags        Assignment
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Assignment data"
// @Success     201 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assignments [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "assignment.http.Create: %v", err)
		h.respondError(c, err)
		return
	}

	response.Created(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List assignments
// @Description Returns the caller's assignments, newest first.
// @Tags        Assignment
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assignments [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.List(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "assignment.http.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// SetCompleted godoc
// @Summary     Update completion flag
// @Description Marks an assignment done or not done. Assignments owned by other users read as not found.
// @Tags        Assignment
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string          true "Assignment ID"
// @Param       body body setCompletedReq true "Completion flag"
// @Success     200 {object} setCompletedResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assignments/{id} [PATCH]
func (h *handler) SetCompleted(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processSetCompletedReq(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err)
		return
	}

	output, err := h.uc.SetCompleted(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "assignment.http.SetCompleted: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newSetCompletedResp(output))
}

// Delete godoc
// @Summary     Delete an assignment
// @Description Permanently removes an assignment the caller owns.
// @Tags        Assignment
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Assignment ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assignments/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id := c.Param("id")
	if id == "" {
		response.Error(c, http.StatusBadRequest, errMissingID)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "assignment.http.Delete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}
