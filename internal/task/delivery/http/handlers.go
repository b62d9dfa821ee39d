package http

import (
	"github.com/gin-gonic/gin"

	"momentum-tab/pkg/response"
)

// List godoc
// @Summary     List tasks
// @Description Returns the task snapshot, refreshed from Google Tasks when stale. Each task carries its parsed reminder and links.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Not signed in to Google"
// @Failure     503 {object} response.Resp "Google Tasks unavailable"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Refresh godoc
// @Summary     Refresh tasks
// @Description Forces a list from Google Tasks.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Not signed in to Google"
// @Failure     503 {object} response.Resp "Google Tasks unavailable"
// @Router      /api/v1/tasks/refresh [POST]
func (h *handler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Refresh(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Refresh: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Add godoc
// @Summary     Add a task
// @Description Creates a task. A reminder is stored as a "[HH:MM]" prefix of the notes.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body addReq true "Task data"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Google Tasks unavailable"
// @Router      /api/v1/tasks [POST]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processAddReq(c)
	if err != nil {
		h.l.Warnf(ctx, "task.delivery.http.Add: %v", err)
		h.writeError(c, err)
		return
	}

	created, err := h.uc.Add(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Add: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, newTaskResp(created))
}

// Toggle godoc
// @Summary     Toggle a task
// @Description Flips a task between needsAction and completed.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     503 {object} response.Resp "Google Tasks unavailable"
// @Router      /api/v1/tasks/{id}/toggle [PATCH]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	updated, err := h.uc.Toggle(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Toggle: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, newTaskResp(updated))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} deleteResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     503 {object} response.Resp "Google Tasks unavailable"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, deleteResp{ID: id})
}
