package http

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"momentum-tab/internal/task"
)

// processAddReq binds the body and resolves the due phrase to a calendar date.
func (h *handler) processAddReq(c *gin.Context) (task.AddInput, error) {
	var req addReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return task.AddInput{}, fmt.Errorf("%w: %w", errInvalidBody, err)
	}
	if err := req.validate(); err != nil {
		return task.AddInput{}, err
	}

	var due *time.Time
	if s := strings.TrimSpace(req.Due); s != "" {
		d, err := h.dates.Parse(s, h.now().In(h.dates.Location()))
		if err != nil {
			return task.AddInput{}, fmt.Errorf("%w: %w", task.ErrInvalidDue, err)
		}
		due = &d
	}
	return req.toInput(due), nil
}

// processIDReq binds the :id path parameter.
func (h *handler) processIDReq(c *gin.Context) (string, error) {
	var req idReq
	if err := c.ShouldBindUri(&req); err != nil {
		return "", err
	}
	return req.ID, nil
}
