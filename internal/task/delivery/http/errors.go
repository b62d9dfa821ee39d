package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"momentum-tab/internal/task"
	"momentum-tab/internal/task/repository"
	"momentum-tab/pkg/gauth"
	"momentum-tab/pkg/response"
)

// writeError translates domain errors into HTTP responses.
func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrInvalidDue),
		errors.Is(err, errInvalidReminder),
		errors.Is(err, errInvalidBody):
		response.Error(c, err, nil)
	case errors.Is(err, task.ErrTaskNotFound):
		response.NotFound(c, task.ErrTaskNotFound)
	case errors.Is(err, gauth.ErrNotAuthenticated),
		errors.Is(err, gauth.ErrSessionExpired):
		response.Unauthorized(c)
	case errors.Is(err, repository.ErrFailedToList),
		errors.Is(err, repository.ErrFailedToInsert),
		errors.Is(err, repository.ErrFailedToUpdate),
		errors.Is(err, repository.ErrFailedToDelete):
		response.ServiceUnavailable(c, errors.New("google tasks unavailable"))
	default:
		response.InternalError(c, err)
	}
}
