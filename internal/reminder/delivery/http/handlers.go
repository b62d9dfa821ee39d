package http

import (
	"github.com/gin-gonic/gin"

	"momentum-tab/pkg/response"
)

// List godoc
// @Summary     Triggered reminders
// @Description Returns tasks whose reminder window has opened, ordered by trigger time. Tasks with links are flagged actionable.
// @Tags        Reminders
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/reminders [GET]
func (h *handler) List(c *gin.Context) {
	response.OK(c, newListResp(h.src.Triggered()))
}
