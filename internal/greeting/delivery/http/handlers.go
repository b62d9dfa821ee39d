package http

import (
	"github.com/gin-gonic/gin"

	"momentum-tab/pkg/response"
)

// Current godoc
// @Summary     Clock and greeting
// @Description Returns the wall-clock time and a time-of-day greeting for the signed-in user.
// @Tags        Clock
// @Produce     json
// @Success     200 {object} clockResp
// @Router      /api/v1/clock [GET]
func (h *handler) Current(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Current(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Current: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newClockResp(out))
}
