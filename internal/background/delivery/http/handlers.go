package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"momentum-tab/pkg/response"
	"momentum-tab/pkg/unsplash"
)

var errPhotoUnavailable = errors.New("background photo unavailable")

// Current godoc
// @Summary     Background photo
// @Description Returns the photo shown behind the clock. It is fetched once per process.
// @Tags        Background
// @Produce     json
// @Success     200 {object} photoResp
// @Failure     503 {object} response.Resp "Photo source unavailable"
// @Router      /api/v1/background [GET]
func (h *handler) Current(c *gin.Context) {
	ctx := c.Request.Context()

	photo, err := h.uc.Current(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Current: %v", err)
		if errors.Is(err, unsplash.ErrMissingAccessKey) {
			response.ServiceUnavailable(c, unsplash.ErrMissingAccessKey)
			return
		}
		response.ServiceUnavailable(c, errPhotoUnavailable)
		return
	}

	response.OK(c, newPhotoResp(photo))
}
