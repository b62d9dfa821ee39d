package http

import (
	"github.com/gin-gonic/gin"

	"momentum-tab/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/reminders", mw.RateLimit(), h.List)
}
