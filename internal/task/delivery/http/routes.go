package http

import (
	"github.com/gin-gonic/gin"

	"momentum-tab/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.RateLimit())
	{
		tasks.GET("", h.List)
		tasks.POST("", h.Add)
		tasks.POST("/refresh", h.Refresh)
		tasks.PATCH("/:id/toggle", h.Toggle)
		tasks.DELETE("/:id", h.Delete)
	}
}
