package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	backgroundHTTP "momentum-tab/internal/background/delivery/http"
	greetingHTTP "momentum-tab/internal/greeting/delivery/http"
	"momentum-tab/internal/middleware"
	reminderHTTP "momentum-tab/internal/reminder/delivery/http"
	taskHTTP "momentum-tab/internal/task/delivery/http"
)

// setupTaskDomain registers /api/v1/tasks.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := taskHTTP.New(srv.l, srv.taskUC, srv.dates)
	taskHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Task domain registered")
}

// setupReminderDomain registers /api/v1/reminders.
func (srv HTTPServer) setupReminderDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := reminderHTTP.New(srv.l, srv.reminders)
	reminderHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Reminder domain registered")
}

// setupGreetingDomain registers /api/v1/clock.
func (srv HTTPServer) setupGreetingDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := greetingHTTP.New(srv.l, srv.greetingUC)
	greetingHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Greeting domain registered")
}

// setupBackgroundDomain registers /api/v1/background.
func (srv HTTPServer) setupBackgroundDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := backgroundHTTP.New(srv.l, srv.backgroundUC)
	backgroundHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Background domain registered")
}
