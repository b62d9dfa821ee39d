package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"momentum-tab/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Momentum new-tab API"
	HealthVersion = "1.0.0"
	ServiceName   = "momentum-tab"
)

var errTasksNotLoaded = errors.New("tasks not loaded yet")

func healthBody(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, healthBody("healthy"))
}

// readyCheck reports ready once the first Google Tasks snapshot has loaded.
// It never contacts Google itself.
// @Summary Readiness Check
// @Description Ready once the task list has been loaded from Google Tasks
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Tasks not loaded yet"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	snap := srv.taskUC.Snapshot()
	if snap.FetchedAt.IsZero() {
		response.ServiceUnavailable(c, errTasksNotLoaded)
		return
	}

	body := healthBody("ready")
	body["tasks"] = len(snap.Tasks)
	body["fetched_at"] = response.DateTime(snap.FetchedAt)
	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, healthBody("alive"))
}
