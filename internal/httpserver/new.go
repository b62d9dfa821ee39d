package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"momentum-tab/internal/background"
	"momentum-tab/internal/greeting"
	reminderHTTP "momentum-tab/internal/reminder/delivery/http"
	"momentum-tab/internal/task"
	"momentum-tab/pkg/datemath"
	"momentum-tab/pkg/log"
)

// DefaultShutdownTimeout bounds graceful shutdown.
const DefaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	rateLimitPerMin int
	shutdownTimeout time.Duration

	// Domains
	taskUC       task.UseCase
	dates        *datemath.Parser
	reminders    reminderHTTP.Source
	backgroundUC background.UseCase
	greetingUC   greeting.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	RateLimitPerMin int
	ShutdownTimeout time.Duration

	TaskUC       task.UseCase
	Dates        *datemath.Parser
	Reminders    reminderHTTP.Source
	BackgroundUC background.UseCase // optional
	GreetingUC   greeting.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		rateLimitPerMin: cfg.RateLimitPerMin,
		shutdownTimeout: cfg.ShutdownTimeout,
		taskUC:          cfg.TaskUC,
		dates:           cfg.Dates,
		reminders:       cfg.Reminders,
		backgroundUC:    cfg.BackgroundUC,
		greetingUC:      cfg.GreetingUC,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = DefaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskUC == nil {
		return errors.New("task use case is required")
	}
	if srv.dates == nil {
		return errors.New("date parser is required")
	}
	if srv.reminders == nil {
		return errors.New("reminder source is required")
	}
	if srv.greetingUC == nil {
		return errors.New("greeting use case is required")
	}
	return nil
}
