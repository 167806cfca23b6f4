package server

import (
	"net/http"
	"time"

	"github.com/Tomlord1122/activity-todo-backend/internal/config"
	"github.com/Tomlord1122/activity-todo-backend/internal/database"
	"github.com/Tomlord1122/activity-todo-backend/internal/observability"
	"github.com/Tomlord1122/activity-todo-backend/internal/service"
)

// Dependencies are the collaborators the HTTP layer calls into.
type Dependencies struct {
	Activities service.ActivityService
	Todos      service.TodoService
	// DB backs the /health report. It is nil when the memory driver is used.
	DB      database.Service
	Metrics *observability.Metrics
}

type Server struct {
	requestTimeout time.Duration
	activities     service.ActivityService
	todos          service.TodoService
	db             database.Service
	metrics        *observability.Metrics
}

func NewServer(cfg *config.Config, deps Dependencies) *http.Server {
	appServer := &Server{
		requestTimeout: cfg.RequestTimeout,
		activities:     deps.Activities,
		todos:          deps.Todos,
		db:             deps.DB,
		metrics:        deps.Metrics,
	}

	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      appServer.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
