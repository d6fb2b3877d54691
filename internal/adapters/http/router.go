// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/task-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/task-tracker/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/task-tracker/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/platform/logging"
	"github.com/jsamuelsen11/task-tracker/internal/platform/telemetry"
)

// RouterOptions configures the middleware stack and the optional endpoints.
type RouterOptions struct {
	ServiceName    string
	Logger         *slog.Logger
	Metrics        *telemetry.Metrics
	MetricsHandler http.Handler
	RequestTimeout time.Duration
}

// NewRouter creates an HTTP handler with all application routes registered.
// /metrics is mounted only when opts.MetricsHandler is set.
func NewRouter(
	taskListHandler *handlers.TaskListHandler,
	taskHandler *handlers.TaskHandler,
	healthHandler *handlers.HealthHandler,
	opts RouterOptions,
) http.Handler {
	logger := logging.OrDiscard(opts.Logger)

	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.CorrelationID())
	r.Use(middleware.OpenTelemetry(opts.ServiceName, r, opts.Metrics))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Timeout(opts.RequestTimeout))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, fmt.Errorf("no route for %s %s: %w", req.Method, req.URL.Path, domain.ErrNotFound))
	})

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	if opts.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", opts.MetricsHandler)
	}

	// Task list CRUD.
	r.Get("/task-lists", taskListHandler.ListTaskLists)
	r.Post("/task-lists", taskListHandler.CreateTaskList)
	r.Get(taskListPath, taskListHandler.GetTaskList)
	r.Put(taskListPath, taskListHandler.UpdateTaskList)
	r.Patch(taskListPath, taskListHandler.UpdateTaskList)
	r.Delete(taskListPath, taskListHandler.DeleteTaskList)

	// Tasks nested under their task list. The singular prefix is kept for
	// clients of the first API version.
	registerTaskRoutes(r, taskListPath+"/tasks", taskHandler)
	registerTaskRoutes(r, "/task-list/{"+handlers.ParamTaskListID+"}/tasks", taskHandler)

	return r
}

const taskListPath = "/task-lists/{" + handlers.ParamTaskListID + "}"

func registerTaskRoutes(r chi.Router, prefix string, h *handlers.TaskHandler) {
	taskPath := prefix + "/{" + handlers.ParamTaskID + "}"

	r.Get(prefix, h.ListTasks)
	r.Post(prefix, h.CreateTask)
	r.Get(taskPath, h.GetTask)
	r.Put(taskPath, h.UpdateTask)
	r.Patch(taskPath, h.UpdateTask)
	r.Delete(taskPath, h.DeleteTask)
}
