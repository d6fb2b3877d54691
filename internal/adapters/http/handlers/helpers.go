package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/task-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/platform/logging"
)

// URL parameter names shared with the router.
const (
	ParamTaskListID = "id"
	ParamTaskID     = "taskId"
)

// msgInvalidUUID is reported for path parameters that are not UUIDs.
const msgInvalidUUID = "must be a valid UUID"

// parseUUID extracts a UUID path parameter from the chi URL params.
func parseUUID(r *http.Request, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(param, msgInvalidUUID)
	}
	return id, nil
}

// parseTaskPath extracts the task list ID and task ID path parameters.
func parseTaskPath(r *http.Request) (taskListID, taskID uuid.UUID, err error) {
	if taskListID, err = parseUUID(r, ParamTaskListID); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	if taskID, err = parseUUID(r, ParamTaskID); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return taskListID, taskID, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.Any("error", err),
		)
	}
}

// decodeJSONBody decodes the request body into dst. On failure it writes a
// 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := dto.Decode(w, r, dst); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
