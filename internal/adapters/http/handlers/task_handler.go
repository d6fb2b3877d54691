package handlers

import (
	"fmt"
	"net/http"

	"github.com/jsamuelsen11/task-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/ports"
)

// TaskHandler handles HTTP requests for the tasks nested under a task list.
type TaskHandler struct {
	svc ports.TaskService
}

// NewTaskHandler creates a new TaskHandler with the given service port.
func NewTaskHandler(svc ports.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// ListTasks handles GET /task-lists/{id}/tasks.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	taskListID, err := parseUUID(r, ParamTaskListID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	tasks, err := h.svc.ListTasks(r.Context(), taskListID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTaskResponses(tasks))
}

// CreateTask handles POST /task-lists/{id}/tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	taskListID, err := parseUUID(r, ParamTaskListID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CreateTaskRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	created, err := h.svc.CreateTask(r.Context(), taskListID, req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToTaskResponse(created))
}

// GetTask handles GET /task-lists/{id}/tasks/{taskId}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	taskListID, taskID, err := parseTaskPath(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	t, found, err := h.svc.GetTask(r.Context(), taskListID, taskID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if !found {
		dto.WriteErrorResponse(w, r, fmt.Errorf("task %s in task list %s: %w", taskID, taskListID, domain.ErrNotFound))
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTaskResponse(t))
}

// UpdateTask handles PUT and PATCH /task-lists/{id}/tasks/{taskId}.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	taskListID, taskID, err := parseTaskPath(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateTaskRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateTask(r.Context(), taskListID, taskID, req.ToPatch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTaskResponse(updated))
}

// DeleteTask handles DELETE /task-lists/{id}/tasks/{taskId}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	taskListID, taskID, err := parseTaskPath(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteTask(r.Context(), taskListID, taskID); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
