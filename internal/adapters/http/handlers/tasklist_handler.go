// Package handlers provides HTTP request handlers for the task API and the
// health endpoints.
package handlers

import (
	"fmt"
	"net/http"

	"github.com/jsamuelsen11/task-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/ports"
)

// TaskListHandler handles HTTP requests for task list CRUD.
type TaskListHandler struct {
	svc ports.TaskListService
}

// NewTaskListHandler creates a new TaskListHandler with the given service port.
func NewTaskListHandler(svc ports.TaskListService) *TaskListHandler {
	return &TaskListHandler{svc: svc}
}

// ListTaskLists handles GET /task-lists.
func (h *TaskListHandler) ListTaskLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.svc.ListTaskLists(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTaskListResponses(lists))
}

// CreateTaskList handles POST /task-lists.
func (h *TaskListHandler) CreateTaskList(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTaskListRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	created, err := h.svc.CreateTaskList(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToTaskListResponse(created))
}

// GetTaskList handles GET /task-lists/{id}.
func (h *TaskListHandler) GetTaskList(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, ParamTaskListID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	list, found, err := h.svc.GetTaskList(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if !found {
		dto.WriteErrorResponse(w, r, fmt.Errorf("task list %s: %w", id, domain.ErrNotFound))
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTaskListResponse(list))
}

// UpdateTaskList handles PUT and PATCH /task-lists/{id}.
func (h *TaskListHandler) UpdateTaskList(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, ParamTaskListID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateTaskListRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateTaskList(r.Context(), id, req.ToPatch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTaskListResponse(updated))
}

// DeleteTaskList handles DELETE /task-lists/{id}.
func (h *TaskListHandler) DeleteTaskList(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, ParamTaskListID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteTaskList(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
