// Package dto provides the JSON wire records of the task API, their mapping
// to and from the domain, and RFC 9457 Problem Details error responses.
package dto

import (
	"github.com/google/uuid"

	"github.com/jsamuelsen11/task-tracker/internal/domain/task"
	"github.com/jsamuelsen11/task-tracker/internal/domain/tasklist"
)

// TaskListResponse is a task list in HTTP responses. Progress and Tasks are
// null when the task collection was not loaded.
type TaskListResponse struct {
	ID          uuid.UUID      `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Count       int            `json:"count"`
	Progress    *float64       `json:"progress"`
	Tasks       []TaskResponse `json:"tasks"`
	Created     string         `json:"created"`
	Updated     string         `json:"updated"`
}

// ToTaskListResponse converts a domain task list to its wire form.
func ToTaskListResponse(l *tasklist.TaskList) TaskListResponse {
	resp := TaskListResponse{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		Count:       l.Count(),
		Created:     formatTime(l.CreatedAt),
		Updated:     formatTime(l.UpdatedAt),
	}

	if progress, ok := l.Progress(); ok {
		resp.Progress = &progress
	}
	if l.Tasks != nil {
		resp.Tasks = ToTaskResponses(l.Tasks)
	}

	return resp
}

// ToTaskListResponses converts a slice of task lists. The result is never nil.
func ToTaskListResponses(lists []tasklist.TaskList) []TaskListResponse {
	out := make([]TaskListResponse, len(lists))
	for i := range lists {
		out[i] = ToTaskListResponse(&lists[i])
	}
	return out
}

// TaskResponse is a task in HTTP responses.
type TaskResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     *string   `json:"dueDate"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	Created     string    `json:"created"`
	Updated     string    `json:"updated"`
}

// ToTaskResponse converts a domain task to its wire form.
func ToTaskResponse(t *task.Task) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority.String(),
		Status:      t.Status.String(),
		Created:     formatTime(t.CreatedAt),
		Updated:     formatTime(t.UpdatedAt),
	}
	if t.DueDate != nil {
		due := formatTime(*t.DueDate)
		resp.DueDate = &due
	}
	return resp
}

// ToTaskResponses converts a slice of tasks. The result is never nil.
func ToTaskResponses(tasks []task.Task) []TaskResponse {
	out := make([]TaskResponse, len(tasks))
	for i := range tasks {
		out[i] = ToTaskResponse(&tasks[i])
	}
	return out
}
