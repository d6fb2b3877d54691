package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/domain/task"
	"github.com/jsamuelsen11/task-tracker/internal/domain/tasklist"
)

// CreateTaskListRequest is the JSON body for creating a task list. ID and
// Tasks are accepted so the service can reject or discard them.
type CreateTaskListRequest struct {
	ID          uuid.UUID           `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Tasks       []CreateTaskRequest `json:"tasks,omitempty"`
}

// ToDomain maps the request onto a candidate task list.
func (r *CreateTaskListRequest) ToDomain() *tasklist.TaskList {
	l := &tasklist.TaskList{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
	}
	if r.Tasks != nil {
		l.Tasks = make([]task.Task, len(r.Tasks))
		for i := range r.Tasks {
			l.Tasks[i] = *r.Tasks[i].ToDomain()
		}
	}
	return l
}

// UpdateTaskListRequest is the JSON body for updating a task list. A nil
// field is left unchanged.
type UpdateTaskListRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// ToPatch maps the request onto a task list patch.
func (r *UpdateTaskListRequest) ToPatch() tasklist.Patch {
	return tasklist.Patch{
		Title:       domain.FromPtr(r.Title),
		Description: domain.FromPtr(r.Description),
	}
}

// CreateTaskRequest is the JSON body for creating a task.
type CreateTaskRequest struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     *DateTime `json:"dueDate"`
	Priority    *Priority `json:"priority"`
	Status      *Status   `json:"status"`
}

// ToDomain maps the request onto a candidate task. Unset enums stay empty
// so the service applies its defaults.
func (r *CreateTaskRequest) ToDomain() *task.Task {
	t := &task.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
	}
	if r.DueDate != nil {
		due := r.DueDate.Time
		t.DueDate = &due
	}
	if r.Priority != nil {
		t.Priority = task.Priority(*r.Priority)
	}
	if r.Status != nil {
		t.Status = task.Status(*r.Status)
	}
	return t
}

// UpdateTaskRequest is the JSON body for updating a task. A nil field is
// left unchanged.
type UpdateTaskRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	DueDate     *DateTime `json:"dueDate"`
	Priority    *Priority `json:"priority"`
	Status      *Status   `json:"status"`
}

// ToPatch maps the request onto a task patch.
func (r *UpdateTaskRequest) ToPatch() task.Patch {
	p := task.Patch{
		Title:       domain.FromPtr(r.Title),
		Description: domain.FromPtr(r.Description),
	}
	if r.DueDate != nil {
		p.DueDate = domain.Some[time.Time](r.DueDate.Time)
	}
	if r.Priority != nil {
		p.Priority = domain.Some(task.Priority(*r.Priority))
	}
	if r.Status != nil {
		p.Status = domain.Some(task.Status(*r.Status))
	}
	return p
}
