package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/task-tracker/internal/domain/task"
	"github.com/jsamuelsen11/task-tracker/internal/domain/tasklist"
)

// TaskListService defines the service port for task list operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type TaskListService interface {
	// ListTaskLists returns every task list in storage order, each with its
	// tasks loaded.
	ListTaskLists(ctx context.Context) ([]tasklist.TaskList, error)

	// CreateTaskList validates and stores a new task list. Nested tasks on
	// the candidate are discarded.
	// Returns domain.ErrValidation if the candidate is nil, carries an ID, or
	// has a blank title.
	CreateTaskList(ctx context.Context, candidate *tasklist.TaskList) (*tasklist.TaskList, error)

	// GetTaskList returns the task list with the given ID. Absence is not an
	// error: found is false and the list is nil.
	GetTaskList(ctx context.Context, id uuid.UUID) (list *tasklist.TaskList, found bool, err error)

	// UpdateTaskList applies a partial update and refreshes the updated
	// timestamp.
	// Returns domain.ErrNotFound if the task list does not exist.
	UpdateTaskList(ctx context.Context, id uuid.UUID, patch tasklist.Patch) (*tasklist.TaskList, error)

	// DeleteTaskList removes the task list and every task it owns.
	// Returns domain.ErrNotFound if the task list does not exist.
	DeleteTaskList(ctx context.Context, id uuid.UUID) error
}

// TaskService defines the service port for task operations. Every task is
// addressed through the task list that owns it.
type TaskService interface {
	// ListTasks returns the tasks owned by taskListID. An unknown list yields
	// an empty result, not an error.
	ListTasks(ctx context.Context, taskListID uuid.UUID) ([]task.Task, error)

	// CreateTask validates and stores a new task under taskListID, defaulting
	// status to OPEN and priority to MEDIUM.
	// Returns domain.ErrValidation if the candidate is invalid or the task
	// list does not exist.
	CreateTask(ctx context.Context, taskListID uuid.UUID, candidate *task.Task) (*task.Task, error)

	// GetTask returns the task identified by the (taskListID, taskID) pair.
	// A task that exists under a different list is reported as not found.
	GetTask(ctx context.Context, taskListID, taskID uuid.UUID) (t *task.Task, found bool, err error)

	// UpdateTask applies a partial update.
	// Returns domain.ErrNotFound if the pair does not exist and
	// domain.ErrValidation if the patch sets a due date in the past.
	UpdateTask(ctx context.Context, taskListID, taskID uuid.UUID, patch task.Patch) (*task.Task, error)

	// DeleteTask removes the task identified by the pair.
	// Returns domain.ErrNotFound if the pair does not exist.
	DeleteTask(ctx context.Context, taskListID, taskID uuid.UUID) error
}
