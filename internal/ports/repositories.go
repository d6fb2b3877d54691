package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/task-tracker/internal/domain/task"
	"github.com/jsamuelsen11/task-tracker/internal/domain/tasklist"
)

// TaskListRepository is the persistence port for task lists.
// Implemented by the persistence adapters; called by the application layer.
type TaskListRepository interface {
	// FindAll returns every task list in storage order with tasks loaded.
	FindAll(ctx context.Context) ([]tasklist.TaskList, error)

	// FindByID returns the task list with its tasks loaded.
	// Returns domain.ErrNotFound if it does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*tasklist.TaskList, error)

	// ExistsByID reports whether a task list with the given ID is stored.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// Save inserts the list when its ID is uuid.Nil (assigning a fresh ID)
	// and overwrites the stored record otherwise. Nested tasks are never
	// written.
	Save(ctx context.Context, list *tasklist.TaskList) (*tasklist.TaskList, error)

	// DeleteByID removes the list and every task it owns.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// TaskRepository is the persistence port for tasks. Lookups use the
// (task list ID, task ID) composite key.
type TaskRepository interface {
	// FindByTaskListID returns the tasks owned by the given list.
	FindByTaskListID(ctx context.Context, taskListID uuid.UUID) ([]task.Task, error)

	// FindByTaskListIDAndID returns a single task.
	// Returns domain.ErrNotFound if the pair does not exist.
	FindByTaskListIDAndID(ctx context.Context, taskListID, taskID uuid.UUID) (*task.Task, error)

	// ExistsByTaskListIDAndID reports whether the pair is stored.
	ExistsByTaskListIDAndID(ctx context.Context, taskListID, taskID uuid.UUID) (bool, error)

	// Save inserts the task when its ID is uuid.Nil and overwrites otherwise.
	Save(ctx context.Context, t *task.Task) (*task.Task, error)

	// DeleteByTaskListIDAndID removes the task identified by the pair.
	DeleteByTaskListIDAndID(ctx context.Context, taskListID, taskID uuid.UUID) error
}
