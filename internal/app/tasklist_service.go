package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/domain/task"
	"github.com/jsamuelsen11/task-tracker/internal/domain/tasklist"
	"github.com/jsamuelsen11/task-tracker/internal/platform/logging"
	"github.com/jsamuelsen11/task-tracker/internal/ports"
)

// Compile-time check that TaskListService implements ports.TaskListService.
var _ ports.TaskListService = (*TaskListService)(nil)

// TaskListService implements ports.TaskListService on top of the task list
// repository port. Entity rules live in the tasklist package; this type
// sequences them with persistence and logs the outcome.
type TaskListService struct {
	lists  ports.TaskListRepository
	logger *slog.Logger
	now    func() time.Time
}

// NewTaskListService creates a TaskListService. A nil logger discards output.
func NewTaskListService(lists ports.TaskListRepository, logger *slog.Logger, opts ...Option) *TaskListService {
	o := buildOptions(opts)
	return &TaskListService{
		lists:  lists,
		logger: logging.OrDiscard(logger),
		now:    o.now,
	}
}

// ListTaskLists returns all task lists with their tasks loaded.
func (s *TaskListService) ListTaskLists(ctx context.Context) ([]tasklist.TaskList, error) {
	s.logger.InfoContext(ctx, "listing task lists")

	lists, err := s.lists.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list task lists",
			slog.String("operation", "ListTaskLists"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("listing task lists: %w", err)
	}

	for i := range lists {
		if lists[i].Tasks == nil {
			lists[i].Tasks = []task.Task{}
		}
	}
	return lists, nil
}

// CreateTaskList validates the candidate and stores a new list. The result
// carries the assigned ID and an empty task collection.
func (s *TaskListService) CreateTaskList(ctx context.Context, candidate *tasklist.TaskList) (*tasklist.TaskList, error) {
	if candidate == nil {
		return nil, domain.NewValidationError("taskList", domain.MsgRequired)
	}

	s.logger.InfoContext(ctx, "creating task list", slog.String("title", candidate.Title))

	if err := candidate.ValidateNew(); err != nil {
		s.logger.WarnContext(ctx, "rejected task list",
			slog.String("operation", "CreateTaskList"),
			slog.Any("error", err),
		)
		return nil, err
	}

	created, err := s.lists.Save(ctx, tasklist.New(candidate, s.now()))
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create task list",
			slog.String("operation", "CreateTaskList"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("creating task list: %w", err)
	}

	created.Tasks = []task.Task{}
	return created, nil
}

// GetTaskList returns the list with the given ID, or found == false.
func (s *TaskListService) GetTaskList(ctx context.Context, id uuid.UUID) (*tasklist.TaskList, bool, error) {
	s.logger.InfoContext(ctx, "fetching task list", slog.String("id", id.String()))

	list, err := s.lists.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch task list",
			slog.String("operation", "GetTaskList"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return nil, false, fmt.Errorf("fetching task list: %w", err)
	}

	if list.Tasks == nil {
		list.Tasks = []task.Task{}
	}
	return list, true, nil
}

// UpdateTaskList applies patch to the stored list.
func (s *TaskListService) UpdateTaskList(ctx context.Context, id uuid.UUID, patch tasklist.Patch) (*tasklist.TaskList, error) {
	s.logger.InfoContext(ctx, "updating task list", slog.String("id", id.String()))

	list, err := s.lists.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("task list %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch task list",
			slog.String("operation", "UpdateTaskList"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("fetching task list: %w", err)
	}

	list.Apply(patch, s.now())

	saved, err := s.lists.Save(ctx, list)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update task list",
			slog.String("operation", "UpdateTaskList"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("updating task list: %w", err)
	}

	saved.Tasks = list.Tasks
	if saved.Tasks == nil {
		saved.Tasks = []task.Task{}
	}
	return saved, nil
}

// DeleteTaskList removes the list and its tasks.
func (s *TaskListService) DeleteTaskList(ctx context.Context, id uuid.UUID) error {
	s.logger.InfoContext(ctx, "deleting task list", slog.String("id", id.String()))

	exists, err := s.lists.ExistsByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to check task list",
			slog.String("operation", "DeleteTaskList"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return fmt.Errorf("checking task list: %w", err)
	}
	if !exists {
		return fmt.Errorf("task list %s: %w", id, domain.ErrNotFound)
	}

	if err := s.lists.DeleteByID(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete task list",
			slog.String("operation", "DeleteTaskList"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return fmt.Errorf("deleting task list: %w", err)
	}

	return nil
}
