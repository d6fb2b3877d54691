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
	"github.com/jsamuelsen11/task-tracker/internal/platform/logging"
	"github.com/jsamuelsen11/task-tracker/internal/ports"
)

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

// TaskService implements ports.TaskService. It needs the task list
// repository only to confirm that the owning list exists on create.
type TaskService struct {
	tasks  ports.TaskRepository
	lists  ports.TaskListRepository
	logger *slog.Logger
	now    func() time.Time
}

// NewTaskService creates a TaskService. A nil logger discards output.
func NewTaskService(tasks ports.TaskRepository, lists ports.TaskListRepository, logger *slog.Logger, opts ...Option) *TaskService {
	o := buildOptions(opts)
	return &TaskService{
		tasks:  tasks,
		lists:  lists,
		logger: logging.OrDiscard(logger),
		now:    o.now,
	}
}

// ListTasks returns the tasks owned by taskListID, or an empty slice when
// the list is unknown.
func (s *TaskService) ListTasks(ctx context.Context, taskListID uuid.UUID) ([]task.Task, error) {
	s.logger.InfoContext(ctx, "listing tasks", slog.String("task_list_id", taskListID.String()))

	tasks, err := s.tasks.FindByTaskListID(ctx, taskListID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list tasks",
			slog.String("operation", "ListTasks"),
			slog.String("task_list_id", taskListID.String()),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	if tasks == nil {
		tasks = []task.Task{}
	}
	return tasks, nil
}

// CreateTask validates the candidate, confirms the owning list exists and
// stores a new task with defaults applied.
func (s *TaskService) CreateTask(ctx context.Context, taskListID uuid.UUID, candidate *task.Task) (*task.Task, error) {
	if candidate == nil {
		return nil, domain.NewValidationError("task", domain.MsgRequired)
	}

	s.logger.InfoContext(ctx, "creating task",
		slog.String("task_list_id", taskListID.String()),
		slog.String("title", candidate.Title),
	)

	if err := candidate.ValidateNew(); err != nil {
		s.logger.WarnContext(ctx, "rejected task",
			slog.String("operation", "CreateTask"),
			slog.Any("error", err),
		)
		return nil, err
	}

	exists, err := s.lists.ExistsByID(ctx, taskListID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to verify task list",
			slog.String("operation", "CreateTask"),
			slog.String("task_list_id", taskListID.String()),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("verifying task list: %w", err)
	}
	if !exists {
		err := domain.NewValidationError("taskListId", fmt.Sprintf("invalid task list ID %s", taskListID))
		s.logger.WarnContext(ctx, "rejected task",
			slog.String("operation", "CreateTask"),
			slog.Any("error", err),
		)
		return nil, err
	}

	created, err := s.tasks.Save(ctx, task.New(taskListID, candidate, s.now()))
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create task",
			slog.String("operation", "CreateTask"),
			slog.String("task_list_id", taskListID.String()),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("creating task: %w", err)
	}

	return created, nil
}

// GetTask returns the task for the (taskListID, taskID) pair, or
// found == false.
func (s *TaskService) GetTask(ctx context.Context, taskListID, taskID uuid.UUID) (*task.Task, bool, error) {
	s.logger.InfoContext(ctx, "fetching task",
		slog.String("task_list_id", taskListID.String()),
		slog.String("task_id", taskID.String()),
	)

	t, err := s.tasks.FindByTaskListIDAndID(ctx, taskListID, taskID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch task",
			slog.String("operation", "GetTask"),
			slog.String("task_list_id", taskListID.String()),
			slog.String("task_id", taskID.String()),
			slog.Any("error", err),
		)
		return nil, false, fmt.Errorf("fetching task: %w", err)
	}

	return t, true, nil
}

// UpdateTask applies patch to the stored task. A rejected patch leaves the
// stored task untouched.
func (s *TaskService) UpdateTask(ctx context.Context, taskListID, taskID uuid.UUID, patch task.Patch) (*task.Task, error) {
	s.logger.InfoContext(ctx, "updating task",
		slog.String("task_list_id", taskListID.String()),
		slog.String("task_id", taskID.String()),
	)

	t, err := s.tasks.FindByTaskListIDAndID(ctx, taskListID, taskID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("task %s in task list %s: %w", taskID, taskListID, domain.ErrNotFound)
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch task",
			slog.String("operation", "UpdateTask"),
			slog.String("task_list_id", taskListID.String()),
			slog.String("task_id", taskID.String()),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("fetching task: %w", err)
	}

	if err := t.Apply(patch, s.now()); err != nil {
		s.logger.WarnContext(ctx, "rejected task update",
			slog.String("operation", "UpdateTask"),
			slog.String("task_id", taskID.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	saved, err := s.tasks.Save(ctx, t)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update task",
			slog.String("operation", "UpdateTask"),
			slog.String("task_list_id", taskListID.String()),
			slog.String("task_id", taskID.String()),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("updating task: %w", err)
	}

	return saved, nil
}

// DeleteTask removes the task for the pair.
func (s *TaskService) DeleteTask(ctx context.Context, taskListID, taskID uuid.UUID) error {
	s.logger.InfoContext(ctx, "deleting task",
		slog.String("task_list_id", taskListID.String()),
		slog.String("task_id", taskID.String()),
	)

	exists, err := s.tasks.ExistsByTaskListIDAndID(ctx, taskListID, taskID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to check task",
			slog.String("operation", "DeleteTask"),
			slog.String("task_list_id", taskListID.String()),
			slog.String("task_id", taskID.String()),
			slog.Any("error", err),
		)
		return fmt.Errorf("checking task: %w", err)
	}
	if !exists {
		return fmt.Errorf("task %s in task list %s: %w", taskID, taskListID, domain.ErrNotFound)
	}

	if err := s.tasks.DeleteByTaskListIDAndID(ctx, taskListID, taskID); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete task",
			slog.String("operation", "DeleteTask"),
			slog.String("task_list_id", taskListID.String()),
			slog.String("task_id", taskID.String()),
			slog.Any("error", err),
		)
		return fmt.Errorf("deleting task: %w", err)
	}

	return nil
}
