package guard

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/task-tracker/internal/domain/task"
	"github.com/jsamuelsen11/task-tracker/internal/domain/tasklist"
	"github.com/jsamuelsen11/task-tracker/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.HealthChecker      = (*Guard)(nil)
	_ ports.TaskListRepository = (*TaskListRepository)(nil)
	_ ports.TaskRepository     = (*TaskRepository)(nil)
)

const (
	tableTaskLists = "task_lists"
	tableTasks     = "tasks"
)

// TaskListRepository wraps a ports.TaskListRepository.
type TaskListRepository struct {
	guard *Guard
	next  ports.TaskListRepository
}

// TaskLists decorates next with the guard's pipeline.
func (g *Guard) TaskLists(next ports.TaskListRepository) *TaskListRepository {
	return &TaskListRepository{guard: g, next: next}
}

func (r *TaskListRepository) FindAll(ctx context.Context) ([]tasklist.TaskList, error) {
	return execute(ctx, r.guard, call{operation: "task_lists.find_all", table: tableTaskLists, read: true},
		func(ctx context.Context) ([]tasklist.TaskList, error) {
			return r.next.FindAll(ctx)
		})
}

func (r *TaskListRepository) FindByID(ctx context.Context, id uuid.UUID) (*tasklist.TaskList, error) {
	return execute(ctx, r.guard, call{operation: "task_lists.find_by_id", table: tableTaskLists, read: true},
		func(ctx context.Context) (*tasklist.TaskList, error) {
			return r.next.FindByID(ctx, id)
		})
}

func (r *TaskListRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return execute(ctx, r.guard, call{operation: "task_lists.exists_by_id", table: tableTaskLists, read: true},
		func(ctx context.Context) (bool, error) {
			return r.next.ExistsByID(ctx, id)
		})
}

func (r *TaskListRepository) Save(ctx context.Context, list *tasklist.TaskList) (*tasklist.TaskList, error) {
	return execute(ctx, r.guard, call{operation: "task_lists.save", table: tableTaskLists},
		func(ctx context.Context) (*tasklist.TaskList, error) {
			return r.next.Save(ctx, list)
		})
}

func (r *TaskListRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	_, err := execute(ctx, r.guard, call{operation: "task_lists.delete_by_id", table: tableTaskLists},
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, r.next.DeleteByID(ctx, id)
		})
	return err
}

// TaskRepository wraps a ports.TaskRepository.
type TaskRepository struct {
	guard *Guard
	next  ports.TaskRepository
}

// Tasks decorates next with the guard's pipeline.
func (g *Guard) Tasks(next ports.TaskRepository) *TaskRepository {
	return &TaskRepository{guard: g, next: next}
}

func (r *TaskRepository) FindByTaskListID(ctx context.Context, taskListID uuid.UUID) ([]task.Task, error) {
	return execute(ctx, r.guard, call{operation: "tasks.find_by_task_list_id", table: tableTasks, read: true},
		func(ctx context.Context) ([]task.Task, error) {
			return r.next.FindByTaskListID(ctx, taskListID)
		})
}

func (r *TaskRepository) FindByTaskListIDAndID(ctx context.Context, taskListID, taskID uuid.UUID) (*task.Task, error) {
	return execute(ctx, r.guard, call{operation: "tasks.find_by_task_list_id_and_id", table: tableTasks, read: true},
		func(ctx context.Context) (*task.Task, error) {
			return r.next.FindByTaskListIDAndID(ctx, taskListID, taskID)
		})
}

func (r *TaskRepository) ExistsByTaskListIDAndID(ctx context.Context, taskListID, taskID uuid.UUID) (bool, error) {
	return execute(ctx, r.guard, call{operation: "tasks.exists_by_task_list_id_and_id", table: tableTasks, read: true},
		func(ctx context.Context) (bool, error) {
			return r.next.ExistsByTaskListIDAndID(ctx, taskListID, taskID)
		})
}

func (r *TaskRepository) Save(ctx context.Context, t *task.Task) (*task.Task, error) {
	return execute(ctx, r.guard, call{operation: "tasks.save", table: tableTasks},
		func(ctx context.Context) (*task.Task, error) {
			return r.next.Save(ctx, t)
		})
}

func (r *TaskRepository) DeleteByTaskListIDAndID(ctx context.Context, taskListID, taskID uuid.UUID) error {
	_, err := execute(ctx, r.guard, call{operation: "tasks.delete_by_task_list_id_and_id", table: tableTasks},
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, r.next.DeleteByTaskListIDAndID(ctx, taskListID, taskID)
		})
	return err
}
