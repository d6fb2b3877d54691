package gormstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/domain/task"
	"github.com/jsamuelsen11/task-tracker/internal/domain/tasklist"
)

const creationOrder = "created_at, id"

func orderedTasks(db *gorm.DB) *gorm.DB {
	return db.Order(creationOrder)
}

// TaskListRepository implements ports.TaskListRepository.
type TaskListRepository struct {
	db *gorm.DB
}

// FindAll returns every list in creation order with tasks preloaded.
func (r *TaskListRepository) FindAll(ctx context.Context) ([]tasklist.TaskList, error) {
	var models []taskListModel
	err := r.db.WithContext(ctx).
		Preload("Tasks", orderedTasks).
		Order(creationOrder).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("querying task lists: %w", err)
	}

	out := make([]tasklist.TaskList, 0, len(models))
	for i := range models {
		l, err := models[i].toTaskList(true)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

// FindByID returns the list with tasks preloaded.
func (r *TaskListRepository) FindByID(ctx context.Context, id uuid.UUID) (*tasklist.TaskList, error) {
	var m taskListModel
	err := r.db.WithContext(ctx).
		Preload("Tasks", orderedTasks).
		Where("id = ?", id.String()).
		Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("task list %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying task list: %w", err)
	}

	l, err := m.toTaskList(true)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// ExistsByID reports whether the list is stored.
func (r *TaskListRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&taskListModel{}).
		Where("id = ?", id.String()).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("counting task lists: %w", err)
	}
	return n > 0, nil
}

// Save inserts the list when its ID is nil and overwrites it otherwise.
// Associations are never written; the returned list has no task collection.
func (r *TaskListRepository) Save(ctx context.Context, list *tasklist.TaskList) (*tasklist.TaskList, error) {
	m := fromTaskList(list)
	db := r.db.WithContext(ctx).Omit(clause.Associations)

	var err error
	if list.ID == uuid.Nil {
		m.ID = uuid.NewString()
		err = db.Create(&m).Error
	} else {
		err = db.Save(&m).Error
	}
	if err != nil {
		return nil, fmt.Errorf("saving task list: %w", err)
	}

	saved, err := m.toTaskList(false)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// DeleteByID removes the list and its tasks in one transaction.
func (r *TaskListRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_list_id = ?", id.String()).Delete(&taskModel{}).Error; err != nil {
			return fmt.Errorf("deleting tasks of task list: %w", err)
		}
		res := tx.Where("id = ?", id.String()).Delete(&taskListModel{})
		if res.Error != nil {
			return fmt.Errorf("deleting task list: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("task list %s: %w", id, domain.ErrNotFound)
		}
		return nil
	})
}

// TaskRepository implements ports.TaskRepository.
type TaskRepository struct {
	db *gorm.DB
}

// FindByTaskListID returns the list's tasks in creation order.
func (r *TaskRepository) FindByTaskListID(ctx context.Context, taskListID uuid.UUID) ([]task.Task, error) {
	var models []taskModel
	err := r.db.WithContext(ctx).
		Where("task_list_id = ?", taskListID.String()).
		Order(creationOrder).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}

	out := make([]task.Task, 0, len(models))
	for i := range models {
		t, err := models[i].toTask()
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// FindByTaskListIDAndID returns the task only if it belongs to taskListID.
func (r *TaskRepository) FindByTaskListIDAndID(ctx context.Context, taskListID, taskID uuid.UUID) (*task.Task, error) {
	var m taskModel
	err := r.db.WithContext(ctx).
		Where("task_list_id = ? AND id = ?", taskListID.String(), taskID.String()).
		Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("task %s in task list %s: %w", taskID, taskListID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying task: %w", err)
	}

	t, err := m.toTask()
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ExistsByTaskListIDAndID reports whether the pair is stored.
func (r *TaskRepository) ExistsByTaskListIDAndID(ctx context.Context, taskListID, taskID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&taskModel{}).
		Where("task_list_id = ? AND id = ?", taskListID.String(), taskID.String()).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("counting tasks: %w", err)
	}
	return n > 0, nil
}

// Save inserts the task when its ID is nil and overwrites it otherwise.
func (r *TaskRepository) Save(ctx context.Context, t *task.Task) (*task.Task, error) {
	m := fromTask(t)
	db := r.db.WithContext(ctx)

	var err error
	if t.ID == uuid.Nil {
		m.ID = uuid.NewString()
		err = db.Create(&m).Error
	} else {
		err = db.Save(&m).Error
	}
	if err != nil {
		return nil, fmt.Errorf("saving task: %w", err)
	}

	saved, err := m.toTask()
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// DeleteByTaskListIDAndID removes the task for the pair.
func (r *TaskRepository) DeleteByTaskListIDAndID(ctx context.Context, taskListID, taskID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("task_list_id = ? AND id = ?", taskListID.String(), taskID.String()).
		Delete(&taskModel{})
	if res.Error != nil {
		return fmt.Errorf("deleting task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("task %s in task list %s: %w", taskID, taskListID, domain.ErrNotFound)
	}
	return nil
}
