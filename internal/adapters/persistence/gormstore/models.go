package gormstore

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/task-tracker/internal/domain/task"
	"github.com/jsamuelsen11/task-tracker/internal/domain/tasklist"
)

// Timestamps are owned by the application services, so GORM's automatic
// create/update tracking is disabled on both models.

type taskListModel struct {
	ID          string      `gorm:"type:char(36);primaryKey"`
	Title       string      `gorm:"size:255;not null"`
	Description string      `gorm:"type:text"`
	CreatedAt   time.Time   `gorm:"autoCreateTime:false;not null"`
	UpdatedAt   time.Time   `gorm:"autoUpdateTime:false;not null"`
	Tasks       []taskModel `gorm:"foreignKey:TaskListID;references:ID"`
}

func (taskListModel) TableName() string { return "task_lists" }

type taskModel struct {
	ID          string     `gorm:"type:char(36);primaryKey"`
	Title       string     `gorm:"size:255;not null"`
	Description string     `gorm:"type:text"`
	DueDate     *time.Time `gorm:"column:due_date"`
	Status      string     `gorm:"size:16;not null"`
	Priority    string     `gorm:"size:16;not null"`
	TaskListID  string     `gorm:"type:char(36);not null;index:idx_tasks_task_list_id"`
	CreatedAt   time.Time  `gorm:"autoCreateTime:false;not null"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime:false;not null"`
}

func (taskModel) TableName() string { return "tasks" }

func fromTaskList(l *tasklist.TaskList) taskListModel {
	return taskListModel{
		ID:          l.ID.String(),
		Title:       l.Title,
		Description: l.Description,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

// toTaskList converts m. When withTasks is false the result has a nil
// (not loaded) task collection.
func (m *taskListModel) toTaskList(withTasks bool) (tasklist.TaskList, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return tasklist.TaskList{}, fmt.Errorf("parsing task list id %q: %w", m.ID, err)
	}

	l := tasklist.TaskList{
		ID:          id,
		Title:       m.Title,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if !withTasks {
		return l, nil
	}

	l.Tasks = make([]task.Task, 0, len(m.Tasks))
	for i := range m.Tasks {
		t, err := m.Tasks[i].toTask()
		if err != nil {
			return tasklist.TaskList{}, err
		}
		l.Tasks = append(l.Tasks, t)
	}
	return l, nil
}

func fromTask(t *task.Task) taskModel {
	return taskModel{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		TaskListID:  t.TaskListID.String(),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (m *taskModel) toTask() (task.Task, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return task.Task{}, fmt.Errorf("parsing task id %q: %w", m.ID, err)
	}
	listID, err := uuid.Parse(m.TaskListID)
	if err != nil {
		return task.Task{}, fmt.Errorf("parsing task list id %q: %w", m.TaskListID, err)
	}

	var due *time.Time
	if m.DueDate != nil {
		d := *m.DueDate
		due = &d
	}

	return task.Task{
		ID:          id,
		Title:       m.Title,
		Description: m.Description,
		DueDate:     due,
		Status:      task.Status(m.Status),
		Priority:    task.Priority(m.Priority),
		TaskListID:  listID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}, nil
}
