package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/domain/task"
	"github.com/jsamuelsen11/task-tracker/mocks"
)

func storedTask(listID, id uuid.UUID) *task.Task {
	created := fixedNow.Add(-2 * time.Hour)
	due := fixedNow.Add(24 * time.Hour)
	return &task.Task{
		ID:          id,
		Title:       "Buy milk",
		Description: "semi-skimmed",
		DueDate:     &due,
		Status:      task.StatusOpen,
		Priority:    task.PriorityMedium,
		TaskListID:  listID,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func echoTask(id uuid.UUID) func(context.Context, *task.Task) (*task.Task, error) {
	return func(_ context.Context, t *task.Task) (*task.Task, error) {
		out := *t
		if out.ID == uuid.Nil {
			out.ID = id
		}
		return &out, nil
	}
}

func newTaskService(t *testing.T) (*TaskService, *mocks.MockTaskRepository, *mocks.MockTaskListRepository) {
	t.Helper()
	tasks := mocks.NewMockTaskRepository(t)
	lists := mocks.NewMockTaskListRepository(t)
	return NewTaskService(tasks, lists, discardLogger(), fixedClock()), tasks, lists
}

func TestNewTaskService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewTaskService(mocks.NewMockTaskRepository(t), mocks.NewMockTaskListRepository(t), nil)
	if svc.logger == nil {
		t.Fatal("NewTaskService(nil logger) should create a no-op logger, got nil")
	}
}

// --- ListTasks ---

func TestTaskService_ListTasks(t *testing.T) {
	t.Parallel()

	t.Run("returns tasks of the list", func(t *testing.T) {
		t.Parallel()
		svc, tasks, _ := newTaskService(t)

		listID := uuid.New()
		want := []task.Task{*storedTask(listID, uuid.New()), *storedTask(listID, uuid.New())}
		tasks.EXPECT().FindByTaskListID(mock.Anything, listID).Return(want, nil)

		got, err := svc.ListTasks(context.Background(), listID)
		if err != nil {
			t.Fatalf("ListTasks() error = %v, want nil", err)
		}
		if len(got) != 2 {
			t.Errorf("ListTasks() len = %d, want 2", len(got))
		}
	})

	t.Run("unknown list yields empty result", func(t *testing.T) {
		t.Parallel()
		svc, tasks, _ := newTaskService(t)

		listID := uuid.New()
		tasks.EXPECT().FindByTaskListID(mock.Anything, listID).Return(nil, nil)

		got, err := svc.ListTasks(context.Background(), listID)
		if err != nil {
			t.Fatalf("ListTasks() error = %v, want nil", err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("ListTasks() = %v, want empty non-nil slice", got)
		}
	})

	t.Run("propagates repository failure", func(t *testing.T) {
		t.Parallel()
		svc, tasks, _ := newTaskService(t)

		listID := uuid.New()
		tasks.EXPECT().FindByTaskListID(mock.Anything, listID).Return(nil, domain.ErrUnavailable)

		_, err := svc.ListTasks(context.Background(), listID)
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("ListTasks() error = %v, want ErrUnavailable", err)
		}
	})
}

// --- CreateTask ---

func TestTaskService_CreateTask(t *testing.T) {
	t.Parallel()

	t.Run("applies defaults and binds list", func(t *testing.T) {
		t.Parallel()
		svc, tasks, lists := newTaskService(t)

		listID, newID := uuid.New(), uuid.New()
		lists.EXPECT().ExistsByID(mock.Anything, listID).Return(true, nil)
		tasks.EXPECT().
			Save(mock.Anything, mock.MatchedBy(func(tk *task.Task) bool {
				return tk.ID == uuid.Nil && tk.TaskListID == listID
			})).
			RunAndReturn(echoTask(newID))

		got, err := svc.CreateTask(context.Background(), listID, &task.Task{Title: "Buy milk"})
		if err != nil {
			t.Fatalf("CreateTask() error = %v, want nil", err)
		}
		if got.ID != newID {
			t.Errorf("ID = %v, want %v", got.ID, newID)
		}
		if got.Priority != task.PriorityMedium || got.Status != task.StatusOpen {
			t.Errorf("Priority/Status = %q/%q, want MEDIUM/OPEN", got.Priority, got.Status)
		}
		if !got.CreatedAt.Equal(fixedNow) || !got.UpdatedAt.Equal(fixedNow) {
			t.Errorf("timestamps = (%v, %v), want both %v", got.CreatedAt, got.UpdatedAt, fixedNow)
		}
	})

	t.Run("keeps explicit priority and status", func(t *testing.T) {
		t.Parallel()
		svc, tasks, lists := newTaskService(t)

		listID := uuid.New()
		lists.EXPECT().ExistsByID(mock.Anything, listID).Return(true, nil)
		tasks.EXPECT().Save(mock.Anything, mock.Anything).RunAndReturn(echoTask(uuid.New()))

		got, err := svc.CreateTask(context.Background(), listID, &task.Task{
			Title:    "Ship",
			Priority: task.PriorityHigh,
			Status:   task.StatusInProgress,
		})
		if err != nil {
			t.Fatalf("CreateTask() error = %v, want nil", err)
		}
		if got.Priority != task.PriorityHigh || got.Status != task.StatusInProgress {
			t.Errorf("Priority/Status = %q/%q, want HIGH/IN_PROGRESS", got.Priority, got.Status)
		}
	})

	t.Run("unknown list is invalid input", func(t *testing.T) {
		t.Parallel()
		svc, _, lists := newTaskService(t)

		listID := uuid.New()
		lists.EXPECT().ExistsByID(mock.Anything, listID).Return(false, nil)

		_, err := svc.CreateTask(context.Background(), listID, &task.Task{Title: "x"})
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("CreateTask() error = %v, want *ValidationError", err)
		}
		if _, ok := verr.Fields["taskListId"]; !ok {
			t.Errorf("Fields = %v, want taskListId key", verr.Fields)
		}
		if errors.Is(err, domain.ErrNotFound) {
			t.Error("unknown list reported as ErrNotFound, want ErrValidation only")
		}
	})

	tests := []struct {
		name      string
		candidate *task.Task
	}{
		{name: "nil candidate", candidate: nil},
		{name: "id already set", candidate: &task.Task{ID: uuid.New(), Title: "x"}},
		{name: "blank title", candidate: &task.Task{Title: " "}},
	}
	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			t.Parallel()
			svc, _, _ := newTaskService(t)

			_, err := svc.CreateTask(context.Background(), uuid.New(), tt.candidate)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("CreateTask() error = %v, want ErrValidation", err)
			}
		})
	}
}

// --- GetTask ---

func TestTaskService_GetTask(t *testing.T) {
	t.Parallel()

	t.Run("returns task for pair", func(t *testing.T) {
		t.Parallel()
		svc, tasks, _ := newTaskService(t)

		listID, taskID := uuid.New(), uuid.New()
		tasks.EXPECT().FindByTaskListIDAndID(mock.Anything, listID, taskID).Return(storedTask(listID, taskID), nil)

		got, found, err := svc.GetTask(context.Background(), listID, taskID)
		if err != nil || !found {
			t.Fatalf("GetTask() = (_, %v, %v), want (_, true, nil)", found, err)
		}
		if got.ID != taskID {
			t.Errorf("ID = %v, want %v", got.ID, taskID)
		}
	})

	t.Run("wrong list is absent", func(t *testing.T) {
		t.Parallel()
		svc, tasks, _ := newTaskService(t)

		otherList, taskID := uuid.New(), uuid.New()
		tasks.EXPECT().FindByTaskListIDAndID(mock.Anything, otherList, taskID).Return(nil, domain.ErrNotFound)

		got, found, err := svc.GetTask(context.Background(), otherList, taskID)
		if err != nil || found || got != nil {
			t.Errorf("GetTask() = (%v, %v, %v), want (nil, false, nil)", got, found, err)
		}
	})
}

// --- UpdateTask ---

func TestTaskService_UpdateTask(t *testing.T) {
	t.Parallel()

	t.Run("applies patch", func(t *testing.T) {
		t.Parallel()
		svc, tasks, _ := newTaskService(t)

		listID, taskID := uuid.New(), uuid.New()
		tasks.EXPECT().FindByTaskListIDAndID(mock.Anything, listID, taskID).Return(storedTask(listID, taskID), nil)
		tasks.EXPECT().Save(mock.Anything, mock.Anything).RunAndReturn(echoTask(taskID))

		got, err := svc.UpdateTask(context.Background(), listID, taskID, task.Patch{
			Status:   domain.Some(task.StatusClosed),
			Priority: domain.Some(task.PriorityLow),
		})
		if err != nil {
			t.Fatalf("UpdateTask() error = %v, want nil", err)
		}
		if got.Status != task.StatusClosed || got.Priority != task.PriorityLow {
			t.Errorf("Status/Priority = %q/%q, want CLOSED/LOW", got.Status, got.Priority)
		}
		if got.Title != "Buy milk" {
			t.Errorf("Title = %q, want unchanged", got.Title)
		}
		if !got.UpdatedAt.Equal(fixedNow) {
			t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, fixedNow)
		}
	})

	t.Run("past due date is rejected without saving", func(t *testing.T) {
		t.Parallel()
		svc, tasks, _ := newTaskService(t)

		listID, taskID := uuid.New(), uuid.New()
		tasks.EXPECT().FindByTaskListIDAndID(mock.Anything, listID, taskID).Return(storedTask(listID, taskID), nil)

		_, err := svc.UpdateTask(context.Background(), listID, taskID, task.Patch{
			DueDate: domain.Some(fixedNow.Add(-time.Hour)),
		})
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("UpdateTask() error = %v, want *ValidationError", err)
		}
		if verr.Fields["dueDate"] != task.MsgDueDateInPast {
			t.Errorf("Fields[dueDate] = %q, want %q", verr.Fields["dueDate"], task.MsgDueDateInPast)
		}
	})

	t.Run("missing pair is not found", func(t *testing.T) {
		t.Parallel()
		svc, tasks, _ := newTaskService(t)

		listID, taskID := uuid.New(), uuid.New()
		tasks.EXPECT().FindByTaskListIDAndID(mock.Anything, listID, taskID).Return(nil, domain.ErrNotFound)

		_, err := svc.UpdateTask(context.Background(), listID, taskID, task.Patch{})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("UpdateTask() error = %v, want ErrNotFound", err)
		}
	})
}

// --- DeleteTask ---

func TestTaskService_DeleteTask(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing pair", func(t *testing.T) {
		t.Parallel()
		svc, tasks, _ := newTaskService(t)

		listID, taskID := uuid.New(), uuid.New()
		tasks.EXPECT().ExistsByTaskListIDAndID(mock.Anything, listID, taskID).Return(true, nil)
		tasks.EXPECT().DeleteByTaskListIDAndID(mock.Anything, listID, taskID).Return(nil)

		if err := svc.DeleteTask(context.Background(), listID, taskID); err != nil {
			t.Errorf("DeleteTask() error = %v, want nil", err)
		}
	})

	t.Run("missing pair is not found", func(t *testing.T) {
		t.Parallel()
		svc, tasks, _ := newTaskService(t)

		listID, taskID := uuid.New(), uuid.New()
		tasks.EXPECT().ExistsByTaskListIDAndID(mock.Anything, listID, taskID).Return(false, nil)

		err := svc.DeleteTask(context.Background(), listID, taskID)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("DeleteTask() error = %v, want ErrNotFound", err)
		}
	})
}
