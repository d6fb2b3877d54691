// Package memory provides an in-process implementation of the task list and
// task repository ports. State lives in maps guarded by a single RWMutex, so
// every repository call is atomic. Values are copied on the way in and out;
// callers never alias stored state.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/domain/task"
	"github.com/jsamuelsen11/task-tracker/internal/domain/tasklist"
	"github.com/jsamuelsen11/task-tracker/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TaskListRepository = (*TaskListRepository)(nil)
	_ ports.TaskRepository     = (*TaskRepository)(nil)
)

// Store holds task lists and tasks. Use TaskLists and Tasks to obtain the
// repository views; both share the same state.
type Store struct {
	mu    sync.RWMutex
	lists map[uuid.UUID]tasklist.TaskList
	tasks map[uuid.UUID]task.Task
	newID func() uuid.UUID
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		lists: make(map[uuid.UUID]tasklist.TaskList),
		tasks: make(map[uuid.UUID]task.Task),
		newID: uuid.New,
	}
}

// TaskLists returns the task list repository backed by s.
func (s *Store) TaskLists() *TaskListRepository {
	return &TaskListRepository{store: s}
}

// Tasks returns the task repository backed by s.
func (s *Store) Tasks() *TaskRepository {
	return &TaskRepository{store: s}
}

// tasksOf returns copies of the tasks owned by listID in creation order.
// Callers must hold at least the read lock. The result is never nil.
func (s *Store) tasksOf(listID uuid.UUID) []task.Task {
	out := []task.Task{}
	for _, t := range s.tasks {
		if t.TaskListID == listID {
			out = append(out, copyTask(t))
		}
	}
	slices.SortFunc(out, func(a, b task.Task) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})
	return out
}

func (s *Store) loadList(l tasklist.TaskList) tasklist.TaskList {
	l.Tasks = s.tasksOf(l.ID)
	return l
}

func copyTask(t task.Task) task.Task {
	if t.DueDate != nil {
		d := *t.DueDate
		t.DueDate = &d
	}
	return t
}

// TaskListRepository implements ports.TaskListRepository over a Store.
type TaskListRepository struct {
	store *Store
}

// FindAll returns every list ordered by creation time, tasks loaded.
func (r *TaskListRepository) FindAll(_ context.Context) ([]tasklist.TaskList, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]tasklist.TaskList, 0, len(s.lists))
	for _, l := range s.lists {
		out = append(out, s.loadList(l))
	}
	slices.SortFunc(out, func(a, b tasklist.TaskList) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})
	return out, nil
}

// FindByID returns the list with its tasks loaded.
func (r *TaskListRepository) FindByID(_ context.Context, id uuid.UUID) (*tasklist.TaskList, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.lists[id]
	if !ok {
		return nil, fmt.Errorf("task list %s: %w", id, domain.ErrNotFound)
	}
	loaded := s.loadList(l)
	return &loaded, nil
}

// ExistsByID reports whether the list is stored.
func (r *TaskListRepository) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.lists[id]
	return ok, nil
}

// Save inserts or overwrites the list record. Nested tasks are ignored and
// the returned copy carries no task collection.
func (r *TaskListRepository) Save(_ context.Context, list *tasklist.TaskList) (*tasklist.TaskList, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := *list
	rec.Tasks = nil
	if rec.ID == uuid.Nil {
		rec.ID = s.newID()
	}
	s.lists[rec.ID] = rec

	out := rec
	return &out, nil
}

// DeleteByID removes the list and every task it owns.
func (r *TaskListRepository) DeleteByID(_ context.Context, id uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lists[id]; !ok {
		return fmt.Errorf("task list %s: %w", id, domain.ErrNotFound)
	}
	for tid, t := range s.tasks {
		if t.TaskListID == id {
			delete(s.tasks, tid)
		}
	}
	delete(s.lists, id)
	return nil
}

// TaskRepository implements ports.TaskRepository over a Store.
type TaskRepository struct {
	store *Store
}

// FindByTaskListID returns the list's tasks in creation order.
func (r *TaskRepository) FindByTaskListID(_ context.Context, taskListID uuid.UUID) ([]task.Task, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tasksOf(taskListID), nil
}

// FindByTaskListIDAndID returns the task only if it belongs to taskListID.
func (r *TaskRepository) FindByTaskListIDAndID(_ context.Context, taskListID, taskID uuid.UUID) (*task.Task, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[taskID]
	if !ok || t.TaskListID != taskListID {
		return nil, fmt.Errorf("task %s in task list %s: %w", taskID, taskListID, domain.ErrNotFound)
	}
	out := copyTask(t)
	return &out, nil
}

// ExistsByTaskListIDAndID reports whether the pair is stored.
func (r *TaskRepository) ExistsByTaskListIDAndID(_ context.Context, taskListID, taskID uuid.UUID) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[taskID]
	return ok && t.TaskListID == taskListID, nil
}

// Save inserts or overwrites the task.
func (r *TaskRepository) Save(_ context.Context, t *task.Task) (*task.Task, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := copyTask(*t)
	if rec.ID == uuid.Nil {
		rec.ID = s.newID()
	}
	s.tasks[rec.ID] = rec

	out := copyTask(rec)
	return &out, nil
}

// DeleteByTaskListIDAndID removes the task for the pair.
func (r *TaskRepository) DeleteByTaskListIDAndID(_ context.Context, taskListID, taskID uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[taskID]
	if !ok || t.TaskListID != taskListID {
		return fmt.Errorf("task %s in task list %s: %w", taskID, taskListID, domain.ErrNotFound)
	}
	delete(s.tasks, taskID)
	return nil
}
