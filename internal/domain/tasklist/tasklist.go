// Package tasklist holds the TaskList aggregate: a titled group of tasks
// and the progress derived from them.
package tasklist

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/domain/task"
)

// TaskList groups tasks under a title. Tasks is nil when the collection was
// not loaded and non-nil (possibly empty) when it was.
type TaskList struct {
	ID          uuid.UUID
	Title       string
	Description string
	Tasks       []task.Task
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidateNew checks the rules a client-supplied candidate must satisfy
// before it can be created.
func (l *TaskList) ValidateNew() error {
	fields := make(map[string]string)

	if l.ID != uuid.Nil {
		fields["id"] = domain.MsgMustNotBeSet
	}
	if strings.TrimSpace(l.Title) == "" {
		fields["title"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// New builds an unsaved list from a validated candidate. Nested tasks on the
// candidate are discarded; the result carries an empty, loaded collection.
func New(candidate *TaskList, now time.Time) *TaskList {
	return &TaskList{
		Title:       candidate.Title,
		Description: candidate.Description,
		Tasks:       []task.Task{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Patch carries the fields of a partial update.
type Patch struct {
	Title       domain.Optional[string]
	Description domain.Optional[string]
}

// Apply merges p into l and sets UpdatedAt to now unconditionally.
// A blank title is ignored; a present description always overwrites,
// including with the empty string.
func (l *TaskList) Apply(p Patch, now time.Time) {
	if title, ok := p.Title.Get(); ok && strings.TrimSpace(title) != "" {
		l.Title = title
	}
	if desc, ok := p.Description.Get(); ok {
		l.Description = desc
	}
	l.UpdatedAt = now
}
