// Package task holds the Task entity, its enumerations and its
// partial-update rules.
package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
)

// MsgDueDateInPast is reported when a patch sets a due date earlier than now.
const MsgDueDateInPast = "cannot be in the past"

// Default values applied on creation when the candidate leaves them unset.
const (
	DefaultStatus   = StatusOpen
	DefaultPriority = PriorityMedium
)

// Task is a unit of work that belongs to exactly one task list.
// A zero ID means the task has not been persisted yet.
type Task struct {
	ID          uuid.UUID
	Title       string
	Description string
	DueDate     *time.Time
	Status      Status
	Priority    Priority
	TaskListID  uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidateNew checks the rules a client-supplied candidate must satisfy
// before it can be created. Empty Status and Priority are allowed and mean
// "use the default".
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (t *Task) ValidateNew() error {
	fields := make(map[string]string)

	if t.ID != uuid.Nil {
		fields["id"] = domain.MsgMustNotBeSet
	}
	if strings.TrimSpace(t.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if t.Status != "" && !t.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", t.Status)
	}
	if t.Priority != "" && !t.Priority.IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", t.Priority)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// New builds an unsaved task bound to taskListID from a validated candidate.
// Unset status and priority take their defaults, and both timestamps are now.
// Any identifier or list reference carried by the candidate is ignored.
func New(taskListID uuid.UUID, candidate *Task, now time.Time) *Task {
	status := candidate.Status
	if status == "" {
		status = DefaultStatus
	}
	priority := candidate.Priority
	if priority == "" {
		priority = DefaultPriority
	}

	var due *time.Time
	if candidate.DueDate != nil {
		d := *candidate.DueDate
		due = &d
	}

	return &Task{
		Title:       candidate.Title,
		Description: candidate.Description,
		DueDate:     due,
		Status:      status,
		Priority:    priority,
		TaskListID:  taskListID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Patch carries the fields of a partial update. Absent fields leave the
// task untouched.
type Patch struct {
	Title       domain.Optional[string]
	Description domain.Optional[string]
	DueDate     domain.Optional[time.Time]
	Status      domain.Optional[Status]
	Priority    domain.Optional[Priority]
}

// Apply merges p into t and refreshes UpdatedAt, even when no field changes.
//
// Title and description are applied only when present and non-blank; status,
// priority and due date whenever present. A due date strictly before now is
// rejected. The patch is validated as a whole first, so a rejected patch
// leaves t unchanged.
func (t *Task) Apply(p Patch, now time.Time) error {
	if err := p.validate(now); err != nil {
		return err
	}

	if title, ok := p.Title.Get(); ok && strings.TrimSpace(title) != "" {
		t.Title = title
	}
	if desc, ok := p.Description.Get(); ok && strings.TrimSpace(desc) != "" {
		t.Description = desc
	}
	if due, ok := p.DueDate.Get(); ok {
		t.DueDate = &due
	}
	if status, ok := p.Status.Get(); ok {
		t.Status = status
	}
	if priority, ok := p.Priority.Get(); ok {
		t.Priority = priority
	}

	t.UpdatedAt = now
	return nil
}

func (p Patch) validate(now time.Time) error {
	fields := make(map[string]string)

	if due, ok := p.DueDate.Get(); ok && due.Before(now) {
		fields["dueDate"] = MsgDueDateInPast
	}
	if status, ok := p.Status.Get(); ok && !status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", status)
	}
	if priority, ok := p.Priority.Get(); ok && !priority.IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", priority)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
