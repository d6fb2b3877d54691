package tasklist

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/domain/task"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestTaskList_ValidateNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		candidate TaskList
		wantField string
	}{
		{name: "valid", candidate: TaskList{Title: "Groceries"}},
		{name: "id already set", candidate: TaskList{ID: uuid.New(), Title: "x"}, wantField: "id"},
		{name: "empty title", candidate: TaskList{}, wantField: "title"},
		{name: "whitespace title", candidate: TaskList{Title: "   "}, wantField: "title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.candidate.ValidateNew()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("ValidateNew() = %v, want nil", err)
				}
				return
			}

			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("errors.Is(err, ErrValidation) = false, got %v", err)
			}
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
			}
			if _, ok := verr.Fields[tt.wantField]; !ok {
				t.Errorf("Fields missing key %q, got %v", tt.wantField, verr.Fields)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	candidate := &TaskList{
		Title:       "Groceries",
		Description: "weekly",
		Tasks:       []task.Task{{Title: "nested"}},
	}

	got := New(candidate, fixedNow)

	if got.Title != "Groceries" || got.Description != "weekly" {
		t.Errorf("Title/Description = %q/%q", got.Title, got.Description)
	}
	if got.Tasks == nil || len(got.Tasks) != 0 {
		t.Errorf("Tasks = %v, want empty loaded collection", got.Tasks)
	}
	if !got.CreatedAt.Equal(fixedNow) || !got.UpdatedAt.Equal(fixedNow) {
		t.Errorf("timestamps = (%v, %v), want both %v", got.CreatedAt, got.UpdatedAt, fixedNow)
	}
}

func TestTaskList_Apply(t *testing.T) {
	t.Parallel()

	created := fixedNow.Add(-time.Hour)

	tests := []struct {
		name     string
		patch    Patch
		wantT    string
		wantDesc string
	}{
		{
			name:     "empty patch keeps fields",
			patch:    Patch{},
			wantT:    "Original",
			wantDesc: "orig",
		},
		{
			name:     "title and description overwrite",
			patch:    Patch{Title: domain.Some("Renamed"), Description: domain.Some("new")},
			wantT:    "Renamed",
			wantDesc: "new",
		},
		{
			name:     "blank title is ignored",
			patch:    Patch{Title: domain.Some("  ")},
			wantT:    "Original",
			wantDesc: "orig",
		},
		{
			name:     "empty description overwrites",
			patch:    Patch{Description: domain.Some("")},
			wantT:    "Original",
			wantDesc: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := TaskList{Title: "Original", Description: "orig", CreatedAt: created, UpdatedAt: created}
			l.Apply(tt.patch, fixedNow)

			if l.Title != tt.wantT {
				t.Errorf("Title = %q, want %q", l.Title, tt.wantT)
			}
			if l.Description != tt.wantDesc {
				t.Errorf("Description = %q, want %q", l.Description, tt.wantDesc)
			}
			if !l.UpdatedAt.Equal(fixedNow) {
				t.Errorf("UpdatedAt = %v, want %v", l.UpdatedAt, fixedNow)
			}
			if !l.CreatedAt.Equal(created) {
				t.Errorf("CreatedAt = %v, want %v", l.CreatedAt, created)
			}
		})
	}
}
