package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/task-tracker/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/task-tracker/internal/domain/task"
	"github.com/jsamuelsen11/task-tracker/internal/domain/tasklist"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func listParams(id uuid.UUID) map[string]string {
	return map[string]string{handlers.ParamTaskListID: id.String()}
}

func taskParams(listID, taskID uuid.UUID) map[string]string {
	return map[string]string{
		handlers.ParamTaskListID: listID.String(),
		handlers.ParamTaskID:     taskID.String(),
	}
}

func validTask(listID uuid.UUID) task.Task {
	return task.Task{
		ID:          uuid.New(),
		Title:       "Buy groceries",
		Description: "Milk, eggs, bread",
		Status:      task.StatusOpen,
		Priority:    task.PriorityMedium,
		TaskListID:  listID,
		CreatedAt:   testTime,
		UpdatedAt:   testTime,
	}
}

func validTaskList() tasklist.TaskList {
	id := uuid.New()
	return tasklist.TaskList{
		ID:          id,
		Title:       "Home",
		Description: "Chores",
		Tasks:       []task.Task{validTask(id)},
		CreatedAt:   testTime,
		UpdatedAt:   testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func rawBody(s string) *strings.Reader {
	return strings.NewReader(s)
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
