package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/task-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/task-tracker/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/domain/task"
	"github.com/jsamuelsen11/task-tracker/mocks"
)

func newTaskHandler(t *testing.T) (*handlers.TaskHandler, *mocks.MockTaskService) {
	t.Helper()
	svc := mocks.NewMockTaskService(t)
	return handlers.NewTaskHandler(svc), svc
}

func tasksURL(listID uuid.UUID) string {
	return "/task-lists/" + listID.String() + "/tasks"
}

func taskURL(listID, taskID uuid.UUID) string {
	return tasksURL(listID) + "/" + taskID.String()
}

// --- ListTasks ---

func TestListTasks_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	listID := uuid.New()
	svc.EXPECT().ListTasks(mock.Anything, listID).Return([]task.Task{validTask(listID)}, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, tasksURL(listID), nil), listParams(listID))
	h.ListTasks(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[[]dto.TaskResponse](t, rec)
	require.Len(t, resp, 1)
	require.Equal(t, "OPEN", resp[0].Status)
}

func TestListTasks_UnknownListIsEmpty(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	listID := uuid.New()
	svc.EXPECT().ListTasks(mock.Anything, listID).Return([]task.Task{}, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, tasksURL(listID), nil), listParams(listID))
	h.ListTasks(rec, req)

	requireStatus(t, rec, http.StatusOK)
	require.JSONEq(t, "[]", rec.Body.String())
}

// --- CreateTask ---

func TestCreateTask_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	listID := uuid.New()
	created := validTask(listID)
	created.Priority = task.PriorityHigh
	svc.EXPECT().CreateTask(mock.Anything, listID, mock.MatchedBy(func(c *task.Task) bool {
		return c.Title == "Buy groceries" && c.Priority == task.PriorityHigh && c.Status == ""
	})).Return(&created, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodPost, tasksURL(listID), rawBody(`{"title":"Buy groceries","priority":"HIGH"}`)),
		listParams(listID),
	)
	h.CreateTask(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.TaskResponse](t, rec)
	require.Equal(t, "HIGH", resp.Priority)
	require.Equal(t, "OPEN", resp.Status)
}

func TestCreateTask_InvalidPriority(t *testing.T) {
	t.Parallel()
	h, _ := newTaskHandler(t)

	listID := uuid.New()
	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodPost, tasksURL(listID), rawBody(`{"title":"x","priority":"HIG"}`)),
		listParams(listID),
	)
	h.CreateTask(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	require.Equal(t, "Invalid value 'HIG' for field 'priority'. Allowed values are: [LOW, MEDIUM, HIGH]", resp.Detail)
}

func TestCreateTask_UnknownList(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	listID := uuid.New()
	svc.EXPECT().CreateTask(mock.Anything, listID, mock.Anything).
		Return(nil, domain.NewValidationError("taskListId", "task list does not exist"))

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodPost, tasksURL(listID), rawBody(`{"title":"x"}`)), listParams(listID))
	h.CreateTask(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- GetTask ---

func TestGetTask_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	listID := uuid.New()
	tk := validTask(listID)
	svc.EXPECT().GetTask(mock.Anything, listID, tk.ID).Return(&tk, true, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, taskURL(listID, tk.ID), nil), taskParams(listID, tk.ID))
	h.GetTask(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TaskResponse](t, rec)
	require.Equal(t, tk.ID, resp.ID)
}

func TestGetTask_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	listID, taskID := uuid.New(), uuid.New()
	svc.EXPECT().GetTask(mock.Anything, listID, taskID).Return(nil, false, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, taskURL(listID, taskID), nil), taskParams(listID, taskID))
	h.GetTask(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

func TestGetTask_InvalidTaskID(t *testing.T) {
	t.Parallel()
	h, _ := newTaskHandler(t)

	listID := uuid.New()
	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, tasksURL(listID)+"/nope", nil), map[string]string{
		handlers.ParamTaskListID: listID.String(),
		handlers.ParamTaskID:     "nope",
	})
	h.GetTask(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	require.Len(t, resp.Errors, 1)
	require.Equal(t, handlers.ParamTaskID, resp.Errors[0].Location)
}

// --- UpdateTask ---

func TestUpdateTask_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	listID := uuid.New()
	updated := validTask(listID)
	updated.Status = task.StatusClosed
	svc.EXPECT().UpdateTask(mock.Anything, listID, updated.ID, mock.MatchedBy(func(p task.Patch) bool {
		status, ok := p.Status.Get()
		return ok && status == task.StatusClosed && !p.Title.IsSet()
	})).Return(&updated, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodPut, taskURL(listID, updated.ID), rawBody(`{"status":"CLOSED"}`)),
		taskParams(listID, updated.ID),
	)
	h.UpdateTask(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TaskResponse](t, rec)
	require.Equal(t, "CLOSED", resp.Status)
}

func TestUpdateTask_DueDateInPast(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	listID, taskID := uuid.New(), uuid.New()
	svc.EXPECT().UpdateTask(mock.Anything, listID, taskID, mock.Anything).
		Return(nil, domain.NewValidationError("dueDate", task.MsgDueDateInPast))

	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodPatch, taskURL(listID, taskID), rawBody(`{"dueDate":"2000-01-01T00:00:00"}`)),
		taskParams(listID, taskID),
	)
	h.UpdateTask(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- DeleteTask ---

func TestDeleteTask_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	listID, taskID := uuid.New(), uuid.New()
	svc.EXPECT().DeleteTask(mock.Anything, listID, taskID).Return(nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodDelete, taskURL(listID, taskID), nil), taskParams(listID, taskID))
	h.DeleteTask(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
}

func TestDeleteTask_InternalErrorHidesCause(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	listID, taskID := uuid.New(), uuid.New()
	svc.EXPECT().DeleteTask(mock.Anything, listID, taskID).Return(errors.New("disk on fire"))

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodDelete, taskURL(listID, taskID), nil), taskParams(listID, taskID))
	h.DeleteTask(rec, req)

	requireStatus(t, rec, http.StatusInternalServerError)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	require.Equal(t, dto.MsgInternal, resp.Detail)
}
