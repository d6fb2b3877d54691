package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/task-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/task-tracker/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/domain/tasklist"
	"github.com/jsamuelsen11/task-tracker/mocks"
)

func newTaskListHandler(t *testing.T) (*handlers.TaskListHandler, *mocks.MockTaskListService) {
	t.Helper()
	svc := mocks.NewMockTaskListService(t)
	return handlers.NewTaskListHandler(svc), svc
}

// --- ListTaskLists ---

func TestListTaskLists_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskListHandler(t)

	lists := []tasklist.TaskList{validTaskList()}
	svc.EXPECT().ListTaskLists(mock.Anything).Return(lists, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/task-lists", nil)
	h.ListTaskLists(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[[]dto.TaskListResponse](t, rec)
	require.Len(t, resp, 1)
	require.Equal(t, 1, resp[0].Count)
	require.NotNil(t, resp[0].Progress)
}

func TestListTaskLists_EmptyIsArray(t *testing.T) {
	t.Parallel()
	h, svc := newTaskListHandler(t)

	svc.EXPECT().ListTaskLists(mock.Anything).Return(nil, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/task-lists", nil)
	h.ListTaskLists(rec, req)

	requireStatus(t, rec, http.StatusOK)
	require.JSONEq(t, "[]", rec.Body.String())
}

func TestListTaskLists_ServiceUnavailable(t *testing.T) {
	t.Parallel()
	h, svc := newTaskListHandler(t)

	svc.EXPECT().ListTaskLists(mock.Anything).Return(nil, domain.ErrUnavailable)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/task-lists", nil)
	h.ListTaskLists(rec, req)

	requireStatus(t, rec, http.StatusServiceUnavailable)
}

// --- CreateTaskList ---

func TestCreateTaskList_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskListHandler(t)

	created := validTaskList()
	created.Tasks = nil
	svc.EXPECT().CreateTaskList(mock.Anything, mock.MatchedBy(func(l *tasklist.TaskList) bool {
		return l.Title == "Home" && l.ID == uuid.Nil
	})).Return(&created, nil)

	body := jsonBody(t, map[string]string{"title": "Home", "description": "Chores"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/task-lists", body)
	h.CreateTaskList(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.TaskListResponse](t, rec)
	require.Equal(t, created.ID, resp.ID)
	require.Nil(t, resp.Progress)
}

func TestCreateTaskList_ValidationError(t *testing.T) {
	t.Parallel()
	h, svc := newTaskListHandler(t)

	svc.EXPECT().CreateTaskList(mock.Anything, mock.Anything).
		Return(nil, domain.NewValidationError("title", domain.MsgRequired))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/task-lists", rawBody(`{"title":""}`))
	h.CreateTaskList(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	require.Equal(t, "uri=/task-lists", resp.Instance)
	require.Len(t, resp.Errors, 1)
	require.Equal(t, "title", resp.Errors[0].Location)
}

func TestCreateTaskList_MalformedBody(t *testing.T) {
	t.Parallel()
	h, _ := newTaskListHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/task-lists", rawBody(`{"title":`))
	h.CreateTaskList(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	require.Equal(t, dto.MsgInvalidRequestFormat, resp.Detail)
}

// --- GetTaskList ---

func TestGetTaskList_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskListHandler(t)

	list := validTaskList()
	svc.EXPECT().GetTaskList(mock.Anything, list.ID).Return(&list, true, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/task-lists/"+list.ID.String(), nil), listParams(list.ID))
	h.GetTaskList(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TaskListResponse](t, rec)
	require.Equal(t, "Home", resp.Title)
	require.Len(t, resp.Tasks, 1)
}

func TestGetTaskList_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newTaskListHandler(t)

	id := uuid.New()
	svc.EXPECT().GetTaskList(mock.Anything, id).Return(nil, false, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/task-lists/"+id.String(), nil), listParams(id))
	h.GetTaskList(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

func TestGetTaskList_InvalidID(t *testing.T) {
	t.Parallel()
	h, _ := newTaskListHandler(t)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/task-lists/abc", nil),
		map[string]string{handlers.ParamTaskListID: "abc"})
	h.GetTaskList(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- UpdateTaskList ---

func TestUpdateTaskList_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskListHandler(t)

	updated := validTaskList()
	updated.Title = "Garden"
	svc.EXPECT().UpdateTaskList(mock.Anything, updated.ID, mock.MatchedBy(func(p tasklist.Patch) bool {
		title, ok := p.Title.Get()
		return ok && title == "Garden" && !p.Description.IsSet()
	})).Return(&updated, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodPut, "/task-lists/"+updated.ID.String(), rawBody(`{"title":"Garden"}`)),
		listParams(updated.ID),
	)
	h.UpdateTaskList(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TaskListResponse](t, rec)
	require.Equal(t, "Garden", resp.Title)
}

func TestUpdateTaskList_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newTaskListHandler(t)

	id := uuid.New()
	svc.EXPECT().UpdateTaskList(mock.Anything, id, mock.Anything).Return(nil, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodPatch, "/task-lists/"+id.String(), rawBody(`{}`)), listParams(id))
	h.UpdateTaskList(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

// --- DeleteTaskList ---

func TestDeleteTaskList_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskListHandler(t)

	id := uuid.New()
	svc.EXPECT().DeleteTaskList(mock.Anything, id).Return(nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodDelete, "/task-lists/"+id.String(), nil), listParams(id))
	h.DeleteTaskList(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
	require.Zero(t, rec.Body.Len())
}

func TestDeleteTaskList_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newTaskListHandler(t)

	id := uuid.New()
	svc.EXPECT().DeleteTaskList(mock.Anything, id).Return(domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodDelete, "/task-lists/"+id.String(), nil), listParams(id))
	h.DeleteTaskList(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}
