package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/boardd/internal/column"
	"github.com/fyrsmithlabs/boardd/internal/store"
	"github.com/fyrsmithlabs/boardd/internal/task"
)

func newTestServer(t *testing.T) (*Server, *store.Memory) {
	t.Helper()

	mem := store.NewMemory()
	tasks, err := task.NewService(mem, nil)
	require.NoError(t, err)
	columns, err := column.NewService(mem, nil)
	require.NoError(t, err)

	srv, err := NewServer(tasks, columns, nil, "localhost:0")
	require.NoError(t, err)
	return srv, mem
}

func doJSON(t *testing.T, srv *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echoContentType, "application/json")
	}

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

const echoContentType = "Content-Type"

func TestNewServer_RequiresServices(t *testing.T) {
	_, err := NewServer(nil, nil, nil, "localhost:0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "task service is required")
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestTasks_CRUD(t *testing.T) {
	srv, _ := newTestServer(t)

	// Empty list.
	rec := doJSON(t, srv, http.MethodGet, "/tasks", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	// Create.
	rec = doJSON(t, srv, http.MethodPost, "/tasks",
		`{"title":"Fix bug","description":"notes","priority":"high","assignee":"Alex"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var created task.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Fix bug", created.Title)
	assert.Equal(t, "backlog", created.ColumnID)

	// List contains it.
	rec = doJSON(t, srv, http.MethodGet, "/tasks", "")
	var listed []task.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, created, listed[0])

	// Partial update.
	rec = doJSON(t, srv, http.MethodPut, "/tasks",
		`{"id":"`+created.ID+`","columnId":"done"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated task.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "done", updated.ColumnID)
	assert.Equal(t, "Fix bug", updated.Title)
	assert.Equal(t, "notes", updated.Description)

	// Delete.
	rec = doJSON(t, srv, http.MethodDelete, "/tasks?id="+created.ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	// Delete again: not found.
	rec = doJSON(t, srv, http.MethodDelete, "/tasks?id="+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateTask_MissingID(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := doJSON(t, srv, http.MethodPut, "/tasks", `{"title":"no id"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateTask_NotFound(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := doJSON(t, srv, http.MethodPut, "/tasks", `{"id":"ghost","title":"x"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteTask_MissingID(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := doJSON(t, srv, http.MethodDelete, "/tasks", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTasks_StoreError(t *testing.T) {
	srv, mem := newTestServer(t)
	mem.FailWith = errors.New("connection refused")

	rec := doJSON(t, srv, http.MethodGet, "/tasks", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// Generic message only; the underlying error stays server-side.
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestColumns_ListSeedsDefaults(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/columns", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var columns []column.Column
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &columns))
	require.Len(t, columns, 4)
	assert.Equal(t, "backlog", columns[0].ID)
	assert.Equal(t, "done", columns[3].ID)
}

func TestColumns_CreateAndDelete(t *testing.T) {
	srv, _ := newTestServer(t)

	// Seed first.
	doJSON(t, srv, http.MethodGet, "/columns", "")

	rec := doJSON(t, srv, http.MethodPost, "/columns", `{"title":"QA","color":"violet"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var created column.Column
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "QA", created.Title)
	assert.Equal(t, "violet", created.Color)
	assert.Equal(t, 4, created.Order)

	rec = doJSON(t, srv, http.MethodDelete, "/columns?id="+created.ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	// Absent id still succeeds.
	rec = doJSON(t, srv, http.MethodDelete, "/columns?id=never-existed", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteColumn_MissingID(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := doJSON(t, srv, http.MethodDelete, "/columns", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteColumn_OrphansTasks(t *testing.T) {
	srv, _ := newTestServer(t)

	doJSON(t, srv, http.MethodGet, "/columns", "")
	rec := doJSON(t, srv, http.MethodPost, "/tasks", `{"title":"stuck","columnId":"todo"}`)
	var created task.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, srv, http.MethodDelete, "/columns?id=todo", "")
	require.Equal(t, http.StatusOK, rec.Code)

	// Task survives with its columnId unchanged.
	rec = doJSON(t, srv, http.MethodGet, "/tasks", "")
	var tasks []task.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "todo", tasks[0].ColumnID)
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	// Generate one request worth of metrics first.
	doJSON(t, srv, http.MethodGet, "/tasks", "")

	rec := doJSON(t, srv, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "boardd_http_requests_total")
}

func TestMetrics_ErrorStatusCounted(t *testing.T) {
	srv, _ := newTestServer(t)

	// Updating a nonexistent task yields a 404; the counter must carry
	// that status, not the pre-error default.
	rec := doJSON(t, srv, http.MethodPut, "/tasks", `{"id":"nope","title":"x"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/metrics", "")
	assert.Contains(t, rec.Body.String(),
		`boardd_http_requests_total{method="PUT",path="/tasks",status="404"}`)
}
