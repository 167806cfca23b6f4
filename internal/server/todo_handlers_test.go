package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tomlord1122/activity-todo-backend/internal/service"
)

func createTodo(t *testing.T, h http.Handler, body string) service.TodoResponse {
	t.Helper()
	rr := do(t, h, http.MethodPost, "/todo-items", body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode[service.TodoResponse](t, rr).Data
}

func TestCreateTodo_Defaults(t *testing.T) {
	h := newTestHandler(t)

	todo := createTodo(t, h, `{"title":"write tests","activity_group_id":3}`)
	assert.Equal(t, "write tests", todo.Title)
	assert.Equal(t, uint(3), todo.ActivityGroupID)
	assert.Equal(t, "very-high", todo.Priority)
	assert.True(t, todo.IsActive)
	require.NotNil(t, todo.UpdatedAt)
	assert.True(t, todo.UpdatedAt.Equal(todo.CreatedAt))

	rr := do(t, h, http.MethodGet, "/todo-items/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	got := decode[service.TodoResponse](t, rr).Data
	assert.Equal(t, todo.ID, got.ID)
	assert.Equal(t, todo.Priority, got.Priority)
}

func TestCreateTodo_ExplicitFields(t *testing.T) {
	h := newTestHandler(t)

	todo := createTodo(t, h, `{"title":"t","activity_group_id":1,"priority":"low","is_active":false}`)
	assert.Equal(t, "low", todo.Priority)
	assert.False(t, todo.IsActive)
}

func TestCreateTodo_Validation(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"missing title", `{"activity_group_id":1}`, "title cannot be null"},
		{"blank title", `{"title":"  ","activity_group_id":1}`, "title cannot be null"},
		{"missing group", `{"title":"t"}`, "activity_group_id cannot be null"},
		{"null group", `{"title":"t","activity_group_id":null}`, "activity_group_id cannot be null"},
		{"both missing", `{}`, "title cannot be null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, h, http.MethodPost, "/todo-items", tt.body)
			require.Equal(t, http.StatusBadRequest, rr.Code)

			env := decode[map[string]any](t, rr)
			assert.Equal(t, "Bad Request", env.Status)
			assert.Equal(t, tt.message, env.Message)
		})
	}

	rr := do(t, h, http.MethodGet, "/todo-items", "")
	assert.Empty(t, decode[[]service.TodoResponse](t, rr).Data)
}

func TestCreateTodo_MalformedJSON(t *testing.T) {
	h := newTestHandler(t)

	rr := do(t, h, http.MethodPost, "/todo-items", `not json`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, h, http.MethodPost, "/todo-items", `{"title":"t","activity_group_id":"one"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestListTodos_Filter(t *testing.T) {
	h := newTestHandler(t)
	createTodo(t, h, `{"title":"a","activity_group_id":1}`)
	createTodo(t, h, `{"title":"b","activity_group_id":2}`)
	createTodo(t, h, `{"title":"c","activity_group_id":1}`)

	rr := do(t, h, http.MethodGet, "/todo-items", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]service.TodoResponse](t, rr).Data, 3)

	rr = do(t, h, http.MethodGet, "/todo-items?activity_group_id=1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	filtered := decode[[]service.TodoResponse](t, rr).Data
	require.Len(t, filtered, 2)
	for _, todo := range filtered {
		assert.Equal(t, uint(1), todo.ActivityGroupID)
	}

	rr = do(t, h, http.MethodGet, "/todo-items?activity_group_id=99", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"Success","message":"Success","data":[]}`, rr.Body.String())

	for _, raw := range []string{"x", "-1", "1.5"} {
		rr = do(t, h, http.MethodGet, "/todo-items?activity_group_id="+raw, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code, raw)
		assert.Equal(t, "Bad Request", decode[map[string]any](t, rr).Status)
	}
}

func TestCreateTodo_RejectsNegativeGroupID(t *testing.T) {
	h := newTestHandler(t)

	rr := do(t, h, http.MethodPost, "/todo-items", `{"title":"t","activity_group_id":-4}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Bad Request", decode[map[string]any](t, rr).Status)
}

func TestGetTodo_NotFound(t *testing.T) {
	h := newTestHandler(t)

	for _, id := range []string{"7", "seven", "-1"} {
		t.Run(id, func(t *testing.T) {
			rr := do(t, h, http.MethodGet, "/todo-items/"+id, "")
			require.Equal(t, http.StatusNotFound, rr.Code)

			env := decode[map[string]any](t, rr)
			assert.Equal(t, "Not Found", env.Status)
			assert.Equal(t, "Todo with ID "+id+" Not Found", env.Message)
		})
	}
}

func TestUpdateTodo_SingleField(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		check func(t *testing.T, before, after service.TodoResponse)
	}{
		{
			name: "is_active",
			body: `{"is_active":false}`,
			check: func(t *testing.T, before, after service.TodoResponse) {
				assert.False(t, after.IsActive)
				assert.Equal(t, before.Title, after.Title)
				assert.Equal(t, before.Priority, after.Priority)
				assert.Equal(t, before.ActivityGroupID, after.ActivityGroupID)
			},
		},
		{
			name: "priority",
			body: `{"priority":"low"}`,
			check: func(t *testing.T, before, after service.TodoResponse) {
				assert.Equal(t, "low", after.Priority)
				assert.Equal(t, before.IsActive, after.IsActive)
				assert.Equal(t, before.Title, after.Title)
			},
		},
		{
			name: "title",
			body: `{"title":"renamed"}`,
			check: func(t *testing.T, before, after service.TodoResponse) {
				assert.Equal(t, "renamed", after.Title)
				assert.Equal(t, before.Priority, after.Priority)
			},
		},
		{
			name: "activity_group_id",
			body: `{"activity_group_id":8}`,
			check: func(t *testing.T, before, after service.TodoResponse) {
				assert.Equal(t, uint(8), after.ActivityGroupID)
				assert.Equal(t, before.Title, after.Title)
			},
		},
		{
			name: "empty body object",
			body: `{}`,
			check: func(t *testing.T, before, after service.TodoResponse) {
				assert.Equal(t, before.Title, after.Title)
				assert.Equal(t, before.Priority, after.Priority)
				assert.Equal(t, before.IsActive, after.IsActive)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t)
			before := createTodo(t, h, `{"title":"orig","activity_group_id":2}`)

			rr := do(t, h, http.MethodPatch, "/todo-items/1", tt.body)
			require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

			after := decode[service.TodoResponse](t, rr).Data
			assert.Equal(t, before.ID, after.ID)
			require.NotNil(t, after.UpdatedAt)
			tt.check(t, before, after)
		})
	}
}

func TestUpdateTodo_NotFound(t *testing.T) {
	h := newTestHandler(t)

	rr := do(t, h, http.MethodPatch, "/todo-items/5", `{"title":"x"}`)
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Todo with ID 5 Not Found", decode[map[string]any](t, rr).Message)
}

func TestDeleteTodo_Twice(t *testing.T) {
	h := newTestHandler(t)
	createTodo(t, h, `{"title":"x","activity_group_id":1}`)

	rr := do(t, h, http.MethodDelete, "/todo-items/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"Success","message":"Success","data":{}}`, rr.Body.String())

	rr = do(t, h, http.MethodDelete, "/todo-items/1", "")
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Todo with ID 1 Not Found", decode[map[string]any](t, rr).Message)
}
