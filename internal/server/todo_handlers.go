package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Tomlord1122/activity-todo-backend/internal/field"
	"github.com/Tomlord1122/activity-todo-backend/internal/response"
	"github.com/Tomlord1122/activity-todo-backend/internal/service"
)

type createTodoRequest struct {
	Title           string  `json:"title"`
	ActivityGroupID *uint   `json:"activity_group_id" validate:"required"`
	Priority        *string `json:"priority"`
	IsActive        *bool   `json:"is_active"`
}

// updateTodoRequest fields are all optional; title is not re-validated.
type updateTodoRequest struct {
	Title           *string `json:"title"`
	ActivityGroupID *uint   `json:"activity_group_id"`
	Priority        *string `json:"priority"`
	IsActive        *bool   `json:"is_active"`
}

func todoNotFound(raw string) string {
	return fmt.Sprintf("Todo with ID %s Not Found", raw)
}

func (s *Server) listTodosHandler(w http.ResponseWriter, r *http.Request) {
	var activityGroupID *uint
	if raw := r.URL.Query().Get("activity_group_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, strconv.IntSize)
		if err != nil {
			response.Error(w, http.StatusBadRequest, response.StatusBadRequest,
				fmt.Sprintf("activity_group_id %q is not a valid id", raw))
			return
		}
		id := uint(parsed)
		activityGroupID = &id
	}

	todos, err := s.todos.ListTodos(r.Context(), activityGroupID)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}

	response.Success(w, http.StatusOK, todos)
}

func (s *Server) createTodoHandler(w http.ResponseWriter, r *http.Request) {
	var req createTodoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	title, err := field.ParseTitle(req.Title)
	if err != nil {
		response.Error(w, http.StatusBadRequest, response.StatusBadRequest, titleRequiredMsg)
		return
	}
	if err := validate.Struct(req); err != nil {
		response.Error(w, http.StatusBadRequest, response.StatusBadRequest, validationMessage(err))
		return
	}

	todo, err := s.todos.CreateTodo(r.Context(), service.CreateTodoRequest{
		Title:           title,
		ActivityGroupID: *req.ActivityGroupID,
		Priority:        req.Priority,
		IsActive:        req.IsActive,
	})
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}

	response.Success(w, http.StatusCreated, todo)
}

func (s *Server) getTodoHandler(w http.ResponseWriter, r *http.Request) {
	id, raw, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusNotFound, response.StatusNotFound, todoNotFound(raw))
		return
	}

	todo, err := s.todos.GetTodo(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, todoNotFound(raw))
		return
	}

	response.Success(w, http.StatusOK, todo)
}

func (s *Server) updateTodoHandler(w http.ResponseWriter, r *http.Request) {
	id, raw, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusNotFound, response.StatusNotFound, todoNotFound(raw))
		return
	}

	var req updateTodoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	todo, err := s.todos.UpdateTodo(r.Context(), id, service.UpdateTodoRequest{
		Title:           req.Title,
		ActivityGroupID: req.ActivityGroupID,
		IsActive:        req.IsActive,
		Priority:        req.Priority,
	})
	if err != nil {
		writeServiceError(w, r, err, todoNotFound(raw))
		return
	}

	response.Success(w, http.StatusOK, todo)
}

func (s *Server) deleteTodoHandler(w http.ResponseWriter, r *http.Request) {
	id, raw, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusNotFound, response.StatusNotFound, todoNotFound(raw))
		return
	}

	if err := s.todos.DeleteTodo(r.Context(), id); err != nil {
		writeServiceError(w, r, err, todoNotFound(raw))
		return
	}

	response.Success(w, http.StatusOK, struct{}{})
}
