package server

import (
	"fmt"
	"net/http"

	"github.com/Tomlord1122/activity-todo-backend/internal/field"
	"github.com/Tomlord1122/activity-todo-backend/internal/response"
	"github.com/Tomlord1122/activity-todo-backend/internal/service"
)

// activityRequest is the body of both POST and PATCH /activity-groups.
type activityRequest struct {
	Title string  `json:"title"`
	Email *string `json:"email"`
}

func activityNotFound(raw string) string {
	return fmt.Sprintf("Activity with ID %s Not Found", raw)
}

func (s *Server) listActivitiesHandler(w http.ResponseWriter, r *http.Request) {
	activities, err := s.activities.ListActivities(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}

	response.Success(w, http.StatusOK, activities)
}

func (s *Server) createActivityHandler(w http.ResponseWriter, r *http.Request) {
	var req activityRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	title, err := field.ParseTitle(req.Title)
	if err != nil {
		response.Error(w, http.StatusBadRequest, response.StatusBadRequest, titleRequiredMsg)
		return
	}

	activity, err := s.activities.CreateActivity(r.Context(), service.CreateActivityRequest{
		Title: title,
		Email: req.Email,
	})
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}

	response.Success(w, http.StatusCreated, activity)
}

func (s *Server) getActivityHandler(w http.ResponseWriter, r *http.Request) {
	id, raw, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusNotFound, response.StatusNotFound, activityNotFound(raw))
		return
	}

	activity, err := s.activities.GetActivity(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, activityNotFound(raw))
		return
	}

	response.Success(w, http.StatusOK, activity)
}

func (s *Server) updateActivityHandler(w http.ResponseWriter, r *http.Request) {
	id, raw, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusNotFound, response.StatusNotFound, activityNotFound(raw))
		return
	}

	var req activityRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	title, err := field.ParseTitle(req.Title)
	if err != nil {
		response.Error(w, http.StatusBadRequest, response.StatusBadRequest, titleRequiredMsg)
		return
	}

	activity, err := s.activities.UpdateActivity(r.Context(), id, service.UpdateActivityRequest{
		Title: title,
		Email: req.Email,
	})
	if err != nil {
		writeServiceError(w, r, err, activityNotFound(raw))
		return
	}

	response.Success(w, http.StatusOK, activity)
}

func (s *Server) deleteActivityHandler(w http.ResponseWriter, r *http.Request) {
	id, raw, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusNotFound, response.StatusNotFound, activityNotFound(raw))
		return
	}

	if err := s.activities.DeleteActivity(r.Context(), id); err != nil {
		writeServiceError(w, r, err, activityNotFound(raw))
		return
	}

	response.Success(w, http.StatusOK, struct{}{})
}
