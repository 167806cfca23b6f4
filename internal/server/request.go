package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/hlog"

	"github.com/Tomlord1122/activity-todo-backend/internal/response"
	"github.com/Tomlord1122/activity-todo-backend/internal/service"
)

var validate = newValidator()

// newValidator reports fields under their json names so messages match the
// request body the client sent.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationMessage turns the first violation into a client-facing message.
func validationMessage(err error) string {
	var violations validator.ValidationErrors
	if !errors.As(err, &violations) || len(violations) == 0 {
		return err.Error()
	}

	fe := violations[0]
	if fe.Tag() == "required" {
		return fmt.Sprintf("%s cannot be null", fe.Field())
	}
	return fmt.Sprintf("%s failed the %q check", fe.Field(), fe.Tag())
}

// decodeJSON reads the request body into dst. On failure it writes a 400
// envelope and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}

	var syntaxError *json.SyntaxError
	var unmarshalTypeError *json.UnmarshalTypeError
	var msg string
	switch {
	case errors.As(err, &syntaxError):
		msg = fmt.Sprintf("Request body contains badly-formed JSON (at position %d)", syntaxError.Offset)
	case errors.Is(err, io.ErrUnexpectedEOF):
		msg = "Request body contains badly-formed JSON"
	case errors.As(err, &unmarshalTypeError):
		msg = fmt.Sprintf("Request body contains an invalid value for the %q field (at position %d)", unmarshalTypeError.Field, unmarshalTypeError.Offset)
	case errors.Is(err, io.EOF):
		msg = "Request body must not be empty"
	default:
		hlog.FromRequest(r).Warn().Err(err).Msg("failed to decode request body")
		msg = "Invalid request body"
	}

	response.Error(w, http.StatusBadRequest, response.StatusBadRequest, msg)
	return false
}

// pathID parses the {id} URL parameter. ok is false for anything that is not
// a positive integer; raw is returned either way for error messages.
func pathID(r *http.Request) (id uint, raw string, ok bool) {
	raw = chi.URLParam(r, "id")
	parsed, err := strconv.ParseUint(raw, 10, strconv.IntSize)
	if err != nil || parsed == 0 {
		return 0, raw, false
	}
	return uint(parsed), raw, true
}

// writeServiceError maps a service error onto the response contract:
// not found is a 404 envelope, an invalid title a 400 envelope, and
// anything else a logged 500 with no body.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.Error(w, http.StatusNotFound, response.StatusNotFound, notFoundMsg)
	case errors.Is(err, service.ErrInvalidTitle):
		response.Error(w, http.StatusBadRequest, response.StatusBadRequest, titleRequiredMsg)
	default:
		hlog.FromRequest(r).Error().Stack().Err(err).Msg("request failed")
		response.Empty(w, http.StatusInternalServerError)
	}
}

const titleRequiredMsg = "title cannot be null"
