// Package response writes the JSON envelope every API endpoint answers with.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

const (
	StatusSuccess    = "Success"
	StatusBadRequest = "Bad Request"
	StatusNotFound   = "Not Found"
)

// Body is the envelope for outcomes that carry no payload.
type Body struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// BodyWithData is the envelope for outcomes that carry a payload.
type BodyWithData[T any] struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// Success writes data wrapped in a Success envelope.
func Success[T any](w http.ResponseWriter, code int, data T) {
	JSON(w, code, BodyWithData[T]{
		Status:  StatusSuccess,
		Message: StatusSuccess,
		Data:    data,
	})
}

// Error writes a payload-less envelope.
func Error(w http.ResponseWriter, code int, status, message string) {
	JSON(w, code, Body{Status: status, Message: message})
}

// Empty writes the status code with no body.
func Empty(w http.ResponseWriter, code int) {
	w.WriteHeader(code)
}

func JSON(w http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(body)
}
