package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccess_WrapsData(t *testing.T) {
	rr := httptest.NewRecorder()
	Success(rr, http.StatusCreated, map[string]int{"id": 7})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"Success","message":"Success","data":{"id":7}}`, rr.Body.String())
}

func TestSuccess_EmptyObject(t *testing.T) {
	rr := httptest.NewRecorder()
	Success(rr, http.StatusOK, struct{}{})

	assert.JSONEq(t, `{"status":"Success","message":"Success","data":{}}`, rr.Body.String())
}

func TestError_HasNoDataField(t *testing.T) {
	rr := httptest.NewRecorder()
	Error(rr, http.StatusNotFound, StatusNotFound, "Todo with ID 3 Not Found")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"status":"Not Found","message":"Todo with ID 3 Not Found"}`, rr.Body.String())
}

func TestEmpty(t *testing.T) {
	rr := httptest.NewRecorder()
	Empty(rr, http.StatusInternalServerError)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Empty(t, rr.Body.String())
}
