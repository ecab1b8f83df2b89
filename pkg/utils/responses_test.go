package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseJSON(t *testing.T) {
	t.Parallel()

	t.Run("writes body with charset content type", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()

		ResponseJSON(rec, http.StatusOK, map[string]string{"foo": "bar"})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json; charset=UTF-8", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"foo":"bar"}`, rec.Body.String())
	})

	t.Run("unencodable data becomes a 500", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()

		ResponseJSON(rec, http.StatusOK, map[string]any{"ch": make(chan int)})

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, internalErrorBody, rec.Body.String())
	})
}

func TestResponseError(t *testing.T) {
	t.Parallel()

	t.Run("omits details for single cause errors", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()

		ResponseNotFound(rec, "movie not found")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"message":"movie not found","status":404}`, rec.Body.String())
	})

	t.Run("includes details for validation errors", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()

		ResponseError(rec, http.StatusUnprocessableEntity, "validation failed", []string{"a", "b"})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, ErrorResponse{Message: "validation failed", Status: 422, Details: []string{"a", "b"}}, body)
	})

	t.Run("internal error hides cause", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()

		ResponseInternalError(rec)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"message":"Internal server error","status":500}`, rec.Body.String())
	})
}

func TestResponseNoContent(t *testing.T) {
	t.Parallel()
	rec := httptest.NewRecorder()

	ResponseNoContent(rec)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
