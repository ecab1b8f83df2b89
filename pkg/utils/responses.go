package utils

import (
	"encoding/json"
	"net/http"
)

const ContentTypeJSON = "application/json; charset=UTF-8"

// internalErrorBody is written when a response cannot be encoded.
const internalErrorBody = `{"message":"Internal server error","status":500}`

// ErrorResponse is the body of every non-2xx response. Details is only
// filled for validation failures.
type ErrorResponse struct {
	Message string   `json:"message"`
	Status  int      `json:"status"`
	Details []string `json:"details,omitempty"`
}

// ResponseJSON writes data as JSON with the given status code
func ResponseJSON(w http.ResponseWriter, code int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		code = http.StatusInternalServerError
		body = []byte(internalErrorBody)
	}

	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(code)
	w.Write(body)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusOK, data)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusCreated, data)
}

// returns 204 No Content
func ResponseNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// ------------- Error responses -------------

func ResponseError(w http.ResponseWriter, code int, message string, details []string) {
	ResponseJSON(w, code, ErrorResponse{
		Message: message,
		Status:  code,
		Details: details,
	})
}

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusBadRequest, message, nil)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusNotFound, message, nil)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter) {
	ResponseError(w, http.StatusInternalServerError, "Internal server error", nil)
}
