package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Error codes carried in the "code" field of error bodies
const (
	CodeTodoNotFound   = "TODO_NOT_FOUND"
	CodeValidation     = "VALIDATION_ERROR"
	CodeInternal       = "INTERNAL_ERROR"
	CodeUnavailable    = "SERVICE_UNAVAILABLE"
	msgTodoNotFound    = "Todo not found"
	msgTodoDeleted     = "Todo deleted successfully"
	msgBackendRunning  = "Todo API backend is running."
	msgInternalFailure = "internal server error"
)

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Detail string       `json:"detail"`
	Code   string       `json:"code"`
	Errors []FieldError `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail, Code: code})
}

func writeRequestError(w http.ResponseWriter, err *RequestError) {
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
		Detail: err.Message,
		Code:   CodeValidation,
		Errors: err.Fields,
	})
}
