package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	todoservice "github.com/thenoetrevino/todoapi/internal/services/todo"
)

const healthCheckTimeout = 2 * time.Second

// routes registers every endpoint on a fresh mux
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("POST /api/todos/create/{$}", s.handleCreateTodo)
	mux.HandleFunc("GET /api/todos/fetch/{$}", s.handleFetchTodos)
	mux.HandleFunc("PUT /api/todos/{id}/update/{$}", s.handleUpdateTodo)
	mux.HandleFunc("DELETE /api/todos/{id}/delete/{$}", s.handleDeleteTodo)

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /debug/metrics", s.handleMetrics)

	return mux
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: msgBackendRunning})
}

func (s *Server) handleCreateTodo(w http.ResponseWriter, r *http.Request) {
	payload, err := s.validator.decode(r.Body)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}

	todo, err := s.todos.CreateTodo(r.Context(), todoservice.CreateTodoRequest{
		Title:     payload.Title,
		Completed: payload.Completed,
	})
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, todo)
}

func (s *Server) handleFetchTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := s.todos.ListTodos(r.Context())
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, todos)
}

func (s *Server) handleUpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}

	payload, err := s.validator.decode(r.Body)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}

	todo, err := s.todos.UpdateTodo(r.Context(), todoservice.UpdateTodoRequest{
		ID:        id,
		Title:     payload.Title,
		Completed: payload.Completed,
	})
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, todo)
}

func (s *Server) handleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}

	if err := s.todos.DeleteTodo(r.Context(), id); err != nil {
		s.writeFailure(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: msgTodoDeleted})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := s.health.Ping(ctx); err != nil {
		s.logger.Error("health check failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, CodeUnavailable, "database unavailable")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.metrics.GetSnapshot())
}

// pathID parses the {id} path segment
func pathID(r *http.Request) (int, error) {
	raw := r.PathValue("id")
	id, err := strconv.Atoi(raw)
	if errors.Is(err, strconv.ErrRange) {
		// an integer beyond any assignable id
		return 0, todoservice.ErrTodoNotFound
	}
	if err != nil {
		return 0, &RequestError{
			Message: "todo id must be an integer",
			Fields:  []FieldError{{Field: "id", Message: strconv.Quote(raw) + " is not an integer"}},
		}
	}
	return id, nil
}

// writeFailure maps an error from validation or the todo service to a response
func (s *Server) writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	var reqErr *RequestError
	switch {
	case errors.As(err, &reqErr):
		writeRequestError(w, reqErr)
	case errors.Is(err, todoservice.ErrTodoNotFound), errors.Is(err, todoservice.ErrInvalidTodoID):
		// no record can exist for a non-positive id
		writeError(w, http.StatusNotFound, CodeTodoNotFound, msgTodoNotFound)
	case errors.Is(err, todoservice.ErrEmptyTitle):
		writeRequestError(w, &RequestError{
			Message: "request body failed validation",
			Fields:  []FieldError{{Field: "/title", Message: err.Error()}},
		})
	default:
		s.logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", RequestIDFromContext(r.Context()),
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, CodeInternal, msgInternalFailure)
	}
}
