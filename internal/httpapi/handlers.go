package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/dreamware/todo/internal/todo"
)

// Service is the set of operations the handlers call.
// *service.TodoService satisfies it.
type Service interface {
	ListTodos(ctx context.Context) ([]todo.Todo, error)
	AddTodo(ctx context.Context, in todo.Input) (todo.Todo, error)
	GetTodo(ctx context.Context, id todo.ID) (todo.Todo, error)
	UpdateTodo(ctx context.Context, id todo.ID, in todo.Input) (todo.Todo, error)
	DeleteTodo(ctx context.Context, id todo.ID) (todo.Todo, error)
}

// Handlers holds the dependencies of the todo endpoints
type Handlers struct {
	svc    Service
	logger *log.Logger
}

// NewHandlers creates the endpoint handlers for svc
func NewHandlers(svc Service, logger *log.Logger) *Handlers {
	return &Handlers{svc: svc, logger: logger}
}

// Index answers GET / with the JSON string "OK"
func (h *Handlers) Index(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, "OK")
}

// ListTodos answers GET /todos
func (h *Handlers) ListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.svc.ListTodos(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if todos == nil {
		todos = []todo.Todo{}
	}
	h.writeJSON(w, http.StatusOK, todos)
}

// AddTodo answers POST /todos
func (h *Handlers) AddTodo(w http.ResponseWriter, r *http.Request) {
	in, err := decodeInput(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	created, err := h.svc.AddTodo(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, created)
}

// GetTodo answers GET /todos/{id}
func (h *Handlers) GetTodo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	found, err := h.svc.GetTodo(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, found)
}

// UpdateTodo answers PUT /todos/{id}.
// The id is checked before the body.
func (h *Handlers) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	in, err := decodeInput(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	updated, err := h.svc.UpdateTodo(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

// DeleteTodo answers DELETE /todos/{id}
func (h *Handlers) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	deleted, err := h.svc.DeleteTodo(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, deleted)
}

func pathID(r *http.Request) (todo.ID, error) {
	return todo.ParseID(chi.URLParam(r, "id"))
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("write response", "err", err)
	}
}

// writeError classifies err and writes the matching error response.
// Internal errors are logged and their detail is not sent to the client.
func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classify(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
		msg = http.StatusText(status)
	}
	h.writeJSON(w, status, ErrorResponse{Code: code, Message: msg})
}
