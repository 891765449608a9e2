// Package service orchestrates repository calls for the todo service and turns
// repository absence into todo.ErrNotFound.
//
// It is the seam where validation, authorization or other business rules
// would be added; today it only delegates.
package service

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/dreamware/todo/internal/todo"
)

// TodoService exposes the caller-facing todo operations
type TodoService struct {
	repo   todo.Repository
	logger *log.Logger
}

// New creates a service backed by repo.
// A nil logger discards service logs.
func New(repo todo.Repository, logger *log.Logger) *TodoService {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &TodoService{
		repo:   repo,
		logger: logger.WithPrefix("service"),
	}
}

// ListTodos returns every stored todo
func (s *TodoService) ListTodos(ctx context.Context) ([]todo.Todo, error) {
	todos, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	s.logger.Debug("listed todos", "count", len(todos))
	return todos, nil
}

// AddTodo creates a todo from in
func (s *TodoService) AddTodo(ctx context.Context, in todo.Input) (todo.Todo, error) {
	created, err := s.repo.Create(ctx, in)
	if err != nil {
		return todo.Todo{}, fmt.Errorf("create todo: %w", err)
	}
	s.logger.Debug("created todo", "id", created.ID)
	return created, nil
}

// GetTodo returns the todo with the given ID or todo.ErrNotFound
func (s *TodoService) GetTodo(ctx context.Context, id todo.ID) (todo.Todo, error) {
	found, err := s.repo.Get(ctx, id)
	if err != nil {
		return todo.Todo{}, fmt.Errorf("get todo %s: %w", id, err)
	}
	if found == nil {
		return todo.Todo{}, todo.ErrNotFound
	}
	s.logger.Debug("got todo", "id", id)
	return *found, nil
}

// UpdateTodo replaces the title of the todo with the given ID.
// Returns todo.ErrNotFound if no such todo exists.
func (s *TodoService) UpdateTodo(ctx context.Context, id todo.ID, in todo.Input) (todo.Todo, error) {
	updated, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return todo.Todo{}, fmt.Errorf("update todo %s: %w", id, err)
	}
	if updated == nil {
		return todo.Todo{}, todo.ErrNotFound
	}
	s.logger.Debug("updated todo", "id", id)
	return *updated, nil
}

// DeleteTodo removes the todo with the given ID and returns it.
// Returns todo.ErrNotFound if no such todo exists.
func (s *TodoService) DeleteTodo(ctx context.Context, id todo.ID) (todo.Todo, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return todo.Todo{}, fmt.Errorf("delete todo %s: %w", id, err)
	}
	if deleted == nil {
		return todo.Todo{}, todo.ErrNotFound
	}
	s.logger.Debug("deleted todo", "id", id)
	return *deleted, nil
}
