package storage

import (
	"context"
	"sync"

	"golang.org/x/exp/slices"

	"github.com/dreamware/todo/internal/todo"
)

// MemoryRepository implements todo.Repository with in-memory storage
// Uses sync.RWMutex for thread-safe concurrent access
type MemoryRepository struct {
	mu    sync.RWMutex          // Protects concurrent access
	todos map[todo.ID]todo.Todo // Stored by value
}

var _ todo.Repository = (*MemoryRepository)(nil)

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		todos: make(map[todo.ID]todo.Todo),
	}
}

// List returns a snapshot of all todos ordered by ID text
func (m *MemoryRepository) List(_ context.Context) ([]todo.Todo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]todo.Todo, 0, len(m.todos))
	for _, t := range m.todos {
		result = append(result, t)
	}
	slices.SortFunc(result, func(a, b todo.Todo) int {
		return a.ID.Compare(b.ID)
	})
	return result, nil
}

// Get returns a copy of the todo with the given ID, or nil if absent
func (m *MemoryRepository) Get(_ context.Context, id todo.ID) (*todo.Todo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, exists := m.todos[id]
	if !exists {
		return nil, nil
	}
	return &t, nil
}

// Create stores a new todo with a fresh ID
func (m *MemoryRepository) Create(_ context.Context, in todo.Input) (todo.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := todo.New(in)
	// Random IDs never collide in practice; regenerate rather than overwrite
	for {
		if _, taken := m.todos[t.ID]; !taken {
			break
		}
		t.ID = todo.NewID()
	}
	m.todos[t.ID] = t
	return t, nil
}

// Update replaces the title of an existing todo
// Returns nil if the ID is unknown; the store is left unchanged in that case
func (m *MemoryRepository) Update(_ context.Context, id todo.ID, in todo.Input) (*todo.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, exists := m.todos[id]
	if !exists {
		return nil, nil
	}
	t.Apply(in)
	m.todos[id] = t
	return &t, nil
}

// Delete removes a todo and returns the removed value
// Returns nil if the ID is unknown
func (m *MemoryRepository) Delete(_ context.Context, id todo.ID) (*todo.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, exists := m.todos[id]
	if !exists {
		return nil, nil
	}
	delete(m.todos, id)
	return &t, nil
}

// Len returns the number of stored todos
func (m *MemoryRepository) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.todos)
}
