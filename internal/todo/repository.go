package todo

import "context"

// Repository defines the storage contract for Todos.
// All implementations must be safe for concurrent use.
//
// Methods addressing a single Todo return (nil, nil) when the ID is unknown.
// A non-nil error always means the backend itself failed.
type Repository interface {
	// List returns a snapshot of all stored Todos
	// Order is not guaranteed; an empty store yields an empty slice
	List(ctx context.Context) ([]Todo, error)

	// Get returns a copy of the Todo with the given ID
	Get(ctx context.Context, id ID) (*Todo, error)

	// Create assigns a fresh ID, stores the new Todo and returns it
	Create(ctx context.Context, in Input) (Todo, error)

	// Update replaces the title of the Todo with the given ID
	// Returns a copy of the updated Todo
	Update(ctx context.Context, id ID, in Input) (*Todo, error)

	// Delete removes the Todo with the given ID and returns the removed value
	Delete(ctx context.Context, id ID) (*Todo, error)
}
