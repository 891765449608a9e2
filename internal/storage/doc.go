// Package storage provides the concrete implementations of todo.Repository,
// the persistence seam of the todo service.
//
// # Overview
//
// The service layer depends only on the todo.Repository interface. This
// package supplies the implementations behind it:
//
//	┌─────────────────────────────────────┐
//	│        service.TodoService          │
//	└─────────────────────────────────────┘
//	                 │
//	                 ▼
//	┌─────────────────────────────────────┐
//	│        todo.Repository              │
//	└─────────────────────────────────────┘
//	                 │
//	         ┌───────┴──────────┐
//	         ▼                  ▼
//	┌──────────────────┐  ┌──────────────┐
//	│ MemoryRepository │  │ SQL (Future) │
//	└──────────────────┘  └──────────────┘
//
// # Implementations
//
// MemoryRepository: map keyed by todo.ID behind a sync.RWMutex
//   - No persistence (store is empty on every process start)
//   - Constructed explicitly and injected; no package-level state
//   - Never returns a non-nil error
//
// # Concurrency and Thread Safety
//
// Locking Strategy:
//   - List, Get and Len take the shared lock (RLock)
//   - Create, Update and Delete take the exclusive lock (Lock)
//   - The existence check and the mutation happen under one acquisition
//   - Locks are released with defer on every return path
//
// Copy Semantics:
//   - Todos are stored by value
//   - Every returned Todo is a copy; later writes never change a value
//     already handed to a caller
//   - List returns a fresh slice
//
// # Absence
//
// Get, Update and Delete return (nil, nil) for an unknown ID. The service
// layer converts that into todo.ErrNotFound.
//
// # Usage Examples
//
//	repo := storage.NewMemoryRepository()
//
//	created, _ := repo.Create(ctx, todo.Input{Title: "Buy milk"})
//
//	updated, _ := repo.Update(ctx, created.ID, todo.Input{Title: "Buy oat milk"})
//	if updated == nil {
//	    // unknown id
//	}
//
//	todos, _ := repo.List(ctx)
//
// # Testing
//
//	go test ./internal/storage/... -cover
//	go test -race ./internal/storage/...
package storage
