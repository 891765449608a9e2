// Package todo defines the domain model of the todo service: the Todo entity,
// its identifier, the partial-update Input and the Repository contract that
// storage backends implement.
//
// # Overview
//
// The package sits at the bottom of the layered design and imports nothing
// from the rest of the module:
//
//	┌─────────────────────────────────────┐
//	│        HTTP layer (httpapi)         │
//	└─────────────────────────────────────┘
//	                 │
//	                 ▼
//	┌─────────────────────────────────────┐
//	│      Service layer (service)        │
//	└─────────────────────────────────────┘
//	                 │
//	                 ▼
//	┌─────────────────────────────────────┐
//	│   Repository interface (todo)       │
//	└─────────────────────────────────────┘
//	                 │
//	                 ▼
//	┌─────────────────────────────────────┐
//	│  MemoryRepository (storage)         │
//	└─────────────────────────────────────┘
//
// # Identifiers
//
// ID wraps a random (version 4) UUID. IDs are comparable values, so they can
// be used directly as map keys and shared between goroutines without
// synchronization. ParseID accepts the canonical textual form and returns an
// error matching ErrInvalidID for anything else.
//
// # Absence
//
// Repository methods that address a single Todo return a nil *Todo and a nil
// error when no Todo with the given ID exists. Absence is an ordinary outcome
// at this level; the service layer turns it into ErrNotFound for callers that
// asked for a specific Todo.
//
// # Completion
//
// Completed is part of the model and of the wire format, but no operation
// sets it. New Todos always start with Completed=false and Apply leaves it
// untouched.
package todo
