// Package storage defines the Storage interface that every database backend
// must satisfy, and the errors backends use to report facts about records.
//
// Handlers depend only on this interface. The concrete backend is chosen in
// main from config (sqlite, postgres or memory), and tests can substitute a
// mock or the in-memory store.
package storage

//go:generate mockgen -source=storage.go -destination=mocks/mocks.go -package=mocks Storage

import (
	"context"
	"errors"

	"github.com/aanand-mishra/names-api/internal/types"
)

// ErrNotFound is returned (possibly wrapped) when no record has the given id.
// Callers should test for it with errors.Is.
var ErrNotFound = errors.New("name not found")

// Storage is the persistence contract for name records.
//
// Updates are explicit read-modify-write: the caller fetches a record with
// GetNameByID, decides which fields change, and passes only those to
// UpdateName as a types.Patch.
type Storage interface {
	// CreateName inserts a record and returns it with its generated id.
	// Any id already set on n is ignored.
	CreateName(ctx context.Context, n types.Name) (types.Name, error)

	// GetNameByID returns the record with the given id, or ErrNotFound.
	GetNameByID(ctx context.Context, id int64) (types.Name, error)

	// GetNames returns every record in storage order (ascending id).
	// The result is an empty, non-nil slice when there are none.
	GetNames(ctx context.Context) ([]types.Name, error)

	// UpdateName writes the non-nil fields of p to the record with the given
	// id in a single statement and returns the stored value. Other columns
	// are left as they are. Returns ErrNotFound if the record does not exist.
	UpdateName(ctx context.Context, id int64, p types.Patch) (types.Name, error)

	// DeleteNameByID removes a record. Returns ErrNotFound if it is absent.
	DeleteNameByID(ctx context.Context, id int64) error

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases the backend's resources.
	Close() error
}
