// Package memory is a process-local storage.Storage used by the "memory"
// driver and by handler tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/aanand-mishra/names-api/internal/storage"
	"github.com/aanand-mishra/names-api/internal/types"
)

// Store keeps records in a map guarded by a RWMutex. Nothing survives a
// restart.
type Store struct {
	mu     sync.RWMutex
	names  map[int64]types.Name
	nextID int64
}

var _ storage.Storage = (*Store)(nil)

// New returns an empty store whose first id is 1.
func New() *Store {
	return &Store{names: make(map[int64]types.Name)}
}

// CreateName stores n under the next id. Any id set on n is ignored.
func (s *Store) CreateName(_ context.Context, n types.Name) (types.Name, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	n.ID = s.nextID
	s.names[n.ID] = n
	return n, nil
}

// GetNameByID returns the record or storage.ErrNotFound.
func (s *Store) GetNameByID(_ context.Context, id int64) (types.Name, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if n, ok := s.names[id]; ok {
		return n, nil
	}
	return types.Name{}, fmt.Errorf("GetNameByID %d: %w", id, storage.ErrNotFound)
}

// GetNames returns all records ordered by id.
func (s *Store) GetNames(_ context.Context) ([]types.Name, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]types.Name, 0, len(s.names))
	for _, n := range s.names {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i].ID < names[j].ID })
	return names, nil
}

// UpdateName applies p to the stored record under the write lock.
func (s *Store) UpdateName(_ context.Context, id int64, p types.Patch) (types.Name, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.names[id]
	if !ok {
		return types.Name{}, fmt.Errorf("UpdateName %d: %w", id, storage.ErrNotFound)
	}
	updated := p.Apply(current)
	s.names[id] = updated
	return updated, nil
}

// DeleteNameByID removes the record or returns storage.ErrNotFound.
func (s *Store) DeleteNameByID(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.names[id]; !ok {
		return fmt.Errorf("DeleteNameByID %d: %w", id, storage.ErrNotFound)
	}
	delete(s.names, id)
	return nil
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }

// Close is a no-op.
func (s *Store) Close() error { return nil }
