package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/aanand-mishra/names-api/internal/storage"
	"github.com/aanand-mishra/names-api/internal/types"
)

type MemoryStoreSuite struct {
	suite.Suite
	store *Store
	ctx   context.Context
}

func (s *MemoryStoreSuite) SetupTest() {
	s.store = New()
	s.ctx = context.Background()
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) TestCreateAndGet() {
	s.Run("assigns increasing ids and ignores caller ids", func() {
		first, err := s.store.CreateName(s.ctx, types.Name{ID: 99, Name: "Alice", Age: 30})
		s.Require().NoError(err)
		second, err := s.store.CreateName(s.ctx, types.Name{Name: "Bob", Age: 40})
		s.Require().NoError(err)

		s.NotEqual(int64(99), first.ID)
		s.Greater(second.ID, first.ID)

		found, err := s.store.GetNameByID(s.ctx, first.ID)
		s.Require().NoError(err)
		s.Equal(first, found)
	})

	s.Run("returns ErrNotFound for unknown id", func() {
		_, err := s.store.GetNameByID(s.ctx, 12345)
		s.Require().ErrorIs(err, storage.ErrNotFound)
	})
}

func (s *MemoryStoreSuite) TestListIsOrderedAndNonNil() {
	names, err := s.store.GetNames(s.ctx)
	s.Require().NoError(err)
	s.NotNil(names)
	s.Empty(names)

	for _, n := range []string{"c", "a", "b"} {
		_, err := s.store.CreateName(s.ctx, types.Name{Name: n, Age: 1})
		s.Require().NoError(err)
	}

	names, err = s.store.GetNames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(names, 3)
	s.Equal([]string{"c", "a", "b"}, []string{names[0].Name, names[1].Name, names[2].Name})
}

func (s *MemoryStoreSuite) TestUpdateAndDelete() {
	created, err := s.store.CreateName(s.ctx, types.Name{Name: "Alice", Age: 30})
	s.Require().NoError(err)

	age := 31
	updated, err := s.store.UpdateName(s.ctx, created.ID, types.Patch{Age: &age})
	s.Require().NoError(err)
	s.Equal(31, updated.Age)

	s.Require().NoError(s.store.DeleteNameByID(s.ctx, created.ID))

	_, err = s.store.GetNameByID(s.ctx, created.ID)
	s.ErrorIs(err, storage.ErrNotFound)

	_, err = s.store.UpdateName(s.ctx, created.ID, types.Patch{Age: &age})
	s.ErrorIs(err, storage.ErrNotFound)

	s.ErrorIs(s.store.DeleteNameByID(s.ctx, created.ID), storage.ErrNotFound)
}
