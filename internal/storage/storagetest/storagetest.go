// Package storagetest holds a behaviour suite that every storage.Storage
// backend must pass. Backend packages embed Suite and set Store in their
// SetupTest.
package storagetest

import (
	"context"
	"fmt"
	"sync"

	"github.com/stretchr/testify/suite"

	"github.com/aanand-mishra/names-api/internal/storage"
	"github.com/aanand-mishra/names-api/internal/types"
)

// Suite exercises the storage.Storage contract against an empty store.
type Suite struct {
	suite.Suite
	Store storage.Storage
}

func (s *Suite) create(name string, age int, city string) types.Name {
	n, err := s.Store.CreateName(context.Background(), types.Name{Name: name, Age: age, City: city})
	s.Require().NoError(err)
	return n
}

func (s *Suite) TestCreateThenGetReturnsEqualRecord() {
	ctx := context.Background()
	created := s.create("Alice", 30, "Austin")
	s.NotZero(created.ID)

	found, err := s.Store.GetNameByID(ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created, found)
}

func (s *Suite) TestCreateIgnoresSuppliedID() {
	n, err := s.Store.CreateName(context.Background(), types.Name{ID: 424242, Name: "Bob", Age: 5})
	s.Require().NoError(err)
	s.NotEqual(int64(424242), n.ID)
}

func (s *Suite) TestEmptyCityRoundTrips() {
	created := s.create("NoCity", 22, "")

	found, err := s.Store.GetNameByID(context.Background(), created.ID)
	s.Require().NoError(err)
	s.Equal("", found.City)
}

func (s *Suite) TestGetUnknownID() {
	_, err := s.Store.GetNameByID(context.Background(), 987654)
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *Suite) TestListInStorageOrder() {
	ctx := context.Background()

	empty, err := s.Store.GetNames(ctx)
	s.Require().NoError(err)
	s.NotNil(empty)
	s.Empty(empty)

	a := s.create("a", 1, "")
	b := s.create("b", 2, "")
	c := s.create("c", 3, "")

	names, err := s.Store.GetNames(ctx)
	s.Require().NoError(err)
	s.Equal([]types.Name{a, b, c}, names)
}

func (s *Suite) TestUpdateOverwritesFields() {
	ctx := context.Background()
	created := s.create("Alice", 30, "Austin")

	name, age, city := "Alicia", 31, "Dallas"
	updated, err := s.Store.UpdateName(ctx, created.ID, types.Patch{Name: &name, Age: &age, City: &city})
	s.Require().NoError(err)

	want := types.Name{ID: created.ID, Name: "Alicia", Age: 31, City: "Dallas"}
	s.Equal(want, updated)

	found, err := s.Store.GetNameByID(ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(want, found)
}

func (s *Suite) TestUpdateLeavesNilFieldsUntouched() {
	ctx := context.Background()
	created := s.create("Alice", 30, "Austin")

	age := 44
	updated, err := s.Store.UpdateName(ctx, created.ID, types.Patch{Age: &age})
	s.Require().NoError(err)
	s.Equal(types.Name{ID: created.ID, Name: "Alice", Age: 44, City: "Austin"}, updated)

	unchanged, err := s.Store.UpdateName(ctx, created.ID, types.Patch{})
	s.Require().NoError(err)
	s.Equal(updated, unchanged)
}

// Writers that start from the same snapshot and patch different fields must
// both land.
func (s *Suite) TestConcurrentPatchesOfDifferentFieldsBothPersist() {
	ctx := context.Background()
	created := s.create("Alice", 30, "Austin")

	const rounds = 10
	for i := 0; i < rounds; i++ {
		name := fmt.Sprintf("Alice-%d", i)
		age := 31 + i

		var wg sync.WaitGroup
		errs := make(chan error, 2)
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := s.Store.UpdateName(ctx, created.ID, types.Patch{Name: &name})
			errs <- err
		}()
		go func() {
			defer wg.Done()
			_, err := s.Store.UpdateName(ctx, created.ID, types.Patch{Age: &age})
			errs <- err
		}()
		wg.Wait()
		close(errs)
		for err := range errs {
			s.Require().NoError(err)
		}

		found, err := s.Store.GetNameByID(ctx, created.ID)
		s.Require().NoError(err)
		s.Equal(types.Name{ID: created.ID, Name: name, Age: age, City: "Austin"}, found)
	}
}

func (s *Suite) TestUpdateUnknownID() {
	age := 1
	_, err := s.Store.UpdateName(context.Background(), 987654, types.Patch{Age: &age})
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *Suite) TestDelete() {
	ctx := context.Background()
	created := s.create("Alice", 30, "Austin")

	s.Require().NoError(s.Store.DeleteNameByID(ctx, created.ID))

	_, err := s.Store.GetNameByID(ctx, created.ID)
	s.ErrorIs(err, storage.ErrNotFound)

	s.ErrorIs(s.Store.DeleteNameByID(ctx, created.ID), storage.ErrNotFound)
}

func (s *Suite) TestConcurrentCreatesGetUniqueIDs() {
	const goroutines = 20

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = make(map[int64]struct{}, goroutines)
	)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := s.Store.CreateName(context.Background(), types.Name{Name: "c", Age: 1})
			if err != nil {
				return
			}
			mu.Lock()
			ids[n.ID] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	s.Len(ids, goroutines)
}

func (s *Suite) TestPing() {
	s.NoError(s.Store.Ping(context.Background()))
}
