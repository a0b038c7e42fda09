package storagetest

import (
	"context"
	"sync"
	"testing"

	"github.com/poiesic/paranuara/core"
	"github.com/poiesic/paranuara/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory builds a repository holding the given records.
type Factory func(t *testing.T, companies []*core.Company, people []*core.Person) storage.Repository

// RunRepositoryTests exercises the storage.Repository contract against repositories built by newRepo.
func RunRepositoryTests(t *testing.T, newRepo Factory) {
	ctx := context.Background()

	t.Run("FetchCompany", func(t *testing.T) {
		repo := newRepo(t, Companies(), People())

		company, err := repo.FetchCompany(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, core.CompanyID(1), company.ID)
		assert.Equal(t, "PERMADYNE", company.Name)

		_, err = repo.FetchCompany(ctx, 42)
		assert.ErrorIs(t, err, storage.ErrCompanyNotFound)
		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.NotErrorIs(t, err, storage.ErrPersonNotFound)
	})

	t.Run("FetchPeopleByCompany", func(t *testing.T) {
		repo := newRepo(t, Companies(), People())

		people, err := repo.FetchPeopleByCompany(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, []core.PersonID{1, 3, 4, 5}, IDs(people))
		for _, p := range people {
			assert.True(t, p.WorksAt(1))
		}

		people, err = repo.FetchPeopleByCompany(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, []core.PersonID{0, 2}, IDs(people))
	})

	t.Run("FetchPeopleByCompany without employees", func(t *testing.T) {
		repo := newRepo(t, Companies(), People())

		people, err := repo.FetchPeopleByCompany(ctx, 2)
		require.NoError(t, err)
		assert.NotNil(t, people)
		assert.Empty(t, people)

		people, err = repo.FetchPeopleByCompany(ctx, 42)
		require.NoError(t, err)
		assert.Empty(t, people)
	})

	t.Run("dangling company reference", func(t *testing.T) {
		repo := newRepo(t, Companies(), People())

		person, err := repo.FetchPerson(ctx, 7)
		require.NoError(t, err)
		require.NotNil(t, person.CompanyID)
		assert.Equal(t, DanglingCompanyID, *person.CompanyID)

		_, err = repo.FetchCompany(ctx, DanglingCompanyID)
		assert.ErrorIs(t, err, storage.ErrCompanyNotFound)

		for _, company := range Companies() {
			people, err := repo.FetchPeopleByCompany(ctx, company.ID)
			require.NoError(t, err)
			assert.NotContains(t, IDs(people), core.PersonID(7), "company %d", company.ID)
		}
	})

	t.Run("FetchPerson", func(t *testing.T) {
		repo := newRepo(t, Companies(), People())

		person, err := repo.FetchPerson(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, "Rosemary Hayes", person.Name)
		assert.Equal(t, []core.PersonID{0, 1}, person.FriendIDs)
		require.NotNil(t, person.CompanyID)
		assert.Equal(t, core.CompanyID(1), *person.CompanyID)

		person, err = repo.FetchPerson(ctx, 6)
		require.NoError(t, err)
		assert.Nil(t, person.CompanyID)

		_, err = repo.FetchPerson(ctx, 99)
		assert.ErrorIs(t, err, storage.ErrPersonNotFound)
		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.NotErrorIs(t, err, storage.ErrCompanyNotFound)
	})

	t.Run("FetchPeopleByIDs", func(t *testing.T) {
		repo := newRepo(t, Companies(), People())

		people, err := repo.FetchPeopleByIDs(ctx, 5, 99, 2, 3)
		require.NoError(t, err)
		assert.Equal(t, []core.PersonID{5, 2, 3}, IDs(people))

		people, err = repo.FetchPeopleByIDs(ctx)
		require.NoError(t, err)
		assert.Empty(t, people)

		people, err = repo.FetchPeopleByIDs(ctx, 98, 99)
		require.NoError(t, err)
		assert.Empty(t, people)
	})

	t.Run("FetchFriends skips dangling ids", func(t *testing.T) {
		repo := newRepo(t, Companies(), People())

		person, err := repo.FetchPerson(ctx, 0)
		require.NoError(t, err)

		friends, err := storage.FetchFriends(ctx, repo, person)
		require.NoError(t, err)
		assert.Equal(t, []core.PersonID{2, 3, 4, 5}, IDs(friends))
	})

	t.Run("empty dataset", func(t *testing.T) {
		repo := newRepo(t, nil, nil)

		_, err := repo.FetchCompany(ctx, 0)
		assert.ErrorIs(t, err, storage.ErrCompanyNotFound)

		_, err = repo.FetchPerson(ctx, 0)
		assert.ErrorIs(t, err, storage.ErrPersonNotFound)

		people, err := repo.FetchPeopleByCompany(ctx, 0)
		require.NoError(t, err)
		assert.Empty(t, people)
	})

	t.Run("concurrent readers", func(t *testing.T) {
		repo := newRepo(t, Companies(), People())

		var wg sync.WaitGroup
		errs := make(chan error, 32)
		for i := range 32 {
			wg.Add(1)
			go func(id core.PersonID) {
				defer wg.Done()
				if _, err := repo.FetchPerson(ctx, id); err != nil {
					errs <- err
				}
				if _, err := repo.FetchPeopleByCompany(ctx, 1); err != nil {
					errs <- err
				}
			}(core.PersonID(i % 7))
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			t.Errorf("concurrent read failed: %v", err)
		}
	})

	t.Run("closed", func(t *testing.T) {
		repo := newRepo(t, Companies(), People())
		require.NoError(t, repo.Close())

		_, err := repo.FetchCompany(ctx, 0)
		assert.ErrorIs(t, err, storage.ErrStorageClosed)

		_, err = repo.FetchPerson(ctx, 0)
		assert.ErrorIs(t, err, storage.ErrStorageClosed)

		_, err = repo.FetchPeopleByCompany(ctx, 0)
		assert.ErrorIs(t, err, storage.ErrStorageClosed)

		_, err = repo.FetchPeopleByIDs(ctx, 0)
		assert.ErrorIs(t, err, storage.ErrStorageClosed)
	})
}
