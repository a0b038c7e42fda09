package storage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/paranuara/core"
	"github.com/poiesic/paranuara/storage"
	"github.com/poiesic/paranuara/storage/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchFriends(t *testing.T) {
	ctx := context.Background()
	friend := &core.Person{ID: 2, Name: "Decker Mckenzie"}

	repo := &mock.MockRepository{
		FetchPeopleByIDsFunc: func(ctx context.Context, ids ...core.PersonID) ([]*core.Person, error) {
			assert.Equal(t, []core.PersonID{2, 9}, ids)
			return []*core.Person{friend}, nil
		},
	}

	friends, err := storage.FetchFriends(ctx, repo, &core.Person{ID: 1, FriendIDs: []core.PersonID{2, 9}})
	require.NoError(t, err)
	assert.Equal(t, []*core.Person{friend}, friends)
	assert.Equal(t, 1, repo.CallCount("FetchPeopleByIDs"))
}

func TestFetchFriends_NoFriends(t *testing.T) {
	repo := &mock.MockRepository{}

	friends, err := storage.FetchFriends(context.Background(), repo, &core.Person{ID: 1})
	require.NoError(t, err)
	assert.NotNil(t, friends)
	assert.Empty(t, friends)
	assert.Zero(t, repo.CallCount("FetchPeopleByIDs"))
}

func TestFetchFriends_PropagatesErrors(t *testing.T) {
	repo := &mock.MockRepository{
		FetchPeopleByIDsFunc: func(ctx context.Context, ids ...core.PersonID) ([]*core.Person, error) {
			return nil, storage.ErrStorageClosed
		},
	}

	_, err := storage.FetchFriends(context.Background(), repo, &core.Person{ID: 1, FriendIDs: []core.PersonID{2}})
	assert.True(t, errors.Is(err, storage.ErrStorageClosed))
}
