package storage

import (
	"context"

	"github.com/poiesic/paranuara/core"
)

// Repository answers the read queries of the Paranuara dataset.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// FetchCompany retrieves a single company by id.
	// Returns ErrCompanyNotFound if no company has that id.
	FetchCompany(ctx context.Context, id core.CompanyID) (*core.Company, error)

	// FetchPeopleByCompany retrieves every person employed by the company.
	// An unknown company or one with no employees yields an empty slice, never an error.
	FetchPeopleByCompany(ctx context.Context, id core.CompanyID) ([]*core.Person, error)

	// FetchPerson retrieves a single person by id.
	// Returns ErrPersonNotFound if no person has that id.
	FetchPerson(ctx context.Context, id core.PersonID) (*core.Person, error)

	// FetchPeopleByIDs retrieves people in the order of ids.
	// Ids with no matching person are omitted (no error for missing people).
	FetchPeopleByIDs(ctx context.Context, ids ...core.PersonID) ([]*core.Person, error)

	// Close closes the storage backend and releases resources.
	Close() error
}

// FetchFriends returns the stored friends of person, in friend-list order.
// Friend ids that match nobody are skipped.
func FetchFriends(ctx context.Context, repo Repository, person *core.Person) ([]*core.Person, error) {
	if person == nil || len(person.FriendIDs) == 0 {
		return []*core.Person{}, nil
	}
	return repo.FetchPeopleByIDs(ctx, person.FriendIDs...)
}
