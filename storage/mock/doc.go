// Package mock provides a test double implementation of storage.Repository.
//
// MockRepository lets tests of the query service and the HTTP layer run
// without a real backend and inject failures that real backends rarely
// produce.
//
// # Usage in Tests
//
//	// Default behavior: answer from the seeded records
//	repo := mock.NewMockRepository().
//	    WithCompanies(&core.Company{ID: 1, Name: "NETBOOK"}).
//	    WithPeople(alice, bob)
//
//	// Custom behavior injection
//	repo.FetchPersonFunc = func(ctx context.Context, id core.PersonID) (*core.Person, error) {
//	    return nil, storage.ErrStorageClosed
//	}
//
//	// Check call counts
//	count := repo.CallCount("FetchPerson")
//
// # Default Behavior
//
// Without a function field set, each method answers from the seeded
// companies and people the way the in-memory backend would: misses become
// ErrCompanyNotFound or ErrPersonNotFound, and bulk fetches omit them.
package mock
