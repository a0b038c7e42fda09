package memory

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/poiesic/paranuara/core"
	"github.com/poiesic/paranuara/storage"
)

// Repository implements storage.Repository over maps built once at construction.
// Records are never modified afterwards, so readers need no locking.
type Repository struct {
	companies map[core.CompanyID]*core.Company
	people    map[core.PersonID]*core.Person
	employees map[core.CompanyID][]*core.Person
	closed    atomic.Bool
}

var _ storage.Repository = (*Repository)(nil)

// NewRepository indexes the given records by id.
// Returns ErrDuplicateKey if two companies or two people share an id.
func NewRepository(companies []*core.Company, people []*core.Person) (*Repository, error) {
	r := &Repository{
		companies: make(map[core.CompanyID]*core.Company, len(companies)),
		people:    make(map[core.PersonID]*core.Person, len(people)),
		employees: make(map[core.CompanyID][]*core.Person),
	}
	if err := storage.CheckUniqueIDs(companies, people); err != nil {
		return nil, err
	}

	for _, company := range companies {
		if err := core.ValidateCompany(company); err != nil {
			return nil, err
		}
		r.companies[company.ID] = company
	}

	for _, person := range people {
		if err := core.ValidatePerson(person); err != nil {
			return nil, err
		}
		r.people[person.ID] = person
		if person.CompanyID != nil {
			r.employees[*person.CompanyID] = append(r.employees[*person.CompanyID], person)
		}
	}

	return r, nil
}

// FetchCompany retrieves a single company by id.
func (r *Repository) FetchCompany(ctx context.Context, id core.CompanyID) (*core.Company, error) {
	if err := r.check(ctx); err != nil {
		return nil, err
	}
	company, ok := r.companies[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", storage.ErrCompanyNotFound, id)
	}
	return company, nil
}

// FetchPeopleByCompany returns the company's employees in load order.
func (r *Repository) FetchPeopleByCompany(ctx context.Context, id core.CompanyID) ([]*core.Person, error) {
	if err := r.check(ctx); err != nil {
		return nil, err
	}
	employees := r.employees[id]
	result := make([]*core.Person, len(employees))
	copy(result, employees)
	return result, nil
}

// FetchPerson retrieves a single person by id.
func (r *Repository) FetchPerson(ctx context.Context, id core.PersonID) (*core.Person, error) {
	if err := r.check(ctx); err != nil {
		return nil, err
	}
	person, ok := r.people[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", storage.ErrPersonNotFound, id)
	}
	return person, nil
}

// FetchPeopleByIDs retrieves people in the order of ids, skipping unknown ids.
func (r *Repository) FetchPeopleByIDs(ctx context.Context, ids ...core.PersonID) ([]*core.Person, error) {
	if err := r.check(ctx); err != nil {
		return nil, err
	}
	result := make([]*core.Person, 0, len(ids))
	for _, id := range ids {
		if person, ok := r.people[id]; ok {
			result = append(result, person)
		}
	}
	return result, nil
}

// Len reports how many companies and people are held.
func (r *Repository) Len() (companies, people int) {
	return len(r.companies), len(r.people)
}

// Close marks the repository closed. Later calls fail with ErrStorageClosed.
func (r *Repository) Close() error {
	r.closed.Store(true)
	return nil
}

func (r *Repository) check(ctx context.Context) error {
	if r.closed.Load() {
		return storage.ErrStorageClosed
	}
	return ctx.Err()
}
