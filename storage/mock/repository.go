package mock

import (
	"context"
	"sync"

	"github.com/poiesic/paranuara/core"
	"github.com/poiesic/paranuara/storage"
)

// MockRepository is a test double for storage.Repository.
// It allows custom behavior injection via function fields.
type MockRepository struct {
	// FetchCompanyFunc is called by FetchCompany if set.
	FetchCompanyFunc func(ctx context.Context, id core.CompanyID) (*core.Company, error)

	// FetchPeopleByCompanyFunc is called by FetchPeopleByCompany if set.
	FetchPeopleByCompanyFunc func(ctx context.Context, id core.CompanyID) ([]*core.Person, error)

	// FetchPersonFunc is called by FetchPerson if set.
	FetchPersonFunc func(ctx context.Context, id core.PersonID) (*core.Person, error)

	// FetchPeopleByIDsFunc is called by FetchPeopleByIDs if set.
	FetchPeopleByIDsFunc func(ctx context.Context, ids ...core.PersonID) ([]*core.Person, error)

	// CloseFunc is called by Close if set.
	CloseFunc func() error

	companies []*core.Company
	people    []*core.Person

	mu         sync.Mutex
	callCounts map[string]int
}

var _ storage.Repository = (*MockRepository)(nil)

// NewMockRepository creates a mock repository with no records.
func NewMockRepository() *MockRepository {
	return &MockRepository{}
}

// WithCompanies seeds companies used by the default behavior.
func (m *MockRepository) WithCompanies(companies ...*core.Company) *MockRepository {
	m.companies = append(m.companies, companies...)
	return m
}

// WithPeople seeds people used by the default behavior.
func (m *MockRepository) WithPeople(people ...*core.Person) *MockRepository {
	m.people = append(m.people, people...)
	return m
}

// CallCount returns how many times the named method was called.
func (m *MockRepository) CallCount(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCounts[method]
}

func (m *MockRepository) record(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.callCounts == nil {
		m.callCounts = make(map[string]int)
	}
	m.callCounts[method]++
}

// FetchCompany returns the seeded company with the given id.
func (m *MockRepository) FetchCompany(ctx context.Context, id core.CompanyID) (*core.Company, error) {
	m.record("FetchCompany")
	if m.FetchCompanyFunc != nil {
		return m.FetchCompanyFunc(ctx, id)
	}
	for _, company := range m.companies {
		if company.ID == id {
			return company, nil
		}
	}
	return nil, storage.ErrCompanyNotFound
}

// FetchPeopleByCompany returns the seeded people working at the company.
func (m *MockRepository) FetchPeopleByCompany(ctx context.Context, id core.CompanyID) ([]*core.Person, error) {
	m.record("FetchPeopleByCompany")
	if m.FetchPeopleByCompanyFunc != nil {
		return m.FetchPeopleByCompanyFunc(ctx, id)
	}
	result := []*core.Person{}
	for _, person := range m.people {
		if person.WorksAt(id) {
			result = append(result, person)
		}
	}
	return result, nil
}

// FetchPerson returns the seeded person with the given id.
func (m *MockRepository) FetchPerson(ctx context.Context, id core.PersonID) (*core.Person, error) {
	m.record("FetchPerson")
	if m.FetchPersonFunc != nil {
		return m.FetchPersonFunc(ctx, id)
	}
	if person := m.findPerson(id); person != nil {
		return person, nil
	}
	return nil, storage.ErrPersonNotFound
}

// FetchPeopleByIDs returns the seeded people matching ids, in order.
func (m *MockRepository) FetchPeopleByIDs(ctx context.Context, ids ...core.PersonID) ([]*core.Person, error) {
	m.record("FetchPeopleByIDs")
	if m.FetchPeopleByIDsFunc != nil {
		return m.FetchPeopleByIDsFunc(ctx, ids...)
	}
	result := make([]*core.Person, 0, len(ids))
	for _, id := range ids {
		if person := m.findPerson(id); person != nil {
			result = append(result, person)
		}
	}
	return result, nil
}

// Close calls CloseFunc if set.
func (m *MockRepository) Close() error {
	m.record("Close")
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

func (m *MockRepository) findPerson(id core.PersonID) *core.Person {
	for _, person := range m.people {
		if person.ID == id {
			return person
		}
	}
	return nil
}
