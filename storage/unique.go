package storage

import (
	"fmt"

	"github.com/poiesic/paranuara/core"
)

// CheckUniqueIDs returns ErrDuplicateKey naming the first company or person
// id that appears twice. Nil records are ignored.
func CheckUniqueIDs(companies []*core.Company, people []*core.Person) error {
	seenCompanies := make(map[core.CompanyID]struct{}, len(companies))
	for _, company := range companies {
		if company == nil {
			continue
		}
		if _, exists := seenCompanies[company.ID]; exists {
			return fmt.Errorf("%w: company %d", ErrDuplicateKey, company.ID)
		}
		seenCompanies[company.ID] = struct{}{}
	}

	seenPeople := make(map[core.PersonID]struct{}, len(people))
	for _, person := range people {
		if person == nil {
			continue
		}
		if _, exists := seenPeople[person.ID]; exists {
			return fmt.Errorf("%w: person %d", ErrDuplicateKey, person.ID)
		}
		seenPeople[person.ID] = struct{}{}
	}
	return nil
}
