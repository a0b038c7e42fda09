// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "fmt"

// ValidateCompany validates a Company according to domain rules.
//
// Validation rules:
//   - ID must not be negative
//
// Name may be empty; the dataset does not guarantee one.
func ValidateCompany(company *Company) error {
	if company == nil {
		return fmt.Errorf("%w: company is nil", ErrInvalidCompany)
	}

	if company.ID < 0 {
		return fmt.Errorf("%w: %w: %d", ErrInvalidCompany, ErrNegativeID, company.ID)
	}

	return nil
}

// ValidatePerson validates a Person according to domain rules.
//
// Validation rules:
//   - ID must not be negative
//   - Age must not be negative
//   - CompanyID, when present, must not be negative
//   - FriendIDs must not contain negative ids
//
// NOT validated (tolerated by design of the dataset):
//   - CompanyID referencing a company that does not exist
//   - FriendIDs referencing people that do not exist
func ValidatePerson(person *Person) error {
	if person == nil {
		return fmt.Errorf("%w: person is nil", ErrInvalidPerson)
	}

	if person.ID < 0 {
		return fmt.Errorf("%w: %w: %d", ErrInvalidPerson, ErrNegativeID, person.ID)
	}

	if person.Age < 0 {
		return fmt.Errorf("%w: %w: %d", ErrInvalidPerson, ErrNegativeAge, person.Age)
	}

	if person.CompanyID != nil && *person.CompanyID < 0 {
		return fmt.Errorf("%w: company reference: %w: %d", ErrInvalidPerson, ErrNegativeID, *person.CompanyID)
	}

	for _, friendID := range person.FriendIDs {
		if friendID < 0 {
			return fmt.Errorf("%w: friend reference: %w: %d", ErrInvalidPerson, ErrNegativeID, friendID)
		}
	}

	return nil
}
