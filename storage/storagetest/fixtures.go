// Package storagetest provides a small dataset and a behavioral test suite
// shared by every storage.Repository implementation.
package storagetest

import (
	"time"

	"github.com/poiesic/paranuara/core"
	"github.com/shopspring/decimal"
)

// DanglingCompanyID is referenced by person 7 but absent from Companies.
const DanglingCompanyID core.CompanyID = 9

// Companies returns the fixture companies. Company 2 has no employees.
func Companies() []*core.Company {
	return []*core.Company{
		{ID: 0, Name: "NETBOOK"},
		{ID: 1, Name: "PERMADYNE"},
		{ID: 2, Name: "LINGOAGE"},
	}
}

// People returns the fixture people, ordered by id.
//
// Person 0 and person 1 share friends 3, 4 and 5. Of those only person 3
// is alive with brown eyes. Person 0 also lists friend 99, who does not
// exist. Person 6 works nowhere. Person 7 works for company 9, which does
// not exist.
func People() []*core.Person {
	return []*core.Person{
		newPerson(0, "Carmella Lambert", "blue", false, core.CompanyRef(0), 2, 3, 4, 5, 99),
		newPerson(1, "Decker Mckenzie", "brown", false, core.CompanyRef(1), 3, 4, 5, 0),
		newPerson(2, "Bonnie Bass", "brown", false, core.CompanyRef(0), 0),
		newPerson(3, "Rosemary Hayes", "brown", false, core.CompanyRef(1), 0, 1),
		newPerson(4, "Mindy Beasley", "blue", false, core.CompanyRef(1), 0, 1),
		newPerson(5, "Walton Roach", "brown", true, core.CompanyRef(1), 0, 1),
		newPerson(6, "Grace Kelly", "green", false, nil),
		newPerson(7, "Noel Pratt", "brown", false, core.CompanyRef(DanglingCompanyID), 6),
	}
}

func newPerson(id core.PersonID, name, eyes string, dead bool, company *core.CompanyID, friends ...core.PersonID) *core.Person {
	if friends == nil {
		friends = []core.PersonID{}
	}
	return &core.Person{
		ID:             id,
		ExternalID:     "595eeb9b96d80a5bc7afb10" + string(rune('0'+id)),
		GUID:           "5e71dc5d-61c0-4f3b-8b92-d77310c7fa4" + string(rune('0'+id)),
		HasDied:        dead,
		Balance:        decimal.NewFromInt(1000 + int64(id)),
		PictureURL:     "http://placehold.it/32x32",
		Age:            30 + int(id),
		EyeColor:       eyes,
		Name:           name,
		Gender:         "female",
		CompanyID:      company,
		Email:          "person@example.com",
		Phone:          "+1 (910) 567-3630",
		Address:        "628 Sumner Place, Sperryville, American Samoa, 9819",
		About:          "Non duis dolore ad enim.",
		RegisteredAt:   time.Date(2016, 7, 13, 12, 29, 7, 0, time.FixedZone("", -10*60*60)),
		Tags:           []string{"id", "quis"},
		FriendIDs:      friends,
		Greeting:       "Hello, " + name + "! You have 6 unread messages.",
		FavouriteFoods: []string{"orange", "apple", "celery"},
	}
}

// IDs returns the ids of people, in order.
func IDs(people []*core.Person) []core.PersonID {
	ids := make([]core.PersonID, len(people))
	for i, p := range people {
		ids[i] = p.ID
	}
	return ids
}
