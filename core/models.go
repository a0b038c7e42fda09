package core

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// CompanyID is the natural key of a company in the dataset.
type CompanyID int64

// PersonID is the natural key of a person in the dataset.
type PersonID int64

// Company is an organization people can work for.
type Company struct {
	ID   CompanyID
	Name string
}

// Person is a resident of Paranuara.
// Records are built once at load time and never mutated afterwards.
type Person struct {
	ID             PersonID
	ExternalID     string // Identifier assigned by the upstream document store
	GUID           string
	HasDied        bool
	Balance        decimal.Decimal
	PictureURL     string
	Age            int
	EyeColor       string
	Name           string
	Gender         string
	CompanyID      *CompanyID // nil when the person has no employer
	Email          string
	Phone          string
	Address        string
	About          string
	RegisteredAt   time.Time
	Tags           []string
	FriendIDs      []PersonID // Directed: listing someone does not make them list you back
	Greeting       string
	FavouriteFoods []string
}

// WorksAt reports whether the person is employed by the given company.
func (p *Person) WorksAt(id CompanyID) bool {
	return p.CompanyID != nil && *p.CompanyID == id
}

// HasFriend reports whether id appears in the person's friend list.
func (p *Person) HasFriend(id PersonID) bool {
	return slices.Contains(p.FriendIDs, id)
}

// Fruits returns the favourite foods that are fruits, in their original order.
func (p *Person) Fruits() []string {
	return filterFoods(p.FavouriteFoods, IsFruit)
}

// Vegetables returns the favourite foods that are vegetables, in their original order.
func (p *Person) Vegetables() []string {
	return filterFoods(p.FavouriteFoods, IsVegetable)
}

func filterFoods(foods []string, keep func(string) bool) []string {
	result := make([]string, 0, len(foods))
	for _, food := range foods {
		if keep(food) {
			result = append(result, food)
		}
	}
	return result
}

// CompanyRef returns a pointer to a copy of id, for populating Person.CompanyID.
func CompanyRef(id CompanyID) *CompanyID {
	return &id
}
