package ingestion

import (
	"slices"

	"github.com/poiesic/paranuara/core"
)

// Dataset is a fully decoded copy of the companies and people files.
type Dataset struct {
	Companies []*core.Company
	People    []*core.Person
}

// Len returns the total number of records.
func (d *Dataset) Len() int {
	return len(d.Companies) + len(d.People)
}

// Foods returns every favourite food named by anyone, sorted and without repeats.
func (d *Dataset) Foods() []string {
	foods := []string{}
	for _, person := range d.People {
		foods = append(foods, person.FavouriteFoods...)
	}
	slices.Sort(foods)
	return slices.Compact(foods)
}
