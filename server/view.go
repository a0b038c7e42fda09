package server

import (
	"time"

	"github.com/poiesic/paranuara/core"
	"github.com/poiesic/paranuara/query"
)

// PersonView is the JSON rendering of a person.
type PersonView struct {
	ID            core.PersonID   `json:"id"`
	ExternalID    string          `json:"mongo_id"`
	GUID          string          `json:"guid"`
	HasDied       bool            `json:"has_died"`
	Balance       string          `json:"balance"`
	Picture       string          `json:"picture"`
	Age           int             `json:"age"`
	EyeColor      string          `json:"eye_color"`
	Name          string          `json:"name"`
	Gender        string          `json:"gender"`
	CompanyID     *core.CompanyID `json:"company_id"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	About         string          `json:"about"`
	Registered    time.Time       `json:"registered"`
	Tags          []string        `json:"tags"`
	Friends       []core.PersonID `json:"friends"`
	Greeting      string          `json:"greeting"`
	FavouriteFood []string        `json:"favourite_food"`
	Fruits        []string        `json:"fruits"`
	Vegetables    []string        `json:"vegetables"`
}

// JoinView is the JSON rendering of a friends-in-common join.
type JoinView struct {
	Person1         *PersonView   `json:"person1"`
	Person2         *PersonView   `json:"person2"`
	FriendsInCommon []*PersonView `json:"friends_in_common"`
}

// NewPersonView renders p. Nil lists become empty arrays.
func NewPersonView(p *core.Person) *PersonView {
	return &PersonView{
		ID:            p.ID,
		ExternalID:    p.ExternalID,
		GUID:          p.GUID,
		HasDied:       p.HasDied,
		Balance:       p.Balance.String(),
		Picture:       p.PictureURL,
		Age:           p.Age,
		EyeColor:      p.EyeColor,
		Name:          p.Name,
		Gender:        p.Gender,
		CompanyID:     p.CompanyID,
		Email:         p.Email,
		Phone:         p.Phone,
		Address:       p.Address,
		About:         p.About,
		Registered:    p.RegisteredAt,
		Tags:          nonNil(p.Tags),
		Friends:       nonNil(p.FriendIDs),
		Greeting:      p.Greeting,
		FavouriteFood: nonNil(p.FavouriteFoods),
		Fruits:        p.Fruits(),
		Vegetables:    p.Vegetables(),
	}
}

// NewPeopleView renders a list of people, never returning nil.
func NewPeopleView(people []*core.Person) []*PersonView {
	views := make([]*PersonView, 0, len(people))
	for _, p := range people {
		views = append(views, NewPersonView(p))
	}
	return views
}

// NewJoinView renders a join result.
func NewJoinView(r *query.JoinResult) *JoinView {
	return &JoinView{
		Person1:         NewPersonView(r.Person1),
		Person2:         NewPersonView(r.Person2),
		FriendsInCommon: NewPeopleView(r.FriendsInCommon),
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
