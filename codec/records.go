package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/poiesic/paranuara/core"
)

// companyDocument is the wire shape of a company.
// Pointer fields distinguish an absent field from a zero value.
type companyDocument struct {
	Index   *int64  `json:"index"`
	Company *string `json:"company"`
}

// personDocument is the wire shape of a person. Field order is the
// canonical key order used when encoding.
type personDocument struct {
	ExternalID    *string      `json:"_id"`
	Index         *int64       `json:"index"`
	GUID          *string      `json:"guid"`
	HasDied       *bool        `json:"has_died"`
	Balance       *string      `json:"balance"`
	Picture       *string      `json:"picture"`
	Age           *int         `json:"age"`
	EyeColor      *string      `json:"eyeColor"`
	Name          *string      `json:"name"`
	Gender        *string      `json:"gender"`
	CompanyID     *int64       `json:"company_id,omitempty"`
	Email         *string      `json:"email"`
	Phone         *string      `json:"phone"`
	Address       *string      `json:"address"`
	About         *string      `json:"about"`
	Registered    *string      `json:"registered"`
	Tags          *[]string    `json:"tags"`
	Friends       *[]friendRef `json:"friends"`
	Greeting      *string      `json:"greeting"`
	FavouriteFood *[]string    `json:"favouriteFood"`
}

type friendRef struct {
	Index *int64 `json:"index"`
}

// fieldReader collects the first missing required field while unpacking a document.
type fieldReader struct {
	err error
}

func requireField[T any](r *fieldReader, v *T, field string) T {
	var zero T
	if r.err != nil {
		return zero
	}
	if v == nil {
		r.err = fmt.Errorf("%w: field %q: %w", ErrMalformedRecord, field, ErrMissingField)
		return zero
	}
	return *v
}

func unmarshalDocument(raw []byte, doc any) error {
	if err := json.Unmarshal(raw, doc); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return fmt.Errorf("%w: field %q: expected %s, got %s", ErrMalformedRecord, typeErr.Field, typeErr.Type, typeErr.Value)
		}
		return fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	return nil
}

// DecodeCompany converts a raw company record into a Company.
func DecodeCompany(raw json.RawMessage) (*core.Company, error) {
	var doc companyDocument
	if err := unmarshalDocument(raw, &doc); err != nil {
		return nil, err
	}

	r := &fieldReader{}
	company := &core.Company{
		ID:   core.CompanyID(requireField(r, doc.Index, "index")),
		Name: requireField(r, doc.Company, "company"),
	}
	if r.err != nil {
		return nil, r.err
	}

	if err := core.ValidateCompany(company); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	return company, nil
}

// EncodeCompany converts a Company back into its raw record.
func EncodeCompany(company *core.Company) (json.RawMessage, error) {
	if company == nil {
		return nil, ErrNilRecord
	}
	id := int64(company.ID)
	name := company.Name
	return json.Marshal(companyDocument{Index: &id, Company: &name})
}

// DecodePerson converts a raw person record into a Person.
func DecodePerson(raw json.RawMessage) (*core.Person, error) {
	var doc personDocument
	if err := unmarshalDocument(raw, &doc); err != nil {
		return nil, err
	}

	r := &fieldReader{}
	person := &core.Person{
		ExternalID: requireField(r, doc.ExternalID, "_id"),
		ID:         core.PersonID(requireField(r, doc.Index, "index")),
		GUID:       requireField(r, doc.GUID, "guid"),
		HasDied:    requireField(r, doc.HasDied, "has_died"),
		PictureURL: requireField(r, doc.Picture, "picture"),
		Age:        requireField(r, doc.Age, "age"),
		EyeColor:   requireField(r, doc.EyeColor, "eyeColor"),
		Name:       requireField(r, doc.Name, "name"),
		Gender:     requireField(r, doc.Gender, "gender"),
		Email:      requireField(r, doc.Email, "email"),
		Phone:      requireField(r, doc.Phone, "phone"),
		Address:    requireField(r, doc.Address, "address"),
		About:      requireField(r, doc.About, "about"),
		Tags:       requireField(r, doc.Tags, "tags"),
		Greeting:   requireField(r, doc.Greeting, "greeting"),

		FavouriteFoods: requireField(r, doc.FavouriteFood, "favouriteFood"),
	}
	balance := requireField(r, doc.Balance, "balance")
	registered := requireField(r, doc.Registered, "registered")
	friends := requireField(r, doc.Friends, "friends")
	if r.err != nil {
		return nil, r.err
	}

	var err error
	if person.Balance, err = ParseCurrency(balance); err != nil {
		return nil, fmt.Errorf("%w: field %q: %w", ErrMalformedRecord, "balance", err)
	}
	if person.RegisteredAt, err = ParseTimestamp(registered); err != nil {
		return nil, fmt.Errorf("%w: field %q: %w", ErrMalformedRecord, "registered", err)
	}

	person.FriendIDs = make([]core.PersonID, len(friends))
	for i, friend := range friends {
		if friend.Index == nil {
			return nil, fmt.Errorf("%w: field %q: element %d: %w", ErrMalformedRecord, "friends", i, ErrMissingField)
		}
		person.FriendIDs[i] = core.PersonID(*friend.Index)
	}

	if doc.CompanyID != nil {
		person.CompanyID = core.CompanyRef(core.CompanyID(*doc.CompanyID))
	}

	if err := core.ValidatePerson(person); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	return person, nil
}

// EncodePerson converts a Person back into its raw record.
func EncodePerson(person *core.Person) (json.RawMessage, error) {
	if person == nil {
		return nil, ErrNilRecord
	}

	id := int64(person.ID)
	balance := FormatCurrency(person.Balance)
	registered := FormatTimestamp(person.RegisteredAt)

	friends := make([]friendRef, len(person.FriendIDs))
	for i, friendID := range person.FriendIDs {
		index := int64(friendID)
		friends[i] = friendRef{Index: &index}
	}

	tags := nonNil(person.Tags)
	foods := nonNil(person.FavouriteFoods)

	doc := personDocument{
		ExternalID:    &person.ExternalID,
		Index:         &id,
		GUID:          &person.GUID,
		HasDied:       &person.HasDied,
		Balance:       &balance,
		Picture:       &person.PictureURL,
		Age:           &person.Age,
		EyeColor:      &person.EyeColor,
		Name:          &person.Name,
		Gender:        &person.Gender,
		Email:         &person.Email,
		Phone:         &person.Phone,
		Address:       &person.Address,
		About:         &person.About,
		Registered:    &registered,
		Tags:          &tags,
		Friends:       &friends,
		Greeting:      &person.Greeting,
		FavouriteFood: &foods,
	}
	if person.CompanyID != nil {
		companyID := int64(*person.CompanyID)
		doc.CompanyID = &companyID
	}

	return json.Marshal(doc)
}

// nonNil keeps empty lists encoding as [] rather than null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// ReadRecords reads a JSON array of records without decoding the records themselves.
func ReadRecords(r io.Reader) ([]json.RawMessage, error) {
	var records []json.RawMessage
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: reading record array: %w", ErrMalformedRecord, err)
	}
	return records, nil
}

// DecodeCompanies decodes every record of a company array.
// The first malformed record aborts decoding.
func DecodeCompanies(records []json.RawMessage) ([]*core.Company, error) {
	companies := make([]*core.Company, len(records))
	for i, raw := range records {
		company, err := DecodeCompany(raw)
		if err != nil {
			return nil, fmt.Errorf("company record %d: %w", i, err)
		}
		companies[i] = company
	}
	return companies, nil
}

// DecodePeople decodes every record of a person array.
// The first malformed record aborts decoding.
func DecodePeople(records []json.RawMessage) ([]*core.Person, error) {
	people := make([]*core.Person, len(records))
	for i, raw := range records {
		person, err := DecodePerson(raw)
		if err != nil {
			return nil, fmt.Errorf("person record %d: %w", i, err)
		}
		people[i] = person
	}
	return people, nil
}
