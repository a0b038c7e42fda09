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


package storage

import (
	"errors"
	"fmt"

	"github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/varint"

	"github.com/poiesic/paranuara/codec"
	"github.com/poiesic/paranuara/core"
)

// MarshalID serializes an id as a MUS varint.
// The encoding is compact but does not sort; keys use keys.go instead.
func MarshalID[T ~int64](id T) []byte {
	buf := make([]byte, varint.Int64.Size(int64(id)))
	varint.Int64.Marshal(int64(id), buf)
	return buf
}

// UnmarshalID deserializes an id written by MarshalID.
func UnmarshalID[T ~int64](data []byte) (T, error) {
	id, _, err := varint.Int64.Unmarshal(data)
	if errors.Is(err, mus.ErrTooSmallByteSlice) {
		return 0, fmt.Errorf("%w: %w", ErrTruncatedData, err)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return T(id), nil
}

// MarshalCompany serializes a Company to its stored document.
func MarshalCompany(company *core.Company) ([]byte, error) {
	doc, err := codec.EncodeCompany(company)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return doc, nil
}

// UnmarshalCompany deserializes a stored company document.
func UnmarshalCompany(data []byte) (*core.Company, error) {
	company, err := codec.DecodeCompany(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return company, nil
}

// MarshalPerson serializes a Person to its stored document.
func MarshalPerson(person *core.Person) ([]byte, error) {
	doc, err := codec.EncodePerson(person)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return doc, nil
}

// UnmarshalPerson deserializes a stored person document.
func UnmarshalPerson(data []byte) (*core.Person, error) {
	person, err := codec.DecodePerson(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return person, nil
}
