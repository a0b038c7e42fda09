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


// Package codec converts raw dataset records to typed core values and back.
//
// The raw form is one JSON object per record, exactly as shipped in
// companies.json and people.json. Decoding owns every format rule of the
// dataset:
//
//   - balance is a currency string ("$2,418.59") decoded to an exact decimal
//   - registered is a timestamp with a UTC offset ("2016-07-13T12:29:07 -10:00")
//   - friends is a list of {"index": N} objects flattened to person ids
//   - company_id is optional; absent or null means "no company"
//
// Any other field that is absent, null or of the wrong JSON type makes the
// record malformed. Callers loading a dataset treat that as fatal for the
// whole load rather than skipping the record.
//
// Encoding is the inverse of decoding: for a well-formed record,
// EncodePerson(DecodePerson(raw)) yields a JSON document equivalent to raw.
//
// # Usage
//
//	person, err := codec.DecodePerson(raw)
//	if err != nil {
//	    return err // wraps codec.ErrMalformedRecord
//	}
//	doc, err := codec.EncodePerson(person)
package codec
