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


// Package query answers the three questions asked of the Paranuara dataset.
//
// The Service type sits on top of any storage.Repository and provides:
//   - the employees of a company
//   - a single person
//   - the friends two people have in common who are alive and have brown eyes
//
// Lookup misses surface as the storage package's not-found errors, unchanged,
// so callers can tell a missing company from a missing person with errors.Is.
package query
