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


// Package storage provides the storage abstraction layer for paranuara.
//
// This package defines the Repository interface that decouples the query
// service from how the dataset is stored. Two backends implement it and are
// interchangeable behind the interface:
//
//   - memory: the whole dataset held in maps, built once from decoded records
//   - badger: a persistent document store keyed by natural id
//
// # Constructor Return Type Pattern
//
// Public backend constructors return concrete types that satisfy
// Repository. Callers that only need reads should hold a storage.Repository:
//
//	var repo storage.Repository
//	repo, err = memory.NewRepository(companies, people)
//
// # Errors
//
// A lookup miss is not a fault. FetchCompany and FetchPerson report misses
// as ErrCompanyNotFound and ErrPersonNotFound, both of which match
// ErrNotFound under errors.Is. Bulk fetches omit misses instead. Anything
// else (a closed store, I/O failure, corrupt document) propagates to the
// caller unchanged.
//
// # Usage
//
// Use in tests with in-memory storage:
//
//	repo, err := badger.NewMemoryRepository()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer repo.Close()
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation
// and timeout support. Pass context.Background() for operations
// without specific timeout requirements.
package storage
