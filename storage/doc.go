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


// Package storage provides the storage abstraction layer for lectio.
//
// Queries always run against an in-memory corpus. Storage is an
// alternative corpus source: a parsed corpus is imported once and later
// loaded back in its original order, which skips re-parsing large text
// or JSON files.
//
// # Architecture
//
// The storage layer follows the Repository pattern:
//
//   - Repository: transactions and lifecycle shared by all repositories
//   - VerseRepository: ordered verse storage, lookup by reference, metadata
//
// Verses are encoded with mus-go serializers (see VerseMUS).
//
// # Usage
//
// Use in tests with in-memory storage:
//
//	repo, backend, err := badger.NewMemoryRepository()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer backend.Close()
//	defer repo.Close()
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
package storage
