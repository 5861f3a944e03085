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


package importer

import "errors"

var (
	// ErrInvalidMaxAttempts is returned when a RetryPolicy allows no attempts.
	ErrInvalidMaxAttempts = errors.New("retry attempts must be greater than 0")

	// ErrRepositoryRequired is returned when no verse repository is provided.
	ErrRepositoryRequired = errors.New("verse repository required")

	// ErrNothingToImport is returned for a nil or empty corpus.
	ErrNothingToImport = errors.New("corpus has no verses to import")
)
