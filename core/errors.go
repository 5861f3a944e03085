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



package core

import "errors"

// Reference errors
var (
	// ErrInvalidReferenceFormat indicates a reference string is not of the form "Book Chapter:Verse".
	ErrInvalidReferenceFormat = errors.New("invalid reference format")

	// ErrVerseNotFound indicates no verse in the corpus matches a reference.
	ErrVerseNotFound = errors.New("verse not found")
)

// Domain validation errors
var (
	// ErrInvalidVerse indicates a Verse failed validation.
	ErrInvalidVerse = errors.New("invalid verse")

	// ErrEmptyBook indicates the Book field is empty.
	ErrEmptyBook = errors.New("book cannot be empty")

	// ErrInvalidChapter indicates a chapter number below 1.
	ErrInvalidChapter = errors.New("chapter must be positive")

	// ErrInvalidVerseNumber indicates a verse number below 1.
	ErrInvalidVerseNumber = errors.New("verse number must be positive")

	// ErrEmptyText indicates the Text field is empty.
	ErrEmptyText = errors.New("verse text cannot be empty")
)
