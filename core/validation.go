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

import (
	"fmt"
	"strings"
)

// ValidateVerse validates a Verse according to domain rules.
//
// Validation rules:
//   - Book must not be blank
//   - Chapter and Verse must be positive
//   - Text must not be blank
func ValidateVerse(verse *Verse) error {
	if verse == nil {
		return fmt.Errorf("%w: verse is nil", ErrInvalidVerse)
	}

	if strings.TrimSpace(verse.Book) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidVerse, ErrEmptyBook)
	}

	if verse.Chapter < 1 {
		return fmt.Errorf("%w: %w: value %d", ErrInvalidVerse, ErrInvalidChapter, verse.Chapter)
	}

	if verse.Verse < 1 {
		return fmt.Errorf("%w: %w: value %d", ErrInvalidVerse, ErrInvalidVerseNumber, verse.Verse)
	}

	if strings.TrimSpace(verse.Text) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidVerse, ErrEmptyText)
	}

	return nil
}
