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


package corpus

import "errors"

var (
	// ErrNoVerses is returned when a corpus file yields no verses.
	ErrNoVerses = errors.New("corpus contains no verses")

	// ErrInvalidJSON is returned when a JSON corpus cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON corpus")

	// ErrUnknownVersion is returned for a translation shortcut with no bundled file.
	ErrUnknownVersion = errors.New("unknown translation version")

	// ErrEmptyCorpus is returned when selecting from a corpus without verses.
	ErrEmptyCorpus = errors.New("corpus is empty")
)
