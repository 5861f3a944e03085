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



// Package xref finds cross-references: verses whose text resembles a
// source verse.
//
// Two interchangeable metrics are provided:
//   - Jaccard similarity over significant-word sets, filtered by a threshold
//   - N-gram phrase overlap, counting shared n-word phrases
//
// Either metric can expand words through a synonym thesaurus. The Ranker
// resolves the source verse, scores every other verse in the corpus,
// and returns the qualifying candidates ordered by score. The corpus and
// thesaurus are only read, so a Ranker is safe for concurrent queries.
package xref
