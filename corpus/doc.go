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


// Package corpus loads scripture text into memory and answers lookups.
//
// Two on-disk formats are supported. The tab-delimited format starts with
// two header lines (translation id and full name) followed by one verse
// per line:
//
//	KJV
//	King James Version
//	Genesis 1:1<TAB>In the beginning God created the heaven and the earth.
//
// The JSON format nests books, chapters and verses:
//
//	{"Genesis": {"1": {"1": "In the beginning ..."}}}
//
// A Corpus is read-only once loaded and safe for concurrent use.
package corpus
