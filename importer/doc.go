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


// Package importer writes a parsed corpus into a verse repository.
//
// Verses are validated up front, then written in batches so a full
// translation never lands in a single oversized transaction. Failed
// batches are retried with exponential backoff, and progress is reported
// to a writer as the import runs.
package importer
