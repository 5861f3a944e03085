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



package xref

import "errors"

var (
	// ErrInvalidMetricSpec indicates an unparsable metric string.
	// ParseMetric still returns the default Jaccard metric alongside it.
	ErrInvalidMetricSpec = errors.New("invalid similarity metric")

	// ErrMetricRequired is returned when a query has no metric.
	ErrMetricRequired = errors.New("similarity metric required")
)
