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


package storage

import (
	"fmt"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/lectio/core"
)

type verseMUS struct{}

// VerseMUS is the mus-go serializer for core.Verse. Fields are written
// in declaration order.
var VerseMUS = verseMUS{}

func (verseMUS) Size(v core.Verse) (size int) {
	size = ord.String.Size(v.Book)
	size += varint.Uint64.Size(uint64(v.Chapter))
	size += varint.Uint64.Size(uint64(v.Verse))
	return size + ord.String.Size(v.Text)
}

func (verseMUS) Marshal(v core.Verse, bs []byte) (n int) {
	n = ord.String.Marshal(v.Book, bs)
	n += varint.Uint64.Marshal(uint64(v.Chapter), bs[n:])
	n += varint.Uint64.Marshal(uint64(v.Verse), bs[n:])
	return n + ord.String.Marshal(v.Text, bs[n:])
}

func (verseMUS) Unmarshal(bs []byte) (v core.Verse, n int, err error) {
	v.Book, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var (
		n1  int
		num uint64
	)
	num, n1, err = varint.Uint64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Chapter = int(num)
	num, n1, err = varint.Uint64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Verse = int(num)
	v.Text, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

// MarshalOrdinal serializes a corpus position to bytes.
func MarshalOrdinal(ordinal uint64) []byte {
	buf := make([]byte, varint.Uint64.Size(ordinal))
	varint.Uint64.Marshal(ordinal, buf)
	return buf
}

// UnmarshalOrdinal deserializes a corpus position from bytes.
func UnmarshalOrdinal(data []byte) (uint64, error) {
	ordinal, _, err := varint.Uint64.Unmarshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return ordinal, nil
}

// MarshalVerse serializes a Verse to bytes.
func MarshalVerse(verse *core.Verse) []byte {
	buf := make([]byte, VerseMUS.Size(*verse))
	VerseMUS.Marshal(*verse, buf)
	return buf
}

// UnmarshalVerse deserializes a Verse from bytes.
func UnmarshalVerse(data []byte) (*core.Verse, error) {
	verse, n, err := VerseMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	if n != len(data) {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrSerializationFailed, len(data)-n)
	}
	return &verse, nil
}
