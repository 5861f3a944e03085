package storage

import (
	"testing"

	"github.com/poiesic/lectio/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalOrdinal(t *testing.T) {
	tests := []struct {
		name    string
		ordinal uint64
	}{
		{"zero", 0},
		{"small", 42},
		{"max uint64", 18446744073709551615},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalOrdinal(tt.ordinal)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalOrdinal(data)
			require.NoError(t, err)
			assert.Equal(t, tt.ordinal, decoded)
		})
	}
}

func TestUnmarshalOrdinal_Invalid(t *testing.T) {
	_, err := UnmarshalOrdinal([]byte{})
	assert.ErrorIs(t, err, ErrSerializationFailed)
}

func TestMarshalUnmarshalVerse(t *testing.T) {
	tests := []struct {
		name  string
		verse *core.Verse
	}{
		{
			name:  "simple verse",
			verse: &core.Verse{Book: "John", Chapter: 11, Verse: 35, Text: "Jesus wept."},
		},
		{
			name:  "multi-word book",
			verse: &core.Verse{Book: "Song of Solomon", Chapter: 2, Verse: 1, Text: "I am the rose of Sharon, and the lily of the valleys."},
		},
		{
			name:  "large numbers",
			verse: &core.Verse{Book: "Psalms", Chapter: 119, Verse: 176, Text: "I have gone astray like a lost sheep"},
		},
		{
			name:  "unicode text",
			verse: &core.Verse{Book: "Génesis", Chapter: 1, Verse: 1, Text: "En el principio creó Dios los cielos y la tierra."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalVerse(tt.verse)
			require.NotEmpty(t, data)
			assert.Len(t, data, VerseMUS.Size(*tt.verse))

			decoded, err := UnmarshalVerse(data)
			require.NoError(t, err)
			assert.Equal(t, tt.verse, decoded)
		})
	}
}

func TestUnmarshalVerse_Invalid(t *testing.T) {
	valid := MarshalVerse(&core.Verse{Book: "John", Chapter: 3, Verse: 16, Text: "For God so loved the world"})

	tests := []struct {
		name string
		data []byte
	}{
		{"empty data", []byte{}},
		{"truncated", valid[:len(valid)-5]},
		{"trailing bytes", append(append([]byte{}, valid...), 0x01)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalVerse(tt.data)
			assert.ErrorIs(t, err, ErrSerializationFailed)
		})
	}
}
