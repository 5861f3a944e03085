package core

import (
	"errors"
	"testing"
)

func TestParseReference(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Reference
		wantErr error
	}{
		{
			name:  "simple reference",
			input: "John 3:16",
			want:  Reference{Book: "John", Chapter: 3, Verse: 16},
		},
		{
			name:  "numbered book",
			input: "1 Kings 2:3",
			want:  Reference{Book: "1 Kings", Chapter: 2, Verse: 3},
		},
		{
			name:  "multi-word book",
			input: "Song of Solomon 1:1",
			want:  Reference{Book: "Song of Solomon", Chapter: 1, Verse: 1},
		},
		{
			name:  "surrounding whitespace",
			input: "  Genesis 1:1\n",
			want:  Reference{Book: "Genesis", Chapter: 1, Verse: 1},
		},
		{
			name:  "case preserved",
			input: "jOhN 3:16",
			want:  Reference{Book: "jOhN", Chapter: 3, Verse: 16},
		},
		{
			name:    "missing verse",
			input:   "John 3",
			wantErr: ErrInvalidReferenceFormat,
		},
		{
			name:    "missing book",
			input:   "3:16",
			wantErr: ErrInvalidReferenceFormat,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: ErrInvalidReferenceFormat,
		},
		{
			name:    "zero chapter",
			input:   "John 0:16",
			wantErr: ErrInvalidReferenceFormat,
		},
		{
			name:    "trailing text",
			input:   "John 3:16 extra",
			wantErr: ErrInvalidReferenceFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReference(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseReference(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseReference(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseReference(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseReference_RoundTrip(t *testing.T) {
	inputs := []string{
		"John 3:16",
		"Genesis 1:1",
		"Song of Solomon 2:4",
		"PSALMS 119:105",
		"revelation 22:21",
	}

	for _, input := range inputs {
		ref, err := ParseReference(input)
		if err != nil {
			t.Fatalf("ParseReference(%q) unexpected error: %v", input, err)
		}
		if got := ref.String(); got != input {
			t.Errorf("round trip of %q produced %q", input, got)
		}
	}
}

func TestFindVerse(t *testing.T) {
	verses := []*Verse{
		{Book: "John", Chapter: 3, Verse: 16, Text: "For God so loved the world"},
		{Book: "John", Chapter: 3, Verse: 17, Text: "For God sent not his Son into the world"},
	}

	v, err := FindVerse(verses, Reference{Book: "JOHN", Chapter: 3, Verse: 17})
	if err != nil {
		t.Fatalf("FindVerse() unexpected error: %v", err)
	}
	if v != verses[1] {
		t.Errorf("FindVerse() returned %v, want %v", v, verses[1])
	}

	_, err = FindVerse(verses, Reference{Book: "John", Chapter: 4, Verse: 1})
	if !errors.Is(err, ErrVerseNotFound) {
		t.Errorf("FindVerse() error = %v, want %v", err, ErrVerseNotFound)
	}
}
