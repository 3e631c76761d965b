package fastcsv2json

import "testing"

func TestSanitizerApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		replace string
		erase   string
		input   string
		want    string
	}{
		{
			name:  "noop",
			input: "a,b,c",
			want:  "a,b,c",
		},
		{
			name:    "replaceSingle",
			replace: ";",
			input:   "a;b;c",
			want:    "a b c",
		},
		{
			name:    "replaceMultiple",
			replace: ";:",
			input:   "a;b:c",
			want:    "a b c",
		},
		{
			name:  "eraseSingle",
			erase: "\"",
			input: `"a","b"`,
			want:  "a,b",
		},
		{
			name:  "eraseShortens",
			erase: "x",
			input: "xxaxxbxx",
			want:  "ab",
		},
		{
			name:  "eraseAll",
			erase: "a",
			input: "aaaa",
			want:  "",
		},
		{
			name:    "replaceThenErase",
			replace: ";",
			erase:   " ",
			input:   "a;b c",
			want:    "abc",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := &Sanitizer{Replace: []byte(tt.replace), Erase: []byte(tt.erase)}
			got := s.Apply([]byte(tt.input))
			if string(got) != tt.want {
				t.Errorf("Apply(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizerEraseIdempotent(t *testing.T) {
	t.Parallel()

	s := &Sanitizer{Erase: []byte(",\"")}
	once := s.Apply([]byte(`a,"b",c`))
	twice := s.Apply(append([]byte(nil), once...))
	if string(once) != string(twice) {
		t.Errorf("erase not idempotent: once %q, twice %q", once, twice)
	}
}

func TestSanitizerMutatesInPlace(t *testing.T) {
	t.Parallel()

	line := []byte("a;b")
	s := &Sanitizer{Replace: []byte(";")}
	got := s.Apply(line)
	if &got[0] != &line[0] {
		t.Error("Apply reallocated the line buffer")
	}
	if string(line) != "a b" {
		t.Errorf("backing buffer = %q, want %q", line, "a b")
	}
}
