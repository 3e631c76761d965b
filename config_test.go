package fastcsv2json

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSetDelimiter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"pipe", "|"},
		{"comma", ","},
		{"semicolumn", ";"},
		{"column", ":"},
		{"space", " "},
		{"tab", "\t"},
	}
	for _, tt := range tests {
		cfg := NewConfig()
		if err := cfg.SetDelimiter(tt.name); err != nil {
			t.Fatalf("SetDelimiter(%q) error = %v", tt.name, err)
		}
		if cfg.Delimiter != tt.want {
			t.Errorf("SetDelimiter(%q) = %q, want %q", tt.name, cfg.Delimiter, tt.want)
		}
	}
}

func TestSetDelimiterUnknown(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	err := cfg.SetDelimiter("dot")
	if !errors.Is(err, ErrUnknownDelimiter) {
		t.Fatalf("SetDelimiter(dot) error = %v, want ErrUnknownDelimiter", err)
	}
	if cfg.Delimiter != "," {
		t.Errorf("delimiter changed on error: %q", cfg.Delimiter)
	}
}

func TestAddReplaceAndErase(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	for _, name := range []string{"comma", "tab", "backslash", "lf", "cr", "squote", "dquote", "slash"} {
		if err := cfg.AddReplace(name); err != nil {
			t.Fatalf("AddReplace(%q) error = %v", name, err)
		}
	}
	want := []byte{',', '\t', '\\', '\n', '\r', '\'', '"', '/'}
	if string(cfg.Replace) != string(want) {
		t.Errorf("Replace = %q, want %q", cfg.Replace, want)
	}

	// "space" is an erase name but not a replace name.
	if err := cfg.AddReplace("space"); !errors.Is(err, ErrUnknownChar) {
		t.Errorf("AddReplace(space) error = %v, want ErrUnknownChar", err)
	}
	if err := cfg.AddErase("space"); err != nil {
		t.Errorf("AddErase(space) error = %v", err)
	}
	if len(cfg.Erase) != 1 || cfg.Erase[0] != ' ' {
		t.Errorf("Erase = %q, want a single space", cfg.Erase)
	}

	if err := cfg.AddErase("bell"); !errors.Is(err, ErrUnknownChar) {
		t.Errorf("AddErase(bell) error = %v, want ErrUnknownChar", err)
	}
}

func TestLoadProfile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "profile.yaml")

	content := `
delimiter: pipe
infile: /data/in.csv
outfile: /data/out.json
replace_with_space:
  - comma
erase_chars:
  - dquote
  - cr
color: never
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile() error = %v", err)
	}
	if p.Delimiter != "pipe" {
		t.Errorf("Delimiter = %q, want pipe", p.Delimiter)
	}
	if p.Infile != "/data/in.csv" || p.Outfile != "/data/out.json" {
		t.Errorf("paths = %q, %q", p.Infile, p.Outfile)
	}
	if len(p.Replace) != 1 || p.Replace[0] != "comma" {
		t.Errorf("Replace = %v", p.Replace)
	}
	if len(p.Erase) != 2 || p.Erase[0] != "dquote" || p.Erase[1] != "cr" {
		t.Errorf("Erase = %v", p.Erase)
	}
	if p.Color != "never" {
		t.Errorf("Color = %q, want never", p.Color)
	}
}

func TestLoadProfileMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := LoadProfile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("LoadProfile() on missing file: expected error")
	}
}
