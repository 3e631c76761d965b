package fastcsv2json

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultMaxTokenCount is the hard limit on fields per line.  A line
	// that splits into more tokens than this is dropped.
	DefaultMaxTokenCount = 4096

	// reserveSize is the initial capacity given to the per-run line and
	// output buffers.
	reserveSize = 256
)

var (
	// ErrUnknownDelimiter is returned when a symbolic delimiter name is
	// not recognized.
	ErrUnknownDelimiter = errors.New("unknown delimiter")
	// ErrUnknownChar is returned when a symbolic character name is not
	// recognized.
	ErrUnknownChar = errors.New("unknown character")
)

// Symbolic names accepted for the delimiter option.
var delimiterNames = map[string]string{
	"pipe":       "|",
	"comma":      ",",
	"semicolumn": ";",
	"column":     ":",
	"space":      " ",
	"tab":        "\t",
}

// Symbolic names accepted for the replace-with-space option.  Note that
// "space" is not replaceable (replacing it with itself is meaningless).
var replaceNames = map[string]byte{
	"pipe":       '|',
	"comma":      ',',
	"semicolumn": ';',
	"column":     ':',
	"tab":        '\t',
	"backslash":  '\\',
	"lf":         '\n',
	"cr":         '\r',
	"squote":     '\'',
	"dquote":     '"',
	"slash":      '/',
}

// Symbolic names accepted for the erase option: the replace set plus
// "space".
var eraseNames = map[string]byte{
	"pipe":       '|',
	"comma":      ',',
	"semicolumn": ';',
	"column":     ':',
	"space":      ' ',
	"tab":        '\t',
	"backslash":  '\\',
	"lf":         '\n',
	"cr":         '\r',
	"squote":     '\'',
	"dquote":     '"',
	"slash":      '/',
}

// Config holds the options for one conversion run.  It is populated
// before the run starts and read-only afterwards.
type Config struct {
	// Delimiter is the literal substring separating fields.  Default ",".
	Delimiter string

	// Replace lists characters overwritten with a space before
	// tokenization.
	Replace []byte

	// Erase lists characters removed from each line before tokenization.
	Erase []byte

	// MaxTokenCount is the hard limit on fields per line.
	MaxTokenCount int
}

// NewConfig returns a Config with the default comma delimiter and token
// limit.
func NewConfig() *Config {
	return &Config{
		Delimiter:     ",",
		MaxTokenCount: DefaultMaxTokenCount,
	}
}

// SetDelimiter resolves a symbolic delimiter name (pipe, comma,
// semicolumn, column, space, tab) and sets the delimiter.
func (c *Config) SetDelimiter(name string) error {
	d, ok := delimiterNames[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownDelimiter, name)
	}
	c.Delimiter = d
	return nil
}

// AddReplace resolves a symbolic character name and adds it to the
// replace-with-space set.
func (c *Config) AddReplace(name string) error {
	b, ok := replaceNames[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownChar, name)
	}
	c.Replace = append(c.Replace, b)
	return nil
}

// AddErase resolves a symbolic character name and adds it to the erase
// set.
func (c *Config) AddErase(name string) error {
	b, ok := eraseNames[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownChar, name)
	}
	c.Erase = append(c.Erase, b)
	return nil
}

// Profile is an optional YAML file holding default options for a run.
// Command line flags take precedence over profile values.
type Profile struct {
	Delimiter string   `yaml:"delimiter"`
	Infile    string   `yaml:"infile"`
	Outfile   string   `yaml:"outfile"`
	Replace   []string `yaml:"replace_with_space"`
	Erase     []string `yaml:"erase_chars"`
	Color     string   `yaml:"color"`
}

// LoadProfile reads a YAML profile from path.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	p := &Profile{}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, err
	}
	return p, nil
}
