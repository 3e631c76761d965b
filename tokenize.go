package fastcsv2json

import "bytes"

// A Tokenizer splits sanitized lines into fields on a literal
// delimiter substring.  Fields are subslices of the line buffer, so
// they are only valid until the next line is read; the field slice
// itself is reused across calls.
type Tokenizer struct {
	delim  []byte
	max    int
	fields [][]byte
}

// NewTokenizer returns a Tokenizer for the given literal delimiter.
// max bounds the number of fields per line; a non-positive max falls
// back to DefaultMaxTokenCount.
func NewTokenizer(delim string, max int) *Tokenizer {
	if delim == "" {
		delim = ","
	}
	if max <= 0 {
		max = DefaultMaxTokenCount
	}
	return &Tokenizer{
		delim:  []byte(delim),
		max:    max,
		fields: make([][]byte, 0, 16),
	}
}

// Split tokenizes line and returns the fields together with the token
// count.  A line with no delimiter yields exactly one token (the whole
// line, which may be empty).  When the line splits into more tokens
// than the limit, scanning stops and the returned count is max+1; a
// count of zero or above the limit marks the line invalid and the
// caller drops it silently.
func (t *Tokenizer) Split(line []byte) ([][]byte, int) {
	t.fields = t.fields[:0]
	start := 0
	for {
		i := bytes.Index(line[start:], t.delim)
		if i < 0 {
			break
		}
		if len(t.fields) == t.max {
			return t.fields, t.max + 1
		}
		t.fields = append(t.fields, line[start:start+i])
		start += i + len(t.delim)
	}
	if len(t.fields) == t.max {
		return t.fields, t.max + 1
	}
	t.fields = append(t.fields, line[start:])
	return t.fields, len(t.fields)
}
