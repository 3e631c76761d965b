package fastcsv2json

import (
	"fmt"
	"io"
)

// A Converter drives the conversion of one delimited text stream into
// one JSON array.  It owns the line buffer, the token slice and the
// output buffer for the duration of a run; all three are allocated
// once and reused on every line.
type Converter struct {
	cfg *Config

	// Color, when set, wraps keys and values of the emitted objects in
	// ANSI codes.  Leave nil for plain output.
	Color *Colorizer
}

// NewConverter returns a Converter for the given configuration.  A nil
// cfg uses the defaults.
func NewConverter(cfg *Config) *Converter {
	if cfg == nil {
		cfg = NewConfig()
	}
	return &Converter{cfg: cfg}
}

// Run streams in to out until the input is exhausted.
//
// The first line is tokenized and captured as the header; it emits
// nothing.  Every further line is sanitized, tokenized and, when its
// token count equals the header field count, serialized and emitted.
// Lines with a token count of zero, above the configured limit, or
// different from the header count are dropped silently.
//
// On success the output is a complete JSON array and has been flushed.
// A read or write failure aborts the run and is returned; no attempt
// is made to close the array in that case.
func (c *Converter) Run(in io.Reader, out io.Writer) (err error) {
	defer CatchPrinterError(&err)

	src := NewLineReader(in)
	san := &Sanitizer{Replace: c.cfg.Replace, Erase: c.cfg.Erase}
	tok := NewTokenizer(c.cfg.Delimiter, c.cfg.MaxTokenCount)
	ser := NewRowSerializer(c.Color)
	em := NewEmitter(out)

	var header Header

	em.Begin()
	for src.Next() {
		line := san.Apply(src.Line())
		fields, n := tok.Split(line)
		if n == 0 || n > tok.max {
			continue
		}
		if src.Count() == 1 {
			// The header emits nothing.  If line 1 was invalid above, no
			// header is ever captured and every data row is dropped.
			header.Capture(fields)
			continue
		}
		if fragment, ok := ser.Serialize(fields, &header); ok {
			em.Emit(fragment)
		}
	}
	if err := src.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	em.End()
	return nil
}
