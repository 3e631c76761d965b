package fastcsv2json

import (
	"bufio"
	"io"
)

// A LineReader supplies the input one line at a time.  The line is held
// in a single buffer that is overwritten on every call to Next, so the
// slice returned by Line is only valid until the next call.
//
// Usage follows the scanner idiom:
//
//	src := NewLineReader(in)
//	for src.Next() {
//	    process(src.Line())
//	}
//	if err := src.Err(); err != nil {
//	    // read failure, distinct from normal end of input
//	}
type LineReader struct {
	buf   *bufio.Reader
	line  []byte
	count int
	err   error
}

// NewLineReader returns a LineReader consuming from in.
func NewLineReader(in io.Reader) *LineReader {
	return &LineReader{
		buf:  bufio.NewReader(in),
		line: make([]byte, 0, reserveSize*4),
	}
}

// Next reads the next line into the reused buffer, stripping the
// trailing '\n' and a preceding '\r'.  It returns false at end of
// input or on a read error; the two are told apart with Err.
func (r *LineReader) Next() bool {
	if r.err != nil {
		return false
	}
	r.line = r.line[:0]
	for {
		chunk, err := r.buf.ReadSlice('\n')
		r.line = append(r.line, chunk...)
		switch err {
		case nil:
			r.line = trimEOL(r.line)
			r.count++
			return true
		case bufio.ErrBufferFull:
			continue
		case io.EOF:
			// A final line without a terminator still counts, and a
			// stray '\r' from a CRLF file is still stripped.
			if len(r.line) == 0 {
				return false
			}
			r.line = trimEOL(r.line)
			r.count++
			return true
		default:
			r.err = err
			return false
		}
	}
}

// Line returns the current line.  The backing array is reused by the
// next call to Next.
func (r *LineReader) Line() []byte {
	return r.line
}

// Count returns the 1-based number of the current line.  Line 1 is the
// header.
func (r *LineReader) Count() int {
	return r.count
}

// Err returns the read error that stopped Next, or nil if the input
// simply ran out.
func (r *LineReader) Err() error {
	return r.err
}

func trimEOL(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return line
}
