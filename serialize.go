package fastcsv2json

// A Header holds the ordered field names captured from the first input
// line.  Once captured it is immutable for the rest of the run; its
// field count is the acceptance threshold for every data row.
type Header struct {
	fields [][]byte
}

// Capture copies the given tokens as the permanent field name
// sequence.  The copy matters: the token storage is overwritten on
// every subsequent line.
func (h *Header) Capture(fields [][]byte) {
	h.fields = make([][]byte, len(fields))
	for i, f := range fields {
		h.fields[i] = append([]byte(nil), f...)
	}
}

// FieldCount returns the number of captured field names, zero if no
// header has been captured.
func (h *Header) FieldCount() int {
	return len(h.fields)
}

// A RowSerializer renders one token sequence as a JSON object literal,
// keyed by the header fields in header order.  The output accumulates
// in a buffer reused across rows.
//
// Keys and values are written verbatim between double quotes, with no
// escaping of embedded quotes or control characters.  That is a known
// limitation of the format this tool handles, preserved on purpose.
type RowSerializer struct {
	buf   []byte
	color *Colorizer
}

// NewRowSerializer returns a RowSerializer.  A nil colorizer produces
// plain output.
func NewRowSerializer(color *Colorizer) *RowSerializer {
	return &RowSerializer{
		buf:   make([]byte, 0, reserveSize*4),
		color: color,
	}
}

// Serialize builds the JSON object fragment for one row.  It reports
// ok=false when the token count does not match the header field count
// (or no header was captured); such rows produce no output at all.
// The returned slice is only valid until the next call.
func (s *RowSerializer) Serialize(fields [][]byte, header *Header) ([]byte, bool) {
	if header.FieldCount() == 0 || len(fields) != header.FieldCount() {
		return nil, false
	}
	s.buf = s.buf[:0]
	s.buf = append(s.buf, '{')
	for i, value := range fields {
		if i > 0 {
			s.buf = append(s.buf, ',')
		}
		s.buf = s.color.AppendQuoted(s.buf, header.fields[i], true)
		s.buf = append(s.buf, ':')
		s.buf = s.color.AppendQuoted(s.buf, value, false)
	}
	s.buf = append(s.buf, '}')
	return s.buf, true
}
