package fastcsv2json

// A Colorizer wraps emitted keys and values in ANSI color codes for
// terminal output.  A nil *Colorizer is valid and produces no codes,
// so callers never need to branch.
type Colorizer struct {
	KeyCode   []byte
	ValueCode []byte
	ResetCode []byte
}

// DefaultColorizer returns the standard color scheme: bold blue keys,
// green values.
func DefaultColorizer() *Colorizer {
	return &Colorizer{
		KeyCode:   []byte("\x1b[34;1m"),
		ValueCode: []byte("\x1b[32m"),
		ResetCode: []byte("\x1b[0m"),
	}
}

// AppendQuoted appends b double-quoted to dst, colorized when the
// receiver is not nil.
func (c *Colorizer) AppendQuoted(dst, b []byte, isKey bool) []byte {
	if c != nil {
		if isKey {
			dst = append(dst, c.KeyCode...)
		} else {
			dst = append(dst, c.ValueCode...)
		}
	}
	dst = append(dst, '"')
	dst = append(dst, b...)
	dst = append(dst, '"')
	if c != nil {
		dst = append(dst, c.ResetCode...)
	}
	return dst
}
