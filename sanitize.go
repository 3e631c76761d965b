package fastcsv2json

// A Sanitizer applies two optional character level transforms to a raw
// line before tokenization: overwrite characters with a space, and
// remove characters entirely.  Both mutate the line in place; erasing
// shortens it.
//
// The line is scanned once per configured character, replacements
// first.  Replacing is idempotent per character, so the order of the
// configured set does not affect the result.
//
// Sanitizing a character equal to the delimiter corrupts column counts
// downstream; neutralizing the right characters is the caller's
// responsibility.
type Sanitizer struct {
	Replace []byte
	Erase   []byte
}

// Apply transforms line and returns it, possibly shortened.
func (s *Sanitizer) Apply(line []byte) []byte {
	for _, c := range s.Replace {
		replaceByte(line, c)
	}
	for _, c := range s.Erase {
		line = eraseByte(line, c)
	}
	return line
}

func replaceByte(line []byte, c byte) {
	for i := range line {
		if line[i] == c {
			line[i] = ' '
		}
	}
}

func eraseByte(line []byte, c byte) []byte {
	n := 0
	for i := range line {
		if line[i] != c {
			line[n] = line[i]
			n++
		}
	}
	return line[:n]
}
