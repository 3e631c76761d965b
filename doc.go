// Package fastcsv2json converts delimited text (CSV-like) into a JSON
// array of objects, one object per data row, keyed by the header row's
// column names.
//
// The conversion is a single-pass streaming pipeline:
//
//	line source -> sanitizer -> tokenizer -> row serializer -> emitter
//
// Each stage works on buffers that are allocated once per run and
// reused for every line, so memory usage does not grow with the size
// of the input.  Output is produced incrementally, which makes the
// package suitable for very large files and for piping through tools
// like 'less' or 'head'.
//
// The first input line is always the header.  Rows whose field count
// does not match the header are dropped silently; the emitted text is
// always a syntactically closed JSON array, even for empty input.
// Field values are emitted verbatim, without JSON escaping; there is
// no quoting support on the CSV side.  Both are deliberate limits of
// the format this tool handles.
//
// The command line utility is in the directory cmd/fastcsv2json. You
// can install it with:
//
//	go install github.com/lucast70/fastcsv2json/cmd/fastcsv2json
package fastcsv2json
