package fastcsv2json

import (
	"bufio"
	"fmt"
	"io"
)

// An Emitter frames JSON object fragments into a single JSON array on
// the output sink: an opening bracket, fragments separated by ",\n",
// and a closing bracket followed by a flush.  The separator is written
// only immediately before a second-or-later fragment, never trailing,
// so the emitted text is always a closed array ("[]" when no fragment
// is ever emitted).
//
// The methods do not return an error because a failing write leaves
// nothing sensible to do but stop the run.  Instead they panic with a
// *PrinterError, which the pipeline driver captures with
//
//	defer CatchPrinterError(&err)
type Emitter struct {
	w     *bufio.Writer
	items int
}

// NewEmitter returns an Emitter writing to out.
func NewEmitter(out io.Writer) *Emitter {
	return &Emitter{w: bufio.NewWriterSize(out, reserveSize*16)}
}

// Begin writes the opening array bracket.
func (e *Emitter) Begin() {
	e.printBytes(openArrayBytes)
}

// Emit writes one object fragment, preceded by the record separator
// for every fragment after the first.
func (e *Emitter) Emit(fragment []byte) {
	if e.items > 0 {
		e.printBytes(recordSeparatorBytes)
	}
	e.printBytes(fragment)
	e.items++
}

// End writes the closing array bracket and flushes the sink.
func (e *Emitter) End() {
	e.printBytes(closeArrayBytes)
	if err := e.w.Flush(); err != nil {
		panic(wrapPrinterError(err))
	}
}

func (e *Emitter) printBytes(b []byte) {
	if _, err := e.w.Write(b); err != nil {
		panic(wrapPrinterError(err))
	}
}

var (
	openArrayBytes       = []byte("[")
	closeArrayBytes      = []byte("]")
	recordSeparatorBytes = []byte(",\n")
)

// CatchPrinterError captures panics caused by an Emitter that failed
// to send output.  See the Emitter documentation for usage.
func CatchPrinterError(err *error) {
	if r := recover(); r != nil {
		perr, ok := r.(*PrinterError)
		if ok {
			*err = perr
		} else {
			panic(r)
		}
	}
}

// A PrinterError contains an error that occurred while the Emitter was
// sending output.
type PrinterError struct {
	Err error
}

func (e *PrinterError) Error() string {
	return fmt.Sprintf("printer error: %s", e.Err)
}

func (e *PrinterError) Unwrap() error {
	return e.Err
}

func wrapPrinterError(err error) *PrinterError {
	return &PrinterError{Err: err}
}
