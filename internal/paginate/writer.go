package paginate

import (
	"bufio"
	"io"
	"runtime"
)

// LineTerminator is the platform line terminator.
//
//nolint:gochecknoglobals // Chosen once per platform.
var LineTerminator = lineTerminatorFor(runtime.GOOS)

func lineTerminatorFor(goos string) string {
	if goos == "windows" {
		return "\r\n"
	}
	return "\n"
}

// Writer serializes pages to a sink, one element per line.
type Writer struct {
	out         *bufio.Writer
	numberer    *Numberer
	doubleSpace bool
	eol         string
	lines       int
	phase       Phase
}

// NewWriter creates a Writer on w. numberer formats body lines.
func NewWriter(w io.Writer, numberer *Numberer, doubleSpace bool) *Writer {
	return &Writer{
		out:         bufio.NewWriter(w),
		numberer:    numberer,
		doubleSpace: doubleSpace,
		eol:         LineTerminator,
		phase:       PhaseRendering,
	}
}

// WritePage writes the header, body and trailer of page.
func (w *Writer) WritePage(page *Page) error {
	w.phase = PhaseRendering
	for _, line := range page.Header {
		if err := w.writeLine(line); err != nil {
			return err
		}
	}
	for _, rec := range page.Body {
		if err := w.writeLine(w.numberer.Format(rec)); err != nil {
			return err
		}
		if w.doubleSpace {
			if err := w.writeLine(""); err != nil {
				return err
			}
		}
	}
	for _, line := range page.Trailer {
		if err := w.writeLine(line); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes any buffered output to the sink.
func (w *Writer) Flush() error {
	w.phase = PhaseFlushing
	if err := w.out.Flush(); err != nil {
		return &SinkError{Phase: w.phase, Err: err}
	}
	return nil
}

// LinesWritten returns the number of lines written so far.
func (w *Writer) LinesWritten() int {
	return w.lines
}

func (w *Writer) writeLine(line string) error {
	if _, err := w.out.WriteString(line); err != nil {
		return &SinkError{Phase: w.phase, Err: err}
	}
	if _, err := w.out.WriteString(w.eol); err != nil {
		return &SinkError{Phase: w.phase, Err: err}
	}
	w.lines++
	return nil
}
