package paginate

import (
	"errors"
	"fmt"
)

// sliceSource is a LineSource over a fixed set of lines. It counts Scan calls
// and can fail after a number of lines.
type sliceSource struct {
	lines   []string
	pos     int
	scans   int
	failAt  int
	failErr error
	err     error
}

func newSliceSource(lines ...string) *sliceSource {
	return &sliceSource{lines: lines, failAt: -1}
}

func numberedLines(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i+1)
	}
	return lines
}

func (s *sliceSource) Scan() bool {
	s.scans++
	if s.failAt >= 0 && s.pos == s.failAt {
		s.err = s.failErr
		return false
	}
	if s.pos >= len(s.lines) {
		return false
	}
	s.pos++
	return true
}

func (s *sliceSource) Text() string { return s.lines[s.pos-1] }

func (s *sliceSource) Err() error { return s.err }

var errBrokenPipe = errors.New("broken pipe")

// failingWriter rejects every write after limit bytes.
type failingWriter struct {
	limit   int
	written int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.written+len(p) > w.limit {
		n := w.limit - w.written
		w.written = w.limit
		return n, errBrokenPipe
	}
	w.written += len(p)
	return len(p), nil
}
