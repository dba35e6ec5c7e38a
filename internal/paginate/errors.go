package paginate

import (
	"errors"
	"fmt"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors that can be compared with errors.Is().
var (
	// ErrInvalidPageRange indicates a page range with a non-positive bound or an
	// end before its start.
	ErrInvalidPageRange = constError("invalid page range")

	// ErrPageTooShort indicates a page length that leaves no room for content
	// after the header and trailer.
	ErrPageTooShort = constError("page length too short")

	// ErrInvalidNumberWidth indicates a zero line number field width.
	ErrInvalidNumberWidth = constError("invalid line number width")
)

// Phase names a stage of the pagination pipeline.
type Phase int

// Pipeline phases, in the order a run moves through them.
const (
	PhaseValidating Phase = iota
	PhaseReading
	PhasePaginating
	PhaseFiltering
	PhaseRendering
	PhaseFlushing
	PhaseDone
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseValidating:
		return "validating"
	case PhaseReading:
		return "reading"
	case PhasePaginating:
		return "paginating"
	case PhaseFiltering:
		return "filtering"
	case PhaseRendering:
		return "rendering"
	case PhaseFlushing:
		return "flushing"
	case PhaseDone:
		return "done"
	case PhaseFailed:
		return "failed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// ConfigError reports an invalid configuration. It is detected before any
// input is read.
type ConfigError struct {
	// Msg is the user-facing message.
	Msg string
	// Err is the underlying sentinel.
	Err error
}

func (e *ConfigError) Error() string { return e.Msg }

func (e *ConfigError) Unwrap() error { return e.Err }

// SourceError wraps a failure reading from the line source.
type SourceError struct {
	Name string
	Err  error
}

func (e *SourceError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("reading input: %v", e.Err)
	}
	return fmt.Sprintf("reading %s: %v", e.Name, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// SinkError wraps a failure writing rendered output.
type SinkError struct {
	Phase Phase
	Err   error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("writing output while %s: %v", e.Phase, e.Err)
}

func (e *SinkError) Unwrap() error { return e.Err }

// IsConfigError reports whether err is, or wraps, a *ConfigError.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
