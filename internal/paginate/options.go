package paginate

import (
	"fmt"
)

// Defaults applied by DefaultOptions.
const (
	DefaultPageLength      = 66
	DefaultNumberWidth     = 5
	DefaultNumberSeparator = '\t'
	DefaultFirstLineNumber = 1

	// headerLines is the size of the header block: two blank lines, the title
	// line and two more blank lines.
	headerLines = 5
)

// Options is the read-only configuration for one pagination run.
type Options struct {
	// PageLength is the total number of lines per page including the header.
	PageLength int

	// HeaderText replaces SourceName in the title line when non-empty.
	HeaderText string

	// NumberLines enables line numbering.
	NumberLines bool

	// NumberWidth is the minimum width of the line number field.
	NumberWidth int

	// NumberSeparator follows the line number.
	NumberSeparator rune

	// FirstLineNumber seeds the line number counter.
	FirstLineNumber int

	// DoubleSpace follows every content line with a blank line.
	DoubleSpace bool

	// OmitHeaderTrailer suppresses the header, the trailer and all padding.
	OmitHeaderTrailer bool

	// Pages restricts output to a page range. Nil means every page.
	Pages *PageRange

	// SourceName is the input name shown in the title line.
	SourceName string

	// Timestamp is the pre-rendered date shown in the title line.
	Timestamp string

	// DecorateTitle, when set, transforms the title line before it is written.
	DecorateTitle func(string) string
}

// DefaultOptions returns Options populated with the classic defaults.
func DefaultOptions() Options {
	return Options{
		PageLength:      DefaultPageLength,
		NumberWidth:     DefaultNumberWidth,
		NumberSeparator: DefaultNumberSeparator,
		FirstLineNumber: DefaultFirstLineNumber,
	}
}

// Layout is the page geometry derived once from Options.
type Layout struct {
	// PageLength is the total number of lines per page.
	PageLength int
	// HeaderLines is the number of header lines per page.
	HeaderLines int
	// BodyCapacity is the number of body slots per page.
	BodyCapacity int
	// LinesPerPage is the number of content lines per page, after double spacing.
	LinesPerPage int
	// SlotsPerLine is the number of body slots one content line occupies.
	SlotsPerLine int
}

// Layout validates the page geometry and returns it.
func (o Options) Layout() (Layout, error) {
	overhead := headerLines
	if o.OmitHeaderTrailer {
		overhead = 0
	}

	capacity := o.PageLength - overhead
	if capacity <= 0 {
		return Layout{}, &ConfigError{
			Msg: fmt.Sprintf("page length %d too short for a %d line header", o.PageLength, overhead),
			Err: ErrPageTooShort,
		}
	}

	slots := 1
	if o.DoubleSpace {
		slots = 2
	}
	perPage := capacity / slots
	if perPage == 0 {
		return Layout{}, &ConfigError{
			Msg: fmt.Sprintf("page length %d too short for double spacing", o.PageLength),
			Err: ErrPageTooShort,
		}
	}

	return Layout{
		PageLength:   o.PageLength,
		HeaderLines:  overhead,
		BodyCapacity: capacity,
		LinesPerPage: perPage,
		SlotsPerLine: slots,
	}, nil
}

// Validate checks every option that can be checked without reading input.
func (o Options) Validate() error {
	if o.NumberLines && o.NumberWidth < 1 {
		return &ConfigError{
			Msg: fmt.Sprintf("invalid line number width %d", o.NumberWidth),
			Err: ErrInvalidNumberWidth,
		}
	}
	if o.Pages != nil {
		if err := o.Pages.Validate(); err != nil {
			return err
		}
	}
	_, err := o.Layout()
	return err
}

// Title returns the text shown between the timestamp and the page number.
func (o Options) Title() string {
	if o.HeaderText != "" {
		return o.HeaderText
	}
	return o.SourceName
}
