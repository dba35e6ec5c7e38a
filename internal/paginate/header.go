package paginate

import (
	"strconv"

	"github.com/samber/lo"
)

// HeaderRenderer builds the header and trailer blocks of a page.
type HeaderRenderer struct {
	opts   Options
	layout Layout
}

// NewHeaderRenderer creates a HeaderRenderer for opts and layout.
func NewHeaderRenderer(opts Options, layout Layout) HeaderRenderer {
	return HeaderRenderer{opts: opts, layout: layout}
}

// Apply fills in the header and trailer of page.
func (h HeaderRenderer) Apply(page *Page) {
	page.Header = h.Header(page.Index)
	page.Trailer = h.Trailer(page)
}

// Header returns the header block for the page with the given index, or nil
// when headers are omitted.
func (h HeaderRenderer) Header(index int) []string {
	if h.opts.OmitHeaderTrailer {
		return nil
	}
	title := h.TitleLine(index)
	if h.opts.DecorateTitle != nil {
		title = h.opts.DecorateTitle(title)
	}
	return []string{"", "", title, "", ""}
}

// TitleLine returns the undecorated title line.
func (h HeaderRenderer) TitleLine(index int) string {
	return h.opts.Timestamp + " " + h.opts.Title() + " Page " + strconv.Itoa(index)
}

// Trailer returns the blank lines that bring page up to the page length. The
// final page is left short.
func (h HeaderRenderer) Trailer(page *Page) []string {
	if h.opts.OmitHeaderTrailer || page.Final {
		return nil
	}
	used := h.layout.HeaderLines + len(page.Body)*h.layout.SlotsPerLine
	padding := h.layout.PageLength - used
	if padding <= 0 {
		return nil
	}
	return lo.Times(padding, func(int) string { return "" })
}
