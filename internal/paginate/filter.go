package paginate

import (
	"iter"
)

// Filter pulls pages from a Builder and keeps only those inside a page range.
// Pages before the range are skipped without being built, and no input is
// read once the last page of the range has been produced.
type Filter struct {
	builder *Builder
	pages   *PageRange
	done    bool
}

// NewFilter creates a Filter over builder. A nil range keeps every page.
func NewFilter(builder *Builder, pages *PageRange) *Filter {
	return &Filter{builder: builder, pages: pages}
}

// Next returns the next page in range, or nil when there are no more.
func (f *Filter) Next() (*Page, error) {
	if f.done {
		return nil, nil
	}

	if f.pages != nil {
		for f.pages.Before(f.builder.NextIndex()) {
			ok, err := f.builder.Skip()
			if err != nil || !ok {
				f.done = true
				return nil, err
			}
		}
	}

	page, err := f.builder.Next()
	if err != nil || page == nil {
		f.done = true
		return nil, err
	}
	if f.pages != nil && f.pages.Exhausted(page.Index) {
		f.done = true
	}
	return page, nil
}

// Pages returns the filtered pages as a pull-based sequence. Breaking out of
// the loop stops reading input.
func (f *Filter) Pages() iter.Seq2[*Page, error] {
	return func(yield func(*Page, error) bool) {
		for {
			page, err := f.Next()
			if err != nil {
				yield(nil, err)
				return
			}
			if page == nil {
				return
			}
			if !yield(page, nil) {
				return
			}
		}
	}
}
