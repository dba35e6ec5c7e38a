package paginate

import (
	"fmt"
	"strconv"
)

// PageRange is an inclusive range of 1-based page indexes.
type PageRange struct {
	// Start is the first page to emit.
	Start int
	// End is the last page to emit. It is only meaningful when HasEnd is set.
	End int
	// HasEnd reports whether the range is bounded above.
	HasEnd bool
	// Raw is the range as the user wrote it, used in error messages.
	Raw string
}

// NewPageRange returns a range with an upper bound.
func NewPageRange(start, end int) *PageRange {
	return &PageRange{
		Start:  start,
		End:    end,
		HasEnd: true,
		Raw:    strconv.Itoa(start) + ":" + strconv.Itoa(end),
	}
}

// NewOpenPageRange returns a range running from start to the last page.
func NewOpenPageRange(start int) *PageRange {
	return &PageRange{Start: start, Raw: strconv.Itoa(start)}
}

// Validate rejects non-positive bounds and an end before the start. Ranges are
// never clamped.
func (r PageRange) Validate() error {
	if r.Start < 1 || (r.HasEnd && (r.End < 1 || r.End < r.Start)) {
		return r.invalid()
	}
	return nil
}

func (r PageRange) invalid() error {
	return &ConfigError{
		Msg: fmt.Sprintf("invalid --pages argument '%s'", r.Raw),
		Err: ErrInvalidPageRange,
	}
}

// Before reports whether page precedes the range.
func (r PageRange) Before(page int) bool {
	return page < r.Start
}

// Contains reports whether page is inside the range.
func (r PageRange) Contains(page int) bool {
	return page >= r.Start && (!r.HasEnd || page <= r.End)
}

// Exhausted reports whether no page after page can be inside the range.
func (r PageRange) Exhausted(page int) bool {
	return r.HasEnd && page >= r.End
}
