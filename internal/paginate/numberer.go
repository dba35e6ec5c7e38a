package paginate

import (
	"strconv"
	"strings"
)

// LineRecord is one content line and its sequence number.
type LineRecord struct {
	Content string
	// Number is the sequence number, valid only when Numbered is set.
	Number   int
	Numbered bool
}

// Numberer assigns sequence numbers to lines in consumption order. The counter
// is never reset between pages.
type Numberer struct {
	enabled   bool
	next      int
	width     int
	separator rune
}

// NewNumberer creates a Numberer from opts.
func NewNumberer(opts Options) *Numberer {
	return &Numberer{
		enabled:   opts.NumberLines,
		next:      opts.FirstLineNumber,
		width:     opts.NumberWidth,
		separator: opts.NumberSeparator,
	}
}

// Assign returns the record for content and advances the counter.
func (n *Numberer) Assign(content string) LineRecord {
	rec := LineRecord{Content: content}
	if n.enabled {
		rec.Number = n.next
		rec.Numbered = true
	}
	n.next++
	return rec
}

// Advance moves the counter past count lines that are not materialized.
func (n *Numberer) Advance(count int) {
	n.next += count
}

// Next returns the number the next line will receive.
func (n *Numberer) Next() int {
	return n.next
}

// Format renders rec. A number wider than the field widens it rather than
// being truncated.
func (n *Numberer) Format(rec LineRecord) string {
	if !rec.Numbered {
		return rec.Content
	}
	num := strconv.Itoa(rec.Number)

	var b strings.Builder
	b.Grow(n.width + len(num) + len(rec.Content) + 1)
	if pad := n.width - len(num); pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(num)
	b.WriteRune(n.separator)
	b.WriteString(rec.Content)
	return b.String()
}
