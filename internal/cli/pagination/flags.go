package pagination

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dahc/coreutils/internal/paginate"
)

// NumberSpecDefault is the --number-lines value used when the flag is given
// without an argument.
const NumberSpecDefault = "default"

// rangePartsMax is the maximum number of parts in a page range (start:end).
const rangePartsMax = 2

// ErrInvalidNumberSpec is wrapped by errors from ParseNumberSpec.
var ErrInvalidNumberSpec = errors.New("invalid number-lines argument")

// ParsePageRange parses "START" or "START:END". Malformed and out of order
// ranges are both reported as invalid --pages arguments quoting raw.
func ParsePageRange(raw string) (*paginate.PageRange, error) {
	r := &paginate.PageRange{Raw: raw}

	parts := strings.Split(raw, ":")
	if len(parts) > rangePartsMax {
		return nil, invalidRange(raw)
	}

	start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, invalidRange(raw)
	}
	r.Start = start

	if len(parts) == rangePartsMax {
		end, endErr := strconv.Atoi(strings.TrimSpace(parts[1]))
		if endErr != nil {
			return nil, invalidRange(raw)
		}
		r.End = end
		r.HasEnd = true
	}

	if err = r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func invalidRange(raw string) error {
	return &paginate.ConfigError{
		Msg: fmt.Sprintf("invalid --pages argument '%s'", raw),
		Err: paginate.ErrInvalidPageRange,
	}
}

// ParseNumberSpec parses the [SEP][WIDTH] argument of --number-lines. SEP is
// any single non-digit character and WIDTH a positive integer. Missing parts
// keep the given defaults.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseNumberSpec(spec string, defSep rune, defWidth int) (sep rune, width int, err error) {
	sep, width = defSep, defWidth
	if spec == "" || spec == NumberSpecDefault {
		return sep, width, nil
	}

	rest := spec
	first, size := utf8.DecodeRuneInString(rest)
	if !unicode.IsDigit(first) {
		sep = first
		rest = rest[size:]
	}
	if rest == "" {
		return sep, width, nil
	}

	width, err = strconv.Atoi(rest)
	if err != nil || width < 1 {
		return 0, 0, fmt.Errorf("%w '%s'", ErrInvalidNumberSpec, spec)
	}
	return sep, width, nil
}
