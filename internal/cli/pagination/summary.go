package pagination

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dahc/coreutils/internal/paginate"
)

// printer is the locale-aware message printer for number formatting.
// Uses English locale for consistent thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatSummary renders stats for the input called name.
// Example: "test.log: 20 pages read, 6 written, 1,234 lines".
func FormatSummary(name string, stats paginate.Stats) string {
	if name == "" {
		name = "standard input"
	}
	return printer.Sprintf("%s: %d pages read, %d written, %d lines",
		name, stats.PagesRead, stats.PagesWritten, stats.LinesRead)
}
