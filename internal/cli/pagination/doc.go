// Package pagination turns the paging flags of the pr command into values for
// internal/paginate, and formats the per-file run summary.
//
// This package contains:
//   - ParsePageRange: parses --pages=START[:END] without clamping
//   - ParseNumberSpec: parses the optional [SEP][WIDTH] argument of --number-lines
//   - FormatSummary: renders a paginate.Stats with thousand separators
package pagination
