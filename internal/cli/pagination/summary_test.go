package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dahc/coreutils/internal/cli/pagination"
	"github.com/dahc/coreutils/internal/paginate"
)

func TestFormatSummary(t *testing.T) {
	stats := paginate.Stats{PagesRead: 1200, PagesWritten: 3, LinesRead: 73201}
	assert.Equal(t, "test.log: 1,200 pages read, 3 written, 73,201 lines",
		pagination.FormatSummary("test.log", stats))
	assert.Equal(t, "standard input: 0 pages read, 0 written, 0 lines",
		pagination.FormatSummary("", paginate.Stats{}))
}
