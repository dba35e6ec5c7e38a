package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dahc/coreutils/internal/cli/pagination"
	"github.com/dahc/coreutils/internal/paginate"
)

// TestParsePageRange verifies --pages parsing and validation.
func TestParsePageRange(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantStart int
		wantEnd   int
		wantOpen  bool
		wantErr   bool
	}{
		{name: "bounded", raw: "1:5", wantStart: 1, wantEnd: 5},
		{name: "open", raw: "15", wantStart: 15, wantOpen: true},
		{name: "single page", raw: "3:3", wantStart: 3, wantEnd: 3},
		{name: "end before start", raw: "20:5", wantErr: true},
		{name: "reversed", raw: "5:1", wantErr: true},
		{name: "negative start", raw: "-1:5", wantErr: true},
		{name: "negative end", raw: "1:-5", wantErr: true},
		{name: "zero", raw: "0", wantErr: true},
		{name: "not a number", raw: "abc", wantErr: true},
		{name: "empty end", raw: "2:", wantErr: true},
		{name: "too many parts", raw: "1:2:3", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := pagination.ParsePageRange(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, "invalid --pages argument '"+tt.raw+"'", err.Error())
				assert.ErrorIs(t, err, paginate.ErrInvalidPageRange)
				assert.True(t, paginate.IsConfigError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, r.Start)
			assert.Equal(t, !tt.wantOpen, r.HasEnd)
			if !tt.wantOpen {
				assert.Equal(t, tt.wantEnd, r.End)
			}
			assert.Equal(t, tt.raw, r.Raw)
		})
	}
}

// TestParseNumberSpec verifies the [SEP][WIDTH] argument of --number-lines.
func TestParseNumberSpec(t *testing.T) {
	tests := []struct {
		spec      string
		wantSep   rune
		wantWidth int
		wantErr   bool
	}{
		{spec: "", wantSep: '\t', wantWidth: 5},
		{spec: pagination.NumberSpecDefault, wantSep: '\t', wantWidth: 5},
		{spec: "c", wantSep: 'c', wantWidth: 5},
		{spec: "c1", wantSep: 'c', wantWidth: 1},
		{spec: "2", wantSep: '\t', wantWidth: 2},
		{spec: ":12", wantSep: ':', wantWidth: 12},
		{spec: "│3", wantSep: '│', wantWidth: 3},
		{spec: "c0", wantErr: true},
		{spec: "cx", wantErr: true},
		{spec: "0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			sep, width, err := pagination.ParseNumberSpec(tt.spec, '\t', 5)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, pagination.ErrInvalidNumberSpec)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSep, sep)
			assert.Equal(t, tt.wantWidth, width)
		})
	}
}
