package paginate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageRange_Validate(t *testing.T) {
	tests := []struct {
		name    string
		r       PageRange
		wantErr string
	}{
		{name: "bounded", r: *NewPageRange(1, 5)},
		{name: "single page", r: *NewPageRange(3, 3)},
		{name: "open", r: *NewOpenPageRange(15)},
		{name: "end before start", r: *NewPageRange(20, 5), wantErr: "invalid --pages argument '20:5'"},
		{name: "negative start", r: *NewPageRange(-1, 5), wantErr: "invalid --pages argument '-1:5'"},
		{name: "negative end", r: *NewPageRange(1, -5), wantErr: "invalid --pages argument '1:-5'"},
		{name: "zero start", r: *NewOpenPageRange(0), wantErr: "invalid --pages argument '0'"},
		{name: "zero end", r: *NewPageRange(1, 0), wantErr: "invalid --pages argument '1:0'"},
		{
			name:    "raw text is kept",
			r:       PageRange{Start: 5, End: 1, HasEnd: true, Raw: "05:1"},
			wantErr: "invalid --pages argument '05:1'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.EqualError(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrInvalidPageRange)
		})
	}
}

func TestPageRange_Membership(t *testing.T) {
	bounded := NewPageRange(2, 4)
	assert.True(t, bounded.Before(1))
	assert.False(t, bounded.Before(2))
	assert.False(t, bounded.Contains(1))
	assert.True(t, bounded.Contains(2))
	assert.True(t, bounded.Contains(4))
	assert.False(t, bounded.Contains(5))
	assert.False(t, bounded.Exhausted(3))
	assert.True(t, bounded.Exhausted(4))

	open := NewOpenPageRange(2)
	assert.True(t, open.Contains(1000))
	assert.False(t, open.Exhausted(1000))
}
