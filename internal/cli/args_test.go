package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "bare", args: []string{"-n", "f"}, want: []string{"-n", "f"}},
		{name: "separator", args: []string{"-nc", "f"}, want: []string{"-n=c", "f"}},
		{name: "separator and width", args: []string{"-nc1", "f"}, want: []string{"-n=c1", "f"}},
		{name: "attached width", args: []string{"-n3", "f"}, want: []string{"-n=3", "f"}},
		{name: "detached width", args: []string{"-n", "2", "f"}, want: []string{"-n=2", "f"}},
		{name: "already explicit", args: []string{"-n=c1", "f"}, want: []string{"-n=c1", "f"}},
		{name: "long form untouched", args: []string{"--number-lines=:3", "f"}, want: []string{"--number-lines=:3", "f"}},
		{name: "header value", args: []string{"-h", "-nope", "f"}, want: []string{"-h", "-nope", "f"}},
		{name: "length value", args: []string{"-n", "-l", "20", "f"}, want: []string{"-n", "-l", "20", "f"}},
		{name: "after double dash", args: []string{"--", "-nc"}, want: []string{"--", "-nc"}},
		{name: "trailing n", args: []string{"f", "-n"}, want: []string{"f", "-n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeArgs(tt.args))
		})
	}
}
