package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd("1.2.3")
	require.NotNil(t, cmd)
	assert.Equal(t, "1.2.3", cmd.Version)

	header := cmd.Flags().ShorthandLookup("h")
	require.NotNil(t, header)
	assert.Equal(t, "header", header.Name)

	assert.NotNil(t, cmd.Flags().Lookup("suppress-errors"), "alias resolves to the canonical flag")
	assert.Equal(t, "no-file-warnings", cmd.Flags().Lookup("suppress-errors").Name)
}

func TestRootCmd_Version(t *testing.T) {
	stdout, _, err := executeCmd(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "1.2.3")
}

func TestRootCmd_Help(t *testing.T) {
	stdout, _, err := executeCmd(t, "", "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "--pages")
	assert.Contains(t, stdout, "-h, --header")
	assert.Contains(t, stdout, "lengths of 5 or less fail unless -t is given")
}

func TestTitleDecorator(t *testing.T) {
	var buf bytes.Buffer

	decorate, err := titleDecorator(colorNever, &buf)
	require.NoError(t, err)
	assert.Nil(t, decorate)

	decorate, err = titleDecorator(colorAuto, &buf)
	require.NoError(t, err)
	assert.Nil(t, decorate)

	decorate, err = titleDecorator(colorAlways, &buf)
	require.NoError(t, err)
	require.NotNil(t, decorate)
	styled := decorate("Jan 02 15:04 2006\tfile Page 1")
	assert.Contains(t, styled, "\x1b[1m")
	assert.Contains(t, styled, "\tfile Page 1")

	_, err = titleDecorator("rainbow", &buf)
	assert.Error(t, err)
}
