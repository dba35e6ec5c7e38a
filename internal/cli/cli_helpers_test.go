package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dahc/coreutils/internal/config"
)

// fixedModTime is applied to test inputs so header dates are predictable.
var fixedModTime = time.Date(2024, time.March, 5, 10, 30, 0, 0, time.Local) //nolint:gochecknoglobals // test fixture

// isolateConfig points PR_HOME at an empty directory so a developer's own
// config cannot leak into tests.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvHome, t.TempDir())
	t.Setenv(config.EnvPageLength, "")
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFormat, "")
}

// writeInput writes n numbered lines to a temp file with a fixed mtime.
func writeInput(t *testing.T, name string, n int) string {
	t.Helper()
	var b strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0600))
	require.NoError(t, os.Chtimes(path, fixedModTime, fixedModTime))
	return path
}

// executeCmd runs the root command with args and returns its output.
func executeCmd(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	isolateConfig(t)

	cmd := NewRootCmd("1.2.3")
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(NormalizeArgs(args))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func titleFor(path string, page int) string {
	return fmt.Sprintf("%s %s Page %d", fixedModTime.Format(config.DefaultDateFormat), path, page)
}
